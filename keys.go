package stringphone

//----------------------------------------------------------------------
// This file is part of stringphone.
// Copyright (C) 2026 The stringphone Authors
//
// stringphone is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// stringphone is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with stringphone.  If not, see <http://www.gnu.org/licenses/>.
//----------------------------------------------------------------------

import "github.com/skorokithakis/stringphone/internal/primitives"

// GenerateSigningKeySeed draws a fresh, CSPRNG-sourced 32-byte Ed25519
// seed suitable for New. Callers that need a persistent identity across
// process restarts must store this seed themselves; stringphone keeps no
// state on disk.
func GenerateSigningKeySeed() ([]byte, error) {
	return primitives.NewSeed()
}

// GenerateTopicKey draws a fresh, CSPRNG-sourced 32-byte symmetric topic
// key suitable for New, or for an existing member to hand to a newcomer
// out of band instead of running discovery.
func GenerateTopicKey() ([]byte, error) {
	return primitives.NewTopicKey()
}
