// Package primitives adapts the Ed25519/Curve25519/NaCl building blocks the
// rest of stringphone is composed from. Nothing here carries protocol
// policy (trust, framing, handshake state); it is strictly the four
// operations: sign, verify, box, secret box.
package primitives

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

import (
	stded25519 "crypto/ed25519"
	"crypto/rand"
	"errors"
)

const (
	// SeedSize is the length in bytes of an Ed25519 seed.
	SeedSize = stded25519.SeedSize
	// PublicKeySize is the length in bytes of an Ed25519 public key.
	PublicKeySize = stded25519.PublicKeySize
	// SignatureSize is the length in bytes of a detached Ed25519 signature.
	SignatureSize = stded25519.SignatureSize
)

// ErrInvalidSeed is returned when a seed does not have SeedSize bytes.
var ErrInvalidSeed = errors.New("primitives: invalid seed length")

// NewSeed draws a fresh, CSPRNG-sourced Ed25519 seed.
func NewSeed() ([]byte, error) {
	seed := make([]byte, SeedSize)
	if _, err := rand.Read(seed); err != nil {
		return nil, err
	}
	return seed, nil
}

// PublicKeyFromSeed derives the 32-byte Ed25519 public key for a seed.
func PublicKeyFromSeed(seed []byte) ([]byte, error) {
	if len(seed) != SeedSize {
		return nil, ErrInvalidSeed
	}
	priv := stded25519.NewKeyFromSeed(seed)
	return []byte(priv.Public().(stded25519.PublicKey)), nil
}

// Sign produces a detached Ed25519 signature of message under the identity
// derived from seed.
func Sign(seed, message []byte) ([]byte, error) {
	if len(seed) != SeedSize {
		return nil, ErrInvalidSeed
	}
	priv := stded25519.NewKeyFromSeed(seed)
	return stded25519.Sign(priv, message), nil
}

// Verify reports whether sig is a valid Ed25519 signature of message under
// publicKey. Verification is delegated to the standard library's
// crypto/ed25519, whose scalar multiplication runs in variable time with
// respect to the signature; it is not a constant-time verifier.
func Verify(publicKey, message, sig []byte) bool {
	if len(publicKey) != PublicKeySize || len(sig) != SignatureSize {
		return false
	}
	return stded25519.Verify(publicKey, message, sig)
}
