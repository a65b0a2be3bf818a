// Package trust holds the local mapping from participant ID to signing
// public key a participant uses to evaluate incoming messages. It
// performs no cryptographic work; adding a key does not validate it
// beyond its length.
package trust

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
	"errors"

	"github.com/skorokithakis/stringphone/internal/identity"
)

// ErrInvalidPublicKey is returned by Add when the supplied key is not a
// 32-byte Ed25519 public key.
var ErrInvalidPublicKey = errors.New("trust: invalid public key length")

// Set is a flat, unordered mapping from participant ID to signing public
// key. The zero value is an empty, ready-to-use set. Set is not
// thread-safe; concurrent use requires external synchronization, as with
// every other piece of this library's state.
type Set struct {
	keys map[identity.ID][]byte
}

// Add computes the ID for signingPublicKey and stores the mapping. Adding
// an already-present ID is idempotent.
func (s *Set) Add(signingPublicKey []byte) (identity.ID, error) {
	id, err := identity.Derive(signingPublicKey)
	if errors.Is(err, identity.ErrInvalidPublicKey) {
		return id, ErrInvalidPublicKey
	}
	if err != nil {
		return id, err
	}
	if s.keys == nil {
		s.keys = make(map[identity.ID][]byte)
	}
	key := make([]byte, len(signingPublicKey))
	copy(key, signingPublicKey)
	s.keys[id] = key
	return id, nil
}

// Remove deletes id from the set. It is a no-op if id is absent.
func (s *Set) Remove(id identity.ID) {
	delete(s.keys, id)
}

// Lookup returns the signing public key for id and whether it was found.
func (s *Set) Lookup(id identity.ID) ([]byte, bool) {
	key, ok := s.keys[id]
	return key, ok
}

// Len returns the number of trusted participants.
func (s *Set) Len() int {
	return len(s.keys)
}

// Range calls f for every (id, signing public key) pair in the set, in
// unspecified order, stopping early if f returns false. Range exists so
// callers can persist and restore the trust set across process restarts;
// the set itself has no persistence.
func (s *Set) Range(f func(id identity.ID, signingPublicKey []byte) bool) {
	for id, key := range s.keys {
		if !f(id, key) {
			return
		}
	}
}
