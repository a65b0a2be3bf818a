// Package identity derives stable, short participant identifiers from
// long-term Ed25519 signing public keys.
package identity

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
	"encoding/hex"
	"errors"

	"golang.org/x/crypto/blake2b"
)

// Size is the length in bytes of a participant ID.
const Size = 16

// ErrInvalidPublicKey is returned when the input to Derive is not a
// 32-byte Ed25519 public key.
var ErrInvalidPublicKey = errors.New("identity: invalid public key length")

// ID is a 16-byte BLAKE2b-derived short identifier for a participant. It
// is a pure function of the participant's signing public key; the two
// should never be stored independently, so ID carries no other state.
type ID [Size]byte

// String renders the ID as lowercase hex, for logs and error messages at
// the caller's layer; this package itself never logs.
func (id ID) String() string {
	return hex.EncodeToString(id[:])
}

// Bytes returns the ID's binary representation.
func (id ID) Bytes() []byte {
	return id[:]
}

// Derive computes the participant ID for a 32-byte Ed25519 signing public
// key: BLAKE2b-128 over the raw key bytes, truncated to Size bytes by
// BLAKE2b's own variable digest length (not a truncation of a longer
// hash).
func Derive(signingPublicKey []byte) (ID, error) {
	var id ID
	if len(signingPublicKey) != 32 {
		return id, ErrInvalidPublicKey
	}
	h, err := blake2b.New(Size, nil)
	if err != nil {
		return id, err
	}
	if _, err := h.Write(signingPublicKey); err != nil {
		return id, err
	}
	copy(id[:], h.Sum(nil))
	return id, nil
}

// FromBytes wraps a 16-byte slice already known to be a participant ID
// (e.g. one just read off the wire) without re-deriving it.
func FromBytes(b []byte) (ID, error) {
	var id ID
	if len(b) != Size {
		return id, ErrInvalidPublicKey
	}
	copy(id[:], b)
	return id, nil
}
