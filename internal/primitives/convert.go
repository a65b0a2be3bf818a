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
	"crypto/sha512"
	"errors"

	"filippo.io/edwards25519"
)

// ErrInvalidPoint is returned when a signing public key does not decode to
// a valid point on the Ed25519 curve.
var ErrInvalidPoint = errors.New("primitives: not a valid Ed25519 point")

// CurvePublicFromSigning converts a long-term Ed25519 signing public key to
// its Curve25519 (Montgomery) equivalent, using the standard birational map
// between the twisted Edwards and Montgomery models of the curve. This is
// the conversion §4.1 and §9 of the protocol require to turn a signing
// identity into a Diffie-Hellman target for box_seal/box_open.
func CurvePublicFromSigning(signingPublic []byte) ([]byte, error) {
	if len(signingPublic) != PublicKeySize {
		return nil, ErrInvalidPoint
	}
	p, err := new(edwards25519.Point).SetBytes(signingPublic)
	if err != nil {
		return nil, ErrInvalidPoint
	}
	return p.BytesMontgomery(), nil
}

// CurvePrivateFromSeed derives the Curve25519 private scalar corresponding
// to the Ed25519 identity rooted at seed. This is the same derivation
// libsodium uses for crypto_sign_ed25519_sk_to_curve25519: hash the seed,
// keep the low half, and clamp it for use as an X25519 scalar.
func CurvePrivateFromSeed(seed []byte) ([]byte, error) {
	if len(seed) != SeedSize {
		return nil, ErrInvalidSeed
	}
	h := sha512.Sum512(seed)
	d := make([]byte, 32)
	copy(d, h[:32])
	d[0] &= 248
	d[31] &= 127
	d[31] |= 64
	return d, nil
}
