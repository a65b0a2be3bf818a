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
	"crypto/rand"
	"errors"

	"golang.org/x/crypto/nacl/box"
)

const (
	// BoxPublicKeySize is the length in bytes of a Curve25519 public key.
	BoxPublicKeySize = 32
	// BoxPrivateKeySize is the length in bytes of a Curve25519 private key.
	BoxPrivateKeySize = 32
	// BoxNonceSize is the length in bytes of a box nonce.
	BoxNonceSize = 24
	// BoxOverhead is the number of bytes box_seal adds to the plaintext
	// (Poly1305 authenticator).
	BoxOverhead = box.Overhead
)

// ErrBoxKeySize is returned when a Curve25519 key does not have the
// expected length.
var ErrBoxKeySize = errors.New("primitives: invalid curve25519 key length")

// GenerateBoxKeypair draws a fresh ephemeral Curve25519 keypair from the
// OS CSPRNG. Used once per construct-intro call ("ephemeral
// encryption key").
func GenerateBoxKeypair() (pub, priv []byte, err error) {
	p, s, err := box.GenerateKey(rand.Reader)
	if err != nil {
		return nil, nil, err
	}
	return p[:], s[:], nil
}

// BoxSeal encrypts plaintext for recipientPublic using the Curve25519
// Diffie-Hellman shared secret between recipientPublic and senderPrivate,
// then authenticates with Poly1305 over a fresh random nonce prepended to
// the output. The wire layout is nonce(24) ∥
// ciphertext+tag.
func BoxSeal(recipientPublic, senderPrivate, plaintext []byte) ([]byte, error) {
	if len(recipientPublic) != BoxPublicKeySize || len(senderPrivate) != BoxPrivateKeySize {
		return nil, ErrBoxKeySize
	}
	var nonce [BoxNonceSize]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return nil, err
	}
	var rpk, spk [32]byte
	copy(rpk[:], recipientPublic)
	copy(spk[:], senderPrivate)

	out := make([]byte, BoxNonceSize, BoxNonceSize+len(plaintext)+BoxOverhead)
	copy(out, nonce[:])
	return box.Seal(out, plaintext, &nonce, &rpk, &spk), nil
}

// BoxOpen reverses BoxSeal: it splits the leading nonce off sealed,
// recomputes the Curve25519 shared secret between senderPublic and
// recipientPrivate, and authenticates/decrypts the remainder.
func BoxOpen(senderPublic, recipientPrivate, sealed []byte) ([]byte, error) {
	if len(senderPublic) != BoxPublicKeySize || len(recipientPrivate) != BoxPrivateKeySize {
		return nil, ErrBoxKeySize
	}
	if len(sealed) < BoxNonceSize+BoxOverhead {
		return nil, ErrBadCiphertext
	}
	var nonce [BoxNonceSize]byte
	copy(nonce[:], sealed[:BoxNonceSize])
	var spk, rpk [32]byte
	copy(spk[:], senderPublic)
	copy(rpk[:], recipientPrivate)

	plaintext, ok := box.Open(nil, sealed[BoxNonceSize:], &nonce, &spk, &rpk)
	if !ok {
		return nil, ErrBadCiphertext
	}
	return plaintext, nil
}
