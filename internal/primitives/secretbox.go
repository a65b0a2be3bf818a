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

	"golang.org/x/crypto/nacl/secretbox"
)

const (
	// SecretKeySize is the length in bytes of a topic key.
	SecretKeySize = 32
	// SecretNonceSize is the length in bytes of a secret_box nonce.
	SecretNonceSize = 24
	// SecretOverhead is the number of bytes secret_box adds to the
	// plaintext (Poly1305 authenticator).
	SecretOverhead = secretbox.Overhead
)

// ErrBadCiphertext is returned when authenticated decryption fails, for
// either secret_box_open or box_open.
var ErrBadCiphertext = errors.New("primitives: ciphertext authentication failed")

// ErrSecretKeySize is returned when a topic key does not have
// SecretKeySize bytes.
var ErrSecretKeySize = errors.New("primitives: invalid topic key length")

// NewTopicKey draws a fresh, CSPRNG-sourced 32-byte symmetric topic key.
func NewTopicKey() ([]byte, error) {
	key := make([]byte, SecretKeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, err
	}
	return key, nil
}

// SecretBox authenticates and encrypts plaintext under topicKey, drawing a
// fresh random nonce per call and prepending it to the sealed box. The
// layout is the NaCl secretbox one: nonce(24) ∥ tag(16) ∥ ciphertext.
func SecretBox(topicKey, plaintext []byte) ([]byte, error) {
	if len(topicKey) != SecretKeySize {
		return nil, ErrSecretKeySize
	}
	var nonce [SecretNonceSize]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return nil, err
	}
	var key [32]byte
	copy(key[:], topicKey)

	out := make([]byte, SecretNonceSize, SecretNonceSize+len(plaintext)+SecretOverhead)
	copy(out, nonce[:])
	return secretbox.Seal(out, plaintext, &nonce, &key), nil
}

// SecretBoxOpen reverses SecretBox.
func SecretBoxOpen(topicKey, sealed []byte) ([]byte, error) {
	if len(topicKey) != SecretKeySize {
		return nil, ErrSecretKeySize
	}
	if len(sealed) < SecretNonceSize+SecretOverhead {
		return nil, ErrBadCiphertext
	}
	var nonce [SecretNonceSize]byte
	copy(nonce[:], sealed[:SecretNonceSize])
	var key [32]byte
	copy(key[:], topicKey)

	plaintext, ok := secretbox.Open(nil, sealed[SecretNonceSize:], &nonce, &key)
	if !ok {
		return nil, ErrBadCiphertext
	}
	return plaintext, nil
}
