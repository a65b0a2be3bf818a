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
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/curve25519"
)

func TestSignVerifyRoundTrip(t *testing.T) {
	seed, err := NewSeed()
	require.NoError(t, err)
	pub, err := PublicKeyFromSeed(seed)
	require.NoError(t, err)

	msg := []byte("hello topic")
	sig, err := Sign(seed, msg)
	require.NoError(t, err)
	require.Len(t, sig, SignatureSize)
	require.True(t, Verify(pub, msg, sig))

	// Mutating any signature byte must break verification.
	bad := append([]byte(nil), sig...)
	bad[0] ^= 0xff
	require.False(t, Verify(pub, msg, bad))

	// Mutating the message must break verification too.
	require.False(t, Verify(pub, []byte("hello topic!"), sig))
}

func TestSecretBoxRoundTrip(t *testing.T) {
	key, err := NewTopicKey()
	require.NoError(t, err)

	for _, plaintext := range [][]byte{{}, []byte("x"), make([]byte, 65535)} {
		sealed, err := SecretBox(key, plaintext)
		require.NoError(t, err)
		require.Len(t, sealed, SecretNonceSize+len(plaintext)+SecretOverhead)

		opened, err := SecretBoxOpen(key, sealed)
		require.NoError(t, err)
		require.Equal(t, plaintext, opened)
	}
}

func TestSecretBoxNoncesAreFresh(t *testing.T) {
	key, err := NewTopicKey()
	require.NoError(t, err)
	a, err := SecretBox(key, []byte("same plaintext"))
	require.NoError(t, err)
	b, err := SecretBox(key, []byte("same plaintext"))
	require.NoError(t, err)
	require.NotEqual(t, a, b, "nonces must differ between calls")
}

func TestSecretBoxOpenRejectsTampering(t *testing.T) {
	key, err := NewTopicKey()
	require.NoError(t, err)
	sealed, err := SecretBox(key, []byte("message"))
	require.NoError(t, err)

	sealed[len(sealed)-1] ^= 0xff
	_, err = SecretBoxOpen(key, sealed)
	require.ErrorIs(t, err, ErrBadCiphertext)
}

func TestBoxRoundTrip(t *testing.T) {
	recipientPub, recipientPriv, err := GenerateBoxKeypair()
	require.NoError(t, err)
	senderPub, senderPriv, err := GenerateBoxKeypair()
	require.NoError(t, err)

	plaintext := []byte("topic key goes here, 32 bytes!!")
	sealed, err := BoxSeal(recipientPub, senderPriv, plaintext)
	require.NoError(t, err)
	require.Len(t, sealed, BoxNonceSize+len(plaintext)+BoxOverhead)

	opened, err := BoxOpen(senderPub, recipientPriv, sealed)
	require.NoError(t, err)
	require.Equal(t, plaintext, opened)
}

func TestBoxOpenRejectsWrongKey(t *testing.T) {
	recipientPub, _, err := GenerateBoxKeypair()
	require.NoError(t, err)
	senderPub, senderPriv, err := GenerateBoxKeypair()
	require.NoError(t, err)
	_, otherPriv, err := GenerateBoxKeypair()
	require.NoError(t, err)

	sealed, err := BoxSeal(recipientPub, senderPriv, []byte("secret"))
	require.NoError(t, err)

	_, err = BoxOpen(senderPub, otherPriv, sealed)
	require.ErrorIs(t, err, ErrBadCiphertext)
}

func TestEd25519ToCurve25519Conversion(t *testing.T) {
	seed, err := NewSeed()
	require.NoError(t, err)
	signingPub, err := PublicKeyFromSeed(seed)
	require.NoError(t, err)

	curvePub, err := CurvePublicFromSigning(signingPub)
	require.NoError(t, err)
	require.Len(t, curvePub, BoxPublicKeySize)

	curvePriv, err := CurvePrivateFromSeed(seed)
	require.NoError(t, err)
	require.Len(t, curvePriv, BoxPrivateKeySize)

	// The Montgomery public key derived via the birational map must match
	// a direct Curve25519 scalar-base-mult of the clamped private scalar.
	var clamped [32]byte
	copy(clamped[:], curvePriv)
	want, err := curve25519.X25519(clamped[:], curve25519.Basepoint)
	require.NoError(t, err)
	require.Equal(t, want, curvePub)

	// And the pair must be usable for an actual box round trip.
	ephPub, ephPriv, err := GenerateBoxKeypair()
	require.NoError(t, err)
	sealed, err := BoxSeal(curvePub, ephPriv, []byte("to the converted identity"))
	require.NoError(t, err)
	opened, err := BoxOpen(ephPub, curvePriv, sealed)
	require.NoError(t, err)
	require.Equal(t, []byte("to the converted identity"), opened)
}

func TestInvalidLengthsRejected(t *testing.T) {
	_, err := PublicKeyFromSeed([]byte("short"))
	require.ErrorIs(t, err, ErrInvalidSeed)

	_, err = CurvePublicFromSigning([]byte("short"))
	require.ErrorIs(t, err, ErrInvalidPoint)

	_, err = CurvePrivateFromSeed([]byte("short"))
	require.ErrorIs(t, err, ErrInvalidSeed)

	_, err = SecretBox([]byte("short"), []byte("x"))
	require.ErrorIs(t, err, ErrSecretKeySize)

	_, err = BoxSeal([]byte("short"), make([]byte, BoxPrivateKeySize), []byte("x"))
	require.ErrorIs(t, err, ErrBoxKeySize)
}
