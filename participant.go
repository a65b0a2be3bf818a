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

import (
	"bytes"
	"fmt"

	"github.com/skorokithakis/stringphone/internal/identity"
	"github.com/skorokithakis/stringphone/internal/primitives"
	"github.com/skorokithakis/stringphone/internal/wire"
)

// Encode authenticates and encrypts plaintext under the topic key and
// signs the result under this participant's long-term identity,
// producing a Message frame ready to publish to the topic.
func (t *Topic) Encode(plaintext []byte) ([]byte, error) {
	if t.topicKey == nil {
		return nil, ErrNoKey
	}
	ct, err := primitives.SecretBox(t.topicKey, plaintext)
	if err != nil {
		return nil, err
	}

	msg := wire.Message{
		SenderID:   [16]byte(t.id),
		Ciphertext: ct,
	}
	sig, err := primitives.Sign(t.seed, msg.SignedBody())
	if err != nil {
		return nil, err
	}
	copy(msg.Signature[:], sig)
	return wire.EncodeMessage(msg), nil
}

// Decode authenticates, verifies trust for, and decrypts frame.
//
// If naive is true, trust lookup and signature verification are both
// skipped entirely; only decryption is performed. If ignoreUntrusted is
// true, a Message from a sender absent from the trust set yields (nil,
// nil) instead of ErrUntrustedKey — but a bad signature from a sender
// that *is* present in the trust set still fails with ErrBadSignature
// regardless of ignoreUntrusted, since that is evidence of an attack,
// not mere unfamiliarity.
//
// An Introduction or Reply frame is reported via ErrIntroductionReceived
// / ErrReplyReceived as a signal for the caller to invoke ConstructReply
// / ParseReply; these are not failures.
func (t *Topic) Decode(frame []byte, naive, ignoreUntrusted bool) ([]byte, error) {
	tag, err := wire.PeekTag(frame)
	if err != nil {
		return nil, ErrMalformed
	}
	switch tag {
	case wire.TagIntroduction:
		return nil, ErrIntroductionReceived
	case wire.TagReply:
		return nil, ErrReplyReceived
	case wire.TagMessage:
		// fall through to message decoding below
	default:
		return nil, ErrMalformed
	}

	msg, err := wire.DecodeMessage(frame)
	if err != nil {
		return nil, ErrMalformed
	}

	if !naive {
		senderID := identity.ID(msg.SenderID)
		senderKey, trusted := t.trust.Lookup(senderID)
		if !trusted {
			if ignoreUntrusted {
				return nil, nil
			}
			return nil, ErrUntrustedKey
		}
		if !primitives.Verify(senderKey, msg.SignedBody(), msg.Signature[:]) {
			return nil, ErrBadSignature
		}
	}

	if t.topicKey == nil {
		return nil, ErrNoKey
	}
	plaintext, err := primitives.SecretBoxOpen(t.topicKey, msg.Ciphertext)
	if err != nil {
		return nil, ErrBadCiphertext
	}
	return plaintext, nil
}

// ConstructIntro generates a fresh ephemeral Curve25519 keypair,
// retaining the private half as this participant's single pending
// introduction (replacing any prior one), and emits an Introduction
// frame binding the ephemeral public key to this participant's
// long-term signing identity.
func (t *Topic) ConstructIntro() ([]byte, error) {
	ephPub, ephPriv, err := primitives.GenerateBoxKeypair()
	if err != nil {
		return nil, err
	}

	var ephPubArr [32]byte
	copy(ephPubArr[:], ephPub)
	sig, err := primitives.Sign(t.seed, ephPubArr[:])
	if err != nil {
		return nil, err
	}

	if t.pendingEphemeralPriv != nil {
		zero(t.pendingEphemeralPriv)
	}
	t.pendingEphemeralPub = ephPub
	t.pendingEphemeralPriv = ephPriv

	intro := wire.Introduction{
		SigningPublic:   toArray32(t.publicKey),
		EphemeralPublic: ephPubArr,
	}
	copy(intro.Signature[:], sig)
	return wire.EncodeIntroduction(intro), nil
}

// ConstructReply verifies an Introduction frame and, if valid, encrypts
// the topic key to the introduction's ephemeral public key, producing a
// Reply frame only the introducer can decrypt.
func (t *Topic) ConstructReply(introFrame []byte) ([]byte, error) {
	if t.topicKey == nil {
		return nil, ErrNoKey
	}
	intro, err := wire.DecodeIntroduction(introFrame)
	if err != nil {
		return nil, ErrMalformed
	}
	if !primitives.Verify(intro.SigningPublic[:], intro.EphemeralPublic[:], intro.Signature[:]) {
		return nil, ErrBadSignature
	}

	recipientID, err := identity.Derive(intro.SigningPublic[:])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	curvePriv, err := primitives.CurvePrivateFromSeed(t.seed)
	if err != nil {
		return nil, err
	}
	curvePub, err := primitives.CurvePublicFromSigning(t.publicKey)
	if err != nil {
		return nil, err
	}

	boxed, err := primitives.BoxSeal(intro.EphemeralPublic[:], curvePriv, t.topicKey)
	if err != nil {
		return nil, err
	}

	reply := wire.Reply{
		RecipientID:   [16]byte(recipientID),
		EncryptionKey: toArray32(curvePub),
		SigningKey:    toArray32(t.publicKey),
	}
	copy(reply.EncryptedTopicKey[:], boxed)
	return wire.EncodeReply(reply), nil
}

// ParseReply consumes a Reply frame produced by ConstructReply in
// response to this participant's pending introduction. It returns true
// only if the reply targeted this participant and the topic key was not
// already set, in which case the topic key is stored and the pending
// ephemeral keypair is cleared. A reply addressed to someone else, or
// arriving after the topic key is already set, returns false without
// mutating any state — neither is treated as an error.
func (t *Topic) ParseReply(replyFrame []byte) (bool, error) {
	reply, err := wire.DecodeReply(replyFrame)
	if err != nil {
		return false, ErrMalformed
	}
	if t.topicKey != nil {
		return false, nil
	}
	if t.pendingEphemeralPriv == nil {
		return false, ErrNoPendingIntro
	}
	if identity.ID(reply.RecipientID) != t.id {
		return false, nil
	}

	expectedEncryptionKey, err := primitives.CurvePublicFromSigning(reply.SigningKey[:])
	if err != nil || !bytes.Equal(expectedEncryptionKey, reply.EncryptionKey[:]) {
		return false, ErrBadSignature
	}

	topicKey, err := primitives.BoxOpen(reply.EncryptionKey[:], t.pendingEphemeralPriv, reply.EncryptedTopicKey[:])
	if err != nil {
		return false, ErrBadCiphertext
	}

	t.topicKey = topicKey
	zero(t.pendingEphemeralPriv)
	t.pendingEphemeralPriv = nil
	t.pendingEphemeralPub = nil
	return true, nil
}

func toArray32(b []byte) [32]byte {
	var a [32]byte
	copy(a[:], b)
	return a
}
