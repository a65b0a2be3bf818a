// Package wire implements the bit-exact encoder/decoder for the three
// frame types of the protocol: Message, Introduction, and
// Reply. The transport is assumed to be length-delimited already; this
// package never prepends or expects a length prefix of its own.
package wire

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

import "errors"

// Tag identifies the type of a frame; it is the frame's first byte.
type Tag byte

// The three wire frame types.
const (
	TagMessage      Tag = 'm'
	TagIntroduction Tag = 'i'
	TagReply        Tag = 'r'
)

const (
	sigSize   = 64
	idSize    = 16
	pubSize   = 32
	boxedKeySize = 72 // nonce(24) ∥ ciphertext+tag(48), see internal/primitives.BoxOverhead

	// MessageOverhead is the number of non-ciphertext bytes in a Message
	// frame: tag ∥ signature ∥ sender_id.
	MessageOverhead = 1 + sigSize + idSize
	// MessageMinCiphertextSize is the smallest legal ciphertext in a
	// Message frame: a secret_box of the empty plaintext (nonce + tag).
	MessageMinCiphertextSize = 24 + 16

	// IntroductionSize is the fixed total size of an Introduction frame.
	IntroductionSize = 1 + pubSize + sigSize + pubSize // 129
	// ReplySize is the fixed total size of a Reply frame.
	ReplySize = 1 + idSize + boxedKeySize + pubSize + pubSize // 153
)

// ErrMalformed is returned for frames that are too short, carry an
// unknown type tag, or have an internally inconsistent length, before
// any cryptographic work is attempted.
var ErrMalformed = errors.New("wire: malformed frame")

// PeekTag returns the type tag of frame without otherwise parsing it.
func PeekTag(frame []byte) (Tag, error) {
	if len(frame) < 1 {
		return 0, ErrMalformed
	}
	return Tag(frame[0]), nil
}

// Message is the decoded form of a Message frame:
// tag(1) ∥ signature(64) ∥ sender_id(16) ∥ ciphertext(var ≥ 40).
type Message struct {
	Signature  [sigSize]byte
	SenderID   [idSize]byte
	Ciphertext []byte
}

// SignedBody returns the bytes the Message's signature covers:
// sender_id ∥ ciphertext, in frame order.
func (m Message) SignedBody() []byte {
	body := make([]byte, 0, idSize+len(m.Ciphertext))
	body = append(body, m.SenderID[:]...)
	body = append(body, m.Ciphertext...)
	return body
}

// EncodeMessage serializes m as "m" ∥ sig ∥ sender_id ∥ ciphertext.
func EncodeMessage(m Message) []byte {
	frame := make([]byte, 0, MessageOverhead+len(m.Ciphertext))
	frame = append(frame, byte(TagMessage))
	frame = append(frame, m.Signature[:]...)
	frame = append(frame, m.SenderID[:]...)
	frame = append(frame, m.Ciphertext...)
	return frame
}

// DecodeMessage parses frame as a Message. It validates the tag and the
// minimum length but performs no cryptographic work.
func DecodeMessage(frame []byte) (Message, error) {
	var m Message
	if len(frame) < MessageOverhead+MessageMinCiphertextSize {
		return m, ErrMalformed
	}
	if Tag(frame[0]) != TagMessage {
		return m, ErrMalformed
	}
	copy(m.Signature[:], frame[1:1+sigSize])
	copy(m.SenderID[:], frame[1+sigSize:1+sigSize+idSize])
	m.Ciphertext = append([]byte(nil), frame[MessageOverhead:]...)
	return m, nil
}

// Introduction is the decoded form of an Introduction frame:
// tag(1) ∥ sender_signing_pub(32) ∥ signature(64) ∥ ephemeral_enc_pub(32).
type Introduction struct {
	SigningPublic   [pubSize]byte
	Signature       [sigSize]byte
	EphemeralPublic [pubSize]byte
}

// EncodeIntroduction serializes i as
// "i" ∥ signing_pub ∥ signature ∥ ephemeral_pub. The signature covers
// only EphemeralPublic.
func EncodeIntroduction(i Introduction) []byte {
	frame := make([]byte, 0, IntroductionSize)
	frame = append(frame, byte(TagIntroduction))
	frame = append(frame, i.SigningPublic[:]...)
	frame = append(frame, i.Signature[:]...)
	frame = append(frame, i.EphemeralPublic[:]...)
	return frame
}

// DecodeIntroduction parses frame as an Introduction.
func DecodeIntroduction(frame []byte) (Introduction, error) {
	var i Introduction
	if len(frame) != IntroductionSize {
		return i, ErrMalformed
	}
	if Tag(frame[0]) != TagIntroduction {
		return i, ErrMalformed
	}
	off := 1
	copy(i.SigningPublic[:], frame[off:off+pubSize])
	off += pubSize
	copy(i.Signature[:], frame[off:off+sigSize])
	off += sigSize
	copy(i.EphemeralPublic[:], frame[off:off+pubSize])
	return i, nil
}

// Reply is the decoded form of a Reply frame:
// tag(1) ∥ recipient_id(16) ∥ encrypted_topic_key(72) ∥
// encryption_key(32) ∥ sender_signing_pub(32). There is no top-level
// signature: authenticity comes from the box's own authenticator.
type Reply struct {
	RecipientID       [idSize]byte
	EncryptedTopicKey [boxedKeySize]byte
	EncryptionKey     [pubSize]byte // replier's Curve25519 public (derived from SigningKey) the topic key was boxed from
	SigningKey        [pubSize]byte // replier's long-term Ed25519 signing public key
}

// EncodeReply serializes r as
// "r" ∥ recipient_id ∥ encrypted_topic_key ∥ encryption_key ∥ signing_key.
func EncodeReply(r Reply) []byte {
	frame := make([]byte, 0, ReplySize)
	frame = append(frame, byte(TagReply))
	frame = append(frame, r.RecipientID[:]...)
	frame = append(frame, r.EncryptedTopicKey[:]...)
	frame = append(frame, r.EncryptionKey[:]...)
	frame = append(frame, r.SigningKey[:]...)
	return frame
}

// DecodeReply parses frame as a Reply.
func DecodeReply(frame []byte) (Reply, error) {
	var r Reply
	if len(frame) != ReplySize {
		return r, ErrMalformed
	}
	if Tag(frame[0]) != TagReply {
		return r, ErrMalformed
	}
	off := 1
	copy(r.RecipientID[:], frame[off:off+idSize])
	off += idSize
	copy(r.EncryptedTopicKey[:], frame[off:off+boxedKeySize])
	off += boxedKeySize
	copy(r.EncryptionKey[:], frame[off:off+pubSize])
	off += pubSize
	copy(r.SigningKey[:], frame[off:off+pubSize])
	return r, nil
}
