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
	"errors"

	"github.com/skorokithakis/stringphone/internal/identity"
	"github.com/skorokithakis/stringphone/internal/primitives"
	"github.com/skorokithakis/stringphone/internal/trust"
)

// ParticipantID is a 16-byte identifier derived from a participant's
// signing public key. It is returned by ID, AddParticipant,
// and carried on the wire in place of the full 32-byte key.
type ParticipantID [identity.Size]byte

// String renders the ID as lowercase hex.
func (id ParticipantID) String() string {
	return identity.ID(id).String()
}

// Bytes returns the ID's binary representation.
func (id ParticipantID) Bytes() []byte {
	return id[:]
}

// ErrInvalidSeed is returned by New when a supplied seed is not exactly
// 32 bytes.
var ErrInvalidSeed = errors.New("stringphone: invalid seed length")

// ErrInvalidTopicKey is returned by New when a supplied topic key is not
// exactly 32 bytes.
var ErrInvalidTopicKey = errors.New("stringphone: invalid topic key length")

// Topic is a single participant's view of a topic: its long-term signing
// identity, the shared topic key (once known), the local trust set, and
// at most one pending ephemeral keypair from an in-flight introduction.
// All operations are synchronous, pure functions of this state plus
// their arguments (plus CSPRNG draws for nonces and ephemeral keys); a
// Topic is not safe for concurrent use without external locking.
type Topic struct {
	seed      []byte // 32-byte Ed25519 seed; the secret identity
	publicKey []byte // cached 32-byte Ed25519 public key
	id        identity.ID

	topicKey []byte // 32 bytes once set, nil until then; frozen once set

	trust trust.Set

	pendingEphemeralPub  []byte // 32 bytes, set by ConstructIntro
	pendingEphemeralPriv []byte // 32 bytes, cleared on successful ParseReply
}

// New creates a participant. A nil seed is replaced by a freshly
// generated one; a nil topicKey leaves the participant in the
// discovery-eligible state, with no topic key set yet.
func New(seed, topicKey []byte) (*Topic, error) {
	if seed == nil {
		s, err := primitives.NewSeed()
		if err != nil {
			return nil, err
		}
		seed = s
	}
	if len(seed) != primitives.SeedSize {
		return nil, ErrInvalidSeed
	}
	pub, err := primitives.PublicKeyFromSeed(seed)
	if err != nil {
		return nil, err
	}
	id, err := identity.Derive(pub)
	if err != nil {
		return nil, err
	}

	t := &Topic{
		seed:      append([]byte(nil), seed...),
		publicKey: pub,
		id:        id,
	}
	if topicKey != nil {
		if len(topicKey) != primitives.SecretKeySize {
			return nil, ErrInvalidTopicKey
		}
		t.topicKey = append([]byte(nil), topicKey...)
	}
	return t, nil
}

// PublicKey returns the participant's 32-byte long-term Ed25519
// verification key.
func (t *Topic) PublicKey() []byte {
	return append([]byte(nil), t.publicKey...)
}

// ID returns the participant's own short identifier.
func (t *Topic) ID() ParticipantID {
	return ParticipantID(t.id)
}

// HasTopicKey reports whether the topic key has been set, either at
// construction or via a completed ParseReply.
func (t *Topic) HasTopicKey() bool {
	return t.topicKey != nil
}

// AddParticipant computes the ID for signingPublicKey and trusts it for
// subsequent Decode calls. Adding an already-present ID is idempotent.
func (t *Topic) AddParticipant(signingPublicKey []byte) (ParticipantID, error) {
	id, err := t.trust.Add(signingPublicKey)
	return ParticipantID(id), err
}

// RemoveParticipant revokes trust in id. It is a no-op if id was not
// trusted.
func (t *Topic) RemoveParticipant(id ParticipantID) {
	t.trust.Remove(identity.ID(id))
}

// Close zeroes the seed, topic key, and any pending ephemeral private
// key in memory, best-effort. It does not release any other
// resource; Topic holds no file handles or goroutines.
func (t *Topic) Close() {
	zero(t.seed)
	zero(t.topicKey)
	zero(t.pendingEphemeralPriv)
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
