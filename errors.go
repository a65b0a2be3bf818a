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

import "errors"

// Error kinds returned by Topic's operations. Callers should compare
// with errors.Is; none of these wrap caller-supplied context, so plain
// sentinels are used rather than a wrapping error type.
var (
	// ErrMalformed means a frame was too short, carried an unknown type
	// tag, or had an internally inconsistent length. Raised before any
	// cryptographic work.
	ErrMalformed = errors.New("stringphone: malformed frame")

	// ErrIntroductionReceived signals that Decode was handed an
	// Introduction frame; the caller should consider ConstructReply.
	ErrIntroductionReceived = errors.New("stringphone: introduction frame received")

	// ErrReplyReceived signals that Decode was handed a Reply frame; the
	// caller should consider ParseReply.
	ErrReplyReceived = errors.New("stringphone: reply frame received")

	// ErrUntrustedKey means the sender's ID is absent from the trust set
	// and ignoreUntrusted was false.
	ErrUntrustedKey = errors.New("stringphone: sender not trusted")

	// ErrBadSignature means a signature check failed against a key the
	// caller trusts, or a key a frame itself binds (e.g. an
	// Introduction's own signing_pub).
	ErrBadSignature = errors.New("stringphone: signature verification failed")

	// ErrNoKey means an operation that requires the topic key was
	// invoked before one was set.
	ErrNoKey = errors.New("stringphone: topic key not set")

	// ErrBadCiphertext means authenticated decryption failed.
	ErrBadCiphertext = errors.New("stringphone: ciphertext authentication failed")

	// ErrNoPendingIntro means ParseReply was called with no ephemeral
	// keypair pending (no prior ConstructIntro, or it was already
	// consumed/replaced).
	ErrNoPendingIntro = errors.New("stringphone: no pending introduction")
)
