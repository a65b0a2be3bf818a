// Package stringphone implements an end-to-end encrypted and
// authenticated messaging primitive meant to sit above an untrusted
// many-to-many transport (a pub/sub bus, a broadcast socket, an MQTT
// topic, an IRC channel). It is not a transport, a presence service, or
// a group-key-rotation protocol: callers supply and receive opaque byte
// frames, and are responsible for getting those frames from one
// participant to another.
//
// A Topic is a local participant's view of one logical room: a
// long-term Ed25519 signing identity, an optional shared symmetric
// topic key, a trust set of other participants' verification keys, and
// at most one pending ephemeral keypair used during discovery.
// Encode/Decode handle steady-state traffic once the topic key is
// known; ConstructIntro/ConstructReply/ParseReply implement the
// two-message handshake a newcomer uses to obtain the topic key from an
// existing member.
//
// Topic is not thread-safe. Concurrent use of the same Topic from
// multiple goroutines requires external synchronization.
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
