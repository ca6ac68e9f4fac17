// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - the proof-of-work secured append-only chain
//
// A ledger always starts from the same genesis block and grows either
// by Append, which mines one block per transaction, or by
// AcceptRemoteChain, which swaps in a longer valid chain received from
// a peer.
//
// Two different hashes are involved and must not be mixed up:
//
//   proof-of-work: sha256(index-1 ‖ nonce ‖ previous_hash)
//   block hash:    sha256(index ‖ timestamp ‖ previous_hash ‖ transaction)
package ledger
