// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package message - the peer wire protocol
//
// A connection carries exactly one request followed by at most one
// reply.  Each is a frame: a Varint64 byte count followed by a JSON
// envelope
//
//   {"type": "PING", "payload": ["127.0.0.1", 8888]}
//
// Requests:  PING LIST CASH BLOB BLOC
// Replies:   REPL-PING REPL-LIST REPL-CASH REPL-BLOB ERRO
package message
