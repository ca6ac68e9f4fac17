// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package peer - the blobchain node
//
// a Node owns one listener, one registry of peer addresses, one ledger
// and one miner.  Every exchange with another node uses its own TCP
// connection carrying a single request and at most one reply.
//
// inbound:  accept → decode → dispatch → reply → close → announce
// outbound: dial → send → await one reply → close → interpret
package peer
