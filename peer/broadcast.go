// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package peer

import (
	"github.com/blobchain/blobd/fault"
	"github.com/blobchain/blobd/handler"
	"github.com/blobchain/blobd/message"
)

// Broadcast - send a message to every registered peer in turn
//
// returns the number of peers it was delivered to; a peer that closed
// without replying still received it
func (n *Node) Broadcast(m message.Message) int {
	delivered, _ := n.broadcast(m)
	return delivered
}

// Synchronise - ask every peer for its chain and adopt the longest
// valid one, true if the local chain was replaced
func (n *Node) Synchronise() bool {
	_, replaced := n.broadcast(message.Blob{})
	return replaced
}

func (n *Node) broadcast(m message.Message) (int, bool) {
	log := n.log

	delivered := 0
	replaced := false
	for _, to := range n.peers.Snapshot() {
		_, outcome, err := n.routine(to, m)
		if nil != err && fault.ErrNoReply != err {
			log.Warnf("broadcast: %s  to: %s  error: %s", m.Type(), to, err)
			continue
		}
		delivered += 1
		if handler.ChainReplaced == outcome {
			replaced = true
		}
	}
	log.Debugf("broadcast: %s  delivered: %d", m.Type(), delivered)
	return delivered, replaced
}
