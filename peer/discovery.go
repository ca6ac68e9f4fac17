// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package peer

import (
	"github.com/blobchain/blobd/fault"
	"github.com/blobchain/blobd/message"
	"github.com/blobchain/blobd/registry"
)

// Discover - walk the network outward from the seeds
//
// each candidate that is not one of this node's own addresses, not
// already a peer, and not recently unreachable is sent PING; any reply
// makes it a peer and its own peer list is then fetched and queued.  A failure abandons only
// that candidate.  Stops when the queue is empty or the registry is
// full and returns the number of peers added.
func (n *Node) Discover(seeds []registry.Address) int {
	log := n.log

	queue := make([]registry.Address, 0, len(seeds))
	queue = append(queue, seeds...)
	tried := make(map[registry.Address]struct{})

	added := 0
	for 0 != len(queue) && !n.peers.IsFull() {
		candidate := queue[0]
		queue = queue[1:]

		if n.local.Is(candidate) || n.peers.Contains(candidate) {
			continue
		}
		if _, ok := tried[candidate]; ok {
			continue
		}
		tried[candidate] = struct{}{}
		if _, ok := n.unreachable.Get(candidate.String()); ok {
			log.Debugf("discover: skip unreachable: %s", candidate)
			continue
		}

		_, err := n.Routine(candidate, message.Ping{Address: n.self})
		if nil != err {
			log.Infof("discover: ping: %s  error: %s", candidate, err)
			if fault.IsErrConnection(err) {
				n.unreachable.Set(candidate.String(), struct{}{}, n.unreachableExpiry)
			}
			continue
		}

		if n.peers.Add(candidate) {
			added += 1
			log.Infof("discover: added peer: %s", candidate)
		} else if n.peers.IsFull() {
			break
		}

		// the list goes straight to the queue, only answering
		// candidates become peers
		reply, err := Exchange(candidate, message.List{}, n.dialTimeout)
		if nil != err {
			log.Infof("discover: list: %s  error: %s", candidate, err)
			continue
		}
		list, ok := reply.(message.ReplyList)
		if !ok {
			log.Warnf("discover: list: %s  unexpected reply: %s", candidate, reply.Type())
			continue
		}
		for _, a := range list.Peers {
			if !n.local.Is(a) {
				queue = append(queue, a)
			}
		}
	}

	log.Infof("discover: added: %d  peers: %d", added, n.peers.Count())
	return added
}
