// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package handler

import (
	"github.com/bitmark-inc/logger"

	"github.com/blobchain/blobd/message"
	"github.com/blobchain/blobd/registry"
)

// Outcome - effect of interpreting one reply
type Outcome int

// possible outcomes
const (
	NoChange Outcome = iota
	PeersAdded
	ChainReplaced
)

func (o Outcome) String() string {
	switch o {
	case NoChange:
		return "no change"
	case PeersAdded:
		return "peers added"
	case ChainReplaced:
		return "chain replaced"
	default:
		return "unknown"
	}
}

// Interpreter - reply side message handling
type Interpreter struct {
	log   *logger.L
	local *registry.Local
	peers PeerAdder
	chain ChainAcceptor
}

// NewInterpreter - no local address is ever added to the registry
func NewInterpreter(log *logger.L, local *registry.Local, peers PeerAdder, chain ChainAcceptor) *Interpreter {
	return &Interpreter{
		log:   log,
		local: local,
		peers: peers,
		chain: chain,
	}
}

// Interpret - apply the effect of a reply
func (i *Interpreter) Interpret(reply message.Message) Outcome {
	log := i.log

	switch r := reply.(type) {

	case message.ReplyPing:
		log.Debug("ping accepted")

	case message.ReplyCash:
		log.Debug("cash accepted")

	case message.Error:
		log.Infof("remote error: %s", r.Reason)

	case message.ReplyList:
		added := 0
		for _, a := range r.Peers {
			if i.local.Is(a) {
				continue
			}
			if i.peers.Add(a) {
				added += 1
			}
		}
		log.Debugf("list: received: %d  added: %d", len(r.Peers), added)
		if added > 0 {
			return PeersAdded
		}

	case message.ReplyBlob:
		if i.chain.AcceptRemoteChain(r.Blocks) {
			log.Infof("chain replaced: length: %d", len(r.Blocks))
			return ChainReplaced
		}
		log.Debugf("chain kept: remote length: %d", len(r.Blocks))

	default:
		log.Warnf("not a reply: %s", reply.Type())
	}
	return NoChange
}
