// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package handler

import (
	"github.com/bitmark-inc/logger"

	"github.com/blobchain/blobd/fault"
	"github.com/blobchain/blobd/message"
	"github.com/blobchain/blobd/registry"
)

// Dispatcher - request side message handling
type Dispatcher struct {
	log   *logger.L
	local *registry.Local
	peers PeerRegistry
	chain Chain
	miner Miner
}

// NewDispatcher - create a dispatcher over the node's state
//
// a PING carrying any of the local addresses is refused
func NewDispatcher(log *logger.L, local *registry.Local, peers PeerRegistry, chain Chain, miner Miner) *Dispatcher {
	return &Dispatcher{
		log:   log,
		local: local,
		peers: peers,
		chain: chain,
		miner: miner,
	}
}

// Dispatch - handle one request
//
// reply is nil when nothing is to be sent back; announce is non-nil
// when the caller must broadcast it after the reply is written.  All
// state changes have been committed when Dispatch returns.
func (d *Dispatcher) Dispatch(m message.Message) (reply message.Message, announce message.Message) {
	log := d.log

	switch req := m.(type) {

	case message.Ping:
		if d.local.Is(req.Address) {
			log.Warnf("ping: refused own address: %s", req.Address)
			return message.Error{Reason: message.ReasonOwnAddress}, nil
		}
		err := d.peers.Insert(req.Address)
		switch err {
		case nil:
			log.Infof("ping: added peer: %s", req.Address)
			return message.ReplyPing{}, nil
		case fault.ErrAlreadyPeer:
			log.Debugf("ping: already listed: %s", req.Address)
			return message.Error{Reason: message.ReasonAlreadyListed}, nil
		case fault.ErrRegistryFull:
			log.Warnf("ping: registry full, refused: %s", req.Address)
			return message.Error{Reason: message.ReasonRegistryFull}, nil
		default:
			log.Errorf("ping: %s  error: %s", req.Address, err)
			return message.Error{Reason: err.Error()}, nil
		}

	case message.List:
		peers := d.peers.Snapshot()
		log.Debugf("list: %d peers", len(peers))
		return message.ReplyList{Peers: peers}, nil

	case message.Blob:
		blocks := d.chain.Blocks()
		log.Debugf("blob: %d blocks", len(blocks))
		return message.ReplyBlob{Blocks: blocks}, nil

	case message.Cash:
		block, err := d.miner.Mine(req.Transaction)
		if nil != err {
			log.Warnf("cash: %+v  error: %s", req.Transaction, err)
			return message.Error{Reason: message.ReasonInvalidTransaction}, nil
		}
		log.Infof("cash: block: %d  hash: %s", block.Index, block.OwnHash)
		return message.ReplyCash{}, message.Bloc{Transaction: req.Transaction}

	case message.Bloc:
		block, err := d.miner.Mine(req.Transaction)
		if nil != err {
			log.Warnf("bloc: %+v  error: %s", req.Transaction, err)
		} else {
			log.Infof("bloc: block: %d  hash: %s", block.Index, block.OwnHash)
		}
		return nil, nil

	case message.ReplyPing, message.ReplyList, message.ReplyCash, message.ReplyBlob, message.Error:
		log.Warnf("ignored reply received as request: %s", m.Type())
		return nil, nil

	case message.Unknown:
		log.Warnf("ignored unknown message type: %q", req.Token)
		return nil, nil

	default:
		log.Errorf("unhandled message: %T", m)
		return nil, nil
	}
}
