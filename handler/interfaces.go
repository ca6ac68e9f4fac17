// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package handler

//go:generate mockgen -destination=../mocks/handler.go -package=mocks github.com/blobchain/blobd/handler PeerRegistry,Chain,Miner,PeerAdder,ChainAcceptor

import (
	"github.com/blobchain/blobd/ledger"
	"github.com/blobchain/blobd/registry"
)

// PeerRegistry - registry operations used by the dispatcher
type PeerRegistry interface {
	Insert(registry.Address) error
	Snapshot() []registry.Address
}

// Chain - read access to the local ledger
type Chain interface {
	Blocks() []ledger.Block
}

// Miner - blocking proof-of-work submission
type Miner interface {
	Mine(ledger.Transaction) (ledger.Block, error)
}

// PeerAdder - registry operations used by the interpreter
type PeerAdder interface {
	Add(registry.Address) bool
}

// ChainAcceptor - longest-chain replacement
type ChainAcceptor interface {
	AcceptRemoteChain([]ledger.Block) bool
}
