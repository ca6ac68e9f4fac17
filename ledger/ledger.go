// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"sync"
	"time"
)

// Ledger - the chain owned by one node
//
// safe for concurrent use; mining never happens with the lock held
type Ledger struct {
	sync.RWMutex
	blocks []Block

	// for testing, defaults to time.Now
	now func() time.Time
}

// New - a ledger containing only the genesis block
func New() *Ledger {
	return &Ledger{
		blocks: []Block{Genesis()},
		now:    time.Now,
	}
}

// Append - mine a block for a transaction and add it to the tip
//
// if the tip moves while mining (another append or a replacement)
// the block is mined again against the new tip
func (l *Ledger) Append(recipient string, sender string, amount float64) (Block, error) {
	tx := Transaction{
		Sender:    sender,
		Recipient: recipient,
		Amount:    amount,
	}
	if err := tx.Validate(); nil != err {
		return Block{}, err
	}

	for {
		l.RLock()
		index := uint64(len(l.blocks))
		previousHash := l.blocks[index-1].OwnHash
		l.RUnlock()

		b := NewBlock(index, l.now().UnixNano(), previousHash, &tx)

		l.Lock()
		if index == uint64(len(l.blocks)) && previousHash == l.blocks[index-1].OwnHash {
			l.blocks = append(l.blocks, b)
			l.Unlock()
			return b.Copy(), nil
		}
		l.Unlock()
	}
}

// Length - number of blocks including genesis
func (l *Ledger) Length() int {
	l.RLock()
	defer l.RUnlock()
	return len(l.blocks)
}

// Last - the block at the tip
func (l *Ledger) Last() Block {
	l.RLock()
	defer l.RUnlock()
	return l.blocks[len(l.blocks)-1].Copy()
}

// Blocks - a point in time copy of the whole chain
func (l *Ledger) Blocks() []Block {
	l.RLock()
	defer l.RUnlock()
	return copyBlocks(l.blocks)
}

// AcceptRemoteChain - longest chain rule
//
// replaces the local chain only if the candidate is valid and strictly
// longer, returns true if the replacement happened
func (l *Ledger) AcceptRemoteChain(candidate []Block) bool {
	if len(candidate) <= l.Length() {
		return false
	}
	if nil != Validate(candidate) {
		return false
	}

	chain := copyBlocks(candidate)

	l.Lock()
	defer l.Unlock()

	// may have grown while validating
	if len(chain) <= len(l.blocks) {
		return false
	}
	l.blocks = chain
	return true
}

func copyBlocks(blocks []Block) []Block {
	c := make([]Block, len(blocks))
	for i, b := range blocks {
		c[i] = b.Copy()
	}
	return c
}
