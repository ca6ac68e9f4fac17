// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"sync"
)

// genesis constants shared by every node
const (
	GenesisPreviousHash = "1"
	GenesisTimestamp    = int64(0)
)

// Block - one mined entry of the ledger
type Block struct {
	Index        uint64       `json:"index"`
	Timestamp    int64        `json:"timestamp"`
	PreviousHash string       `json:"previous_hash"`
	Transaction  *Transaction `json:"transaction"`
	Nonce        uint64       `json:"nonce"`
	OwnHash      string       `json:"own_hash"`
}

// NewBlock - mine and hash a block
//
// the nonce search happens here, so this can take a while
func NewBlock(index uint64, timestamp int64, previousHash string, transaction *Transaction) Block {
	var tx *Transaction
	if nil != transaction {
		t := *transaction
		tx = &t
	}
	b := Block{
		Index:        index,
		Timestamp:    timestamp,
		PreviousHash: previousHash,
		Transaction:  tx,
		Nonce:        Solve(int64(index)-1, previousHash),
	}
	b.OwnHash = b.ComputeHash()
	return b
}

// ComputeHash - the block's identity hash
func (b Block) ComputeHash() string {
	data := strconv.FormatUint(b.Index, 10) +
		strconv.FormatInt(b.Timestamp, 10) +
		b.PreviousHash +
		b.Transaction.canonical()
	digest := sha256.Sum256([]byte(data))
	return hex.EncodeToString(digest[:])
}

// HasProof - true if the block's nonce meets the target
func (b Block) HasProof() bool {
	return HasProof(int64(b.Index)-1, b.Nonce, b.PreviousHash)
}

// Copy - a block that shares no memory with the original
func (b Block) Copy() Block {
	if nil != b.Transaction {
		t := *b.Transaction
		b.Transaction = &t
	}
	return b
}

var genesis struct {
	once  sync.Once
	block Block
}

// Genesis - the first block of every ledger
func Genesis() Block {
	genesis.once.Do(func() {
		genesis.block = NewBlock(0, GenesisTimestamp, GenesisPreviousHash, nil)
	})
	return genesis.block
}
