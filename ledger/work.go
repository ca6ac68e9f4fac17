// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
)

// Difficulty - number of leading '0' characters a proof hash must have
const Difficulty = 3

var target = strings.Repeat("0", Difficulty)

// ProofOfWork - hex digest of the proof input for a block
//
// index is the block's index minus one, so the genesis block uses -1
func ProofOfWork(index int64, nonce uint64, previousHash string) string {
	data := strconv.FormatInt(index, 10) + strconv.FormatUint(nonce, 10) + previousHash
	digest := sha256.Sum256([]byte(data))
	return hex.EncodeToString(digest[:])
}

// HasProof - true if the nonce satisfies the difficulty target
func HasProof(index int64, nonce uint64, previousHash string) bool {
	return strings.HasPrefix(ProofOfWork(index, nonce, previousHash), target)
}

// Solve - find the smallest nonce that satisfies the target
//
// CPU bound and unbounded, never call with a lock held
func Solve(index int64, previousHash string) uint64 {
	nonce := uint64(0)
	for !HasProof(index, nonce, previousHash) {
		nonce += 1
	}
	return nonce
}
