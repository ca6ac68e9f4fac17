// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/blobchain/blobd/fault"
)

// Validate - check indices, linkage, hashes and proof of every block
func Validate(chain []Block) error {
	if 0 == len(chain) {
		return fault.ErrInvalidChain
	}
	for i, b := range chain {
		if err := validateBlock(chain, i, b); nil != err {
			return err
		}
	}
	return nil
}

// InvalidAt - index of the first bad block, -1 if the chain is valid
func InvalidAt(chain []Block) int {
	if 0 == len(chain) {
		return 0
	}
	for i, b := range chain {
		if nil != validateBlock(chain, i, b) {
			return i
		}
	}
	return -1
}

func validateBlock(chain []Block, i int, b Block) error {
	if uint64(i) != b.Index {
		return fault.ErrInvalidChain
	}

	if 0 == i {
		if GenesisPreviousHash != b.PreviousHash || nil != b.Transaction {
			return fault.ErrInvalidChain
		}
	} else {
		if chain[i-1].OwnHash != b.PreviousHash {
			return fault.ErrInvalidChain
		}
		if nil == b.Transaction || nil != b.Transaction.Validate() {
			return fault.ErrInvalidChain
		}
	}

	if !b.HasProof() {
		return fault.ErrInvalidChain
	}
	if b.ComputeHash() != b.OwnHash {
		return fault.ErrInvalidChain
	}
	return nil
}
