// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"math"
	"strconv"

	"github.com/blobchain/blobd/fault"
)

// Transaction - a transfer of an amount from sender to recipient
type Transaction struct {
	Sender    string  `json:"sender"`
	Recipient string  `json:"recipient"`
	Amount    float64 `json:"amount"`
}

// Validate - check that the transaction is well formed
//
// no balance or ownership checks are made
func (tx Transaction) Validate() error {
	if "" == tx.Sender || "" == tx.Recipient {
		return fault.ErrInvalidTransaction
	}
	if math.IsNaN(tx.Amount) || math.IsInf(tx.Amount, 0) || tx.Amount < 0 {
		return fault.ErrInvalidTransaction
	}
	return nil
}

// text form used as part of the block hash
func (tx *Transaction) canonical() string {
	if nil == tx {
		return ""
	}
	return tx.Sender + ":" + tx.Recipient + ":" + strconv.FormatFloat(tx.Amount, 'f', -1, 64)
}
