// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/blobchain/blobd/fault"
	"github.com/blobchain/blobd/ledger"
	"github.com/blobchain/blobd/message"
)

type sendResult struct {
	Node   string `json:"node"`
	Result string `json:"result"`
}

func runSend(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	tx := ledger.Transaction{
		Sender:    c.String("sender"),
		Recipient: c.String("recipient"),
		Amount:    c.Float64("amount"),
	}
	if "" == tx.Sender || "" == tx.Recipient {
		return fault.ErrMissingParameters
	}
	if err := tx.Validate(); nil != err {
		return err
	}

	results := make([]sendResult, 0, len(m.nodes))
	for _, node := range m.nodes {
		result := "mined"
		if _, err := request(m, node, message.Cash{Transaction: tx}); nil != err {
			result = err.Error()
		}
		results = append(results, sendResult{Node: node.String(), Result: result})
	}

	return printJson(m.w, results)
}
