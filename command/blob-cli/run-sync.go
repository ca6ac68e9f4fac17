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

type chainSummary struct {
	Node    string `json:"node"`
	Length  int    `json:"length,omitempty"`
	Valid   bool   `json:"valid"`
	Tip     string `json:"tip,omitempty"`
	Longest bool   `json:"longest,omitempty"`
	Error   string `json:"error,omitempty"`
}

// the node holding the longest valid chain is marked, the earliest
// listed wins a tie
func runSync(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	summaries := make([]chainSummary, 0, len(m.nodes))
	longest := -1
	for i, node := range m.nodes {
		s := chainSummary{Node: node.String()}

		reply, err := request(m, node, message.Blob{})
		if nil == err {
			if blob, ok := reply.(message.ReplyBlob); ok {
				s.Length = len(blob.Blocks)
				s.Valid = nil == ledger.Validate(blob.Blocks)
				if 0 != s.Length {
					s.Tip = blob.Blocks[s.Length-1].OwnHash
				}
			} else {
				err = fault.ErrUnexpectedReply
			}
		}
		if nil != err {
			s.Error = err.Error()
		}
		if s.Valid && (longest < 0 || s.Length > summaries[longest].Length) {
			longest = i
		}
		summaries = append(summaries, s)
	}
	if longest >= 0 {
		summaries[longest].Longest = true
	}

	return printJson(m.w, summaries)
}
