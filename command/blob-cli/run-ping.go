// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/blobchain/blobd/fault"
	"github.com/blobchain/blobd/message"
	"github.com/blobchain/blobd/registry"
)

type pingResult struct {
	Node   string `json:"node"`
	Result string `json:"result"`
}

func runPing(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	address := c.String("address")
	if "" == address {
		return fault.ErrMissingParameters
	}
	a, err := registry.ParseAddress(address)
	if nil != err {
		return err
	}

	results := make([]pingResult, 0, len(m.nodes))
	for _, node := range m.nodes {
		result := "added"
		if _, err := request(m, node, message.Ping{Address: a}); nil != err {
			result = err.Error()
		}
		results = append(results, pingResult{Node: node.String(), Result: result})
	}

	return printJson(m.w, results)
}
