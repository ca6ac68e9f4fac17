// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/blobchain/blobd/fault"
	"github.com/blobchain/blobd/message"
)

type listResult struct {
	Node  string   `json:"node"`
	Peers []string `json:"peers,omitempty"`
	Error string   `json:"error,omitempty"`
}

func runList(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	results := make([]listResult, 0, len(m.nodes))
	for _, node := range m.nodes {
		result := listResult{Node: node.String()}

		reply, err := request(m, node, message.List{})
		if nil == err {
			if list, ok := reply.(message.ReplyList); ok {
				result.Peers = make([]string, 0, len(list.Peers))
				for _, p := range list.Peers {
					result.Peers = append(result.Peers, p.String())
				}
			} else {
				err = fault.ErrUnexpectedReply
			}
		}
		if nil != err {
			result.Error = err.Error()
		}
		results = append(results, result)
	}

	return printJson(m.w, results)
}
