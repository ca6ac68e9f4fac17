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

func runChain(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	reply, err := request(m, m.nodes[0], message.Blob{})
	if nil != err {
		return err
	}
	blob, ok := reply.(message.ReplyBlob)
	if !ok {
		return fault.ErrUnexpectedReply
	}

	return printJson(m.w, blob.Blocks)
}
