// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/urfave/cli"

	"github.com/blobchain/blobd/registry"
)

type metadata struct {
	nodes   []registry.Address
	timeout time.Duration
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "blob-cli"
	app.Usage = "send requests to blobd nodes"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "connect, c",
			Value: "127.0.0.1:8888",
			Usage: " comma separated blobd nodes `HOST:PORT,...`",
		},
		cli.IntFlag{
			Name:  "timeout, t",
			Value: 5,
			Usage: " connection timeout `SECONDS`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "ping",
			Usage:     "ask the nodes to register an address as a peer",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "address, a",
					Value: "",
					Usage: "*address to register `HOST:PORT`",
				},
			},
			Action: runPing,
		},
		{
			Name:   "list",
			Usage:  "display the peers of each node",
			Action: runList,
		},
		{
			Name:   "chain",
			Usage:  "display the chain of the first node",
			Action: runChain,
		},
		{
			Name:      "send",
			Usage:     "submit a transaction to be mined",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "sender, s",
					Value: "",
					Usage: "*paying account `NAME`",
				},
				cli.StringFlag{
					Name:  "recipient, r",
					Value: "",
					Usage: "*receiving account `NAME`",
				},
				cli.Float64Flag{
					Name:  "amount, a",
					Value: 0,
					Usage: "*amount to transfer `NUMBER`",
				},
			},
			Action: runSend,
		},
		{
			Name:   "sync",
			Usage:  "compare the chains of all nodes",
			Action: runSync,
		},
		{
			Name:  "version",
			Usage: "display blob-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		nodes, err := parseNodes(c.GlobalString("connect"))
		if nil != err {
			return err
		}
		timeout := c.GlobalInt("timeout")
		if timeout <= 0 {
			return fmt.Errorf("timeout: %d must be positive", timeout)
		}

		if verbose {
			fmt.Fprintf(e, "nodes: %v\n", nodes)
		}

		c.App.Metadata["config"] = &metadata{
			nodes:   nodes,
			timeout: time.Duration(timeout) * time.Second,
			verbose: verbose,
			e:       e,
			w:       w,
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}
