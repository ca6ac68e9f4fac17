// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/blobchain/blobd/fault"
	"github.com/blobchain/blobd/message"
	"github.com/blobchain/blobd/peer"
	"github.com/blobchain/blobd/registry"
)

// split a comma separated list of node addresses
func parseNodes(s string) ([]registry.Address, error) {
	list := []string{}
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if "" != item {
			list = append(list, item)
		}
	}
	if 0 == len(list) {
		return nil, fault.ErrNoNodesFound
	}
	return registry.ParseAddresses(list)
}

// one exchange, an ERRO reply becomes an error
func request(m *metadata, to registry.Address, r message.Message) (message.Message, error) {
	if m.verbose {
		fmt.Fprintf(m.e, "%s ← %s\n", to, r.Type())
	}
	reply, err := peer.Exchange(to, r, m.timeout)
	if errors.Is(err, fault.ErrConnectionFailure) {
		return nil, fmt.Errorf("node: %s  unreachable: %s", to, errors.Unwrap(err))
	}
	if nil != err {
		return nil, err
	}
	if m.verbose {
		fmt.Fprintf(m.e, "%s → %s\n", to, reply.Type())
	}
	if e, ok := reply.(message.Error); ok {
		return nil, fmt.Errorf("node: %s  error: %s", to, e.Reason)
	}
	return reply, nil
}

func printJson(handle io.Writer, message interface{}) error {

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	fmt.Fprintf(handle, "%s\n", b)
	return nil
}
