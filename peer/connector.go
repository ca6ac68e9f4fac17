// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package peer

import (
	"io"
	"net"
	"time"

	"github.com/blobchain/blobd/fault"
	"github.com/blobchain/blobd/handler"
	"github.com/blobchain/blobd/message"
	"github.com/blobchain/blobd/registry"
)

// Exchange - send one request on a new connection and read at most
// one reply
//
// fault.ErrNoReply is returned if the remote closed the connection
// without replying; network failures are returned as
// *fault.ConnectionError. A zero timeout does not limit the dial.
func Exchange(to registry.Address, request message.Message, timeout time.Duration) (message.Message, error) {
	address := to.String()

	conn, err := net.DialTimeout("tcp", address, timeout)
	if nil != err {
		return nil, fault.NewConnectionError(address, err)
	}
	defer conn.Close()

	if err := message.Encode(conn, request); nil != err {
		return nil, fault.NewConnectionError(address, err)
	}

	reply, err := message.Decode(conn)
	switch err {
	case nil:
		return reply, nil
	case io.EOF:
		return nil, fault.ErrNoReply
	case fault.ErrMalformedMessage:
		return nil, err
	default:
		return nil, fault.NewConnectionError(address, err)
	}
}

// Routine - Exchange followed by interpretation of the reply
func (n *Node) Routine(to registry.Address, request message.Message) (message.Message, error) {
	reply, _, err := n.routine(to, request)
	return reply, err
}

func (n *Node) routine(to registry.Address, request message.Message) (message.Message, handler.Outcome, error) {
	reply, err := Exchange(to, request, n.dialTimeout)
	if nil != err {
		return nil, handler.NoChange, err
	}
	return reply, n.interpreter.Interpret(reply), nil
}
