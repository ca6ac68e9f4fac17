// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package peer

import (
	"io"
	"net"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/blobchain/blobd/message"
	"github.com/blobchain/blobd/ratelimit"
)

const acceptRetryDelay = 100 * time.Millisecond

type listener struct {
	log  *logger.L
	node *Node
}

// Run - accept connections until shutdown, each is served on its own
// goroutine so the accept loop never waits for a handler
func (lstn *listener) Run(args interface{}, shutdown <-chan struct{}) {
	log := lstn.log
	socket := lstn.node.socket

	log.Info("starting…")

	go func() {
		<-shutdown
		log.Info("initiate shutdown")
		socket.Close()
	}()

loop:
	for {
		conn, err := socket.Accept()
		if nil != err {
			select {
			case <-shutdown:
				break loop
			default:
			}
			log.Errorf("accept error: %s", err)
			time.Sleep(acceptRetryDelay)
			continue loop
		}
		go lstn.process(conn)
	}

	log.Info("stopped")
}

// serve one request and reply, then broadcast any announcement
func (lstn *listener) process(conn net.Conn) {
	log := lstn.log
	node := lstn.node
	remote := conn.RemoteAddr().String()

	if err := ratelimit.Limit(node.limiter); nil != err {
		log.Warnf("from: %s  refused: %s", remote, err)
		conn.Close()
		return
	}

	request, err := message.Decode(conn)
	if nil != err {
		if io.EOF == err {
			log.Debugf("from: %s  closed without request", remote)
		} else {
			log.Warnf("from: %s  decode error: %s", remote, err)
		}
		conn.Close()
		return
	}
	log.Debugf("from: %s  received: %s", remote, request.Type())

	reply, announce := node.dispatcher.Dispatch(request)
	if nil != reply {
		if err := message.Encode(conn, reply); nil != err {
			log.Warnf("to: %s  reply: %s  error: %s", remote, reply.Type(), err)
		} else {
			log.Debugf("to: %s  replied: %s", remote, reply.Type())
		}
	}
	conn.Close()

	if nil != announce {
		delivered := node.Broadcast(announce)
		log.Infof("announced: %s  to: %d peers", announce.Type(), delivered)
	}
}
