// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package peer_test

import (
	"io/ioutil"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blobchain/blobd/fault"
	"github.com/blobchain/blobd/fixtures"
	"github.com/blobchain/blobd/ledger"
	"github.com/blobchain/blobd/message"
	"github.com/blobchain/blobd/peer"
	"github.com/blobchain/blobd/registry"
	"github.com/blobchain/blobd/util"
)

func TestPing(t *testing.T) {
	n := startNode(t, nil)
	defer n.Stop()

	reply, err := peer.Exchange(n.Address(), message.Ping{Address: fixtures.Address1}, time.Second)
	require.Nil(t, err, "exchange error")
	assert.Equal(t, message.ReplyPing{}, reply, "wrong first reply")

	reply, err = peer.Exchange(n.Address(), message.Ping{Address: fixtures.Address1}, time.Second)
	require.Nil(t, err, "exchange error")
	assert.Equal(t, message.Error{Reason: "already listed"}, reply, "wrong second reply")

	assert.Equal(t, 1, n.Registry().Count(), "wrong peer count")
	assert.True(t, n.Registry().Contains(fixtures.Address1), "peer not registered")
}

func TestPingOwnAddress(t *testing.T) {
	n := startNode(t, nil)
	defer n.Stop()

	port := n.Address().Port
	for _, a := range []registry.Address{n.Address(), {Host: "localhost", Port: port}} {
		reply, err := peer.Exchange(n.Address(), message.Ping{Address: a}, time.Second)
		require.Nil(t, err, "%s: exchange error", a)
		assert.Equal(t, message.Error{Reason: "own address"}, reply, "%s: wrong reply", a)
	}
	assert.Equal(t, 0, n.Registry().Count(), "own address registered")
}

func TestPingRegistryFull(t *testing.T) {
	conf := testConfiguration()
	conf.MaximumPeers = 1
	n := startNode(t, conf)
	defer n.Stop()

	reply, err := peer.Exchange(n.Address(), message.Ping{Address: fixtures.Address1}, time.Second)
	require.Nil(t, err, "exchange error")
	assert.Equal(t, message.ReplyPing{}, reply, "wrong reply")

	reply, err = peer.Exchange(n.Address(), message.Ping{Address: fixtures.Address2}, time.Second)
	require.Nil(t, err, "exchange error")
	assert.Equal(t, message.Error{Reason: "registry full"}, reply, "wrong reply when full")
	assert.False(t, n.Registry().Contains(fixtures.Address2), "registry exceeded maximum")
}

func TestList(t *testing.T) {
	n := startNode(t, nil)
	defer n.Stop()

	reply, err := peer.Exchange(n.Address(), message.List{}, time.Second)
	require.Nil(t, err, "exchange error")
	assert.Equal(t, message.ReplyList{Peers: []registry.Address{}}, reply, "wrong empty list")

	n.Registry().Add(fixtures.Address1)
	n.Registry().Add(fixtures.Address3)

	reply, err = peer.Exchange(n.Address(), message.List{}, time.Second)
	require.Nil(t, err, "exchange error")
	assert.Equal(t, message.ReplyList{Peers: []registry.Address{fixtures.Address1, fixtures.Address3}}, reply, "wrong list")
}

func TestBlob(t *testing.T) {
	n := startNode(t, nil)
	defer n.Stop()

	_, err := n.Ledger().Append("B", "A", 1)
	require.Nil(t, err, "append error")

	reply, err := peer.Exchange(n.Address(), message.Blob{}, time.Second)
	require.Nil(t, err, "exchange error")
	assert.Equal(t, message.ReplyBlob{Blocks: n.Ledger().Blocks()}, reply, "wrong chain")
}

func TestCashMinedAndAnnounced(t *testing.T) {
	a := startNode(t, nil)
	defer a.Stop()
	b := startNode(t, nil)
	defer b.Stop()

	a.Registry().Add(b.Address())

	tx := ledger.Transaction{Sender: "A", Recipient: "B", Amount: 10}
	reply, err := peer.Exchange(a.Address(), message.Cash{Transaction: tx}, time.Second)
	require.Nil(t, err, "exchange error")
	assert.Equal(t, message.ReplyCash{}, reply, "wrong reply")

	// committed before the reply was written
	assert.Equal(t, 2, a.Ledger().Length(), "block not committed")
	assert.Equal(t, &tx, a.Ledger().Last().Transaction, "wrong transaction")

	waitFor(t, "announcement to be mined", func() bool {
		return 2 == b.Ledger().Length()
	})
	assert.Equal(t, &tx, b.Ledger().Last().Transaction, "wrong announced transaction")
	assert.Nil(t, ledger.Validate(b.Ledger().Blocks()), "peer chain invalid")

	// one hop only
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 2, a.Ledger().Length(), "announcement echoed back")
}

func TestCashInvalid(t *testing.T) {
	n := startNode(t, nil)
	defer n.Stop()

	tx := ledger.Transaction{Sender: "", Recipient: "B", Amount: 10}
	reply, err := peer.Exchange(n.Address(), message.Cash{Transaction: tx}, time.Second)
	require.Nil(t, err, "exchange error")
	assert.Equal(t, message.Error{Reason: "invalid transaction"}, reply, "wrong reply")
	assert.Equal(t, 1, n.Ledger().Length(), "invalid transaction mined")
}

func TestBlocHasNoReply(t *testing.T) {
	n := startNode(t, nil)
	defer n.Stop()

	tx := ledger.Transaction{Sender: "C", Recipient: "D", Amount: 0.5}
	_, err := peer.Exchange(n.Address(), message.Bloc{Transaction: tx}, time.Second)
	assert.Equal(t, fault.ErrNoReply, err, "BLOC was answered")
	assert.Equal(t, 2, n.Ledger().Length(), "BLOC not mined")
}

func TestUnknownTypeHasNoReply(t *testing.T) {
	n := startNode(t, nil)
	defer n.Stop()

	_, err := peer.Exchange(n.Address(), message.Unknown{Token: "GOSSIP"}, time.Second)
	assert.Equal(t, fault.ErrNoReply, err, "unknown type was answered")

	_, err = peer.Exchange(n.Address(), message.ReplyPing{}, time.Second)
	assert.Equal(t, fault.ErrNoReply, err, "reply as request was answered")
}

func TestMalformedHasNoReply(t *testing.T) {
	n := startNode(t, nil)
	defer n.Stop()

	items := [][]byte{
		append(util.ToVarint64(5), "hello"...),
		append(util.ToVarint64(100), "short"...),
		{0x00},
		{},
	}

	for i, item := range items {
		conn, err := net.Dial("tcp", n.Address().String())
		require.Nil(t, err, "%d: dial error", i)

		_, err = conn.Write(item)
		require.Nil(t, err, "%d: write error", i)
		conn.(*net.TCPConn).CloseWrite()

		received, err := ioutil.ReadAll(conn)
		conn.Close()
		assert.Nil(t, err, "%d: read error", i)
		assert.Equal(t, 0, len(received), "%d: malformed frame answered", i)
	}

	// still serving
	reply, err := peer.Exchange(n.Address(), message.Blob{}, time.Second)
	require.Nil(t, err, "exchange error after malformed input")
	assert.Equal(t, message.TypeReplyBlob, reply.Type(), "wrong reply")
}
