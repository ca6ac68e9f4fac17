// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package message_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blobchain/blobd/fault"
	"github.com/blobchain/blobd/ledger"
	"github.com/blobchain/blobd/message"
	"github.com/blobchain/blobd/registry"
	"github.com/blobchain/blobd/util"
)

func testChain(t *testing.T) []ledger.Block {
	l := ledger.New()
	_, err := l.Append("B", "A", 10)
	require.Nil(t, err, "append failed")
	_, err = l.Append("C", "B", 2.25)
	require.Nil(t, err, "append failed")
	return l.Blocks()
}

func TestRoundTrip(t *testing.T) {
	tx := ledger.Transaction{Sender: "A", Recipient: "B", Amount: 10.5}

	items := []message.Message{
		message.Ping{Address: registry.Address{Host: "127.0.0.1", Port: 9000}},
		message.List{},
		message.Cash{Transaction: tx},
		message.Blob{},
		message.Bloc{Transaction: tx},
		message.ReplyPing{},
		message.ReplyList{},
		message.ReplyList{Peers: []registry.Address{}},
		message.ReplyList{Peers: []registry.Address{{Host: "10.0.0.1", Port: 1}}},
		message.ReplyList{Peers: []registry.Address{
			{Host: "10.0.0.1", Port: 1},
			{Host: "::1", Port: 2},
			{Host: "peer.example.com", Port: 65535},
		}},
		message.ReplyCash{},
		message.ReplyBlob{Blocks: testChain(t)},
		message.Error{Reason: message.ReasonRegistryFull},
		message.Unknown{Token: "XYZZ"},
	}

	for i, m := range items {
		buffer := &bytes.Buffer{}
		err := message.Encode(buffer, m)
		require.Nil(t, err, "%d: encode error", i)

		d, err := message.Decode(buffer)
		require.Nil(t, err, "%d: decode error", i)
		assert.Equal(t, m, d, "%d: round trip mismatch", i)
		assert.Equal(t, 0, buffer.Len(), "%d: bytes left over", i)

		frame, err := message.Pack(m)
		require.Nil(t, err, "%d: pack error", i)
		u, err := message.Unpack(frame)
		require.Nil(t, err, "%d: unpack error", i)
		assert.Equal(t, m, u, "%d: unpack mismatch", i)
	}
}

func TestFrameLayout(t *testing.T) {
	frame, err := message.Pack(message.Ping{Address: registry.Address{Host: "h", Port: 1}})
	require.Nil(t, err, "pack error")

	body := []byte(`{"type":"PING","payload":["h",1]}`)
	expected := append(util.ToVarint64(uint64(len(body))), body...)
	assert.Equal(t, expected, frame, "wrong frame")
}

func TestDecodeOnlyOneFrame(t *testing.T) {
	buffer := &bytes.Buffer{}
	require.Nil(t, message.Encode(buffer, message.List{}), "encode error")
	require.Nil(t, message.Encode(buffer, message.Blob{}), "encode error")

	first, err := message.Decode(buffer)
	require.Nil(t, err, "decode error")
	second, err := message.Decode(buffer)
	require.Nil(t, err, "decode error")
	_, err = message.Decode(buffer)

	assert.Equal(t, message.List{}, first, "wrong first message")
	assert.Equal(t, message.Blob{}, second, "wrong second message")
	assert.Equal(t, io.EOF, err, "expected clean end of stream")
}

func frameOf(body string) []byte {
	return append(util.ToVarint64(uint64(len(body))), body...)
}

func TestDecodeMalformed(t *testing.T) {
	good, err := message.Pack(message.Cash{Transaction: ledger.Transaction{Sender: "A", Recipient: "B", Amount: 1}})
	require.Nil(t, err, "pack error")

	items := []struct {
		name  string
		frame []byte
	}{
		{"truncated length", []byte{0x80}},
		{"truncated body", good[:len(good)-3]},
		{"zero length", []byte{0x00}},
		{"oversized", util.ToVarint64(message.MaximumFrameSize + 1)},
		{"not json", frameOf("hello")},
		{"not an object", frameOf("[1,2]")},
		{"missing type", frameOf(`{"payload":null}`)},
		{"ping without address", frameOf(`{"type":"PING","payload":null}`)},
		{"ping bad address", frameOf(`{"type":"PING","payload":["h","port"]}`)},
		{"ping port range", frameOf(`{"type":"PING","payload":["h",70000]}`)},
		{"cash without transaction", frameOf(`{"type":"CASH"}`)},
		{"cash bad amount", frameOf(`{"type":"CASH","payload":{"sender":"A","recipient":"B","amount":"x"}}`)},
		{"list bad peers", frameOf(`{"type":"REPL-LIST","payload":{"peers":1}}`)},
		{"blob bad blocks", frameOf(`{"type":"REPL-BLOB","payload":"chain"}`)},
		{"error without reason", frameOf(`{"type":"ERRO","payload":null}`)},
	}

	for _, item := range items {
		_, err := message.Decode(bytes.NewReader(item.frame))
		assert.Equal(t, fault.ErrMalformedMessage, err, "%s: wrong error", item.name)
	}
}

func TestUnpackTrailingBytes(t *testing.T) {
	frame, err := message.Pack(message.List{})
	require.Nil(t, err, "pack error")

	_, err = message.Unpack(append(frame, 0x01))
	assert.Equal(t, fault.ErrMalformedMessage, err, "trailing bytes accepted")

	_, err = message.Unpack(nil)
	assert.Equal(t, fault.ErrMalformedMessage, err, "empty frame accepted")
}

func TestDecodeUnknownType(t *testing.T) {
	m, err := message.Decode(bytes.NewReader(frameOf(`{"type":"GOSSIP","payload":{"x":1}}`)))
	require.Nil(t, err, "unknown type rejected")

	assert.Equal(t, message.Unknown{Token: "GOSSIP"}, m, "wrong message")
	assert.Equal(t, message.Type("GOSSIP"), m.Type(), "wrong type")
	assert.False(t, message.IsReply(m), "unknown classed as reply")
}

func TestIsReply(t *testing.T) {
	assert.True(t, message.IsReply(message.ReplyPing{}), "REPL-PING")
	assert.True(t, message.IsReply(message.ReplyBlob{}), "REPL-BLOB")
	assert.True(t, message.IsReply(message.Error{}), "ERRO")
	assert.False(t, message.IsReply(message.Ping{}), "PING")
	assert.False(t, message.IsReply(message.Bloc{}), "BLOC")
}
