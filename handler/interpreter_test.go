// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package handler_test

import (
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/blobchain/blobd/fixtures"
	"github.com/blobchain/blobd/handler"
	"github.com/blobchain/blobd/ledger"
	"github.com/blobchain/blobd/message"
	"github.com/blobchain/blobd/mocks"
	"github.com/blobchain/blobd/registry"
)

func interpreterLocal() *registry.Local {
	return registry.NewLocal(fixtures.Address1, "localhost", "::1")
}

func newInterpreter(t *testing.T) (*handler.Interpreter, *mocks.MockPeerAdder, *mocks.MockChainAcceptor, *gomock.Controller) {
	ctl := gomock.NewController(t)
	peers := mocks.NewMockPeerAdder(ctl)
	chain := mocks.NewMockChainAcceptor(ctl)
	i := handler.NewInterpreter(logger.New("interpreter"), interpreterLocal(), peers, chain)
	return i, peers, chain, ctl
}

func TestInterpretNoChange(t *testing.T) {
	i, _, _, ctl := newInterpreter(t)
	defer ctl.Finish()

	items := []message.Message{
		message.ReplyPing{},
		message.ReplyCash{},
		message.Error{Reason: "registry full"},
		message.Ping{Address: fixtures.Address2},
		message.Unknown{Token: "GOSSIP"},
	}
	for n, item := range items {
		assert.Equal(t, handler.NoChange, i.Interpret(item), "%d: wrong outcome", n)
	}
}

func TestInterpretListSkipsSelf(t *testing.T) {
	i, peers, _, ctl := newInterpreter(t)
	defer ctl.Finish()

	peers.EXPECT().Add(fixtures.Address2).Return(true).Times(1)
	peers.EXPECT().Add(fixtures.Address3).Return(false).Times(1)

	reply := message.ReplyList{Peers: []registry.Address{fixtures.Address1, fixtures.Address2, fixtures.Address3}}
	assert.Equal(t, handler.PeersAdded, i.Interpret(reply), "wrong outcome")
}

func TestInterpretListSkipsLocalAliases(t *testing.T) {
	i, _, _, ctl := newInterpreter(t)
	defer ctl.Finish()

	// no Add is expected for any of these
	reply := message.ReplyList{
		Peers: []registry.Address{
			{Host: "localhost", Port: fixtures.Address1.Port},
			{Host: "::1", Port: fixtures.Address1.Port},
			fixtures.Address1,
		},
	}
	assert.Equal(t, handler.NoChange, i.Interpret(reply), "local alias added")
}

func TestInterpretListNothingNew(t *testing.T) {
	i, peers, _, ctl := newInterpreter(t)
	defer ctl.Finish()

	peers.EXPECT().Add(fixtures.Address2).Return(false).Times(1)

	reply := message.ReplyList{Peers: []registry.Address{fixtures.Address2, fixtures.Address1}}
	assert.Equal(t, handler.NoChange, i.Interpret(reply), "wrong outcome")
	assert.Equal(t, handler.NoChange, i.Interpret(message.ReplyList{}), "empty list changed something")
}

func TestInterpretBlob(t *testing.T) {
	i, _, chain, ctl := newInterpreter(t)
	defer ctl.Finish()

	longer := fixtures.Chain(4)
	shorter := fixtures.Chain(1)
	chain.EXPECT().AcceptRemoteChain(longer).Return(true).Times(1)
	chain.EXPECT().AcceptRemoteChain(shorter).Return(false).Times(1)

	assert.Equal(t, handler.ChainReplaced, i.Interpret(message.ReplyBlob{Blocks: longer}), "longer chain not applied")
	assert.Equal(t, handler.NoChange, i.Interpret(message.ReplyBlob{Blocks: shorter}), "shorter chain applied")
}

func TestInterpretBlobWithLedger(t *testing.T) {
	local := ledger.New()
	i := handler.NewInterpreter(logger.New("interpreter"), interpreterLocal(), registry.New(10), local)

	remote := fixtures.Chain(5)
	assert.Equal(t, handler.ChainReplaced, i.Interpret(message.ReplyBlob{Blocks: remote}), "wrong outcome")
	assert.Equal(t, remote, local.Blocks(), "chain not replaced")
	assert.Equal(t, handler.NoChange, i.Interpret(message.ReplyBlob{Blocks: remote}), "equal chain replaced")
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "no change", handler.NoChange.String(), "NoChange")
	assert.Equal(t, "peers added", handler.PeersAdded.String(), "PeersAdded")
	assert.Equal(t, "chain replaced", handler.ChainReplaced.String(), "ChainReplaced")
}
