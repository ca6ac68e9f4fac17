// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package message

import (
	"github.com/blobchain/blobd/ledger"
	"github.com/blobchain/blobd/registry"
)

// Type - the wire token naming a message
type Type string

// all known tokens
const (
	TypePing      Type = "PING"
	TypeList      Type = "LIST"
	TypeCash      Type = "CASH"
	TypeBlob      Type = "BLOB"
	TypeBloc      Type = "BLOC"
	TypeError     Type = "ERRO"
	TypeReplyPing Type = "REPL-PING"
	TypeReplyList Type = "REPL-LIST"
	TypeReplyCash Type = "REPL-CASH"
	TypeReplyBlob Type = "REPL-BLOB"
)

// reasons sent in ERRO replies
const (
	ReasonAlreadyListed      = "already listed"
	ReasonRegistryFull       = "registry full"
	ReasonInvalidTransaction = "invalid transaction"
	ReasonOwnAddress         = "own address"
)

// Message - one of the variants below, the set is closed
type Message interface {
	Type() Type
	payload() interface{}
}

// Ping - ask to be added to the receiver's registry
type Ping struct {
	Address registry.Address
}

// List - ask for the receiver's registry
type List struct{}

// Cash - submit a transaction to be mined and announced
type Cash struct {
	Transaction ledger.Transaction
}

// Blob - ask for the receiver's whole chain
type Blob struct{}

// Bloc - announcement of a transaction mined by a peer
type Bloc struct {
	Transaction ledger.Transaction
}

// ReplyPing - sender was added
type ReplyPing struct{}

// ReplyList - the registry snapshot
type ReplyList struct {
	Peers []registry.Address
}

// ReplyCash - the transaction was mined
type ReplyCash struct{}

// ReplyBlob - the chain
type ReplyBlob struct {
	Blocks []ledger.Block
}

// Error - a request was refused
type Error struct {
	Reason string
}

// Unknown - a frame with a token this node does not understand
type Unknown struct {
	Token string
}

func (Ping) Type() Type      { return TypePing }
func (List) Type() Type      { return TypeList }
func (Cash) Type() Type      { return TypeCash }
func (Blob) Type() Type      { return TypeBlob }
func (Bloc) Type() Type      { return TypeBloc }
func (ReplyPing) Type() Type { return TypeReplyPing }
func (ReplyList) Type() Type { return TypeReplyList }
func (ReplyCash) Type() Type { return TypeReplyCash }
func (ReplyBlob) Type() Type { return TypeReplyBlob }
func (Error) Type() Type     { return TypeError }
func (m Unknown) Type() Type { return Type(m.Token) }

func (m Ping) payload() interface{}      { return m.Address }
func (List) payload() interface{}        { return nil }
func (m Cash) payload() interface{}      { return m.Transaction }
func (Blob) payload() interface{}        { return nil }
func (m Bloc) payload() interface{}      { return m.Transaction }
func (ReplyPing) payload() interface{}   { return nil }
func (m ReplyList) payload() interface{} { return m.Peers }
func (ReplyCash) payload() interface{}   { return nil }
func (m ReplyBlob) payload() interface{} { return m.Blocks }
func (m Error) payload() interface{}     { return m.Reason }
func (Unknown) payload() interface{}     { return nil }

// IsReply - true for the REPL-* and ERRO variants
func IsReply(m Message) bool {
	switch m.(type) {
	case ReplyPing, ReplyList, ReplyCash, ReplyBlob, Error:
		return true
	default:
		return false
	}
}
