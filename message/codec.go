// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package message

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/blobchain/blobd/fault"
	"github.com/blobchain/blobd/util"
)

// MaximumFrameSize - largest accepted frame body
const MaximumFrameSize = 16 * 1024 * 1024

type envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Pack - a complete frame for one message
func Pack(m Message) ([]byte, error) {
	body, err := marshal(m)
	if nil != err {
		return nil, err
	}
	return append(util.ToVarint64(uint64(len(body))), body...), nil
}

// Unpack - decode a complete frame, trailing bytes are an error
func Unpack(frame []byte) (Message, error) {
	r := bytes.NewReader(frame)
	m, err := Decode(r)
	if io.EOF == err {
		return nil, fault.ErrMalformedMessage
	}
	if nil != err {
		return nil, err
	}
	if 0 != r.Len() {
		return nil, fault.ErrMalformedMessage
	}
	return m, nil
}

// Encode - write one frame
func Encode(w io.Writer, m Message) error {
	frame, err := Pack(m)
	if nil != err {
		return err
	}
	_, err = w.Write(frame)
	return err
}

// Decode - read exactly one frame
//
// returns io.EOF if the stream ended before the frame started and
// fault.ErrMalformedMessage for truncated or invalid frames; any other
// read error is passed through unchanged
func Decode(r io.Reader) (Message, error) {
	length, err := util.ReadVarint64(&byteReader{r: r})
	if io.ErrUnexpectedEOF == err {
		return nil, fault.ErrMalformedMessage
	}
	if nil != err {
		return nil, err
	}
	if 0 == length || length > MaximumFrameSize {
		return nil, fault.ErrMalformedMessage
	}

	body := make([]byte, length)
	_, err = io.ReadFull(r, body)
	if io.EOF == err || io.ErrUnexpectedEOF == err {
		return nil, fault.ErrMalformedMessage
	}
	if nil != err {
		return nil, err
	}
	return unmarshal(body)
}

func marshal(m Message) ([]byte, error) {
	payload, err := json.Marshal(m.payload())
	if nil != err {
		return nil, err
	}
	return json.Marshal(envelope{
		Type:    string(m.Type()),
		Payload: payload,
	})
}

func unmarshal(body []byte) (Message, error) {
	var e envelope
	if err := json.Unmarshal(body, &e); nil != err {
		return nil, fault.ErrMalformedMessage
	}

	var m Message
	var err error
	switch Type(e.Type) {
	case TypePing:
		p := Ping{}
		err = required(e.Payload, &p.Address)
		m = p
	case TypeList:
		m = List{}
	case TypeCash:
		p := Cash{}
		err = required(e.Payload, &p.Transaction)
		m = p
	case TypeBlob:
		m = Blob{}
	case TypeBloc:
		p := Bloc{}
		err = required(e.Payload, &p.Transaction)
		m = p
	case TypeReplyPing:
		m = ReplyPing{}
	case TypeReplyList:
		p := ReplyList{}
		err = optional(e.Payload, &p.Peers)
		m = p
	case TypeReplyCash:
		m = ReplyCash{}
	case TypeReplyBlob:
		p := ReplyBlob{}
		err = optional(e.Payload, &p.Blocks)
		m = p
	case TypeError:
		p := Error{}
		err = required(e.Payload, &p.Reason)
		m = p
	default:
		if "" == e.Type {
			return nil, fault.ErrMalformedMessage
		}
		m = Unknown{Token: e.Type}
	}
	if nil != err {
		return nil, fault.ErrMalformedMessage
	}
	return m, nil
}

// payload must be present and not null
func required(payload json.RawMessage, v interface{}) error {
	if 0 == len(payload) || "null" == string(payload) {
		return fault.ErrMalformedMessage
	}
	return json.Unmarshal(payload, v)
}

// payload may be absent or null, leaving v unchanged
func optional(payload json.RawMessage, v interface{}) error {
	if 0 == len(payload) {
		return nil
	}
	return json.Unmarshal(payload, v)
}

// read single bytes so nothing past the length prefix is consumed
type byteReader struct {
	r io.Reader
	b [1]byte
}

func (br *byteReader) ReadByte() (byte, error) {
	if _, err := io.ReadFull(br.r, br.b[:]); nil != err {
		return 0, err
	}
	return br.b[0], nil
}
