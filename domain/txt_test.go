// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/blobchain/blobd/domain"
	"github.com/blobchain/blobd/fault"
	"github.com/blobchain/blobd/registry"
)

func TestParseValid(t *testing.T) {
	items := []struct {
		txt   string
		hosts []string
		port  int
	}{
		{"blobd=v1 a=127.0.0.1 p=8888", []string{"127.0.0.1"}, 8888},
		{"blobd=v1 p=8877 a=10.0.0.1;::1", []string{"10.0.0.1", "::1"}, 8877},
		{"blobd=v1 a=[2001:db8::1];node.example.com p=1", []string{"2001:db8::1", "node.example.com"}, 1},
		{"  blobd=v1   a=host-1.local   p=65535  ", []string{"host-1.local"}, 65535},
	}

	for i, item := range items {
		txt, err := domain.Parse(item.txt)
		if !assert.Nil(t, err, "%d: parse error", i) {
			continue
		}
		assert.Equal(t, item.hosts, txt.Hosts, "%d: wrong hosts", i)
		assert.Equal(t, item.port, txt.Port, "%d: wrong port", i)
	}
}

func TestParseInvalid(t *testing.T) {
	items := []struct {
		txt string
		err error
	}{
		{"", fault.ErrInvalidDnsTxtRecord},
		{"bitmark=v3 a=127.0.0.1 p=1", fault.ErrInvalidDnsTxtRecord},
		{"blobd=v1 a=", fault.ErrInvalidDnsTxtRecord},
		{"blobd=v1 a", fault.ErrInvalidDnsTxtRecord},
		{"blobd=v1 a=127.0.0.1", fault.ErrInvalidDnsTxtRecord},
		{"blobd=v1 p=8888", fault.ErrInvalidDnsTxtRecord},
		{"blobd=v1 a=127.0.0.1 p=1 p=2", fault.ErrInvalidDnsTxtRecord},
		{"blobd=v1 a=127.0.0.1 p=1 x=2", fault.ErrInvalidDnsTxtRecord},
		{"blobd=v1 a=127.0.0.1 p=0", fault.ErrInvalidPort},
		{"blobd=v1 a=127.0.0.1 p=70000", fault.ErrInvalidPort},
		{"blobd=v1 a=127.0.0.1 p=http", fault.ErrInvalidPort},
		{"blobd=v1 a=[::1 p=1", fault.ErrInvalidAddress},
		{"blobd=v1 a=bad_host p=1", fault.ErrInvalidAddress},
		{"blobd=v1 a=127.0.0.1;;10.0.0.1 p=1", fault.ErrInvalidAddress},
	}

	for i, item := range items {
		_, err := domain.Parse(item.txt)
		assert.Equal(t, item.err, err, "%d: %q wrong error", i, item.txt)
	}
}

func TestAddresses(t *testing.T) {
	txt, err := domain.Parse("blobd=v1 a=127.0.0.1;::1 p=9000")
	assert.Nil(t, err, "parse error")

	expected := []registry.Address{
		{Host: "127.0.0.1", Port: 9000},
		{Host: "::1", Port: 9000},
	}
	assert.Equal(t, expected, txt.Addresses(), "wrong addresses")
}
