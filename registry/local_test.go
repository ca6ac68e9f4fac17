// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/blobchain/blobd/registry"
)

func TestLocalAliases(t *testing.T) {
	self := registry.Address{Host: "localhost", Port: 8888}
	l := registry.NewLocal(self, "127.0.0.1", "::1", "Node.Example.", "")

	assert.Equal(t, self, l.Self(), "wrong self")
	assert.Equal(t, 4, l.Hosts(), "wrong alias count")

	items := []struct {
		address registry.Address
		local   bool
	}{
		{self, true},
		{registry.Address{Host: "LOCALHOST", Port: 8888}, true},
		{registry.Address{Host: "127.0.0.1", Port: 8888}, true},
		{registry.Address{Host: "0:0:0:0:0:0:0:1", Port: 8888}, true},
		{registry.Address{Host: "node.example.com", Port: 8888}, false},
		{registry.Address{Host: "node.example", Port: 8888}, true},
		{registry.Address{Host: "127.0.0.1", Port: 8877}, false},
		{registry.Address{Host: "192.168.0.1", Port: 8888}, false},
	}
	for _, item := range items {
		assert.Equal(t, item.local, l.Is(item.address), "%s: wrong result", item.address)
	}
}
