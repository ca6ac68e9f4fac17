// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fixtures

import (
	"fmt"
	"os"

	"github.com/bitmark-inc/logger"

	"github.com/blobchain/blobd/ledger"
	"github.com/blobchain/blobd/registry"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

// addresses used across tests
var (
	Address1 = registry.Address{Host: "127.0.0.1", Port: 9000}
	Address2 = registry.Address{Host: "127.0.0.1", Port: 9001}
	Address3 = registry.Address{Host: "192.168.0.1", Port: 5678}
)

func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}

// Chain - a valid chain of n blocks including genesis
func Chain(n int) []ledger.Block {
	l := ledger.New()
	for l.Length() < n {
		_, err := l.Append("recipient", fmt.Sprintf("sender-%d", l.Length()), float64(l.Length()))
		if nil != err {
			panic(err)
		}
	}
	return l.Blocks()
}
