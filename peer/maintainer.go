// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package peer

import (
	"time"

	"github.com/bitmark-inc/logger"
)

// periodic discovery and chain synchronisation
type maintainer struct {
	log  *logger.L
	node *Node
}

// Run - background processing interface
func (m *maintainer) Run(args interface{}, shutdown <-chan struct{}) {
	log := m.log
	node := m.node

	log.Info("starting…")

	// a nil channel blocks forever, disabling that case
	var discover, synchronise <-chan time.Time
	if node.discoveryInterval > 0 {
		t := time.NewTicker(node.discoveryInterval)
		defer t.Stop()
		discover = t.C
	}
	if node.synchroniseInterval > 0 {
		t := time.NewTicker(node.synchroniseInterval)
		defer t.Stop()
		synchronise = t.C
	}

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case <-discover:
			added := node.Discover(node.Seeds())
			log.Debugf("periodic discovery: added: %d", added)

		case <-synchronise:
			if node.Synchronise() {
				log.Infof("chain replaced: length: %d", node.chain.Length())
			}
		}
	}

	log.Info("stopped")
}
