// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mine

import (
	"sync"
	"sync/atomic"

	"github.com/bitmark-inc/logger"

	"github.com/blobchain/blobd/fault"
	"github.com/blobchain/blobd/ledger"
)

// Ledger - the chain that mined blocks are appended to
type Ledger interface {
	Append(recipient string, sender string, amount float64) (ledger.Block, error)
}

type result struct {
	block ledger.Block
	err   error
}

type job struct {
	transaction ledger.Transaction
	result      chan<- result
}

// Miner - background process owning the proof-of-work search
type Miner struct {
	log    *logger.L
	ledger Ledger

	jobs     chan job
	stopped  chan struct{}
	stopOnce sync.Once

	mined  uint64
	failed uint64
}

// New - create a miner, it does nothing until Run is started
func New(log *logger.L, l Ledger) *Miner {
	return &Miner{
		log:     log,
		ledger:  l,
		jobs:    make(chan job),
		stopped: make(chan struct{}),
	}
}

// Run - background processing interface
//
// a miner cannot be restarted once its shutdown channel is closed
func (m *Miner) Run(_ interface{}, shutdown <-chan struct{}) {
	log := m.log
	log.Info("starting…")

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case j := <-m.jobs:
			tx := j.transaction
			block, err := m.ledger.Append(tx.Recipient, tx.Sender, tx.Amount)
			if nil != err {
				atomic.AddUint64(&m.failed, 1)
				log.Warnf("mine: %s -> %s  amount: %v  error: %s", tx.Sender, tx.Recipient, tx.Amount, err)
			} else {
				atomic.AddUint64(&m.mined, 1)
				log.Infof("mined block: %d  nonce: %d  hash: %s", block.Index, block.Nonce, block.OwnHash)
			}
			j.result <- result{block: block, err: err}
		}
	}

	m.stopOnce.Do(func() {
		close(m.stopped)
	})
	log.Info("shutting down…")
	log.Flush()
}

// Mine - queue a transaction and wait for its block to be committed
//
// ill-formed transactions are rejected without queueing and
// fault.ErrNotRunning is returned once the miner has stopped
func (m *Miner) Mine(tx ledger.Transaction) (ledger.Block, error) {
	if err := tx.Validate(); nil != err {
		return ledger.Block{}, err
	}

	r := make(chan result, 1)
	select {
	case m.jobs <- job{transaction: tx, result: r}:
	case <-m.stopped:
		return ledger.Block{}, fault.ErrNotRunning
	}

	reply := <-r
	return reply.block, reply.err
}

// Counts - number of blocks mined and number of failed jobs
func (m *Miner) Counts() (mined uint64, failed uint64) {
	return atomic.LoadUint64(&m.mined), atomic.LoadUint64(&m.failed)
}
