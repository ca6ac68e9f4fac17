// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"sync"

	"github.com/blobchain/blobd/fault"
)

// DefaultMaximum - default bound on the number of peers
const DefaultMaximum = 100

// Registry - bounded set of peer addresses in insertion order
type Registry struct {
	sync.RWMutex
	maximum int
	index   map[Address]struct{}
	list    []Address
}

// New - an empty registry holding at most maximum entries
func New(maximum int) *Registry {
	if maximum < 0 {
		maximum = 0
	}
	return &Registry{
		maximum: maximum,
		index:   make(map[Address]struct{}, maximum),
		list:    make([]Address, 0, maximum),
	}
}

// Insert - add an address, reporting why it was refused
//
// the membership check, size check and insert happen under one lock
// so that concurrent callers can never exceed the maximum
func (r *Registry) Insert(a Address) error {
	r.Lock()
	defer r.Unlock()

	if _, ok := r.index[a]; ok {
		return fault.ErrAlreadyPeer
	}
	if len(r.list) >= r.maximum {
		return fault.ErrRegistryFull
	}
	r.index[a] = struct{}{}
	r.list = append(r.list, a)
	return nil
}

// Add - true if the address was new and there was room for it
func (r *Registry) Add(a Address) bool {
	return nil == r.Insert(a)
}

// Contains - membership test
func (r *Registry) Contains(a Address) bool {
	r.RLock()
	defer r.RUnlock()
	_, ok := r.index[a]
	return ok
}

// Snapshot - copy of the entries, safe to use without the lock
func (r *Registry) Snapshot() []Address {
	r.RLock()
	defer r.RUnlock()
	s := make([]Address, len(r.list))
	copy(s, r.list)
	return s
}

// Count - current number of entries
func (r *Registry) Count() int {
	r.RLock()
	defer r.RUnlock()
	return len(r.list)
}

// Maximum - the bound given to New
func (r *Registry) Maximum() int {
	return r.maximum
}

// IsFull - no more entries can be added
func (r *Registry) IsFull() bool {
	r.RLock()
	defer r.RUnlock()
	return len(r.list) >= r.maximum
}
