// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package domain

import (
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/blobchain/blobd/fault"
	"github.com/blobchain/blobd/registry"
)

// Lookuper - interface to lookup bootstrap addresses
type Lookuper interface {
	Lookup(string) ([]registry.Address, error)
}

type lookuper struct {
	log *logger.L
	f   func(string) ([]string, error)
}

// NewLookuper - f fetches the raw TXT strings, normally LookupTXT
func NewLookuper(log *logger.L, f func(string) ([]string, error)) Lookuper {
	return &lookuper{
		log: log,
		f:   f,
	}
}

// Lookup - query DNS TXT records and decode every valid one
func (l *lookuper) Lookup(domainName string) ([]registry.Address, error) {
	log := l.log
	if "" == domainName {
		log.Error("invalid node domain")
		return nil, fault.ErrInvalidNodeDomain
	}

	txts, err := l.f(domainName)
	if nil != err {
		log.Errorf("lookup TXT record error: %s", err)
		return nil, err
	}

	seen := make(map[registry.Address]struct{})
	result := make([]registry.Address, 0, len(txts))
	for i, t := range txts {
		t = strings.TrimSpace(t)
		txt, err := Parse(t)
		if nil != err {
			log.Debugf("ignore TXT[%d]: %q  error: %s", i, t, err)
			continue
		}
		log.Infof("process TXT[%d]: %q", i, t)

		for _, a := range txt.Addresses() {
			if _, ok := seen[a]; ok {
				continue
			}
			seen[a] = struct{}{}
			result = append(result, a)
		}
	}
	return result, nil
}
