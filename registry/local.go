// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"net"
	"strings"
)

// Local - the addresses under which this node can be reached
//
// any host in the alias set combined with the listening port refers to
// this node, so such an address must never become a peer
type Local struct {
	self  Address
	hosts map[string]struct{}
}

// NewLocal - self plus any extra host names or IPs that reach it
func NewLocal(self Address, aliases ...string) *Local {
	l := &Local{
		self:  self,
		hosts: make(map[string]struct{}, len(aliases)+1),
	}
	l.hosts[canonicalHost(self.Host)] = struct{}{}
	for _, h := range aliases {
		if "" != h {
			l.hosts[canonicalHost(h)] = struct{}{}
		}
	}
	return l
}

// Self - the advertised address
func (l *Local) Self() Address {
	return l.self
}

// Is - true if the address reaches this node
func (l *Local) Is(a Address) bool {
	if a.Port != l.self.Port {
		return false
	}
	_, ok := l.hosts[canonicalHost(a.Host)]
	return ok
}

// Hosts - number of distinct host aliases
func (l *Local) Hosts() int {
	return len(l.hosts)
}

// IPs in their shortest form, names lower case without a trailing dot
func canonicalHost(host string) string {
	host = strings.TrimSpace(host)
	if ip := net.ParseIP(strings.Trim(host, "[]")); nil != ip {
		return ip.String()
	}
	return strings.TrimSuffix(strings.ToLower(host), ".")
}
