// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package domain

import (
	"net"
	"strings"

	"github.com/blobchain/blobd/fault"
	"github.com/blobchain/blobd/registry"
	"github.com/blobchain/blobd/util"
)

// the tag to detect applicable TXT records from DNS
var supportedTags = map[string]struct{}{
	"blobd=v1": {},
}

// TXT - decoded record
type TXT struct {
	Hosts []string
	Port  int
}

// Parse - decode DNS TXT records of the form
//
//   <TAG> a=<HOST;HOST;...> p=<PORT>
//
// exactly one "a" and one "p" are required, unknown items are invalid
func Parse(s string) (*TXT, error) {

	t := &TXT{}

	countA := 0
	countP := 0

words:
	for i, w := range strings.Split(strings.TrimSpace(s), " ") {

		if 0 == i {
			if _, ok := supportedTags[w]; ok {
				continue words
			}
			return nil, fault.ErrInvalidDnsTxtRecord
		}

		// ignore empty
		if "" == w {
			continue words
		}

		// require form: <letter>=<word>
		if len(w) < 3 || '=' != w[1] {
			return nil, fault.ErrInvalidDnsTxtRecord
		}

		// w[0]=tag character; w[1]= char('='); w[2:]=parameter
		parameter := w[2:]
		switch w[0] {
		case 'a':
			for _, host := range strings.Split(parameter, ";") {
				host, ok := checkHost(host)
				if !ok {
					return nil, fault.ErrInvalidAddress
				}
				t.Hosts = append(t.Hosts, host)
			}
			countA += 1

		case 'p':
			port, err := util.CheckPort(parameter)
			if nil != err {
				return nil, err
			}
			t.Port = port
			countP += 1

		default:
			return nil, fault.ErrInvalidDnsTxtRecord
		}
	}

	if 1 != countA || 1 != countP {
		return nil, fault.ErrInvalidDnsTxtRecord
	}
	return t, nil
}

// Addresses - one address per host
func (t *TXT) Addresses() []registry.Address {
	addresses := make([]registry.Address, 0, len(t.Hosts))
	for _, host := range t.Hosts {
		addresses = append(addresses, registry.Address{Host: host, Port: t.Port})
	}
	return addresses
}

// accept an IP (IPv6 optionally in brackets) or a DNS name
func checkHost(host string) (string, bool) {
	if "" == host {
		return "", false
	}
	if '[' == host[0] {
		end := len(host) - 1
		if ']' != host[end] {
			return "", false
		}
		host = host[1:end]
		return host, nil != net.ParseIP(host)
	}
	if nil != net.ParseIP(host) {
		return host, true
	}

	for _, label := range strings.Split(strings.TrimSuffix(host, "."), ".") {
		if "" == label || len(label) > 63 || '-' == label[0] || '-' == label[len(label)-1] {
			return "", false
		}
		for _, c := range label {
			if !(c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || '-' == c) {
				return "", false
			}
		}
	}
	return host, true
}
