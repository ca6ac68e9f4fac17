// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"net"
	"strconv"
	"strings"

	ma "github.com/multiformats/go-multiaddr"
	madns "github.com/multiformats/go-multiaddr-dns"

	"github.com/blobchain/blobd/fault"
)

// ParseHostPort - split an address into host and numeric port
//
// accepts either host:port (IPv6 in brackets) or a multiaddr such as
// /ip4/127.0.0.1/tcp/8888, /ip6/::1/tcp/8888 or /dns4/node.example/tcp/8888;
// DNS names are kept as is and resolved when dialled
func ParseHostPort(address string) (string, int, error) {
	address = strings.TrimSpace(address)
	if strings.HasPrefix(address, "/") {
		return parseMultiaddr(address)
	}

	host, port, err := net.SplitHostPort(address)
	if nil != err {
		return "", 0, fault.ErrInvalidAddress
	}
	host = strings.TrimSpace(host)
	if "" == host {
		return "", 0, fault.ErrInvalidAddress
	}
	numericPort, err := CheckPort(port)
	if nil != err {
		return "", 0, err
	}
	return host, numericPort, nil
}

// CheckPort - convert a port string, must be within 1..65535
func CheckPort(port string) (int, error) {
	numericPort, err := strconv.Atoi(strings.TrimSpace(port))
	if nil != err || numericPort < 1 || numericPort > 65535 {
		return 0, fault.ErrInvalidPort
	}
	return numericPort, nil
}

// JoinHostPort - the textual form of an address
func JoinHostPort(host string, port int) string {
	return net.JoinHostPort(host, strconv.Itoa(port))
}

// multiaddr components that can carry the host, in order of preference
var hostProtocols = []int{
	ma.P_IP4,
	ma.P_IP6,
	madns.Dns4Protocol.Code,
	madns.Dns6Protocol.Code,
}

func parseMultiaddr(address string) (string, int, error) {
	m, err := ma.NewMultiaddr(address)
	if nil != err {
		return "", 0, fault.ErrInvalidAddress
	}

	host := ""
	for _, code := range hostProtocols {
		if h, err := m.ValueForProtocol(code); nil == err {
			host = h
			break
		}
	}
	if "" == host {
		return "", 0, fault.ErrInvalidAddress
	}

	port, err := m.ValueForProtocol(ma.P_TCP)
	if nil != err {
		return "", 0, fault.ErrInvalidAddress
	}
	numericPort, err := CheckPort(port)
	if nil != err {
		return "", 0, err
	}
	return host, numericPort, nil
}
