// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"encoding/json"

	"github.com/blobchain/blobd/fault"
	"github.com/blobchain/blobd/util"
)

// Address - where a peer listens, compared by value
type Address struct {
	Host string
	Port int
}

// NewAddress - create an address, the port must be valid
func NewAddress(host string, port int) (Address, error) {
	if "" == host {
		return Address{}, fault.ErrInvalidAddress
	}
	if port < 1 || port > 65535 {
		return Address{}, fault.ErrInvalidPort
	}
	return Address{Host: host, Port: port}, nil
}

// ParseAddress - from host:port or multiaddr text
func ParseAddress(s string) (Address, error) {
	host, port, err := util.ParseHostPort(s)
	if nil != err {
		return Address{}, err
	}
	return Address{Host: host, Port: port}, nil
}

// ParseAddresses - convert a list, stopping at the first bad entry
func ParseAddresses(list []string) ([]Address, error) {
	addresses := make([]Address, 0, len(list))
	for _, s := range list {
		a, err := ParseAddress(s)
		if nil != err {
			return nil, err
		}
		addresses = append(addresses, a)
	}
	return addresses, nil
}

// String - host:port
func (a Address) String() string {
	return util.JoinHostPort(a.Host, a.Port)
}

// MarshalJSON - encode as the tuple ["host", port]
func (a Address) MarshalJSON() ([]byte, error) {
	return json.Marshal([]interface{}{a.Host, a.Port})
}

// UnmarshalJSON - decode from the tuple ["host", port]
func (a *Address) UnmarshalJSON(data []byte) error {
	var tuple []json.RawMessage
	if err := json.Unmarshal(data, &tuple); nil != err {
		return fault.ErrInvalidAddress
	}
	if 2 != len(tuple) {
		return fault.ErrInvalidAddress
	}

	var host string
	var port int
	if err := json.Unmarshal(tuple[0], &host); nil != err {
		return fault.ErrInvalidAddress
	}
	if err := json.Unmarshal(tuple[1], &port); nil != err {
		return fault.ErrInvalidPort
	}

	addr, err := NewAddress(host, port)
	if nil != err {
		return err
	}
	*a = addr
	return nil
}
