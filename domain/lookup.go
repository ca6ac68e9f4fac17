// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package domain

import (
	"net"
	"strings"
	"time"

	"github.com/miekg/dns"

	"github.com/blobchain/blobd/fault"
)

const (
	configFile     = "/etc/resolv.conf"
	maximumServers = 3 // as resolv.conf(5)
	queryTimeout   = 5 * time.Second
)

// LookupTXT - fetch the TXT records of a domain from the configured
// name servers, each record's strings are concatenated
func LookupTXT(domainName string) ([]string, error) {
	conf, err := dns.ClientConfigFromFile(configFile)
	if nil != err {
		return nil, err
	}
	return lookupTXT(domainName, conf.Servers, conf.Port)
}

func lookupTXT(domainName string, servers []string, port string) ([]string, error) {
	if "" == domainName {
		return nil, fault.ErrInvalidNodeDomain
	}
	if 0 == len(servers) {
		return nil, fault.ErrNoDnsServer
	}
	if len(servers) > maximumServers {
		servers = servers[:maximumServers]
	}

	msg := dns.Msg{}
	msg.SetQuestion(dns.Fqdn(domainName), dns.TypeTXT)
	c := dns.Client{
		Timeout: queryTimeout,
	}

	err := error(fault.ErrNoNodesFound)
	for _, server := range servers {
		r, _, e := c.Exchange(&msg, net.JoinHostPort(server, port))
		if nil != e {
			err = e
			continue
		}
		if dns.RcodeSuccess != r.Rcode {
			err = fault.ErrNoNodesFound
			continue
		}

		txts := make([]string, 0, len(r.Answer))
		for _, rr := range r.Answer {
			if txt, ok := rr.(*dns.TXT); ok {
				txts = append(txts, strings.Join(txt.Txt, ""))
			}
		}
		return txts, nil
	}
	return nil, err
}
