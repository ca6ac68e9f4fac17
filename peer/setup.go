// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package peer

import (
	"net"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"github.com/blobchain/blobd/background"
	"github.com/blobchain/blobd/domain"
	"github.com/blobchain/blobd/fault"
	"github.com/blobchain/blobd/handler"
	"github.com/blobchain/blobd/ledger"
	"github.com/blobchain/blobd/mine"
	"github.com/blobchain/blobd/ratelimit"
	"github.com/blobchain/blobd/registry"
)

// defaults for zero configuration values
const (
	DefaultDialTimeout       = 5 * time.Second
	DefaultUnreachableExpiry = 60 * time.Second
	nodesNone                = "none"
)

// Configuration - the "peering" section of the configuration file
//
// times are in seconds, a zero interval disables that periodic task
type Configuration struct {
	ListenHost           string   `gluamapper:"listen_host" json:"listen_host"`
	ListenPort           int      `gluamapper:"listen_port" json:"listen_port"`
	MaximumPeers         int      `gluamapper:"maximum_peers" json:"maximum_peers"`
	Bootstrap            []string `gluamapper:"bootstrap" json:"bootstrap"`
	Nodes                string   `gluamapper:"nodes" json:"nodes"`
	DialTimeout          float64  `gluamapper:"dial_timeout" json:"dial_timeout"`
	DiscoveryInterval    float64  `gluamapper:"discovery_interval" json:"discovery_interval"`
	SynchroniseInterval  float64  `gluamapper:"synchronise_interval" json:"synchronise_interval"`
	UnreachableExpiry    float64  `gluamapper:"unreachable_expiry" json:"unreachable_expiry"`
	ConnectionsPerSecond float64  `gluamapper:"connections_per_second" json:"connections_per_second"`
	ConnectionBurst      int      `gluamapper:"connection_burst" json:"connection_burst"`
}

// Node - one participant in the network
type Node struct {
	sync.Mutex // guards the start/stop state

	log   *logger.L
	self  registry.Address
	local *registry.Local

	peers *registry.Registry
	chain *ledger.Ledger
	miner *mine.Miner

	dispatcher  *handler.Dispatcher
	interpreter *handler.Interpreter

	socket   net.Listener
	limiter  *rate.Limiter
	lookuper domain.Lookuper

	bootstrap   []registry.Address
	nodesDomain string
	unreachable *cache.Cache

	dialTimeout         time.Duration
	unreachableExpiry   time.Duration
	discoveryInterval   time.Duration
	synchroniseInterval time.Duration

	background *background.T
	started    bool
	stopped    bool
}

// New - create a node and bind its listening socket
//
// the node does not accept connections until Start
func New(log *logger.L, configuration *Configuration) (*Node, error) {
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}
	log.Info("initialising…")

	bootstrap, err := registry.ParseAddresses(configuration.Bootstrap)
	if nil != err {
		log.Errorf("bootstrap: %v  error: %s", configuration.Bootstrap, err)
		return nil, err
	}

	host := configuration.ListenHost
	if "" == host {
		host = defaultHost(log)
	}
	if configuration.ListenPort < 0 || configuration.ListenPort > 65535 {
		return nil, fault.ErrInvalidPort
	}

	socket, err := net.Listen("tcp", net.JoinHostPort(host, strconv.Itoa(configuration.ListenPort)))
	if nil != err {
		log.Errorf("listen on: %s:%d  error: %s", host, configuration.ListenPort, err)
		return nil, err
	}
	self := registry.Address{
		Host: host,
		Port: socket.Addr().(*net.TCPAddr).Port,
	}
	log.Infof("listening on: %s", self)

	local := registry.NewLocal(self, localAliases(log, host)...)
	log.Debugf("local host aliases: %d", local.Hosts())

	maximum := configuration.MaximumPeers
	if maximum <= 0 {
		maximum = registry.DefaultMaximum
	}

	n := &Node{
		log:                 log,
		self:                self,
		local:               local,
		peers:               registry.New(maximum),
		chain:               ledger.New(),
		socket:              socket,
		limiter:             ratelimit.New(configuration.ConnectionsPerSecond, configuration.ConnectionBurst),
		bootstrap:           bootstrap,
		dialTimeout:         seconds(configuration.DialTimeout, DefaultDialTimeout),
		unreachableExpiry:   seconds(configuration.UnreachableExpiry, DefaultUnreachableExpiry),
		discoveryInterval:   seconds(configuration.DiscoveryInterval, 0),
		synchroniseInterval: seconds(configuration.SynchroniseInterval, 0),
	}
	n.unreachable = cache.New(n.unreachableExpiry, 2*n.unreachableExpiry)

	if "" != configuration.Nodes && nodesNone != configuration.Nodes {
		n.nodesDomain = configuration.Nodes
		n.lookuper = domain.NewLookuper(logger.New("domain"), domain.LookupTXT)
	}

	n.miner = mine.New(logger.New("miner"), n.chain)
	n.dispatcher = handler.NewDispatcher(logger.New("dispatcher"), local, n.peers, n.chain, n.miner)
	n.interpreter = handler.NewInterpreter(logger.New("interpreter"), local, n.peers, n.chain)

	return n, nil
}

// Start - begin accepting connections and run the background tasks
func (n *Node) Start() error {
	n.Lock()
	defer n.Unlock()

	if n.stopped {
		return fault.ErrNotRunning
	}
	if n.started {
		return fault.ErrAlreadyInitialised
	}

	n.log.Info("start background…")
	processes := background.Processes{
		n.miner,
		&listener{log: logger.New("listener"), node: n},
		&maintainer{log: logger.New("discovery"), node: n},
	}
	n.background = background.Start(processes, nil)
	n.started = true
	return nil
}

// Stop - close the listener and wait for the background tasks
//
// a stopped node cannot be restarted
func (n *Node) Stop() error {
	n.Lock()
	defer n.Unlock()

	if n.stopped {
		return fault.ErrNotRunning
	}
	n.stopped = true

	if !n.started {
		n.log.Info("closing unstarted node")
		return n.socket.Close()
	}

	n.log.Info("shutting down…")
	n.background.Stop()
	n.log.Info("stopped")
	n.log.Flush()
	return nil
}

// Address - the address peers reach this node on
func (n *Node) Address() registry.Address {
	return n.self
}

// Local - every address that reaches this node
func (n *Node) Local() *registry.Local {
	return n.local
}

// Registry - the node's peers
func (n *Node) Registry() *registry.Registry {
	return n.peers
}

// Ledger - the node's chain
func (n *Node) Ledger() *ledger.Ledger {
	return n.chain
}

// Seeds - bootstrap addresses followed by any from the nodes domain
func (n *Node) Seeds() []registry.Address {
	seeds := make([]registry.Address, 0, len(n.bootstrap))
	seeds = append(seeds, n.bootstrap...)

	if nil != n.lookuper {
		addresses, err := n.lookuper.Lookup(n.nodesDomain)
		if nil != err {
			n.log.Warnf("nodes domain: %s  error: %s", n.nodesDomain, err)
		} else {
			seeds = append(seeds, addresses...)
		}
	}
	return seeds
}

// the first address the host name resolves to
func defaultHost(log *logger.L) string {
	const fallback = "127.0.0.1"

	name, err := os.Hostname()
	if nil != err {
		log.Warnf("host name error: %s", err)
		return fallback
	}
	addresses, err := net.LookupHost(name)
	if nil != err || 0 == len(addresses) {
		log.Warnf("resolve host name: %q  error: %v", name, err)
		return fallback
	}
	for _, a := range addresses {
		if ip := net.ParseIP(a); nil != ip && nil != ip.To4() {
			return a
		}
	}
	return addresses[0]
}

// every host text that may reach a socket bound to host
func localAliases(log *logger.L, host string) []string {
	aliases := []string{host, "localhost", "127.0.0.1", "::1"}

	names := []string{host}
	if name, err := os.Hostname(); nil == err {
		aliases = append(aliases, name)
		names = append(names, name)
	} else {
		log.Warnf("host name error: %s", err)
	}
	for _, name := range names {
		if nil != net.ParseIP(name) {
			continue
		}
		if addresses, err := net.LookupHost(name); nil == err {
			aliases = append(aliases, addresses...)
		}
	}

	interfaces, err := net.InterfaceAddrs()
	if nil != err {
		log.Warnf("interface addresses error: %s", err)
		return aliases
	}
	for _, a := range interfaces {
		if ipnet, ok := a.(*net.IPNet); ok {
			aliases = append(aliases, ipnet.IP.String())
		}
	}
	return aliases
}

func seconds(s float64, defaultValue time.Duration) time.Duration {
	if s <= 0 {
		return defaultValue
	}
	return time.Duration(s * float64(time.Second))
}
