// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/blobchain/blobd/configuration"
	"github.com/blobchain/blobd/peer"
	"github.com/blobchain/blobd/registry"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultLogDirectory = "log"
	defaultLogFile      = "blobd.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultListenPort          = 8888
	defaultDialTimeout         = 5  // seconds
	defaultDiscoveryInterval   = 60 // seconds
	defaultSynchroniseInterval = 30 // seconds
	defaultUnreachableExpiry   = 60 // seconds
)

// nodes started by hand in the original network layout
var defaultBootstrap = []string{
	"127.0.0.1:8888",
	"127.0.0.1:8877",
	"127.0.0.1:8866",
	"127.0.0.1:8855",
}

// Configuration - the whole configuration file
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	PidFile       string               `gluamapper:"pidfile" json:"pidfile"`
	Peering       peer.Configuration   `gluamapper:"peering" json:"peering"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{
		DataDirectory: defaultDataDirectory,
		PidFile:       "", // no PidFile by default

		Peering: peer.Configuration{
			ListenPort:          defaultListenPort,
			MaximumPeers:        registry.DefaultMaximum,
			Nodes:               "none",
			DialTimeout:         defaultDialTimeout,
			DiscoveryInterval:   defaultDiscoveryInterval,
			SynchroniseInterval: defaultSynchroniseInterval,
			UnreachableExpiry:   defaultUnreachableExpiry,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels: map[string]string{
				logger.DefaultTag: "critical",
			},
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); nil != err {
		return nil, err
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("Path: %q is not a directory", options.DataDirectory)
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.Logging.Directory,
	}
	if "" != options.PidFile {
		mustBeAbsolute = append(mustBeAbsolute, &options.PidFile)
	}
	for _, f := range mustBeAbsolute {
		*f = ensureAbsolute(options.DataDirectory, *f)
	}
	if err := os.MkdirAll(options.Logging.Directory, 0700); nil != err {
		return nil, err
	}

	// an absent list takes the defaults; decoding over a non-empty
	// slice would only overwrite its leading elements
	if nil == options.Peering.Bootstrap {
		options.Peering.Bootstrap = append([]string{}, defaultBootstrap...)
	}

	// fail early on bad bootstrap entries
	if _, err := registry.ParseAddresses(options.Peering.Bootstrap); nil != err {
		return nil, fmt.Errorf("bootstrap: %v  error: %s", options.Peering.Bootstrap, err)
	}

	return options, nil
}

// ensure the path is absolute
func ensureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}
