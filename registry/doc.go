// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package registry - the bounded set of known peer addresses
//
// A registry is owned by one node and shared by its listener,
// connector and discovery goroutines.  Entries are never removed;
// once the maximum is reached further additions are refused.
package registry
