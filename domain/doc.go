// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package domain - bootstrap node addresses from DNS TXT records
//
// a record looks like
//
//   blobd=v1 a=127.0.0.1;[::1];node.example.com p=8888
//
// every host listed under "a" combined with the port under "p" becomes
// one bootstrap address
package domain
