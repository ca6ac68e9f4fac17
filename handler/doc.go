// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package handler - message semantics for both sides of a connection
//
// Dispatcher turns an inbound request into at most one reply and at
// most one announcement to be broadcast.  Interpreter applies the
// effect of a reply received on an outbound connection.
package handler
