// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package mine - dedicated proof-of-work worker
//
// transactions are handed to a single goroutine which appends them to
// the ledger one at a time so that network handlers never run the
// nonce search themselves
package mine
