// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package background - start and stop a set of long running goroutines
//
// each Process receives the shared args and a shutdown channel; Stop
// closes every shutdown channel then waits for every Run to return
package background
