// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ratelimit_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/blobchain/blobd/fault"
	"github.com/blobchain/blobd/ratelimit"
)

func TestDisabled(t *testing.T) {
	limiter := ratelimit.New(0, 10)
	assert.Nil(t, limiter, "limiter created for zero rate")

	for i := 0; i < 100; i += 1 {
		assert.Nil(t, ratelimit.Limit(limiter), "%d: nil limiter refused", i)
	}
}

func TestBurstThenDelay(t *testing.T) {
	limiter := ratelimit.New(20, 3)

	start := time.Now()
	for i := 0; i < 3; i += 1 {
		assert.Nil(t, ratelimit.Limit(limiter), "%d: burst refused", i)
	}
	assert.True(t, time.Since(start) < 40*time.Millisecond, "burst was delayed")

	assert.Nil(t, ratelimit.Limit(limiter), "request after burst refused")
	assert.True(t, time.Since(start) >= 40*time.Millisecond, "no delay after burst")
}

func TestRefuseLongDelay(t *testing.T) {
	limiter := ratelimit.New(0.01, 1)

	assert.Nil(t, ratelimit.Limit(limiter), "first request refused")
	assert.Equal(t, fault.ErrRateLimiting, ratelimit.Limit(limiter), "long wait not refused")
}
