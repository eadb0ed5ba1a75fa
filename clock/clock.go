// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package clock

import (
	"time"

	"github.com/zoobzio/clockz"
)

// Interface is the subset of time operations a countdown needs: the wall clock, a monotonic
// reading relative to the clock's own epoch, and tickers.
type Interface interface {
	Now() time.Time

	// Elapsed returns the time since this clock's epoch.  The returned value never decreases
	// and is unaffected by changes to the wall clock.
	Elapsed() time.Duration

	NewTicker(time.Duration) Ticker
}

// epoch is captured once per process.  time.Time values obtained from time.Now carry a monotonic
// reading, which Since uses in preference to the wall clock.
var epoch = clockz.RealClock.Now()

type systemClock struct {
	clockz.Clock
	epoch time.Time
}

func (sc systemClock) Elapsed() time.Duration {
	return sc.Since(sc.epoch)
}

func (sc systemClock) NewTicker(d time.Duration) Ticker {
	return sc.Clock.NewTicker(d)
}

// System returns a clock backed by the time package.  All system clocks share the same epoch.
func System() Interface {
	return systemClock{Clock: clockz.RealClock, epoch: epoch}
}
