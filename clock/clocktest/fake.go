// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package clocktest

import (
	"sync"
	"time"

	"github.com/zoobzio/clockz"

	"github.com/RomeuG/CountDownTimer/clock"
)

// Fake is a clock.Interface whose time only moves when Advance is called.  Ticks that come due
// are delivered before Advance returns.  A Fake is safe for concurrent use.
type Fake struct {
	fake  *clockz.FakeClock
	epoch time.Time

	lock    sync.Mutex
	tickers []*fakeTicker
}

var _ clock.Interface = (*Fake)(nil)

// NewFake creates a Fake whose epoch, and current time, is the given instant.  Elapsed on
// the returned clock starts at zero.
func NewFake(epoch time.Time) *Fake {
	return &Fake{
		fake:  clockz.NewFakeClockAt(epoch),
		epoch: epoch,
	}
}

func (f *Fake) Now() time.Time {
	return f.fake.Now()
}

func (f *Fake) Elapsed() time.Duration {
	return f.fake.Since(f.epoch)
}

func (f *Fake) NewTicker(d time.Duration) clock.Ticker {
	if d <= 0 {
		panic("non-positive interval for NewTicker")
	}

	t := &fakeTicker{
		Ticker: f.fake.NewTicker(d),
		fake:   f,
	}

	f.lock.Lock()
	f.tickers = append(f.tickers, t)
	f.lock.Unlock()

	return t
}

// Advance moves this clock forward.  As with time.Ticker, a ticker whose channel is full drops ticks.
func (f *Fake) Advance(d time.Duration) {
	if d < 0 {
		panic("a fake clock cannot move backwards")
	}

	f.fake.Advance(d)
	f.fake.BlockUntilReady()
}

// Tickers returns the count of tickers that have not been stopped
func (f *Fake) Tickers() int {
	f.lock.Lock()
	defer f.lock.Unlock()
	return len(f.tickers)
}

type fakeTicker struct {
	clockz.Ticker
	fake *Fake
}

func (t *fakeTicker) Stop() {
	t.Ticker.Stop()

	t.fake.lock.Lock()
	defer t.fake.lock.Unlock()

	for i, candidate := range t.fake.tickers {
		if candidate == t {
			t.fake.tickers = append(t.fake.tickers[:i], t.fake.tickers[i+1:]...)
			break
		}
	}
}
