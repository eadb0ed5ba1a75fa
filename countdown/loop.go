// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package countdown

import (
	"errors"
	"sync"
	"time"

	"github.com/go-kit/log"

	"github.com/RomeuG/CountDownTimer/clock"
	"github.com/RomeuG/CountDownTimer/concurrent"
	"github.com/RomeuG/CountDownTimer/logging"
)

// ErrLoopNotRunning is returned by Loop.Do when the loop has not been started or has shut down
var ErrLoopNotRunning = errors.New("the countdown loop is not running")

// Loop is a Scheduler that owns a single goroutine.  Ticks from a clock.Ticker and functions submitted
// through Do are all executed on that goroutine, one at a time, which is what keeps a Timer driven by a
// Loop single-threaded.
//
// Schedule and Cancel must only be called on the loop goroutine, which is always the case when they are
// called by a Timer whose methods are invoked via Do or from its listener.
type Loop struct {
	clock  clock.Interface
	period time.Duration
	logger log.Logger

	ops     chan func()
	started chan struct{}
	done    chan struct{}
	once    sync.Once

	// only accessed on the loop goroutine
	ticker clock.Ticker
	tick   func()
}

var (
	_ Scheduler           = (*Loop)(nil)
	_ concurrent.Runnable = (*Loop)(nil)
)

// NewLoop creates a Loop using the clock and tick period of the given, possibly nil, Options.
// The Loop does nothing until Run is called.
func NewLoop(o *Options) *Loop {
	return &Loop{
		clock:   o.clock(),
		period:  o.tickPeriod(),
		logger:  logging.Component(o.logger(), "loop"),
		ops:     make(chan func()),
		started: make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// Run spawns the loop goroutine, which exits when shutdown is closed.  Calling Run more than once
// returns an error.
func (l *Loop) Run(waitGroup *sync.WaitGroup, shutdown <-chan struct{}) error {
	err := errors.New("the countdown loop has already been started")
	l.once.Do(func() {
		err = nil
		waitGroup.Add(1)
		close(l.started)
		go l.run(waitGroup, shutdown)
	})

	return err
}

func (l *Loop) run(waitGroup *sync.WaitGroup, shutdown <-chan struct{}) {
	defer waitGroup.Done()
	defer close(l.done)
	defer l.Cancel()

	logging.Info(l.logger).Log(logging.MessageKey(), "loop started", "period", l.period)
	defer logging.Info(l.logger).Log(logging.MessageKey(), "loop stopped")

	for {
		// a nil channel blocks forever, so no ticks are received while nothing is scheduled
		var ticks <-chan time.Time
		if l.ticker != nil {
			ticks = l.ticker.C()
		}

		select {
		case <-shutdown:
			return

		case op := <-l.ops:
			op()

		case <-ticks:
			l.tick()
		}
	}
}

// Do executes f on the loop goroutine and waits for it to complete.  Do must not be called from the loop
// goroutine itself, e.g. from a Listener, as that would deadlock.
func (l *Loop) Do(f func()) error {
	select {
	case <-l.started:
	default:
		return ErrLoopNotRunning
	}

	complete := make(chan struct{})
	op := func() {
		defer close(complete)
		f()
	}

	select {
	case l.ops <- op:
		<-complete
		return nil

	case <-l.done:
		return ErrLoopNotRunning
	}
}

// Schedule replaces any current ticker with a new one at the loop's period.
func (l *Loop) Schedule(tick func()) {
	l.Cancel()
	l.ticker = l.clock.NewTicker(l.period)
	l.tick = tick
}

// Cancel stops the current ticker, if any.  Any tick already delivered to the old ticker's channel
// is abandoned along with it.
func (l *Loop) Cancel() {
	if l.ticker != nil {
		l.ticker.Stop()
		l.ticker = nil
		l.tick = nil
	}
}
