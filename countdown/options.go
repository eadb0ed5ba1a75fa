// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package countdown

import (
	"time"

	"github.com/go-kit/kit/metrics/provider"
	"github.com/go-kit/log"

	"github.com/RomeuG/CountDownTimer/clock"
	"github.com/RomeuG/CountDownTimer/logging"
)

const (
	// DefaultElapsedTimeLimit is the elapsed time, in seconds, at which OnTimeElapsed fires
	DefaultElapsedTimeLimit int64 = 60

	// DefaultRemainingTimeLimit is the remaining time, in seconds, at which OnTimeRemaining fires
	DefaultRemainingTimeLimit int64 = 90

	// DefaultTickPeriod is the cadence of a Loop
	DefaultTickPeriod = time.Second
)

// Options represent the available configuration options for components within this package.
// A nil *Options is valid and produces the defaults.
type Options struct {
	// ElapsedTimeLimit is the initial elapsed time threshold, in seconds.  If unset,
	// DefaultElapsedTimeLimit is used.  Zero and negative values are used as given.
	ElapsedTimeLimit *int64

	// RemainingTimeLimit is the initial remaining time threshold, in seconds.  If unset,
	// DefaultRemainingTimeLimit is used.
	RemainingTimeLimit *int64

	// InitialTime is the base a Timer starts with, as an offset from the clock's epoch.
	InitialTime time.Duration

	// TickPeriod is the cadence at which a Loop evaluates ticks.  If nonpositive,
	// DefaultTickPeriod is used.
	TickPeriod time.Duration

	// Clock is the time source.  If unset, clock.System() is used.
	Clock clock.Interface `json:"-"`

	// Scheduler drives ticks for a Timer.  If unset, Manual is used.
	Scheduler Scheduler `json:"-"`

	// Listener is the initial listener for a Timer.  If unset, NopListener is used.
	Listener Listener `json:"-"`

	// Logger is the output sink for log messages.  If not supplied, log output
	// is sent to a NOP logger.
	Logger log.Logger `json:"-"`

	// MetricsProvider is the go-kit factory for metrics.  If not supplied, metrics are discarded.
	MetricsProvider provider.Provider `json:"-"`
}

func (o *Options) elapsedTimeLimit() int64 {
	if o != nil && o.ElapsedTimeLimit != nil {
		return *o.ElapsedTimeLimit
	}

	return DefaultElapsedTimeLimit
}

func (o *Options) remainingTimeLimit() int64 {
	if o != nil && o.RemainingTimeLimit != nil {
		return *o.RemainingTimeLimit
	}

	return DefaultRemainingTimeLimit
}

func (o *Options) initialTime() time.Duration {
	if o != nil {
		return o.InitialTime
	}

	return 0
}

func (o *Options) tickPeriod() time.Duration {
	if o != nil && o.TickPeriod > 0 {
		return o.TickPeriod
	}

	return DefaultTickPeriod
}

func (o *Options) clock() clock.Interface {
	if o != nil && o.Clock != nil {
		return o.Clock
	}

	return clock.System()
}

func (o *Options) scheduler() Scheduler {
	if o != nil && o.Scheduler != nil {
		return o.Scheduler
	}

	return Manual{}
}

func (o *Options) listener() Listener {
	if o != nil && o.Listener != nil {
		return o.Listener
	}

	return NopListener{}
}

func (o *Options) logger() log.Logger {
	if o != nil && o.Logger != nil {
		return o.Logger
	}

	return logging.DefaultLogger()
}

func (o *Options) metricsProvider() provider.Provider {
	if o != nil && o.MetricsProvider != nil {
		return o.MetricsProvider
	}

	return provider.NewDiscardProvider()
}
