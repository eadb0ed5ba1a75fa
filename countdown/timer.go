// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package countdown

import (
	"time"

	"github.com/go-kit/log"
	"github.com/segmentio/ksuid"

	"github.com/RomeuG/CountDownTimer/clock"
	"github.com/RomeuG/CountDownTimer/logging"
)

// Timer is a countdown toward an absolute base on a monotonic clock.  A single Timer is meant to be
// reused across many start/stop cycles.
//
// Timer performs no locking.  See the package documentation.
type Timer struct {
	clock     clock.Interface
	scheduler Scheduler
	logger    log.Logger
	measures  Measures

	listener Listener
	state    State
	run      ksuid.KSUID

	// base is the clock reading at which the countdown reaches zero
	base time.Duration

	// startTime is the clock reading at the most recent Start, nil before the first one
	startTime *time.Duration

	elapsedTimeLimit   int64
	remainingTimeLimit int64

	// one-shot latches, cleared by every Start
	elapsedFired   bool
	remainingFired bool
}

// New constructs a stopped Timer.  The Options may be nil.
func New(o *Options) *Timer {
	return &Timer{
		clock:              o.clock(),
		scheduler:          o.scheduler(),
		logger:             logging.Component(o.logger(), "countdown"),
		measures:           NewMeasures(o.metricsProvider()),
		listener:           o.listener(),
		base:               o.initialTime(),
		elapsedTimeLimit:   o.elapsedTimeLimit(),
		remainingTimeLimit: o.remainingTimeLimit(),
	}
}

// SetTimerListener replaces the current listener.  Passing nil restores NopListener.
func (t *Timer) SetTimerListener(l Listener) {
	if l == nil {
		l = NopListener{}
	}

	t.listener = l
}

// SetInitialTime sets the base, the clock reading at which the countdown reaches zero.  It does not
// alter the state, the latches, or the start time.
func (t *Timer) SetInitialTime(base time.Duration) {
	t.base = base
}

// InitialTime returns the current base
func (t *Timer) InitialTime() time.Duration {
	return t.base
}

// SetElapsedTimeLimit changes the elapsed time threshold, in seconds.  The change applies from the next
// tick, but does not re-arm a threshold that already fired during the current run.
func (t *Timer) SetElapsedTimeLimit(seconds int64) {
	t.elapsedTimeLimit = seconds
}

func (t *Timer) ElapsedTimeLimit() int64 {
	return t.elapsedTimeLimit
}

// SetRemainingTimeLimit changes the remaining time threshold, in seconds, with the same semantics
// as SetElapsedTimeLimit.
func (t *Timer) SetRemainingTimeLimit(seconds int64) {
	t.remainingTimeLimit = seconds
}

func (t *Timer) RemainingTimeLimit() int64 {
	return t.remainingTimeLimit
}

// Start begins a run toward the existing base.  Both thresholds are re-armed, OnStart fires, the start
// time is recorded, and the scheduler begins ticking.  Starting a running timer simply begins a new run.
func (t *Timer) Start() {
	t.state = Running
	t.elapsedFired = false
	t.remainingFired = false
	t.run = ksuid.New()

	t.measures.Start.Inc()
	t.measures.Running.Set(1)
	t.listener.OnStart()

	startTime := t.clock.Elapsed()
	t.startTime = &startTime

	logging.Info(t.logger).Log(
		logging.MessageKey(), "countdown started",
		"run", t.run,
		"base", t.base,
		"remaining", t.base-startTime,
	)

	t.scheduler.Schedule(t.Tick)
}

// StartWith sets the base and then starts the timer.
func (t *Timer) StartWith(base time.Duration) {
	t.SetInitialTime(base)
	t.Start()
}

// StartFor starts a countdown of d from the current clock reading.
func (t *Timer) StartFor(d time.Duration) {
	t.StartWith(t.clock.Elapsed() + d)
}

// Stop moves the timer to Stopped, fires OnStop, and halts the scheduler.  Stop never fails:
// stopping a stopped timer fires OnStop again.  The base and the latches are left alone.
func (t *Timer) Stop() {
	t.state = Stopped

	t.measures.Stop.Inc()
	t.measures.Running.Set(0)
	t.listener.OnStop()
	t.scheduler.Cancel()

	logging.Debug(t.logger).Log(
		logging.MessageKey(), "countdown stopped",
		"run", t.run,
		"remaining", t.base-t.clock.Elapsed(),
	)
}

// Tick evaluates one tick.  It is the entry point for whatever drives the timer, and does nothing
// unless the timer is running.  The evaluation order is fixed: the elapsed threshold, the remaining
// threshold, expiry (which stops the timer and then fires OnFinished), and finally OnTick.
func (t *Timer) Tick() {
	if t.state != Running {
		return
	}

	t.measures.Tick.Inc()

	if !t.elapsedFired && t.ElapsedTimeSec() >= t.elapsedTimeLimit {
		t.listener.OnTimeElapsed()
		t.elapsedFired = true
		t.measures.ElapsedThreshold.Inc()
		logging.Debug(t.logger).Log(logging.MessageKey(), "elapsed time limit reached", "run", t.run, "limit", t.elapsedTimeLimit)
	}

	if !t.remainingFired && t.RemainingTimeSec() <= t.remainingTimeLimit {
		t.listener.OnTimeRemaining()
		t.remainingFired = true
		t.measures.RemainingThreshold.Inc()
		logging.Debug(t.logger).Log(logging.MessageKey(), "remaining time limit reached", "run", t.run, "limit", t.remainingTimeLimit)
	}

	if t.clock.Elapsed() >= t.base {
		t.Stop()
		t.measures.Finished.Inc()
		t.listener.OnFinished()
		logging.Info(t.logger).Log(logging.MessageKey(), "countdown finished", "run", t.run)
	}

	t.measures.Remaining.Set(float64(t.RemainingTimeSec()))
	t.listener.OnTick()
}

// ElapsedTimeMs returns the milliseconds since the most recent Start, or 0 if the timer has never started.
func (t *Timer) ElapsedTimeMs() int64 {
	if t.startTime == nil {
		return 0
	}

	return (t.clock.Elapsed() - *t.startTime).Milliseconds()
}

// ElapsedTimeSec is ElapsedTimeMs truncated to whole seconds
func (t *Timer) ElapsedTimeSec() int64 {
	return t.ElapsedTimeMs() / 1000
}

// RemainingTimeMs returns the milliseconds until the base.  This value is negative once the base has
// passed.  It is not clamped.
func (t *Timer) RemainingTimeMs() int64 {
	return (t.base - t.clock.Elapsed()).Milliseconds()
}

// RemainingTimeSec is RemainingTimeMs truncated toward zero to whole seconds
func (t *Timer) RemainingTimeSec() int64 {
	return t.RemainingTimeMs() / 1000
}

func (t *Timer) IsRunning() bool {
	return t.state == Running
}

func (t *Timer) State() State {
	return t.state
}

// RunID returns the identifier of the most recent run.  It is the nil KSUID before the first Start.
func (t *Timer) RunID() ksuid.KSUID {
	return t.run
}

// Snapshot is a point-in-time view of a Timer
type Snapshot struct {
	State              State  `json:"state"`
	Run                string `json:"run,omitempty"`
	BaseMs             int64  `json:"baseMs"`
	ElapsedMs          int64  `json:"elapsedMs"`
	RemainingMs        int64  `json:"remainingMs"`
	ElapsedTimeLimit   int64  `json:"elapsedTimeLimit"`
	RemainingTimeLimit int64  `json:"remainingTimeLimit"`
}

// Snapshot captures the current state of this timer
func (t *Timer) Snapshot() Snapshot {
	s := Snapshot{
		State:              t.state,
		BaseMs:             t.base.Milliseconds(),
		ElapsedMs:          t.ElapsedTimeMs(),
		RemainingMs:        t.RemainingTimeMs(),
		ElapsedTimeLimit:   t.elapsedTimeLimit,
		RemainingTimeLimit: t.remainingTimeLimit,
	}

	if !t.run.IsNil() {
		s.Run = t.run.String()
	}

	return s
}
