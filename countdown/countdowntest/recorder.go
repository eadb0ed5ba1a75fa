// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package countdowntest

import (
	"sync"

	"github.com/RomeuG/CountDownTimer/countdown"
)

// Event names recorded by a Recorder
const (
	Start         = "start"
	Stop          = "stop"
	TimeElapsed   = "timeElapsed"
	TimeRemaining = "timeRemaining"
	Finished      = "finished"
	Tick          = "tick"
)

// Recorder is a countdown.Listener that remembers the order in which callbacks fired.  It may be
// read from a goroutine other than the one driving the timer.
type Recorder struct {
	lock   sync.Mutex
	events []string
}

var _ countdown.Listener = (*Recorder)(nil)

func (r *Recorder) record(event string) {
	r.lock.Lock()
	r.events = append(r.events, event)
	r.lock.Unlock()
}

func (r *Recorder) OnStart()         { r.record(Start) }
func (r *Recorder) OnStop()          { r.record(Stop) }
func (r *Recorder) OnTimeElapsed()   { r.record(TimeElapsed) }
func (r *Recorder) OnTimeRemaining() { r.record(TimeRemaining) }
func (r *Recorder) OnFinished()      { r.record(Finished) }
func (r *Recorder) OnTick()          { r.record(Tick) }

// Events returns a copy of the events recorded so far
func (r *Recorder) Events() []string {
	r.lock.Lock()
	defer r.lock.Unlock()

	return append([]string(nil), r.events...)
}

// Count returns how many times the given event was recorded
func (r *Recorder) Count(event string) (count int) {
	r.lock.Lock()
	defer r.lock.Unlock()

	for _, e := range r.events {
		if e == event {
			count++
		}
	}

	return
}

// Reset discards the recorded events and returns them
func (r *Recorder) Reset() []string {
	r.lock.Lock()
	defer r.lock.Unlock()

	events := r.events
	r.events = nil
	return events
}
