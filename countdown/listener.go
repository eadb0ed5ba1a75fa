// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package countdown

// Listener receives the lifecycle notifications of a Timer.  All methods are invoked synchronously
// on the goroutine driving the Timer, so implementations must not block.  It is safe for a callback
// to call methods on the Timer, e.g. to restart it from OnFinished.
type Listener interface {
	// OnStart is invoked by Start after the timer's state has been updated and before ticking begins.
	OnStart()

	// OnStop is invoked by every call to Stop, including the one made when the countdown finishes
	// and including calls on an already stopped timer.
	OnStop()

	// OnTimeElapsed is invoked at most once per run, on the first tick at which the elapsed
	// seconds reach the elapsed time limit.
	OnTimeElapsed()

	// OnTimeRemaining is invoked at most once per run, on the first tick at which the remaining
	// seconds drop to the remaining time limit.
	OnTimeRemaining()

	// OnFinished is invoked on the tick at which the base is reached, after OnStop.
	OnFinished()

	// OnTick is invoked last on every tick evaluated while running.
	OnTick()
}

// NopListener is the Listener a Timer uses when none has been set
type NopListener struct{}

func (NopListener) OnStart()         {}
func (NopListener) OnStop()          {}
func (NopListener) OnTimeElapsed()   {}
func (NopListener) OnTimeRemaining() {}
func (NopListener) OnFinished()      {}
func (NopListener) OnTick()          {}

// ListenerFuncs adapts a set of optional closures into a Listener.  Any nil field is a no-op.
type ListenerFuncs struct {
	Start         func()
	Stop          func()
	TimeElapsed   func()
	TimeRemaining func()
	Finished      func()
	Tick          func()
}

var _ Listener = ListenerFuncs{}

func call(f func()) {
	if f != nil {
		f()
	}
}

func (lf ListenerFuncs) OnStart()         { call(lf.Start) }
func (lf ListenerFuncs) OnStop()          { call(lf.Stop) }
func (lf ListenerFuncs) OnTimeElapsed()   { call(lf.TimeElapsed) }
func (lf ListenerFuncs) OnTimeRemaining() { call(lf.TimeRemaining) }
func (lf ListenerFuncs) OnFinished()      { call(lf.Finished) }
func (lf ListenerFuncs) OnTick()          { call(lf.Tick) }
