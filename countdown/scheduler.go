// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package countdown

// Scheduler is the periodic invocation mechanism behind a Timer.  A Timer calls Schedule from Start,
// passing its Tick method, and Cancel from Stop.  Both calls happen on the goroutine that drives the
// Timer.  Once Cancel returns, the scheduler must not invoke the tick function again until the next
// Schedule.
type Scheduler interface {
	// Schedule begins periodic invocation of tick, replacing any previously scheduled function.
	Schedule(tick func())

	// Cancel halts periodic invocation.  Cancel on an idle scheduler does nothing.
	Cancel()
}

// Manual is a Scheduler that does nothing.  Code using it is responsible for calling Timer.Tick
// at whatever cadence it chooses.
type Manual struct{}

func (Manual) Schedule(func()) {}
func (Manual) Cancel()         {}
