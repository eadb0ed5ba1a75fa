// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package countdown implements a reusable countdown timer.

A Timer counts down from an absolute target time, its base, expressed as a duration since the
epoch of a monotonic clock.Interface.  Each evaluation of Timer.Tick checks, in order, the elapsed
time threshold, the remaining time threshold, and whether the base has been reached, firing the
corresponding Listener callbacks.  OnTick always fires last.

A Timer is not safe for concurrent use.  All of its methods, and all listener callbacks, run on
whichever goroutine drives it.  Loop is a Scheduler that provides such a goroutine, along with Do
for submitting work to it from elsewhere.
*/
package countdown
