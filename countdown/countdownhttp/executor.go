// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package countdownhttp

import "github.com/RomeuG/CountDownTimer/countdown"

// Executor runs a function on the goroutine that owns a timer and waits for it to complete.
// *countdown.Loop is the usual implementation.
type Executor interface {
	Do(func()) error
}

var _ Executor = (*countdown.Loop)(nil)

// ExecutorFunc is a function type that implements Executor
type ExecutorFunc func(func()) error

func (ef ExecutorFunc) Do(f func()) error {
	return ef(f)
}

// Immediate is an Executor that simply invokes the function on the calling goroutine.  It is only
// appropriate when nothing else can touch the timer concurrently, e.g. in tests.
var Immediate Executor = ExecutorFunc(func(f func()) error {
	f()
	return nil
})
