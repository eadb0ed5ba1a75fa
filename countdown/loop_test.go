// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package countdown_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RomeuG/CountDownTimer/clock/clocktest"
	"github.com/RomeuG/CountDownTimer/concurrent"
	"github.com/RomeuG/CountDownTimer/countdown"
	"github.com/RomeuG/CountDownTimer/countdown/countdowntest"
	"github.com/RomeuG/CountDownTimer/logging"
)

func TestLoop(t *testing.T) {
	var (
		assert   = assert.New(t)
		require  = require.New(t)
		fake     = clocktest.NewFake(time.Unix(1600000000, 0))
		recorder = new(countdowntest.Recorder)
		logger   = logging.NewTestLogger(nil, t)

		loop = countdown.NewLoop(&countdown.Options{
			Clock:      fake,
			TickPeriod: time.Second,
			Logger:     logger,
		})

		timer = countdown.New(&countdown.Options{
			Clock:     fake,
			Scheduler: loop,
			Listener:  recorder,
			Logger:    logger,
		})

		waitGroup = new(sync.WaitGroup)
		shutdown  = make(chan struct{})
	)

	assert.Equal(countdown.ErrLoopNotRunning, loop.Do(func() {}))

	require.NoError(loop.Run(waitGroup, shutdown))
	assert.Error(loop.Run(waitGroup, shutdown))

	require.NoError(loop.Do(func() { timer.StartFor(3 * time.Second) }))
	assert.Equal(1, fake.Tickers())

	for i := 1; i <= 3; i++ {
		fake.Advance(time.Second)
		expected := i
		assert.Eventually(
			func() bool { return recorder.Count(countdowntest.Tick) == expected },
			2*time.Second,
			5*time.Millisecond,
		)
	}

	// the terminal tick cancels the ticker from the loop goroutine
	assert.Eventually(func() bool { return fake.Tickers() == 0 }, 2*time.Second, 5*time.Millisecond)

	var running bool
	require.NoError(loop.Do(func() { running = timer.IsRunning() }))
	assert.False(running)
	assert.Equal(1, recorder.Count(countdowntest.Finished))

	fake.Advance(5 * time.Second)
	require.NoError(loop.Do(func() {}))
	assert.Equal(3, recorder.Count(countdowntest.Tick))

	// restarting schedules a fresh ticker, and a stop cancels it
	require.NoError(loop.Do(func() { timer.StartFor(time.Minute) }))
	assert.Equal(1, fake.Tickers())
	require.NoError(loop.Do(timer.Stop))
	assert.Zero(fake.Tickers())

	close(shutdown)
	assert.True(concurrent.WaitTimeout(waitGroup, 2*time.Second))
	assert.Equal(countdown.ErrLoopNotRunning, loop.Do(func() {}))
}

func TestLoopShutdownWhileScheduled(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
		fake    = clocktest.NewFake(time.Now())
		loop    = countdown.NewLoop(&countdown.Options{Clock: fake})
		timer   = countdown.New(&countdown.Options{Clock: fake, Scheduler: loop})
	)

	waitGroup, shutdown, err := concurrent.Execute(loop)
	require.NoError(err)

	require.NoError(loop.Do(func() { timer.StartFor(time.Hour) }))
	assert.Equal(1, fake.Tickers())

	close(shutdown)
	assert.True(concurrent.WaitTimeout(waitGroup, 2*time.Second))
	assert.Zero(fake.Tickers())
}

func TestLoopTicker(t *testing.T) {
	var (
		assert   = assert.New(t)
		require  = require.New(t)
		ticks    = make(chan time.Time, 1)
		ticker   = new(clocktest.MockTicker)
		m        = new(clocktest.Mock)
		fake     = clocktest.NewFake(time.Now())
		recorder = new(countdowntest.Recorder)

		loop  = countdown.NewLoop(&countdown.Options{Clock: m, TickPeriod: 250 * time.Millisecond})
		timer = countdown.New(&countdown.Options{Clock: fake, Scheduler: loop, Listener: recorder})
	)

	m.OnNewTicker(250*time.Millisecond, ticker).Once()
	ticker.OnC(ticks)
	ticker.OnStop().Once()

	waitGroup, shutdown, err := concurrent.Execute(loop)
	require.NoError(err)

	require.NoError(loop.Do(func() { timer.StartFor(time.Hour) }))
	ticks <- time.Now()
	assert.Eventually(
		func() bool { return recorder.Count(countdowntest.Tick) == 1 },
		2*time.Second,
		5*time.Millisecond,
	)

	require.NoError(loop.Do(timer.Stop))

	close(shutdown)
	assert.True(concurrent.WaitTimeout(waitGroup, 2*time.Second))

	m.AssertExpectations(t)
	ticker.AssertExpectations(t)
}
