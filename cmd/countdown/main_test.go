// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RomeuG/CountDownTimer/clock/clocktest"
	"github.com/RomeuG/CountDownTimer/concurrent"
	"github.com/RomeuG/CountDownTimer/countdown"
	"github.com/RomeuG/CountDownTimer/logging"
	"github.com/RomeuG/CountDownTimer/xviper"
)

func TestNewFlagSet(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
	)

	fs, err := newFlagSet([]string{"-f", "/etc/countdown.yaml", "--duration", "90s", "--listen", ":9090"})
	require.NoError(err)

	file, err := fs.GetString(xviper.DefaultFileFlag)
	assert.NoError(err)
	assert.Equal("/etc/countdown.yaml", file)

	name, err := fs.GetString(xviper.DefaultNameFlag)
	assert.NoError(err)
	assert.Equal(applicationName, name)

	d, err := fs.GetDuration(DurationFlag)
	assert.NoError(err)
	assert.Equal(90*time.Second, d)

	_, err = newFlagSet([]string{"--nosuch"})
	assert.Error(err)
}

func TestRunBadArguments(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(1, run([]string{"--nosuch"}))
	assert.Equal(1, run([]string{"--file", filepath.Join(t.TempDir(), "missing.yaml")}))
}

func TestNewListener(t *testing.T) {
	l := newListener(logging.NewTestLogger(nil, t))
	assert.NotPanics(t, func() {
		l.OnStart()
		l.OnTimeElapsed()
		l.OnTimeRemaining()
		l.OnStop()
		l.OnFinished()
		l.OnTick()
	})
}

func TestStartAt(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
		fake    = clocktest.NewFake(time.Now())
		loop    = countdown.NewLoop(&countdown.Options{Clock: fake})
		timer   = countdown.New(&countdown.Options{Clock: fake, Scheduler: loop})
	)

	// nothing to do, and the loop need not be running
	assert.NoError(startAt(loop, timer, 0).Run(new(sync.WaitGroup), make(chan struct{})))
	assert.Equal(countdown.ErrLoopNotRunning, startAt(loop, timer, time.Minute).Run(new(sync.WaitGroup), make(chan struct{})))

	waitGroup, shutdown, err := concurrent.Execute(concurrent.RunnableSet{loop, startAt(loop, timer, time.Minute)})
	require.NoError(err)

	var remaining int64
	require.NoError(loop.Do(func() { remaining = timer.RemainingTimeMs() }))
	assert.Equal(int64(60000), remaining)

	close(shutdown)
	assert.True(concurrent.WaitTimeout(waitGroup, 2*time.Second))
}
