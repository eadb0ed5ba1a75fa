// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package countdownhttp

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RomeuG/CountDownTimer/clock/clocktest"
	"github.com/RomeuG/CountDownTimer/concurrent"
	"github.com/RomeuG/CountDownTimer/countdown"
	"github.com/RomeuG/CountDownTimer/countdown/countdowntest"
	"github.com/RomeuG/CountDownTimer/logging"
	"github.com/RomeuG/CountDownTimer/xmetrics"
)

type fixture struct {
	fake     *clocktest.Fake
	recorder *countdowntest.Recorder
	timer    *countdown.Timer
	handler  http.Handler
}

func newFixture(t *testing.T, o *Options) *fixture {
	if o == nil {
		o = new(Options)
	}

	f := &fixture{
		fake:     clocktest.NewFake(time.Unix(1600000000, 0)),
		recorder: new(countdowntest.Recorder),
	}

	logger := logging.NewTestLogger(nil, t)
	f.timer = countdown.New(&countdown.Options{
		Clock:    f.fake,
		Listener: f.recorder,
		Logger:   logger,
	})

	o.Timer = f.timer
	o.Logger = logger
	f.handler = NewHandler(o)
	return f
}

func (f *fixture) serve(method, target string, form url.Values) *httptest.ResponseRecorder {
	var request *http.Request
	if form != nil {
		request = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		request = httptest.NewRequest(method, target, nil)
	}

	response := httptest.NewRecorder()
	f.handler.ServeHTTP(response, request)
	return response
}

func decodeSnapshot(t *testing.T, response *httptest.ResponseRecorder) countdown.Snapshot {
	require.Equal(t, http.StatusOK, response.Code, response.Body.String())
	require.Equal(t, "application/json", response.Header().Get("Content-Type"))

	var s countdown.Snapshot
	require.NoError(t, json.Unmarshal(response.Body.Bytes(), &s))
	return s
}

func assertError(t *testing.T, expectedCode int, response *httptest.ResponseRecorder) {
	assert := assert.New(t)
	assert.Equal(expectedCode, response.Code)
	assert.Equal("application/json", response.Header().Get("Content-Type"))

	var body ErrorBody
	require.NoError(t, json.Unmarshal(response.Body.Bytes(), &body))
	assert.Equal(expectedCode, body.Code)
	assert.NotEmpty(body.Message)
}

func TestNewHandlerNoTimer(t *testing.T) {
	assert := assert.New(t)
	assert.Panics(func() { NewHandler(nil) })
	assert.Panics(func() { NewHandler(new(Options)) })
}

func TestStatus(t *testing.T) {
	var (
		assert = assert.New(t)
		f      = newFixture(t, nil)
	)

	s := decodeSnapshot(t, f.serve(http.MethodGet, TimerPath, nil))
	assert.Equal(countdown.Stopped, s.State)
	assert.Empty(s.Run)
	assert.Equal(countdown.DefaultElapsedTimeLimit, s.ElapsedTimeLimit)
	assert.Equal(countdown.DefaultRemainingTimeLimit, s.RemainingTimeLimit)
}

func testStartDuration(t *testing.T) {
	var (
		assert = assert.New(t)
		f      = newFixture(t, nil)
	)

	f.fake.Advance(10 * time.Second)
	s := decodeSnapshot(t, f.serve(http.MethodPost, StartPath+"?duration=5000&elapsedLimit=2", nil))

	assert.Equal(countdown.Running, s.State)
	assert.Equal(f.timer.RunID().String(), s.Run)
	assert.Equal(int64(15000), s.BaseMs)
	assert.Equal(int64(5000), s.RemainingMs)
	assert.Equal(int64(2), s.ElapsedTimeLimit)
	assert.Equal(countdown.DefaultRemainingTimeLimit, s.RemainingTimeLimit)
	assert.Equal([]string{countdowntest.Start}, f.recorder.Events())
}

func testStartInitialTime(t *testing.T) {
	var (
		assert = assert.New(t)
		f      = newFixture(t, nil)
	)

	f.fake.Advance(time.Second)
	s := decodeSnapshot(t, f.serve(http.MethodPost, StartPath, url.Values{"initialTime": {"60000"}, "remainingLimit": {"30"}}))

	assert.Equal(countdown.Running, s.State)
	assert.Equal(int64(60000), s.BaseMs)
	assert.Equal(int64(59000), s.RemainingMs)
	assert.Equal(int64(30), s.RemainingTimeLimit)
}

func testStartExistingBase(t *testing.T) {
	var (
		assert = assert.New(t)
		f      = newFixture(t, nil)
	)

	f.timer.SetInitialTime(20 * time.Second)
	s := decodeSnapshot(t, f.serve(http.MethodPost, StartPath, url.Values{}))
	assert.Equal(countdown.Running, s.State)
	assert.Equal(int64(20000), s.RemainingMs)
}

func testStartInvalid(t *testing.T) {
	testData := []struct {
		name  string
		query string
	}{
		{"Both", "?duration=1000&initialTime=1000"},
		{"NegativeDuration", "?duration=-1"},
		{"NotANumber", "?duration=abc"},
		{"BadLimit", "?duration=1000&elapsedLimit=x"},
		{"DurationOutOfRange", "?duration=9300000000000000"},
		{"InitialTimeOutOfRange", "?initialTime=-9300000000000000"},
	}

	for _, record := range testData {
		t.Run(record.name, func(t *testing.T) {
			f := newFixture(t, nil)
			assertError(t, http.StatusBadRequest, f.serve(http.MethodPost, StartPath+record.query, nil))
			assert.False(t, f.timer.IsRunning())
			assert.Empty(t, f.recorder.Events())
		})
	}
}

func testStartMaximum(t *testing.T) {
	var (
		assert = assert.New(t)
		f      = newFixture(t, nil)
	)

	f.fake.Advance(time.Hour)
	s := decodeSnapshot(t, f.serve(http.MethodPost, StartPath, url.Values{"duration": {strconv.FormatInt(MaxMilliseconds, 10)}}))

	assert.Equal(countdown.Running, s.State)
	assert.Equal(MaxMilliseconds+int64(time.Hour/time.Millisecond), s.BaseMs)
	assert.Equal(MaxMilliseconds, s.RemainingMs)
}

func TestStart(t *testing.T) {
	t.Run("Duration", testStartDuration)
	t.Run("Maximum", testStartMaximum)
	t.Run("InitialTime", testStartInitialTime)
	t.Run("ExistingBase", testStartExistingBase)
	t.Run("Invalid", testStartInvalid)
}

func TestStop(t *testing.T) {
	var (
		assert = assert.New(t)
		f      = newFixture(t, nil)
	)

	f.timer.StartFor(time.Minute)
	f.fake.Advance(2 * time.Second)

	s := decodeSnapshot(t, f.serve(http.MethodPost, StopPath, nil))
	assert.Equal(countdown.Stopped, s.State)
	assert.Equal(int64(58000), s.RemainingMs)

	// stopping again is not an error
	decodeSnapshot(t, f.serve(http.MethodPost, StopPath, nil))
	assert.Equal(2, f.recorder.Count(countdowntest.Stop))
}

func TestLimits(t *testing.T) {
	t.Run("Missing", func(t *testing.T) {
		f := newFixture(t, nil)
		assertError(t, http.StatusBadRequest, f.serve(http.MethodPut, LimitsPath, url.Values{}))
	})

	t.Run("Partial", func(t *testing.T) {
		var (
			assert = assert.New(t)
			f      = newFixture(t, nil)
		)

		s := decodeSnapshot(t, f.serve(http.MethodPut, LimitsPath, url.Values{"remainingLimit": {"3"}}))
		assert.Equal(int64(3), s.RemainingTimeLimit)
		assert.Equal(countdown.DefaultElapsedTimeLimit, s.ElapsedTimeLimit)
		assert.Equal(countdown.Stopped, s.State)
	})

	t.Run("Both", func(t *testing.T) {
		var (
			assert = assert.New(t)
			f      = newFixture(t, nil)
		)

		s := decodeSnapshot(t, f.serve(http.MethodPut, LimitsPath, url.Values{"elapsedLimit": {"7"}, "remainingLimit": {"-1"}}))
		assert.Equal(int64(7), s.ElapsedTimeLimit)
		assert.Equal(int64(-1), s.RemainingTimeLimit)
		assert.Equal(int64(7), f.timer.ElapsedTimeLimit())
	})
}

func TestRouting(t *testing.T) {
	f := newFixture(t, nil)

	t.Run("NotFound", func(t *testing.T) {
		assertError(t, http.StatusNotFound, f.serve(http.MethodGet, "/nosuch", nil))
	})

	t.Run("MethodNotAllowed", func(t *testing.T) {
		assertError(t, http.StatusMethodNotAllowed, f.serve(http.MethodDelete, TimerPath, nil))
		assertError(t, http.StatusMethodNotAllowed, f.serve(http.MethodGet, StartPath, nil))
	})

	t.Run("NoMetrics", func(t *testing.T) {
		assertError(t, http.StatusNotFound, f.serve(http.MethodGet, MetricsPath, nil))
	})
}

func TestMetricsEndpoint(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
	)

	registry, err := xmetrics.NewRegistry(
		&xmetrics.Options{DisableGoCollector: true, DisableProcessCollector: true},
		countdown.Metrics,
	)

	require.NoError(err)

	var (
		fake  = clocktest.NewFake(time.Now())
		timer = countdown.New(&countdown.Options{Clock: fake, MetricsProvider: registry})

		handler = NewHandler(&Options{
			Timer:    timer,
			Gatherer: registry,
			Logger:   logging.NewTestLogger(nil, t),
		})

		response = httptest.NewRecorder()
	)

	timer.StartFor(time.Minute)
	handler.ServeHTTP(response, httptest.NewRequest(http.MethodGet, MetricsPath, nil))

	assert.Equal(http.StatusOK, response.Code)
	assert.Contains(response.Body.String(), "countdown_timer_start_count 1")
	assert.Contains(response.Body.String(), "countdown_timer_running 1")
}

func TestExecutor(t *testing.T) {
	t.Run("NotRunning", func(t *testing.T) {
		f := newFixture(t, &Options{Executor: countdown.NewLoop(nil)})
		assertError(t, http.StatusServiceUnavailable, f.serve(http.MethodGet, TimerPath, nil))
		assertError(t, http.StatusServiceUnavailable, f.serve(http.MethodPost, StartPath+"?duration=1000", nil))
		assert.False(t, f.timer.IsRunning())
	})

	t.Run("Failure", func(t *testing.T) {
		failing := ExecutorFunc(func(func()) error { return errors.New("expected") })
		f := newFixture(t, &Options{Executor: failing})
		assertError(t, http.StatusInternalServerError, f.serve(http.MethodPost, StopPath, nil))
		assert.Empty(t, f.recorder.Events())
	})

	t.Run("Loop", func(t *testing.T) {
		var (
			assert  = assert.New(t)
			require = require.New(t)
			loop    = countdown.NewLoop(nil)
		)

		waitGroup, shutdown, err := concurrent.Execute(loop)
		require.NoError(err)
		defer func() {
			close(shutdown)
			waitGroup.Wait()
		}()

		f := newFixture(t, &Options{Executor: loop})
		s := decodeSnapshot(t, f.serve(http.MethodPost, StartPath+"?duration=60000", nil))
		assert.Equal(countdown.Running, s.State)

		s = decodeSnapshot(t, f.serve(http.MethodPost, StopPath, nil))
		assert.Equal(countdown.Stopped, s.State)
	})
}

func TestTracing(t *testing.T) {
	var (
		assert   = assert.New(t)
		called   = false
		response = httptest.NewRecorder()

		handler = Tracing("test")(http.HandlerFunc(func(response http.ResponseWriter, _ *http.Request) {
			called = true
			response.WriteHeader(http.StatusAccepted)
		}))
	)

	handler.ServeHTTP(response, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.True(called)
	assert.Equal(http.StatusAccepted, response.Code)
}

func TestWriteErrorf(t *testing.T) {
	var (
		assert   = assert.New(t)
		response = httptest.NewRecorder()
	)

	assert.NoError(WriteErrorf(response, http.StatusConflict, "a %q message", "quoted"))
	assert.Equal(http.StatusConflict, response.Code)
	assert.JSONEq(`{"code": 409, "message": "a \"quoted\" message"}`, response.Body.String())
}
