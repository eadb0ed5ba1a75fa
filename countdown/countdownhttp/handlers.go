// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package countdownhttp

import (
	"errors"
	"math"
	"net/http"
	"time"

	"github.com/go-kit/log"
	"github.com/gorilla/schema"

	"github.com/RomeuG/CountDownTimer/countdown"
	"github.com/RomeuG/CountDownTimer/logging"
)

var (
	errDurationAndInitialTime = errors.New("only one of duration or initialTime may be supplied")
	errNegativeDuration       = errors.New("duration cannot be negative")
	errNoLimits               = errors.New("at least one of elapsedLimit or remainingLimit is required")
	errTimeOutOfRange         = errors.New("duration and initialTime must be within MaxMilliseconds")
)

// MaxMilliseconds bounds the duration and initialTime fields of a StartRequest.  Half of the
// representable range is accepted, which leaves room for the clock reading a duration is added to.
const MaxMilliseconds = int64(math.MaxInt64/time.Millisecond) / 2

func outOfRange(v *int64) bool {
	return v != nil && (*v > MaxMilliseconds || *v < -MaxMilliseconds)
}

// StartRequest describes the form accepted by Start.  All times are in milliseconds and all
// limits in seconds.  Duration is relative to the current clock reading, while InitialTime
// is an absolute base.  When neither is present, the timer's existing base is used.
type StartRequest struct {
	Duration       *int64 `schema:"duration"`
	InitialTime    *int64 `schema:"initialTime"`
	ElapsedLimit   *int64 `schema:"elapsedLimit"`
	RemainingLimit *int64 `schema:"remainingLimit"`
}

func (sr StartRequest) validate() error {
	switch {
	case sr.Duration != nil && sr.InitialTime != nil:
		return errDurationAndInitialTime

	case sr.Duration != nil && *sr.Duration < 0:
		return errNegativeDuration

	case outOfRange(sr.Duration) || outOfRange(sr.InitialTime):
		return errTimeOutOfRange

	default:
		return nil
	}
}

// LimitsRequest describes the form accepted by Limits, in seconds
type LimitsRequest struct {
	ElapsedLimit   *int64 `schema:"elapsedLimit"`
	RemainingLimit *int64 `schema:"remainingLimit"`
}

func (lr LimitsRequest) apply(t *countdown.Timer) {
	if lr.ElapsedLimit != nil {
		t.SetElapsedTimeLimit(*lr.ElapsedLimit)
	}

	if lr.RemainingLimit != nil {
		t.SetRemainingTimeLimit(*lr.RemainingLimit)
	}
}

func newDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}

// decodeForm parses the request's form and decodes it into v, writing a 400 response on failure.
func decodeForm(logger log.Logger, response http.ResponseWriter, request *http.Request, v interface{}) bool {
	if err := request.ParseForm(); err != nil {
		logging.Error(logger).Log(logging.MessageKey(), "unable to parse form", logging.ErrorKey(), err)
		WriteError(response, http.StatusBadRequest, err)
		return false
	}

	if err := newDecoder().Decode(v, request.Form); err != nil {
		logging.Error(logger).Log(logging.MessageKey(), "unable to decode request", logging.ErrorKey(), err)
		WriteError(response, http.StatusBadRequest, err)
		return false
	}

	return true
}

// run executes f via the executor and writes the resulting snapshot
func run(logger log.Logger, executor Executor, timer *countdown.Timer, response http.ResponseWriter, f func()) {
	var snapshot countdown.Snapshot
	err := executor.Do(func() {
		if f != nil {
			f()
		}

		snapshot = timer.Snapshot()
	})

	if err != nil {
		logging.Error(logger).Log(logging.MessageKey(), "unable to execute timer operation", logging.ErrorKey(), err)
		WriteError(response, executorStatus(err), err)
		return
	}

	writeJSON(response, http.StatusOK, snapshot)
}

// Status returns a JSON message describing the timer
type Status struct {
	Logger   log.Logger
	Executor Executor
	Timer    *countdown.Timer
}

func (s *Status) ServeHTTP(response http.ResponseWriter, _ *http.Request) {
	run(s.Logger, s.Executor, s.Timer, response, nil)
}

// Start begins a new run of the timer, optionally setting its base and limits first
type Start struct {
	Logger   log.Logger
	Executor Executor
	Timer    *countdown.Timer
}

func (s *Start) ServeHTTP(response http.ResponseWriter, request *http.Request) {
	var sr StartRequest
	if !decodeForm(s.Logger, response, request, &sr) {
		return
	}

	if err := sr.validate(); err != nil {
		WriteError(response, http.StatusBadRequest, err)
		return
	}

	run(s.Logger, s.Executor, s.Timer, response, func() {
		LimitsRequest{ElapsedLimit: sr.ElapsedLimit, RemainingLimit: sr.RemainingLimit}.apply(s.Timer)

		switch {
		case sr.Duration != nil:
			s.Timer.StartFor(time.Duration(*sr.Duration) * time.Millisecond)

		case sr.InitialTime != nil:
			s.Timer.StartWith(time.Duration(*sr.InitialTime) * time.Millisecond)

		default:
			s.Timer.Start()
		}
	})
}

// Stop stops the timer.  As with countdown.Timer.Stop, stopping a stopped timer is not an error.
type Stop struct {
	Logger   log.Logger
	Executor Executor
	Timer    *countdown.Timer
}

func (s *Stop) ServeHTTP(response http.ResponseWriter, _ *http.Request) {
	run(s.Logger, s.Executor, s.Timer, response, s.Timer.Stop)
}

// Limits changes either or both thresholds without otherwise affecting the timer
type Limits struct {
	Logger   log.Logger
	Executor Executor
	Timer    *countdown.Timer
}

func (l *Limits) ServeHTTP(response http.ResponseWriter, request *http.Request) {
	var lr LimitsRequest
	if !decodeForm(l.Logger, response, request, &lr) {
		return
	}

	if lr.ElapsedLimit == nil && lr.RemainingLimit == nil {
		WriteError(response, http.StatusBadRequest, errNoLimits)
		return
	}

	run(l.Logger, l.Executor, l.Timer, response, func() {
		lr.apply(l.Timer)
	})
}
