// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package countdownhttp

import (
	"net/http"

	"github.com/felixge/httpsnoop"
	"github.com/go-kit/log"
	"github.com/gorilla/mux"
	"github.com/justinas/alice"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/RomeuG/CountDownTimer/countdown"
	"github.com/RomeuG/CountDownTimer/logging"
)

const (
	TimerPath   = "/timer"
	StartPath   = "/timer/start"
	StopPath    = "/timer/stop"
	LimitsPath  = "/timer/limits"
	MetricsPath = "/metrics"

	// DefaultOperation is the span name used for server requests
	DefaultOperation = "countdown"
)

// Options configures the handler returned by NewHandler
type Options struct {
	// Timer is the timer being controlled.  This field is required.
	Timer *countdown.Timer

	// Executor runs timer operations.  If unset, Immediate is used.
	Executor Executor

	// Logger receives request and error logging.  If unset, a NOP logger is used.
	Logger log.Logger

	// Gatherer, if set, is exposed at MetricsPath.
	Gatherer prometheus.Gatherer

	// Operation is the tracing operation name.  If unset, DefaultOperation is used.
	Operation string
}

func (o *Options) executor() Executor {
	if o.Executor != nil {
		return o.Executor
	}

	return Immediate
}

func (o *Options) logger() log.Logger {
	if o.Logger != nil {
		return o.Logger
	}

	return logging.DefaultLogger()
}

func (o *Options) operation() string {
	if len(o.Operation) > 0 {
		return o.Operation
	}

	return DefaultOperation
}

// Logging returns an alice constructor that logs each request once it has been served
func Logging(logger log.Logger) alice.Constructor {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(response http.ResponseWriter, request *http.Request) {
			m := httpsnoop.CaptureMetrics(next, response, request)
			logging.Debug(logger).Log(
				logging.MessageKey(), "served request",
				"method", request.Method,
				"uri", request.RequestURI,
				"code", m.Code,
				"written", m.Written,
				"duration", m.Duration,
			)
		})
	}
}

// Tracing returns an alice constructor that wraps each request in a server span with the given operation name
func Tracing(operation string) alice.Constructor {
	return func(next http.Handler) http.Handler {
		return otelhttp.NewHandler(next, operation)
	}
}

// NewHandler builds the complete HTTP surface for a timer.  Requests pass through tracing and then
// request logging before being routed.  This function panics if no Timer is configured.
func NewHandler(o *Options) http.Handler {
	if o == nil || o.Timer == nil {
		panic("a countdown timer is required")
	}

	var (
		logger   = logging.Component(o.logger(), "http")
		executor = o.executor()
		router   = mux.NewRouter()
	)

	router.Handle(TimerPath, &Status{Logger: logger, Executor: executor, Timer: o.Timer}).
		Methods(http.MethodGet)

	router.Handle(StartPath, &Start{Logger: logger, Executor: executor, Timer: o.Timer}).
		Methods(http.MethodPost)

	router.Handle(StopPath, &Stop{Logger: logger, Executor: executor, Timer: o.Timer}).
		Methods(http.MethodPost)

	router.Handle(LimitsPath, &Limits{Logger: logger, Executor: executor, Timer: o.Timer}).
		Methods(http.MethodPut)

	if o.Gatherer != nil {
		router.Handle(MetricsPath, promhttp.HandlerFor(o.Gatherer, promhttp.HandlerOpts{})).
			Methods(http.MethodGet)
	}

	router.NotFoundHandler = http.HandlerFunc(func(response http.ResponseWriter, request *http.Request) {
		WriteErrorf(response, http.StatusNotFound, "no such resource: %s", request.URL.Path)
	})

	router.MethodNotAllowedHandler = http.HandlerFunc(func(response http.ResponseWriter, request *http.Request) {
		WriteErrorf(response, http.StatusMethodNotAllowed, "method %s not allowed for %s", request.Method, request.URL.Path)
	})

	return alice.New(
		Tracing(o.operation()),
		Logging(logger),
	).Then(router)
}
