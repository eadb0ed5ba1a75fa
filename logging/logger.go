// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

const (
	callerKey    = "caller"
	messageKey   = "msg"
	errorKey     = "error"
	timestampKey = "ts"
	componentKey = "component"
)

var defaultLogger = log.NewNopLogger()

// MessageKey returns the logging key to be used for the textual message of the log entry
func MessageKey() interface{} {
	return messageKey
}

// ErrorKey returns the logging key to be used for error instances
func ErrorKey() interface{} {
	return errorKey
}

// TimestampKey returns the logging key to be used for the timestamp
func TimestampKey() interface{} {
	return timestampKey
}

// DefaultLogger returns a global singleton NOP logger.
// This returned instance is safe for concurrent access.
func DefaultLogger() log.Logger {
	return defaultLogger
}

// New creates a go-kit Logger from a set of options.  The options object can be nil,
// in which case a logfmt logger that writes to os.Stdout is returned.  Every entry carries
// a UTC timestamp, and entries below the configured Level are dropped.
func New(o *Options) log.Logger {
	return NewFilter(
		log.WithPrefix(
			o.loggerFactory()(o.output()),
			TimestampKey(), log.DefaultTimestampUTC,
		),
		o,
	)
}

// levels maps the configurable level names onto go-kit filter options.  Anything
// not in this map is treated as ERROR.
var levels = map[string]level.Option{
	"DEBUG": level.AllowDebug(),
	"INFO":  level.AllowInfo(),
	"WARN":  level.AllowWarn(),
	"ERROR": level.AllowError(),
}

// NewFilter applies the Options filtering rules in the package to an arbitrary go-kit Logger.
func NewFilter(next log.Logger, o *Options) log.Logger {
	allow, ok := levels[strings.ToUpper(o.level())]
	if !ok {
		allow = level.AllowError()
	}

	return level.NewFilter(next, allow)
}

// Component decorates a logger with the name of the subsystem producing its output.
func Component(next log.Logger, name string) log.Logger {
	if next == nil {
		next = DefaultLogger()
	}

	return log.With(next, componentKey, name)
}

func leveled(next log.Logger, value level.Value, keyvals []interface{}) log.Logger {
	return log.WithPrefix(
		next,
		append([]interface{}{callerKey, log.DefaultCaller, level.Key(), value}, keyvals...)...,
	)
}

// Error places both the caller and a constant error level into the prefix of the returned logger.
// Additional key value pairs may also be added.
func Error(next log.Logger, keyvals ...interface{}) log.Logger {
	return leveled(next, level.ErrorValue(), keyvals)
}

// Info is the info level analog of Error.
func Info(next log.Logger, keyvals ...interface{}) log.Logger {
	return leveled(next, level.InfoValue(), keyvals)
}

// Warn is the warn level analog of Error.
func Warn(next log.Logger, keyvals ...interface{}) log.Logger {
	return leveled(next, level.WarnValue(), keyvals)
}

// Debug is the debug level analog of Error.
func Debug(next log.Logger, keyvals ...interface{}) log.Logger {
	return leveled(next, level.DebugValue(), keyvals)
}
