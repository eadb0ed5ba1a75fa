// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/go-kit/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/RomeuG/CountDownTimer/concurrent"
	"github.com/RomeuG/CountDownTimer/countdown"
	"github.com/RomeuG/CountDownTimer/countdown/countdownhttp"
	"github.com/RomeuG/CountDownTimer/logging"
	"github.com/RomeuG/CountDownTimer/server"
	"github.com/RomeuG/CountDownTimer/xmetrics"
	"github.com/RomeuG/CountDownTimer/xviper"
)

const (
	applicationName = "countdown"

	DurationFlag = "duration"
	ListenFlag   = "listen"
)

func newFlagSet(arguments []string) (*pflag.FlagSet, error) {
	fs := pflag.NewFlagSet(applicationName, pflag.ContinueOnError)
	fs.StringP(xviper.DefaultFileFlag, "f", "", "the fully qualified configuration file")
	fs.StringP(xviper.DefaultNameFlag, "n", applicationName, "the configuration name, searched for in the standard locations")
	fs.Duration(DurationFlag, 0, "if positive, a countdown of this length starts immediately")
	fs.String(ListenFlag, "", "the HTTP bind address, overriding server.address")

	return fs, fs.Parse(arguments)
}

// newListener logs each notification from the timer
func newListener(logger log.Logger) countdown.Listener {
	logger = logging.Component(logger, "listener")
	return countdown.ListenerFuncs{
		Start: func() {
			logging.Info(logger).Log(logging.MessageKey(), "start")
		},
		Stop: func() {
			logging.Info(logger).Log(logging.MessageKey(), "stop")
		},
		TimeElapsed: func() {
			logging.Warn(logger).Log(logging.MessageKey(), "elapsed time limit reached")
		},
		TimeRemaining: func() {
			logging.Warn(logger).Log(logging.MessageKey(), "remaining time limit reached")
		},
		Finished: func() {
			logging.Info(logger).Log(logging.MessageKey(), "finished")
		},
	}
}

// startAt returns a Runnable that starts a countdown of the given length once the loop is running
func startAt(loop *countdown.Loop, timer *countdown.Timer, d time.Duration) concurrent.Runnable {
	return concurrent.RunnableFunc(func(*sync.WaitGroup, <-chan struct{}) error {
		if d <= 0 {
			return nil
		}

		return loop.Do(func() { timer.StartFor(d) })
	})
}

func configure(v *viper.Viper, fs *pflag.FlagSet) error {
	_, err := xviper.Configure(
		v,
		xviper.StdOptions(applicationName, fs),
		xviper.BindConfig(fs, xviper.DefaultFileFlag, xviper.DefaultNameFlag),
		xviper.ReadInConfig(true),
	)

	return err
}

func run(arguments []string) int {
	fs, err := newFlagSet(arguments)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to parse command line: %s\n", err)
		return 1
	}

	v := viper.New()
	if err := configure(v, fs); err != nil {
		fmt.Fprintf(os.Stderr, "Unable to read configuration: %s\n", err)
		return 1
	}

	lo, err := logging.FromViper(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to configure logging: %s\n", err)
		return 1
	}

	logger := logging.New(lo)
	logging.Info(logger).Log(logging.MessageKey(), "configuration loaded", "file", v.ConfigFileUsed())

	mo, err := xmetrics.FromViper(v)
	if err != nil {
		logging.Error(logger).Log(logging.MessageKey(), "unable to configure metrics", logging.ErrorKey(), err)
		return 1
	}

	registry, err := xmetrics.NewRegistry(mo, countdown.Metrics)
	if err != nil {
		logging.Error(logger).Log(logging.MessageKey(), "unable to create metrics registry", logging.ErrorKey(), err)
		return 1
	}

	co, err := countdown.NewOptions(logger, countdown.Sub(v))
	if err != nil {
		logging.Error(logger).Log(logging.MessageKey(), "unable to configure countdown", logging.ErrorKey(), err)
		return 1
	}

	loop := countdown.NewLoop(co)
	co.Scheduler = loop
	co.Listener = newListener(logger)
	co.MetricsProvider = registry
	timer := countdown.New(co)

	so, err := server.FromViper(v)
	if err != nil {
		logging.Error(logger).Log(logging.MessageKey(), "unable to configure server", logging.ErrorKey(), err)
		return 1
	}

	if listen := v.GetString(ListenFlag); len(listen) > 0 {
		so.Address = listen
	}

	handler := countdownhttp.NewHandler(&countdownhttp.Options{
		Timer:    timer,
		Executor: loop,
		Logger:   logger,
		Gatherer: registry,
	})

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(signals)

	s, err := concurrent.Await(
		concurrent.RunnableSet{
			loop,
			server.New(so, logging.Component(logger, "server"), handler),
			startAt(loop, timer, v.GetDuration(DurationFlag)),
		},
		signals,
	)

	if err != nil {
		logging.Error(logger).Log(logging.MessageKey(), "unable to start", logging.ErrorKey(), err)
		return 2
	}

	logging.Info(logger).Log(logging.MessageKey(), "exiting", "signal", s)
	return 0
}

func main() {
	os.Exit(run(os.Args[1:]))
}
