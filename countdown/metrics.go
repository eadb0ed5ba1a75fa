// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package countdown

import (
	"github.com/go-kit/kit/metrics/provider"

	"github.com/RomeuG/CountDownTimer/xmetrics"
)

const (
	StartCounter              = "start_count"
	StopCounter               = "stop_count"
	FinishedCounter           = "finished_count"
	TickCounter               = "tick_count"
	ElapsedThresholdCounter   = "elapsed_threshold_count"
	RemainingThresholdCounter = "remaining_threshold_count"
	RunningGauge              = "running"
	RemainingGauge            = "remaining_seconds"
)

// Metrics is the countdown module function that adds default timer metrics
func Metrics() []xmetrics.Metric {
	return []xmetrics.Metric{
		{
			Name: StartCounter,
			Type: xmetrics.CounterType,
			Help: "The number of times a countdown was started",
		},
		{
			Name: StopCounter,
			Type: xmetrics.CounterType,
			Help: "The number of stops, including those caused by a countdown finishing",
		},
		{
			Name: FinishedCounter,
			Type: xmetrics.CounterType,
			Help: "The number of countdowns that reached zero",
		},
		{
			Name: TickCounter,
			Type: xmetrics.CounterType,
			Help: "The number of ticks evaluated",
		},
		{
			Name: ElapsedThresholdCounter,
			Type: xmetrics.CounterType,
			Help: "The number of times the elapsed time limit was crossed",
		},
		{
			Name: RemainingThresholdCounter,
			Type: xmetrics.CounterType,
			Help: "The number of times the remaining time limit was crossed",
		},
		{
			Name: RunningGauge,
			Type: xmetrics.GaugeType,
			Help: "1 while a countdown is running, 0 otherwise",
		},
		{
			Name: RemainingGauge,
			Type: xmetrics.GaugeType,
			Help: "The remaining seconds as of the most recent tick, which may be negative",
		},
	}
}

// Measures is a convenient struct that holds all the timer-related metric objects for runtime consumption.
type Measures struct {
	Start              xmetrics.Incrementer
	Stop               xmetrics.Incrementer
	Finished           xmetrics.Incrementer
	Tick               xmetrics.Incrementer
	ElapsedThreshold   xmetrics.Incrementer
	RemainingThreshold xmetrics.Incrementer
	Running            xmetrics.Setter
	Remaining          xmetrics.Setter
}

// NewMeasures constructs a Measures given a go-kit metrics Provider
func NewMeasures(p provider.Provider) Measures {
	return Measures{
		Start:              xmetrics.NewIncrementer(p.NewCounter(StartCounter)),
		Stop:               xmetrics.NewIncrementer(p.NewCounter(StopCounter)),
		Finished:           xmetrics.NewIncrementer(p.NewCounter(FinishedCounter)),
		Tick:               xmetrics.NewIncrementer(p.NewCounter(TickCounter)),
		ElapsedThreshold:   xmetrics.NewIncrementer(p.NewCounter(ElapsedThresholdCounter)),
		RemainingThreshold: xmetrics.NewIncrementer(p.NewCounter(RemainingThresholdCounter)),
		Running:            p.NewGauge(RunningGauge),
		Remaining:          p.NewGauge(RemainingGauge),
	}
}
