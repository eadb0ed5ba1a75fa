// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package xmetrics

// Adder represents a metrics to which deltas can be added.  Go-kit's metrics.Counter, metrics.Gauge, and
// several prometheus interfaces implement this interface.
type Adder interface {
	Add(float64)
}

// Setter represents a metric that can receive updates, e.g. a gauge.  Go-kit's metrics.Gauge
// and prometheus gauges implement this interface.
type Setter interface {
	Set(float64)
}

// Incrementer represents a counter that only ever moves by one.
type Incrementer interface {
	Inc()
}

type incrementer struct {
	Adder
}

func (i incrementer) Inc() {
	i.Add(1.0)
}

// NewIncrementer adapts an Adder, usually a go-kit counter, into an Incrementer
func NewIncrementer(a Adder) Incrementer {
	return incrementer{a}
}
