// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package xmetrics

import (
	"fmt"
	"sync"

	"github.com/go-kit/kit/metrics"
	gokitprometheus "github.com/go-kit/kit/metrics/prometheus"
	"github.com/go-kit/kit/metrics/provider"
	"github.com/prometheus/client_golang/prometheus"
)

// Registry is the core abstraction for this package.  It is a Prometheus registry and a go-kit metrics.Provider all in one.
//
// Metrics that were predefined through modules are returned with their configured help and buckets.  Any other
// name produces an ad hoc metric, which is cached so that subsequent calls return the same underlying collector.
type Registry interface {
	provider.Provider
	prometheus.Gatherer
	prometheus.Registerer
}

type registry struct {
	*prometheus.Registry

	namespace string
	subsystem string

	lock  sync.Mutex
	cache map[string]prometheus.Collector
}

// collector returns the cached collector with the given name, creating and registering an ad hoc
// metric of type t if necessary.  Asking for an existing name with a different type panics, as it
// indicates a programming error.
func (r *registry) collector(name, t string) prometheus.Collector {
	r.lock.Lock()
	defer r.lock.Unlock()

	if existing, ok := r.cache[name]; ok {
		return existing
	}

	c, err := NewCollector(r.namespace, r.subsystem, Metric{Name: name, Type: t})
	if err != nil {
		panic(err)
	}

	if err := r.Registry.Register(c); err != nil {
		panic(err)
	}

	r.cache[name] = c
	return c
}

func (r *registry) NewCounter(name string) metrics.Counter {
	if cv, ok := r.collector(name, CounterType).(*prometheus.CounterVec); ok {
		return gokitprometheus.NewCounter(cv)
	}

	panic(fmt.Errorf("the metric %s is not a counter", name))
}

func (r *registry) NewGauge(name string) metrics.Gauge {
	if gv, ok := r.collector(name, GaugeType).(*prometheus.GaugeVec); ok {
		return gokitprometheus.NewGauge(gv)
	}

	panic(fmt.Errorf("the metric %s is not a gauge", name))
}

func (r *registry) NewHistogram(name string, _ int) metrics.Histogram {
	if hv, ok := r.collector(name, HistogramType).(*prometheus.HistogramVec); ok {
		return gokitprometheus.NewHistogram(hv)
	}

	panic(fmt.Errorf("the metric %s is not a histogram", name))
}

func (r *registry) Stop() {
}

// NewRegistry creates a Registry from an (optional) Options and any number of modules.  Every metric
// from the modules and from the Options is preregistered.  Duplicate names produce an error.
func NewRegistry(o *Options, modules ...Module) (Registry, error) {
	r := &registry{
		Registry:  o.registry(),
		namespace: o.namespace(),
		subsystem: o.subsystem(),
		cache:     make(map[string]prometheus.Collector),
	}

	for _, m := range append(modules, o.Module) {
		for _, metric := range m() {
			if _, ok := r.cache[metric.Name]; ok {
				return nil, fmt.Errorf("duplicate metric: %s", metric.Name)
			}

			c, err := NewCollector(r.namespace, r.subsystem, metric)
			if err != nil {
				return nil, err
			}

			if err := r.Registry.Register(c); err != nil {
				return nil, fmt.Errorf("error while preregistering metric %s: %w", metric.Name, err)
			}

			r.cache[metric.Name] = c
		}
	}

	return r, nil
}
