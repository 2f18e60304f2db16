// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package metric

import (
	"context"
	"fmt"
	"github.com/orbs-network/orbs-counter-playground/synchronization"
	"github.com/orbs-network/scribe/log"
	"sort"
	"strings"
	"sync"
	"time"
)

type Factory interface {
	NewLatency(name string, maxDuration time.Duration) *Histogram
	NewGauge(name string) *Gauge
	NewRate(name string) *Rate
}

type Registry interface {
	Factory
	String() string
	ExportAll() map[string]exportedMetric
	ExportPrometheus() string
	ReportEvery(ctx context.Context, interval time.Duration, logger log.Logger) *synchronization.PeriodicalTrigger
}

type exportedMetric interface {
	LogRow() []*log.Field
}

type metric interface {
	fmt.Stringer
	Name() string
	Export() exportedMetric
	exportPrometheus() string
}

// windowed metrics move to a new window on every report
type rotatingMetric interface {
	rotate(now time.Time)
}

type namedMetric struct {
	name string
}

func (m *namedMetric) Name() string {
	return m.name
}

func NewRegistry() Registry {
	r := &inMemoryRegistry{}
	r.mu.byName = make(map[string]metric)
	return r
}

// inMemoryRegistry hands out one metric per name, so services sharing a registry share their metrics
type inMemoryRegistry struct {
	mu struct {
		sync.Mutex
		byName map[string]metric
	}
}

func (r *inMemoryRegistry) getOrRegister(name string, create func() metric) metric {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, found := r.mu.byName[name]; found {
		return existing
	}
	m := create()
	r.mu.byName[name] = m
	return m
}

func (r *inMemoryRegistry) NewRate(name string) *Rate {
	m := r.getOrRegister(name, func() metric { return newRate(name) })
	if rate, ok := m.(*Rate); ok {
		return rate
	}
	panic(fmt.Sprintf("metric %s is already registered as %T", name, m))
}

func (r *inMemoryRegistry) NewGauge(name string) *Gauge {
	m := r.getOrRegister(name, func() metric { return &Gauge{namedMetric: namedMetric{name: name}} })
	if gauge, ok := m.(*Gauge); ok {
		return gauge
	}
	panic(fmt.Sprintf("metric %s is already registered as %T", name, m))
}

func (r *inMemoryRegistry) NewLatency(name string, maxDuration time.Duration) *Histogram {
	m := r.getOrRegister(name, func() metric { return newHistogram(name, maxDuration.Nanoseconds()) })
	if histogram, ok := m.(*Histogram); ok {
		return histogram
	}
	panic(fmt.Sprintf("metric %s is already registered as %T", name, m))
}

// sorted returns a snapshot ordered by name
func (r *inMemoryRegistry) sorted() []metric {
	r.mu.Lock()
	res := make([]metric, 0, len(r.mu.byName))
	for _, m := range r.mu.byName {
		res = append(res, m)
	}
	r.mu.Unlock()

	sort.Slice(res, func(i, j int) bool {
		return res[i].Name() < res[j].Name()
	})
	return res
}

func (r *inMemoryRegistry) String() string {
	var b strings.Builder
	for _, m := range r.sorted() {
		b.WriteString(m.String())
	}
	return b.String()
}

func (r *inMemoryRegistry) ExportAll() map[string]exportedMetric {
	all := make(map[string]exportedMetric)
	for _, m := range r.sorted() {
		all[m.Name()] = m.Export()
	}
	return all
}

func (r *inMemoryRegistry) report(logger log.Logger) {
	for _, m := range r.sorted() {
		if logRow := m.Export().LogRow(); logRow != nil {
			logger.Info("metric", logRow...)
		}
	}
}

func (r *inMemoryRegistry) rotateAll(now time.Time) {
	for _, m := range r.sorted() {
		if rotating, ok := m.(rotatingMetric); ok {
			rotating.rotate(now)
		}
	}
}

// ReportEvery logs every metric on each tick and once more when stopped
func (r *inMemoryRegistry) ReportEvery(ctx context.Context, interval time.Duration, logger log.Logger) *synchronization.PeriodicalTrigger {
	return synchronization.NewPeriodicalTrigger(ctx, "metric-reporter", interval, logger, func() {
		r.report(logger)
		r.rotateAll(time.Now())
	}, func() {
		r.report(logger)
	})
}
