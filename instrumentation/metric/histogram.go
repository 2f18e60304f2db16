// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package metric

import (
	"fmt"
	"github.com/codahale/hdrhistogram"
	"github.com/orbs-network/scribe/log"
	"sync"
	"sync/atomic"
	"time"
)

// number of rotation windows merged into an export
const histogramWindows = 5

// Histogram records durations in nanoseconds over a sliding window and exports them in milliseconds
type Histogram struct {
	overflows int64
	namedMetric

	mu      sync.Mutex
	windows *hdrhistogram.WindowedHistogram
}

type histogramExport struct {
	Name      string
	Min       float64
	P50       float64
	P95       float64
	P99       float64
	Max       float64
	Avg       float64
	Samples   int64
	Overflows int64
}

func newHistogram(name string, max int64) *Histogram {
	return &Histogram{
		namedMetric: namedMetric{name: name},
		windows:     hdrhistogram.NewWindowed(histogramWindows, 1, max, 3),
	}
}

func (h *Histogram) RecordSince(t time.Time) {
	h.Record(int64(time.Since(t)))
}

// Record counts values above the configured max as overflows instead of samples
func (h *Histogram) Record(measurement int64) {
	h.mu.Lock()
	err := h.windows.Current.RecordValue(measurement)
	h.mu.Unlock()

	if err != nil {
		atomic.AddInt64(&h.overflows, 1)
	}
}

func (h *Histogram) CurrentSamples() int64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.windows.Current.TotalCount()
}

func (h *Histogram) Overflows() int64 {
	return atomic.LoadInt64(&h.overflows)
}

func (h *Histogram) rotate(now time.Time) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.windows.Rotate()
}

func (h *Histogram) merged() *hdrhistogram.Histogram {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.windows.Merge()
}

func (h *Histogram) Export() exportedMetric {
	merged := h.merged()
	return histogramExport{
		Name:      h.name,
		Min:       nanosToMillis(float64(merged.Min())),
		P50:       nanosToMillis(float64(merged.ValueAtQuantile(50))),
		P95:       nanosToMillis(float64(merged.ValueAtQuantile(95))),
		P99:       nanosToMillis(float64(merged.ValueAtQuantile(99))),
		Max:       nanosToMillis(float64(merged.Max())),
		Avg:       nanosToMillis(merged.Mean()),
		Samples:   merged.TotalCount(),
		Overflows: h.Overflows(),
	}
}

func nanosToMillis(nanos float64) float64 {
	return nanos / float64(time.Millisecond)
}

func (h *Histogram) String() string {
	e := h.Export().(histogramExport)
	return fmt.Sprintf("metric %s: [min=%f, p50=%f, p95=%f, p99=%f, max=%f, avg=%f, samples=%d, overflows=%d]\n",
		e.Name, e.Min, e.P50, e.P95, e.P99, e.Max, e.Avg, e.Samples, e.Overflows)
}

func (e histogramExport) LogRow() []*log.Field {
	return []*log.Field{
		log.String("metric", e.Name),
		log.String("metric-type", "histogram"),
		log.Float64("min", e.Min),
		log.Float64("p50", e.P50),
		log.Float64("p95", e.P95),
		log.Float64("p99", e.P99),
		log.Float64("max", e.Max),
		log.Float64("avg", e.Avg),
		log.Int64("samples", e.Samples),
		log.Int64("overflows", e.Overflows),
	}
}
