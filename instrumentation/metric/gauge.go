// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package metric

import (
	"fmt"
	"github.com/orbs-network/scribe/log"
	"sync/atomic"
)

// Gauge is a point in time value that also remembers the highest value it reached
type Gauge struct {
	value int64
	peak  int64
	namedMetric
}

type gaugeExport struct {
	Name  string
	Value int64
	Peak  int64
}

func (g *Gauge) Inc() {
	g.Add(1)
}

func (g *Gauge) Dec() {
	g.Add(-1)
}

func (g *Gauge) Add(delta int64) {
	g.raisePeak(atomic.AddInt64(&g.value, delta))
}

func (g *Gauge) Update(value int64) {
	atomic.StoreInt64(&g.value, value)
	g.raisePeak(value)
}

func (g *Gauge) Value() int64 {
	return atomic.LoadInt64(&g.value)
}

func (g *Gauge) Peak() int64 {
	return atomic.LoadInt64(&g.peak)
}

func (g *Gauge) raisePeak(candidate int64) {
	for {
		current := atomic.LoadInt64(&g.peak)
		if candidate <= current || atomic.CompareAndSwapInt64(&g.peak, current, candidate) {
			return
		}
	}
}

func (g *Gauge) Export() exportedMetric {
	return gaugeExport{Name: g.name, Value: g.Value(), Peak: g.Peak()}
}

func (g *Gauge) String() string {
	return fmt.Sprintf("metric %s: %d (peak %d)\n", g.name, g.Value(), g.Peak())
}

func (e gaugeExport) LogRow() []*log.Field {
	return []*log.Field{
		log.String("metric", e.Name),
		log.String("metric-type", "gauge"),
		log.Int64("gauge", e.Value),
		log.Int64("peak", e.Peak),
	}
}
