// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package metric

import (
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

func TestInMemoryRegistry_ExportAll(t *testing.T) {
	registry := NewRegistry()
	gauge := registry.NewGauge("hello")
	gauge.Add(1)

	gaugeValue := registry.ExportAll()["hello"].(gaugeExport)
	require.EqualValues(t, 1, gaugeValue.Value)
}

func TestInMemoryRegistry_ExportsLatencyInMillis(t *testing.T) {
	registry := NewRegistry()
	latency := registry.NewLatency("Processor.Native.ProcessCallTime.Millis", 10*time.Second)
	latency.Record(int64(3 * time.Millisecond))
	latency.Record(int64(5 * time.Millisecond))

	exported := registry.ExportAll()["Processor.Native.ProcessCallTime.Millis"].(histogramExport)
	require.EqualValues(t, 2, exported.Samples)
	require.InDelta(t, 3, exported.Min, 0.01)
	require.InDelta(t, 5, exported.Max, 0.01)
}

func TestHistogramCountsOverflows(t *testing.T) {
	registry := NewRegistry()
	latency := registry.NewLatency("too.small", time.Millisecond)
	latency.Record(int64(time.Hour))

	require.EqualValues(t, 0, latency.CurrentSamples())
	require.EqualValues(t, 1, latency.Overflows())
	require.EqualValues(t, 1, latency.Export().(histogramExport).Overflows)
}

func TestExportPrometheusFormatsGaugesAndHistograms(t *testing.T) {
	registry := NewRegistry()
	registry.NewGauge("StateStorage.TotalNumberOfKeys.Count").Update(3)
	registry.NewLatency("Processor.Native.ProcessCallTime.Millis", time.Second).Record(int64(2 * time.Millisecond))

	exported := registry.ExportPrometheus()

	require.Contains(t, exported, "# TYPE StateStorage_TotalNumberOfKeys_Count gauge\nStateStorage_TotalNumberOfKeys_Count 3\n")
	require.Contains(t, exported, "# TYPE Processor_Native_ProcessCallTime_Millis summary\n")
	require.Contains(t, exported, "Processor_Native_ProcessCallTime_Millis_count 1\n")
}

func TestRegistryReturnsSameMetricForSameName(t *testing.T) {
	registry := NewRegistry()
	first := registry.NewGauge("TransactionPool.CommittedPool.TransactionCount")
	second := registry.NewGauge("TransactionPool.CommittedPool.TransactionCount")
	first.Inc()

	require.True(t, first == second, "a name should map to a single gauge")
	require.EqualValues(t, 1, second.Value())
	require.Len(t, registry.ExportAll(), 1)
}

func TestRegistryPanicsOnNameReusedForAnotherType(t *testing.T) {
	registry := NewRegistry()
	registry.NewGauge("BlockStorage.BlockHeight")

	require.Panics(t, func() {
		registry.NewRate("BlockStorage.BlockHeight")
	})
}
