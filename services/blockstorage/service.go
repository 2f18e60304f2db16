// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package blockstorage

import (
	"github.com/orbs-network/orbs-counter-playground/instrumentation/metric"
	"github.com/orbs-network/orbs-counter-playground/services/blockstorage/adapter"
	"github.com/orbs-network/orbs-counter-playground/types/services"
	"github.com/orbs-network/scribe/log"
)

var LogTag = log.Service("block-storage")

type metrics struct {
	blockHeight *metric.Gauge
}

func newMetrics(m metric.Factory) *metrics {
	return &metrics{
		blockHeight: m.NewGauge("BlockStorage.BlockHeight"),
	}
}

type service struct {
	persistence adapter.BlockPersistence
	logger      log.Logger
	metrics     *metrics
}

func NewBlockStorage(persistence adapter.BlockPersistence, parent log.Logger, metricFactory metric.Factory) services.BlockStorage {
	s := &service{
		persistence: persistence,
		logger:      parent.WithTags(LogTag),
		metrics:     newMetrics(metricFactory),
	}

	if height, err := persistence.GetLastBlockHeight(); err == nil {
		s.metrics.blockHeight.Update(int64(height))
	}

	return s
}
