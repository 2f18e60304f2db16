// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package transactionpool

import (
	"context"
	"github.com/orbs-network/govnr"
	"github.com/orbs-network/orbs-counter-playground/config"
	"github.com/orbs-network/orbs-counter-playground/instrumentation/metric"
	"github.com/orbs-network/orbs-counter-playground/types/primitives"
	"github.com/orbs-network/orbs-counter-playground/types/protocol"
	"github.com/orbs-network/orbs-counter-playground/types/services"
	"github.com/orbs-network/scribe/log"
	"golang.org/x/time/rate"
	"sync"
	"time"
)

var LogTag = log.Service("transaction-pool")

const CLEANUP_INTERVAL_FRACTION_OF_EXPIRATION = 10

type service struct {
	govnr.TreeSupervisor
	config         config.TransactionPoolConfig
	virtualMachine services.VirtualMachine
	stateStorage   services.StateStorage
	blockStorage   services.BlockStorage
	logger         log.Logger

	committedPool *committedTxPool
	limiter       *rate.Limiter

	// every transaction is its own block, blocks are built one at a time
	commitMutex sync.Mutex

	mu struct {
		sync.RWMutex
		lastCommittedBlock *protocol.Block
	}

	metrics *metrics
}

type metrics struct {
	commitRate        *metric.Rate
	commitTime        *metric.Histogram
	rejectedCount     *metric.Gauge
	lastCommittedTime *metric.Gauge
}

func getMetrics(m metric.Factory) *metrics {
	return &metrics{
		commitRate:        m.NewRate("TransactionPool.CommitRate.PerSecond"),
		commitTime:        m.NewLatency("TransactionPool.CommitTime.Millis", 10*time.Second),
		rejectedCount:     m.NewGauge("TransactionPool.RejectedTransactions.Count"),
		lastCommittedTime: m.NewGauge("TransactionPool.LastCommitted.TimeNano"),
	}
}

func NewTransactionPool(ctx context.Context,
	config config.TransactionPoolConfig,
	virtualMachine services.VirtualMachine,
	stateStorage services.StateStorage,
	blockStorage services.BlockStorage,
	parentLogger log.Logger,
	metricFactory metric.Factory,
) *service {

	logger := parentLogger.WithTags(LogTag)
	maxPerSecond := config.TransactionPoolMaxTransactionsPerSecond()

	s := &service{
		config:         config,
		virtualMachine: virtualMachine,
		stateStorage:   stateStorage,
		blockStorage:   blockStorage,
		logger:         logger,
		committedPool:  NewCommittedPool(metricFactory),
		limiter:        rate.NewLimiter(rate.Limit(maxPerSecond), int(maxPerSecond)),
		metrics:        getMetrics(metricFactory),
	}

	cleanupInterval := config.TransactionExpirationWindow() / CLEANUP_INTERVAL_FRACTION_OF_EXPIRATION
	s.Supervise(startCleaningProcess(ctx, cleanupInterval, config.TransactionExpirationWindow(), s.committedPool, logger))

	return s
}

func (s *service) lastCommitted() (primitives.BlockHeight, primitives.TimestampNano) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.mu.lastCommittedBlock == nil {
		return 0, 0
	}
	return s.mu.lastCommittedBlock.BlockHeight, s.mu.lastCommittedBlock.Timestamp
}
