// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package transactionpool

import (
	"context"
	"github.com/orbs-network/orbs-counter-playground/instrumentation/logfields"
	"github.com/orbs-network/orbs-counter-playground/synchronization"
	"github.com/orbs-network/orbs-counter-playground/types/primitives"
	"github.com/orbs-network/scribe/log"
	"time"
)

type cleaner interface {
	clearTransactionsOlderThan(timestamp primitives.TimestampNano) int
}

func startCleaningProcess(ctx context.Context, tickInterval time.Duration, expiration time.Duration, c cleaner, logger log.Logger) *synchronization.PeriodicalTrigger {
	return synchronization.NewPeriodicalTrigger(ctx, "Committed transactions cleaner", tickInterval, logger, func() {
		threshold := primitives.TimestampNano(time.Now().Add(-expiration).UnixNano())
		if cleared := c.clearTransactionsOlderThan(threshold); cleared > 0 {
			logger.Info("cleared expired committed transactions", log.Int("count", cleared), logfields.TimestampNano("threshold", threshold))
		}
	}, nil)
}
