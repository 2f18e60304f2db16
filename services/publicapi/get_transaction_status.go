// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package publicapi

import (
	"context"
	"github.com/orbs-network/orbs-counter-playground/instrumentation/logfields"
	"github.com/orbs-network/orbs-counter-playground/instrumentation/trace"
	"github.com/orbs-network/orbs-counter-playground/types/services"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
	"time"
)

// GetTransactionStatus answers NOT_FOUND for hashes the pool never committed, it is not an error
func (s *service) GetTransactionStatus(parentCtx context.Context, input *services.GetTransactionStatusInput) (*services.GetTransactionStatusOutput, error) {
	ctx := trace.NewContext(parentCtx, "PublicApi.GetTransactionStatus")
	defer s.latency.getTransactionStatus.RecordSince(time.Now())

	if input == nil || len(input.Txhash) == 0 {
		err := errors.New("client request is missing a transaction hash")
		s.logger.Info("get transaction status received missing input", log.Error(err))
		return nil, err
	}

	logger := s.logger.WithTags(trace.LogFieldFrom(ctx), logfields.Transaction(input.Txhash), log.String("flow", "checkpoint"))
	logger.Info("get transaction status request received")

	found, err := s.transactionPool.GetCommittedTransactionReceipt(ctx, &services.GetCommittedTransactionReceiptInput{Txhash: input.Txhash})
	if err != nil {
		logger.Info("get transaction status failed in transaction pool", log.Error(err))
		return nil, err
	}

	return outcomeOfLookup(found).transactionStatusOutput(), nil
}
