// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package publicapi

import (
	"context"
	"github.com/orbs-network/orbs-counter-playground/crypto/digest"
	"github.com/orbs-network/orbs-counter-playground/instrumentation/logfields"
	"github.com/orbs-network/orbs-counter-playground/instrumentation/trace"
	"github.com/orbs-network/orbs-counter-playground/types/protocol"
	"github.com/orbs-network/orbs-counter-playground/types/services"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
	"time"
)

// SendTransaction returns once the transaction is committed or rejected
func (s *service) SendTransaction(parentCtx context.Context, input *services.SendTransactionInput) (*services.SendTransactionOutput, error) {
	ctx := trace.NewContext(parentCtx, "PublicApi.SendTransaction")
	start := time.Now()
	s.transactions.received.Inc()

	if input == nil || input.SignedTransaction == nil || input.SignedTransaction.Transaction == nil {
		s.transactions.nilRequest.Inc()
		err := errors.New("client request is missing a signed transaction")
		s.logger.Info("send transaction received missing input", log.Error(err))
		return nil, err
	}

	txHash := digest.CalcTxHash(input.SignedTransaction.Transaction)
	logger := s.logger.WithTags(trace.LogFieldFrom(ctx), logfields.Transaction(txHash), log.String("flow", "checkpoint"))
	logger.Info("send transaction request received")

	ctx, cancel := context.WithTimeout(ctx, s.config.PublicApiSendTransactionTimeout())
	defer cancel()

	added, err := s.transactionPool.AddNewTransaction(ctx, &services.AddNewTransactionInput{SignedTransaction: input.SignedTransaction})
	switch {
	case added == nil:
		s.transactions.rejected.Inc()
		logger.Info("adding transaction to transaction pool failed", log.Error(err))
		return nil, err
	case err != nil:
		s.transactions.rejected.Inc()
		logger.Info("transaction rejected by transaction pool", log.Error(err), log.Stringable("status", added.TransactionStatus))
		return outcomeOfAdd(added).sendTransactionOutput(), err
	case added.TransactionStatus == protocol.TRANSACTION_STATUS_DUPLICATE_TRANSACTION_ALREADY_COMMITTED:
		s.transactions.duplicate.Inc()
	default:
		s.latency.sendTransaction.RecordSince(start)
	}

	return outcomeOfAdd(added).sendTransactionOutput(), nil
}
