// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package transactionpool

import (
	"context"
	"github.com/orbs-network/orbs-counter-playground/crypto/digest"
	"github.com/orbs-network/orbs-counter-playground/instrumentation/logfields"
	"github.com/orbs-network/orbs-counter-playground/instrumentation/trace"
	"github.com/orbs-network/orbs-counter-playground/types/primitives"
	"github.com/orbs-network/orbs-counter-playground/types/protocol"
	"github.com/orbs-network/orbs-counter-playground/types/services"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
	"time"
)

// AddNewTransaction validates the transaction and commits it in a block of its own before returning
func (s *service) AddNewTransaction(ctx context.Context, input *services.AddNewTransactionInput) (*services.AddNewTransactionOutput, error) {
	logger := s.logger.WithTags(trace.LogFieldFrom(ctx))

	if err := s.createValidationContext().validateTransaction(input.SignedTransaction, time.Now()); err != nil {
		s.metrics.rejectedCount.Inc()
		logger.Info("transaction is invalid", append(err.LogFields(), log.Error(err), log.Stringable("transaction", input.SignedTransaction))...)
		return s.addTransactionOutputFor(nil, err.TransactionStatus), err
	}

	txHash := digest.CalcTxHash(input.SignedTransaction.Transaction)
	logger = logger.WithTags(logfields.Transaction(txHash))

	if alreadyCommitted := s.committedPool.get(txHash); alreadyCommitted != nil {
		logger.Info("transaction already committed")
		return s.duplicateOutputFor(alreadyCommitted), nil
	}

	if !s.limiter.Allow() {
		s.metrics.rejectedCount.Inc()
		logger.Info("transaction rejected due to congestion")
		return s.addTransactionOutputFor(nil, protocol.TRANSACTION_STATUS_REJECTED_CONGESTION), &ErrTransactionRejected{TransactionStatus: protocol.TRANSACTION_STATUS_REJECTED_CONGESTION}
	}

	s.commitMutex.Lock()
	defer s.commitMutex.Unlock()

	// a concurrent identical request may have committed while we waited
	if alreadyCommitted := s.committedPool.get(txHash); alreadyCommitted != nil {
		logger.Info("transaction already committed")
		return s.duplicateOutputFor(alreadyCommitted), nil
	}

	if err := s.validateSingleTransactionForPreOrder(ctx, input.SignedTransaction); err != nil {
		s.metrics.rejectedCount.Inc()
		logger.Info("transaction failed pre order checks", log.Error(err))
		status := protocol.TRANSACTION_STATUS_REJECTED_MALFORMED
		if rejected, ok := err.(*ErrTransactionRejected); ok {
			status = rejected.TransactionStatus
		}
		return s.addTransactionOutputFor(nil, status), err
	}

	committed, err := s.commitTransaction(ctx, input.SignedTransaction)
	if err != nil {
		logger.Error("failed committing transaction", log.Error(err))
		return nil, err
	}

	return &services.AddNewTransactionOutput{
		TransactionStatus:  protocol.TRANSACTION_STATUS_COMMITTED,
		TransactionReceipt: committed.receipt,
		BlockHeight:        committed.blockHeight,
		BlockTimestamp:     committed.blockTimestamp,
	}, nil
}

func (s *service) validateSingleTransactionForPreOrder(ctx context.Context, transaction *protocol.SignedTransaction) error {
	height, timestamp := s.lastCommitted()
	preOrderCheckResults, err := s.virtualMachine.TransactionSetPreOrder(ctx, &services.TransactionSetPreOrderInput{
		SignedTransactions:    []*protocol.SignedTransaction{transaction},
		CurrentBlockHeight:    height + 1,
		CurrentBlockTimestamp: nextBlockTimestamp(timestamp),
	})
	if err != nil {
		return errors.Wrap(err, "pre order check failed")
	}

	if len(preOrderCheckResults.PreOrderResults) != 1 {
		return errors.Errorf("expected exactly one result from pre-order check, got %d", len(preOrderCheckResults.PreOrderResults))
	}

	if preOrderCheckResults.PreOrderResults[0] != protocol.TRANSACTION_STATUS_PRE_ORDER_VALID {
		return &ErrTransactionRejected{TransactionStatus: preOrderCheckResults.PreOrderResults[0]}
	}

	return nil
}

func (s *service) addTransactionOutputFor(maybeReceipt *protocol.TransactionReceipt, status protocol.TransactionStatus) *services.AddNewTransactionOutput {
	height, timestamp := s.lastCommitted()
	return &services.AddNewTransactionOutput{
		TransactionReceipt: maybeReceipt,
		TransactionStatus:  status,
		BlockHeight:        height,
		BlockTimestamp:     timestamp,
	}
}

func (s *service) duplicateOutputFor(committed *committedTransaction) *services.AddNewTransactionOutput {
	return &services.AddNewTransactionOutput{
		TransactionReceipt: committed.receipt,
		TransactionStatus:  protocol.TRANSACTION_STATUS_DUPLICATE_TRANSACTION_ALREADY_COMMITTED,
		BlockHeight:        committed.blockHeight,
		BlockTimestamp:     committed.blockTimestamp,
	}
}

// block timestamps never go back, even if the clock does
func nextBlockTimestamp(lastCommittedBlockTimestamp primitives.TimestampNano) primitives.TimestampNano {
	now := primitives.TimestampNano(time.Now().UnixNano())
	if now <= lastCommittedBlockTimestamp {
		return lastCommittedBlockTimestamp + 1
	}
	return now
}
