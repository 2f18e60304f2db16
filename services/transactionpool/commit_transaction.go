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

// commitTransaction must be called with commitMutex held
func (s *service) commitTransaction(ctx context.Context, transaction *protocol.SignedTransaction) (*committedTransaction, error) {
	logger := s.logger.WithTags(trace.LogFieldFrom(ctx))
	start := time.Now()
	defer s.metrics.commitTime.RecordSince(start)

	s.mu.RLock()
	lastBlock := s.mu.lastCommittedBlock
	s.mu.RUnlock()

	block := &protocol.Block{
		BlockHeight:        1,
		SignedTransactions: []*protocol.SignedTransaction{transaction},
	}
	if lastBlock != nil {
		block.BlockHeight = lastBlock.BlockHeight + 1
		block.Timestamp = nextBlockTimestamp(lastBlock.Timestamp)
		block.PrevBlockHash = digest.CalcBlockHash(lastBlock)
	} else {
		block.Timestamp = nextBlockTimestamp(0)
	}

	output, err := s.virtualMachine.ProcessTransactionSet(ctx, &services.ProcessTransactionSetInput{
		CurrentBlockHeight:    block.BlockHeight,
		CurrentBlockTimestamp: block.Timestamp,
		SignedTransactions:    block.SignedTransactions,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed executing block %d", block.BlockHeight)
	}
	if len(output.TransactionReceipts) != 1 {
		return nil, errors.Errorf("expected exactly one receipt for block %d, got %d", block.BlockHeight, len(output.TransactionReceipts))
	}
	block.Receipts = output.TransactionReceipts

	if err := s.commitState(ctx, block.BlockHeight, block.Timestamp, output.ContractStateDiffs); err != nil {
		return nil, err
	}

	if _, err := s.blockStorage.CommitBlock(ctx, &services.CommitBlockInput{Block: block}); err != nil {
		return nil, errors.Wrapf(err, "failed committing block %d", block.BlockHeight)
	}

	s.mu.Lock()
	s.mu.lastCommittedBlock = block
	s.mu.Unlock()

	receipt := block.Receipts[0]
	s.committedPool.add(receipt, block.BlockHeight, block.Timestamp, transaction.Transaction.Timestamp)
	s.metrics.commitRate.Measure(1)
	s.metrics.lastCommittedTime.Update(int64(block.Timestamp))

	logger.Info("transaction committed", logfields.Transaction(receipt.Txhash), logfields.BlockHeight(block.BlockHeight), log.Stringable("execution-result", receipt.ExecutionResult))

	return &committedTransaction{
		receipt:        receipt,
		blockHeight:    block.BlockHeight,
		blockTimestamp: block.Timestamp,
		txTimestamp:    transaction.Transaction.Timestamp,
	}, nil
}

func (s *service) commitState(ctx context.Context, height primitives.BlockHeight, timestamp primitives.TimestampNano, diffs []*protocol.ContractStateDiff) error {
	output, err := s.stateStorage.CommitStateDiff(ctx, &services.CommitStateDiffInput{
		BlockHeight:        height,
		BlockTimestamp:     timestamp,
		ContractStateDiffs: diffs,
	})
	if err != nil {
		return errors.Wrapf(err, "failed committing state of block %d", height)
	}
	if output.NextDesiredBlockHeight != height+1 {
		return errors.Errorf("state storage expected block %d, not %d", output.NextDesiredBlockHeight, height)
	}
	return nil
}
