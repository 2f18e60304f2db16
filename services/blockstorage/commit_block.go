// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package blockstorage

import (
	"bytes"
	"context"
	"github.com/orbs-network/orbs-counter-playground/crypto/digest"
	"github.com/orbs-network/orbs-counter-playground/instrumentation/logfields"
	"github.com/orbs-network/orbs-counter-playground/instrumentation/trace"
	"github.com/orbs-network/orbs-counter-playground/types/protocol"
	"github.com/orbs-network/orbs-counter-playground/types/services"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
)

func (s *service) CommitBlock(ctx context.Context, input *services.CommitBlockInput) (*services.CommitBlockOutput, error) {
	logger := s.logger.WithTags(trace.LogFieldFrom(ctx))

	if input.Block == nil {
		return nil, errors.New("missing block")
	}

	logger.Info("trying to commit a block", logfields.BlockHeight(input.Block.BlockHeight))

	// the source of truth for the last committed block is persistence
	lastCommittedBlock, err := s.persistence.GetLastBlock()
	if err != nil {
		return nil, err
	}

	if err := validateBlockFollows(input.Block, lastCommittedBlock); err != nil {
		return nil, err
	}

	added, _, err := s.persistence.WriteNextBlock(input.Block)
	if err != nil {
		return nil, errors.Wrapf(err, "failed writing block %d", input.Block.BlockHeight)
	}
	if !added {
		return nil, errors.Errorf("block %d was not written", input.Block.BlockHeight)
	}

	s.metrics.blockHeight.Update(int64(input.Block.BlockHeight))

	logger.Info("committed a block", logfields.BlockHeight(input.Block.BlockHeight), log.Int("num-transactions", len(input.Block.SignedTransactions)))

	return &services.CommitBlockOutput{}, nil
}

func validateBlockFollows(block *protocol.Block, lastCommittedBlock *protocol.Block) error {
	if lastCommittedBlock == nil {
		if block.BlockHeight != 1 {
			return errors.Errorf("first block must have height 1, got %d", block.BlockHeight)
		}
		return nil
	}

	if block.BlockHeight != lastCommittedBlock.BlockHeight+1 {
		return errors.Errorf("block height mismatch: expected %d, got %d", lastCommittedBlock.BlockHeight+1, block.BlockHeight)
	}

	if expected := digest.CalcBlockHash(lastCommittedBlock); !bytes.Equal(expected, block.PrevBlockHash) {
		return errors.Errorf("block %d does not point to the previous block hash %s", block.BlockHeight, expected)
	}

	if block.Timestamp < lastCommittedBlock.Timestamp {
		return errors.Errorf("block %d timestamp %d is before the previous block timestamp %d", block.BlockHeight, block.Timestamp, lastCommittedBlock.Timestamp)
	}

	return nil
}
