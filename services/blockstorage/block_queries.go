// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package blockstorage

import (
	"context"
	"github.com/orbs-network/orbs-counter-playground/types/services"
	"github.com/pkg/errors"
)

func (s *service) GetLastCommittedBlockHeight(ctx context.Context, input *services.GetLastCommittedBlockHeightInput) (*services.GetLastCommittedBlockHeightOutput, error) {
	block, err := s.persistence.GetLastBlock()
	if err != nil {
		return nil, err
	}

	out := &services.GetLastCommittedBlockHeightOutput{}
	if block != nil {
		out.LastCommittedBlockHeight = block.BlockHeight
		out.LastCommittedBlockTimestamp = block.Timestamp
	}
	return out, nil
}

// GetTransactionReceipt returns a nil receipt and the top height when the transaction is unknown
func (s *service) GetTransactionReceipt(ctx context.Context, input *services.GetTransactionReceiptInput) (*services.GetTransactionReceiptOutput, error) {
	if len(input.Txhash) == 0 {
		return nil, errors.New("missing transaction hash")
	}

	receipt, block, err := s.persistence.GetReceiptByTxHash(input.Txhash)
	if err != nil {
		return nil, err
	}

	if receipt == nil {
		top, err := s.GetLastCommittedBlockHeight(ctx, &services.GetLastCommittedBlockHeightInput{})
		if err != nil {
			return nil, err
		}
		return &services.GetTransactionReceiptOutput{
			BlockHeight:    top.LastCommittedBlockHeight,
			BlockTimestamp: top.LastCommittedBlockTimestamp,
		}, nil
	}

	return &services.GetTransactionReceiptOutput{
		TransactionReceipt: receipt,
		BlockHeight:        block.BlockHeight,
		BlockTimestamp:     block.Timestamp,
	}, nil
}
