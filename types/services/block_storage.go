// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package services

import (
	"context"
	"github.com/orbs-network/orbs-counter-playground/types/primitives"
	"github.com/orbs-network/orbs-counter-playground/types/protocol"
)

type CommitBlockInput struct {
	Block *protocol.Block
}

type CommitBlockOutput struct{}

type GetLastCommittedBlockHeightInput struct{}

type GetLastCommittedBlockHeightOutput struct {
	LastCommittedBlockHeight    primitives.BlockHeight
	LastCommittedBlockTimestamp primitives.TimestampNano
}

type GetTransactionReceiptInput struct {
	Txhash primitives.Sha256
}

type GetTransactionReceiptOutput struct {
	TransactionReceipt *protocol.TransactionReceipt
	BlockHeight        primitives.BlockHeight
	BlockTimestamp     primitives.TimestampNano
}

type BlockStorage interface {
	CommitBlock(ctx context.Context, input *CommitBlockInput) (*CommitBlockOutput, error)
	GetLastCommittedBlockHeight(ctx context.Context, input *GetLastCommittedBlockHeightInput) (*GetLastCommittedBlockHeightOutput, error)
	GetTransactionReceipt(ctx context.Context, input *GetTransactionReceiptInput) (*GetTransactionReceiptOutput, error)
}
