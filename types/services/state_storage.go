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

type ReadKeysInput struct {
	BlockHeight primitives.BlockHeight
	Namespace   primitives.AccountId
	Keys        []primitives.Ripmd160Sha256
}

type ReadKeysOutput struct {
	StateRecords []*protocol.StateRecord
}

type CommitStateDiffInput struct {
	BlockHeight        primitives.BlockHeight
	BlockTimestamp     primitives.TimestampNano
	ContractStateDiffs []*protocol.ContractStateDiff
}

type CommitStateDiffOutput struct {
	NextDesiredBlockHeight primitives.BlockHeight
}

type GetStateStorageBlockHeightInput struct{}

type GetStateStorageBlockHeightOutput struct {
	LastCommittedBlockHeight    primitives.BlockHeight
	LastCommittedBlockTimestamp primitives.TimestampNano
}

type StateStorage interface {
	ReadKeys(ctx context.Context, input *ReadKeysInput) (*ReadKeysOutput, error)
	CommitStateDiff(ctx context.Context, input *CommitStateDiffInput) (*CommitStateDiffOutput, error)
	GetStateStorageBlockHeight(ctx context.Context, input *GetStateStorageBlockHeightInput) (*GetStateStorageBlockHeightOutput, error)
}
