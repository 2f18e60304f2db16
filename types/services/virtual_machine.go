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
	"github.com/orbs-network/orbs-counter-playground/types/services/handlers"
)

type ProcessTransactionSetInput struct {
	CurrentBlockHeight    primitives.BlockHeight
	CurrentBlockTimestamp primitives.TimestampNano
	SignedTransactions    []*protocol.SignedTransaction
}

type ProcessTransactionSetOutput struct {
	TransactionReceipts []*protocol.TransactionReceipt
	ContractStateDiffs  []*protocol.ContractStateDiff
}

type RunLocalMethodInput struct {
	BlockHeight    primitives.BlockHeight
	BlockTimestamp primitives.TimestampNano
	Query          *protocol.Query
}

type RunLocalMethodOutput struct {
	CallResult              protocol.ExecutionResult
	OutputArgumentArray     protocol.ArgumentArray
	Logs                    []string
	ReferenceBlockHeight    primitives.BlockHeight
	ReferenceBlockTimestamp primitives.TimestampNano
}

type TransactionSetPreOrderInput struct {
	SignedTransactions    []*protocol.SignedTransaction
	CurrentBlockHeight    primitives.BlockHeight
	CurrentBlockTimestamp primitives.TimestampNano
}

type TransactionSetPreOrderOutput struct {
	PreOrderResults []protocol.TransactionStatus
}

type VirtualMachine interface {
	handlers.ContractSdkCallHandler
	ProcessTransactionSet(ctx context.Context, input *ProcessTransactionSetInput) (*ProcessTransactionSetOutput, error)
	RunLocalMethod(ctx context.Context, input *RunLocalMethodInput) (*RunLocalMethodOutput, error)
	TransactionSetPreOrder(ctx context.Context, input *TransactionSetPreOrderInput) (*TransactionSetPreOrderOutput, error)
}
