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

type AddNewTransactionInput struct {
	SignedTransaction *protocol.SignedTransaction
}

type AddNewTransactionOutput struct {
	TransactionStatus  protocol.TransactionStatus
	TransactionReceipt *protocol.TransactionReceipt
	BlockHeight        primitives.BlockHeight
	BlockTimestamp     primitives.TimestampNano
}

type GetCommittedTransactionReceiptInput struct {
	Txhash primitives.Sha256
}

type GetCommittedTransactionReceiptOutput struct {
	TransactionStatus  protocol.TransactionStatus
	TransactionReceipt *protocol.TransactionReceipt
	BlockHeight        primitives.BlockHeight
	BlockTimestamp     primitives.TimestampNano
}

type TransactionPool interface {
	AddNewTransaction(ctx context.Context, input *AddNewTransactionInput) (*AddNewTransactionOutput, error)
	GetCommittedTransactionReceipt(ctx context.Context, input *GetCommittedTransactionReceiptInput) (*GetCommittedTransactionReceiptOutput, error)
}
