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

type RequestResult struct {
	RequestStatus  protocol.RequestStatus   `json:"requestStatus"`
	BlockHeight    primitives.BlockHeight   `json:"blockHeight"`
	BlockTimestamp primitives.TimestampNano `json:"blockTimestamp"`
}

type SendTransactionInput struct {
	SignedTransaction *protocol.SignedTransaction `json:"signedTransaction"`
}

type SendTransactionOutput struct {
	RequestResult      *RequestResult               `json:"requestResult"`
	TransactionStatus  protocol.TransactionStatus   `json:"transactionStatus"`
	TransactionReceipt *protocol.TransactionReceipt `json:"transactionReceipt,omitempty"`
}

type RunQueryInput struct {
	Query *protocol.Query `json:"query"`
}

type RunQueryOutput struct {
	RequestResult   *RequestResult           `json:"requestResult"`
	ExecutionResult protocol.ExecutionResult `json:"executionResult"`
	OutputArguments protocol.ArgumentArray   `json:"outputArguments"`
	Logs            []string                 `json:"logs"`
}

type GetTransactionStatusInput struct {
	Txhash primitives.Sha256 `json:"txHash"`
}

type GetTransactionStatusOutput struct {
	RequestResult      *RequestResult               `json:"requestResult"`
	TransactionStatus  protocol.TransactionStatus   `json:"transactionStatus"`
	TransactionReceipt *protocol.TransactionReceipt `json:"transactionReceipt,omitempty"`
}

type PublicApi interface {
	SendTransaction(ctx context.Context, input *SendTransactionInput) (*SendTransactionOutput, error)
	RunQuery(ctx context.Context, input *RunQueryInput) (*RunQueryOutput, error)
	GetTransactionStatus(ctx context.Context, input *GetTransactionStatusInput) (*GetTransactionStatusOutput, error)
}
