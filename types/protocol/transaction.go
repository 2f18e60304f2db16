// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package protocol

import (
	"fmt"
	"github.com/orbs-network/orbs-counter-playground/types/primitives"
)

type Transaction struct {
	ProtocolVersion primitives.ProtocolVersion  `json:"protocolVersion"`
	Timestamp       primitives.TimestampNano    `json:"timestamp"`
	Signer          primitives.AccountId        `json:"signer"`
	SignerPublicKey primitives.Ed25519PublicKey `json:"signerPublicKey"`
	Receiver        primitives.AccountId        `json:"receiver"`
	Action          TransactionAction           `json:"action"`
	MethodName      primitives.MethodName       `json:"methodName,omitempty"`
	InputArguments  ArgumentArray               `json:"inputArguments,omitempty"`
	Code            []byte                      `json:"code,omitempty"`
}

func (t *Transaction) String() string {
	if t == nil {
		return "<nil>"
	}
	if t.Action == TRANSACTION_ACTION_DEPLOY_CONTRACT {
		return fmt.Sprintf("{Deploy %s by %s at %d (%d code bytes)}", t.Receiver, t.Signer, t.Timestamp, len(t.Code))
	}
	return fmt.Sprintf("{Call %s.%s%s by %s at %d}", t.Receiver, t.MethodName, t.InputArguments, t.Signer, t.Timestamp)
}

type SignedTransaction struct {
	Transaction *Transaction          `json:"transaction"`
	Signature   primitives.Ed25519Sig `json:"signature"`
}

func (s *SignedTransaction) String() string {
	if s == nil {
		return "<nil>"
	}
	return s.Transaction.String()
}

// Query is a read only method invocation. It is not signed and never enters a block.
type Query struct {
	ProtocolVersion primitives.ProtocolVersion `json:"protocolVersion"`
	Timestamp       primitives.TimestampNano   `json:"timestamp"`
	Signer          primitives.AccountId       `json:"signer,omitempty"`
	Receiver        primitives.AccountId       `json:"receiver"`
	MethodName      primitives.MethodName      `json:"methodName"`
	InputArguments  ArgumentArray              `json:"inputArguments,omitempty"`
}

func (q *Query) String() string {
	if q == nil {
		return "<nil>"
	}
	return fmt.Sprintf("{Query %s.%s%s by %s}", q.Receiver, q.MethodName, q.InputArguments, q.Signer)
}

type TransactionReceipt struct {
	Txhash          primitives.Sha256 `json:"txHash"`
	ExecutionResult ExecutionResult   `json:"executionResult"`
	OutputArguments ArgumentArray     `json:"outputArguments"`
	Logs            []string          `json:"logs"`
}

func (r *TransactionReceipt) String() string {
	if r == nil {
		return "<nil>"
	}
	return fmt.Sprintf("{Receipt %s %s %s}", r.Txhash, r.ExecutionResult, r.OutputArguments)
}

type StateRecord struct {
	Key   []byte `json:"key"`
	Value []byte `json:"value"`
}

type ContractStateDiff struct {
	AccountId  primitives.AccountId `json:"accountId"`
	StateDiffs []*StateRecord       `json:"stateDiffs"`
}

type Block struct {
	BlockHeight        primitives.BlockHeight   `json:"blockHeight"`
	Timestamp          primitives.TimestampNano `json:"timestamp"`
	PrevBlockHash      primitives.Sha256        `json:"prevBlockHash"`
	SignedTransactions []*SignedTransaction     `json:"signedTransactions"`
	Receipts           []*TransactionReceipt    `json:"receipts"`
}

func (b *Block) String() string {
	if b == nil {
		return "<nil>"
	}
	return fmt.Sprintf("{Block %d at %d with %d transactions}", b.BlockHeight, b.Timestamp, len(b.SignedTransactions))
}
