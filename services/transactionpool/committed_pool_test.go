// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package transactionpool

import (
	"github.com/orbs-network/orbs-counter-playground/instrumentation/metric"
	"github.com/orbs-network/orbs-counter-playground/types/primitives"
	"github.com/orbs-network/orbs-counter-playground/types/protocol"
	"github.com/stretchr/testify/require"
	"testing"
)

func receiptWithHash(b byte) *protocol.TransactionReceipt {
	hash := make(primitives.Sha256, 32)
	hash[0] = b
	return &protocol.TransactionReceipt{Txhash: hash, ExecutionResult: protocol.EXECUTION_RESULT_SUCCESS}
}

func TestCommittedPool_AddAndGet(t *testing.T) {
	p := NewCommittedPool(metric.NewRegistry())
	receipt := receiptWithHash(1)

	require.False(t, p.has(receipt.Txhash))
	p.add(receipt, 3, 100, 90)

	tx := p.get(receipt.Txhash)
	require.NotNil(t, tx)
	require.Equal(t, primitives.BlockHeight(3), tx.blockHeight)
	require.Equal(t, primitives.TimestampNano(100), tx.blockTimestamp)
	require.Equal(t, receipt, tx.receipt)
	require.EqualValues(t, 1, p.size.Value())
}

func TestCommittedPool_ClearsOnlyOlderTransactions(t *testing.T) {
	p := NewCommittedPool(metric.NewRegistry())
	older := receiptWithHash(1)
	newer := receiptWithHash(2)
	p.add(older, 1, 10, 10)
	p.add(newer, 2, 20, 20)

	require.Equal(t, 1, p.clearTransactionsOlderThan(15))

	require.False(t, p.has(older.Txhash), "older transaction should be cleared")
	require.True(t, p.has(newer.Txhash), "newer transaction should remain")
	require.EqualValues(t, 1, p.size.Value())
}
