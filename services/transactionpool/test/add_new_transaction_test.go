// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package test

import (
	"context"
	"github.com/orbs-network/orbs-counter-playground/crypto/digest"
	"github.com/orbs-network/orbs-counter-playground/services/transactionpool"
	"github.com/orbs-network/orbs-counter-playground/test"
	"github.com/orbs-network/orbs-counter-playground/test/builders"
	"github.com/orbs-network/orbs-counter-playground/types/primitives"
	"github.com/orbs-network/orbs-counter-playground/types/protocol"
	"github.com/orbs-network/orbs-counter-playground/types/services"
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

func TestAddNewTransaction_CommitsEachTransactionInItsOwnBlock(t *testing.T) {
	test.WithContext(func(ctx context.Context) {
		h := newHarness(ctx, t)
		h.deployCounter(ctx, t, "counter")

		out, err := h.addTransaction(ctx, builders.Transaction().WithMethod("counter", "increment").Build())
		require.NoError(t, err)
		require.Equal(t, protocol.TRANSACTION_STATUS_COMMITTED, out.TransactionStatus)
		require.Equal(t, protocol.EXECUTION_RESULT_SUCCESS, out.TransactionReceipt.ExecutionResult)
		require.Equal(t, primitives.BlockHeight(2), out.BlockHeight, "deploy and increment should be two blocks")
		require.Equal(t, primitives.BlockHeight(2), h.lastCommittedBlockHeight(ctx, t))
		require.EqualValues(t, 1, h.counterValue(ctx, t, "counter"))
	})
}

func TestAddNewTransaction_BlockTimestampsDoNotGoBack(t *testing.T) {
	test.WithContext(func(ctx context.Context) {
		h := newHarness(ctx, t)
		h.deployCounter(ctx, t, "counter")

		first, err := h.addTransaction(ctx, builders.Transaction().WithMethod("counter", "increment").Build())
		require.NoError(t, err)
		second, err := h.addTransaction(ctx, builders.Transaction().WithMethod("counter", "decrement").Build())
		require.NoError(t, err)

		require.True(t, second.BlockTimestamp > first.BlockTimestamp, "block timestamps should increase")
	})
}

func TestAddNewTransaction_FailedExecutionIsStillCommitted(t *testing.T) {
	test.WithContext(func(ctx context.Context) {
		h := newHarness(ctx, t)

		out, err := h.addTransaction(ctx, builders.Transaction().WithMethod("nobody", "increment").Build())
		require.NoError(t, err)
		require.Equal(t, protocol.TRANSACTION_STATUS_COMMITTED, out.TransactionStatus)
		require.Equal(t, protocol.EXECUTION_RESULT_ERROR_CONTRACT_NOT_DEPLOYED, out.TransactionReceipt.ExecutionResult)
		require.Equal(t, primitives.BlockHeight(1), h.lastCommittedBlockHeight(ctx, t))
	})
}

func TestAddNewTransaction_DuplicateReturnsOriginalReceipt(t *testing.T) {
	test.WithContext(func(ctx context.Context) {
		h := newHarness(ctx, t)
		h.deployCounter(ctx, t, "counter")

		tx := builders.Transaction().WithMethod("counter", "increment").Build()
		first, err := h.addTransaction(ctx, tx)
		require.NoError(t, err)

		second, err := h.addTransaction(ctx, tx)
		require.NoError(t, err)
		require.Equal(t, protocol.TRANSACTION_STATUS_DUPLICATE_TRANSACTION_ALREADY_COMMITTED, second.TransactionStatus)
		require.Equal(t, first.TransactionReceipt, second.TransactionReceipt)
		require.Equal(t, first.BlockHeight, second.BlockHeight)

		require.EqualValues(t, 1, h.counterValue(ctx, t, "counter"), "duplicate should not execute twice")
	})
}

func TestAddNewTransaction_RejectsInvalidSignature(t *testing.T) {
	test.WithContext(func(ctx context.Context) {
		h := newHarness(ctx, t)

		out, err := h.addTransaction(ctx, builders.Transaction().WithInvalidSignature().Build())
		require.Error(t, err)
		require.IsType(t, &transactionpool.ErrTransactionRejected{}, err)
		require.Equal(t, protocol.TRANSACTION_STATUS_REJECTED_SIGNATURE_MISMATCH, out.TransactionStatus)
		require.Nil(t, out.TransactionReceipt)
		require.Equal(t, primitives.BlockHeight(0), h.lastCommittedBlockHeight(ctx, t), "nothing should be committed")
	})
}

func TestAddNewTransaction_RejectsExpiredTransaction(t *testing.T) {
	test.WithContext(func(ctx context.Context) {
		h := newHarness(ctx, t)

		out, err := h.addTransaction(ctx, builders.Transaction().WithTimestamp(time.Now().Add(-time.Hour)).Build())
		require.Error(t, err)
		require.Equal(t, protocol.TRANSACTION_STATUS_REJECTED_TIMESTAMP_WINDOW_EXCEEDED, out.TransactionStatus)
	})
}

func TestAddNewTransaction_RejectsSignerWithAnotherKey(t *testing.T) {
	test.WithContext(func(ctx context.Context) {
		h := newHarness(ctx, t)
		h.deployCounter(ctx, t, "counter")

		_, err := h.addTransaction(ctx, builders.Transaction().WithSigner("alice").WithMethod("counter", "increment").Build())
		require.NoError(t, err)

		impostor := builders.Transaction().WithSignerKeyPair("alice", builders.KeyPairFor("mallory")).WithMethod("counter", "increment").Build()
		out, err := h.addTransaction(ctx, impostor)
		require.Error(t, err)
		require.Equal(t, protocol.TRANSACTION_STATUS_REJECTED_SIGNATURE_MISMATCH, out.TransactionStatus)
		require.EqualValues(t, 1, h.counterValue(ctx, t, "counter"))
	})
}

func TestAddNewTransaction_RejectsWhenCongested(t *testing.T) {
	test.WithContext(func(ctx context.Context) {
		h := newHarnessWithMaxTransactionsPerSecond(ctx, t, 1)
		h.deployCounter(ctx, t, "counter")

		out, err := h.addTransaction(ctx, builders.Transaction().WithMethod("counter", "increment").Build())
		require.Error(t, err)
		require.Equal(t, protocol.TRANSACTION_STATUS_REJECTED_CONGESTION, out.TransactionStatus)
	})
}

func TestGetCommittedTransactionReceipt(t *testing.T) {
	test.WithContext(func(ctx context.Context) {
		h := newHarness(ctx, t)
		h.deployCounter(ctx, t, "counter")

		tx := builders.Transaction().WithMethod("counter", "increment").Build()
		added, err := h.addTransaction(ctx, tx)
		require.NoError(t, err)

		out, err := h.txpool.GetCommittedTransactionReceipt(ctx, &services.GetCommittedTransactionReceiptInput{Txhash: digest.CalcTxHash(tx.Transaction)})
		require.NoError(t, err)
		require.Equal(t, protocol.TRANSACTION_STATUS_COMMITTED, out.TransactionStatus)
		require.Equal(t, added.TransactionReceipt, out.TransactionReceipt)
		require.Equal(t, added.BlockHeight, out.BlockHeight)
	})
}

func TestGetCommittedTransactionReceipt_UnknownTransaction(t *testing.T) {
	test.WithContext(func(ctx context.Context) {
		h := newHarness(ctx, t)

		tx := builders.Transaction().Build()
		out, err := h.txpool.GetCommittedTransactionReceipt(ctx, &services.GetCommittedTransactionReceiptInput{Txhash: digest.CalcTxHash(tx.Transaction)})
		require.NoError(t, err)
		require.Equal(t, protocol.TRANSACTION_STATUS_NO_RECORD_FOUND, out.TransactionStatus)
		require.Nil(t, out.TransactionReceipt)
	})
}
