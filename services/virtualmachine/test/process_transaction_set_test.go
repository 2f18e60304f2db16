// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package test

import (
	"context"
	"github.com/orbs-network/orbs-counter-playground/crypto/digest"
	"github.com/orbs-network/orbs-counter-playground/test"
	"github.com/orbs-network/orbs-counter-playground/test/builders"
	"github.com/orbs-network/orbs-counter-playground/types/primitives"
	"github.com/orbs-network/orbs-counter-playground/types/protocol"
	"github.com/stretchr/testify/require"
	"testing"
)

const overflowReminder = "Make sure you don't overflow, my friend."

func TestCounterMethodsUpdateStateAndLog(t *testing.T) {
	test.WithContext(func(ctx context.Context) {
		h := newHarness(t)
		h.deploy(ctx, t, "counter", counterCode)

		increment := builders.Transaction().WithMethod("counter", "increment").Build()
		receipts := h.commitTransactionSet(ctx, t,
			increment,
			builders.Transaction().WithMethod("counter", "increment").Build(),
			builders.Transaction().WithMethod("counter", "decrement").Build(),
		)
		require.Equal(t, digest.CalcTxHash(increment.Transaction), receipts[0].Txhash, "receipt should carry the transaction hash")
		require.Equal(t, []string{"Incremented to 1", overflowReminder}, receipts[0].Logs)
		require.Equal(t, []string{"Incremented to 2", overflowReminder}, receipts[1].Logs)
		require.Equal(t, []string{"Decreased number to 1", overflowReminder}, receipts[2].Logs)
		require.EqualValues(t, 1, h.counterValue(ctx, t, "counter"))

		receipts = h.commitTransactionSet(ctx, t, builders.Transaction().WithMethod("counter", "reset").Build())
		require.Equal(t, []string{"Reset counter to zero"}, receipts[0].Logs)
		require.EqualValues(t, 0, h.counterValue(ctx, t, "counter"))
	})
}

func TestDecrementGoesNegative(t *testing.T) {
	test.WithContext(func(ctx context.Context) {
		h := newHarness(t)
		h.deploy(ctx, t, "counter", counterCode)

		h.commitTransactionSet(ctx, t, builders.Transaction().WithMethod("counter", "decrement").Build())
		require.EqualValues(t, -1, h.counterValue(ctx, t, "counter"))
	})
}

func TestCrossAccountCallIncrementsTarget(t *testing.T) {
	test.WithContext(func(ctx context.Context) {
		h := newHarness(t)
		h.deploy(ctx, t, "alice", counterCode)
		h.deploy(ctx, t, "bob", donationCode)

		receipts := h.commitTransactionSet(ctx, t, builders.Transaction().WithMethod("bob", "increment_my_number").WithArgs("alice").Build())
		require.Equal(t, protocol.EXECUTION_RESULT_SUCCESS, receipts[0].ExecutionResult, "donation should succeed")
		require.Equal(t, []string{"Incremented to 1", overflowReminder}, receipts[0].Logs, "callee logs should be part of the receipt")
		require.EqualValues(t, 1, h.counterValue(ctx, t, "alice"))
	})
}

func TestCrossAccountCallAcceptsNamedArgument(t *testing.T) {
	test.WithContext(func(ctx context.Context) {
		h := newHarness(t)
		h.deploy(ctx, t, "alice", counterCode)
		h.deploy(ctx, t, "bob", donationCode)

		receipts := h.commitTransactionSet(ctx, t, builders.Transaction().WithMethod("bob", "increment_my_number").WithNamedArgs(builders.NamedArgument("account_id", "alice")).Build())
		require.Equal(t, protocol.EXECUTION_RESULT_SUCCESS, receipts[0].ExecutionResult, "donation should succeed")
		require.EqualValues(t, 1, h.counterValue(ctx, t, "alice"))
	})
}

func TestFailedCrossAccountCallCommitsNothing(t *testing.T) {
	test.WithContext(func(ctx context.Context) {
		h := newHarness(t)
		h.deploy(ctx, t, "bob", donationCode)
		h.commitTransactionSet(ctx, t, builders.Transaction().WithMethod("bob", "unknown").Build()) // registers the default signer

		output := h.processTransactionSet(ctx, t, builders.Transaction().WithMethod("bob", "increment_my_number").WithArgs("nobody").Build())
		require.Equal(t, protocol.EXECUTION_RESULT_ERROR_SMART_CONTRACT, output.TransactionReceipts[0].ExecutionResult, "donation to an undeployed account should fail")
		require.Empty(t, output.ContractStateDiffs, "failed transaction should not produce state diffs")
	})
}

func TestFailedTransactionDoesNotAffectOthersInSet(t *testing.T) {
	test.WithContext(func(ctx context.Context) {
		h := newHarness(t)
		h.deploy(ctx, t, "alice", counterCode)
		h.deploy(ctx, t, "bob", donationCode)

		receipts := h.commitTransactionSet(ctx, t,
			builders.Transaction().WithMethod("alice", "increment").Build(),
			builders.Transaction().WithMethod("bob", "increment_my_number").WithArgs("bob").Build(),
			builders.Transaction().WithMethod("alice", "increment").Build(),
		)
		require.Equal(t, protocol.EXECUTION_RESULT_SUCCESS, receipts[0].ExecutionResult)
		require.Equal(t, protocol.EXECUTION_RESULT_ERROR_SMART_CONTRACT, receipts[1].ExecutionResult, "donation target without increment should fail")
		require.Equal(t, protocol.EXECUTION_RESULT_SUCCESS, receipts[2].ExecutionResult)
		require.EqualValues(t, 2, h.counterValue(ctx, t, "alice"))
	})
}

func TestCallToSystemAccountIsRejected(t *testing.T) {
	test.WithContext(func(ctx context.Context) {
		h := newHarness(t)

		receipts := h.commitTransactionSet(ctx, t, builders.Transaction().WithMethod("_Deployments", "getCode").WithArgs("counter").Build())
		require.Equal(t, protocol.EXECUTION_RESULT_ERROR_INPUT, receipts[0].ExecutionResult)
	})
}

func TestCallToNonExternalMethodIsRejected(t *testing.T) {
	test.WithContext(func(ctx context.Context) {
		h := newHarness(t)
		h.deploy(ctx, t, "counter", counterCode)

		receipts := h.commitTransactionSet(ctx, t, builders.Transaction().WithMethod("counter", "_init").Build())
		require.Equal(t, protocol.EXECUTION_RESULT_ERROR_INPUT, receipts[0].ExecutionResult, "_init is reserved for deployment")
	})
}

func TestSignerIsBoundToFirstKey(t *testing.T) {
	test.WithContext(func(ctx context.Context) {
		h := newHarness(t)
		h.deploy(ctx, t, "counter", counterCode)

		impostor := builders.Transaction().WithSignerKeyPair("counter", builders.KeyPairFor("mallory")).WithMethod("counter", "increment").Build()
		output := h.processTransactionSet(ctx, t, impostor)
		require.Equal(t, protocol.EXECUTION_RESULT_ERROR_INPUT, output.TransactionReceipts[0].ExecutionResult, "signing with another key should fail")
		require.Empty(t, output.ContractStateDiffs)
	})
}

func TestStateDiffsAreOrderedByFirstWrite(t *testing.T) {
	test.WithContext(func(ctx context.Context) {
		h := newHarness(t)
		h.deploy(ctx, t, "b", counterCode)
		h.deploy(ctx, t, "a", counterCode)
		h.commitTransactionSet(ctx, t, builders.Transaction().WithMethod("a", "get_num").Build()) // registers the default signer

		output := h.processTransactionSet(ctx, t,
			builders.Transaction().WithMethod("b", "increment").Build(),
			builders.Transaction().WithMethod("a", "increment").Build(),
			builders.Transaction().WithMethod("b", "increment").Build(),
		)
		require.Equal(t, []primitives.AccountId{"b", "a"}, diffAccounts(output.ContractStateDiffs))
	})
}
