// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

// Package acceptance drives the bundled contracts end to end through the public api of an in-memory network.
package acceptance

import (
	"context"
	"github.com/orbs-network/govnr"
	"github.com/orbs-network/orbs-counter-playground/bootstrap/inmemory"
	"github.com/orbs-network/orbs-counter-playground/config"
	"github.com/orbs-network/orbs-counter-playground/services/processor/native/artifact"
	"github.com/orbs-network/orbs-counter-playground/test"
	"github.com/orbs-network/orbs-counter-playground/test/builders"
	"github.com/orbs-network/orbs-counter-playground/test/with"
	"github.com/orbs-network/orbs-counter-playground/types/primitives"
	"github.com/orbs-network/orbs-counter-playground/types/protocol"
	"github.com/orbs-network/orbs-counter-playground/types/services"
	"github.com/stretchr/testify/require"
	"testing"
)

type harness struct {
	t       testing.TB
	ctx     context.Context
	network *inmemory.Network
}

func withNetwork(t *testing.T, f func(h *harness)) {
	with.Logging(t, func(parent *with.LoggingHarness) {
		test.WithContextAndShutdown(func(ctx context.Context) govnr.ShutdownWaiter {
			network := inmemory.NewNetwork(ctx, parent.Logger, config.ForAcceptanceTests())
			f(&harness{t: t, ctx: ctx, network: network})
			return network
		})
	})
}

// sendTransaction fails the test only when the public api gives no output at all, rejections are returned for inspection
func (h *harness) sendTransaction(tx *protocol.SignedTransaction) *services.SendTransactionOutput {
	out, err := h.network.PublicApi().SendTransaction(h.ctx, &services.SendTransactionInput{SignedTransaction: tx})
	require.NotNil(h.t, out, "public api returned no output: %v", err)
	return out
}

func (h *harness) deploy(accountId primitives.AccountId, contractName string) *services.SendTransactionOutput {
	return h.sendTransaction(builders.Transaction().WithSigner(accountId).WithDeploy(artifact.Build(contractName)).Build())
}

func (h *harness) call(signer primitives.AccountId, receiver primitives.AccountId, methodName primitives.MethodName, args ...interface{}) *services.SendTransactionOutput {
	return h.sendTransaction(builders.Transaction().WithSigner(signer).WithMethod(receiver, methodName).WithArgs(args...).Build())
}

func (h *harness) query(receiver primitives.AccountId, methodName primitives.MethodName, args ...interface{}) *services.RunQueryOutput {
	out, err := h.network.PublicApi().RunQuery(h.ctx, &services.RunQueryInput{Query: builders.Query(receiver, methodName, args...)})
	require.NoError(h.t, err)
	return out
}

func (h *harness) getNum(accountId primitives.AccountId) int64 {
	out := h.query(accountId, "get_num")
	require.Equal(h.t, protocol.EXECUTION_RESULT_SUCCESS, out.ExecutionResult, "get_num on %s failed", accountId)
	require.Len(h.t, out.OutputArguments, 1)
	return out.OutputArguments[0].Int64Value
}

func (h *harness) requireSucceeded(out *services.SendTransactionOutput) {
	require.Equal(h.t, protocol.TRANSACTION_STATUS_COMMITTED, out.TransactionStatus)
	require.Equal(h.t, protocol.REQUEST_STATUS_COMPLETED, out.RequestResult.RequestStatus)
	require.Equal(h.t, protocol.EXECUTION_RESULT_SUCCESS, out.TransactionReceipt.ExecutionResult, "receipt output: %s", out.TransactionReceipt.OutputArguments)
}

func (h *harness) deployCounter(accountId primitives.AccountId) {
	h.requireSucceeded(h.deploy(accountId, "Counter"))
}
