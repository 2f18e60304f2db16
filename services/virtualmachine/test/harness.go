// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package test

import (
	"context"
	"github.com/orbs-network/orbs-counter-playground/config"
	"github.com/orbs-network/orbs-counter-playground/instrumentation/metric"
	"github.com/orbs-network/orbs-counter-playground/services/processor/native"
	"github.com/orbs-network/orbs-counter-playground/services/processor/native/artifact"
	"github.com/orbs-network/orbs-counter-playground/services/processor/native/repository"
	"github.com/orbs-network/orbs-counter-playground/services/statestorage"
	"github.com/orbs-network/orbs-counter-playground/services/statestorage/adapter/memory"
	"github.com/orbs-network/orbs-counter-playground/services/virtualmachine"
	"github.com/orbs-network/orbs-counter-playground/test/builders"
	"github.com/orbs-network/orbs-counter-playground/types/primitives"
	"github.com/orbs-network/orbs-counter-playground/types/protocol"
	"github.com/orbs-network/orbs-counter-playground/types/services"
	"github.com/orbs-network/scribe/log"
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

var counterCode = artifact.Build("Counter")
var donationCode = artifact.Build("Donation")

// the virtual machine wired to the real native processor and an in-memory state storage
type harness struct {
	service      services.VirtualMachine
	stateStorage services.StateStorage
	logger       log.Logger
	lastHeight   primitives.BlockHeight
}

func newHarness(tb testing.TB) *harness {
	logger := log.DefaultTestingLogger(tb)
	registry := metric.NewRegistry()
	cfg := config.ForAcceptanceTests()

	stateStorage := statestorage.NewStateStorage(cfg, memory.NewStatePersistence(registry), nil, logger)
	processor := native.NewNativeProcessor(repository.Contracts, logger, registry)
	service := virtualmachine.NewVirtualMachine(cfg, stateStorage, processor, logger, registry)

	return &harness{
		service:      service,
		stateStorage: stateStorage,
		logger:       logger,
	}
}

// processes the transactions without committing their state
func (h *harness) processTransactionSet(ctx context.Context, t testing.TB, transactions ...*protocol.SignedTransaction) *services.ProcessTransactionSetOutput {
	output, err := h.service.ProcessTransactionSet(ctx, &services.ProcessTransactionSetInput{
		CurrentBlockHeight:    h.lastHeight + 1,
		CurrentBlockTimestamp: primitives.TimestampNano(time.Now().UnixNano()),
		SignedTransactions:    transactions,
	})
	require.NoError(t, err, "process transaction set should not fail")
	require.Len(t, output.TransactionReceipts, len(transactions), "every transaction should have a receipt")
	return output
}

// processes the transactions as the next block and commits the resulting state
func (h *harness) commitTransactionSet(ctx context.Context, t testing.TB, transactions ...*protocol.SignedTransaction) []*protocol.TransactionReceipt {
	output := h.processTransactionSet(ctx, t, transactions...)

	h.lastHeight++
	_, err := h.stateStorage.CommitStateDiff(ctx, &services.CommitStateDiffInput{
		BlockHeight:        h.lastHeight,
		BlockTimestamp:     primitives.TimestampNano(time.Now().UnixNano()),
		ContractStateDiffs: output.ContractStateDiffs,
	})
	require.NoError(t, err, "commit state diff should not fail")

	return output.TransactionReceipts
}

func (h *harness) deploy(ctx context.Context, t testing.TB, accountId primitives.AccountId, code []byte) {
	receipts := h.commitTransactionSet(ctx, t, builders.Transaction().WithSigner(accountId).WithDeploy(code).Build())
	require.Equal(t, protocol.EXECUTION_RESULT_SUCCESS, receipts[0].ExecutionResult, "deploy to %s should succeed", accountId)
}

func (h *harness) runQuery(ctx context.Context, t testing.TB, receiver primitives.AccountId, methodName primitives.MethodName, args ...interface{}) *services.RunLocalMethodOutput {
	output, err := h.service.RunLocalMethod(ctx, &services.RunLocalMethodInput{
		Query: builders.Query(receiver, methodName, args...),
	})
	require.NoError(t, err, "run local method should not fail")
	return output
}

func (h *harness) counterValue(ctx context.Context, t testing.TB, accountId primitives.AccountId) int64 {
	output := h.runQuery(ctx, t, accountId, "get_num")
	require.Equal(t, protocol.EXECUTION_RESULT_SUCCESS, output.CallResult, "get_num should succeed")
	require.Len(t, output.OutputArgumentArray, 1, "get_num should return one value")
	return output.OutputArgumentArray[0].Int64Value
}

func (h *harness) preOrder(ctx context.Context, t testing.TB, transactions ...*protocol.SignedTransaction) []protocol.TransactionStatus {
	output, err := h.service.TransactionSetPreOrder(ctx, &services.TransactionSetPreOrderInput{
		SignedTransactions:    transactions,
		CurrentBlockHeight:    h.lastHeight + 1,
		CurrentBlockTimestamp: primitives.TimestampNano(time.Now().UnixNano()),
	})
	require.NoError(t, err, "pre order should not fail")
	return output.PreOrderResults
}

func diffAccounts(diffs []*protocol.ContractStateDiff) []primitives.AccountId {
	res := []primitives.AccountId{}
	for _, diff := range diffs {
		res = append(res, diff.AccountId)
	}
	return res
}
