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
	"github.com/orbs-network/orbs-counter-playground/services/blockstorage"
	blockStorageMemory "github.com/orbs-network/orbs-counter-playground/services/blockstorage/adapter/memory"
	"github.com/orbs-network/orbs-counter-playground/services/processor/native"
	"github.com/orbs-network/orbs-counter-playground/services/processor/native/artifact"
	"github.com/orbs-network/orbs-counter-playground/services/processor/native/repository"
	"github.com/orbs-network/orbs-counter-playground/services/statestorage"
	stateStorageMemory "github.com/orbs-network/orbs-counter-playground/services/statestorage/adapter/memory"
	"github.com/orbs-network/orbs-counter-playground/services/transactionpool"
	"github.com/orbs-network/orbs-counter-playground/services/virtualmachine"
	"github.com/orbs-network/orbs-counter-playground/test/builders"
	"github.com/orbs-network/orbs-counter-playground/types/primitives"
	"github.com/orbs-network/orbs-counter-playground/types/protocol"
	"github.com/orbs-network/orbs-counter-playground/types/services"
	"github.com/orbs-network/scribe/log"
	"github.com/stretchr/testify/require"
	"testing"
)

type harness struct {
	txpool       services.TransactionPool
	vm           services.VirtualMachine
	blockStorage services.BlockStorage
}

func newHarness(ctx context.Context, tb testing.TB) *harness {
	return newHarnessWithConfig(ctx, tb, config.ForAcceptanceTests())
}

func newHarnessWithMaxTransactionsPerSecond(ctx context.Context, tb testing.TB, maxPerSecond uint32) *harness {
	cfg := config.ForAcceptanceTests()
	cfg.SetUint32(config.TRANSACTION_POOL_MAX_TRANSACTIONS_PER_SECOND, maxPerSecond)
	return newHarnessWithConfig(ctx, tb, cfg)
}

func newHarnessWithConfig(ctx context.Context, tb testing.TB, cfg config.NodeConfig) *harness {
	logger := log.DefaultTestingLogger(tb)
	registry := metric.NewRegistry()

	stateStorage := statestorage.NewStateStorage(cfg, stateStorageMemory.NewStatePersistence(registry), nil, logger)
	blockStorage := blockstorage.NewBlockStorage(blockStorageMemory.NewBlockPersistence(logger, registry), logger, registry)
	processor := native.NewNativeProcessor(repository.Contracts, logger, registry)
	vm := virtualmachine.NewVirtualMachine(cfg, stateStorage, processor, logger, registry)

	return &harness{
		txpool:       transactionpool.NewTransactionPool(ctx, cfg, vm, stateStorage, blockStorage, logger, registry),
		vm:           vm,
		blockStorage: blockStorage,
	}
}

func (h *harness) addTransaction(ctx context.Context, tx *protocol.SignedTransaction) (*services.AddNewTransactionOutput, error) {
	return h.txpool.AddNewTransaction(ctx, &services.AddNewTransactionInput{SignedTransaction: tx})
}

func (h *harness) deployCounter(ctx context.Context, t testing.TB, accountId primitives.AccountId) {
	out, err := h.addTransaction(ctx, builders.Transaction().WithSigner(accountId).WithDeploy(artifact.Build("Counter")).Build())
	require.NoError(t, err, "deploy should be accepted")
	require.Equal(t, protocol.EXECUTION_RESULT_SUCCESS, out.TransactionReceipt.ExecutionResult, "deploy should succeed")
}

func (h *harness) lastCommittedBlockHeight(ctx context.Context, t testing.TB) primitives.BlockHeight {
	out, err := h.blockStorage.GetLastCommittedBlockHeight(ctx, &services.GetLastCommittedBlockHeightInput{})
	require.NoError(t, err)
	return out.LastCommittedBlockHeight
}

func (h *harness) counterValue(ctx context.Context, t testing.TB, accountId primitives.AccountId) int64 {
	out, err := h.vm.RunLocalMethod(ctx, &services.RunLocalMethodInput{Query: builders.Query(accountId, "get_num")})
	require.NoError(t, err)
	require.Equal(t, protocol.EXECUTION_RESULT_SUCCESS, out.CallResult, "get_num should succeed")
	require.Len(t, out.OutputArgumentArray, 1)
	return out.OutputArgumentArray[0].Int64Value
}
