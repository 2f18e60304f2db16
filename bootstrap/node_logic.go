// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package bootstrap

import (
	"context"
	"github.com/orbs-network/govnr"
	"github.com/orbs-network/orbs-counter-playground/config"
	"github.com/orbs-network/orbs-counter-playground/instrumentation/metric"
	"github.com/orbs-network/orbs-counter-playground/services/blockstorage"
	blockStorageAdapter "github.com/orbs-network/orbs-counter-playground/services/blockstorage/adapter"
	"github.com/orbs-network/orbs-counter-playground/services/processor/native"
	"github.com/orbs-network/orbs-counter-playground/services/processor/native/repository"
	"github.com/orbs-network/orbs-counter-playground/services/publicapi"
	"github.com/orbs-network/orbs-counter-playground/services/statestorage"
	stateStorageAdapter "github.com/orbs-network/orbs-counter-playground/services/statestorage/adapter"
	"github.com/orbs-network/orbs-counter-playground/services/transactionpool"
	"github.com/orbs-network/orbs-counter-playground/services/virtualmachine"
	"github.com/orbs-network/orbs-counter-playground/types/primitives"
	"github.com/orbs-network/orbs-counter-playground/types/services"
	"github.com/orbs-network/scribe/log"
)

type NodeLogic interface {
	govnr.ShutdownWaiter
	PublicApi() services.PublicApi
	LastCommittedBlock(ctx context.Context) (primitives.BlockHeight, primitives.TimestampNano, error)
	DumpState() string
}

type nodeLogic struct {
	govnr.TreeSupervisor
	publicApi        services.PublicApi
	blockStorage     services.BlockStorage
	statePersistence stateStorageAdapter.StatePersistence
}

func NewNodeLogic(
	ctx context.Context,
	blockPersistence blockStorageAdapter.BlockPersistence,
	statePersistence stateStorageAdapter.StatePersistence,
	stateBlockHeightReporter stateStorageAdapter.BlockHeightReporter,
	logger log.Logger,
	metricRegistry metric.Registry,
	nodeConfig config.NodeConfig,
) NodeLogic {

	processor := native.NewNativeProcessor(repository.Contracts, logger, metricRegistry)

	stateStorageService := statestorage.NewStateStorage(nodeConfig, statePersistence, stateBlockHeightReporter, logger)
	blockStorageService := blockstorage.NewBlockStorage(blockPersistence, logger, metricRegistry)
	virtualMachineService := virtualmachine.NewVirtualMachine(nodeConfig, stateStorageService, processor, logger, metricRegistry)
	transactionPoolService := transactionpool.NewTransactionPool(ctx, nodeConfig, virtualMachineService, stateStorageService, blockStorageService, logger, metricRegistry)
	publicApiService := publicapi.NewPublicApi(nodeConfig, transactionPoolService, virtualMachineService, logger, metricRegistry)

	n := &nodeLogic{
		publicApi:        publicApiService,
		blockStorage:     blockStorageService,
		statePersistence: statePersistence,
	}

	n.Supervise(transactionPoolService)
	n.Supervise(metricRegistry.ReportEvery(ctx, nodeConfig.MetricsReportInterval(), logger))

	return n
}

func (n *nodeLogic) PublicApi() services.PublicApi {
	return n.publicApi
}

func (n *nodeLogic) LastCommittedBlock(ctx context.Context) (primitives.BlockHeight, primitives.TimestampNano, error) {
	out, err := n.blockStorage.GetLastCommittedBlockHeight(ctx, &services.GetLastCommittedBlockHeightInput{})
	if err != nil {
		return 0, 0, err
	}
	return out.LastCommittedBlockHeight, out.LastCommittedBlockTimestamp, nil
}

func (n *nodeLogic) DumpState() string {
	return n.statePersistence.Dump()
}
