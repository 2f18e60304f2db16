// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package inmemory

import (
	"context"
	"github.com/orbs-network/govnr"
	"github.com/orbs-network/orbs-counter-playground/bootstrap"
	"github.com/orbs-network/orbs-counter-playground/config"
	"github.com/orbs-network/orbs-counter-playground/instrumentation/metric"
	blockStorageMemory "github.com/orbs-network/orbs-counter-playground/services/blockstorage/adapter/memory"
	stateStorageMemory "github.com/orbs-network/orbs-counter-playground/services/statestorage/adapter/memory"
	"github.com/orbs-network/orbs-counter-playground/synchronization"
	"github.com/orbs-network/orbs-counter-playground/types/primitives"
	"github.com/orbs-network/orbs-counter-playground/types/services"
	"github.com/orbs-network/scribe/log"
)

// Network is an in-process simulator without the http layer, used by tests and embedded tooling
type Network struct {
	govnr.TreeSupervisor
	Logger           log.Logger
	MetricRegistry   metric.Registry
	StatePersistence *stateStorageMemory.InMemoryStatePersistence
	BlockPersistence *blockStorageMemory.InMemoryBlockPersistence
	StateTracker     *synchronization.BlockTracker

	nodeLogic bootstrap.NodeLogic
}

func NewNetwork(ctx context.Context, logger log.Logger, cfg config.NodeConfig) *Network {
	metricRegistry := metric.NewRegistry()

	network := &Network{
		Logger:           logger,
		MetricRegistry:   metricRegistry,
		StatePersistence: stateStorageMemory.NewStatePersistence(metricRegistry),
		BlockPersistence: blockStorageMemory.NewBlockPersistence(logger, metricRegistry),
		StateTracker:     synchronization.NewBlockTracker(0, uint64(cfg.BlockTrackerGraceDistance())),
	}

	network.nodeLogic = bootstrap.NewNodeLogic(ctx, network.BlockPersistence, network.StatePersistence, network.StateTracker, logger, metricRegistry, cfg)
	network.Supervise(network.nodeLogic)

	return network
}

func (n *Network) PublicApi() services.PublicApi {
	return n.nodeLogic.PublicApi()
}

func (n *Network) LastCommittedBlockHeight(ctx context.Context) primitives.BlockHeight {
	height, _, err := n.nodeLogic.LastCommittedBlock(ctx)
	if err != nil {
		n.Logger.Error("failed reading last committed block", log.Error(err))
		return 0
	}
	return height
}

func (n *Network) WaitForStateHeight(ctx context.Context, height primitives.BlockHeight) error {
	return n.StateTracker.WaitForBlock(ctx, height)
}

func (n *Network) DumpState() string {
	return n.nodeLogic.DumpState()
}
