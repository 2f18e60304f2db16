// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package bootstrap

import (
	"context"
	"github.com/orbs-network/govnr"
	"github.com/orbs-network/orbs-counter-playground/bootstrap/httpserver"
	"github.com/orbs-network/orbs-counter-playground/config"
	"github.com/orbs-network/orbs-counter-playground/instrumentation/metric"
	blockStorageMemory "github.com/orbs-network/orbs-counter-playground/services/blockstorage/adapter/memory"
	stateStorageMemory "github.com/orbs-network/orbs-counter-playground/services/statestorage/adapter/memory"
	"github.com/orbs-network/orbs-counter-playground/synchronization"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
)

// Node is a single process contract simulator serving its public api over http
type Node struct {
	govnr.TreeSupervisor
	logic      NodeLogic
	httpServer *httpserver.HttpServer
	logger     log.Logger
	cancelFunc context.CancelFunc
}

func NewNode(nodeConfig config.NodeConfig, logger log.Logger) (*Node, error) {
	if err := config.NewValidator(logger).Validate(nodeConfig); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	metricRegistry := metric.NewRegistry()

	logic := NewNodeLogic(ctx,
		blockStorageMemory.NewBlockPersistence(logger, metricRegistry),
		stateStorageMemory.NewStatePersistence(metricRegistry),
		synchronization.NopHeightReporter{},
		logger,
		metricRegistry,
		nodeConfig)

	httpServer, err := httpserver.NewHttpServer(nodeConfig, logger, logic.PublicApi(), logic, metricRegistry)
	if err != nil {
		cancel()
		return nil, errors.Wrap(err, "failed starting node")
	}

	n := &Node{
		logic:      logic,
		httpServer: httpServer,
		logger:     logger,
		cancelFunc: cancel,
	}
	n.Supervise(logic)
	n.Supervise(httpServer)

	logger.Info("node started", log.Int("http-port", httpServer.Port()), log.Stringable("version", config.GetVersion()))

	return n, nil
}

func (n *Node) Port() int {
	return n.httpServer.Port()
}

func (n *Node) GracefulShutdown(shutdownContext context.Context) {
	n.logger.Info("shutting down node")
	n.cancelFunc()
	n.httpServer.GracefulShutdown(shutdownContext)
}

var _ synchronization.GracefulShutdowner = &Node{}
