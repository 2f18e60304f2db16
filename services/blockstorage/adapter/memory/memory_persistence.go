// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package memory

import (
	"github.com/orbs-network/orbs-counter-playground/instrumentation/metric"
	"github.com/orbs-network/orbs-counter-playground/types/primitives"
	"github.com/orbs-network/orbs-counter-playground/types/protocol"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
	"sync"
)

type memMetrics struct {
	numberOfTransactions *metric.Gauge
}

type txLocation struct {
	height primitives.BlockHeight
	index  int
}

type aChainOfBlocks struct {
	sync.RWMutex
	blocks  []*protocol.Block
	txIndex map[string]txLocation
}

type InMemoryBlockPersistence struct {
	blockChain aChainOfBlocks
	logger     log.Logger
	metrics    *memMetrics
}

func NewBlockPersistence(parent log.Logger, metricFactory metric.Factory) *InMemoryBlockPersistence {
	return &InMemoryBlockPersistence{
		logger:  parent.WithTags(log.String("adapter", "block-storage")),
		metrics: &memMetrics{numberOfTransactions: metricFactory.NewGauge("BlockStorage.InMemoryBlockPersistence.Transactions.Count")},
		blockChain: aChainOfBlocks{
			txIndex: make(map[string]txLocation),
		},
	}
}

func getBlockHeight(block *protocol.Block) primitives.BlockHeight {
	if block == nil {
		return 0
	}
	return block.BlockHeight
}

func (bp *InMemoryBlockPersistence) lastBlock() *protocol.Block {
	if len(bp.blockChain.blocks) == 0 {
		return nil
	}
	return bp.blockChain.blocks[len(bp.blockChain.blocks)-1]
}

func (bp *InMemoryBlockPersistence) GetLastBlock() (*protocol.Block, error) {
	bp.blockChain.RLock()
	defer bp.blockChain.RUnlock()

	return bp.lastBlock(), nil
}

func (bp *InMemoryBlockPersistence) GetLastBlockHeight() (primitives.BlockHeight, error) {
	bp.blockChain.RLock()
	defer bp.blockChain.RUnlock()

	return getBlockHeight(bp.lastBlock()), nil
}

// WriteNextBlock only accepts the block directly after the current top
func (bp *InMemoryBlockPersistence) WriteNextBlock(block *protocol.Block) (bool, primitives.BlockHeight, error) {
	bp.blockChain.Lock()
	defer bp.blockChain.Unlock()

	topHeight := getBlockHeight(bp.lastBlock())
	if block.BlockHeight != topHeight+1 {
		bp.logger.Info("trying to write a block with height which does not match current storage state", log.Uint64("block-height", uint64(block.BlockHeight)), log.Uint64("top-height", uint64(topHeight)))
		return false, topHeight, nil
	}

	if len(block.SignedTransactions) != len(block.Receipts) {
		return false, topHeight, errors.Errorf("block %d has %d transactions but %d receipts", block.BlockHeight, len(block.SignedTransactions), len(block.Receipts))
	}

	bp.blockChain.blocks = append(bp.blockChain.blocks, block)
	for i, receipt := range block.Receipts {
		bp.blockChain.txIndex[receipt.Txhash.KeyForMap()] = txLocation{height: block.BlockHeight, index: i}
	}
	bp.metrics.numberOfTransactions.Add(int64(len(block.SignedTransactions)))

	return true, block.BlockHeight, nil
}

func (bp *InMemoryBlockPersistence) GetBlock(height primitives.BlockHeight) (*protocol.Block, error) {
	bp.blockChain.RLock()
	defer bp.blockChain.RUnlock()

	if height == 0 || int(height) > len(bp.blockChain.blocks) {
		return nil, errors.Errorf("block with height %d not found", height)
	}
	return bp.blockChain.blocks[height-1], nil
}

// GetReceiptByTxHash returns nil values when the transaction is not in any block
func (bp *InMemoryBlockPersistence) GetReceiptByTxHash(txHash primitives.Sha256) (*protocol.TransactionReceipt, *protocol.Block, error) {
	bp.blockChain.RLock()
	defer bp.blockChain.RUnlock()

	location, found := bp.blockChain.txIndex[txHash.KeyForMap()]
	if !found {
		return nil, nil, nil
	}

	block := bp.blockChain.blocks[location.height-1]
	return block.Receipts[location.index], block, nil
}
