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
	"sync"
)

type committedTransaction struct {
	receipt        *protocol.TransactionReceipt
	blockHeight    primitives.BlockHeight
	blockTimestamp primitives.TimestampNano
	txTimestamp    primitives.TimestampNano
}

// committedTxPool remembers receipts of recent transactions, for duplicate detection and status queries
type committedTxPool struct {
	sync.RWMutex
	byHash map[string]*committedTransaction
	size   *metric.Gauge
}

func NewCommittedPool(metricFactory metric.Factory) *committedTxPool {
	return &committedTxPool{
		byHash: make(map[string]*committedTransaction),
		size:   metricFactory.NewGauge("TransactionPool.CommittedPool.TransactionCount"),
	}
}

func (p *committedTxPool) add(receipt *protocol.TransactionReceipt, blockHeight primitives.BlockHeight, blockTimestamp primitives.TimestampNano, txTimestamp primitives.TimestampNano) {
	p.Lock()
	defer p.Unlock()

	p.byHash[receipt.Txhash.KeyForMap()] = &committedTransaction{receipt, blockHeight, blockTimestamp, txTimestamp}
	p.size.Update(int64(len(p.byHash)))
}

// get returns nil for hashes that were never committed or already expired
func (p *committedTxPool) get(txHash primitives.Sha256) *committedTransaction {
	p.RLock()
	defer p.RUnlock()
	return p.byHash[txHash.KeyForMap()]
}

func (p *committedTxPool) has(txHash primitives.Sha256) bool {
	return p.get(txHash) != nil
}

// transactions older than the expiry window are rejected before reaching the pool, so their receipts can go
func (p *committedTxPool) clearTransactionsOlderThan(threshold primitives.TimestampNano) (cleared int) {
	p.Lock()
	defer p.Unlock()

	for hash, tx := range p.byHash {
		if tx.txTimestamp < threshold {
			delete(p.byHash, hash)
			cleared++
		}
	}
	p.size.Update(int64(len(p.byHash)))
	return
}
