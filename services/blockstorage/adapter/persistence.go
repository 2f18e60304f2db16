// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package adapter

import (
	"github.com/orbs-network/orbs-counter-playground/types/primitives"
	"github.com/orbs-network/orbs-counter-playground/types/protocol"
)

type BlockPersistence interface {
	WriteNextBlock(block *protocol.Block) (bool, primitives.BlockHeight, error)
	GetLastBlock() (*protocol.Block, error)
	GetLastBlockHeight() (primitives.BlockHeight, error)
	GetBlock(height primitives.BlockHeight) (*protocol.Block, error)
	GetReceiptByTxHash(txHash primitives.Sha256) (*protocol.TransactionReceipt, *protocol.Block, error)
}
