// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package transactionpool

import (
	"context"
	"github.com/orbs-network/orbs-counter-playground/types/protocol"
	"github.com/orbs-network/orbs-counter-playground/types/services"
	"github.com/pkg/errors"
)

func (s *service) GetCommittedTransactionReceipt(ctx context.Context, input *services.GetCommittedTransactionReceiptInput) (*services.GetCommittedTransactionReceiptOutput, error) {
	if len(input.Txhash) == 0 {
		return nil, errors.New("missing transaction hash")
	}

	if tx := s.committedPool.get(input.Txhash); tx != nil {
		return &services.GetCommittedTransactionReceiptOutput{
			TransactionStatus:  protocol.TRANSACTION_STATUS_COMMITTED,
			TransactionReceipt: tx.receipt,
			BlockHeight:        tx.blockHeight,
			BlockTimestamp:     tx.blockTimestamp,
		}, nil
	}

	// receipts cleared from the pool are still in the blocks
	output, err := s.blockStorage.GetTransactionReceipt(ctx, &services.GetTransactionReceiptInput{Txhash: input.Txhash})
	if err != nil {
		return nil, err
	}

	status := protocol.TRANSACTION_STATUS_NO_RECORD_FOUND
	if output.TransactionReceipt != nil {
		status = protocol.TRANSACTION_STATUS_COMMITTED
	}
	return &services.GetCommittedTransactionReceiptOutput{
		TransactionStatus:  status,
		TransactionReceipt: output.TransactionReceipt,
		BlockHeight:        output.BlockHeight,
		BlockTimestamp:     output.BlockTimestamp,
	}, nil
}
