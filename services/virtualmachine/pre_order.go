// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package virtualmachine

import (
	"context"
	"github.com/orbs-network/orbs-counter-playground/crypto/digest"
	"github.com/orbs-network/orbs-counter-playground/crypto/signature"
	"github.com/orbs-network/orbs-counter-playground/types/primitives"
	"github.com/orbs-network/orbs-counter-playground/types/protocol"
	"github.com/orbs-network/scribe/log"
)

func (s *service) verifyTransactionsWellFormed(signedTransactions []*protocol.SignedTransaction, statuses []protocol.TransactionStatus) {
	for i, signedTransaction := range signedTransactions {
		if isTransactionWellFormed(signedTransaction) {
			statuses[i] = protocol.TRANSACTION_STATUS_PRE_ORDER_VALID
		} else {
			statuses[i] = protocol.TRANSACTION_STATUS_REJECTED_MALFORMED
		}
	}
}

func isTransactionWellFormed(signedTransaction *protocol.SignedTransaction) bool {
	if signedTransaction == nil || signedTransaction.Transaction == nil {
		return false
	}
	tx := signedTransaction.Transaction
	if tx.Signer == "" || tx.Receiver == "" {
		return false
	}
	if isSystemAccount(tx.Signer) || isSystemAccount(tx.Receiver) {
		return false
	}

	switch tx.Action {
	case protocol.TRANSACTION_ACTION_FUNCTION_CALL:
		return tx.MethodName != ""
	case protocol.TRANSACTION_ACTION_DEPLOY_CONTRACT:
		// an account can only deploy onto itself
		return len(tx.Code) > 0 && tx.Receiver == tx.Signer
	default:
		return false
	}
}

func (s *service) verifyTransactionSignatures(signedTransactions []*protocol.SignedTransaction, statuses []protocol.TransactionStatus) {
	for i, signedTransaction := range signedTransactions {
		if statuses[i] != protocol.TRANSACTION_STATUS_PRE_ORDER_VALID {
			continue
		}
		txHash := digest.CalcTxHash(signedTransaction.Transaction)
		if !signature.VerifyEd25519(signedTransaction.Transaction.SignerPublicKey, txHash, signedTransaction.Signature) {
			s.logger.Info("transaction signature is invalid", log.Stringable("transaction", signedTransaction))
			statuses[i] = protocol.TRANSACTION_STATUS_REJECTED_SIGNATURE_MISMATCH
		}
	}
}

func (s *service) verifyRegisteredSigners(ctx context.Context, currentBlockHeight primitives.BlockHeight, signedTransactions []*protocol.SignedTransaction, statuses []protocol.TransactionStatus) error {
	lastCommittedBlockHeight := primitives.BlockHeight(0)
	if currentBlockHeight > 0 {
		lastCommittedBlockHeight = currentBlockHeight - 1
	}

	for i, signedTransaction := range signedTransactions {
		if statuses[i] != protocol.TRANSACTION_STATUS_PRE_ORDER_VALID {
			continue
		}
		tx := signedTransaction.Transaction
		registered, err := s.readCommittedAccountKey(ctx, lastCommittedBlockHeight, tx.Signer)
		if err != nil {
			return err
		}
		if len(registered) > 0 && !registered.Equal(tx.SignerPublicKey) {
			s.logger.Info("transaction signed with a key not bound to the signer", log.Stringable("transaction", signedTransaction))
			statuses[i] = protocol.TRANSACTION_STATUS_REJECTED_SIGNATURE_MISMATCH
		}
	}
	return nil
}
