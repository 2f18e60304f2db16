// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package transactionpool

import (
	"github.com/orbs-network/orbs-counter-playground/crypto/keys"
	"github.com/orbs-network/orbs-counter-playground/instrumentation/logfields"
	"github.com/orbs-network/orbs-counter-playground/types/primitives"
	"github.com/orbs-network/orbs-counter-playground/types/protocol"
	"github.com/orbs-network/scribe/log"
	"time"
)

type validationContext struct {
	protocolVersion      primitives.ProtocolVersion
	expiryWindow         time.Duration
	futureTimestampGrace time.Duration
}

func (s *service) createValidationContext() *validationContext {
	return &validationContext{
		protocolVersion:      s.config.ProtocolVersion(),
		expiryWindow:         s.config.TransactionExpirationWindow(),
		futureTimestampGrace: s.config.TransactionPoolFutureTimestampGraceTimeout(),
	}
}

// signatures and account keys are checked by the virtual machine pre order
func (c *validationContext) validateTransaction(transaction *protocol.SignedTransaction, currentTime time.Time) *ErrTransactionRejected {
	if transaction == nil || transaction.Transaction == nil {
		return &ErrTransactionRejected{TransactionStatus: protocol.TRANSACTION_STATUS_REJECTED_MALFORMED}
	}
	nodeTimestamp := primitives.TimestampNano(currentTime.UnixNano())

	if err := c.validateProtocolVersion(transaction); err != nil {
		return err
	}
	if err := c.validateSignerPublicKey(transaction); err != nil {
		return err
	}
	if err := c.validateTransactionNotExpired(transaction, nodeTimestamp); err != nil {
		return err
	}
	if err := c.validateTransactionNotInFuture(transaction, nodeTimestamp); err != nil {
		return err
	}
	return nil
}

func (c *validationContext) validateProtocolVersion(transaction *protocol.SignedTransaction) *ErrTransactionRejected {
	if transaction.Transaction.ProtocolVersion != c.protocolVersion {
		return &ErrTransactionRejected{protocol.TRANSACTION_STATUS_REJECTED_UNSUPPORTED_VERSION, log.Uint32("protocol-version", uint32(c.protocolVersion)), log.Uint32("protocol-version", uint32(transaction.Transaction.ProtocolVersion))}
	}
	return nil
}

func (c *validationContext) validateSignerPublicKey(transaction *protocol.SignedTransaction) *ErrTransactionRejected {
	if len(transaction.Transaction.SignerPublicKey) != keys.ED25519_PUBLIC_KEY_SIZE_BYTES {
		return &ErrTransactionRejected{protocol.TRANSACTION_STATUS_REJECTED_SIGNATURE_MISMATCH, log.Int("public-key-length", keys.ED25519_PUBLIC_KEY_SIZE_BYTES), log.Int("public-key-length", len(transaction.Transaction.SignerPublicKey))}
	}
	return nil
}

func (c *validationContext) validateTransactionNotExpired(transaction *protocol.SignedTransaction, nodeTimestamp primitives.TimestampNano) *ErrTransactionRejected {
	threshold := nodeTimestamp - primitives.TimestampNano(c.expiryWindow.Nanoseconds())
	if transaction.Transaction.Timestamp < threshold {
		return &ErrTransactionRejected{protocol.TRANSACTION_STATUS_REJECTED_TIMESTAMP_WINDOW_EXCEEDED, logfields.TimestampNano("min-timestamp", threshold), logfields.TimestampNano("tx-timestamp", transaction.Transaction.Timestamp)}
	}
	return nil
}

func (c *validationContext) validateTransactionNotInFuture(transaction *protocol.SignedTransaction, nodeTimestamp primitives.TimestampNano) *ErrTransactionRejected {
	tsWithGrace := nodeTimestamp + primitives.TimestampNano(c.futureTimestampGrace.Nanoseconds())
	if transaction.Transaction.Timestamp > tsWithGrace {
		return &ErrTransactionRejected{protocol.TRANSACTION_STATUS_REJECTED_TIMESTAMP_AHEAD_OF_NODE_TIME, logfields.TimestampNano("max-timestamp", tsWithGrace), logfields.TimestampNano("tx-timestamp", transaction.Transaction.Timestamp)}
	}
	return nil
}
