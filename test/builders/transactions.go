// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package builders

import (
	"github.com/orbs-network/orbs-counter-playground/crypto/digest"
	"github.com/orbs-network/orbs-counter-playground/crypto/keys"
	"github.com/orbs-network/orbs-counter-playground/crypto/signature"
	"github.com/orbs-network/orbs-counter-playground/types/primitives"
	"github.com/orbs-network/orbs-counter-playground/types/protocol"
	"time"
)

const DEFAULT_SIGNER = primitives.AccountId("user1")

type transaction struct {
	signer           *keys.Ed25519KeyPair
	invalidSignature bool
	tx               *protocol.Transaction
}

// Transaction starts from a call of counter.increment signed by DEFAULT_SIGNER
func Transaction() *transaction {
	keyPair := KeyPairFor(DEFAULT_SIGNER)
	return &transaction{
		signer: keyPair,
		tx: &protocol.Transaction{
			ProtocolVersion: 1,
			Timestamp:       primitives.TimestampNano(time.Now().UnixNano()),
			Signer:          DEFAULT_SIGNER,
			SignerPublicKey: keyPair.PublicKey(),
			Receiver:        "counter",
			Action:          protocol.TRANSACTION_ACTION_FUNCTION_CALL,
			MethodName:      "increment",
			InputArguments:  protocol.ArgumentArray{},
		},
	}
}

func (t *transaction) Build() *protocol.SignedTransaction {
	if t.tx.Action == protocol.TRANSACTION_ACTION_DEPLOY_CONTRACT && t.tx.Receiver == "" {
		t.tx.Receiver = t.tx.Signer
	}
	sig, err := signature.SignEd25519(t.signer.PrivateKey(), digest.CalcTxHash(t.tx))
	if err != nil {
		panic(err)
	}
	if t.invalidSignature {
		sig[0] ^= 0xff
	}
	return &protocol.SignedTransaction{
		Transaction: t.tx,
		Signature:   sig,
	}
}

func (t *transaction) WithSigner(accountId primitives.AccountId) *transaction {
	return t.WithSignerKeyPair(accountId, KeyPairFor(accountId))
}

func (t *transaction) WithSignerKeyPair(accountId primitives.AccountId, keyPair *keys.Ed25519KeyPair) *transaction {
	t.tx.Signer = accountId
	t.tx.SignerPublicKey = keyPair.PublicKey()
	t.signer = keyPair
	return t
}

func (t *transaction) WithInvalidSignature() *transaction {
	t.invalidSignature = true
	return t
}

func (t *transaction) WithMethod(receiver primitives.AccountId, methodName primitives.MethodName) *transaction {
	t.tx.Action = protocol.TRANSACTION_ACTION_FUNCTION_CALL
	t.tx.Receiver = receiver
	t.tx.MethodName = methodName
	t.tx.Code = nil
	return t
}

func (t *transaction) WithArgs(args ...interface{}) *transaction {
	t.tx.InputArguments = Arguments(args...)
	return t
}

func (t *transaction) WithNamedArgs(args ...*protocol.Argument) *transaction {
	t.tx.InputArguments = args
	return t
}

// WithDeploy deploys onto the signer's own account
func (t *transaction) WithDeploy(code []byte) *transaction {
	t.tx.Action = protocol.TRANSACTION_ACTION_DEPLOY_CONTRACT
	t.tx.Receiver = ""
	t.tx.MethodName = ""
	t.tx.InputArguments = nil
	t.tx.Code = code
	return t
}

func (t *transaction) WithReceiver(receiver primitives.AccountId) *transaction {
	t.tx.Receiver = receiver
	return t
}

func (t *transaction) WithTimestamp(timestamp time.Time) *transaction {
	t.tx.Timestamp = primitives.TimestampNano(timestamp.UnixNano())
	return t
}

func (t *transaction) WithProtocolVersion(version primitives.ProtocolVersion) *transaction {
	t.tx.ProtocolVersion = version
	return t
}

func Query(receiver primitives.AccountId, methodName primitives.MethodName, args ...interface{}) *protocol.Query {
	return &protocol.Query{
		ProtocolVersion: 1,
		Timestamp:       primitives.TimestampNano(time.Now().UnixNano()),
		Signer:          DEFAULT_SIGNER,
		Receiver:        receiver,
		MethodName:      methodName,
		InputArguments:  Arguments(args...),
	}
}
