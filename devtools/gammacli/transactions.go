// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package gammacli

import (
	"github.com/orbs-network/orbs-counter-playground/crypto/digest"
	"github.com/orbs-network/orbs-counter-playground/crypto/signature"
	"github.com/orbs-network/orbs-counter-playground/types/primitives"
	"github.com/orbs-network/orbs-counter-playground/types/protocol"
	"github.com/pkg/errors"
	"time"
)

const PROTOCOL_VERSION = primitives.ProtocolVersion(1)

// DeployTransaction deploys code onto the signer's own account
func DeployTransaction(keyFile *KeyFile, code []byte) (*protocol.SignedTransaction, error) {
	return sign(keyFile, &protocol.Transaction{
		ProtocolVersion: PROTOCOL_VERSION,
		Timestamp:       now(),
		Signer:          keyFile.AccountId,
		SignerPublicKey: keyFile.PublicKey,
		Receiver:        keyFile.AccountId,
		Action:          protocol.TRANSACTION_ACTION_DEPLOY_CONTRACT,
		Code:            code,
	})
}

func CallTransaction(keyFile *KeyFile, receiver primitives.AccountId, methodName primitives.MethodName, args protocol.ArgumentArray) (*protocol.SignedTransaction, error) {
	return sign(keyFile, &protocol.Transaction{
		ProtocolVersion: PROTOCOL_VERSION,
		Timestamp:       now(),
		Signer:          keyFile.AccountId,
		SignerPublicKey: keyFile.PublicKey,
		Receiver:        receiver,
		Action:          protocol.TRANSACTION_ACTION_FUNCTION_CALL,
		MethodName:      methodName,
		InputArguments:  args,
	})
}

func Query(signer primitives.AccountId, receiver primitives.AccountId, methodName primitives.MethodName, args protocol.ArgumentArray) *protocol.Query {
	return &protocol.Query{
		ProtocolVersion: PROTOCOL_VERSION,
		Timestamp:       now(),
		Signer:          signer,
		Receiver:        receiver,
		MethodName:      methodName,
		InputArguments:  args,
	}
}

func sign(keyFile *KeyFile, tx *protocol.Transaction) (*protocol.SignedTransaction, error) {
	sig, err := signature.SignEd25519(keyFile.PrivateKey, digest.CalcTxHash(tx))
	if err != nil {
		return nil, errors.Wrapf(err, "failed signing transaction of %s", keyFile.AccountId)
	}
	return &protocol.SignedTransaction{Transaction: tx, Signature: sig}, nil
}

func now() primitives.TimestampNano {
	return primitives.TimestampNano(time.Now().UnixNano())
}
