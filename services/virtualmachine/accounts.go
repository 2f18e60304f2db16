// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package virtualmachine

import (
	"bytes"
	"context"
	"github.com/orbs-network/orbs-counter-playground/crypto/hash"
	"github.com/orbs-network/orbs-counter-playground/types/primitives"
	"github.com/orbs-network/orbs-counter-playground/types/services"
	"github.com/pkg/errors"
)

// the first public key an account signs with is bound to it for good
const ACCOUNTS_NAMESPACE = primitives.AccountId("_Accounts")

func accountKey(accountId primitives.AccountId) primitives.Ripmd160Sha256 {
	return hash.CalcRipemd160Sha256([]byte(accountId))
}

// registration goes straight into the batch so it holds even when the transaction itself fails
func (s *service) registerSigner(ctx context.Context, executionContext *executionContext, signer primitives.AccountId, publicKey primitives.Ed25519PublicKey) error {
	if len(publicKey) == 0 {
		return errors.Errorf("signer %s has no public key", signer)
	}

	key := accountKey(signer)
	registered, found := executionContext.batchTransientState.getValue(ACCOUNTS_NAMESPACE, key)
	if !found {
		var err error
		registered, err = s.readCommittedAccountKey(ctx, executionContext.lastCommittedBlockHeight, signer)
		if err != nil {
			return err
		}
	}

	if len(registered) == 0 {
		executionContext.batchTransientState.setValue(ACCOUNTS_NAMESPACE, key, publicKey, true)
		return nil
	}
	if !bytes.Equal(registered, publicKey) {
		return errors.Errorf("account %s is bound to a different public key", signer)
	}
	return nil
}

func (s *service) readCommittedAccountKey(ctx context.Context, blockHeight primitives.BlockHeight, accountId primitives.AccountId) (primitives.Ed25519PublicKey, error) {
	output, err := s.stateStorage.ReadKeys(ctx, &services.ReadKeysInput{
		BlockHeight: blockHeight,
		Namespace:   ACCOUNTS_NAMESPACE,
		Keys:        []primitives.Ripmd160Sha256{accountKey(accountId)},
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed reading public key of account %s", accountId)
	}
	if len(output.StateRecords) == 0 {
		return nil, nil
	}
	return output.StateRecords[0].Value, nil
}
