// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package builders

import (
	"github.com/orbs-network/orbs-counter-playground/crypto/hash"
	"github.com/orbs-network/orbs-counter-playground/crypto/keys"
	"github.com/orbs-network/orbs-counter-playground/types/primitives"
)

// KeyPairFor returns the same key pair for an account name every time
func KeyPairFor(accountId primitives.AccountId) *keys.Ed25519KeyPair {
	keyPair, err := keys.Ed25519KeyPairFromSeed(hash.CalcSha256([]byte(accountId)))
	if err != nil {
		panic(err)
	}
	return keyPair
}
