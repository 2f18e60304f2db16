// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package digest

import (
	"github.com/orbs-network/orbs-counter-playground/crypto/hash"
	"github.com/orbs-network/orbs-counter-playground/crypto/keys"
	"github.com/orbs-network/orbs-counter-playground/types/primitives"
	"github.com/pkg/errors"
)

const (
	SIGNER_ADDRESS_SIZE_BYTES       = 20
	SIGNER_ADDRESS_KECCAK256_OFFSET = hash.KECCAK256_HASH_SIZE_BYTES - SIGNER_ADDRESS_SIZE_BYTES
)

// CalcSignerAddressOfEd25519PublicKey is the 20 byte address shown to users for a signing key.
func CalcSignerAddressOfEd25519PublicKey(publicKey primitives.Ed25519PublicKey) (primitives.Keccak256, error) {
	if len(publicKey) != keys.ED25519_PUBLIC_KEY_SIZE_BYTES {
		return nil, errors.New("transaction is not signed by a valid signer")
	}
	return hash.CalcKeccak256(publicKey)[SIGNER_ADDRESS_KECCAK256_OFFSET:], nil
}
