// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

// Package hash holds the digests used across the node: sha256 for transaction and block hashes,
// ripemd160 over sha256 for state keys and keccak256 for signer addresses.
package hash

import (
	"crypto/sha256"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/orbs-network/orbs-counter-playground/types/primitives"
	"golang.org/x/crypto/ripemd160"
)

const (
	SHA256_HASH_SIZE_BYTES    = 32
	RIPEMD160_HASH_SIZE_BYTES = 20
	KECCAK256_HASH_SIZE_BYTES = 32
)

// CalcSha256 hashes the concatenation of all chunks
func CalcSha256(chunks ...[]byte) primitives.Sha256 {
	h := sha256.New()
	for _, chunk := range chunks {
		h.Write(chunk)
	}
	return h.Sum(nil)
}

func CalcRipemd160Sha256(data []byte) primitives.Ripmd160Sha256 {
	inner := sha256.Sum256(data)
	h := ripemd160.New()
	h.Write(inner[:])
	return h.Sum(nil)
}

func CalcKeccak256(data []byte) primitives.Keccak256 {
	return crypto.Keccak256(data)
}
