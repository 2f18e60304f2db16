// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

// Package encoding formats binary values for humans. Hex output carries a mixed case checksum
// in the style of EIP-55, computed over sha256 of the data rather than keccak.
package encoding

import (
	"encoding/hex"
	"github.com/orbs-network/orbs-counter-playground/crypto/hash"
	"github.com/orbs-network/orbs-counter-playground/types/primitives"
	"github.com/pkg/errors"
	"strings"
)

var ErrInvalidChecksum = errors.New("invalid checksum")

func EncodeHex(data []byte) string {
	return "0x" + string(applyChecksum([]byte(hex.EncodeToString(data)), hash.CalcSha256(data)))
}

// DecodeHex accepts an optional 0x prefix. Uniform case input skips the checksum; on a checksum
// mismatch the decoded data is still returned together with ErrInvalidChecksum.
func DecodeHex(str string) ([]byte, error) {
	str = strings.TrimPrefix(str, "0x")

	data, err := hex.DecodeString(str)
	if err != nil {
		return nil, errors.Wrap(err, "invalid hex string")
	}

	if strings.ToLower(str) == str || strings.ToUpper(str) == str {
		return data, nil
	}
	if EncodeHex(data)[2:] != str {
		return data, ErrInvalidChecksum
	}
	return data, nil
}

// DecodeSha256 parses a transaction or block hash typed by a user
func DecodeSha256(str string) (primitives.Sha256, error) {
	data, err := DecodeHex(strings.TrimSpace(str))
	if err != nil {
		return nil, err
	}
	if len(data) != hash.SHA256_HASH_SIZE_BYTES {
		return nil, errors.Errorf("hash must be %d bytes, got %d", hash.SHA256_HASH_SIZE_BYTES, len(data))
	}
	return primitives.Sha256(data), nil
}

// letters become upper case where the matching checksum nibble is 8 or above
func applyChecksum(lowerHex []byte, checksum []byte) []byte {
	for i, c := range lowerHex {
		if c < 'a' {
			continue
		}
		nibble := checksum[(i/2)%len(checksum)]
		if i%2 == 0 {
			nibble >>= 4
		}
		if nibble&0xf > 7 {
			lowerHex[i] = c - 'a' + 'A'
		}
	}
	return lowerHex
}
