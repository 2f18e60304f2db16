// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package hash

import (
	"encoding/hex"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestKnownDigestsOfSameInput(t *testing.T) {
	input := []byte("testing")

	tests := []struct {
		name     string
		digest   func() []byte
		size     int
		expected string
	}{
		{"sha256", func() []byte { return CalcSha256(input) }, SHA256_HASH_SIZE_BYTES, "cf80cd8aed482d5d1527d7dc72fceff84e6326592848447d2dc0b0e87dfc9a90"},
		{"sha256 in chunks", func() []byte { return CalcSha256(input[:3], input[3:]) }, SHA256_HASH_SIZE_BYTES, "cf80cd8aed482d5d1527d7dc72fceff84e6326592848447d2dc0b0e87dfc9a90"},
		{"ripemd160 of sha256", func() []byte { return CalcRipemd160Sha256(input) }, RIPEMD160_HASH_SIZE_BYTES, "1acb19a469206161ed7e5ed9feb996a6e24be441"},
		{"keccak256", func() []byte { return CalcKeccak256(input) }, KECCAK256_HASH_SIZE_BYTES, "5f16f4c7f149ac4f9510d9cf8cf384038ad348b3bcdc01915f95de12df9d1b02"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := tt.digest()
			require.Len(t, h, tt.size)
			require.Equal(t, tt.expected, hexOf(h))
		})
	}
}

func TestSha256OfNothingIsTheEmptyDigest(t *testing.T) {
	require.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", hexOf(CalcSha256()))
}

func hexOf(b []byte) string {
	return hex.EncodeToString(b)
}
