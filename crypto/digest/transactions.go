// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package digest

import (
	"github.com/orbs-network/membuffers/go"
	"github.com/orbs-network/orbs-counter-playground/crypto/hash"
	"github.com/orbs-network/orbs-counter-playground/types/primitives"
	"github.com/orbs-network/orbs-counter-playground/types/protocol"
)

func CalcTxHash(transaction *protocol.Transaction) primitives.Sha256 {
	return hash.CalcSha256(encodeTransaction(transaction))
}

func CalcTxId(transaction *protocol.Transaction) []byte {
	result := make([]byte, 8+32)
	membuffers.WriteUint64(result, uint64(transaction.Timestamp))
	copy(result[8:], CalcTxHash(transaction))

	return result
}

func CalcQueryHash(query *protocol.Query) primitives.Sha256 {
	return hash.CalcSha256(encodeQuery(query))
}

func CalcBlockHash(block *protocol.Block) primitives.Sha256 {
	w := &canonicalWriter{}
	w.uint64(uint64(block.BlockHeight))
	w.uint64(uint64(block.Timestamp))
	w.bytes(block.PrevBlockHash)
	for _, tx := range block.SignedTransactions {
		w.bytes(CalcTxHash(tx.Transaction))
	}
	return hash.CalcSha256(w.buf)
}
