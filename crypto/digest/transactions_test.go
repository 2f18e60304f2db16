// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package digest

import (
	"encoding/binary"
	"github.com/orbs-network/orbs-counter-playground/crypto/hash"
	"github.com/orbs-network/orbs-counter-playground/types/primitives"
	"github.com/orbs-network/orbs-counter-playground/types/protocol"
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

func getTransaction() *protocol.Transaction {
	args, _ := protocol.ArgumentArrayFromNatives("bob.testnet")
	return &protocol.Transaction{
		ProtocolVersion: 1,
		Timestamp:       primitives.TimestampNano(time.Date(2018, 01, 01, 0, 0, 0, 0, time.UTC).UnixNano()),
		Signer:          "alice.testnet",
		SignerPublicKey: make([]byte, 32),
		Receiver:        "donation.testnet",
		Action:          protocol.TRANSACTION_ACTION_FUNCTION_CALL,
		MethodName:      "increment_my_number",
		InputArguments:  args,
	}
}

func TestCalcTxHashIsDeterministic(t *testing.T) {
	h1 := CalcTxHash(getTransaction())
	h2 := CalcTxHash(getTransaction())
	require.Len(t, h1, hash.SHA256_HASH_SIZE_BYTES)
	require.True(t, h1.Equal(h2), "same transaction should hash the same")
}

func TestCalcTxHashChangesWithEveryField(t *testing.T) {
	base := CalcTxHash(getTransaction())

	mutations := map[string]func(tx *protocol.Transaction){
		"timestamp": func(tx *protocol.Transaction) { tx.Timestamp++ },
		"signer":    func(tx *protocol.Transaction) { tx.Signer = "carol.testnet" },
		"receiver":  func(tx *protocol.Transaction) { tx.Receiver = "counter.testnet" },
		"method":    func(tx *protocol.Transaction) { tx.MethodName = "increment" },
		"action":    func(tx *protocol.Transaction) { tx.Action = protocol.TRANSACTION_ACTION_DEPLOY_CONTRACT },
		"arguments": func(tx *protocol.Transaction) { tx.InputArguments[0].StringValue = "eve.testnet" },
		"code":      func(tx *protocol.Transaction) { tx.Code = []byte("{}") },
	}
	for field, mutate := range mutations {
		tx := getTransaction()
		mutate(tx)
		require.False(t, base.Equal(CalcTxHash(tx)), "changing %s should change the hash", field)
	}
}

func TestCalcTxId(t *testing.T) {
	tx := getTransaction()
	txId := CalcTxId(tx)

	expectedId := make([]byte, 8)
	binary.LittleEndian.PutUint64(expectedId, uint64(tx.Timestamp))
	expectedId = append(expectedId, CalcTxHash(tx)...)

	require.Equal(t, expectedId, txId)
}

func TestCalcSignerAddressRejectsShortKey(t *testing.T) {
	_, err := CalcSignerAddressOfEd25519PublicKey([]byte{0x01})
	require.Error(t, err)

	address, err := CalcSignerAddressOfEd25519PublicKey(make([]byte, 32))
	require.NoError(t, err)
	require.Len(t, address, SIGNER_ADDRESS_SIZE_BYTES)
}
