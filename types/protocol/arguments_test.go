// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package protocol

import (
	"encoding/json"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestArgumentArrayFromNatives(t *testing.T) {
	args, err := ArgumentArrayFromNatives(uint32(1), uint64(2), int64(-3), 4, "five", []byte{0x06})
	require.NoError(t, err)
	require.Len(t, args, 6)

	require.True(t, args[0].IsTypeUint32Value())
	require.True(t, args[1].IsTypeUint64Value())
	require.True(t, args[2].IsTypeInt64Value())
	require.True(t, args[3].IsTypeInt64Value(), "plain int is carried as int64")
	require.True(t, args[4].IsTypeStringValue())
	require.True(t, args[5].IsTypeBytesValue())

	require.Equal(t, []interface{}{uint32(1), uint64(2), int64(-3), int64(4), "five", []byte{0x06}}, args.Natives())
}

func TestArgumentArrayFromNativesFailsOnUnsupportedType(t *testing.T) {
	_, err := ArgumentArrayFromNatives("ok", 3.14)
	require.Error(t, err)
	require.Contains(t, err.Error(), "argument 1")
}

func TestArgumentArrayAllNamed(t *testing.T) {
	require.False(t, ArgumentArray{}.AllNamed(), "empty array is not named")

	named, _ := ArgumentFromNative("account_id", "bob")
	unnamed, _ := ArgumentFromNative("", "alice")
	require.True(t, ArgumentArray{named}.AllNamed())
	require.False(t, ArgumentArray{named, unnamed}.AllNamed())
}

func TestArgumentString(t *testing.T) {
	arg, _ := ArgumentFromNative("num", int64(-1))
	require.Equal(t, "num:int64(-1)", arg.String())

	arg, _ = ArgumentFromNative("", []byte{0xab, 0xcd})
	require.Equal(t, "bytes(abcd)", arg.String())
}

func TestArgumentTypeEncodesAsTextInJson(t *testing.T) {
	arg, _ := ArgumentFromNative("", "hello")
	encoded, err := json.Marshal(arg)
	require.NoError(t, err)
	require.Contains(t, string(encoded), `"type":"string"`)

	var decoded Argument
	require.NoError(t, json.Unmarshal(encoded, &decoded))
	require.Equal(t, *arg, decoded)
}

func TestUnknownEnumNameIsRejected(t *testing.T) {
	var result ExecutionResult
	require.Error(t, result.UnmarshalText([]byte("NOT_A_RESULT")))

	var status TransactionStatus
	require.NoError(t, status.UnmarshalText([]byte("COMMITTED")))
	require.Equal(t, TRANSACTION_STATUS_COMMITTED, status)
}
