// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package memory

import (
	"github.com/orbs-network/orbs-counter-playground/instrumentation/metric"
	"github.com/orbs-network/orbs-counter-playground/services/statestorage/adapter"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestWriteThenReadRecord(t *testing.T) {
	registry := metric.NewRegistry()
	persistence := NewStatePersistence(registry)

	err := persistence.Write(1, 100, adapter.ChainState{"counter": {"num": []byte{0x01}}})
	require.NoError(t, err)

	value, found, err := persistence.Read("counter", "num")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, []byte{0x01}, value)

	height, ts, err := persistence.ReadMetadata()
	require.NoError(t, err)
	require.EqualValues(t, 1, height)
	require.EqualValues(t, 100, ts)
}

func TestEmptyValueDeletesRecord(t *testing.T) {
	persistence := NewStatePersistence(metric.NewRegistry())
	require.NoError(t, persistence.Write(1, 1, adapter.ChainState{"counter": {"num": []byte{0x01}}}))
	require.NoError(t, persistence.Write(2, 2, adapter.ChainState{"counter": {"num": []byte{}}}))

	_, found, err := persistence.Read("counter", "num")
	require.NoError(t, err)
	require.False(t, found, "empty value should delete the key")
}

func TestWriteUpdatesSizeGauges(t *testing.T) {
	registry := metric.NewRegistry()
	persistence := NewStatePersistence(registry)

	require.NoError(t, persistence.Write(1, 1, adapter.ChainState{
		"alice": {"a": []byte{1}, "b": []byte{2}},
		"bob":   {"a": []byte{3}},
	}))

	require.EqualValues(t, 3, persistence.size.keys.Value())
	require.EqualValues(t, 2, persistence.size.namespaces.Value())
}

func TestDumpIsSortedAndHexEncoded(t *testing.T) {
	persistence := NewStatePersistence(metric.NewRegistry())
	require.NoError(t, persistence.Write(1, 1, adapter.ChainState{
		"bob":   {"\x02": []byte{0xff}},
		"alice": {"\x01": []byte{0x0a}},
	}))

	require.Equal(t, "{height: 1, data: {alice:{01:0a,},bob:{02:ff,},}}", persistence.Dump())
}

func TestOverwriteAndDeleteKeepSizeGaugesAccurate(t *testing.T) {
	persistence := NewStatePersistence(metric.NewRegistry())
	require.NoError(t, persistence.Write(1, 1, adapter.ChainState{"alice": {"a": []byte{1}, "b": []byte{2}}}))
	require.NoError(t, persistence.Write(2, 2, adapter.ChainState{"alice": {"a": []byte{9}, "b": nil, "c": nil}}))

	require.EqualValues(t, 1, persistence.size.keys.Value())
	require.EqualValues(t, 1, persistence.size.namespaces.Value())

	require.NoError(t, persistence.Write(3, 3, adapter.ChainState{"alice": {"a": []byte{}}}))
	require.EqualValues(t, 0, persistence.size.keys.Value())
	require.EqualValues(t, 0, persistence.size.namespaces.Value())
}
