// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package gammacli

import (
	"github.com/orbs-network/orbs-counter-playground/types/protocol"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestParseArgumentsKeepsObjectOrderAsNamedArguments(t *testing.T) {
	args, err := ParseArguments(`{"account_id": "counter1", "amount": 17, "delta": -3}`)
	require.NoError(t, err)
	require.Len(t, args, 3)

	require.Equal(t, "account_id", args[0].Name)
	require.True(t, args[0].IsTypeStringValue())
	require.Equal(t, "counter1", args[0].StringValue)

	require.Equal(t, "amount", args[1].Name)
	require.True(t, args[1].IsTypeInt64Value())
	require.EqualValues(t, 17, args[1].Int64Value)

	require.EqualValues(t, -3, args[2].Int64Value)
	require.True(t, args.AllNamed())
}

func TestParseArgumentsFromArrayArePositional(t *testing.T) {
	args, err := ParseArguments(`["counter1", 5]`)
	require.NoError(t, err)
	require.Equal(t, []interface{}{"counter1", int64(5)}, args.Natives())
	require.Empty(t, args[0].Name)
}

func TestParseArgumentsAllowsNoArguments(t *testing.T) {
	for _, raw := range []string{"", "  ", "{}", "[]"} {
		args, err := ParseArguments(raw)
		require.NoError(t, err, "input %q", raw)
		require.Equal(t, protocol.ArgumentArray{}, args, "input %q", raw)
	}
}

func TestParseArgumentsRejectsUnsupportedInput(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `{account_id: counter1}`},
		{"scalar", `17`},
		{"fraction", `{"amount": 1.5}`},
		{"too big", `[18446744073709551616]`},
		{"bool", `{"flag": true}`},
		{"nested", `{"inner": {"a": 1}}`},
		{"trailing data", `{"a": 1} {"b": 2}`},
		{"unterminated", `{"a": 1`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseArguments(tt.raw)
			require.Error(t, err)
		})
	}
}
