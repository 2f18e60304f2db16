// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package counter

import (
	"github.com/orbs-network/orbs-counter-playground/services/processor/native/testkit"
	"github.com/stretchr/testify/require"
	"math"
	"testing"
)

func newCounter(t *testing.T) (*contract, *testkit.SdkHandler) {
	h := testkit.NewSdkHandler("counter")
	c := h.Contract(CONTRACT).(*contract)
	require.NoError(t, c._init(h.Context()))
	return c, h
}

func requireNum(t *testing.T, c *contract, h *testkit.SdkHandler, expected int64) {
	num, err := c.getNum(h.Context())
	require.NoError(t, err)
	require.EqualValues(t, expected, num)
}

func TestFreshCounterIsZero(t *testing.T) {
	c, h := newCounter(t)
	requireNum(t, c, h, 0)
	require.Equal(t, []string{"counter's number: 0"}, h.Logs)
}

func TestIncrement(t *testing.T) {
	c, h := newCounter(t)

	require.NoError(t, c.increment(h.Context()))
	require.NoError(t, c.increment(h.Context()))

	requireNum(t, c, h, 2)
	require.Equal(t, []string{
		"Incremented to 1", OVERFLOW_REMINDER,
		"Incremented to 2", OVERFLOW_REMINDER,
		"counter's number: 2",
	}, h.Logs)
}

func TestDecrementGoesBelowZero(t *testing.T) {
	c, h := newCounter(t)

	require.NoError(t, c.decrement(h.Context()))

	requireNum(t, c, h, -1)
	require.Equal(t, "Decreased number to -1", h.Logs[0])
}

func TestResetAfterIncrement(t *testing.T) {
	c, h := newCounter(t)

	require.NoError(t, c.increment(h.Context()))
	require.NoError(t, c.reset(h.Context()))

	requireNum(t, c, h, 0)
	require.Contains(t, h.Logs, "Reset counter to zero")
}

func TestIncrementWrapsAround(t *testing.T) {
	c, h := newCounter(t)
	require.NoError(t, c.State.WriteInt64ByKey(h.Context(), NUM_KEY, math.MaxInt64))

	require.NoError(t, c.increment(h.Context()))

	requireNum(t, c, h, math.MinInt64)
}

func TestMissingStateReadsAsZero(t *testing.T) {
	h := testkit.NewSdkHandler("never-initialized")
	c := h.Contract(CONTRACT).(*contract)

	require.NoError(t, c.increment(h.Context()))

	requireNum(t, c, h, 1)
}

func TestWritesFailInReadOnlyContext(t *testing.T) {
	c, h := newCounter(t)
	h.ReadOnly = true

	require.Error(t, c.increment(h.Context()))
	requireNum(t, c, h, 0)
}
