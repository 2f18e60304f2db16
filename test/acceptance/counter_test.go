// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package acceptance

import (
	"github.com/stretchr/testify/require"
	"testing"
)

func TestFreshCounterStartsAtZero(t *testing.T) {
	withNetwork(t, func(h *harness) {
		h.deployCounter("counter1")
		require.EqualValues(t, 0, h.getNum("counter1"))
	})
}

func TestIncrementAddsOne(t *testing.T) {
	withNetwork(t, func(h *harness) {
		h.deployCounter("counter1")
		h.requireSucceeded(h.call("counter1", "counter1", "increment"))
		h.requireSucceeded(h.call("counter1", "counter1", "increment"))
		before := h.getNum("counter1")

		h.requireSucceeded(h.call("counter1", "counter1", "increment"))
		require.Equal(t, before+1, h.getNum("counter1"))
	})
}

func TestDecrementSubtractsOne(t *testing.T) {
	withNetwork(t, func(h *harness) {
		h.deployCounter("counter1")
		h.requireSucceeded(h.call("counter1", "counter1", "increment"))
		before := h.getNum("counter1")

		h.requireSucceeded(h.call("counter1", "counter1", "decrement"))
		require.Equal(t, before-1, h.getNum("counter1"))
	})
}

func TestResetAfterIncrementReturnsToZero(t *testing.T) {
	withNetwork(t, func(h *harness) {
		h.deployCounter("counter1")
		h.requireSucceeded(h.call("counter1", "counter1", "increment"))
		h.requireSucceeded(h.call("counter1", "counter1", "reset"))
		require.EqualValues(t, 0, h.getNum("counter1"))
	})
}

func TestDecrementHasNoFloor(t *testing.T) {
	withNetwork(t, func(h *harness) {
		h.deployCounter("counter1")
		h.requireSucceeded(h.call("counter1", "counter1", "decrement"))
		require.EqualValues(t, -1, h.getNum("counter1"))
	})
}

func TestAnyAccountMayCallTheCounter(t *testing.T) {
	withNetwork(t, func(h *harness) {
		h.deployCounter("counter1")
		h.requireSucceeded(h.call("user1", "counter1", "increment"))
		h.requireSucceeded(h.call("user2", "counter1", "increment"))
		require.EqualValues(t, 2, h.getNum("counter1"))
	})
}
