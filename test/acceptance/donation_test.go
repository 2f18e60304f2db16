// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package acceptance

import (
	"github.com/orbs-network/orbs-counter-playground/test/builders"
	"github.com/orbs-network/orbs-counter-playground/types/protocol"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestDonationIncrementsTargetCounter(t *testing.T) {
	withNetwork(t, func(h *harness) {
		h.deployCounter("counter1")
		h.requireSucceeded(h.deploy("donor", "Donation"))
		require.EqualValues(t, 0, h.getNum("counter1"))

		h.requireSucceeded(h.call("user1", "donor", "increment_my_number", "counter1"))
		require.EqualValues(t, 1, h.getNum("counter1"))
	})
}

func TestDonationWithNamedArgument(t *testing.T) {
	withNetwork(t, func(h *harness) {
		h.deployCounter("counter1")
		h.requireSucceeded(h.deploy("donor", "Donation"))

		tx := builders.Transaction().
			WithMethod("donor", "increment_my_number").
			WithNamedArgs(builders.NamedArgument("account_id", "counter1")).
			Build()
		h.requireSucceeded(h.sendTransaction(tx))
		require.EqualValues(t, 1, h.getNum("counter1"))
	})
}

func TestDonationToUndeployedAccountFailsWithoutCommittingState(t *testing.T) {
	withNetwork(t, func(h *harness) {
		h.deployCounter("counter1")
		h.requireSucceeded(h.deploy("donor", "Donation"))
		h.requireSucceeded(h.call("user1", "counter1", "increment"))

		out := h.call("user1", "donor", "increment_my_number", "ghost")
		require.Equal(t, protocol.TRANSACTION_STATUS_COMMITTED, out.TransactionStatus, "failed transactions are still committed")
		require.Equal(t, protocol.EXECUTION_RESULT_ERROR_SMART_CONTRACT, out.TransactionReceipt.ExecutionResult)

		require.EqualValues(t, 1, h.getNum("counter1"), "unrelated counter must not change")
		require.Equal(t, protocol.EXECUTION_RESULT_ERROR_CONTRACT_NOT_DEPLOYED, h.query("ghost", "get_num").ExecutionResult)
	})
}
