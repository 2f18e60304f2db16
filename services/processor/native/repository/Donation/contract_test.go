// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package donation

import (
	"github.com/orbs-network/orbs-counter-playground/services/processor/native/testkit"
	"github.com/orbs-network/orbs-counter-playground/types/protocol"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestIncrementMyNumberCallsIncrementOnTarget(t *testing.T) {
	h := testkit.NewSdkHandler("donation")
	c := h.Contract(CONTRACT).(*contract)

	require.NoError(t, c.incrementMyNumber(h.Context(), "my-counter"))

	require.Len(t, h.ServiceCalls, 1)
	require.Equal(t, "my-counter", h.ServiceCalls[0].AccountId)
	require.Equal(t, "increment", h.ServiceCalls[0].MethodName)
	require.Empty(t, h.ServiceCalls[0].Args)
}

func TestIncrementMyNumberReturnsCalleeFailure(t *testing.T) {
	h := testkit.NewSdkHandler("donation")
	h.CallMethodResponse = func(call *testkit.ServiceCall) (protocol.ArgumentArray, error) {
		return nil, errors.New("contract not deployed")
	}
	c := h.Contract(CONTRACT).(*contract)

	err := c.incrementMyNumber(h.Context(), "nobody")

	require.EqualError(t, err, "contract not deployed")
	require.Len(t, h.ServiceCalls, 1, "failed call should not be retried")
}

func TestIncrementMyNumberRequiresAccount(t *testing.T) {
	h := testkit.NewSdkHandler("donation")
	c := h.Contract(CONTRACT).(*contract)

	require.Error(t, c.incrementMyNumber(h.Context(), ""))
	require.Empty(t, h.ServiceCalls)
}

func TestDonationHasNoState(t *testing.T) {
	h := testkit.NewSdkHandler("donation")
	c := h.Contract(CONTRACT).(*contract)

	require.NoError(t, c._init(h.Context()))
	require.NoError(t, c.incrementMyNumber(h.Context(), "my-counter"))

	require.Empty(t, h.State["donation"])
}
