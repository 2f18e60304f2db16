// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package test

import (
	"context"
	"github.com/orbs-network/orbs-counter-playground/services/processor/native/repository/Counter"
	"github.com/orbs-network/orbs-counter-playground/test"
	"github.com/orbs-network/orbs-counter-playground/types/protocol"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestProcessCall_PanicIsRecoveredAsContractError(t *testing.T) {
	test.WithContext(func(ctx context.Context) {
		h := newHarness(t)

		result, outputArgs, err := h.processCall(ctx, "Fixture", "panics", serviceReadOnly)
		require.EqualError(t, err, "something bad happened")
		require.Equal(t, protocol.EXECUTION_RESULT_ERROR_SMART_CONTRACT, result)
		require.Equal(t, "something bad happened", outputArgs[0].StringValue)
	})
}

func TestProcessCall_ReturnedErrorIsContractError(t *testing.T) {
	test.WithContext(func(ctx context.Context) {
		h := newHarness(t)

		result, outputArgs, err := h.processCall(ctx, "Fixture", "fails", serviceReadOnly)
		require.EqualError(t, err, "contract says no")
		require.Equal(t, protocol.EXECUTION_RESULT_ERROR_SMART_CONTRACT, result)
		require.Len(t, outputArgs, 1)
		require.Equal(t, "contract says no", outputArgs[0].StringValue)
	})
}

func TestProcessCall_UnknownMethodIsInputError(t *testing.T) {
	test.WithContext(func(ctx context.Context) {
		h := newHarness(t)

		result, _, err := h.processCall(ctx, counter.CONTRACT_NAME, "multiply", serviceReadWrite)
		require.Error(t, err)
		require.Equal(t, protocol.EXECUTION_RESULT_ERROR_INPUT, result)
	})
}

func TestProcessCall_SystemMethodRequiresSystemPermission(t *testing.T) {
	test.WithContext(func(ctx context.Context) {
		h := newHarness(t)

		result, _, err := h.processCall(ctx, counter.CONTRACT_NAME, "_init", serviceReadWrite)
		require.Error(t, err)
		require.Equal(t, protocol.EXECUTION_RESULT_ERROR_INPUT, result)

		h.expectStateWrite()
		result, _, err = h.processCall(ctx, counter.CONTRACT_NAME, "_init", systemReadWrite)
		require.NoError(t, err)
		require.Equal(t, protocol.EXECUTION_RESULT_SUCCESS, result)
		h.verifySdkCalls(t)
	})
}

func TestProcessCall_WritingMethodIsRejectedInReadOnlyScope(t *testing.T) {
	test.WithContext(func(ctx context.Context) {
		h := newHarness(t)

		result, _, err := h.processCall(ctx, counter.CONTRACT_NAME, "increment", serviceReadOnly)
		require.Error(t, err)
		require.Equal(t, protocol.EXECUTION_RESULT_ERROR_INPUT, result)
	})
}
