// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package test

import (
	"context"
	"github.com/orbs-network/orbs-counter-playground/services/processor/native/artifact"
	"github.com/orbs-network/orbs-counter-playground/services/processor/native/repository/Counter"
	"github.com/orbs-network/orbs-counter-playground/services/processor/native/repository/Donation"
	"github.com/orbs-network/orbs-counter-playground/test"
	"github.com/orbs-network/orbs-counter-playground/types/protocol"
	"github.com/orbs-network/orbs-counter-playground/types/services"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestProcessCall_CounterIncrementReadsWritesAndLogs(t *testing.T) {
	test.WithContext(func(ctx context.Context) {
		h := newHarness(t)
		h.expectStateRead(nil)
		h.expectStateWrite()
		h.expectLog()
		h.expectLog()

		result, outputArgs, err := h.processCall(ctx, counter.CONTRACT_NAME, "increment", serviceReadWrite)
		require.NoError(t, err)
		require.Equal(t, protocol.EXECUTION_RESULT_SUCCESS, result)
		require.Empty(t, outputArgs)
		h.verifySdkCalls(t)
	})
}

func TestProcessCall_CounterGetNumReturnsInt64(t *testing.T) {
	test.WithContext(func(ctx context.Context) {
		h := newHarness(t)
		h.expectStateRead([]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff})
		h.expectSdkCall("current account", "Sdk.Env", "getCurrentAccountId", protocol.ArgumentArray{{Type: protocol.ARGUMENT_TYPE_STRING_VALUE, StringValue: "account"}}, nil)
		h.expectLog()

		result, outputArgs, err := h.processCall(ctx, counter.CONTRACT_NAME, "get_num", serviceReadOnly)
		require.NoError(t, err)
		require.Equal(t, protocol.EXECUTION_RESULT_SUCCESS, result)
		require.Len(t, outputArgs, 1)
		require.True(t, outputArgs[0].IsTypeInt64Value())
		require.EqualValues(t, -1, outputArgs[0].Int64Value)
		h.verifySdkCalls(t)
	})
}

func TestProcessCall_DonationPropagatesCalleeFailure(t *testing.T) {
	test.WithContext(func(ctx context.Context) {
		h := newHarness(t)
		h.expectServiceCallMethodToFail("contract not deployed")

		result, outputArgs, err := h.processCall(ctx, donation.CONTRACT_NAME, "increment_my_number", serviceReadWrite,
			&protocol.Argument{Name: "account_id", Type: protocol.ARGUMENT_TYPE_STRING_VALUE, StringValue: "nobody"})
		require.Error(t, err)
		require.Equal(t, protocol.EXECUTION_RESULT_ERROR_SMART_CONTRACT, result)
		require.Equal(t, "contract not deployed", outputArgs[0].StringValue)
		h.verifySdkCalls(t)
	})
}

func TestProcessCall_UnknownArtifactIsNotDeployed(t *testing.T) {
	test.WithContext(func(ctx context.Context) {
		h := newHarness(t)

		output, err := h.service.ProcessCall(ctx, &services.ProcessCallInput{
			ContractCode:           []byte(`{"contract":"NoSuchContract","version":1}`),
			MethodName:             "increment",
			AccessScope:            protocol.ACCESS_SCOPE_READ_WRITE,
			CallingPermissionScope: protocol.PERMISSION_SCOPE_SERVICE,
		})
		require.Error(t, err)
		require.Equal(t, protocol.EXECUTION_RESULT_ERROR_CONTRACT_NOT_DEPLOYED, output.CallResult)
	})
}

func TestGetContractInfo(t *testing.T) {
	test.WithContext(func(ctx context.Context) {
		h := newHarness(t)

		output, err := h.service.GetContractInfo(ctx, &services.GetContractInfoInput{ContractCode: artifact.Build(counter.CONTRACT_NAME)})
		require.NoError(t, err)
		require.Equal(t, counter.CONTRACT_NAME, output.ContractName)
		require.Equal(t, protocol.PERMISSION_SCOPE_SERVICE, output.PermissionScope)

		_, err = h.service.GetContractInfo(ctx, &services.GetContractInfoInput{ContractCode: []byte("garbage")})
		require.Error(t, err)
	})
}
