// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package test

import (
	"context"
	"github.com/orbs-network/go-mock"
	"github.com/orbs-network/orbs-counter-playground/config"
	"github.com/orbs-network/orbs-counter-playground/instrumentation/metric"
	"github.com/orbs-network/orbs-counter-playground/services/processor/native"
	"github.com/orbs-network/orbs-counter-playground/services/virtualmachine"
	"github.com/orbs-network/orbs-counter-playground/test"
	"github.com/orbs-network/orbs-counter-playground/types/services"
	"github.com/orbs-network/orbs-counter-playground/types/services/handlers"
	"github.com/orbs-network/scribe/log"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestVirtualMachineRegistersAsSdkHandler(t *testing.T) {
	processor := &services.MockProcessor{}
	processor.When("RegisterContractSdkCallHandler", mock.Any).Return().Times(1)

	virtualmachine.NewVirtualMachine(config.ForAcceptanceTests(), &services.MockStateStorage{}, processor, log.DefaultTestingLogger(t), metric.NewRegistry())

	ok, err := processor.Verify()
	require.True(t, ok, "did not register with processor: %v", err)
}

func TestSdkCallWithUnknownContextFails(t *testing.T) {
	test.WithContext(func(ctx context.Context) {
		h := newHarness(t)

		_, err := h.service.HandleSdkCall(ctx, &handlers.HandleSdkCallInput{
			ContextId:     999,
			OperationName: native.SDK_OPERATION_NAME_ENV,
			MethodName:    "getBlockHeight",
		})
		require.Error(t, err, "sdk calls outside an execution context should fail")
	})
}
