// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package test

import (
	"context"
	"github.com/orbs-network/go-mock"
	"github.com/orbs-network/orbs-counter-playground/instrumentation/metric"
	"github.com/orbs-network/orbs-counter-playground/services/processor/native"
	"github.com/orbs-network/orbs-counter-playground/services/processor/native/artifact"
	"github.com/orbs-network/orbs-counter-playground/services/processor/native/repository"
	"github.com/orbs-network/orbs-counter-playground/services/processor/native/types"
	"github.com/orbs-network/orbs-counter-playground/types/primitives"
	"github.com/orbs-network/orbs-counter-playground/types/protocol"
	"github.com/orbs-network/orbs-counter-playground/types/services"
	"github.com/orbs-network/orbs-counter-playground/types/services/handlers"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"testing"
)

type harness struct {
	sdkCallHandler *handlers.MockContractSdkCallHandler
	service        services.Processor
}

func newHarness(tb testing.TB) *harness {
	contracts := map[string]types.ContractInfo{FIXTURE_CONTRACT.Name: FIXTURE_CONTRACT}
	for name, contract := range repository.Contracts {
		contracts[name] = contract
	}

	sdkCallHandler := &handlers.MockContractSdkCallHandler{}
	service := native.NewNativeProcessor(contracts, log.DefaultTestingLogger(tb), metric.NewRegistry())
	service.RegisterContractSdkCallHandler(sdkCallHandler)

	return &harness{
		sdkCallHandler: sdkCallHandler,
		service:        service,
	}
}

type callOptions struct {
	accessScope     protocol.ExecutionAccessScope
	permissionScope protocol.ExecutionPermissionScope
}

var serviceReadWrite = callOptions{protocol.ACCESS_SCOPE_READ_WRITE, protocol.PERMISSION_SCOPE_SERVICE}
var serviceReadOnly = callOptions{protocol.ACCESS_SCOPE_READ_ONLY, protocol.PERMISSION_SCOPE_SERVICE}
var systemReadWrite = callOptions{protocol.ACCESS_SCOPE_READ_WRITE, protocol.PERMISSION_SCOPE_SYSTEM}

func (h *harness) processCall(ctx context.Context, contractName string, methodName primitives.MethodName, opts callOptions, args ...*protocol.Argument) (protocol.ExecutionResult, protocol.ArgumentArray, error) {
	output, err := h.service.ProcessCall(ctx, &services.ProcessCallInput{
		ContextId:              primitives.ExecutionContextId(17),
		AccountId:              "account",
		ContractCode:           artifact.Build(contractName),
		MethodName:             methodName,
		InputArgumentArray:     args,
		AccessScope:            opts.accessScope,
		CallingPermissionScope: opts.permissionScope,
	})
	return output.CallResult, output.OutputArgumentArray, err
}

func (h *harness) expectSdkCall(description string, operationName string, methodName primitives.MethodName, output protocol.ArgumentArray, err error) {
	matcher := func(i interface{}) bool {
		input, ok := i.(*handlers.HandleSdkCallInput)
		return ok && input.OperationName == operationName && input.MethodName == methodName && input.ContextId == 17
	}
	h.sdkCallHandler.When("HandleSdkCall", mock.Any, mock.AnyIf(description, matcher)).Return(&handlers.HandleSdkCallOutput{OutputArguments: output}, err).Times(1)
}

func (h *harness) expectStateRead(value []byte) {
	h.expectSdkCall("state read", native.SDK_OPERATION_NAME_STATE, "read", protocol.ArgumentArray{{Type: protocol.ARGUMENT_TYPE_BYTES_VALUE, BytesValue: value}}, nil)
}

func (h *harness) expectStateWrite() {
	h.expectSdkCall("state write", native.SDK_OPERATION_NAME_STATE, "write", nil, nil)
}

func (h *harness) expectLog() {
	h.expectSdkCall("log", native.SDK_OPERATION_NAME_LOG, "log", nil, nil)
}

func (h *harness) expectServiceCallMethodToFail(message string) {
	h.expectSdkCall("service call method", native.SDK_OPERATION_NAME_SERVICE, "callMethod", nil, errors.New(message))
}

func (h *harness) verifySdkCalls(t *testing.T) {
	ok, err := h.sdkCallHandler.Verify()
	require.True(t, ok, "sdk calls did not match expectations: %v", err)
}

// FIXTURE_CONTRACT exercises argument conversion and failure paths of the processor
var FIXTURE_CONTRACT = types.ContractInfo{
	Name:       "Fixture",
	Permission: protocol.PERMISSION_SCOPE_SERVICE,
	Methods: map[primitives.MethodName]types.MethodInfo{
		"echo": {
			Name:           "echo",
			External:       true,
			Access:         protocol.ACCESS_SCOPE_READ_ONLY,
			ArgNames:       []string{"u32", "u64", "i64", "str", "bytes"},
			Implementation: (*fixtureContract).echo,
		},
		"panics": {
			Name:           "panics",
			External:       true,
			Access:         protocol.ACCESS_SCOPE_READ_ONLY,
			Implementation: (*fixtureContract).panics,
		},
		"fails": {
			Name:           "fails",
			External:       true,
			Access:         protocol.ACCESS_SCOPE_READ_ONLY,
			Implementation: (*fixtureContract).fails,
		},
	},
	InitSingleton: func(base *types.BaseContract) types.Contract {
		return &fixtureContract{base}
	},
}

type fixtureContract struct{ *types.BaseContract }

func (c *fixtureContract) echo(ctx types.Context, u32 uint32, u64 uint64, i64 int64, str string, bytes []byte) (uint32, uint64, int64, string, []byte, error) {
	return u32, u64, i64, str, bytes, nil
}

func (c *fixtureContract) panics(ctx types.Context) error {
	panic("something bad happened")
}

func (c *fixtureContract) fails(ctx types.Context) (string, error) {
	return "ignored", errors.New("contract says no")
}
