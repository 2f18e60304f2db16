// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

// Package testkit runs native contracts in unit tests without a virtual machine
package testkit

import (
	"context"
	"github.com/orbs-network/orbs-counter-playground/services/processor/native"
	"github.com/orbs-network/orbs-counter-playground/services/processor/native/types"
	"github.com/orbs-network/orbs-counter-playground/types/primitives"
	"github.com/orbs-network/orbs-counter-playground/types/protocol"
	"github.com/orbs-network/orbs-counter-playground/types/services/handlers"
	"github.com/pkg/errors"
)

type ServiceCall struct {
	AccountId  string
	MethodName string
	Args       protocol.ArgumentArray
}

// SdkHandler is an in memory stand-in for the virtual machine side of the contract sdk.
// State is kept per account, keyed by the hashed state address.
type SdkHandler struct {
	CurrentAccount     primitives.AccountId
	Signer             primitives.AccountId
	Predecessor        primitives.AccountId
	BlockHeight        primitives.BlockHeight
	BlockTimestamp     primitives.TimestampNano
	ReadOnly           bool
	State              map[primitives.AccountId]map[string][]byte
	Logs               []string
	ServiceCalls       []*ServiceCall
	CallMethodResponse func(call *ServiceCall) (protocol.ArgumentArray, error)
}

func NewSdkHandler(currentAccount primitives.AccountId) *SdkHandler {
	return &SdkHandler{
		CurrentAccount: currentAccount,
		Signer:         "user",
		Predecessor:    "user",
		BlockHeight:    1,
		BlockTimestamp: 1,
		State:          make(map[primitives.AccountId]map[string][]byte),
	}
}

// Contract binds a fresh instance of the contract to this handler
func (h *SdkHandler) Contract(contractInfo types.ContractInfo) types.Contract {
	return contractInfo.InitSingleton(native.NewSdk(h, contractInfo.Permission))
}

func (h *SdkHandler) Context() types.Context {
	return types.NewContext(context.Background(), 1)
}

func (h *SdkHandler) HandleSdkCall(ctx context.Context, input *handlers.HandleSdkCallInput) (*handlers.HandleSdkCallOutput, error) {
	var output protocol.ArgumentArray
	var err error

	switch input.OperationName {
	case native.SDK_OPERATION_NAME_STATE:
		output, err = h.handleState(string(input.MethodName), input.InputArguments)
	case native.SDK_OPERATION_NAME_SERVICE:
		output, err = h.handleService(string(input.MethodName), input.InputArguments)
	case native.SDK_OPERATION_NAME_ENV:
		output, err = h.handleEnv(string(input.MethodName))
	case native.SDK_OPERATION_NAME_LOG:
		if len(input.InputArguments) != 1 || !input.InputArguments[0].IsTypeStringValue() {
			return nil, errors.Errorf("invalid log args: %v", input.InputArguments)
		}
		h.Logs = append(h.Logs, input.InputArguments[0].StringValue)
	default:
		err = errors.Errorf("unknown sdk operation %s", input.OperationName)
	}

	if err != nil {
		return nil, err
	}
	return &handlers.HandleSdkCallOutput{OutputArguments: output}, nil
}

func (h *SdkHandler) handleState(methodName string, args []*protocol.Argument) (protocol.ArgumentArray, error) {
	records, found := h.State[h.CurrentAccount]
	if !found {
		records = make(map[string][]byte)
		h.State[h.CurrentAccount] = records
	}

	switch methodName {
	case "read":
		return protocol.ArgumentArray{{Name: "value", Type: protocol.ARGUMENT_TYPE_BYTES_VALUE, BytesValue: records[string(args[0].BytesValue)]}}, nil
	case "write":
		if h.ReadOnly {
			return nil, errors.New("write in a read only context")
		}
		if len(args[1].BytesValue) == 0 {
			delete(records, string(args[0].BytesValue))
		} else {
			records[string(args[0].BytesValue)] = args[1].BytesValue
		}
		return nil, nil
	}
	return nil, errors.Errorf("unknown state method %s", methodName)
}

func (h *SdkHandler) handleService(methodName string, args []*protocol.Argument) (protocol.ArgumentArray, error) {
	if methodName != "callMethod" || len(args) < 2 {
		return nil, errors.Errorf("invalid service call %s: %v", methodName, args)
	}
	call := &ServiceCall{
		AccountId:  args[0].StringValue,
		MethodName: args[1].StringValue,
		Args:       args[2:],
	}
	h.ServiceCalls = append(h.ServiceCalls, call)
	if h.CallMethodResponse == nil {
		return nil, nil
	}
	return h.CallMethodResponse(call)
}

func (h *SdkHandler) handleEnv(methodName string) (protocol.ArgumentArray, error) {
	switch methodName {
	case "getSignerAccountId":
		return stringOutput(string(h.Signer)), nil
	case "getPredecessorAccountId":
		return stringOutput(string(h.Predecessor)), nil
	case "getCurrentAccountId":
		return stringOutput(string(h.CurrentAccount)), nil
	case "getBlockHeight":
		return protocol.ArgumentArray{{Type: protocol.ARGUMENT_TYPE_UINT_64_VALUE, Uint64Value: uint64(h.BlockHeight)}}, nil
	case "getBlockTimestamp":
		return protocol.ArgumentArray{{Type: protocol.ARGUMENT_TYPE_UINT_64_VALUE, Uint64Value: uint64(h.BlockTimestamp)}}, nil
	}
	return nil, errors.Errorf("unknown env method %s", methodName)
}

func stringOutput(value string) protocol.ArgumentArray {
	return protocol.ArgumentArray{{Type: protocol.ARGUMENT_TYPE_STRING_VALUE, StringValue: value}}
}
