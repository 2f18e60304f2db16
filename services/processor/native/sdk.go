// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package native

import (
	"github.com/orbs-network/orbs-counter-playground/services/processor/native/types"
	"github.com/orbs-network/orbs-counter-playground/types/primitives"
	"github.com/orbs-network/orbs-counter-playground/types/protocol"
	"github.com/orbs-network/orbs-counter-playground/types/services/handlers"
	"github.com/pkg/errors"
)

// NewSdk binds the contract sdk to a handler (the virtual machine in production).
// Every sdk call made through it carries the given permission scope.
func NewSdk(handler handlers.ContractSdkCallHandler, permissionScope protocol.ExecutionPermissionScope) *types.BaseContract {
	caller := sdkCaller{handler: handler, permissionScope: permissionScope}
	return types.NewBaseContract(
		&stateSdk{caller},
		&serviceSdk{caller},
		&envSdk{caller},
		&logSdk{caller},
	)
}

type sdkCaller struct {
	handler         handlers.ContractSdkCallHandler
	permissionScope protocol.ExecutionPermissionScope
}

func (c sdkCaller) call(ctx types.Context, operationName string, methodName string, args ...*protocol.Argument) (protocol.ArgumentArray, error) {
	if c.handler == nil {
		return nil, errors.Errorf("%s.%s called before an sdk handler was registered", operationName, methodName)
	}
	output, err := c.handler.HandleSdkCall(ctx, &handlers.HandleSdkCallInput{
		ContextId:       ctx.ExecutionContextId(),
		OperationName:   operationName,
		MethodName:      primitives.MethodName(methodName),
		InputArguments:  args,
		PermissionScope: c.permissionScope,
	})
	if err != nil {
		return nil, err
	}
	if output == nil {
		return nil, nil
	}
	return output.OutputArguments, nil
}

// callForSingle expects exactly one output argument of the given type
func (c sdkCaller) callForSingle(ctx types.Context, operationName string, methodName string, expectedType protocol.ArgumentType, args ...*protocol.Argument) (*protocol.Argument, error) {
	output, err := c.call(ctx, operationName, methodName, args...)
	if err != nil {
		return nil, err
	}
	if len(output) != 1 || output[0].Type != expectedType {
		return nil, errors.Errorf("%s %s returned corrupt output value", methodName, operationName)
	}
	return output[0], nil
}
