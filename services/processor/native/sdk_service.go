// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package native

import (
	"github.com/orbs-network/orbs-counter-playground/services/processor/native/types"
	"github.com/orbs-network/orbs-counter-playground/types/protocol"
	"github.com/pkg/errors"
)

const SDK_OPERATION_NAME_SERVICE = "Sdk.Service"

type serviceSdk struct {
	sdkCaller
}

// CallMethod runs a method of the contract deployed on another account and returns its
// outputs. The callee runs inside the same execution context, so its failure fails the caller.
func (s *serviceSdk) CallMethod(ctx types.Context, accountId string, methodName string, args ...interface{}) (protocol.ArgumentArray, error) {
	callArgs := protocol.ArgumentArray{
		{Name: "accountId", Type: protocol.ARGUMENT_TYPE_STRING_VALUE, StringValue: accountId},
		{Name: "methodName", Type: protocol.ARGUMENT_TYPE_STRING_VALUE, StringValue: methodName},
	}
	for i, arg := range args {
		if protocolArg, ok := arg.(*protocol.Argument); ok {
			callArgs = append(callArgs, protocolArg)
			continue
		}
		protocolArg, err := protocol.ArgumentFromNative("", arg)
		if err != nil {
			return nil, errors.Wrapf(err, "callMethod %s.%s arg %d", accountId, methodName, i)
		}
		callArgs = append(callArgs, protocolArg)
	}

	return s.call(ctx, SDK_OPERATION_NAME_SERVICE, "callMethod", callArgs...)
}
