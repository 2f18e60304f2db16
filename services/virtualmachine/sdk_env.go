// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package virtualmachine

import (
	"github.com/orbs-network/orbs-counter-playground/types/primitives"
	"github.com/orbs-network/orbs-counter-playground/types/protocol"
	"github.com/pkg/errors"
)

func (s *service) handleSdkEnvCall(executionContext *executionContext, methodName primitives.MethodName) ([]*protocol.Argument, error) {
	switch methodName {

	case "getSignerAccountId":
		return accountIdOutput(executionContext.signer), nil

	case "getPredecessorAccountId":
		return accountIdOutput(executionContext.accountStackPredecessor()), nil

	case "getCurrentAccountId":
		accountId, _ := executionContext.accountStackTop()
		return accountIdOutput(accountId), nil

	case "getBlockHeight":
		return []*protocol.Argument{{Type: protocol.ARGUMENT_TYPE_UINT_64_VALUE, Uint64Value: uint64(executionContext.currentBlockHeight)}}, nil

	case "getBlockTimestamp":
		return []*protocol.Argument{{Type: protocol.ARGUMENT_TYPE_UINT_64_VALUE, Uint64Value: uint64(executionContext.currentBlockTimestamp)}}, nil

	default:
		return nil, errors.Errorf("unknown SDK env call method: %s", methodName)
	}
}

func accountIdOutput(accountId primitives.AccountId) []*protocol.Argument {
	return []*protocol.Argument{{Type: protocol.ARGUMENT_TYPE_STRING_VALUE, StringValue: string(accountId)}}
}
