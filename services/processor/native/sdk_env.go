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
)

const SDK_OPERATION_NAME_ENV = "Sdk.Env"

type envSdk struct {
	sdkCaller
}

func (s *envSdk) GetSignerAccountId(ctx types.Context) (primitives.AccountId, error) {
	return s.accountId(ctx, "getSignerAccountId")
}

func (s *envSdk) GetPredecessorAccountId(ctx types.Context) (primitives.AccountId, error) {
	return s.accountId(ctx, "getPredecessorAccountId")
}

func (s *envSdk) GetCurrentAccountId(ctx types.Context) (primitives.AccountId, error) {
	return s.accountId(ctx, "getCurrentAccountId")
}

func (s *envSdk) GetBlockHeight(ctx types.Context) (primitives.BlockHeight, error) {
	output, err := s.callForSingle(ctx, SDK_OPERATION_NAME_ENV, "getBlockHeight", protocol.ARGUMENT_TYPE_UINT_64_VALUE)
	if err != nil {
		return 0, err
	}
	return primitives.BlockHeight(output.Uint64Value), nil
}

func (s *envSdk) GetBlockTimestamp(ctx types.Context) (primitives.TimestampNano, error) {
	output, err := s.callForSingle(ctx, SDK_OPERATION_NAME_ENV, "getBlockTimestamp", protocol.ARGUMENT_TYPE_UINT_64_VALUE)
	if err != nil {
		return 0, err
	}
	return primitives.TimestampNano(output.Uint64Value), nil
}

func (s *envSdk) accountId(ctx types.Context, methodName string) (primitives.AccountId, error) {
	output, err := s.callForSingle(ctx, SDK_OPERATION_NAME_ENV, methodName, protocol.ARGUMENT_TYPE_STRING_VALUE)
	if err != nil {
		return "", err
	}
	return primitives.AccountId(output.StringValue), nil
}
