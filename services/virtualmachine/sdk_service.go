// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package virtualmachine

import (
	"context"
	"github.com/orbs-network/orbs-counter-playground/instrumentation/logfields"
	"github.com/orbs-network/orbs-counter-playground/instrumentation/trace"
	"github.com/orbs-network/orbs-counter-playground/types/primitives"
	"github.com/orbs-network/orbs-counter-playground/types/protocol"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
)

func (s *service) handleSdkServiceCall(ctx context.Context, executionContext *executionContext, methodName primitives.MethodName, args []*protocol.Argument, permissionScope protocol.ExecutionPermissionScope) ([]*protocol.Argument, error) {
	switch methodName {

	case "callMethod":
		return s.handleSdkServiceCallMethod(ctx, executionContext, args, permissionScope)

	default:
		return nil, errors.Errorf("unknown SDK service call method: %s", methodName)
	}
}

// the callee shares the caller's execution context, so its writes live and die with the caller's transaction
func (s *service) handleSdkServiceCallMethod(ctx context.Context, executionContext *executionContext, args []*protocol.Argument, permissionScope protocol.ExecutionPermissionScope) ([]*protocol.Argument, error) {
	if len(args) < 2 || !args[0].IsTypeStringValue() || !args[1].IsTypeStringValue() {
		return nil, errors.Errorf("invalid SDK service callMethod args: %v", args)
	}
	accountId := primitives.AccountId(args[0].StringValue)
	methodName := primitives.MethodName(args[1].StringValue)
	caller, _ := executionContext.accountStackTop()

	logger := s.logger.WithTags(trace.LogFieldFrom(ctx), logfields.ExecutionContext(executionContext.contextId))

	if accountId == "" {
		return nil, errors.New("callMethod requires a target account")
	}
	if isSystemAccount(accountId) && permissionScope != protocol.PERMISSION_SCOPE_SYSTEM {
		return nil, errors.Errorf("account %s can only be called by system contracts", accountId)
	}

	code, err := s.getDeployedCode(ctx, executionContext, accountId)
	if err != nil {
		logger.Info("Sdk.Service.CallMethod target not deployed", logfields.Account("caller", caller), logfields.Account("callee", accountId))
		return nil, errors.Wrapf(err, "no contract on account %s", accountId)
	}

	callResult, outputArgs, err := s.callContract(ctx, executionContext, accountId, code, methodName, args[2:], permissionScope)
	if err == nil && callResult != protocol.EXECUTION_RESULT_SUCCESS {
		err = errors.Errorf("call returned %s", callResult)
	}
	if err != nil {
		logger.Info("Sdk.Service.CallMethod failed", log.Error(err), logfields.Account("caller", caller), logfields.Account("callee", accountId), logfields.Method(methodName))
		return nil, errors.Wrapf(err, "%s.%s failed", accountId, methodName)
	}

	return outputArgs, nil
}
