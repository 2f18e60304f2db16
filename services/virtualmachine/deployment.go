// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package virtualmachine

import (
	"context"
	"github.com/orbs-network/orbs-counter-playground/services/processor/native/artifact"
	"github.com/orbs-network/orbs-counter-playground/services/processor/native/repository/_Deployments"
	"github.com/orbs-network/orbs-counter-playground/types/primitives"
	"github.com/orbs-network/orbs-counter-playground/types/protocol"
	"github.com/orbs-network/orbs-counter-playground/types/services"
	"github.com/pkg/errors"
)

// getDeployedCode asks the _Deployments system contract for the artifact deployed on an account
func (s *service) getDeployedCode(ctx context.Context, executionContext *executionContext, accountId primitives.AccountId) ([]byte, error) {
	if accountId == deployments_systemcontract.CONTRACT_NAME {
		return artifact.Build(deployments_systemcontract.CONTRACT_NAME), nil
	}

	inputArgs := protocol.ArgumentArray{
		{Name: "accountId", Type: protocol.ARGUMENT_TYPE_STRING_VALUE, StringValue: string(accountId)},
	}
	callResult, outputArgs, err := s.callSystemContract(ctx, executionContext, deployments_systemcontract.CONTRACT_NAME, deployments_systemcontract.METHOD_GET_CODE.Name, inputArgs)
	if err != nil {
		return nil, err
	}
	if callResult != protocol.EXECUTION_RESULT_SUCCESS {
		return nil, errors.Errorf("_Deployments.getCode returned %s", callResult)
	}
	if len(outputArgs) != 1 || !outputArgs[0].IsTypeBytesValue() {
		return nil, errors.Errorf("_Deployments.getCode returned corrupt output value")
	}
	return outputArgs[0].BytesValue, nil
}

func (s *service) deployContract(ctx context.Context, executionContext *executionContext, accountId primitives.AccountId, code []byte) (protocol.ExecutionResult, protocol.ArgumentArray, error) {
	info, err := s.processor.GetContractInfo(ctx, &services.GetContractInfoInput{ContractCode: code})
	if err != nil {
		return protocol.EXECUTION_RESULT_ERROR_INPUT, nil, errors.Wrap(err, "artifact cannot be deployed")
	}
	if info.PermissionScope == protocol.PERMISSION_SCOPE_SYSTEM {
		return protocol.EXECUTION_RESULT_ERROR_INPUT, nil, errors.Errorf("system contract %s cannot be deployed", info.ContractName)
	}

	inputArgs := protocol.ArgumentArray{
		{Name: "accountId", Type: protocol.ARGUMENT_TYPE_STRING_VALUE, StringValue: string(accountId)},
		{Name: "code", Type: protocol.ARGUMENT_TYPE_BYTES_VALUE, BytesValue: code},
	}
	callResult, outputArgs, err := s.callSystemContract(ctx, executionContext, deployments_systemcontract.CONTRACT_NAME, deployments_systemcontract.METHOD_DEPLOY_SERVICE.Name, inputArgs)
	if callResult != protocol.EXECUTION_RESULT_SUCCESS {
		if err == nil {
			err = errors.Errorf("_Deployments.deployService returned %s", callResult)
		}
		return protocol.EXECUTION_RESULT_ERROR_SMART_CONTRACT, outputArgs, err
	}

	return protocol.EXECUTION_RESULT_SUCCESS, protocol.ArgumentArray{}, nil
}
