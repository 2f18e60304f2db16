// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package virtualmachine

import (
	"context"
	"github.com/orbs-network/orbs-counter-playground/types/primitives"
	"github.com/orbs-network/orbs-counter-playground/types/protocol"
	"github.com/pkg/errors"
)

// queries see committed state only and can never write, contract failures are reported in the result
func (s *service) runLocalMethod(
	ctx context.Context,
	blockHeight primitives.BlockHeight,
	blockTimestamp primitives.TimestampNano,
	query *protocol.Query,
) (protocol.ExecutionResult, protocol.ArgumentArray, []string, error) {

	// create execution context
	executionContextId, executionContext := s.contexts.allocateExecutionContext(blockHeight, blockHeight, blockTimestamp, protocol.ACCESS_SCOPE_READ_ONLY, query.Signer)
	defer s.contexts.destroyExecutionContext(executionContextId)

	if isSystemAccount(query.Receiver) {
		return protocol.EXECUTION_RESULT_ERROR_INPUT, nil, executionContext.logs, errors.Errorf("account %s is reserved for the system", query.Receiver)
	}

	callResult, outputArgs, err := s.callDeployedContract(ctx, executionContext, query.Receiver, query.MethodName, query.InputArguments)
	if outputArgs == nil {
		outputArgs = protocol.ArgumentArray{}
	}

	return callResult, outputArgs, executionContext.logs, err
}
