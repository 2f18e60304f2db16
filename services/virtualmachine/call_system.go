// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package virtualmachine

import (
	"context"
	"github.com/orbs-network/orbs-counter-playground/services/processor/native/artifact"
	"github.com/orbs-network/orbs-counter-playground/types/primitives"
	"github.com/orbs-network/orbs-counter-playground/types/protocol"
)

// system contracts are not deployed, their artifact is derived from the account name
func (s *service) callSystemContract(
	ctx context.Context,
	executionContext *executionContext,
	systemAccountId primitives.AccountId,
	systemMethodName primitives.MethodName,
	inputArgs protocol.ArgumentArray,
) (protocol.ExecutionResult, protocol.ArgumentArray, error) {

	code := artifact.Build(string(systemAccountId))
	return s.callContract(ctx, executionContext, systemAccountId, code, systemMethodName, inputArgs, protocol.PERMISSION_SCOPE_SYSTEM)
}
