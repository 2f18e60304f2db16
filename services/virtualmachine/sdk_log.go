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

func (s *service) handleSdkLogCall(executionContext *executionContext, methodName primitives.MethodName, args []*protocol.Argument) ([]*protocol.Argument, error) {
	switch methodName {

	case "log":
		if len(args) != 1 || !args[0].IsTypeStringValue() {
			return nil, errors.Errorf("invalid SDK log args: %v", args)
		}
		executionContext.logs = append(executionContext.logs, args[0].StringValue)
		return []*protocol.Argument{}, nil

	default:
		return nil, errors.Errorf("unknown SDK log call method: %s", methodName)
	}
}
