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
	"github.com/orbs-network/orbs-counter-playground/types/services"
	"github.com/pkg/errors"
)

func (s *service) handleSdkStateCall(ctx context.Context, executionContext *executionContext, methodName primitives.MethodName, args []*protocol.Argument) ([]*protocol.Argument, error) {
	switch methodName {

	case "read":
		value, err := s.handleSdkStateRead(ctx, executionContext, args)
		if err != nil {
			return nil, err
		}
		return []*protocol.Argument{{Name: "value", Type: protocol.ARGUMENT_TYPE_BYTES_VALUE, BytesValue: value}}, nil

	case "write":
		err := s.handleSdkStateWrite(executionContext, args)
		return []*protocol.Argument{}, err

	default:
		return nil, errors.Errorf("unknown SDK state call method: %s", methodName)
	}
}

// reads are served from the transaction, then the block being built, then committed state
func (s *service) handleSdkStateRead(ctx context.Context, executionContext *executionContext, args []*protocol.Argument) ([]byte, error) {
	if len(args) != 1 || !args[0].IsTypeBytesValue() {
		return nil, errors.Errorf("invalid SDK state read args: %v", args)
	}
	key := args[0].BytesValue
	accountId, _ := executionContext.accountStackTop()

	if executionContext.transientState != nil {
		if value, found := executionContext.transientState.getValue(accountId, key); found {
			return value, nil
		}
	}
	if executionContext.batchTransientState != nil {
		if value, found := executionContext.batchTransientState.getValue(accountId, key); found {
			return value, nil
		}
	}

	output, err := s.stateStorage.ReadKeys(ctx, &services.ReadKeysInput{
		BlockHeight: executionContext.lastCommittedBlockHeight,
		Namespace:   accountId,
		Keys:        []primitives.Ripmd160Sha256{key},
	})
	if err != nil {
		return nil, err
	}
	if len(output.StateRecords) == 0 {
		return nil, errors.Errorf("state read returned no value")
	}
	value := output.StateRecords[0].Value

	if executionContext.transientState != nil {
		executionContext.transientState.setValue(accountId, key, value, false)
	}
	return value, nil
}

func (s *service) handleSdkStateWrite(executionContext *executionContext, args []*protocol.Argument) error {
	if executionContext.accessScope != protocol.ACCESS_SCOPE_READ_WRITE || executionContext.transientState == nil {
		return errors.Errorf("write attempted in a read only context")
	}
	if len(args) != 2 || !args[0].IsTypeBytesValue() || !args[1].IsTypeBytesValue() {
		return errors.Errorf("invalid SDK state write args: %v", args)
	}

	accountId, _ := executionContext.accountStackTop()
	executionContext.transientState.setValue(accountId, args[0].BytesValue, args[1].BytesValue, true)
	return nil
}
