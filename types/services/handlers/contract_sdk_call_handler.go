// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package handlers

import (
	"context"
	"github.com/orbs-network/orbs-counter-playground/types/primitives"
	"github.com/orbs-network/orbs-counter-playground/types/protocol"
)

type HandleSdkCallInput struct {
	ContextId       primitives.ExecutionContextId
	OperationName   string
	MethodName      primitives.MethodName
	InputArguments  []*protocol.Argument
	PermissionScope protocol.ExecutionPermissionScope
}

type HandleSdkCallOutput struct {
	OutputArguments []*protocol.Argument
}

type ContractSdkCallHandler interface {
	HandleSdkCall(ctx context.Context, input *HandleSdkCallInput) (*HandleSdkCallOutput, error)
}
