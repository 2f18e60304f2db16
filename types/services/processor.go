// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package services

import (
	"context"
	"github.com/orbs-network/orbs-counter-playground/types/primitives"
	"github.com/orbs-network/orbs-counter-playground/types/protocol"
	"github.com/orbs-network/orbs-counter-playground/types/services/handlers"
)

type ProcessCallInput struct {
	ContextId              primitives.ExecutionContextId
	AccountId              primitives.AccountId
	ContractCode           []byte
	MethodName             primitives.MethodName
	InputArgumentArray     protocol.ArgumentArray
	AccessScope            protocol.ExecutionAccessScope
	CallingPermissionScope protocol.ExecutionPermissionScope
}

type ProcessCallOutput struct {
	OutputArgumentArray protocol.ArgumentArray
	CallResult          protocol.ExecutionResult
}

type GetContractInfoInput struct {
	ContractCode []byte
}

type GetContractInfoOutput struct {
	ContractName    string
	PermissionScope protocol.ExecutionPermissionScope
}

type Processor interface {
	ProcessCall(ctx context.Context, input *ProcessCallInput) (*ProcessCallOutput, error)
	GetContractInfo(ctx context.Context, input *GetContractInfoInput) (*GetContractInfoOutput, error)
	RegisterContractSdkCallHandler(handler handlers.ContractSdkCallHandler)
}
