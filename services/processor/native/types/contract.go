// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package types

import (
	"github.com/orbs-network/orbs-counter-playground/types/primitives"
	"github.com/orbs-network/orbs-counter-playground/types/protocol"
)

type Contract interface {
	// _init(ctx Context) error
}

type ContractInfo struct {
	Name          string
	Permission    protocol.ExecutionPermissionScope
	Methods       map[primitives.MethodName]MethodInfo
	InitSingleton func(*BaseContract) Contract
}

type MethodInfo struct {
	Name     primitives.MethodName
	External bool
	Access   protocol.ExecutionAccessScope

	// names of the method arguments in declaration order, used to arrange named call arguments
	ArgNames []string

	// a method expression such as (*contract).increment
	Implementation interface{}
}

type BaseContract struct {
	State   StateSdk
	Service ServiceSdk
	Env     EnvSdk
	Log     LogSdk
}

func NewBaseContract(
	state StateSdk,
	service ServiceSdk,
	env EnvSdk,
	log LogSdk,
) *BaseContract {

	return &BaseContract{
		State:   state,
		Service: service,
		Env:     env,
		Log:     log,
	}
}
