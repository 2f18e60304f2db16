// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package donation

import (
	"github.com/orbs-network/orbs-counter-playground/services/processor/native/types"
	"github.com/orbs-network/orbs-counter-playground/types/primitives"
	"github.com/orbs-network/orbs-counter-playground/types/protocol"
	"github.com/pkg/errors"
)

const CONTRACT_NAME = "Donation"

// the method every donation target must expose
const TARGET_METHOD = "increment"

var CONTRACT = types.ContractInfo{
	Name:       CONTRACT_NAME,
	Permission: protocol.PERMISSION_SCOPE_SERVICE,
	Methods: map[primitives.MethodName]types.MethodInfo{
		METHOD_INIT.Name:                METHOD_INIT,
		METHOD_INCREMENT_MY_NUMBER.Name: METHOD_INCREMENT_MY_NUMBER,
	},
	InitSingleton: newContract,
}

func newContract(base *types.BaseContract) types.Contract {
	return &contract{base}
}

type contract struct{ *types.BaseContract }

///////////////////////////////////////////////////////////////////////////

var METHOD_INIT = types.MethodInfo{
	Name:           "_init",
	External:       false,
	Access:         protocol.ACCESS_SCOPE_READ_WRITE,
	Implementation: (*contract)._init,
}

func (c *contract) _init(ctx types.Context) error {
	return nil
}

///////////////////////////////////////////////////////////////////////////

var METHOD_INCREMENT_MY_NUMBER = types.MethodInfo{
	Name:           "increment_my_number",
	External:       true,
	Access:         protocol.ACCESS_SCOPE_READ_WRITE,
	ArgNames:       []string{"account_id"},
	Implementation: (*contract).incrementMyNumber,
}

func (c *contract) incrementMyNumber(ctx types.Context, accountId string) error {
	if accountId == "" {
		return errors.New("account_id is required")
	}
	_, err := c.Service.CallMethod(ctx, accountId, TARGET_METHOD)
	return err
}
