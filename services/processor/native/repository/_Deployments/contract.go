// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package deployments_systemcontract

import (
	"github.com/orbs-network/orbs-counter-playground/services/processor/native/types"
	"github.com/orbs-network/orbs-counter-playground/types/primitives"
	"github.com/orbs-network/orbs-counter-playground/types/protocol"
	"github.com/pkg/errors"
)

const CONTRACT_NAME = "_Deployments"

var CONTRACT = types.ContractInfo{
	Name:       CONTRACT_NAME,
	Permission: protocol.PERMISSION_SCOPE_SYSTEM,
	Methods: map[primitives.MethodName]types.MethodInfo{
		METHOD_INIT.Name:           METHOD_INIT,
		METHOD_GET_CODE.Name:       METHOD_GET_CODE,
		METHOD_DEPLOY_SERVICE.Name: METHOD_DEPLOY_SERVICE,
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

var METHOD_GET_CODE = types.MethodInfo{
	Name:           "getCode",
	External:       true,
	Access:         protocol.ACCESS_SCOPE_READ_ONLY,
	ArgNames:       []string{"accountId"},
	Implementation: (*contract).getCode,
}

func (c *contract) getCode(ctx types.Context, accountId string) ([]byte, error) {
	code, err := c.State.ReadBytesByKey(ctx, codeKey(accountId))
	if err == nil && len(code) == 0 {
		err = errors.New("contract not deployed")
	}
	return code, err
}

///////////////////////////////////////////////////////////////////////////

var METHOD_DEPLOY_SERVICE = types.MethodInfo{
	Name:           "deployService",
	External:       false,
	Access:         protocol.ACCESS_SCOPE_READ_WRITE,
	ArgNames:       []string{"accountId", "code"},
	Implementation: (*contract).deployService,
}

// a redeploy replaces the code and keeps the account state, _init runs on first deploy only
func (c *contract) deployService(ctx types.Context, accountId string, code []byte) error {
	if len(code) == 0 {
		return errors.New("contract code is empty")
	}

	previous, err := c.State.ReadBytesByKey(ctx, codeKey(accountId))
	if err != nil {
		return errors.Wrap(err, "failed reading Code key")
	}

	err = c.State.WriteBytesByKey(ctx, codeKey(accountId), code)
	if err != nil {
		return errors.Wrap(err, "failed writing Code key")
	}

	if len(previous) != 0 {
		return nil
	}

	_, err = c.Service.CallMethod(ctx, accountId, "_init")
	if err != nil {
		return errors.Wrap(err, "failed to initialize contract")
	}

	return nil
}

func codeKey(accountId string) string {
	return accountId + ".Code"
}
