// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package counter

import (
	"fmt"
	"github.com/orbs-network/orbs-counter-playground/services/processor/native/types"
	"github.com/orbs-network/orbs-counter-playground/types/primitives"
	"github.com/orbs-network/orbs-counter-playground/types/protocol"
)

const CONTRACT_NAME = "Counter"

const NUM_KEY = "num"
const OVERFLOW_REMINDER = "Make sure you don't overflow, my friend."

var CONTRACT = types.ContractInfo{
	Name:       CONTRACT_NAME,
	Permission: protocol.PERMISSION_SCOPE_SERVICE,
	Methods: map[primitives.MethodName]types.MethodInfo{
		METHOD_INIT.Name:      METHOD_INIT,
		METHOD_INCREMENT.Name: METHOD_INCREMENT,
		METHOD_DECREMENT.Name: METHOD_DECREMENT,
		METHOD_RESET.Name:     METHOD_RESET,
		METHOD_GET_NUM.Name:   METHOD_GET_NUM,
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
	return c.State.WriteInt64ByKey(ctx, NUM_KEY, 0)
}

///////////////////////////////////////////////////////////////////////////

var METHOD_INCREMENT = types.MethodInfo{
	Name:           "increment",
	External:       true,
	Access:         protocol.ACCESS_SCOPE_READ_WRITE,
	Implementation: (*contract).increment,
}

func (c *contract) increment(ctx types.Context) error {
	num, err := c.add(ctx, 1)
	if err != nil {
		return err
	}
	return c.logAll(ctx, fmt.Sprintf("Incremented to %d", num), OVERFLOW_REMINDER)
}

///////////////////////////////////////////////////////////////////////////

var METHOD_DECREMENT = types.MethodInfo{
	Name:           "decrement",
	External:       true,
	Access:         protocol.ACCESS_SCOPE_READ_WRITE,
	Implementation: (*contract).decrement,
}

// no floor, the number may go negative
func (c *contract) decrement(ctx types.Context) error {
	num, err := c.add(ctx, -1)
	if err != nil {
		return err
	}
	return c.logAll(ctx, fmt.Sprintf("Decreased number to %d", num), OVERFLOW_REMINDER)
}

///////////////////////////////////////////////////////////////////////////

var METHOD_RESET = types.MethodInfo{
	Name:           "reset",
	External:       true,
	Access:         protocol.ACCESS_SCOPE_READ_WRITE,
	Implementation: (*contract).reset,
}

func (c *contract) reset(ctx types.Context) error {
	if err := c.State.WriteInt64ByKey(ctx, NUM_KEY, 0); err != nil {
		return err
	}
	return c.Log.Log(ctx, "Reset counter to zero")
}

///////////////////////////////////////////////////////////////////////////

var METHOD_GET_NUM = types.MethodInfo{
	Name:           "get_num",
	External:       true,
	Access:         protocol.ACCESS_SCOPE_READ_ONLY,
	Implementation: (*contract).getNum,
}

func (c *contract) getNum(ctx types.Context) (int64, error) {
	num, err := c.State.ReadInt64ByKey(ctx, NUM_KEY)
	if err != nil {
		return 0, err
	}
	account, err := c.Env.GetCurrentAccountId(ctx)
	if err != nil {
		return 0, err
	}
	return num, c.Log.Log(ctx, fmt.Sprintf("%s's number: %d", account, num))
}

///////////////////////////////////////////////////////////////////////////

// int64 arithmetic wraps on overflow
func (c *contract) add(ctx types.Context, delta int64) (int64, error) {
	num, err := c.State.ReadInt64ByKey(ctx, NUM_KEY)
	if err != nil {
		return 0, err
	}
	num += delta
	return num, c.State.WriteInt64ByKey(ctx, NUM_KEY, num)
}

func (c *contract) logAll(ctx types.Context, messages ...string) error {
	for _, message := range messages {
		if err := c.Log.Log(ctx, message); err != nil {
			return err
		}
	}
	return nil
}
