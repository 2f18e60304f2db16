// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package types

import (
	"context"
	"github.com/orbs-network/orbs-counter-playground/types/primitives"
)

// Context is handed to every contract method. It carries the go context of the call
// and the id of the execution context the virtual machine opened for it.
type Context interface {
	context.Context
	ExecutionContextId() primitives.ExecutionContextId
}

type executionContext struct {
	context.Context
	id primitives.ExecutionContextId
}

func NewContext(ctx context.Context, executionContextId primitives.ExecutionContextId) Context {
	return &executionContext{Context: ctx, id: executionContextId}
}

func (c *executionContext) ExecutionContextId() primitives.ExecutionContextId {
	return c.id
}
