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
	"sync"
)

type stackFrame struct {
	accountId       primitives.AccountId
	permissionScope protocol.ExecutionPermissionScope
}

type executionContext struct {
	contextId                primitives.ExecutionContextId
	lastCommittedBlockHeight primitives.BlockHeight
	currentBlockHeight       primitives.BlockHeight
	currentBlockTimestamp    primitives.TimestampNano
	accessScope              protocol.ExecutionAccessScope
	signer                   primitives.AccountId
	accountStack             []stackFrame
	transientState           *transientState
	batchTransientState      *transientState
	logs                     []string
}

func (c *executionContext) accountStackTop() (primitives.AccountId, protocol.ExecutionPermissionScope) {
	if len(c.accountStack) == 0 {
		return "", protocol.PERMISSION_SCOPE_RESERVED
	}
	top := c.accountStack[len(c.accountStack)-1]
	return top.accountId, top.permissionScope
}

// the account that called the one on top of the stack, the signer for the outermost call
func (c *executionContext) accountStackPredecessor() primitives.AccountId {
	if len(c.accountStack) < 2 {
		return c.signer
	}
	return c.accountStack[len(c.accountStack)-2].accountId
}

func (c *executionContext) accountStackPush(accountId primitives.AccountId, permissionScope protocol.ExecutionPermissionScope, maxDepth uint32) error {
	if uint32(len(c.accountStack)) >= maxDepth {
		return errors.Errorf("call depth exceeds %d when calling account %s", maxDepth, accountId)
	}
	c.accountStack = append(c.accountStack, stackFrame{accountId, permissionScope})
	return nil
}

func (c *executionContext) accountStackPop() {
	c.accountStack = c.accountStack[0 : len(c.accountStack)-1]
}

type executionContextProvider struct {
	mutex          sync.RWMutex
	lastContextId  primitives.ExecutionContextId
	activeContexts map[primitives.ExecutionContextId]*executionContext
}

func newExecutionContextProvider() *executionContextProvider {
	return &executionContextProvider{
		activeContexts: make(map[primitives.ExecutionContextId]*executionContext),
	}
}

func (cp *executionContextProvider) allocateExecutionContext(lastCommittedBlockHeight primitives.BlockHeight, currentBlockHeight primitives.BlockHeight, currentBlockTimestamp primitives.TimestampNano, accessScope protocol.ExecutionAccessScope, signer primitives.AccountId) (primitives.ExecutionContextId, *executionContext) {
	cp.mutex.Lock()
	defer cp.mutex.Unlock()

	newContext := &executionContext{
		lastCommittedBlockHeight: lastCommittedBlockHeight,
		currentBlockHeight:       currentBlockHeight,
		currentBlockTimestamp:    currentBlockTimestamp,
		accessScope:              accessScope,
		signer:                   signer,
		accountStack:             []stackFrame{},
		logs:                     []string{},
	}
	if accessScope == protocol.ACCESS_SCOPE_READ_WRITE {
		newContext.transientState = newTransientState()
	}

	// ids are never reused while the node runs, a uint64 does not wrap in practice
	cp.lastContextId++
	newContext.contextId = cp.lastContextId
	cp.activeContexts[newContext.contextId] = newContext
	return newContext.contextId, newContext
}

func (cp *executionContextProvider) destroyExecutionContext(contextId primitives.ExecutionContextId) {
	cp.mutex.Lock()
	defer cp.mutex.Unlock()

	delete(cp.activeContexts, contextId)
}

func (cp *executionContextProvider) loadExecutionContext(contextId primitives.ExecutionContextId) *executionContext {
	cp.mutex.RLock()
	defer cp.mutex.RUnlock()

	return cp.activeContexts[contextId]
}

func (cp *executionContextProvider) numActiveContexts() int {
	cp.mutex.RLock()
	defer cp.mutex.RUnlock()

	return len(cp.activeContexts)
}
