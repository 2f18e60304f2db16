// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package synchronization

import (
	"context"
	"github.com/orbs-network/orbs-counter-playground/types/primitives"
	"github.com/pkg/errors"
	"sync"
)

var ErrOutsideOfGrace = errors.New("requested future block outside of grace range")

// heightSnapshot pairs a committed height with the channel closed when it is superseded
type heightSnapshot struct {
	height     uint64
	superseded chan struct{}
}

// BlockTracker lets readers wait until a block height is committed.
type BlockTracker struct {
	graceDistance uint64 // kept small, readers beyond it fail fast

	mutex   sync.RWMutex
	current heightSnapshot

	beforeWait func() // test hook
}

func NewBlockTracker(startingHeight uint64, graceDistance uint64) *BlockTracker {
	return &BlockTracker{
		graceDistance: graceDistance,
		current:       heightSnapshot{height: startingHeight, superseded: make(chan struct{})},
	}
}

// IncrementTo wakes every waiter; heights at or below the current one are ignored
func (t *BlockTracker) IncrementTo(height primitives.BlockHeight) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	if uint64(height) <= t.current.height {
		return
	}
	previous := t.current
	t.current = heightSnapshot{height: uint64(height), superseded: make(chan struct{})}
	close(previous.superseded)
}

func (t *BlockTracker) snapshot() heightSnapshot {
	t.mutex.RLock()
	defer t.mutex.RUnlock()
	return t.current
}

func (t *BlockTracker) WaitForBlock(ctx context.Context, requestedHeight primitives.BlockHeight) error {
	target := uint64(requestedHeight)
	snap := t.snapshot()

	if snap.height+t.graceDistance < target {
		return ErrOutsideOfGrace
	}

	for snap.height < target {
		if t.beforeWait != nil {
			t.beforeWait()
		}
		select {
		case <-snap.superseded:
			snap = t.snapshot()
		case <-ctx.Done():
			return errors.Wrapf(ctx.Err(), "aborted while waiting for block at height %d", requestedHeight)
		}
	}
	return nil
}

type NopHeightReporter struct{}

func (NopHeightReporter) IncrementTo(height primitives.BlockHeight) {}
