// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package synchronization

import (
	"context"
	"github.com/stretchr/testify/require"
	"sync/atomic"
	"testing"
	"time"
)

func TestWaitForBlockOutsideOfGraceFailsImmediately(t *testing.T) {
	tracker := NewBlockTracker(1, 1)

	err := tracker.WaitForBlock(context.Background(), 3)
	require.Equal(t, ErrOutsideOfGrace, err, "did not fail immediately")
}

func TestWaitForBlockAlreadyCommittedReturnsImmediately(t *testing.T) {
	tracker := NewBlockTracker(5, 0)

	require.NoError(t, tracker.WaitForBlock(context.Background(), 4))
	require.NoError(t, tracker.WaitForBlock(context.Background(), 5))
}

func TestWaitForBlockWithinGraceFailsWhenContextEnds(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	tracker := NewBlockTracker(1, 1)
	cancel()

	err := tracker.WaitForBlock(ctx, 2)
	require.EqualError(t, err, "aborted while waiting for block at height 2: context canceled", "did not fail as expected")
}

func TestWaitForBlockWithinGraceReturnsWhenBlockHeightReached(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	tracker := NewBlockTracker(1, 2)

	var waits int32
	waiting := make(chan int32, 10)
	tracker.beforeWait = func() {
		waiting <- atomic.AddInt32(&waits, 1)
	}

	result := make(chan error)
	go func() {
		result <- tracker.WaitForBlock(ctx, 3)
	}()

	require.EqualValues(t, 1, <-waiting, "did not wait at height 1")
	tracker.IncrementTo(2)
	require.EqualValues(t, 2, <-waiting, "did not wait again at height 2")
	tracker.IncrementTo(3)

	require.NoError(t, <-result, "did not return once height 3 was committed")
}

func TestIncrementToIgnoresLowerHeights(t *testing.T) {
	tracker := NewBlockTracker(3, 0)
	tracker.IncrementTo(2)

	require.EqualValues(t, 3, tracker.snapshot().height)
}
