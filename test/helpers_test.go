// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package test

import (
	"context"
	"github.com/orbs-network/govnr"
	"github.com/stretchr/testify/require"
	"sync/atomic"
	"testing"
	"time"
)

type closingWaiter struct {
	closed chan struct{}
}

func (w *closingWaiter) WaitUntilShutdown(ctx context.Context) {
	select {
	case <-w.closed:
	case <-ctx.Done():
	}
}

func TestWithContextAndShutdownCancelsThenWaits(t *testing.T) {
	waiter := &closingWaiter{closed: make(chan struct{})}
	WithContextAndShutdown(func(ctx context.Context) govnr.ShutdownWaiter {
		go func() {
			<-ctx.Done()
			close(waiter.closed)
		}()
		return waiter
	})

	select {
	case <-waiter.closed:
	default:
		t.Fatal("waiter should have shut down before returning")
	}
}

func TestEventuallyAndConsistently(t *testing.T) {
	var calls int32
	require.True(t, Eventually(func() bool {
		return atomic.AddInt32(&calls, 1) >= 3
	}))
	require.False(t, Eventually(func() bool { return false }))

	require.True(t, Consistently(func() bool { return true }))

	started := time.Now()
	require.False(t, Consistently(func() bool { return time.Since(started) < 20*time.Millisecond }))
}

func TestRequireCmpEqualPassesOnEqualStructs(t *testing.T) {
	type pair struct {
		A int
		B []string
	}
	RequireCmpEqual(t, pair{1, []string{"x"}}, pair{1, []string{"x"}})
}
