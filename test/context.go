// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package test

import (
	"context"
	"github.com/orbs-network/govnr"
	"time"
)

const shutdownTimeout = 5 * time.Second

func WithContext(f func(ctx context.Context)) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	f(ctx)
}

// WithContextAndShutdown cancels the context when f returns and then waits for the waiter to stop
func WithContextAndShutdown(f func(ctx context.Context) govnr.ShutdownWaiter) {
	ctx, cancel := context.WithCancel(context.Background())
	waiter := f(ctx)
	cancel()
	if waiter != nil {
		waitForShutdown(waiter)
	}
}

func waitForShutdown(waiter govnr.ShutdownWaiter) {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	waiter.WaitUntilShutdown(ctx)
}
