// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package synchronization

import (
	"context"
	"github.com/orbs-network/govnr"
	"github.com/orbs-network/orbs-counter-playground/instrumentation/logfields"
	"sync/atomic"
	"time"
)

// PeriodicalTrigger calls a handler on a fixed interval from a supervised goroutine until its context ends or Stop is called
type PeriodicalTrigger struct {
	fired uint64 // first for 64 bit atomic alignment

	govnr.TreeSupervisor
	Closed govnr.ContextEndedChan

	name     string
	interval time.Duration
	cancel   context.CancelFunc
}

func NewPeriodicalTrigger(ctx context.Context, name string, interval time.Duration, logger logfields.Errorer, handler func(), onStop func()) *PeriodicalTrigger {
	runCtx, cancel := context.WithCancel(ctx)
	t := &PeriodicalTrigger{
		name:     name,
		interval: interval,
		cancel:   cancel,
	}

	handle := govnr.Forever(runCtx, name, logfields.GovnrErrorer(logger), func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				atomic.AddUint64(&t.fired, 1)
				handler()
			case <-runCtx.Done():
				if onStop != nil {
					go onStop()
				}
				return
			}
		}
	})
	t.Closed = handle.Done()
	t.Supervise(handle)

	return t
}

func (t *PeriodicalTrigger) TimesTriggered() uint64 {
	return atomic.LoadUint64(&t.fired)
}

// Stop returns after the handler goroutine exited
func (t *PeriodicalTrigger) Stop() {
	t.cancel()
	<-t.Closed
}
