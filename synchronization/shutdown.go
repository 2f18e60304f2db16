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
	"github.com/orbs-network/scribe/log"
	"os"
	"os/signal"
	"syscall"
	"time"
)

const DEFAULT_SHUTDOWN_GRACE = 1 * time.Second

var shutdownSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}

type ShutdownWaiter interface {
	WaitUntilShutdown(shutdownContext context.Context)
}

type GracefulShutdowner interface {
	ShutdownWaiter
	GracefulShutdown(shutdownContext context.Context)
}

// ShutdownGracefully gives s at most grace to stop its goroutines
func ShutdownGracefully(s GracefulShutdowner, grace time.Duration) {
	ctx, cancel := context.WithTimeout(context.Background(), grace)
	defer cancel()
	s.GracefulShutdown(ctx)
}

type SignalListener struct {
	logger  log.Logger
	target  GracefulShutdowner
	grace   time.Duration
	signals chan os.Signal
}

func NewShutdownListener(logger log.Logger, target GracefulShutdowner) *SignalListener {
	return &SignalListener{
		logger:  logger,
		target:  target,
		grace:   DEFAULT_SHUTDOWN_GRACE,
		signals: make(chan os.Signal, 1),
	}
}

func (l *SignalListener) WithGrace(grace time.Duration) *SignalListener {
	l.grace = grace
	return l
}

// ListenToOSShutdownSignal shuts the target down on the first SIGINT or SIGTERM
func (l *SignalListener) ListenToOSShutdownSignal() {
	signal.Notify(l.signals, shutdownSignals...)
	l.listen()
}

func (l *SignalListener) listen() {
	govnr.Once(logfields.GovnrErrorer(l.logger), func() {
		received := <-l.signals
		signal.Stop(l.signals)
		l.logger.Info("terminating gracefully due to os signal", log.Stringable("signal", received), log.Stringable("grace", l.grace))

		ShutdownGracefully(l.target, l.grace)
	})
}
