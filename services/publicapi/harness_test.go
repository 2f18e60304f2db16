// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package publicapi

import (
	"github.com/orbs-network/orbs-counter-playground/config"
	"github.com/orbs-network/orbs-counter-playground/instrumentation/metric"
	"github.com/orbs-network/orbs-counter-playground/types/services"
	"github.com/orbs-network/scribe/log"
	"testing"
)

type harness struct {
	papi   services.PublicApi
	txpool *services.MockTransactionPool
	vm     *services.MockVirtualMachine
}

func newPublicApiHarness(tb testing.TB) *harness {
	txpool := &services.MockTransactionPool{}
	vm := &services.MockVirtualMachine{}
	papi := NewPublicApi(config.ForAcceptanceTests(), txpool, vm, log.DefaultTestingLogger(tb), metric.NewRegistry())

	return &harness{
		papi:   papi,
		txpool: txpool,
		vm:     vm,
	}
}
