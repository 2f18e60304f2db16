// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package metric

import (
	"github.com/stretchr/testify/require"
	"sync"
	"testing"
)

func TestGaugeTracksValueAndPeak(t *testing.T) {
	g := &Gauge{}
	g.Add(10)
	g.Inc()
	g.Dec()
	g.Dec()
	require.EqualValues(t, 9, g.Value())
	require.EqualValues(t, 11, g.Peak())

	g.Update(3)
	require.EqualValues(t, 3, g.Value())
	require.EqualValues(t, 11, g.Peak(), "lower update keeps the peak")

	g.Update(40)
	require.EqualValues(t, 40, g.Peak())
}

func TestGaugeIsSafeForConcurrentUse(t *testing.T) {
	g := &Gauge{}
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				g.Inc()
			}
		}()
	}
	wg.Wait()

	require.EqualValues(t, 8000, g.Value())
	require.EqualValues(t, 8000, g.Peak())
}
