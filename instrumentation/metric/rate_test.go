// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package metric

import (
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

func TestRateAveragesEventsPerTick(t *testing.T) {
	start := time.Now()

	for name, measure := range map[string]func(r *Rate){
		"one batch": func(r *Rate) {
			r.Measure(100)
		},
		"single events": func(r *Rate) {
			for i := 0; i < 100; i++ {
				r.Measure(1)
			}
		},
		"uneven batches": func(r *Rate) {
			r.Measure(30)
			r.Measure(70)
		},
	} {
		t.Run(name, func(t *testing.T) {
			r := newRateWithStart("tps", start)
			require.Zero(t, r.export().Rate, "no tick has passed yet")

			measure(r)
			r.rotate(start.Add(1100 * time.Millisecond))
			require.EqualValues(t, 100, r.export().Rate)
		})
	}
}

func TestRateDecaysWithoutEvents(t *testing.T) {
	start := time.Now()
	r := newRateWithStart("tps", start)
	r.Measure(100)
	r.rotate(start.Add(1100 * time.Millisecond))

	r.rotate(start.Add(10 * time.Second))
	require.True(t, r.export().Rate < 100, "idle ticks should pull the average down")
}
