// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package test

import (
	"time"
)

const eventuallyTimeout = 2 * time.Second
const consistentlyDuration = 200 * time.Millisecond
const pollInterval = 5 * time.Millisecond

// Eventually polls f until it holds or the timeout passes
func Eventually(f func() bool) bool {
	deadline := time.Now().Add(eventuallyTimeout)
	for {
		if f() {
			return true
		}
		if time.Now().After(deadline) {
			return false
		}
		time.Sleep(pollInterval)
	}
}

func Consistently(f func() bool) bool {
	deadline := time.Now().Add(consistentlyDuration)
	for time.Now().Before(deadline) {
		if !f() {
			return false
		}
		time.Sleep(pollInterval)
	}
	return true
}
