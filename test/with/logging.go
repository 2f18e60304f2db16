// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package with

import (
	"github.com/orbs-network/scribe/log"
	"testing"
)

type LoggingHarness struct {
	Logger     log.Logger
	T          testing.TB
	testOutput *log.TestOutput
}

// AllowErrorsMatching marks error logs the test expects, so they do not fail it
func (h *LoggingHarness) AllowErrorsMatching(pattern string) {
	h.testOutput.AllowErrorsMatching(pattern)
}

// Logging runs f with a logger writing into the test output. Any unexpected error log fails the test.
func Logging(tb testing.TB, f func(harness *LoggingHarness)) {
	testOutput := log.NewTestOutput(tb, log.NewHumanReadableFormatter())
	h := &LoggingHarness{
		Logger:     log.GetLogger().WithOutput(testOutput),
		T:          tb,
		testOutput: testOutput,
	}
	defer testOutput.TestTerminated()

	f(h)

	if testOutput.HasErrors() {
		tb.Fatal("test logged unexpected errors")
	}
}
