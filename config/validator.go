// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package config

import (
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
	"reflect"
	"runtime"
	"strings"
	"time"
)

type validator struct {
	logger log.Logger
	errs   []string
}

func NewValidator(logger log.Logger) *validator {
	return &validator{logger: logger}
}

func (v *validator) Validate(cfg NodeConfig) error {
	v.errs = nil

	if cfg.ProtocolVersion() == 0 {
		v.logger.Error("protocol version must be set")
		v.errs = append(v.errs, "protocol version must be set")
	}
	v.requirePositiveUint32(cfg.VirtualMachineMaxCallDepth, "virtual machine must allow at least one call")
	v.requirePositiveUint32(cfg.TransactionPoolMaxTransactionsPerSecond, "transaction pool must accept transactions")
	v.requirePositiveDuration(cfg.TransactionExpirationWindow, "transactions must have an expiration window")
	v.requirePositiveDuration(cfg.MetricsReportInterval, "metrics must be reported periodically")
	v.requireGT(cfg.TransactionExpirationWindow, cfg.TransactionPoolFutureTimestampGraceTimeout, "future timestamp grace must be less than the expiration window")

	if len(v.errs) > 0 {
		return errors.Errorf("invalid configuration: %s", strings.Join(v.errs, "; "))
	}
	return nil
}

func (v *validator) requireGT(d1 func() time.Duration, d2 func() time.Duration, msg string) {
	if d1() <= d2() {
		v.logger.Error(msg, log.Stringable(funcName(d1), d1()), log.Stringable(funcName(d2), d2()))
		v.errs = append(v.errs, msg)
	}
}

func (v *validator) requirePositiveDuration(d func() time.Duration, msg string) {
	if d() <= 0 {
		v.logger.Error(msg, log.Stringable(funcName(d), d()))
		v.errs = append(v.errs, msg)
	}
}

func (v *validator) requirePositiveUint32(u func() uint32, msg string) {
	if u() == 0 {
		v.logger.Error(msg, log.String("key", funcName(u)))
		v.errs = append(v.errs, msg)
	}
}

func funcName(i interface{}) string {
	fullName := runtime.FuncForPC(reflect.ValueOf(i).Pointer()).Name()
	lastDot := strings.LastIndex(fullName, ".")
	return strings.TrimSuffix(fullName[lastDot+1:], "-fm")
}
