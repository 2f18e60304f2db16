// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package config

import (
	"github.com/orbs-network/orbs-counter-playground/types/primitives"
	"time"
)

const (
	PROTOCOL_VERSION = "PROTOCOL_VERSION"

	VIRTUAL_MACHINE_MAX_CALL_DEPTH = "VIRTUAL_MACHINE_MAX_CALL_DEPTH"

	BLOCK_TRACKER_GRACE_DISTANCE = "BLOCK_TRACKER_GRACE_DISTANCE"
	BLOCK_TRACKER_GRACE_TIMEOUT  = "BLOCK_TRACKER_GRACE_TIMEOUT"

	TRANSACTION_EXPIRATION_WINDOW                   = "TRANSACTION_EXPIRATION_WINDOW"
	TRANSACTION_POOL_FUTURE_TIMESTAMP_GRACE_TIMEOUT = "TRANSACTION_POOL_FUTURE_TIMESTAMP_GRACE_TIMEOUT"
	TRANSACTION_POOL_MAX_TRANSACTIONS_PER_SECOND    = "TRANSACTION_POOL_MAX_TRANSACTIONS_PER_SECOND"

	PUBLIC_API_SEND_TRANSACTION_TIMEOUT = "PUBLIC_API_SEND_TRANSACTION_TIMEOUT"

	HTTP_ADDRESS   = "HTTP_ADDRESS"
	HTTP_PROFILING = "HTTP_PROFILING"

	METRICS_REPORT_INTERVAL = "METRICS_REPORT_INTERVAL"
	LOGGER_FILE_PATH        = "LOGGER_FILE_PATH"
	LOGGER_FULL_LOG         = "LOGGER_FULL_LOG"
)

type config struct {
	kv map[string]NodeConfigValue
}

func emptyConfig() mutableNodeConfig {
	return &config{
		kv: make(map[string]NodeConfigValue),
	}
}

func (c *config) Set(key string, value NodeConfigValue) mutableNodeConfig {
	c.kv[key] = value
	return c
}

func (c *config) SetDuration(key string, value time.Duration) mutableNodeConfig {
	c.kv[key] = NodeConfigValue{DurationValue: value}
	return c
}

func (c *config) SetUint32(key string, value uint32) mutableNodeConfig {
	c.kv[key] = NodeConfigValue{Uint32Value: value}
	return c
}

func (c *config) SetString(key string, value string) mutableNodeConfig {
	c.kv[key] = NodeConfigValue{StringValue: value}
	return c
}

func (c *config) SetBool(key string, value bool) mutableNodeConfig {
	c.kv[key] = NodeConfigValue{BoolValue: value}
	return c
}

func (c *config) Modify(newValues ...NodeConfigKeyValue) mutableNodeConfig {
	for _, kv := range newValues {
		c.kv[kv.Key] = kv.Value
	}
	return c
}

func (c *config) Clone() mutableNodeConfig {
	cloned := &config{
		kv: make(map[string]NodeConfigValue, len(c.kv)),
	}
	for key, value := range c.kv {
		cloned.kv[key] = value
	}
	return cloned
}

func (c *config) ProtocolVersion() primitives.ProtocolVersion {
	return primitives.ProtocolVersion(c.kv[PROTOCOL_VERSION].Uint32Value)
}

func (c *config) VirtualMachineMaxCallDepth() uint32 {
	return c.kv[VIRTUAL_MACHINE_MAX_CALL_DEPTH].Uint32Value
}

func (c *config) BlockTrackerGraceDistance() uint32 {
	return c.kv[BLOCK_TRACKER_GRACE_DISTANCE].Uint32Value
}

func (c *config) BlockTrackerGraceTimeout() time.Duration {
	return c.kv[BLOCK_TRACKER_GRACE_TIMEOUT].DurationValue
}

func (c *config) TransactionExpirationWindow() time.Duration {
	return c.kv[TRANSACTION_EXPIRATION_WINDOW].DurationValue
}

func (c *config) TransactionPoolFutureTimestampGraceTimeout() time.Duration {
	return c.kv[TRANSACTION_POOL_FUTURE_TIMESTAMP_GRACE_TIMEOUT].DurationValue
}

func (c *config) TransactionPoolMaxTransactionsPerSecond() uint32 {
	return c.kv[TRANSACTION_POOL_MAX_TRANSACTIONS_PER_SECOND].Uint32Value
}

func (c *config) PublicApiSendTransactionTimeout() time.Duration {
	return c.kv[PUBLIC_API_SEND_TRANSACTION_TIMEOUT].DurationValue
}

func (c *config) HttpAddress() string {
	return c.kv[HTTP_ADDRESS].StringValue
}

func (c *config) HttpProfiling() bool {
	return c.kv[HTTP_PROFILING].BoolValue
}

func (c *config) MetricsReportInterval() time.Duration {
	return c.kv[METRICS_REPORT_INTERVAL].DurationValue
}

func (c *config) LoggerFilePath() string {
	return c.kv[LOGGER_FILE_PATH].StringValue
}

func (c *config) LoggerFullLog() bool {
	return c.kv[LOGGER_FULL_LOG].BoolValue
}
