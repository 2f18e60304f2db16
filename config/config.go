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

type NodeConfig interface {
	// shared
	ProtocolVersion() primitives.ProtocolVersion

	// virtual machine
	VirtualMachineMaxCallDepth() uint32

	// state storage
	BlockTrackerGraceDistance() uint32
	BlockTrackerGraceTimeout() time.Duration

	// transaction pool
	TransactionExpirationWindow() time.Duration
	TransactionPoolFutureTimestampGraceTimeout() time.Duration
	TransactionPoolMaxTransactionsPerSecond() uint32

	// public api
	PublicApiSendTransactionTimeout() time.Duration

	// http server
	HttpAddress() string
	HttpProfiling() bool

	// instrumentation
	MetricsReportInterval() time.Duration
	LoggerFilePath() string
	LoggerFullLog() bool
}

type mutableNodeConfig interface {
	NodeConfig
	Set(key string, value NodeConfigValue) mutableNodeConfig
	SetDuration(key string, value time.Duration) mutableNodeConfig
	SetUint32(key string, value uint32) mutableNodeConfig
	SetString(key string, value string) mutableNodeConfig
	SetBool(key string, value bool) mutableNodeConfig
	Clone() mutableNodeConfig
	Modify(newValues ...NodeConfigKeyValue) mutableNodeConfig
}

type VirtualMachineConfig interface {
	VirtualMachineMaxCallDepth() uint32
}

type StateStorageConfig interface {
	BlockTrackerGraceDistance() uint32
	BlockTrackerGraceTimeout() time.Duration
}

type TransactionPoolConfig interface {
	ProtocolVersion() primitives.ProtocolVersion
	TransactionExpirationWindow() time.Duration
	TransactionPoolFutureTimestampGraceTimeout() time.Duration
	TransactionPoolMaxTransactionsPerSecond() uint32
}

type PublicApiConfig interface {
	PublicApiSendTransactionTimeout() time.Duration
}

type HttpServerConfig interface {
	HttpAddress() string
	HttpProfiling() bool
}

type MetricsConfig interface {
	MetricsReportInterval() time.Duration
}

type LoggerConfig interface {
	LoggerFilePath() string
	LoggerFullLog() bool
}

type NodeConfigKeyValue struct {
	Key   string
	Value NodeConfigValue
}

type NodeConfigValue struct {
	Uint32Value   uint32
	DurationValue time.Duration
	StringValue   string
	BoolValue     bool
}
