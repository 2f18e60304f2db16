// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package config

import (
	"time"
)

// all other configs are variations from the production one
func defaultProductionConfig() mutableNodeConfig {
	cfg := emptyConfig()

	cfg.SetUint32(PROTOCOL_VERSION, 1)

	// deep enough for any sane chain of cross-account calls
	cfg.SetUint32(VIRTUAL_MACHINE_MAX_CALL_DEPTH, 16)

	// scheduling hick-ups inside the node
	cfg.SetUint32(BLOCK_TRACKER_GRACE_DISTANCE, 5)
	cfg.SetDuration(BLOCK_TRACKER_GRACE_TIMEOUT, 1*time.Second)

	cfg.SetDuration(TRANSACTION_EXPIRATION_WINDOW, 30*time.Minute)
	cfg.SetDuration(TRANSACTION_POOL_FUTURE_TIMESTAMP_GRACE_TIMEOUT, 1*time.Minute)
	cfg.SetUint32(TRANSACTION_POOL_MAX_TRANSACTIONS_PER_SECOND, 100)

	cfg.SetDuration(PUBLIC_API_SEND_TRANSACTION_TIMEOUT, 20*time.Second)

	cfg.SetDuration(METRICS_REPORT_INTERVAL, 30*time.Second)
	cfg.SetBool(LOGGER_FULL_LOG, false)

	cfg.SetString(HTTP_ADDRESS, ":8080")
	cfg.SetBool(HTTP_PROFILING, false)

	return cfg
}

// config for a long running node
func ForProduction(logFilePath string) mutableNodeConfig {
	cfg := defaultProductionConfig()

	if logFilePath != "" {
		cfg.SetString(LOGGER_FILE_PATH, logFilePath)
	}
	return cfg
}

// config for gamma dev network, the local simulator developers deploy and test contracts against
func ForGamma(serverAddress string, overrideJsonAsString string) (mutableNodeConfig, error) {
	cfg := defaultProductionConfig()

	cfg.SetString(HTTP_ADDRESS, serverAddress)
	cfg.SetBool(HTTP_PROFILING, true)
	cfg.SetBool(LOGGER_FULL_LOG, true)
	cfg.SetDuration(BLOCK_TRACKER_GRACE_TIMEOUT, 100*time.Millisecond)
	cfg.SetDuration(PUBLIC_API_SEND_TRANSACTION_TIMEOUT, 10*time.Second)
	cfg.SetUint32(TRANSACTION_POOL_MAX_TRANSACTIONS_PER_SECOND, 1000)
	cfg.SetDuration(METRICS_REPORT_INTERVAL, 1*time.Minute)

	if overrideJsonAsString != "" {
		if err := modifyFromJson(cfg, overrideJsonAsString); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

func ForAcceptanceTests() mutableNodeConfig {
	cfg := defaultProductionConfig()

	cfg.SetString(HTTP_ADDRESS, "127.0.0.1:0")
	cfg.SetBool(LOGGER_FULL_LOG, true)
	cfg.SetDuration(BLOCK_TRACKER_GRACE_TIMEOUT, 100*time.Millisecond)
	cfg.SetDuration(PUBLIC_API_SEND_TRANSACTION_TIMEOUT, 1*time.Second)

	// tests send bursts, the limiter is tested separately
	cfg.SetUint32(TRANSACTION_POOL_MAX_TRANSACTIONS_PER_SECOND, 10000)
	cfg.SetDuration(METRICS_REPORT_INTERVAL, 100*time.Millisecond)

	return cfg
}
