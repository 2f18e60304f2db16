// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package config

import (
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"time"
)

const ENVIRONMENT_PREFIX = "GAMMA"

// environment values win over files and presets; zero values mean "not set"
type environmentOverrides struct {
	HttpAddress              string        `envconfig:"HTTP_ADDRESS"`
	LogPath                  string        `envconfig:"LOG_PATH"`
	FullLog                  *bool         `envconfig:"FULL_LOG"`
	MaxTransactionsPerSecond uint32        `envconfig:"MAX_TRANSACTIONS_PER_SECOND"`
	MaxCallDepth             uint32        `envconfig:"MAX_CALL_DEPTH"`
	MetricsReportInterval    time.Duration `envconfig:"METRICS_REPORT_INTERVAL"`
}

func ModifyFromEnvironment(cfg mutableNodeConfig) error {
	var env environmentOverrides
	if err := envconfig.Process(ENVIRONMENT_PREFIX, &env); err != nil {
		return errors.Wrap(err, "could not read config from environment")
	}

	if env.HttpAddress != "" {
		cfg.SetString(HTTP_ADDRESS, env.HttpAddress)
	}
	if env.LogPath != "" {
		cfg.SetString(LOGGER_FILE_PATH, env.LogPath)
	}
	if env.FullLog != nil {
		cfg.SetBool(LOGGER_FULL_LOG, *env.FullLog)
	}
	if env.MaxTransactionsPerSecond != 0 {
		cfg.SetUint32(TRANSACTION_POOL_MAX_TRANSACTIONS_PER_SECOND, env.MaxTransactionsPerSecond)
	}
	if env.MaxCallDepth != 0 {
		cfg.SetUint32(VIRTUAL_MACHINE_MAX_CALL_DEPTH, env.MaxCallDepth)
	}
	if env.MetricsReportInterval != 0 {
		cfg.SetDuration(METRICS_REPORT_INTERVAL, env.MetricsReportInterval)
	}

	return nil
}
