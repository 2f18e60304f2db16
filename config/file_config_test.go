// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package config

import (
	"github.com/stretchr/testify/require"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestPopulateConfigByValueType(t *testing.T) {
	cfg := emptyConfig()
	err := modifyFromJson(cfg, `{
		"transaction-pool-max-transactions-per-second": 7,
		"transaction-expiration-window": "10m",
		"http-address": ":7070",
		"logger-full-log": true
	}`)
	require.NoError(t, err)

	require.EqualValues(t, 7, cfg.TransactionPoolMaxTransactionsPerSecond())
	require.Equal(t, 10*time.Minute, cfg.TransactionExpirationWindow())
	require.Equal(t, ":7070", cfg.HttpAddress())
	require.True(t, cfg.LoggerFullLog())
}

func TestPopulateConfigRejectsNegativeNumbers(t *testing.T) {
	err := modifyFromJson(emptyConfig(), `{"virtual-machine-max-call-depth": -1}`)
	require.Error(t, err)
	require.Contains(t, err.Error(), "virtual-machine-max-call-depth")
}

func TestPopulateConfigRejectsNestedValues(t *testing.T) {
	err := modifyFromJson(emptyConfig(), `{"http-address": {"host": "localhost"}}`)
	require.Error(t, err)
}

func TestGetNodeConfigFromFiles(t *testing.T) {
	dir, err := ioutil.TempDir("", "config")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	first := filepath.Join(dir, "first.json")
	second := filepath.Join(dir, "second.json")
	require.NoError(t, ioutil.WriteFile(first, []byte(`{"virtual-machine-max-call-depth": 3}`), 0644))
	require.NoError(t, ioutil.WriteFile(second, []byte(`{"virtual-machine-max-call-depth": 5}`), 0644))

	cfg, err := GetNodeConfigFromFiles([]string{first, second}, ":8181")
	require.NoError(t, err)

	require.EqualValues(t, 5, cfg.VirtualMachineMaxCallDepth(), "later files should win")
	require.Equal(t, ":8181", cfg.HttpAddress())
}

func TestGetNodeConfigFromMissingFile(t *testing.T) {
	_, err := GetNodeConfigFromFiles([]string{"/does/not/exist.json"}, "")
	require.Error(t, err)
}

func TestArrayFlagsCollectsValues(t *testing.T) {
	var flags ArrayFlags
	require.NoError(t, flags.Set("a.json"))
	require.NoError(t, flags.Set("b.json"))

	require.Equal(t, "a.json,b.json", flags.String())
}
