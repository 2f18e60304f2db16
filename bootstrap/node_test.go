// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package bootstrap

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/orbs-network/orbs-counter-playground/bootstrap/httpserver"
	"github.com/orbs-network/orbs-counter-playground/config"
	"github.com/orbs-network/orbs-counter-playground/test"
	"github.com/orbs-network/scribe/log"
	"github.com/stretchr/testify/require"
	"io/ioutil"
	"net/http"
	"testing"
	"time"
)

func shutdownNode(t *testing.T, node *Node) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	node.GracefulShutdown(ctx)
	node.WaitUntilShutdown(ctx)
	require.NoError(t, ctx.Err(), "node did not shut down in time")
}

func TestNodeServesStatusUntilShutdown(t *testing.T) {
	node, err := NewNode(config.ForAcceptanceTests(), log.DefaultTestingLogger(t))
	require.NoError(t, err)

	url := fmt.Sprintf("http://127.0.0.1:%d/status", node.Port())
	res, err := http.Get(url)
	require.NoError(t, err)
	body, err := ioutil.ReadAll(res.Body)
	res.Body.Close()
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode)

	status := &httpserver.StatusResponse{}
	require.NoError(t, json.Unmarshal(body, status))
	require.EqualValues(t, 0, status.BlockHeight.LastCommitted, "a fresh node has no blocks")

	shutdownNode(t, node)

	require.True(t, test.Eventually(func() bool {
		_, err := http.Get(url)
		return err != nil
	}), "node should stop serving after shutdown")
}

func TestNodeRefusesInvalidConfig(t *testing.T) {
	cfg := config.ForAcceptanceTests()
	cfg.SetUint32(config.TRANSACTION_POOL_MAX_TRANSACTIONS_PER_SECOND, 0)

	testOutput := log.NewTestOutput(t, log.NewHumanReadableFormatter())
	testOutput.AllowErrorsMatching("transaction pool must accept transactions")

	_, err := NewNode(cfg, log.GetLogger().WithOutput(testOutput))
	require.Error(t, err)
}

func TestNodeFailsWhenAddressIsTaken(t *testing.T) {
	first, err := NewNode(config.ForAcceptanceTests(), log.DefaultTestingLogger(t))
	require.NoError(t, err)
	defer shutdownNode(t, first)

	cfg := config.ForAcceptanceTests()
	cfg.SetString(config.HTTP_ADDRESS, fmt.Sprintf("127.0.0.1:%d", first.Port()))

	_, err = NewNode(cfg, log.DefaultTestingLogger(t))
	require.Error(t, err)
}
