// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"github.com/orbs-network/orbs-counter-playground/bootstrap"
	"github.com/orbs-network/orbs-counter-playground/config"
	"github.com/orbs-network/orbs-counter-playground/types/protocol"
	"github.com/orbs-network/orbs-counter-playground/types/services"
	"github.com/orbs-network/scribe/log"
	"github.com/stretchr/testify/require"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"
)

type cli struct {
	t       *testing.T
	host    string
	workDir string
}

func withNode(t *testing.T, f func(c *cli)) {
	node, err := bootstrap.NewNode(config.ForAcceptanceTests(), log.DefaultTestingLogger(t))
	require.NoError(t, err)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		node.GracefulShutdown(ctx)
	}()

	workDir, err := ioutil.TempDir("", "gamma-cli")
	require.NoError(t, err)
	defer os.RemoveAll(workDir)

	f(&cli{t: t, host: fmt.Sprintf("http://127.0.0.1:%d", node.Port()), workDir: workDir})
}

func (c *cli) run(args ...string) (string, error) {
	out := &bytes.Buffer{}
	root := NewRootCommand()
	root.SetOutput(out)
	root.SetArgs(append(args, "--host", c.host, "--keys-dir", filepath.Join(c.workDir, "keys")))
	err := root.Execute()
	return out.String(), err
}

func (c *cli) mustRun(args ...string) string {
	out, err := c.run(args...)
	require.NoError(c.t, err, "gamma-cli %v printed:\n%s", args, out)
	return out
}

func (c *cli) artifact(name string) string {
	return filepath.Join(c.workDir, "out", name)
}

func (c *cli) deploy(accountId string, wasmFile string) *services.SendTransactionOutput {
	c.mustRun("login", "--accountId", accountId)
	res := &services.SendTransactionOutput{}
	require.NoError(c.t, json.Unmarshal([]byte(c.mustRun("deploy", "--accountId", accountId, "--wasmFile", c.artifact(wasmFile))), res))
	return res
}

func (c *cli) getNum(accountId string) int64 {
	res := &services.RunQueryOutput{}
	require.NoError(c.t, json.Unmarshal([]byte(c.mustRun("view", accountId, "get_num")), res))
	require.Len(c.t, res.OutputArguments, 1)
	return res.OutputArguments[0].Int64Value
}

func TestBuildWritesBothArtifacts(t *testing.T) {
	dir, err := ioutil.TempDir("", "gamma-build")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	root := NewRootCommand()
	root.SetOutput(&bytes.Buffer{})
	root.SetArgs([]string{"build", "--out", dir})
	require.NoError(t, root.Execute())

	for _, file := range []string{"counter.wasm", "donation.wasm"} {
		info, err := os.Stat(filepath.Join(dir, file))
		require.NoError(t, err)
		require.NotZero(t, info.Size())
	}
}

func TestCounterThroughCli(t *testing.T) {
	withNode(t, func(c *cli) {
		c.mustRun("build", "--out", filepath.Join(c.workDir, "out"))

		deployed := c.deploy("counter1", "counter.wasm")
		require.Equal(t, protocol.TRANSACTION_STATUS_COMMITTED, deployed.TransactionStatus)
		require.EqualValues(t, 0, c.getNum("counter1"))

		c.mustRun("call", "counter1", "increment", "--accountId", "counter1")
		require.EqualValues(t, 1, c.getNum("counter1"))

		c.mustRun("call", "counter1", "decrement", "--accountId", "counter1")
		c.mustRun("call", "counter1", "decrement", "--accountId", "counter1")
		require.EqualValues(t, -1, c.getNum("counter1"))

		c.mustRun("call", "counter1", "reset", "--accountId", "counter1")
		require.EqualValues(t, 0, c.getNum("counter1"))
	})
}

func TestDonationThroughCli(t *testing.T) {
	withNode(t, func(c *cli) {
		c.mustRun("build", "--out", filepath.Join(c.workDir, "out"))
		c.deploy("counter1", "counter.wasm")
		c.deploy("donor", "donation.wasm")

		c.mustRun("call", "donor", "increment_my_number", `{"account_id": "counter1"}`, "--accountId", "donor")
		require.EqualValues(t, 1, c.getNum("counter1"))
	})
}

func TestStatusOfDeployTransaction(t *testing.T) {
	withNode(t, func(c *cli) {
		c.mustRun("build", "--out", filepath.Join(c.workDir, "out"))
		deployed := c.deploy("counter1", "counter.wasm")

		status := &services.GetTransactionStatusOutput{}
		require.NoError(t, json.Unmarshal([]byte(c.mustRun("status", deployed.TransactionReceipt.Txhash.String())), status))
		require.Equal(t, protocol.REQUEST_STATUS_COMPLETED, status.RequestResult.RequestStatus)
		require.Equal(t, deployed.TransactionReceipt.Txhash, status.TransactionReceipt.Txhash)

		_, err := c.run("status", "abcd")
		require.Error(t, err, "malformed hash must fail")
	})
}

func TestFailuresExitWithError(t *testing.T) {
	withNode(t, func(c *cli) {
		_, err := c.run("deploy", "--accountId", "counter1", "--wasmFile", c.artifact("missing.wasm"))
		require.Error(t, err, "missing artifact")

		c.mustRun("build", "--out", filepath.Join(c.workDir, "out"))
		_, err = c.run("deploy", "--accountId", "stranger", "--wasmFile", c.artifact("counter.wasm"))
		require.Error(t, err, "account never logged in")

		c.mustRun("login", "--accountId", "caller")
		_, err = c.run("call", "nobody", "increment", "--accountId", "caller")
		require.Error(t, err, "contract not deployed")

		_, err = c.run("call", "nobody", "increment", `{"amount": 1.5}`, "--accountId", "caller")
		require.Error(t, err, "unsupported argument")

		_, err = c.run("view", "nobody", "get_num")
		require.Error(t, err, "query of undeployed contract")
	})
}
