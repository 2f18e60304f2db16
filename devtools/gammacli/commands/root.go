// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package commands

import (
	"encoding/json"
	"fmt"
	"github.com/orbs-network/orbs-counter-playground/devtools/gammacli"
	"github.com/orbs-network/orbs-counter-playground/types/protocol"
	"github.com/orbs-network/orbs-counter-playground/types/services"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"io"
	"time"
)

type globalOptions struct {
	host    string
	keysDir string
	timeout time.Duration
}

func (o *globalOptions) client() *gammacli.JsonClient {
	return gammacli.NewJsonClient(o.host, o.timeout)
}

func NewRootCommand() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:          "gamma-cli",
		Short:        "Deploy and call contracts on a local gamma node",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&opts.host, "host", gammacli.DEFAULT_HOST, "address of the gamma node")
	root.PersistentFlags().StringVar(&opts.keysDir, "keys-dir", gammacli.DEFAULT_KEYS_DIR, "directory holding account key files")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", 30*time.Second, "http timeout for node requests")

	root.AddCommand(
		newLoginCommand(opts),
		newBuildCommand(),
		newDeployCommand(opts),
		newCallCommand(opts),
		newViewCommand(opts),
		newStatusCommand(opts),
		newStartCommand(),
		newVersionCommand(),
	)
	return root
}

// Execute runs the cli and returns the process exit code
func Execute() int {
	if err := NewRootCommand().Execute(); err != nil {
		return 1
	}
	return 0
}

func printJson(out io.Writer, v interface{}) error {
	bytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed encoding output")
	}
	_, err = fmt.Fprintln(out, string(bytes))
	return err
}

func requireCommitted(out *services.SendTransactionOutput) error {
	if out.TransactionStatus != protocol.TRANSACTION_STATUS_COMMITTED {
		return errors.Errorf("transaction was not committed: %s", out.TransactionStatus)
	}
	if out.TransactionReceipt == nil {
		return errors.New("transaction was committed without a receipt")
	}
	if out.TransactionReceipt.ExecutionResult != protocol.EXECUTION_RESULT_SUCCESS {
		return errors.Errorf("transaction failed: %s", out.TransactionReceipt.ExecutionResult)
	}
	return nil
}
