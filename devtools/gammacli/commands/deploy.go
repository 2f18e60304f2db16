// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package commands

import (
	"context"
	"github.com/orbs-network/orbs-counter-playground/devtools/gammacli"
	"github.com/orbs-network/orbs-counter-playground/types/primitives"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"io/ioutil"
)

func newDeployCommand(opts *globalOptions) *cobra.Command {
	var accountId, wasmFile string

	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Deploy an artifact onto an account",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			code, err := ioutil.ReadFile(wasmFile)
			if err != nil {
				return errors.Wrapf(err, "could not read artifact, run build first")
			}

			keyFile, err := gammacli.LoadKeyFile(opts.keysDir, primitives.AccountId(accountId))
			if err != nil {
				return err
			}

			tx, err := gammacli.DeployTransaction(keyFile, code)
			if err != nil {
				return err
			}

			out, err := opts.client().SendTransaction(context.Background(), tx)
			if out != nil {
				if printErr := printJson(c.OutOrStdout(), out); printErr != nil {
					return printErr
				}
			}
			if err != nil {
				return errors.Wrapf(err, "deploy to %s failed", accountId)
			}
			return requireCommitted(out)
		},
	}
	cmd.Flags().StringVar(&accountId, "accountId", "", "account to deploy onto, must be logged in")
	cmd.Flags().StringVar(&wasmFile, "wasmFile", "", "path of the artifact to deploy")
	_ = cmd.MarkFlagRequired("accountId")
	_ = cmd.MarkFlagRequired("wasmFile")
	return cmd
}
