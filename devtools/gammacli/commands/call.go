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
	"github.com/orbs-network/orbs-counter-playground/types/protocol"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func methodArguments(args []string) (protocol.ArgumentArray, error) {
	if len(args) < 3 {
		return protocol.ArgumentArray{}, nil
	}
	return gammacli.ParseArguments(args[2])
}

func newCallCommand(opts *globalOptions) *cobra.Command {
	var accountId string

	cmd := &cobra.Command{
		Use:   "call <contract account> <method> ['<json args>']",
		Short: "Send a signed transaction calling a contract method",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(c *cobra.Command, args []string) error {
			inputArgs, err := methodArguments(args)
			if err != nil {
				return err
			}

			keyFile, err := gammacli.LoadKeyFile(opts.keysDir, primitives.AccountId(accountId))
			if err != nil {
				return err
			}

			tx, err := gammacli.CallTransaction(keyFile, primitives.AccountId(args[0]), primitives.MethodName(args[1]), inputArgs)
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
				return errors.Wrapf(err, "call to %s.%s failed", args[0], args[1])
			}
			return requireCommitted(out)
		},
	}
	cmd.Flags().StringVar(&accountId, "accountId", "", "signing account, must be logged in")
	_ = cmd.MarkFlagRequired("accountId")
	return cmd
}

func newViewCommand(opts *globalOptions) *cobra.Command {
	var accountId string

	cmd := &cobra.Command{
		Use:   "view <contract account> <method> ['<json args>']",
		Short: "Run a read only query against a contract method",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(c *cobra.Command, args []string) error {
			inputArgs, err := methodArguments(args)
			if err != nil {
				return err
			}

			query := gammacli.Query(primitives.AccountId(accountId), primitives.AccountId(args[0]), primitives.MethodName(args[1]), inputArgs)
			out, err := opts.client().RunQuery(context.Background(), query)
			if out != nil {
				if printErr := printJson(c.OutOrStdout(), out); printErr != nil {
					return printErr
				}
			}
			if err != nil {
				return errors.Wrapf(err, "view of %s.%s failed", args[0], args[1])
			}
			if out.ExecutionResult != protocol.EXECUTION_RESULT_SUCCESS {
				return errors.Errorf("query failed: %s", out.ExecutionResult)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&accountId, "accountId", "", "account the query is made on behalf of")
	return cmd
}
