// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package commands

import (
	"fmt"
	"github.com/orbs-network/orbs-counter-playground/crypto/encoding"
	"github.com/orbs-network/orbs-counter-playground/devtools/gammacli"
	"github.com/orbs-network/orbs-counter-playground/types/primitives"
	"github.com/spf13/cobra"
)

func newLoginCommand(opts *globalOptions) *cobra.Command {
	var accountId string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Create a key pair for an account",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			keyFile, path, err := gammacli.Login(opts.keysDir, primitives.AccountId(accountId))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(c.OutOrStdout(), "logged in as %s with address %s, keys saved to %s\n", keyFile.AccountId, encoding.EncodeHex(keyFile.Address), path)
			return err
		},
	}
	cmd.Flags().StringVar(&accountId, "accountId", "", "account to create keys for")
	_ = cmd.MarkFlagRequired("accountId")
	return cmd
}
