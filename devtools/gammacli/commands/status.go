// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package commands

import (
	"context"
	"github.com/orbs-network/orbs-counter-playground/crypto/encoding"
	"github.com/orbs-network/orbs-counter-playground/types/protocol"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newStatusCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status [txHash]",
		Short: "Show the status of a transaction, or of the node when no hash is given",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			if len(args) == 0 {
				status, err := opts.client().Status(context.Background())
				if err != nil {
					return err
				}
				return printJson(c.OutOrStdout(), status)
			}

			txHash, err := encoding.DecodeSha256(args[0])
			if err != nil {
				return errors.Wrapf(err, "transaction hash %s", args[0])
			}

			out, err := opts.client().GetTransactionStatus(context.Background(), txHash)
			if out != nil {
				if printErr := printJson(c.OutOrStdout(), out); printErr != nil {
					return printErr
				}
			}
			if err != nil {
				return errors.Wrap(err, "status request failed")
			}
			if out.RequestResult.RequestStatus != protocol.REQUEST_STATUS_COMPLETED {
				return errors.Errorf("transaction %s: %s", args[0], out.TransactionStatus)
			}
			return nil
		},
	}
}
