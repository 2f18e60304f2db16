// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package commands

import (
	"context"
	"fmt"
	"github.com/orbs-network/orbs-counter-playground/bootstrap"
	"github.com/orbs-network/orbs-counter-playground/config"
	"github.com/orbs-network/orbs-counter-playground/instrumentation"
	"github.com/orbs-network/orbs-counter-playground/synchronization"
	"github.com/spf13/cobra"
)

func newStartCommand() *cobra.Command {
	var port int
	var overrideConfigJson string
	var silent bool

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Run a local gamma node in this process until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			cfg, err := config.ForGamma(fmt.Sprintf(":%d", port), overrideConfigJson)
			if err != nil {
				return err
			}
			if err := config.ModifyFromEnvironment(cfg); err != nil {
				return err
			}

			logger, err := instrumentation.GetLogger(silent, cfg)
			if err != nil {
				return err
			}

			node, err := bootstrap.NewNode(cfg, logger)
			if err != nil {
				return err
			}

			if _, err := fmt.Fprintf(c.OutOrStdout(), "gamma node listening on port %d\n", node.Port()); err != nil {
				return err
			}

			synchronization.NewShutdownListener(logger, node).ListenToOSShutdownSignal()
			node.WaitUntilShutdown(context.Background())
			return nil
		},
	}
	cmd.Flags().IntVar(&port, "port", 8080, "http port of the node")
	cmd.Flags().StringVar(&overrideConfigJson, "override-config", "", "json config overriding the gamma defaults")
	cmd.Flags().BoolVar(&silent, "silent", false, "do not log to stdout")
	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(c.OutOrStdout(), config.GetVersion())
			return err
		},
	}
}
