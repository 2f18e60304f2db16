// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package commands

import (
	"fmt"
	"github.com/orbs-network/orbs-counter-playground/services/processor/native/artifact"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"io/ioutil"
	"os"
	"path/filepath"
)

var buildTargets = []struct {
	contract string
	file     string
}{
	{"Counter", "counter.wasm"},
	{"Donation", "donation.wasm"},
}

func newBuildCommand() *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Write the deployable artifacts of the bundled contracts",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			if err := os.MkdirAll(outDir, 0755); err != nil {
				return errors.Wrapf(err, "failed creating output dir %s", outDir)
			}
			for _, target := range buildTargets {
				path := filepath.Join(outDir, target.file)
				if err := ioutil.WriteFile(path, artifact.Build(target.contract), 0644); err != nil {
					return errors.Wrapf(err, "failed writing %s", path)
				}
				if _, err := fmt.Fprintf(c.OutOrStdout(), "built %s into %s\n", target.contract, path); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&outDir, "out", "out", "directory to write artifacts into")
	return cmd
}
