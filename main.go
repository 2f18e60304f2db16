// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package main

import (
	"context"
	"flag"
	"fmt"
	"github.com/orbs-network/orbs-counter-playground/bootstrap"
	"github.com/orbs-network/orbs-counter-playground/config"
	"github.com/orbs-network/orbs-counter-playground/instrumentation"
	"github.com/orbs-network/orbs-counter-playground/synchronization"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
	"os"
)

const (
	exitBadConfiguration = 1
	exitPanicInMain      = 2
	exitPanicInBootstrap = 8
)

type options struct {
	httpAddress string
	silent      bool
	version     bool
	configFiles config.ArrayFlags
}

func parseOptions() *options {
	opts := &options{}
	flag.StringVar(&opts.httpAddress, "listen", "", "ip address and port for http server, overrides config files")
	flag.BoolVar(&opts.silent, "silent", false, "disable output to stdout")
	flag.BoolVar(&opts.version, "version", false, "returns information about version")
	flag.Var(&opts.configFiles, "config", "path/to/config.json, may be repeated")
	flag.Parse()
	return opts
}

// startNode reads configuration in order of precedence: presets, then files, then environment
func startNode(opts *options) (*bootstrap.Node, log.Logger, error) {
	cfg, err := config.GetNodeConfigFromFiles(opts.configFiles, opts.httpAddress)
	if err != nil {
		return nil, nil, errors.Wrap(err, "error reading configuration")
	}
	if err := config.ModifyFromEnvironment(cfg); err != nil {
		return nil, nil, err
	}

	logger, err := instrumentation.GetLogger(opts.silent, cfg)
	if err != nil {
		return nil, nil, errors.Wrap(err, "error creating logger")
	}

	node, err := bootstrap.NewNode(cfg, logger)
	if err != nil {
		return nil, logger, errors.Wrap(err, "error starting node")
	}
	return node, logger, nil
}

func main() {
	logger := instrumentation.GetBootstrapCrashLogger()
	opts := parseOptions()
	if opts.version {
		fmt.Println(config.GetVersion())
		return
	}

	var node *bootstrap.Node
	func() {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("unexpected error during bootstrap", log.Error(errors.Errorf("unknown error: %v", r)))
				os.Exit(exitPanicInBootstrap)
			}
		}()

		started, nodeLogger, err := startNode(opts)
		if nodeLogger != nil {
			logger = nodeLogger
		}
		if err != nil {
			logger.Error("node did not start", log.Error(err))
			os.Exit(exitBadConfiguration)
		}
		node = started
		synchronization.NewShutdownListener(logger, node).ListenToOSShutdownSignal()
	}()

	defer func() {
		if r := recover(); r != nil {
			logger.Error("unexpected error in main goroutine", log.Error(errors.Errorf("unknown error: %v", r)))
			os.Exit(exitPanicInMain)
		}
	}()
	node.WaitUntilShutdown(context.Background())
}
