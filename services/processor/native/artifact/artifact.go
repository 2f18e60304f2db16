// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

// Package artifact defines the deployable form of a native contract. Native contracts are
// compiled into the node, so an artifact only names the contract an account runs.
package artifact

import (
	"encoding/json"
	"github.com/pkg/errors"
	"strings"
)

const CURRENT_VERSION = 1

type Artifact struct {
	Contract string `json:"contract"`
	Version  uint32 `json:"version"`
}

func Build(contractName string) []byte {
	code, _ := json.Marshal(&Artifact{Contract: contractName, Version: CURRENT_VERSION})
	return code
}

func Parse(code []byte) (*Artifact, error) {
	if len(code) == 0 {
		return nil, errors.New("artifact is empty")
	}

	var res Artifact
	if err := json.Unmarshal(code, &res); err != nil {
		return nil, errors.Wrap(err, "artifact is not valid json")
	}
	if strings.TrimSpace(res.Contract) == "" {
		return nil, errors.New("artifact does not name a contract")
	}
	if res.Version != CURRENT_VERSION {
		return nil, errors.Errorf("artifact version %d is not supported, expected %d", res.Version, CURRENT_VERSION)
	}
	return &res, nil
}
