// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package repository

import (
	"github.com/orbs-network/orbs-counter-playground/services/processor/native/repository/Counter"
	"github.com/orbs-network/orbs-counter-playground/services/processor/native/repository/Donation"
	"github.com/orbs-network/orbs-counter-playground/services/processor/native/repository/_Deployments"
	"github.com/orbs-network/orbs-counter-playground/services/processor/native/types"
)

var Contracts = map[string]types.ContractInfo{
	deployments_systemcontract.CONTRACT.Name: deployments_systemcontract.CONTRACT,
	counter.CONTRACT.Name:                    counter.CONTRACT,
	donation.CONTRACT.Name:                   donation.CONTRACT,
	// add new native contracts here
}

// contracts users may deploy to their accounts with gamma-cli
var Deployable = []string{
	counter.CONTRACT_NAME,
	donation.CONTRACT_NAME,
}
