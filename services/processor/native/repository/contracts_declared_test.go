// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package repository

import (
	"github.com/orbs-network/orbs-counter-playground/services/processor/native/types"
	"github.com/orbs-network/orbs-counter-playground/types/primitives"
	"github.com/orbs-network/orbs-counter-playground/types/protocol"
	"github.com/stretchr/testify/require"
	"reflect"
	"strings"
	"testing"
)

var contextType = reflect.TypeOf((*types.Context)(nil)).Elem()
var errorType = reflect.TypeOf((*error)(nil)).Elem()

func TestAllContractsAreIndexedByName(t *testing.T) {
	for name, contract := range Contracts {
		require.Equal(t, name, contract.Name)
		require.NotNil(t, contract.InitSingleton, "contract %s has no constructor", name)
		require.Contains(t, contract.Methods, primitives.MethodName("_init"), "contract %s must declare _init", name)
	}
}

func TestAllMethodsAreDeclaredConsistently(t *testing.T) {
	for contractName, contract := range Contracts {
		for methodName, method := range contract.Methods {
			require.Equal(t, methodName, method.Name, "%s.%s is indexed under a different name", contractName, methodName)

			methodType := reflect.TypeOf(method.Implementation)
			require.Equal(t, reflect.Func, methodType.Kind(), "%s.%s", contractName, methodName)
			require.True(t, methodType.NumIn() >= 2, "%s.%s takes the contract and a context", contractName, methodName)
			require.Equal(t, contextType, methodType.In(1), "%s.%s", contractName, methodName)
			require.Equal(t, errorType, methodType.Out(methodType.NumOut()-1), "%s.%s must return an error last", contractName, methodName)

			if len(method.ArgNames) > 0 {
				require.Len(t, method.ArgNames, methodType.NumIn()-2, "%s.%s arg names", contractName, methodName)
			}
			if strings.HasPrefix(string(methodName), "_") {
				require.False(t, method.External, "%s.%s is a system method", contractName, methodName)
			}
		}
	}
}

func TestDeployableContractsAreServiceContracts(t *testing.T) {
	for _, name := range Deployable {
		contract, found := Contracts[name]
		require.True(t, found, "deployable contract %s is not indexed", name)
		require.Equal(t, protocol.PERMISSION_SCOPE_SERVICE, contract.Permission)
	}
}
