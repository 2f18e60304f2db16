// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package types

import (
	"github.com/orbs-network/orbs-counter-playground/types/primitives"
	"github.com/orbs-network/orbs-counter-playground/types/protocol"
)

// StateSdk reads and writes the state of the running contract's account
type StateSdk interface {
	ReadBytesByKey(ctx Context, key string) ([]byte, error)
	WriteBytesByKey(ctx Context, key string, value []byte) error
	ReadStringByKey(ctx Context, key string) (string, error)
	WriteStringByKey(ctx Context, key string, value string) error
	ReadUint64ByKey(ctx Context, key string) (uint64, error)
	WriteUint64ByKey(ctx Context, key string, value uint64) error
	ReadInt64ByKey(ctx Context, key string) (int64, error)
	WriteInt64ByKey(ctx Context, key string, value int64) error
	ClearByKey(ctx Context, key string) error
}

type ServiceSdk interface {
	CallMethod(ctx Context, accountId string, methodName string, args ...interface{}) (protocol.ArgumentArray, error)
}

type EnvSdk interface {
	GetSignerAccountId(ctx Context) (primitives.AccountId, error)
	GetPredecessorAccountId(ctx Context) (primitives.AccountId, error)
	GetCurrentAccountId(ctx Context) (primitives.AccountId, error)
	GetBlockHeight(ctx Context) (primitives.BlockHeight, error)
	GetBlockTimestamp(ctx Context) (primitives.TimestampNano, error)
}

type LogSdk interface {
	Log(ctx Context, message string) error
}
