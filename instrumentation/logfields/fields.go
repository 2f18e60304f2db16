// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package logfields

import (
	"github.com/orbs-network/orbs-counter-playground/types/primitives"
	"github.com/orbs-network/scribe/log"
)

func Transaction(txHash primitives.Sha256) *log.Field {
	return log.Stringable("txHash", txHash)
}

func Query(queryHash primitives.Sha256) *log.Field {
	return log.Stringable("queryHash", queryHash)
}

func Account(key string, accountId primitives.AccountId) *log.Field {
	return log.String(key, string(accountId))
}

func Method(methodName primitives.MethodName) *log.Field {
	return log.String("method", string(methodName))
}

func TimestampNano(key string, value primitives.TimestampNano) *log.Field {
	return &log.Field{Key: key, Int: int64(value), Type: log.TimeType}
}

func BlockHeight(value primitives.BlockHeight) *log.Field {
	return &log.Field{Key: "block-height", Uint: uint64(value), Type: log.UintType}
}

func ExecutionContext(value primitives.ExecutionContextId) *log.Field {
	return &log.Field{Key: "context-id", Uint: uint64(value), Type: log.UintType}
}
