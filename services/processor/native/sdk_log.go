// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package native

import (
	"github.com/orbs-network/orbs-counter-playground/services/processor/native/types"
	"github.com/orbs-network/orbs-counter-playground/types/protocol"
)

const SDK_OPERATION_NAME_LOG = "Sdk.Log"

type logSdk struct {
	sdkCaller
}

// Log appends a line to the logs of the running transaction or query
func (s *logSdk) Log(ctx types.Context, message string) error {
	_, err := s.call(ctx, SDK_OPERATION_NAME_LOG, "log",
		&protocol.Argument{Name: "message", Type: protocol.ARGUMENT_TYPE_STRING_VALUE, StringValue: message},
	)
	return err
}
