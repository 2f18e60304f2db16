// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package transactionpool

import (
	"fmt"
	"github.com/orbs-network/orbs-counter-playground/types/protocol"
	"github.com/orbs-network/scribe/log"
)

// ErrTransactionRejected carries the status reported back to the client, the fields are for logs only
type ErrTransactionRejected struct {
	TransactionStatus protocol.TransactionStatus
	Expected          *log.Field
	Actual            *log.Field
}

func (e *ErrTransactionRejected) Error() string {
	return fmt.Sprintf("transaction rejected: %s", e.TransactionStatus)
}

func (e *ErrTransactionRejected) LogFields() []*log.Field {
	var fields []*log.Field
	if e.Expected != nil {
		fields = append(fields, e.Expected)
	}
	if e.Actual != nil {
		fields = append(fields, e.Actual)
	}
	return fields
}
