// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package protocol

import "github.com/pkg/errors"

type ExecutionResult uint16

const (
	EXECUTION_RESULT_RESERVED                    ExecutionResult = 0
	EXECUTION_RESULT_SUCCESS                     ExecutionResult = 1
	EXECUTION_RESULT_ERROR_SMART_CONTRACT        ExecutionResult = 2
	EXECUTION_RESULT_ERROR_INPUT                 ExecutionResult = 3
	EXECUTION_RESULT_ERROR_CONTRACT_NOT_DEPLOYED ExecutionResult = 4
	EXECUTION_RESULT_ERROR_UNEXPECTED            ExecutionResult = 5
	EXECUTION_RESULT_NOT_EXECUTED                ExecutionResult = 6
)

var executionResultNames = map[ExecutionResult]string{
	EXECUTION_RESULT_RESERVED:                    "RESERVED",
	EXECUTION_RESULT_SUCCESS:                     "SUCCESS",
	EXECUTION_RESULT_ERROR_SMART_CONTRACT:        "ERROR_SMART_CONTRACT",
	EXECUTION_RESULT_ERROR_INPUT:                 "ERROR_INPUT",
	EXECUTION_RESULT_ERROR_CONTRACT_NOT_DEPLOYED: "ERROR_CONTRACT_NOT_DEPLOYED",
	EXECUTION_RESULT_ERROR_UNEXPECTED:            "ERROR_UNEXPECTED",
	EXECUTION_RESULT_NOT_EXECUTED:                "NOT_EXECUTED",
}

func (x ExecutionResult) String() string {
	return executionResultNames[x]
}

func (x ExecutionResult) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

func (x *ExecutionResult) UnmarshalText(text []byte) error {
	for value, name := range executionResultNames {
		if name == string(text) {
			*x = value
			return nil
		}
	}
	return errors.Errorf("unknown execution result %s", text)
}

type TransactionStatus uint16

const (
	TRANSACTION_STATUS_RESERVED                                TransactionStatus = 0
	TRANSACTION_STATUS_COMMITTED                               TransactionStatus = 1
	TRANSACTION_STATUS_DUPLICATE_TRANSACTION_ALREADY_COMMITTED TransactionStatus = 2
	TRANSACTION_STATUS_NO_RECORD_FOUND                         TransactionStatus = 3
	TRANSACTION_STATUS_REJECTED_UNSUPPORTED_VERSION            TransactionStatus = 4
	TRANSACTION_STATUS_REJECTED_SIGNATURE_MISMATCH             TransactionStatus = 5
	TRANSACTION_STATUS_REJECTED_TIMESTAMP_WINDOW_EXCEEDED      TransactionStatus = 6
	TRANSACTION_STATUS_REJECTED_TIMESTAMP_AHEAD_OF_NODE_TIME   TransactionStatus = 7
	TRANSACTION_STATUS_REJECTED_CONGESTION                     TransactionStatus = 8
	TRANSACTION_STATUS_REJECTED_MALFORMED                      TransactionStatus = 9
	TRANSACTION_STATUS_PRE_ORDER_VALID                         TransactionStatus = 10
)

var transactionStatusNames = map[TransactionStatus]string{
	TRANSACTION_STATUS_RESERVED:                                "RESERVED",
	TRANSACTION_STATUS_COMMITTED:                               "COMMITTED",
	TRANSACTION_STATUS_DUPLICATE_TRANSACTION_ALREADY_COMMITTED: "DUPLICATE_TRANSACTION_ALREADY_COMMITTED",
	TRANSACTION_STATUS_NO_RECORD_FOUND:                         "NO_RECORD_FOUND",
	TRANSACTION_STATUS_REJECTED_UNSUPPORTED_VERSION:            "REJECTED_UNSUPPORTED_VERSION",
	TRANSACTION_STATUS_REJECTED_SIGNATURE_MISMATCH:             "REJECTED_SIGNATURE_MISMATCH",
	TRANSACTION_STATUS_REJECTED_TIMESTAMP_WINDOW_EXCEEDED:      "REJECTED_TIMESTAMP_WINDOW_EXCEEDED",
	TRANSACTION_STATUS_REJECTED_TIMESTAMP_AHEAD_OF_NODE_TIME:   "REJECTED_TIMESTAMP_AHEAD_OF_NODE_TIME",
	TRANSACTION_STATUS_REJECTED_CONGESTION:                     "REJECTED_CONGESTION",
	TRANSACTION_STATUS_REJECTED_MALFORMED:                      "REJECTED_MALFORMED",
	TRANSACTION_STATUS_PRE_ORDER_VALID:                         "PRE_ORDER_VALID",
}

func (x TransactionStatus) String() string {
	return transactionStatusNames[x]
}

func (x TransactionStatus) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

func (x *TransactionStatus) UnmarshalText(text []byte) error {
	for value, name := range transactionStatusNames {
		if name == string(text) {
			*x = value
			return nil
		}
	}
	return errors.Errorf("unknown transaction status %s", text)
}

type RequestStatus uint16

const (
	REQUEST_STATUS_RESERVED     RequestStatus = 0
	REQUEST_STATUS_COMPLETED    RequestStatus = 1
	REQUEST_STATUS_NOT_FOUND    RequestStatus = 2
	REQUEST_STATUS_BAD_REQUEST  RequestStatus = 3
	REQUEST_STATUS_CONGESTION   RequestStatus = 4
	REQUEST_STATUS_SYSTEM_ERROR RequestStatus = 5
)

var requestStatusNames = map[RequestStatus]string{
	REQUEST_STATUS_RESERVED:     "RESERVED",
	REQUEST_STATUS_COMPLETED:    "COMPLETED",
	REQUEST_STATUS_NOT_FOUND:    "NOT_FOUND",
	REQUEST_STATUS_BAD_REQUEST:  "BAD_REQUEST",
	REQUEST_STATUS_CONGESTION:   "CONGESTION",
	REQUEST_STATUS_SYSTEM_ERROR: "SYSTEM_ERROR",
}

func (x RequestStatus) String() string {
	return requestStatusNames[x]
}

func (x RequestStatus) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

func (x *RequestStatus) UnmarshalText(text []byte) error {
	for value, name := range requestStatusNames {
		if name == string(text) {
			*x = value
			return nil
		}
	}
	return errors.Errorf("unknown request status %s", text)
}

type ExecutionAccessScope uint16

const (
	ACCESS_SCOPE_RESERVED   ExecutionAccessScope = 0
	ACCESS_SCOPE_READ_ONLY  ExecutionAccessScope = 1
	ACCESS_SCOPE_READ_WRITE ExecutionAccessScope = 2
)

func (x ExecutionAccessScope) String() string {
	switch x {
	case ACCESS_SCOPE_READ_ONLY:
		return "READ_ONLY"
	case ACCESS_SCOPE_READ_WRITE:
		return "READ_WRITE"
	}
	return "RESERVED"
}

type ExecutionPermissionScope uint16

const (
	PERMISSION_SCOPE_RESERVED ExecutionPermissionScope = 0
	PERMISSION_SCOPE_SYSTEM   ExecutionPermissionScope = 1
	PERMISSION_SCOPE_SERVICE  ExecutionPermissionScope = 2
)

func (x ExecutionPermissionScope) String() string {
	switch x {
	case PERMISSION_SCOPE_SYSTEM:
		return "SYSTEM"
	case PERMISSION_SCOPE_SERVICE:
		return "SERVICE"
	}
	return "RESERVED"
}

type TransactionAction uint16

const (
	TRANSACTION_ACTION_RESERVED        TransactionAction = 0
	TRANSACTION_ACTION_FUNCTION_CALL   TransactionAction = 1
	TRANSACTION_ACTION_DEPLOY_CONTRACT TransactionAction = 2
)

var transactionActionNames = map[TransactionAction]string{
	TRANSACTION_ACTION_RESERVED:        "RESERVED",
	TRANSACTION_ACTION_FUNCTION_CALL:   "FUNCTION_CALL",
	TRANSACTION_ACTION_DEPLOY_CONTRACT: "DEPLOY_CONTRACT",
}

func (x TransactionAction) String() string {
	return transactionActionNames[x]
}

func (x TransactionAction) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

func (x *TransactionAction) UnmarshalText(text []byte) error {
	for value, name := range transactionActionNames {
		if name == string(text) {
			*x = value
			return nil
		}
	}
	return errors.Errorf("unknown transaction action %s", text)
}
