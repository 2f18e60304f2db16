// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package publicapi

import (
	"github.com/orbs-network/orbs-counter-playground/types/primitives"
	"github.com/orbs-network/orbs-counter-playground/types/protocol"
	"github.com/orbs-network/orbs-counter-playground/types/services"
)

// a contract that ran and failed still completed the request, its error is in the receipt
var requestStatusOfExecution = map[protocol.ExecutionResult]protocol.RequestStatus{
	protocol.EXECUTION_RESULT_SUCCESS:                     protocol.REQUEST_STATUS_COMPLETED,
	protocol.EXECUTION_RESULT_ERROR_SMART_CONTRACT:        protocol.REQUEST_STATUS_COMPLETED,
	protocol.EXECUTION_RESULT_ERROR_INPUT:                 protocol.REQUEST_STATUS_BAD_REQUEST,
	protocol.EXECUTION_RESULT_ERROR_CONTRACT_NOT_DEPLOYED: protocol.REQUEST_STATUS_BAD_REQUEST,
	protocol.EXECUTION_RESULT_ERROR_UNEXPECTED:            protocol.REQUEST_STATUS_SYSTEM_ERROR,
}

// statuses that never reached execution
var requestStatusOfRejection = map[protocol.TransactionStatus]protocol.RequestStatus{
	protocol.TRANSACTION_STATUS_NO_RECORD_FOUND:                       protocol.REQUEST_STATUS_NOT_FOUND,
	protocol.TRANSACTION_STATUS_REJECTED_UNSUPPORTED_VERSION:          protocol.REQUEST_STATUS_BAD_REQUEST,
	protocol.TRANSACTION_STATUS_REJECTED_SIGNATURE_MISMATCH:           protocol.REQUEST_STATUS_BAD_REQUEST,
	protocol.TRANSACTION_STATUS_REJECTED_TIMESTAMP_WINDOW_EXCEEDED:    protocol.REQUEST_STATUS_BAD_REQUEST,
	protocol.TRANSACTION_STATUS_REJECTED_TIMESTAMP_AHEAD_OF_NODE_TIME: protocol.REQUEST_STATUS_BAD_REQUEST,
	protocol.TRANSACTION_STATUS_REJECTED_MALFORMED:                    protocol.REQUEST_STATUS_BAD_REQUEST,
	protocol.TRANSACTION_STATUS_REJECTED_CONGESTION:                   protocol.REQUEST_STATUS_CONGESTION,
}

func executionRequestStatus(result protocol.ExecutionResult) protocol.RequestStatus {
	if status, found := requestStatusOfExecution[result]; found {
		return status
	}
	return protocol.REQUEST_STATUS_RESERVED
}

func transactionRequestStatus(txStatus protocol.TransactionStatus, result protocol.ExecutionResult) protocol.RequestStatus {
	if txStatus == protocol.TRANSACTION_STATUS_COMMITTED || txStatus == protocol.TRANSACTION_STATUS_DUPLICATE_TRANSACTION_ALREADY_COMMITTED {
		return executionRequestStatus(result)
	}
	if status, found := requestStatusOfRejection[txStatus]; found {
		return status
	}
	return protocol.REQUEST_STATUS_RESERVED
}

// outcome is what the pool knows about a transaction, in either of its answer shapes
type outcome struct {
	status    protocol.TransactionStatus
	receipt   *protocol.TransactionReceipt
	height    primitives.BlockHeight
	timestamp primitives.TimestampNano
}

func outcomeOfAdd(out *services.AddNewTransactionOutput) outcome {
	return outcome{out.TransactionStatus, out.TransactionReceipt, out.BlockHeight, out.BlockTimestamp}
}

func outcomeOfLookup(out *services.GetCommittedTransactionReceiptOutput) outcome {
	return outcome{out.TransactionStatus, out.TransactionReceipt, out.BlockHeight, out.BlockTimestamp}
}

func (o outcome) requestResult() *services.RequestResult {
	result := protocol.EXECUTION_RESULT_RESERVED
	if o.receipt != nil {
		result = o.receipt.ExecutionResult
	}
	return &services.RequestResult{
		RequestStatus:  transactionRequestStatus(o.status, result),
		BlockHeight:    o.height,
		BlockTimestamp: o.timestamp,
	}
}

func (o outcome) sendTransactionOutput() *services.SendTransactionOutput {
	return &services.SendTransactionOutput{
		RequestResult:      o.requestResult(),
		TransactionStatus:  o.status,
		TransactionReceipt: o.receipt,
	}
}

func (o outcome) transactionStatusOutput() *services.GetTransactionStatusOutput {
	return &services.GetTransactionStatusOutput{
		RequestResult:      o.requestResult(),
		TransactionStatus:  o.status,
		TransactionReceipt: o.receipt,
	}
}

func runQueryOutput(out *services.RunLocalMethodOutput) *services.RunQueryOutput {
	return &services.RunQueryOutput{
		RequestResult: &services.RequestResult{
			RequestStatus:  executionRequestStatus(out.CallResult),
			BlockHeight:    out.ReferenceBlockHeight,
			BlockTimestamp: out.ReferenceBlockTimestamp,
		},
		ExecutionResult: out.CallResult,
		OutputArguments: out.OutputArgumentArray,
		Logs:            out.Logs,
	}
}
