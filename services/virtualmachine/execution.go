// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package virtualmachine

import (
	"context"
	"github.com/orbs-network/orbs-counter-playground/crypto/digest"
	"github.com/orbs-network/orbs-counter-playground/instrumentation/logfields"
	"github.com/orbs-network/orbs-counter-playground/instrumentation/trace"
	"github.com/orbs-network/orbs-counter-playground/types/primitives"
	"github.com/orbs-network/orbs-counter-playground/types/protocol"
	"github.com/orbs-network/orbs-counter-playground/types/services"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
	"strings"
)

const SYSTEM_ACCOUNT_PREFIX = "_"

func isSystemAccount(accountId primitives.AccountId) bool {
	return strings.HasPrefix(string(accountId), SYSTEM_ACCOUNT_PREFIX)
}

func (s *service) processTransactionSet(
	ctx context.Context,
	currentBlockHeight primitives.BlockHeight,
	currentBlockTimestamp primitives.TimestampNano,
	signedTransactions []*protocol.SignedTransaction,
) ([]*protocol.TransactionReceipt, []*protocol.ContractStateDiff) {

	logger := s.logger.WithTags(trace.LogFieldFrom(ctx))
	lastCommittedBlockHeight := currentBlockHeight - 1

	// create batch transient state
	batchTransientState := newTransientState()

	// receipts for result
	receipts := make([]*protocol.TransactionReceipt, 0, len(signedTransactions))

	for _, signedTransaction := range signedTransactions {
		transaction := signedTransaction.Transaction
		txHash := digest.CalcTxHash(transaction)

		logger.Info("processing transaction", logfields.Transaction(txHash), log.Stringable("transaction", transaction), logfields.BlockHeight(currentBlockHeight))
		callResult, outputArgs, logs, err := s.runTransaction(ctx, lastCommittedBlockHeight, currentBlockHeight, currentBlockTimestamp, transaction, batchTransientState)
		if err != nil {
			s.metrics.failedTransactions.Inc()
			logger.Info("transaction execution failed", logfields.Transaction(txHash), log.Stringable("result", callResult), log.Error(err))
		}
		if outputArgs == nil {
			outputArgs = protocol.ArgumentArray{}
		}

		receipts = append(receipts, &protocol.TransactionReceipt{
			Txhash:          txHash,
			ExecutionResult: callResult,
			OutputArguments: outputArgs,
			Logs:            logs,
		})
	}

	stateDiffs := s.encodeBatchTransientStateToStateDiffs(batchTransientState)
	return receipts, stateDiffs
}

// a transaction either commits all of its writes, including those of the accounts it called, or none of them
func (s *service) runTransaction(
	ctx context.Context,
	lastCommittedBlockHeight primitives.BlockHeight,
	currentBlockHeight primitives.BlockHeight,
	currentBlockTimestamp primitives.TimestampNano,
	transaction *protocol.Transaction,
	batchTransientState *transientState,
) (protocol.ExecutionResult, protocol.ArgumentArray, []string, error) {

	// create execution context
	executionContextId, executionContext := s.contexts.allocateExecutionContext(lastCommittedBlockHeight, currentBlockHeight, currentBlockTimestamp, protocol.ACCESS_SCOPE_READ_WRITE, transaction.Signer)
	defer s.contexts.destroyExecutionContext(executionContextId)
	executionContext.batchTransientState = batchTransientState

	if err := s.registerSigner(ctx, executionContext, transaction.Signer, transaction.SignerPublicKey); err != nil {
		return protocol.EXECUTION_RESULT_ERROR_INPUT, nil, executionContext.logs, err
	}

	var callResult protocol.ExecutionResult
	var outputArgs protocol.ArgumentArray
	var err error

	switch {
	case isSystemAccount(transaction.Receiver):
		callResult, err = protocol.EXECUTION_RESULT_ERROR_INPUT, errors.Errorf("account %s is reserved for the system", transaction.Receiver)
	case transaction.Action == protocol.TRANSACTION_ACTION_DEPLOY_CONTRACT:
		callResult, outputArgs, err = s.deployContract(ctx, executionContext, transaction.Receiver, transaction.Code)
	case transaction.Action == protocol.TRANSACTION_ACTION_FUNCTION_CALL:
		callResult, outputArgs, err = s.callDeployedContract(ctx, executionContext, transaction.Receiver, transaction.MethodName, transaction.InputArguments)
	default:
		callResult, err = protocol.EXECUTION_RESULT_ERROR_INPUT, errors.Errorf("unknown transaction action %s", transaction.Action)
	}

	if callResult == protocol.EXECUTION_RESULT_SUCCESS {
		executionContext.transientState.mergeIntoTransientState(batchTransientState)
	}

	return callResult, outputArgs, executionContext.logs, err
}

func (s *service) callDeployedContract(
	ctx context.Context,
	executionContext *executionContext,
	accountId primitives.AccountId,
	methodName primitives.MethodName,
	inputArgs protocol.ArgumentArray,
) (protocol.ExecutionResult, protocol.ArgumentArray, error) {

	code, err := s.getDeployedCode(ctx, executionContext, accountId)
	if err != nil {
		return protocol.EXECUTION_RESULT_ERROR_CONTRACT_NOT_DEPLOYED, nil, errors.Wrapf(err, "no contract on account %s", accountId)
	}

	return s.callContract(ctx, executionContext, accountId, code, methodName, inputArgs, protocol.PERMISSION_SCOPE_SERVICE)
}

func (s *service) callContract(
	ctx context.Context,
	executionContext *executionContext,
	accountId primitives.AccountId,
	code []byte,
	methodName primitives.MethodName,
	inputArgs protocol.ArgumentArray,
	callingPermissionScope protocol.ExecutionPermissionScope,
) (protocol.ExecutionResult, protocol.ArgumentArray, error) {

	info, err := s.processor.GetContractInfo(ctx, &services.GetContractInfoInput{ContractCode: code})
	if err != nil {
		return protocol.EXECUTION_RESULT_ERROR_CONTRACT_NOT_DEPLOYED, nil, errors.Wrapf(err, "code deployed on account %s is unusable", accountId)
	}

	// modify execution context
	if err := executionContext.accountStackPush(accountId, info.PermissionScope, s.config.VirtualMachineMaxCallDepth()); err != nil {
		return protocol.EXECUTION_RESULT_ERROR_UNEXPECTED, nil, err
	}
	defer executionContext.accountStackPop()

	// execute the call
	output, err := s.processor.ProcessCall(ctx, &services.ProcessCallInput{
		ContextId:              executionContext.contextId,
		AccountId:              accountId,
		ContractCode:           code,
		MethodName:             methodName,
		InputArgumentArray:     inputArgs,
		AccessScope:            executionContext.accessScope,
		CallingPermissionScope: callingPermissionScope,
	})
	if output == nil {
		if err == nil {
			err = errors.Errorf("processor returned no output for %s.%s", accountId, methodName)
		}
		return protocol.EXECUTION_RESULT_ERROR_UNEXPECTED, nil, err
	}

	return output.CallResult, output.OutputArgumentArray, err
}

func (s *service) getRecentCommittedBlockHeight(ctx context.Context) (primitives.BlockHeight, primitives.TimestampNano, error) {
	output, err := s.stateStorage.GetStateStorageBlockHeight(ctx, &services.GetStateStorageBlockHeightInput{})
	if err != nil {
		return 0, 0, err
	}
	return output.LastCommittedBlockHeight, output.LastCommittedBlockTimestamp, nil
}

func (s *service) encodeBatchTransientStateToStateDiffs(batchTransientState *transientState) []*protocol.ContractStateDiff {
	res := []*protocol.ContractStateDiff{}
	for _, accountId := range batchTransientState.accountSortOrder {
		stateDiffs := []*protocol.StateRecord{}
		batchTransientState.forDirty(accountId, func(key []byte, value []byte) {
			stateDiffs = append(stateDiffs, &protocol.StateRecord{
				Key:   key,
				Value: value,
			})
		})
		if len(stateDiffs) > 0 {
			res = append(res, &protocol.ContractStateDiff{
				AccountId:  accountId,
				StateDiffs: stateDiffs,
			})
		}
	}
	return res
}
