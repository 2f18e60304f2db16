// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package virtualmachine

import (
	"context"
	"github.com/orbs-network/orbs-counter-playground/config"
	"github.com/orbs-network/orbs-counter-playground/instrumentation/logfields"
	"github.com/orbs-network/orbs-counter-playground/instrumentation/metric"
	"github.com/orbs-network/orbs-counter-playground/instrumentation/trace"
	"github.com/orbs-network/orbs-counter-playground/services/processor/native"
	"github.com/orbs-network/orbs-counter-playground/types/protocol"
	"github.com/orbs-network/orbs-counter-playground/types/services"
	"github.com/orbs-network/orbs-counter-playground/types/services/handlers"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
	"time"
)

var LogTag = log.Service("virtual-machine")

type service struct {
	config       config.VirtualMachineConfig
	stateStorage services.StateStorage
	processor    services.Processor
	logger       log.Logger

	contexts *executionContextProvider
	metrics  *metrics
}

type metrics struct {
	processTransactionSetTime *metric.Histogram
	runLocalMethodTime        *metric.Histogram
	failedTransactions        *metric.Gauge
	transactionsProcessed     *metric.Rate
}

func getMetrics(m metric.Factory) *metrics {
	return &metrics{
		processTransactionSetTime: m.NewLatency("VirtualMachine.ProcessTransactionSetTime.Millis", 10*time.Second),
		runLocalMethodTime:        m.NewLatency("VirtualMachine.RunLocalMethodTime.Millis", 10*time.Second),
		failedTransactions:        m.NewGauge("VirtualMachine.FailedTransactions.Count"),
		transactionsProcessed:     m.NewRate("VirtualMachine.TransactionsProcessed.PerSecond"),
	}
}

func NewVirtualMachine(
	config config.VirtualMachineConfig,
	stateStorage services.StateStorage,
	processor services.Processor,
	parentLogger log.Logger,
	metricFactory metric.Factory,
) services.VirtualMachine {

	s := &service{
		config:       config,
		stateStorage: stateStorage,
		processor:    processor,
		logger:       parentLogger.WithTags(LogTag),
		contexts:     newExecutionContextProvider(),
		metrics:      getMetrics(metricFactory),
	}

	processor.RegisterContractSdkCallHandler(s)

	return s
}

func (s *service) ProcessTransactionSet(ctx context.Context, input *services.ProcessTransactionSetInput) (*services.ProcessTransactionSetOutput, error) {
	start := time.Now()
	defer s.metrics.processTransactionSetTime.RecordSince(start)

	if input.CurrentBlockHeight == 0 {
		return nil, errors.New("transaction set must be processed for a block above genesis")
	}

	receipts, stateDiffs := s.processTransactionSet(ctx, input.CurrentBlockHeight, input.CurrentBlockTimestamp, input.SignedTransactions)
	s.metrics.transactionsProcessed.Measure(int64(len(receipts)))

	return &services.ProcessTransactionSetOutput{
		TransactionReceipts: receipts,
		ContractStateDiffs:  stateDiffs,
	}, nil
}

func (s *service) RunLocalMethod(ctx context.Context, input *services.RunLocalMethodInput) (*services.RunLocalMethodOutput, error) {
	logger := s.logger.WithTags(trace.LogFieldFrom(ctx))

	start := time.Now()
	defer s.metrics.runLocalMethodTime.RecordSince(start)

	if input.Query == nil {
		return nil, errors.New("run local method without a query")
	}

	blockHeight, blockTimestamp := input.BlockHeight, input.BlockTimestamp
	if blockHeight == 0 {
		var err error
		blockHeight, blockTimestamp, err = s.getRecentCommittedBlockHeight(ctx)
		if err != nil {
			return nil, err
		}
	}

	logger.Info("running local method", log.Stringable("query", input.Query), logfields.BlockHeight(blockHeight))
	callResult, outputArgs, logs, err := s.runLocalMethod(ctx, blockHeight, blockTimestamp, input.Query)
	if err != nil {
		logger.Info("local method failed", log.Error(err), log.Stringable("result", callResult))
	}

	return &services.RunLocalMethodOutput{
		CallResult:              callResult,
		OutputArgumentArray:     outputArgs,
		Logs:                    logs,
		ReferenceBlockHeight:    blockHeight,
		ReferenceBlockTimestamp: blockTimestamp,
	}, nil
}

func (s *service) TransactionSetPreOrder(ctx context.Context, input *services.TransactionSetPreOrderInput) (*services.TransactionSetPreOrderOutput, error) {
	statuses := make([]protocol.TransactionStatus, len(input.SignedTransactions))

	s.verifyTransactionsWellFormed(input.SignedTransactions, statuses)
	s.verifyTransactionSignatures(input.SignedTransactions, statuses)
	if err := s.verifyRegisteredSigners(ctx, input.CurrentBlockHeight, input.SignedTransactions, statuses); err != nil {
		return nil, err
	}

	return &services.TransactionSetPreOrderOutput{
		PreOrderResults: statuses,
	}, nil
}

func (s *service) HandleSdkCall(ctx context.Context, input *handlers.HandleSdkCallInput) (*handlers.HandleSdkCallOutput, error) {
	var output []*protocol.Argument
	var err error

	executionContext := s.contexts.loadExecutionContext(input.ContextId)
	if executionContext == nil {
		return nil, errors.Errorf("invalid execution context %s", input.ContextId)
	}

	switch input.OperationName {
	case native.SDK_OPERATION_NAME_STATE:
		output, err = s.handleSdkStateCall(ctx, executionContext, input.MethodName, input.InputArguments)
	case native.SDK_OPERATION_NAME_SERVICE:
		output, err = s.handleSdkServiceCall(ctx, executionContext, input.MethodName, input.InputArguments, input.PermissionScope)
	case native.SDK_OPERATION_NAME_ENV:
		output, err = s.handleSdkEnvCall(executionContext, input.MethodName)
	case native.SDK_OPERATION_NAME_LOG:
		output, err = s.handleSdkLogCall(executionContext, input.MethodName, input.InputArguments)
	default:
		return nil, errors.Errorf("unknown SDK call operation: %s", input.OperationName)
	}

	if err != nil {
		return nil, err
	}

	return &handlers.HandleSdkCallOutput{
		OutputArguments: output,
	}, nil
}
