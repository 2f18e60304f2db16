// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package native

import (
	"context"
	"fmt"
	"github.com/orbs-network/orbs-counter-playground/instrumentation/logfields"
	"github.com/orbs-network/orbs-counter-playground/instrumentation/metric"
	"github.com/orbs-network/orbs-counter-playground/instrumentation/trace"
	"github.com/orbs-network/orbs-counter-playground/services/processor/native/artifact"
	"github.com/orbs-network/orbs-counter-playground/services/processor/native/types"
	"github.com/orbs-network/orbs-counter-playground/types/protocol"
	"github.com/orbs-network/orbs-counter-playground/types/services"
	"github.com/orbs-network/orbs-counter-playground/types/services/handlers"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
	"sync"
	"time"
)

var LogTag = log.Service("processor-native")

type service struct {
	logger     log.Logger
	contracts  map[string]types.ContractInfo
	sdkHandler handlers.ContractSdkCallHandler

	mutex     sync.RWMutex
	instances map[string]types.Contract      // contract name to singleton
	artifacts map[string]*types.ContractInfo // artifact code to contract

	metrics *metrics
}

type metrics struct {
	processCallTime *metric.Histogram
	knownArtifacts  *metric.Gauge
}

func NewNativeProcessor(contracts map[string]types.ContractInfo, parentLogger log.Logger, metricFactory metric.Factory) services.Processor {
	return &service{
		logger:    parentLogger.WithTags(LogTag),
		contracts: contracts,
		instances: make(map[string]types.Contract),
		artifacts: make(map[string]*types.ContractInfo),
		metrics: &metrics{
			processCallTime: metricFactory.NewLatency("Processor.Native.ProcessCallTime.Millis", 10*time.Second),
			knownArtifacts:  metricFactory.NewGauge("Processor.Native.KnownArtifacts.Count"),
		},
	}
}

// runs once on system initialization (called by the virtual machine constructor)
func (s *service) RegisterContractSdkCallHandler(handler handlers.ContractSdkCallHandler) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.sdkHandler = handler
	s.instances = make(map[string]types.Contract)
}

// failedCall carries err as the single string output of the call
func failedCall(result protocol.ExecutionResult, err error) (*services.ProcessCallOutput, error) {
	return &services.ProcessCallOutput{
		OutputArgumentArray: createMethodOutputArgsWithString(err.Error()),
		CallResult:          result,
	}, err
}

// ProcessCall separates three failures: unknown code, a bad call (ERROR_INPUT) and a contract that returned an error
func (s *service) ProcessCall(ctx context.Context, input *services.ProcessCallInput) (*services.ProcessCallOutput, error) {
	contractInfo, err := s.retrieveContractInfo(input.ContractCode)
	if err != nil {
		return failedCall(protocol.EXECUTION_RESULT_ERROR_CONTRACT_NOT_DEPLOYED, err)
	}

	contractInstance, methodInfo, err := s.retrieveContractAndMethodInstances(contractInfo, input.MethodName, input.CallingPermissionScope, input.AccessScope)
	if err != nil {
		return failedCall(protocol.EXECUTION_RESULT_ERROR_INPUT, err)
	}

	logger := s.logger.WithTags(trace.LogFieldFrom(ctx), logfields.ExecutionContext(input.ContextId), log.String("contract", contractInfo.Name), logfields.Method(input.MethodName))
	logger.Info("processor executing contract", logfields.Account("account", input.AccountId))
	defer s.metrics.processCallTime.RecordSince(time.Now())

	qualifiedName := fmt.Sprintf("%s.%s", contractInfo.Name, input.MethodName)
	outputArgs, contractErr, err := processMethodCall(types.NewContext(ctx, input.ContextId), contractInstance, methodInfo, input.InputArgumentArray, qualifiedName)
	switch {
	case err != nil:
		logger.Info("contract execution failed", log.Error(err))
		return failedCall(protocol.EXECUTION_RESULT_ERROR_INPUT, err)
	case contractErr != nil:
		logger.Info("contract returned error", log.Error(contractErr))
		return failedCall(protocol.EXECUTION_RESULT_ERROR_SMART_CONTRACT, contractErr)
	}

	if outputArgs == nil {
		outputArgs = protocol.ArgumentArray{}
	}
	return &services.ProcessCallOutput{
		OutputArgumentArray: outputArgs,
		CallResult:          protocol.EXECUTION_RESULT_SUCCESS,
	}, nil
}

func (s *service) GetContractInfo(ctx context.Context, input *services.GetContractInfoInput) (*services.GetContractInfoOutput, error) {
	contractInfo, err := s.retrieveContractInfo(input.ContractCode)
	if err != nil {
		return nil, err
	}

	return &services.GetContractInfoOutput{
		ContractName:    contractInfo.Name,
		PermissionScope: contractInfo.Permission,
	}, nil
}

func (s *service) retrieveContractInfo(code []byte) (*types.ContractInfo, error) {
	s.mutex.RLock()
	contractInfo, found := s.artifacts[string(code)]
	s.mutex.RUnlock()
	if found {
		return contractInfo, nil
	}

	a, err := artifact.Parse(code)
	if err != nil {
		return nil, err
	}
	info, found := s.contracts[a.Contract]
	if !found {
		return nil, errors.Errorf("native contract '%s' is not part of this node", a.Contract)
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.artifacts[string(code)] = &info
	s.metrics.knownArtifacts.Update(int64(len(s.artifacts)))
	return &info, nil
}

func (s *service) getContractInstance(contractInfo *types.ContractInfo) types.Contract {
	s.mutex.RLock()
	instance, found := s.instances[contractInfo.Name]
	s.mutex.RUnlock()
	if found {
		return instance
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()
	if instance, found = s.instances[contractInfo.Name]; found {
		return instance
	}
	instance = contractInfo.InitSingleton(NewSdk(s.sdkHandler, contractInfo.Permission))
	s.instances[contractInfo.Name] = instance
	return instance
}
