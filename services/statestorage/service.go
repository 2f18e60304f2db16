// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package statestorage

import (
	"context"
	"github.com/orbs-network/orbs-counter-playground/config"
	"github.com/orbs-network/orbs-counter-playground/instrumentation/logfields"
	"github.com/orbs-network/orbs-counter-playground/instrumentation/trace"
	"github.com/orbs-network/orbs-counter-playground/services/statestorage/adapter"
	"github.com/orbs-network/orbs-counter-playground/synchronization"
	"github.com/orbs-network/orbs-counter-playground/types/primitives"
	"github.com/orbs-network/orbs-counter-playground/types/protocol"
	"github.com/orbs-network/orbs-counter-playground/types/services"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
	"sync"
)

var LogTag = log.Service("state-storage")

type service struct {
	config         config.StateStorageConfig
	logger         log.Logger
	blockTracker   *synchronization.BlockTracker
	heightReporter adapter.BlockHeightReporter

	mutex       sync.RWMutex
	persistence adapter.StatePersistence
}

func NewStateStorage(config config.StateStorageConfig, persistence adapter.StatePersistence, heightReporter adapter.BlockHeightReporter, parent log.Logger) services.StateStorage {
	height, _, err := persistence.ReadMetadata()
	if err != nil {
		panic(errors.Wrap(err, "could not read state storage metadata"))
	}

	if heightReporter == nil {
		heightReporter = synchronization.NopHeightReporter{}
	}

	return &service{
		config:         config,
		logger:         parent.WithTags(LogTag),
		blockTracker:   synchronization.NewBlockTracker(uint64(height), uint64(config.BlockTrackerGraceDistance())),
		heightReporter: heightReporter,
		persistence:    persistence,
	}
}

func (s *service) CommitStateDiff(ctx context.Context, input *services.CommitStateDiffInput) (*services.CommitStateDiffOutput, error) {
	logger := s.logger.WithTags(trace.LogFieldFrom(ctx))

	s.mutex.Lock()
	defer s.mutex.Unlock()

	committedHeight, _, err := s.persistence.ReadMetadata()
	if err != nil {
		return nil, errors.Wrap(err, "could not read state storage metadata")
	}

	if input.BlockHeight != committedHeight+1 {
		logger.Info("trying to commit state diff out of order", logfields.BlockHeight(input.BlockHeight), log.Stringable("last-committed", committedHeight))
		return &services.CommitStateDiffOutput{NextDesiredBlockHeight: committedHeight + 1}, nil
	}

	if err := s.persistence.Write(input.BlockHeight, input.BlockTimestamp, toChainState(input.ContractStateDiffs)); err != nil {
		return nil, errors.Wrapf(err, "failed writing state diff for block %d", input.BlockHeight)
	}

	s.blockTracker.IncrementTo(input.BlockHeight)
	s.heightReporter.IncrementTo(input.BlockHeight)

	logger.Info("committed state diff", logfields.BlockHeight(input.BlockHeight), log.Int("number-of-namespaces", len(input.ContractStateDiffs)))

	return &services.CommitStateDiffOutput{NextDesiredBlockHeight: input.BlockHeight + 1}, nil
}

func toChainState(diffs []*protocol.ContractStateDiff) adapter.ChainState {
	state := make(adapter.ChainState)
	for _, diff := range diffs {
		records, ok := state[diff.AccountId]
		if !ok {
			records = make(adapter.Records)
			state[diff.AccountId] = records
		}
		for _, record := range diff.StateDiffs {
			records[string(record.Key)] = record.Value
		}
	}
	return state
}

// ReadKeys answers from the latest committed state, which is never behind the requested height.
// Missing keys are returned with an empty value.
func (s *service) ReadKeys(ctx context.Context, input *services.ReadKeysInput) (*services.ReadKeysOutput, error) {
	if input.Namespace == "" {
		return nil, errors.Errorf("missing namespace")
	}

	if err := s.waitForBlock(ctx, input.BlockHeight); err != nil {
		return nil, err
	}

	s.mutex.RLock()
	defer s.mutex.RUnlock()

	records := make([]*protocol.StateRecord, 0, len(input.Keys))
	for _, key := range input.Keys {
		value, found, err := s.persistence.Read(input.Namespace, key.KeyForMap())
		if err != nil {
			return nil, errors.Wrap(err, "persistence layer error")
		}
		if !found {
			value = []byte{}
		}
		records = append(records, &protocol.StateRecord{Key: key, Value: value})
	}

	return &services.ReadKeysOutput{StateRecords: records}, nil
}

func (s *service) waitForBlock(ctx context.Context, height primitives.BlockHeight) error {
	timeoutCtx, cancel := context.WithTimeout(ctx, s.config.BlockTrackerGraceTimeout())
	defer cancel()

	return s.blockTracker.WaitForBlock(timeoutCtx, height)
}

func (s *service) GetStateStorageBlockHeight(ctx context.Context, input *services.GetStateStorageBlockHeightInput) (*services.GetStateStorageBlockHeightOutput, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	height, ts, err := s.persistence.ReadMetadata()
	if err != nil {
		return nil, errors.Wrap(err, "could not read state storage metadata")
	}

	return &services.GetStateStorageBlockHeightOutput{
		LastCommittedBlockHeight:    height,
		LastCommittedBlockTimestamp: ts,
	}, nil
}
