// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package publicapi

import (
	"context"
	"github.com/orbs-network/orbs-counter-playground/crypto/digest"
	"github.com/orbs-network/orbs-counter-playground/instrumentation/logfields"
	"github.com/orbs-network/orbs-counter-playground/instrumentation/trace"
	"github.com/orbs-network/orbs-counter-playground/types/services"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
	"time"
)

func (s *service) RunQuery(parentCtx context.Context, input *services.RunQueryInput) (*services.RunQueryOutput, error) {
	ctx := trace.NewContext(parentCtx, "PublicApi.RunQuery")

	if input == nil || input.Query == nil {
		err := errors.New("client request is missing a query")
		s.logger.Info("run query received missing input", log.Error(err))
		return nil, err
	}

	logger := s.logger.WithTags(trace.LogFieldFrom(ctx), logfields.Query(digest.CalcQueryHash(input.Query)), log.String("flow", "checkpoint"))
	logger.Info("run query request received")
	defer s.latency.runQuery.RecordSince(time.Now())

	result, err := s.virtualMachine.RunLocalMethod(ctx, &services.RunLocalMethodInput{Query: input.Query})
	if err != nil {
		logger.Info("run local method failed", log.Error(err))
		return nil, err
	}

	return runQueryOutput(result), nil
}
