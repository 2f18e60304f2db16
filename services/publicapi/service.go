// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package publicapi

import (
	"github.com/orbs-network/orbs-counter-playground/config"
	"github.com/orbs-network/orbs-counter-playground/instrumentation/metric"
	"github.com/orbs-network/orbs-counter-playground/types/services"
	"github.com/orbs-network/scribe/log"
	"time"
)

var LogTag = log.Service("public-api")

const (
	transactionStatusLatencyCap = 2 * time.Second
	queryLatencyCap             = 1 * time.Second
)

type counters struct {
	received   *metric.Gauge
	nilRequest *metric.Gauge
	rejected   *metric.Gauge
	duplicate  *metric.Gauge
}

type latencies struct {
	sendTransaction      *metric.Histogram
	getTransactionStatus *metric.Histogram
	runQuery             *metric.Histogram
}

type service struct {
	config          config.PublicApiConfig
	transactionPool services.TransactionPool
	virtualMachine  services.VirtualMachine
	logger          log.Logger

	transactions counters
	latency      latencies
}

func NewPublicApi(
	config config.PublicApiConfig,
	transactionPool services.TransactionPool,
	virtualMachine services.VirtualMachine,
	logger log.Logger,
	metricFactory metric.Factory,
) services.PublicApi {
	s := &service{
		config:          config,
		transactionPool: transactionPool,
		virtualMachine:  virtualMachine,
		logger:          logger.WithTags(LogTag),
	}

	s.transactions = counters{
		received:   metricFactory.NewGauge("PublicApi.TotalTransactionsFromClients.Count"),
		nilRequest: metricFactory.NewGauge("PublicApi.TotalTransactionsErrNilRequest.Count"),
		rejected:   metricFactory.NewGauge("PublicApi.TotalTransactionsErrAddingToTxPool.Count"),
		duplicate:  metricFactory.NewGauge("PublicApi.TotalTransactionsErrDuplicate.Count"),
	}
	s.latency = latencies{
		sendTransaction:      metricFactory.NewLatency("PublicApi.SendTransactionProcessingTime.Millis", config.PublicApiSendTransactionTimeout()),
		getTransactionStatus: metricFactory.NewLatency("PublicApi.GetTransactionStatusProcessingTime.Millis", transactionStatusLatencyCap),
		runQuery:             metricFactory.NewLatency("PublicApi.RunQueryProcessingTime.Millis", queryLatencyCap),
	}

	return s
}
