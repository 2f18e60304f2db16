// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package httpserver

import (
	"context"
	"encoding/json"
	"github.com/orbs-network/orbs-counter-playground/instrumentation/trace"
	"github.com/orbs-network/orbs-counter-playground/types/services"
	"github.com/orbs-network/scribe/log"
	"net/http"
)

func (s *HttpServer) robots(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	s.write(w, []byte("User-agent: *\nDisallow: /\n"))
}

func (s *HttpServer) dumpMetrics(w http.ResponseWriter, r *http.Request) {
	body, err := json.Marshal(s.metricRegistry.ExportAll())
	if err != nil {
		s.writeErrorResponseAndLog(w, &httpErr{http.StatusInternalServerError, log.Error(err), "failed encoding metrics"})
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	s.write(w, body)
}

func (s *HttpServer) dumpMetricsAsPrometheus(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; version=0.0.4")
	s.write(w, []byte(s.metricRegistry.ExportPrometheus()))
}

// apiCall runs one public api method; a nil result means the request never reached execution
type apiCall func(ctx context.Context) (response interface{}, result *services.RequestResult, err error)

func (s *HttpServer) serveApi(w http.ResponseWriter, r *http.Request, name string, input interface{}, call apiCall) {
	if e := readInput(r, input); e != nil {
		s.writeErrorResponseAndLog(w, e)
		return
	}

	ctx := trace.NewContext(r.Context(), "http-"+name)
	s.logger.Info("http server received "+name, trace.LogFieldFrom(ctx))

	response, result, err := call(ctx)
	if result == nil {
		s.writeErrorResponseAndLog(w, errorFromPublicApi(err))
		return
	}
	s.writeJsonResponse(w, response, result, err)
}

func (s *HttpServer) sendTransactionHandler(w http.ResponseWriter, r *http.Request) {
	input := &services.SendTransactionInput{}
	s.serveApi(w, r, "send-transaction", input, func(ctx context.Context) (interface{}, *services.RequestResult, error) {
		output, err := s.publicApi.SendTransaction(ctx, input)
		if output == nil {
			return nil, nil, err
		}
		return output, output.RequestResult, err
	})
}

func (s *HttpServer) runQueryHandler(w http.ResponseWriter, r *http.Request) {
	input := &services.RunQueryInput{}
	s.serveApi(w, r, "run-query", input, func(ctx context.Context) (interface{}, *services.RequestResult, error) {
		output, err := s.publicApi.RunQuery(ctx, input)
		if output == nil {
			return nil, nil, err
		}
		return output, output.RequestResult, err
	})
}

func (s *HttpServer) getTransactionStatusHandler(w http.ResponseWriter, r *http.Request) {
	input := &services.GetTransactionStatusInput{}
	s.serveApi(w, r, "get-transaction-status", input, func(ctx context.Context) (interface{}, *services.RequestResult, error) {
		output, err := s.publicApi.GetTransactionStatus(ctx, input)
		if output == nil {
			return nil, nil, err
		}
		return output, output.RequestResult, err
	})
}

// the public api only returns no result for requests it could not make sense of
func errorFromPublicApi(err error) *httpErr {
	if err == nil {
		return &httpErr{http.StatusInternalServerError, nil, "public api returned no result"}
	}
	return &httpErr{http.StatusBadRequest, log.Error(err), err.Error()}
}
