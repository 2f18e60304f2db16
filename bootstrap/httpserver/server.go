// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package httpserver

import (
	"context"
	"encoding/json"
	"github.com/orbs-network/govnr"
	"github.com/orbs-network/orbs-counter-playground/config"
	"github.com/orbs-network/orbs-counter-playground/instrumentation/logfields"
	"github.com/orbs-network/orbs-counter-playground/instrumentation/metric"
	"github.com/orbs-network/orbs-counter-playground/types/primitives"
	"github.com/orbs-network/orbs-counter-playground/types/protocol"
	"github.com/orbs-network/orbs-counter-playground/types/services"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
	"io"
	"net"
	"net/http"
	"net/http/pprof"
	"strconv"
	"time"
)

var LogTag = log.String("adapter", "http-server")

const keepAlivePeriod = 35 * time.Second

type httpErr struct {
	code     int
	logField *log.Field
	message  string
}

// what the node exposes for inspection besides its public api
type NodeState interface {
	LastCommittedBlock(ctx context.Context) (primitives.BlockHeight, primitives.TimestampNano, error)
	DumpState() string
}

type HttpServer struct {
	httpServer     *http.Server
	router         *http.ServeMux
	logger         log.Logger
	publicApi      services.PublicApi
	nodeState      NodeState
	metricRegistry metric.Registry
	config         config.HttpServerConfig
	startTime      time.Time

	port   int
	closed chan struct{}
}

// NewHttpServer binds the configured address before returning, so a taken port fails here and not in the background
func NewHttpServer(cfg config.HttpServerConfig, logger log.Logger, publicApi services.PublicApi, nodeState NodeState, metricRegistry metric.Registry) (*HttpServer, error) {
	listenConfig := net.ListenConfig{KeepAlive: keepAlivePeriod}
	listener, err := listenConfig.Listen(context.Background(), "tcp", cfg.HttpAddress())
	if err != nil {
		return nil, errors.Wrapf(err, "failed to start http server on %s", cfg.HttpAddress())
	}

	s := &HttpServer{
		logger:         logger.WithTags(LogTag),
		publicApi:      publicApi,
		nodeState:      nodeState,
		metricRegistry: metricRegistry,
		config:         cfg,
		startTime:      time.Now(),
		port:           listener.Addr().(*net.TCPAddr).Port,
		closed:         make(chan struct{}),
	}
	s.router = s.createRouter()
	s.httpServer = &http.Server{Handler: s.router}

	govnr.Once(logfields.GovnrErrorer(s.logger), func() {
		defer close(s.closed)
		if err := s.httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
			s.logger.Error("http server stopped unexpectedly", log.Error(err))
		}
	})

	s.logger.Info("started http server", log.String("address", cfg.HttpAddress()), log.Int("port", s.port))
	return s, nil
}

func (s *HttpServer) Port() int {
	return s.port
}

func (s *HttpServer) Router() *http.ServeMux {
	return s.router
}

func (s *HttpServer) GracefulShutdown(shutdownContext context.Context) {
	if err := s.httpServer.Shutdown(shutdownContext); err != nil {
		s.logger.Error("failed to stop http server gracefully", log.Error(err))
	}
}

func (s *HttpServer) WaitUntilShutdown(shutdownContext context.Context) {
	select {
	case <-s.closed:
	case <-shutdownContext.Done():
	}
}

type route struct {
	path    string
	handler http.HandlerFunc
	browser bool // reachable from scripts on other origins
}

func (s *HttpServer) routes() []route {
	return []route{
		{"/api/v1/send-transaction", s.sendTransactionHandler, true},
		{"/api/v1/run-query", s.runQueryHandler, true},
		{"/api/v1/get-transaction-status", s.getTransactionStatusHandler, true},
		{"/metrics", s.dumpMetrics, true},
		{"/metrics.prometheus", s.dumpMetricsAsPrometheus, true},
		{"/status", s.getStatus, true},
		{"/debug/state", s.dumpState, false},
		{"/robots.txt", s.robots, false},
	}
}

func (s *HttpServer) createRouter() *http.ServeMux {
	router := http.NewServeMux()
	for _, r := range s.routes() {
		handler := r.handler
		if r.browser {
			handler = withCORS(handler)
		}
		router.Handle(r.path, handler)
	}

	if s.config.HttpProfiling() {
		router.HandleFunc("/debug/pprof/", pprof.Index)
		router.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
		router.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
		router.HandleFunc("/debug/pprof/trace", pprof.Trace)
	}
	return router
}

func readInput(r *http.Request, into interface{}) *httpErr {
	if r.Method != http.MethodPost {
		return &httpErr{http.StatusMethodNotAllowed, log.String("method", r.Method), "http request must be a POST"}
	}
	if r.Body == nil {
		return &httpErr{http.StatusBadRequest, nil, "http request body is empty"}
	}

	switch err := json.NewDecoder(r.Body).Decode(into); {
	case err == io.EOF:
		return &httpErr{http.StatusBadRequest, nil, "http request body is empty"}
	case err != nil:
		return &httpErr{http.StatusBadRequest, log.Error(err), "http request is not valid json"}
	}
	return nil
}

var httpCodeOfRequestStatus = map[protocol.RequestStatus]int{
	protocol.REQUEST_STATUS_COMPLETED:    http.StatusOK,
	protocol.REQUEST_STATUS_NOT_FOUND:    http.StatusNotFound,
	protocol.REQUEST_STATUS_BAD_REQUEST:  http.StatusBadRequest,
	protocol.REQUEST_STATUS_CONGESTION:   http.StatusServiceUnavailable,
	protocol.REQUEST_STATUS_SYSTEM_ERROR: http.StatusInternalServerError,
	protocol.REQUEST_STATUS_RESERVED:     http.StatusInternalServerError,
}

func httpCodeOf(status protocol.RequestStatus) int {
	if code, found := httpCodeOfRequestStatus[status]; found {
		return code
	}
	return http.StatusNotImplemented
}

func (s *HttpServer) writeJsonResponse(w http.ResponseWriter, response interface{}, requestResult *services.RequestResult, errorForVerbosity error) {
	body, err := json.Marshal(response)
	if err != nil {
		s.writeErrorResponseAndLog(w, &httpErr{http.StatusInternalServerError, log.Error(err), "failed encoding response"})
		return
	}

	header := w.Header()
	header.Set("Content-Type", "application/json; charset=utf-8")
	header.Set("X-ORBS-REQUEST-RESULT", requestResult.RequestStatus.String())
	header.Set("X-ORBS-BLOCK-HEIGHT", strconv.FormatUint(uint64(requestResult.BlockHeight), 10))
	header.Set("X-ORBS-BLOCK-TIMESTAMP", formatTimestamp(requestResult.BlockTimestamp))
	if errorForVerbosity != nil {
		header.Set("X-ORBS-ERROR-DETAILS", errorForVerbosity.Error())
	}

	w.WriteHeader(httpCodeOf(requestResult.RequestStatus))
	s.write(w, body)
}

func formatTimestamp(timestamp primitives.TimestampNano) string {
	return time.Unix(0, int64(timestamp)).UTC().Format(time.RFC3339Nano)
}

func (s *HttpServer) writeErrorResponseAndLog(w http.ResponseWriter, m *httpErr) {
	if m.logField == nil {
		s.logger.Info(m.message)
	} else {
		s.logger.Info(m.message, m.logField)
	}
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(m.code)
	s.write(w, []byte(m.message))
}

func (s *HttpServer) write(w io.Writer, body []byte) {
	if _, err := w.Write(body); err != nil {
		s.logger.Info("error writing response", log.Error(err))
	}
}

func withCORS(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		for _, header := range []string{"Access-Control-Allow-Origin", "Access-Control-Allow-Headers", "Access-Control-Allow-Methods"} {
			w.Header().Set(header, "*")
		}
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next(w, r)
	}
}
