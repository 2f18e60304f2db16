// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package httpserver

import (
	"bytes"
	"context"
	"fmt"
	"github.com/orbs-network/orbs-counter-playground/config"
	"github.com/orbs-network/orbs-counter-playground/instrumentation/metric"
	"github.com/orbs-network/orbs-counter-playground/types/primitives"
	"github.com/orbs-network/orbs-counter-playground/types/protocol"
	"github.com/orbs-network/orbs-counter-playground/types/services"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

type fakeNodeState struct {
	height primitives.BlockHeight
	dump   string
}

func (f *fakeNodeState) LastCommittedBlock(ctx context.Context) (primitives.BlockHeight, primitives.TimestampNano, error) {
	return f.height, 0, nil
}

func (f *fakeNodeState) DumpState() string {
	return f.dump
}

func newServerForTests(t *testing.T, papi services.PublicApi) *HttpServer {
	s, err := NewHttpServer(config.ForAcceptanceTests(), log.DefaultTestingLogger(t), papi, &fakeNodeState{height: 7, dump: "counter:num=1"}, metric.NewRegistry())
	require.NoError(t, err, "http server should start on a random port")
	return s
}

func shutdownServer(s *HttpServer) {
	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()
	s.GracefulShutdown(ctx)
	s.WaitUntilShutdown(ctx)
}

func TestHttpServerReadInput_EmptyPost(t *testing.T) {
	req, _ := http.NewRequest("POST", "1", nil)
	e := readInput(req, &services.RunQueryInput{})

	require.Equal(t, http.StatusBadRequest, e.code, "empty body should cause bad request error")
}

func TestHttpServerReadInput_ErrorBodyPost(t *testing.T) {
	req, _ := http.NewRequest("POST", "1", errReader(0))
	e := readInput(req, &services.RunQueryInput{})

	require.Equal(t, http.StatusBadRequest, e.code, "failing body should cause bad request error")
}

func TestHttpServerReadInput_RequiresPost(t *testing.T) {
	req, _ := http.NewRequest("GET", "1", nil)
	e := readInput(req, &services.RunQueryInput{})

	require.Equal(t, http.StatusMethodNotAllowed, e.code, "only POST requests carry input")
}

func TestHttpServerReadInput_BadJson(t *testing.T) {
	req, _ := http.NewRequest("POST", "1", bytes.NewReader([]byte("{not json")))
	e := readInput(req, &services.RunQueryInput{})

	require.Equal(t, http.StatusBadRequest, e.code, "bad input in body should cause bad request error")
}

type errReader int

func (errReader) Read(p []byte) (n int, err error) {
	return 0, errors.Errorf("test error")
}

func TestHttpServerHttpCodeOfRequestStatus(t *testing.T) {
	tests := []struct {
		name   string
		expect int
		status protocol.RequestStatus
	}{
		{"REQUEST_STATUS_RESERVED", http.StatusInternalServerError, protocol.REQUEST_STATUS_RESERVED},
		{"REQUEST_STATUS_COMPLETED", http.StatusOK, protocol.REQUEST_STATUS_COMPLETED},
		{"REQUEST_STATUS_NOT_FOUND", http.StatusNotFound, protocol.REQUEST_STATUS_NOT_FOUND},
		{"REQUEST_STATUS_BAD_REQUEST", http.StatusBadRequest, protocol.REQUEST_STATUS_BAD_REQUEST},
		{"REQUEST_STATUS_CONGESTION", http.StatusServiceUnavailable, protocol.REQUEST_STATUS_CONGESTION},
		{"REQUEST_STATUS_SYSTEM_ERROR", http.StatusInternalServerError, protocol.REQUEST_STATUS_SYSTEM_ERROR},
	}
	for i := range tests {
		cTest := tests[i]
		t.Run(cTest.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, cTest.expect, httpCodeOf(cTest.status), fmt.Sprintf("%s was translated to %d", cTest.name, cTest.expect))
		})
	}
}

func TestHttpServerWriteTextResponse(t *testing.T) {
	s := &HttpServer{logger: log.DefaultTestingLogger(t)}
	rec := httptest.NewRecorder()
	s.writeErrorResponseAndLog(rec, &httpErr{code: http.StatusAccepted, message: "hello test"})

	require.Equal(t, http.StatusAccepted, rec.Code, "code value is not equal")
	require.Equal(t, "text/plain", rec.Header().Get("Content-Type"), "should have our content type")
	require.Equal(t, "hello test", rec.Body.String(), "should have text value")
}

func TestHttpServer_FailsOnTakenAddress(t *testing.T) {
	s := newServerForTests(t, &services.MockPublicApi{})
	defer shutdownServer(s)

	cfg := config.ForAcceptanceTests()
	cfg.SetString(config.HTTP_ADDRESS, fmt.Sprintf("127.0.0.1:%d", s.Port()))
	_, err := NewHttpServer(cfg, log.DefaultTestingLogger(t), &services.MockPublicApi{}, &fakeNodeState{}, metric.NewRegistry())
	require.Error(t, err, "second server on the same port should fail")
}

func TestHttpServer_ServesOverTheNetwork(t *testing.T) {
	s := newServerForTests(t, &services.MockPublicApi{})
	defer shutdownServer(s)

	res, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d/robots.txt", s.Port()))
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)
}
