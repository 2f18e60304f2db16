// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package httpserver

import (
	"encoding/json"
	"github.com/orbs-network/orbs-counter-playground/config"
	"github.com/orbs-network/scribe/log"
	"net/http"
	"time"
)

type StatusResponse struct {
	Uptime int64

	BlockHeight struct {
		LastCommitted uint64
		Timestamp     int64
	}

	Version config.Version
}

func (s *HttpServer) getStatus(w http.ResponseWriter, r *http.Request) {
	status := StatusResponse{
		Uptime:  int64(time.Since(s.startTime).Seconds()),
		Version: config.GetVersion(),
	}

	height, timestamp, err := s.nodeState.LastCommittedBlock(r.Context())
	if err != nil {
		s.writeErrorResponseAndLog(w, &httpErr{http.StatusInternalServerError, log.Error(err), "failed reading last committed block"})
		return
	}
	status.BlockHeight.LastCommitted = uint64(height)
	status.BlockHeight.Timestamp = int64(timestamp)

	data, err := json.MarshalIndent(status, "", "  ")
	if err != nil {
		s.writeErrorResponseAndLog(w, &httpErr{http.StatusInternalServerError, log.Error(err), "failed encoding status"})
		return
	}
	w.Header().Set("Content-Type", "application/json")
	s.write(w, data)
}

func (s *HttpServer) dumpState(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	s.write(w, []byte(s.nodeState.DumpState()))
}
