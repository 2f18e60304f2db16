// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package gammacli

import (
	"bytes"
	"context"
	"encoding/json"
	"github.com/orbs-network/orbs-counter-playground/types/primitives"
	"github.com/orbs-network/orbs-counter-playground/types/protocol"
	"github.com/orbs-network/orbs-counter-playground/types/services"
	"github.com/pkg/errors"
	"io/ioutil"
	"net/http"
	"strings"
	"time"
)

const DEFAULT_HOST = "http://localhost:8080"

const (
	SEND_TRANSACTION_PATH       = "/api/v1/send-transaction"
	RUN_QUERY_PATH              = "/api/v1/run-query"
	GET_TRANSACTION_STATUS_PATH = "/api/v1/get-transaction-status"
	STATUS_PATH                 = "/status"
)

// JsonClient talks to the node public api over http
type JsonClient struct {
	host       string
	httpClient *http.Client
}

func NewJsonClient(host string, timeout time.Duration) *JsonClient {
	return &JsonClient{
		host:       strings.TrimSuffix(host, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *JsonClient) SendTransaction(ctx context.Context, signedTx *protocol.SignedTransaction) (*services.SendTransactionOutput, error) {
	out := &services.SendTransactionOutput{}
	err := c.post(ctx, SEND_TRANSACTION_PATH, &services.SendTransactionInput{SignedTransaction: signedTx}, out)
	if out.RequestResult == nil {
		return nil, err
	}
	return out, err
}

func (c *JsonClient) RunQuery(ctx context.Context, query *protocol.Query) (*services.RunQueryOutput, error) {
	out := &services.RunQueryOutput{}
	err := c.post(ctx, RUN_QUERY_PATH, &services.RunQueryInput{Query: query}, out)
	if out.RequestResult == nil {
		return nil, err
	}
	return out, err
}

func (c *JsonClient) GetTransactionStatus(ctx context.Context, txHash primitives.Sha256) (*services.GetTransactionStatusOutput, error) {
	out := &services.GetTransactionStatusOutput{}
	err := c.post(ctx, GET_TRANSACTION_STATUS_PATH, &services.GetTransactionStatusInput{Txhash: txHash}, out)
	if out.RequestResult == nil {
		return nil, err
	}
	return out, err
}

// Status returns the raw json the node reports about itself
func (c *JsonClient) Status(ctx context.Context) (json.RawMessage, error) {
	req, err := http.NewRequest(http.MethodGet, c.host+STATUS_PATH, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed creating status request")
	}
	res, err := c.httpClient.Do(req.WithContext(ctx))
	if err != nil {
		return nil, errors.Wrapf(err, "node at %s is unreachable", c.host)
	}
	defer res.Body.Close()

	body, err := ioutil.ReadAll(res.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed reading status response")
	}
	if res.StatusCode != http.StatusOK {
		return nil, errors.Errorf("node status returned http %d: %s", res.StatusCode, strings.TrimSpace(string(body)))
	}
	return json.RawMessage(body), nil
}

// post decodes a json body into out whenever the node sent one, so rejections still carry their result
func (c *JsonClient) post(ctx context.Context, path string, in interface{}, out interface{}) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return errors.Wrap(err, "failed encoding request")
	}

	req, err := http.NewRequest(http.MethodPost, c.host+path, bytes.NewReader(payload))
	if err != nil {
		return errors.Wrap(err, "failed creating request")
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req.WithContext(ctx))
	if err != nil {
		return errors.Wrapf(err, "node at %s is unreachable", c.host)
	}
	defer res.Body.Close()

	body, err := ioutil.ReadAll(res.Body)
	if err != nil {
		return errors.Wrap(err, "failed reading response")
	}

	if !strings.HasPrefix(res.Header.Get("Content-Type"), "application/json") {
		return errors.Errorf("http %d: %s", res.StatusCode, strings.TrimSpace(string(body)))
	}
	if err := json.Unmarshal(body, out); err != nil {
		return errors.Wrap(err, "response is not valid json")
	}

	if details := res.Header.Get("X-ORBS-ERROR-DETAILS"); details != "" {
		return errors.Errorf("http %d: %s", res.StatusCode, details)
	}
	return nil
}
