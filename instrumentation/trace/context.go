// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package trace

import (
	"context"
	"github.com/google/uuid"
	"github.com/orbs-network/scribe/log"
	"time"
)

type spanKey struct{}

const RequestId = "request-id"

const untraced = "NO-CONTEXT"

// Context is a span of work inside one client request; nested spans share the request id of the outermost one.
type Context struct {
	requestId string
	name      string
	started   time.Time
	parent    *Context
}

// NewContext opens a span. A parent span keeps its request id, otherwise a fresh one is minted.
func NewContext(parent context.Context, name string) context.Context {
	span := &Context{name: name, started: time.Now()}
	if outer, ok := FromContext(parent); ok {
		span.parent = outer
		span.requestId = outer.requestId
	} else {
		span.requestId = name + "-" + uuid.New().String()
	}
	return context.WithValue(parent, spanKey{}, span)
}

// PropagateContext carries a span into a context that did not inherit it, such as a detached goroutine.
func PropagateContext(target context.Context, span *Context) context.Context {
	return context.WithValue(target, spanKey{}, span)
}

func FromContext(ctx context.Context) (*Context, bool) {
	span, ok := ctx.Value(spanKey{}).(*Context)
	return span, ok
}

func (c *Context) RequestId() string {
	return c.requestId
}

// EntryPoint names the outermost span, where the request entered the node.
func (c *Context) EntryPoint() string {
	root := c
	for root.parent != nil {
		root = root.parent
	}
	return root.name
}

func (c *Context) Name() string {
	return c.name
}

func (c *Context) Elapsed() time.Duration {
	return time.Since(c.started)
}

func LogFieldFrom(ctx context.Context) *log.Field {
	requestId := untraced
	if span, ok := FromContext(ctx); ok {
		requestId = span.requestId
	}
	return log.String(RequestId, requestId)
}
