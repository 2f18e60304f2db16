// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package trace

import (
	"context"
	"github.com/stretchr/testify/require"
	"strings"
	"testing"
)

func TestEverySpanWithoutParentGetsItsOwnRequestId(t *testing.T) {
	first, ok := FromContext(NewContext(context.Background(), "http-send-transaction"))
	require.True(t, ok)
	second, _ := FromContext(NewContext(context.Background(), "http-send-transaction"))

	require.True(t, strings.HasPrefix(first.RequestId(), "http-send-transaction-"))
	require.NotEqual(t, first.RequestId(), second.RequestId())
}

func TestNestedSpanSharesRequestIdAndEntryPoint(t *testing.T) {
	outer := NewContext(context.Background(), "http-run-query")
	inner := NewContext(outer, "PublicApi.RunQuery")

	outerSpan, _ := FromContext(outer)
	innerSpan, _ := FromContext(inner)

	require.Equal(t, outerSpan.RequestId(), innerSpan.RequestId())
	require.Equal(t, "PublicApi.RunQuery", innerSpan.Name())
	require.Equal(t, "http-run-query", innerSpan.EntryPoint())
	require.True(t, innerSpan.Elapsed() >= 0)
}

func TestPropagatedSpanKeepsRequestId(t *testing.T) {
	span, _ := FromContext(NewContext(context.Background(), "entry"))

	detached, ok := FromContext(PropagateContext(context.Background(), span))
	require.True(t, ok)
	require.Equal(t, span.RequestId(), detached.RequestId())
}

func TestLogFieldFromUntracedContext(t *testing.T) {
	field := LogFieldFrom(context.Background())
	require.Equal(t, RequestId, field.Key)
	require.Equal(t, "NO-CONTEXT", field.Value())
}

func TestLogFieldFromTracedContext(t *testing.T) {
	ctx := NewContext(context.Background(), "entry")
	span, _ := FromContext(ctx)

	require.Equal(t, span.RequestId(), LogFieldFrom(ctx).Value())
}
