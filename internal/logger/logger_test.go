// SPDX-License-Identifier: Apache-2.0

package logger

import (
	"bytes"
	"context"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromContext_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("remote", "1.2.3.4").Logger()
	ctx := zl.WithContext(context.Background())

	FromContext(ctx).Info().Msg("hello")

	assert.Contains(t, buf.String(), `"remote":"1.2.3.4"`)
	assert.Contains(t, buf.String(), "hello")
}

func TestFromRequest_UsesRequestContext(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf)

	r := httptest.NewRequest("POST", "/mcp", nil)
	r = r.WithContext(zl.WithContext(r.Context()))

	FromRequest(r).Warn().Msg("request-scoped")

	require.Contains(t, buf.String(), "request-scoped")
	assert.Contains(t, buf.String(), `"level":"warn"`)
}
