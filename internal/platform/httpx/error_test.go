package httpx

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/require"

	"dataskools.io/landing-web/internal/platform/requestctx"
)

func TestWriteErrorEnvelope(t *testing.T) {
	t.Parallel()

	ctx := context.WithValue(context.Background(), middleware.RequestIDKey, "req-1")
	ctx = requestctx.WithTrace(ctx, requestctx.TraceInfo{TraceID: "trace-1"})

	rec := httptest.NewRecorder()
	WriteError(ctx, rec, NotFound())

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "not_found", body["error"])
	require.Equal(t, float64(http.StatusNotFound), body["status"])
	require.Equal(t, "req-1", body["request_id"])
	require.Equal(t, "trace-1", body["trace_id"])
}

func TestNewErrorSanitises(t *testing.T) {
	t.Parallel()

	err := NewError(" bad\ncode ", strings.Repeat("x", 600), 0)
	require.Equal(t, "bad code", err.Code)
	require.Len(t, err.Message, 512)
	require.Equal(t, http.StatusInternalServerError, err.Status)

	rec := httptest.NewRecorder()
	WriteError(context.Background(), rec, Error{Code: "x"})
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NotContains(t, rec.Body.String(), "request_id")
}
