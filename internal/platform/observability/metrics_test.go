package observability

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func collect(t *testing.T, reader *sdkmetric.ManualReader) map[string]metricdata.Metrics {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	out := map[string]metricdata.Metrics{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			out[m.Name] = m
		}
	}
	return out
}

func TestMetricsMiddlewareRecordsPerRoute(t *testing.T) {
	t.Parallel()

	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	router := chi.NewRouter()
	router.Use(MetricsMiddleware(provider, nil))
	router.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("landing"))
	})

	for range 2 {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	}
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))

	metrics := collect(t, reader)

	requests, ok := metrics["http.server.requests"].Data.(metricdata.Sum[int64])
	require.True(t, ok)
	counts := map[int64]int64{}
	for _, dp := range requests.DataPoints {
		status, found := dp.Attributes.Value(attribute.Key("http.response.status_code"))
		require.True(t, found)
		counts[status.AsInt64()] += dp.Value
	}
	require.Equal(t, map[int64]int64{http.StatusOK: 2, http.StatusNotFound: 1}, counts)

	latency, ok := metrics["http.server.latency"].Data.(metricdata.Histogram[float64])
	require.True(t, ok)
	var observed uint64
	for _, dp := range latency.DataPoints {
		observed += dp.Count
	}
	require.Equal(t, uint64(3), observed)
}
