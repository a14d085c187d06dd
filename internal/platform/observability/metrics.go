package observability

import (
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

const meterName = "dataskools.io/landing-web/internal/platform/observability"

// MetricsMiddleware records request count and latency per route. A nil provider
// uses the global meter provider, which is a no-op until one is installed.
func MetricsMiddleware(provider metric.MeterProvider, logger *zap.Logger) func(http.Handler) http.Handler {
	if provider == nil {
		provider = otel.GetMeterProvider()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	meter := provider.Meter(meterName)

	requests, err := meter.Int64Counter(
		"http.server.requests",
		metric.WithDescription("Count of HTTP requests served"),
	)
	if err != nil {
		logger.Warn("observability: unable to register request counter", zap.Error(err))
	}
	latency, err := meter.Float64Histogram(
		"http.server.latency",
		metric.WithUnit("ms"),
		metric.WithDescription("Latency in milliseconds for HTTP requests"),
	)
	if err != nil {
		logger.Warn("observability: unable to register latency histogram", zap.Error(err))
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			recorder := newResponseRecorder(w)
			start := time.Now()
			next.ServeHTTP(recorder, r)

			attrs := metric.WithAttributes(
				attribute.String("http.request.method", SanitizeMethod(r.Method)),
				attribute.String("http.route", SanitizeRoute(routePattern(r))),
				attribute.Int("http.response.status_code", recorder.Status()),
			)
			if requests != nil {
				requests.Add(r.Context(), 1, attrs)
			}
			if latency != nil {
				latency.Record(r.Context(), float64(time.Since(start))/float64(time.Millisecond), attrs)
			}
		})
	}
}
