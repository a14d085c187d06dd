package httpserver

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"dataskools.io/landing-web/internal/landing/page"
	"dataskools.io/landing-web/internal/platform/httpx"
	"dataskools.io/landing-web/internal/platform/observability"
	"dataskools.io/landing-web/internal/platform/requestctx"
	"dataskools.io/landing-web/public"
)

const (
	staticPrefix   = "/static"
	requestTimeout = 60 * time.Second
)

// Config holds runtime options for the landing HTTP server.
type Config struct {
	Address string
	Page    *page.Page
	Logger  *zap.Logger
	// Environment is the deployment label; anything but Production is noindex.
	Environment  string
	StaticMaxAge time.Duration
	// Static overrides the embedded asset tree.
	Static         fs.FS
	TracerProvider trace.TracerProvider
	MeterProvider  metric.MeterProvider
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
}

// New constructs the HTTP server with its middleware stack and embedded assets.
func New(cfg Config) (*http.Server, error) {
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, err
	}
	return &http.Server{
		Addr:              cfg.Address,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       durationOr(cfg.ReadTimeout, 15*time.Second),
		WriteTimeout:      durationOr(cfg.WriteTimeout, 30*time.Second),
		IdleTimeout:       durationOr(cfg.IdleTimeout, 120*time.Second),
	}, nil
}

// NewHandler builds the router without binding it to a listener.
func NewHandler(cfg Config) (http.Handler, error) {
	if cfg.Page == nil {
		return nil, errors.New("httpserver: page is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	staticContent := cfg.Static
	if staticContent == nil {
		var err error
		staticContent, err = public.StaticFS()
		if err != nil {
			return nil, fmt.Errorf("httpserver: embed static: %w", err)
		}
	}
	assets, err := assetsWithCache(staticContent, cfg.StaticMaxAge)
	if err != nil {
		return nil, err
	}

	router := chi.NewRouter()
	router.Use(chimw.RequestID)
	router.Use(chimw.RealIP)
	router.Use(environmentHeaders(cfg.Environment))
	router.Use(observability.TraceMiddleware(cfg.TracerProvider))
	router.Use(observability.InjectLoggerMiddleware(logger))
	router.Use(observability.RequestLoggerMiddleware())
	router.Use(observability.MetricsMiddleware(cfg.MeterProvider, logger))
	router.Use(observability.RecoveryMiddleware(logger))
	router.Use(chimw.Timeout(requestTimeout))

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteError(r.Context(), w, httpx.NotFound())
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteError(r.Context(), w, httpx.MethodNotAllowed())
	})

	landing := landingHandler(cfg.Page)
	router.Get("/", landing)
	router.Head("/", landing)
	router.Get("/healthz", healthHandler)
	router.Handle(staticPrefix+"/*", http.StripPrefix(staticPrefix, assets))

	return router, nil
}

func landingHandler(p *page.Page) http.HandlerFunc {
	component := templ.Handler(p.Component(),
		templ.WithContentType("text/html; charset=utf-8"),
		templ.WithErrorHandler(func(r *http.Request, err error) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				requestctx.Logger(r.Context()).Error("render landing page", zap.Error(err))
				httpx.WriteError(r.Context(), w, httpx.Internal())
			})
		}),
	)
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-cache")
		component.ServeHTTP(w, r)
	}
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write([]byte("ok"))
}

func durationOr(d, fallback time.Duration) time.Duration {
	if d > 0 {
		return d
	}
	return fallback
}
