package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"dataskools.io/landing-web/internal/httpserver"
	"dataskools.io/landing-web/internal/landing/content"
	"dataskools.io/landing-web/internal/landing/page"
	"dataskools.io/landing-web/internal/platform/config"
	"dataskools.io/landing-web/internal/platform/observability"
)

const shutdownTimeout = 10 * time.Second

type serveFlags struct {
	envFile string
}

func newServeCmd(root *rootFlags) *cobra.Command {
	flags := &serveFlags{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the landing page over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, root, flags)
		},
	}

	cmd.Flags().StringVar(&flags.envFile, "env-file", ".env", "Optional dotenv file merged under the process environment")

	return cmd
}

func runServe(ctx context.Context, root *rootFlags, flags *serveFlags) error {
	baseLogger, err := observability.NewLogger(observability.WithLevel(root.logLevel))
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = baseLogger.Sync() }()
	logger := baseLogger.Named("web")

	cfg, err := config.Load(config.WithEnvFile(flags.envFile))
	if err != nil {
		var invalid *config.ValidationError
		if errors.As(err, &invalid) {
			logger.Error("invalid configuration", zap.Strings("fields", invalid.Fields()))
		}
		return fmt.Errorf("load config: %w", err)
	}

	cat, err := root.loadCatalog()
	if err != nil {
		logger.Error("failed to load catalog", zap.Error(err))
		return err
	}

	shutdownTracing, err := observability.SetupTracing(ctx, observability.TracingConfig{
		Endpoint:    cfg.Tracing.Endpoint,
		ServiceName: cfg.Tracing.ServiceName,
		Version:     version,
		Insecure:    !cfg.Site.IsProduction(),
	})
	if err != nil {
		return fmt.Errorf("setup tracing: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			logger.Warn("tracer shutdown error", zap.Error(err))
		}
	}()

	srv, err := newServer(cfg, cat, logger)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening",
			zap.String("addr", srv.Addr),
			zap.String("environment", cfg.Site.Environment),
			zap.String("language", cfg.Site.Language),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}

// newServer assembles the landing page and HTTP server from configuration.
func newServer(cfg config.Config, cat *content.Catalog, logger *zap.Logger) (*http.Server, error) {
	landing := page.New(cat,
		page.WithLanguage(cfg.Site.Language),
		page.WithBaseURL(cfg.Site.BaseURL),
		page.WithMenuCloseDelay(cfg.Site.MenuCloseDelay),
		page.WithTailwindCDN(cfg.Site.TailwindCDN),
	)

	srv, err := httpserver.New(httpserver.Config{
		Address:      cfg.Server.Addr(),
		Page:         landing,
		Logger:       logger,
		Environment:  cfg.Site.Environment,
		StaticMaxAge: cfg.Server.StaticMaxAge,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("build server: %w", err)
	}
	return srv, nil
}
