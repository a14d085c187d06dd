package observability

import (
	"context"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"dataskools.io/landing-web/internal/platform/requestctx"
)

const defaultLogLevel = "info"

type loggerOptions struct {
	level       string
	outputPaths []string
}

// LoggerOption customises NewLogger.
type LoggerOption func(*loggerOptions)

// WithLevel overrides the LOG_LEVEL environment variable.
func WithLevel(level string) LoggerOption {
	return func(o *loggerOptions) {
		o.level = level
	}
}

// WithOutputPaths redirects log output, for example to a file while a
// terminal UI owns stdout.
func WithOutputPaths(paths ...string) LoggerOption {
	return func(o *loggerOptions) {
		if len(paths) > 0 {
			o.outputPaths = paths
		}
	}
}

// NewLogger constructs a zap logger emitting structured JSON.
func NewLogger(opts ...LoggerOption) (*zap.Logger, error) {
	options := loggerOptions{
		level:       os.Getenv("LOG_LEVEL"),
		outputPaths: []string{"stdout"},
	}
	for _, opt := range opts {
		opt(&options)
	}

	level := zap.NewAtomicLevel()
	if err := level.UnmarshalText([]byte(strings.ToLower(strings.TrimSpace(options.level)))); err != nil {
		// Fallback to default level when unset or invalid.
		_ = level.UnmarshalText([]byte(defaultLogLevel))
	}

	encoderCfg := zapcore.EncoderConfig{
		MessageKey: "message",
		TimeKey:    "timestamp",
		LevelKey:   "severity",
		EncodeTime: zapcore.RFC3339NanoTimeEncoder,
		EncodeLevel: func(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendString(strings.ToUpper(level.String()))
		},
		CallerKey:      "caller",
		EncodeCaller:   zapcore.ShortCallerEncoder,
		StacktraceKey:  "stacktrace",
		EncodeDuration: zapcore.MillisDurationEncoder,
	}

	cfg := zap.Config{
		Level:             level,
		Encoding:          "json",
		EncoderConfig:     encoderCfg,
		OutputPaths:       options.outputPaths,
		ErrorOutputPaths:  []string{"stderr"},
		DisableStacktrace: true,
	}

	return cfg.Build()
}

// WithLogger injects the logger into the provided context.
func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return requestctx.WithLogger(ctx, logger)
}

// FromContext retrieves the logger from context, defaulting to a no-op logger.
func FromContext(ctx context.Context) *zap.Logger {
	return requestctx.Logger(ctx)
}

// WithRequestFields augments the logger with request-scoped fields.
func WithRequestFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return logger.With(fields...)
}
