// Package logger provides a global, Sugared Zap logger with optional
// OpenTelemetry integration. Log calls take a context so that the active
// span (if any) is attached to every record as trace_id/span_id.
package logger

import (
	"context"
	"io"
	"os"
	"sync"

	"github.com/gabapcia/chaintrack/internal/pkg/telemetry"

	"go.opentelemetry.io/contrib/bridges/otelzap"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// logger starts as a no-op so packages can log before Init (and in tests).
	logger = zap.NewNop().Sugar()

	initOnce sync.Once
)

type config struct {
	level  string
	output io.Writer
}

// Option configures the logger before initialization.
type Option func(*config)

// WithLevel sets the minimum log level ("debug", "info", "warn", "error", "panic", "fatal").
func WithLevel(l string) Option {
	return func(c *config) {
		c.level = l
	}
}

// WithOutput redirects the JSON core. Defaults to stdout.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		c.output = w
	}
}

// Init configures the global logger. It logs JSON at "info" by default and
// tees into the OTEL bridge when telemetry registered a LoggerProvider.
// Only the first successful call has any effect.
func Init(opts ...Option) error {
	cfg := config{level: "info", output: os.Stdout}
	for _, opt := range opts {
		opt(&cfg)
	}

	level, err := zapcore.ParseLevel(cfg.level)
	if err != nil {
		return err
	}

	initOnce.Do(func() {
		cores := []zapcore.Core{
			zapcore.NewCore(
				zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
				zapcore.AddSync(cfg.output),
				level,
			),
		}

		if lp := telemetry.LoggerProvider(); lp != nil {
			cores = append(cores, otelzap.NewCore("github.com/gabapcia/chaintrack", otelzap.WithLoggerProvider(lp)))
		}

		logger = zap.New(zapcore.NewTee(cores...)).Sugar()
	})

	return nil
}

// Sync flushes any buffered log entries.
func Sync() error {
	return logger.Sync()
}

// withSpan appends trace identifiers when ctx carries a valid span.
func withSpan(ctx context.Context, keysAndValues []any) []any {
	if ctx == nil {
		return keysAndValues
	}

	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return keysAndValues
	}

	return append(keysAndValues, "trace_id", sc.TraceID().String(), "span_id", sc.SpanID().String())
}

func Debug(ctx context.Context, msg string, keysAndValues ...any) {
	logger.Debugw(msg, withSpan(ctx, keysAndValues)...)
}

func Info(ctx context.Context, msg string, keysAndValues ...any) {
	logger.Infow(msg, withSpan(ctx, keysAndValues)...)
}

func Warn(ctx context.Context, msg string, keysAndValues ...any) {
	logger.Warnw(msg, withSpan(ctx, keysAndValues)...)
}

func Error(ctx context.Context, msg string, keysAndValues ...any) {
	logger.Errorw(msg, withSpan(ctx, keysAndValues)...)
}

// Fatal logs and then exits the process.
func Fatal(ctx context.Context, msg string, keysAndValues ...any) {
	logger.Fatalw(msg, withSpan(ctx, keysAndValues)...)
}
