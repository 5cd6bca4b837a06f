// Package logger wires the process-wide zap logger and enriches request
// logging with trace correlation and masked sensitive values.
package logger

import (
	"context"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/smallbiznis/billcanvas/internal/config"
)

// NewLogger builds the root logger and installs it as the zap global so
// FromContext works everywhere.
func NewLogger(cfg config.Config) (*zap.Logger, error) {
	var (
		log *zap.Logger
		err error
	)
	if cfg.IsProduction() {
		log, err = zap.NewProduction()
	} else {
		log, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, err
	}
	log = log.With(zap.String("service", cfg.ServiceName))
	zap.ReplaceGlobals(log)
	return log, nil
}

// FromContext returns the global logger annotated with the current trace and
// span IDs when the context carries a sampled span.
func FromContext(ctx context.Context) *zap.Logger {
	log := zap.L()
	if ctx == nil {
		return log
	}
	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return log
	}
	return log.With(
		zap.String("trace_id", sc.TraceID().String()),
		zap.String("span_id", sc.SpanID().String()),
	)
}

// Module provides the root logger to the fx graph.
var Module = fx.Module("logger",
	fx.Provide(NewLogger),
)
