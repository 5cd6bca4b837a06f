package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/smallbiznis/billcanvas/internal/config"
	"github.com/smallbiznis/billcanvas/internal/observability/metrics"
)

// NewEngine builds the gin engine with the full middleware chain.
func NewEngine(s *Server, httpMetrics *metrics.HTTPMetrics) *gin.Engine {
	return s.Router(httpMetrics)
}

// RunHTTP binds the engine to the configured address for the lifetime of
// the fx app.
func RunHTTP(lc fx.Lifecycle, engine *gin.Engine, cfg config.Config, log *zap.Logger) {
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info("http server listening", zap.String("addr", cfg.HTTPAddr))
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Error("http server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})
}

var Module = fx.Module("server",
	fx.Provide(func(cfg config.Config) metrics.Config {
		return metrics.Config{ServiceName: cfg.ServiceName, Environment: cfg.Environment}
	}),
	fx.Provide(func() metric.MeterProvider {
		return otel.GetMeterProvider()
	}),
	fx.Provide(metrics.NewHTTPMetrics),
	fx.Provide(NewServer),
	fx.Provide(NewEngine),
	fx.Invoke(RunHTTP),
)
