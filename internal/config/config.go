// Package config loads service configuration from the environment. A local
// .env file is honored when present so development matches deployment.
package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

// Config holds every tunable the designer service reads at startup.
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"billcanvas"`
	HTTPAddr    string `env:"HTTP_ADDR" envDefault:":8080"`

	// DatabaseURL selects postgres; when empty the service falls back to a
	// local sqlite file so the designer runs without infrastructure.
	DatabaseURL string `env:"DATABASE_URL"`
	SQLitePath  string `env:"SQLITE_PATH" envDefault:"billcanvas.db"`

	SampleCacheTTLSeconds int `env:"SAMPLE_CACHE_TTL_SECONDS" envDefault:"30"`

	TracingEnabled  bool    `env:"TRACING_ENABLED" envDefault:"false"`
	TracingEndpoint string  `env:"TRACING_ENDPOINT"`
	TracingProtocol string  `env:"TRACING_PROTOCOL" envDefault:"grpc"`
	TracingSampling float64 `env:"TRACING_SAMPLING_RATIO" envDefault:"0.1"`
	ServiceVersion  string  `env:"SERVICE_VERSION" envDefault:"dev"`
}

// IsProduction reports whether the service runs with production hardening.
func (c Config) IsProduction() bool { return c.Environment == "production" }

// Load reads the environment into a Config.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Module provides the Config to the fx graph.
var Module = fx.Module("config",
	fx.Provide(Load),
)
