// Package db opens the service database. Postgres is used when DATABASE_URL
// is set; otherwise a local sqlite file keeps the designer self-contained.
package db

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/smallbiznis/billcanvas/internal/config"
)

// Params collects the dependencies needed to open the database.
type Params struct {
	fx.In

	Config config.Config
	Log    *zap.Logger
}

// Open connects to the configured database.
func Open(p Params) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	}

	if p.Config.DatabaseURL != "" {
		p.Log.Info("connecting to postgres")
		return gorm.Open(postgres.Open(p.Config.DatabaseURL), gormCfg)
	}

	p.Log.Info("using local sqlite database", zap.String("path", p.Config.SQLitePath))
	return gorm.Open(sqlite.Open(p.Config.SQLitePath), gormCfg)
}

// Module provides the database connection to the fx graph.
var Module = fx.Module("db",
	fx.Provide(Open),
)
