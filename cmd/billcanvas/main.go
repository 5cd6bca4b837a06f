package main

import (
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/smallbiznis/billcanvas/internal/clock"
	"github.com/smallbiznis/billcanvas/internal/config"
	"github.com/smallbiznis/billcanvas/internal/designtemplate"
	"github.com/smallbiznis/billcanvas/internal/migration"
	"github.com/smallbiznis/billcanvas/internal/observability/logger"
	"github.com/smallbiznis/billcanvas/internal/observability/tracing"
	"github.com/smallbiznis/billcanvas/internal/preview"
	"github.com/smallbiznis/billcanvas/internal/sampledata"
	"github.com/smallbiznis/billcanvas/internal/server"
	"github.com/smallbiznis/billcanvas/pkg/db"
)

func main() {
	app := fx.New(
		config.Module,
		logger.Module,
		tracing.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		clock.Module,
		fx.Invoke(func(conn *gorm.DB) error {
			sqlDB, err := conn.DB()
			if err != nil {
				return err
			}
			return migration.RunMigrations(sqlDB)
		}),

		designtemplate.Module,
		sampledata.Module,
		preview.Module,
		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
