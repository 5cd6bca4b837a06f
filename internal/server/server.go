// Package server exposes the designer's HTTP surface: template CRUD,
// bind validation, drop-point resolution, sample data and preview
// rendering.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/smallbiznis/billcanvas/internal/clock"
	"github.com/smallbiznis/billcanvas/internal/config"
	designdomain "github.com/smallbiznis/billcanvas/internal/designtemplate/domain"
	"github.com/smallbiznis/billcanvas/internal/observability/logger"
	"github.com/smallbiznis/billcanvas/internal/observability/metrics"
	"github.com/smallbiznis/billcanvas/internal/observability/tracing"
	"github.com/smallbiznis/billcanvas/internal/orgcontext"
	"github.com/smallbiznis/billcanvas/internal/preview"
	sampledomain "github.com/smallbiznis/billcanvas/internal/sampledata/domain"
)

type Params struct {
	fx.In

	Config    config.Config
	Log       *zap.Logger
	DB        *gorm.DB
	Clock     clock.Clock
	DesignSvc designdomain.Service
	SampleSvc sampledomain.Service
	Renderer  preview.Renderer
}

type Server struct {
	cfg       config.Config
	log       *zap.Logger
	db        *gorm.DB
	clk       clock.Clock
	designSvc designdomain.Service
	sampleSvc sampledomain.Service
	renderer  preview.Renderer
}

func NewServer(p Params) *Server {
	return &Server{
		cfg:       p.Config,
		log:       p.Log.Named("server"),
		db:        p.DB,
		clk:       p.Clock,
		designSvc: p.DesignSvc,
		sampleSvc: p.SampleSvc,
		renderer:  p.Renderer,
	}
}

// Router assembles the gin engine with the full middleware chain.
func (s *Server) Router(httpMetrics *metrics.HTTPMetrics) *gin.Engine {
	if s.cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(tracing.GinMiddleware(s.cfg.ServiceName))
	engine.Use(logger.GinMiddleware(logger.MiddlewareConfig{
		SkipPaths: []string{"/healthz", "/metrics"},
	}))
	if httpMetrics != nil {
		engine.Use(metrics.GinMiddleware(httpMetrics))
	}

	engine.GET("/healthz", s.Health)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	s.RegisterRoutes(engine)
	return engine
}

// RegisterRoutes mounts the versioned API onto the engine.
func (s *Server) RegisterRoutes(engine *gin.Engine) {
	v1 := engine.Group("/v1")
	v1.Use(orgcontext.GinMiddleware())

	v1.POST("/templates", s.CreateTemplate)
	v1.GET("/templates", s.ListTemplates)
	v1.GET("/templates/:id", s.GetTemplate)
	v1.PUT("/templates/:id", s.UpdateTemplate)
	v1.DELETE("/templates/:id", s.DeleteTemplate)
	v1.POST("/templates/:id/default", s.SetDefaultTemplate)
	v1.POST("/templates/:id/preview", s.PreviewTemplate)

	v1.POST("/bindings/validate", s.ValidateBindings)
	v1.POST("/designer/drop", s.ResolveDrop)

	v1.GET("/sample-data", s.ListSampleData)
	v1.GET("/sample-data/:name", s.GetSampleData)
	v1.PUT("/sample-data/:name", s.UpsertSampleData)
}

func (s *Server) Health(c *gin.Context) {
	sqlDB, err := s.db.DB()
	if err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
		AbortWithError(c, ErrServiceUnavailable)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
