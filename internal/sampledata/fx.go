package sampledata

import (
	"github.com/smallbiznis/billcanvas/internal/sampledata/repository"
	"github.com/smallbiznis/billcanvas/internal/sampledata/service"
	"go.uber.org/fx"
)

var Module = fx.Module("sampledata.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.NewService),
)
