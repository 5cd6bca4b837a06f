package designtemplate

import (
	"github.com/smallbiznis/billcanvas/internal/designtemplate/repository"
	"github.com/smallbiznis/billcanvas/internal/designtemplate/service"
	"go.uber.org/fx"
)

var Module = fx.Module("designtemplate.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.NewService),
)
