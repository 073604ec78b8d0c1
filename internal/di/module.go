package di

import (
	"go.uber.org/fx"

	"github.com/logistics-platform/waybill/internal/app"
	"github.com/logistics-platform/waybill/internal/config"
	"github.com/logistics-platform/waybill/internal/logger"
	"github.com/logistics-platform/waybill/internal/server/http/handlers"
	"github.com/logistics-platform/waybill/internal/server/http/router"
	"github.com/logistics-platform/waybill/internal/storage/postgres"
	"github.com/logistics-platform/waybill/internal/storage/rediscache"
	"github.com/logistics-platform/waybill/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		postgres.Module,
		rediscache.Module,
		usecase.Module,
		fx.Provide(func(f *app.WaybillFacade) handlers.WaybillFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
