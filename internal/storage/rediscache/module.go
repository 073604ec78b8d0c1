package rediscache

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/logistics-platform/waybill/internal/config"
	"github.com/logistics-platform/waybill/internal/domain/repository"
)

// Module wires the Redis waybill cache.
var Module = fx.Options(
	fx.Provide(newCache),
	fx.Provide(
		func(c *Cache) repository.WaybillCache { return c },
	),
	fx.Invoke(registerLifecycle),
)

type cacheParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

func newCache(p cacheParams) (*Cache, error) {
	return New(p.Ctx, Options{
		Address:  p.Config.RedisAddress,
		Password: p.Config.RedisPassword,
		DB:       p.Config.RedisDB,
		TTL:      p.Config.CacheTTL,
	}, p.Logger)
}

func registerLifecycle(lc fx.Lifecycle, cache *Cache) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return cache.Close()
		},
	})
}
