package cache

import (
	"context"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/polkiloo/foodmarket/internal/config"
	"github.com/polkiloo/foodmarket/internal/domain/repository"
)

// Module provides the search cache. Redis is used only when an address is configured.
var Module = fx.Options(
	fx.Provide(newSearchCache),
)

type cacheParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    *config.Config
	Logger    *zap.Logger
}

func newSearchCache(p cacheParams) repository.SearchCache {
	if p.Config.RedisAddress == "" {
		p.Logger.Info("search cache disabled")
		return NopCache{}
	}

	client := redis.NewClient(&redis.Options{Addr: p.Config.RedisAddress})
	c := NewRedisSearchCache(client, p.Config.SearchCacheTTL)
	logger := p.Logger.Named("cache")

	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := c.Ping(ctx); err != nil {
				logger.Warn("redis unavailable, searches will bypass the cache", zap.String("addr", p.Config.RedisAddress), zap.Error(err))
			}
			return nil
		},
		OnStop: func(context.Context) error {
			return c.Close()
		},
	})
	return c
}
