package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/foodmarket/internal/adapter/events"
	"github.com/polkiloo/foodmarket/internal/app"
	"github.com/polkiloo/foodmarket/internal/config"
	"github.com/polkiloo/foodmarket/internal/logger"
	"github.com/polkiloo/foodmarket/internal/pkg/auth"
	"github.com/polkiloo/foodmarket/internal/pkg/receipt"
	"github.com/polkiloo/foodmarket/internal/server/http/router"
	"github.com/polkiloo/foodmarket/internal/storage/cache"
	"github.com/polkiloo/foodmarket/internal/storage/postgres"
	"github.com/polkiloo/foodmarket/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		receipt.Module,
		postgres.Module,
		cache.Module,
		events.Module,
		usecase.Module,
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
