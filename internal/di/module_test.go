package di

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/polkiloo/foodmarket/internal/adapter/events"
	"github.com/polkiloo/foodmarket/internal/app"
	"github.com/polkiloo/foodmarket/internal/config"
	"github.com/polkiloo/foodmarket/internal/domain/repository"
	"github.com/polkiloo/foodmarket/internal/server/http/handlers"
	"github.com/polkiloo/foodmarket/internal/storage/cache"
	"github.com/polkiloo/foodmarket/internal/storage/postgres"
	"github.com/polkiloo/foodmarket/internal/test"
	"github.com/polkiloo/foodmarket/internal/worker"
)

type healthStub struct{}

func (healthStub) HealthCheck(context.Context) error { return nil }

func TestModuleComposesGraphWithReplacements(t *testing.T) {
	cfg := &config.Config{
		RunAddress:        ":0",
		DatabaseURI:       "postgres://stub",
		AuthSecret:        "secret",
		AuthStrategy:      "jwt",
		TokenTTL:          time.Hour,
		SearchPageSize:    10,
		SearchMaxPageSize: 100,
		EventPollInterval: time.Millisecond,
		EventBatchSize:    1,
		WorkerPoolSize:    1,
		ShutdownTimeout:   time.Millisecond,
	}
	menuRepo := test.NewMenuRepositoryStub()
	restaurantRepo := test.NewRestaurantRepositoryStub()
	restaurantRepo.Menu = menuRepo

	var (
		facade     *app.MarketFacade
		httpFacade handlers.MarketFacade
		engine     *gin.Engine
		server     *http.Server
		dispatcher *worker.EventDispatcher
		searchRepo repository.SearchCache
		publisher  events.Publisher
	)
	fxApp := fx.New(
		fx.Supply(context.Background()),
		Module(
			fx.Replace(cfg),
			fx.Replace(zap.NewNop()),
			fx.Replace(&postgres.Storage{}),
			fx.Replace(repository.UserRepository(test.NewUserRepositoryStub())),
			fx.Replace(repository.RestaurantRepository(restaurantRepo)),
			fx.Replace(repository.MenuRepository(menuRepo)),
			fx.Replace(repository.PurchaseRepository(test.PurchaseRepositoryStub{})),
			fx.Replace(repository.EventRepository(&test.EventRepositoryStub{})),
			fx.Replace(repository.HealthChecker(healthStub{})),
			fx.NopLogger,
		),
		fx.Populate(&facade, &httpFacade, &engine, &server, &dispatcher, &searchRepo, &publisher),
	)

	if err := fxApp.Err(); err != nil {
		t.Fatalf("fx app returned error: %v", err)
	}
	t.Cleanup(func() { _ = fxApp.Stop(context.Background()) })
	if facade == nil || httpFacade == nil {
		t.Fatal("expected market facade instance")
	}
	if engine == nil || server == nil || dispatcher == nil {
		t.Fatal("expected http server and event dispatcher")
	}
	if _, ok := searchRepo.(cache.NopCache); !ok {
		t.Fatalf("expected no-op search cache without redis, got %T", searchRepo)
	}
	if _, ok := publisher.(*events.LogPublisher); !ok {
		t.Fatalf("expected log publisher without kafka, got %T", publisher)
	}
}
