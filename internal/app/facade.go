package app

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/fx"

	"github.com/polkiloo/foodmarket/internal/domain/model"
	"github.com/polkiloo/foodmarket/internal/domain/repository"
	"github.com/polkiloo/foodmarket/internal/usecase"
)

type facadeParams struct {
	fx.In

	Auth        *usecase.AuthUseCase
	Restaurants *usecase.RestaurantUseCase
	Menu        *usecase.MenuUseCase
	Purchases   *usecase.PurchaseUseCase
	Search      *usecase.SearchUseCase
	Events      *usecase.EventUseCase
	Health      repository.HealthChecker
}

// MarketFacade exposes use cases to the HTTP layer and the event worker.
type MarketFacade struct {
	auth        *usecase.AuthUseCase
	restaurants *usecase.RestaurantUseCase
	menu        *usecase.MenuUseCase
	purchases   *usecase.PurchaseUseCase
	search      *usecase.SearchUseCase
	events      *usecase.EventUseCase
	health      repository.HealthChecker
}

func NewMarketFacade(p facadeParams) *MarketFacade {
	return &MarketFacade{
		auth:        p.Auth,
		restaurants: p.Restaurants,
		menu:        p.Menu,
		purchases:   p.Purchases,
		search:      p.Search,
		events:      p.Events,
		health:      p.Health,
	}
}

func (f *MarketFacade) Register(ctx context.Context, login, password string, email *string) (string, error) {
	_, token, err := f.auth.Register(ctx, login, password, email)
	return token, err
}

func (f *MarketFacade) Authenticate(ctx context.Context, login, password string) (string, error) {
	_, token, err := f.auth.Authenticate(ctx, login, password)
	return token, err
}

func (f *MarketFacade) ParseToken(token string) (int64, error) {
	return f.auth.ParseToken(token)
}

func (f *MarketFacade) Profile(ctx context.Context, userID int64) (*model.User, error) {
	return f.auth.GetByID(ctx, userID)
}

func (f *MarketFacade) Deposit(ctx context.Context, userID, amount int64) (int64, error) {
	return f.auth.Deposit(ctx, userID, amount)
}

func (f *MarketFacade) Purchases(ctx context.Context, userID int64) ([]model.Purchase, error) {
	return f.purchases.History(ctx, userID)
}

func (f *MarketFacade) CreateRestaurant(ctx context.Context, ownerID int64, name, openingHours string) (*model.Restaurant, error) {
	return f.restaurants.Create(ctx, ownerID, name, openingHours)
}

func (f *MarketFacade) Restaurant(ctx context.Context, id int64) (*model.RestaurantDetails, error) {
	return f.restaurants.Get(ctx, id)
}

func (f *MarketFacade) UpdateRestaurant(ctx context.Context, userID, id int64, update model.RestaurantUpdate) (*model.Restaurant, error) {
	return f.restaurants.Update(ctx, userID, id, update)
}

func (f *MarketFacade) DeleteRestaurant(ctx context.Context, userID, id int64) error {
	return f.restaurants.Delete(ctx, userID, id)
}

func (f *MarketFacade) OwnedRestaurants(ctx context.Context, userID int64) ([]model.Restaurant, error) {
	return f.restaurants.ListByOwner(ctx, userID)
}

func (f *MarketFacade) SearchRestaurants(ctx context.Context, query model.SearchQuery, openNow bool) (*model.SearchResult, error) {
	return f.search.Search(ctx, query, openNow)
}

func (f *MarketFacade) Menu(ctx context.Context, restaurantID int64) ([]model.MenuItem, error) {
	return f.menu.List(ctx, restaurantID)
}

func (f *MarketFacade) AddMenuItem(ctx context.Context, userID, restaurantID int64, dish string, price int64) (*model.MenuItem, error) {
	return f.menu.Add(ctx, userID, restaurantID, dish, price)
}

func (f *MarketFacade) UpdateMenuItem(ctx context.Context, userID, restaurantID, itemID int64, update model.MenuItemUpdate) (*model.MenuItem, error) {
	return f.menu.Update(ctx, userID, restaurantID, itemID, update)
}

func (f *MarketFacade) DeleteMenuItem(ctx context.Context, userID, restaurantID, itemID int64) error {
	return f.menu.Delete(ctx, userID, restaurantID, itemID)
}

func (f *MarketFacade) Purchase(ctx context.Context, userID int64, lines []model.PurchaseLine) (*model.Receipt, error) {
	return f.purchases.Purchase(ctx, userID, lines)
}

func (f *MarketFacade) ReceiptQR(ctx context.Context, userID int64, receiptID uuid.UUID) ([]byte, error) {
	return f.purchases.ReceiptQR(ctx, userID, receiptID)
}

func (f *MarketFacade) HealthCheck(ctx context.Context) error {
	return f.health.HealthCheck(ctx)
}

func (f *MarketFacade) PendingEvents(ctx context.Context, limit int) ([]model.PurchaseEvent, error) {
	return f.events.Pending(ctx, limit)
}

func (f *MarketFacade) PublishEvent(ctx context.Context, event model.PurchaseEvent) error {
	return f.events.Publish(ctx, event)
}

func (f *MarketFacade) AcknowledgeEvent(ctx context.Context, id int64) error {
	return f.events.Acknowledge(ctx, id)
}
