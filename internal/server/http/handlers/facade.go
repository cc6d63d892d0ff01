package handlers

import (
	"context"

	"github.com/google/uuid"

	"github.com/polkiloo/foodmarket/internal/domain/model"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, login, password string, email *string) (string, error)
	Authenticate(ctx context.Context, login, password string) (string, error)
	ParseToken(token string) (int64, error)
}

// UserFacade covers the caller's own account.
type UserFacade interface {
	Profile(ctx context.Context, userID int64) (*model.User, error)
	Deposit(ctx context.Context, userID, amount int64) (int64, error)
	Purchases(ctx context.Context, userID int64) ([]model.Purchase, error)
}

// RestaurantFacade encapsulates restaurant operations exposed via HTTP.
type RestaurantFacade interface {
	CreateRestaurant(ctx context.Context, ownerID int64, name, openingHours string) (*model.Restaurant, error)
	Restaurant(ctx context.Context, id int64) (*model.RestaurantDetails, error)
	UpdateRestaurant(ctx context.Context, userID, id int64, update model.RestaurantUpdate) (*model.Restaurant, error)
	DeleteRestaurant(ctx context.Context, userID, id int64) error
	OwnedRestaurants(ctx context.Context, userID int64) ([]model.Restaurant, error)
	SearchRestaurants(ctx context.Context, query model.SearchQuery, openNow bool) (*model.SearchResult, error)
}

// MenuFacade encapsulates menu operations.
type MenuFacade interface {
	Menu(ctx context.Context, restaurantID int64) ([]model.MenuItem, error)
	AddMenuItem(ctx context.Context, userID, restaurantID int64, dish string, price int64) (*model.MenuItem, error)
	UpdateMenuItem(ctx context.Context, userID, restaurantID, itemID int64, update model.MenuItemUpdate) (*model.MenuItem, error)
	DeleteMenuItem(ctx context.Context, userID, restaurantID, itemID int64) error
}

// PurchaseFacade provides purchase related operations.
type PurchaseFacade interface {
	Purchase(ctx context.Context, userID int64, lines []model.PurchaseLine) (*model.Receipt, error)
	ReceiptQR(ctx context.Context, userID int64, receiptID uuid.UUID) ([]byte, error)
}

// HealthFacade reports backend availability.
type HealthFacade interface {
	HealthCheck(ctx context.Context) error
}

// MarketFacade aggregates the full set of operations used across handlers.
type MarketFacade interface {
	AuthFacade
	UserFacade
	RestaurantFacade
	MenuFacade
	PurchaseFacade
	HealthFacade
}
