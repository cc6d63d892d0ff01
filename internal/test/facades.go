package test

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/polkiloo/foodmarket/internal/domain/model"
)

// UserFacadeStub provides controllable behaviour for account endpoints.
type UserFacadeStub struct {
	ProfileFn   func(context.Context, int64) (*model.User, error)
	DepositFn   func(context.Context, int64, int64) (int64, error)
	PurchasesFn func(context.Context, int64) ([]model.Purchase, error)
}

// Profile returns a default user unless overridden.
func (s UserFacadeStub) Profile(ctx context.Context, userID int64) (*model.User, error) {
	if s.ProfileFn != nil {
		return s.ProfileFn(ctx, userID)
	}
	return &model.User{ID: userID, Login: "user", Balance: 100}, nil
}

// Deposit echoes the amount as the new balance unless overridden.
func (s UserFacadeStub) Deposit(ctx context.Context, userID, amount int64) (int64, error) {
	if s.DepositFn != nil {
		return s.DepositFn(ctx, userID, amount)
	}
	return amount, nil
}

// Purchases returns predefined history for given user.
func (s UserFacadeStub) Purchases(ctx context.Context, userID int64) ([]model.Purchase, error) {
	if s.PurchasesFn != nil {
		return s.PurchasesFn(ctx, userID)
	}
	return []model.Purchase{{ID: 1, UserID: userID, Dish: "Soup", Price: 100, PurchasedAt: time.Unix(0, 0)}}, nil
}

// RestaurantFacadeStub simulates restaurant operations.
type RestaurantFacadeStub struct {
	CreateRestaurantFn func(context.Context, int64, string, string) (*model.Restaurant, error)
	RestaurantFn       func(context.Context, int64) (*model.RestaurantDetails, error)
	UpdateRestaurantFn func(context.Context, int64, int64, model.RestaurantUpdate) (*model.Restaurant, error)
	DeleteRestaurantFn func(context.Context, int64, int64) error
	OwnedFn            func(context.Context, int64) ([]model.Restaurant, error)
	SearchFn           func(context.Context, model.SearchQuery, bool) (*model.SearchResult, error)
}

// CreateRestaurant returns the created restaurant unless overridden.
func (s RestaurantFacadeStub) CreateRestaurant(ctx context.Context, ownerID int64, name, openingHours string) (*model.Restaurant, error) {
	if s.CreateRestaurantFn != nil {
		return s.CreateRestaurantFn(ctx, ownerID, name, openingHours)
	}
	return &model.Restaurant{ID: 1, OwnerID: ownerID, Name: name, OpeningHours: openingHours}, nil
}

// Restaurant returns a restaurant without menu unless overridden.
func (s RestaurantFacadeStub) Restaurant(ctx context.Context, id int64) (*model.RestaurantDetails, error) {
	if s.RestaurantFn != nil {
		return s.RestaurantFn(ctx, id)
	}
	return &model.RestaurantDetails{Restaurant: model.Restaurant{ID: id, Name: "Diner"}}, nil
}

// UpdateRestaurant returns the updated restaurant unless overridden.
func (s RestaurantFacadeStub) UpdateRestaurant(ctx context.Context, userID, id int64, update model.RestaurantUpdate) (*model.Restaurant, error) {
	if s.UpdateRestaurantFn != nil {
		return s.UpdateRestaurantFn(ctx, userID, id, update)
	}
	rest := &model.Restaurant{ID: id, OwnerID: userID, Name: "Diner"}
	if update.Name != nil {
		rest.Name = *update.Name
	}
	if update.OpeningHours != nil {
		rest.OpeningHours = *update.OpeningHours
	}
	return rest, nil
}

// DeleteRestaurant executes configured handler.
func (s RestaurantFacadeStub) DeleteRestaurant(ctx context.Context, userID, id int64) error {
	if s.DeleteRestaurantFn != nil {
		return s.DeleteRestaurantFn(ctx, userID, id)
	}
	return nil
}

// OwnedRestaurants returns no restaurants unless overridden.
func (s RestaurantFacadeStub) OwnedRestaurants(ctx context.Context, userID int64) ([]model.Restaurant, error) {
	if s.OwnedFn != nil {
		return s.OwnedFn(ctx, userID)
	}
	return nil, nil
}

// SearchRestaurants returns an empty page unless overridden.
func (s RestaurantFacadeStub) SearchRestaurants(ctx context.Context, query model.SearchQuery, openNow bool) (*model.SearchResult, error) {
	if s.SearchFn != nil {
		return s.SearchFn(ctx, query, openNow)
	}
	return &model.SearchResult{Page: query.Page, PageSize: query.PageSize}, nil
}

// MenuFacadeStub simulates menu operations.
type MenuFacadeStub struct {
	MenuFn   func(context.Context, int64) ([]model.MenuItem, error)
	AddFn    func(context.Context, int64, int64, string, int64) (*model.MenuItem, error)
	UpdateFn func(context.Context, int64, int64, int64, model.MenuItemUpdate) (*model.MenuItem, error)
	DeleteFn func(context.Context, int64, int64, int64) error
}

// Menu returns a single dish unless overridden.
func (s MenuFacadeStub) Menu(ctx context.Context, restaurantID int64) ([]model.MenuItem, error) {
	if s.MenuFn != nil {
		return s.MenuFn(ctx, restaurantID)
	}
	return []model.MenuItem{{ID: 1, RestaurantID: restaurantID, Dish: "Soup", Price: 100}}, nil
}

// AddMenuItem returns the created item unless overridden.
func (s MenuFacadeStub) AddMenuItem(ctx context.Context, userID, restaurantID int64, dish string, price int64) (*model.MenuItem, error) {
	if s.AddFn != nil {
		return s.AddFn(ctx, userID, restaurantID, dish, price)
	}
	return &model.MenuItem{ID: 1, RestaurantID: restaurantID, Dish: dish, Price: price}, nil
}

// UpdateMenuItem returns the updated item unless overridden.
func (s MenuFacadeStub) UpdateMenuItem(ctx context.Context, userID, restaurantID, itemID int64, update model.MenuItemUpdate) (*model.MenuItem, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, userID, restaurantID, itemID, update)
	}
	item := &model.MenuItem{ID: itemID, RestaurantID: restaurantID, Dish: "Soup", Price: 100}
	if update.Dish != nil {
		item.Dish = *update.Dish
	}
	if update.Price != nil {
		item.Price = *update.Price
	}
	return item, nil
}

// DeleteMenuItem executes configured handler.
func (s MenuFacadeStub) DeleteMenuItem(ctx context.Context, userID, restaurantID, itemID int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, userID, restaurantID, itemID)
	}
	return nil
}

// PurchaseFacadeStub simulates purchases.
type PurchaseFacadeStub struct {
	PurchaseFn  func(context.Context, int64, []model.PurchaseLine) (*model.Receipt, error)
	ReceiptQRFn func(context.Context, int64, uuid.UUID) ([]byte, error)
}

// Purchase returns an empty receipt unless overridden.
func (s PurchaseFacadeStub) Purchase(ctx context.Context, userID int64, lines []model.PurchaseLine) (*model.Receipt, error) {
	if s.PurchaseFn != nil {
		return s.PurchaseFn(ctx, userID, lines)
	}
	return &model.Receipt{ID: uuid.Nil, UserID: userID, CreatedAt: time.Unix(0, 0)}, nil
}

// ReceiptQR returns a fake image unless overridden.
func (s PurchaseFacadeStub) ReceiptQR(ctx context.Context, userID int64, receiptID uuid.UUID) ([]byte, error) {
	if s.ReceiptQRFn != nil {
		return s.ReceiptQRFn(ctx, userID, receiptID)
	}
	return []byte("png"), nil
}

// HealthFacadeStub reports the configured health error.
type HealthFacadeStub struct {
	HealthErr error
}

// HealthCheck returns HealthErr.
func (s HealthFacadeStub) HealthCheck(context.Context) error {
	return s.HealthErr
}

// EventFacadeStub mimics worker interactions with the market facade.
type EventFacadeStub struct {
	Batches       [][]model.PurchaseEvent
	PendingFn     func(context.Context, int) ([]model.PurchaseEvent, error)
	PublishFn     func(context.Context, model.PurchaseEvent) error
	AcknowledgeFn func(context.Context, int64) error
	Acknowledged  []int64
	mu            sync.Mutex
	pendingCalls  int32
}

// Lock exposes internal mutex for external synchronization.
func (s *EventFacadeStub) Lock() { s.mu.Lock() }

// Unlock releases previously acquired lock.
func (s *EventFacadeStub) Unlock() { s.mu.Unlock() }

// PendingEvents returns batches from configured queue.
func (s *EventFacadeStub) PendingEvents(ctx context.Context, limit int) ([]model.PurchaseEvent, error) {
	if s.PendingFn != nil {
		return s.PendingFn(ctx, limit)
	}
	call := atomic.AddInt32(&s.pendingCalls, 1)
	if int(call) <= len(s.Batches) {
		return s.Batches[call-1], nil
	}
	return nil, nil
}

// PublishEvent succeeds unless overridden.
func (s *EventFacadeStub) PublishEvent(ctx context.Context, event model.PurchaseEvent) error {
	if s.PublishFn != nil {
		return s.PublishFn(ctx, event)
	}
	return nil
}

// AcknowledgeEvent records acknowledged ids.
func (s *EventFacadeStub) AcknowledgeEvent(ctx context.Context, id int64) error {
	if s.AcknowledgeFn != nil {
		return s.AcknowledgeFn(ctx, id)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Acknowledged = append(s.Acknowledged, id)
	return nil
}

// PendingCalls reports how many times PendingEvents ran.
func (s *EventFacadeStub) PendingCalls() int {
	return int(atomic.LoadInt32(&s.pendingCalls))
}
