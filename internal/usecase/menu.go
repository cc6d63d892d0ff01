package usecase

import (
	"context"

	"go.uber.org/zap"

	domainErrors "github.com/polkiloo/foodmarket/internal/domain/errors"
	"github.com/polkiloo/foodmarket/internal/domain/model"
	"github.com/polkiloo/foodmarket/internal/domain/repository"
)

// MenuUseCase manages the dishes offered by a restaurant.
type MenuUseCase struct {
	restaurants repository.RestaurantRepository
	menu        repository.MenuRepository
	cache       repository.SearchCache
	logger      *zap.Logger
}

// NewMenuUseCase constructs MenuUseCase.
func NewMenuUseCase(restaurants repository.RestaurantRepository, menu repository.MenuRepository, cache repository.SearchCache, logger *zap.Logger) *MenuUseCase {
	return &MenuUseCase{restaurants: restaurants, menu: menu, cache: cache, logger: logger.Named("menu")}
}

// Add puts a new dish on an owned restaurant's menu.
func (u *MenuUseCase) Add(ctx context.Context, userID, restaurantID int64, dish string, price int64) (*model.MenuItem, error) {
	dish, err := normalizeName(dish)
	if err != nil {
		return nil, err
	}
	if price <= 0 {
		return nil, domainErrors.ErrInvalidPrice
	}
	if _, err := ownedRestaurant(ctx, u.restaurants, userID, restaurantID); err != nil {
		return nil, err
	}

	item, err := u.menu.Create(ctx, restaurantID, dish, price)
	if err != nil {
		return nil, err
	}
	invalidateSearch(ctx, u.cache, u.logger)
	return item, nil
}

// List returns the menu of an existing restaurant.
func (u *MenuUseCase) List(ctx context.Context, restaurantID int64) ([]model.MenuItem, error) {
	if _, err := u.restaurants.GetByID(ctx, restaurantID); err != nil {
		return nil, err
	}
	return u.menu.ListByRestaurant(ctx, restaurantID)
}

// Update changes dish name and/or price of a menu item.
func (u *MenuUseCase) Update(ctx context.Context, userID, restaurantID, itemID int64, update model.MenuItemUpdate) (*model.MenuItem, error) {
	if update.Dish != nil {
		dish, err := normalizeName(*update.Dish)
		if err != nil {
			return nil, err
		}
		update.Dish = &dish
	}
	if update.Price != nil && *update.Price <= 0 {
		return nil, domainErrors.ErrInvalidPrice
	}

	item, err := u.ownedItem(ctx, userID, restaurantID, itemID)
	if err != nil {
		return nil, err
	}
	if update.Dish == nil && update.Price == nil {
		return item, nil
	}

	updated, err := u.menu.Update(ctx, itemID, update)
	if err != nil {
		return nil, err
	}
	invalidateSearch(ctx, u.cache, u.logger)
	return updated, nil
}

// Delete removes a menu item.
func (u *MenuUseCase) Delete(ctx context.Context, userID, restaurantID, itemID int64) error {
	if _, err := u.ownedItem(ctx, userID, restaurantID, itemID); err != nil {
		return err
	}
	if err := u.menu.Delete(ctx, itemID); err != nil {
		return err
	}
	invalidateSearch(ctx, u.cache, u.logger)
	return nil
}

// ownedItem resolves an item of restaurantID owned by userID. An item of another
// restaurant is reported as missing.
func (u *MenuUseCase) ownedItem(ctx context.Context, userID, restaurantID, itemID int64) (*model.MenuItem, error) {
	if _, err := ownedRestaurant(ctx, u.restaurants, userID, restaurantID); err != nil {
		return nil, err
	}
	item, err := u.menu.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item.RestaurantID != restaurantID {
		return nil, domainErrors.ErrNotFound
	}
	return item, nil
}
