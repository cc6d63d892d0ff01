package usecase

import (
	"context"
	"strings"

	"go.uber.org/zap"

	domainErrors "github.com/polkiloo/foodmarket/internal/domain/errors"
	"github.com/polkiloo/foodmarket/internal/domain/model"
	"github.com/polkiloo/foodmarket/internal/domain/repository"
)

// RestaurantUseCase manages restaurants on behalf of their owners.
type RestaurantUseCase struct {
	restaurants repository.RestaurantRepository
	menu        repository.MenuRepository
	cache       repository.SearchCache
	logger      *zap.Logger
}

// NewRestaurantUseCase constructs RestaurantUseCase.
func NewRestaurantUseCase(restaurants repository.RestaurantRepository, menu repository.MenuRepository, cache repository.SearchCache, logger *zap.Logger) *RestaurantUseCase {
	return &RestaurantUseCase{restaurants: restaurants, menu: menu, cache: cache, logger: logger.Named("restaurants")}
}

// Create registers a restaurant owned by ownerID.
func (u *RestaurantUseCase) Create(ctx context.Context, ownerID int64, name, openingHours string) (*model.Restaurant, error) {
	name, err := normalizeName(name)
	if err != nil {
		return nil, err
	}
	openingHours = strings.TrimSpace(openingHours)
	if err := model.ValidateOpeningHours(openingHours); err != nil {
		return nil, err
	}

	rest, err := u.restaurants.Create(ctx, ownerID, name, openingHours)
	if err != nil {
		return nil, err
	}
	invalidateSearch(ctx, u.cache, u.logger)
	return rest, nil
}

// Get returns the restaurant together with its menu.
func (u *RestaurantUseCase) Get(ctx context.Context, id int64) (*model.RestaurantDetails, error) {
	rest, err := u.restaurants.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	menu, err := u.menu.ListByRestaurant(ctx, id)
	if err != nil {
		return nil, err
	}
	return &model.RestaurantDetails{Restaurant: *rest, Menu: menu}, nil
}

// Update changes name and/or opening hours of an owned restaurant.
func (u *RestaurantUseCase) Update(ctx context.Context, userID, id int64, update model.RestaurantUpdate) (*model.Restaurant, error) {
	if update.Name != nil {
		name, err := normalizeName(*update.Name)
		if err != nil {
			return nil, err
		}
		update.Name = &name
	}
	if update.OpeningHours != nil {
		hours := strings.TrimSpace(*update.OpeningHours)
		if err := model.ValidateOpeningHours(hours); err != nil {
			return nil, err
		}
		update.OpeningHours = &hours
	}

	rest, err := ownedRestaurant(ctx, u.restaurants, userID, id)
	if err != nil {
		return nil, err
	}
	if update.Name == nil && update.OpeningHours == nil {
		return rest, nil
	}

	updated, err := u.restaurants.Update(ctx, id, update)
	if err != nil {
		return nil, err
	}
	invalidateSearch(ctx, u.cache, u.logger)
	return updated, nil
}

// Delete removes an owned restaurant along with its menu.
func (u *RestaurantUseCase) Delete(ctx context.Context, userID, id int64) error {
	if _, err := ownedRestaurant(ctx, u.restaurants, userID, id); err != nil {
		return err
	}
	if err := u.restaurants.Delete(ctx, id); err != nil {
		return err
	}
	invalidateSearch(ctx, u.cache, u.logger)
	return nil
}

// ListByOwner returns the restaurants owned by ownerID.
func (u *RestaurantUseCase) ListByOwner(ctx context.Context, ownerID int64) ([]model.Restaurant, error) {
	return u.restaurants.ListByOwner(ctx, ownerID)
}

func ownedRestaurant(ctx context.Context, restaurants repository.RestaurantRepository, userID, id int64) (*model.Restaurant, error) {
	rest, err := restaurants.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rest.OwnerID != userID {
		return nil, domainErrors.ErrForbidden
	}
	return rest, nil
}

func normalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", domainErrors.ErrInvalidName
	}
	return name, nil
}

// invalidateSearch drops cached search pages and logs failures.
func invalidateSearch(ctx context.Context, cache repository.SearchCache, logger *zap.Logger) {
	if err := cache.Invalidate(ctx); err != nil {
		logger.Warn("search cache invalidation failed", zap.Error(err))
	}
}
