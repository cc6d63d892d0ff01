package repository

import (
	"context"

	"github.com/polkiloo/foodmarket/internal/domain/model"
)

// RestaurantRepository describes persistence operations for restaurants.
type RestaurantRepository interface {
	Create(ctx context.Context, ownerID int64, name, openingHours string) (*model.Restaurant, error)
	GetByID(ctx context.Context, id int64) (*model.Restaurant, error)
	Update(ctx context.Context, id int64, update model.RestaurantUpdate) (*model.Restaurant, error)
	Delete(ctx context.Context, id int64) error
	ListByOwner(ctx context.Context, ownerID int64) ([]model.Restaurant, error)
	SearchCandidates(ctx context.Context) ([]model.SearchCandidate, error)
}
