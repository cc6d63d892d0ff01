package repository

import (
	"context"

	"github.com/polkiloo/foodmarket/internal/domain/model"
)

// MenuRepository describes persistence operations for menu items.
type MenuRepository interface {
	Create(ctx context.Context, restaurantID int64, dish string, price int64) (*model.MenuItem, error)
	GetByID(ctx context.Context, id int64) (*model.MenuItem, error)
	Update(ctx context.Context, id int64, update model.MenuItemUpdate) (*model.MenuItem, error)
	Delete(ctx context.Context, id int64) error
	ListByRestaurant(ctx context.Context, restaurantID int64) ([]model.MenuItem, error)
}
