package repository

import (
	"context"

	"github.com/polkiloo/foodmarket/internal/domain/model"
)

// UserRepository describes persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, login, passwordHash string, email *string, initialBalance int64) (*model.User, error)
	GetByLogin(ctx context.Context, login string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	Deposit(ctx context.Context, id int64, amount int64) (int64, error)
}
