package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/polkiloo/foodmarket/internal/domain/model"
)

// PurchaseRepository settles purchases and reads purchase history.
type PurchaseRepository interface {
	// Purchase settles the lines for the buyer atomically and records a purchase event.
	Purchase(ctx context.Context, userID int64, receiptID uuid.UUID, lines []model.PurchaseLine) (*model.Receipt, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Purchase, error)
	GetReceipt(ctx context.Context, userID int64, receiptID uuid.UUID) (*model.Receipt, error)
}
