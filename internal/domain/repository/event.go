package repository

import (
	"context"

	"github.com/polkiloo/foodmarket/internal/domain/model"
)

// EventRepository exposes the purchase event outbox.
type EventRepository interface {
	ClaimBatch(ctx context.Context, limit int) ([]model.PurchaseEvent, error)
	MarkPublished(ctx context.Context, id int64) error
}
