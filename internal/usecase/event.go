package usecase

import (
	"context"

	"github.com/polkiloo/foodmarket/internal/adapter/events"
	"github.com/polkiloo/foodmarket/internal/domain/model"
	"github.com/polkiloo/foodmarket/internal/domain/repository"
)

// EventUseCase drains the purchase event outbox.
type EventUseCase struct {
	events    repository.EventRepository
	publisher events.Publisher
}

// NewEventUseCase constructs EventUseCase.
func NewEventUseCase(repo repository.EventRepository, publisher events.Publisher) *EventUseCase {
	return &EventUseCase{events: repo, publisher: publisher}
}

// Pending claims up to limit unpublished events.
func (u *EventUseCase) Pending(ctx context.Context, limit int) ([]model.PurchaseEvent, error) {
	return u.events.ClaimBatch(ctx, limit)
}

// Publish sends the event to the broker.
func (u *EventUseCase) Publish(ctx context.Context, event model.PurchaseEvent) error {
	return u.publisher.Publish(ctx, event)
}

// Acknowledge marks the event as published.
func (u *EventUseCase) Acknowledge(ctx context.Context, id int64) error {
	return u.events.MarkPublished(ctx, id)
}
