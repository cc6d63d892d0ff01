package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/polkiloo/foodmarket/internal/domain/model"
	testhelpers "github.com/polkiloo/foodmarket/internal/test"
)

func TestEventUseCase(t *testing.T) {
	repo := &testhelpers.EventRepositoryStub{Pending: []model.PurchaseEvent{
		{ID: 1, ReceiptID: uuid.New()},
		{ID: 2, ReceiptID: uuid.New()},
		{ID: 3, ReceiptID: uuid.New()},
	}}
	publisher := &testhelpers.PublisherStub{}
	uc := NewEventUseCase(repo, publisher)
	ctx := context.Background()

	batch, err := uc.Pending(ctx, 2)
	if err != nil {
		t.Fatalf("pending returned error: %v", err)
	}
	if len(batch) != 2 || batch[0].ID != 1 {
		t.Fatalf("unexpected batch %+v", batch)
	}

	for _, e := range batch {
		if err := uc.Publish(ctx, e); err != nil {
			t.Fatalf("publish returned error: %v", err)
		}
		if err := uc.Acknowledge(ctx, e.ID); err != nil {
			t.Fatalf("acknowledge returned error: %v", err)
		}
	}
	if len(publisher.Events) != 2 {
		t.Fatalf("expected two published events, got %d", len(publisher.Events))
	}
	if ids := repo.PublishedIDs(); len(ids) != 2 || ids[1] != 2 {
		t.Fatalf("unexpected acknowledged ids %v", ids)
	}

	rest, err := uc.Pending(ctx, 10)
	if err != nil || len(rest) != 1 || rest[0].ID != 3 {
		t.Fatalf("expected remaining event, got %+v %v", rest, err)
	}
}
