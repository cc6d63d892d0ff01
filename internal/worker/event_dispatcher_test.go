package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/polkiloo/foodmarket/internal/domain/model"
	testhelpers "github.com/polkiloo/foodmarket/internal/test"
)

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.After(timeout)
	for !cond() {
		select {
		case <-deadline:
			t.Fatal("timeout waiting for condition")
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func acknowledged(facade *testhelpers.EventFacadeStub) []int64 {
	facade.Lock()
	defer facade.Unlock()
	return append([]int64(nil), facade.Acknowledged...)
}

func TestNewEventDispatcherDefaults(t *testing.T) {
	d := NewEventDispatcher(&testhelpers.EventFacadeStub{}, 0, 0, 0, zap.NewNop())
	if d.batchSize != 1 {
		t.Fatalf("expected batch size default to 1, got %d", d.batchSize)
	}
	if d.workers != 1 {
		t.Fatalf("expected workers default to 1, got %d", d.workers)
	}
	if d.pollInterval != time.Second {
		t.Fatalf("expected poll interval default to 1s, got %v", d.pollInterval)
	}
}

func TestEventDispatcherPublishesAndAcknowledges(t *testing.T) {
	facade := &testhelpers.EventFacadeStub{Batches: [][]model.PurchaseEvent{
		{{ID: 1, ReceiptID: uuid.New()}, {ID: 2, ReceiptID: uuid.New()}},
		{{ID: 3, ReceiptID: uuid.New()}},
	}}
	d := NewEventDispatcher(facade, 5*time.Millisecond, 2, 3, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	waitFor(t, time.Second, func() bool { return len(acknowledged(facade)) == 3 })
	d.Stop()

	seen := map[int64]bool{}
	for _, id := range acknowledged(facade) {
		seen[id] = true
	}
	if !seen[1] || !seen[2] || !seen[3] {
		t.Fatalf("expected every event acknowledged, got %v", acknowledged(facade))
	}
}

func TestEventDispatcherLeavesFailedEventsUnacknowledged(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	var published int32
	facade := &testhelpers.EventFacadeStub{
		Batches: [][]model.PurchaseEvent{{{ID: 1}, {ID: 2}}},
		PublishFn: func(_ context.Context, event model.PurchaseEvent) error {
			atomic.AddInt32(&published, 1)
			if event.ID == 1 {
				return errors.New("broker unavailable")
			}
			return nil
		},
	}
	d := NewEventDispatcher(facade, 5*time.Millisecond, 2, 1, zap.New(core))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	waitFor(t, time.Second, func() bool { return atomic.LoadInt32(&published) == 2 })
	waitFor(t, time.Second, func() bool { return len(acknowledged(facade)) == 1 })
	d.Stop()

	if ids := acknowledged(facade); ids[0] != 2 {
		t.Fatalf("expected only event 2 acknowledged, got %v", ids)
	}
	if logs.FilterMessage("publish event failed").Len() != 1 {
		t.Fatalf("expected publish failure to be logged, got %v", logs.All())
	}
}

func TestEventDispatcherLogsFetchAndAcknowledgeErrors(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	var calls int32
	facade := &testhelpers.EventFacadeStub{
		PendingFn: func(context.Context, int) ([]model.PurchaseEvent, error) {
			if atomic.AddInt32(&calls, 1) == 1 {
				return nil, errors.New("db down")
			}
			if atomic.LoadInt32(&calls) == 2 {
				return []model.PurchaseEvent{{ID: 7}}, nil
			}
			return nil, nil
		},
		AcknowledgeFn: func(context.Context, int64) error {
			return errors.New("update failed")
		},
	}
	d := NewEventDispatcher(facade, 5*time.Millisecond, 1, 1, zap.New(core))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	waitFor(t, time.Second, func() bool {
		return logs.FilterMessage("fetch pending events failed").Len() > 0 &&
			logs.FilterMessage("acknowledge event failed").Len() > 0
	})
	d.Stop()
}

func TestEventDispatcherStopsOnContextCancel(t *testing.T) {
	facade := &testhelpers.EventFacadeStub{}
	d := NewEventDispatcher(facade, time.Millisecond, 1, 2, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	d.Start(ctx)
	waitFor(t, time.Second, func() bool { return facade.PendingCalls() > 0 })
	cancel()

	done := make(chan struct{})
	go func() {
		d.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("dispatcher did not stop after context cancellation")
	}
}
