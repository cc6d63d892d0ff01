package worker

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/polkiloo/foodmarket/internal/domain/model"
)

// MarketFacade exposes the subset of application functionality required by the worker.
type MarketFacade interface {
	PendingEvents(ctx context.Context, limit int) ([]model.PurchaseEvent, error)
	PublishEvent(ctx context.Context, event model.PurchaseEvent) error
	AcknowledgeEvent(ctx context.Context, id int64) error
}

// EventDispatcher drains the purchase event outbox with a pool of publishers.
type EventDispatcher struct {
	facade       MarketFacade
	pollInterval time.Duration
	batchSize    int
	workers      int
	logger       *zap.Logger

	jobs   chan model.PurchaseEvent
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewEventDispatcher constructs the dispatcher worker pool.
func NewEventDispatcher(facade MarketFacade, pollInterval time.Duration, batchSize, workers int, logger *zap.Logger) *EventDispatcher {
	if workers <= 0 {
		workers = 1
	}
	if batchSize <= 0 {
		batchSize = 1
	}
	if pollInterval <= 0 {
		pollInterval = time.Second
	}
	return &EventDispatcher{
		facade:       facade,
		pollInterval: pollInterval,
		batchSize:    batchSize,
		workers:      workers,
		logger:       logger,
		jobs:         make(chan model.PurchaseEvent, batchSize*workers),
	}
}

// Start launches background processing.
func (d *EventDispatcher) Start(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	d.cancel = cancel

	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.worker(runCtx)
	}

	d.wg.Add(1)
	go d.dispatch(runCtx)
}

// Stop waits for all workers to finish.
func (d *EventDispatcher) Stop() {
	d.mu.Lock()
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	d.mu.Unlock()

	d.wg.Wait()
}

func (d *EventDispatcher) dispatch(ctx context.Context) {
	defer d.wg.Done()
	defer close(d.jobs)
	ticker := time.NewTicker(d.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			d.fetchAndDispatch(ctx)
		}
	}
}

func (d *EventDispatcher) fetchAndDispatch(ctx context.Context) {
	events, err := d.facade.PendingEvents(ctx, d.batchSize)
	if err != nil {
		d.logger.Error("fetch pending events failed", zap.Error(err))
		return
	}
	for _, event := range events {
		select {
		case <-ctx.Done():
			return
		case d.jobs <- event:
		}
	}
}

func (d *EventDispatcher) worker(ctx context.Context) {
	defer d.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-d.jobs:
			if !ok {
				return
			}
			d.handleEvent(ctx, event)
		}
	}
}

// handleEvent publishes and acknowledges one event. A failed event stays
// claimed and is retried once its claim expires.
func (d *EventDispatcher) handleEvent(ctx context.Context, event model.PurchaseEvent) {
	if err := d.facade.PublishEvent(ctx, event); err != nil {
		d.logger.Error("publish event failed",
			zap.Int64("event_id", event.ID),
			zap.Stringer("receipt_id", event.ReceiptID),
			zap.Error(err),
		)
		return
	}
	if err := d.facade.AcknowledgeEvent(ctx, event.ID); err != nil {
		d.logger.Error("acknowledge event failed", zap.Int64("event_id", event.ID), zap.Error(err))
		return
	}
	d.logger.Debug("event published", zap.Int64("event_id", event.ID), zap.Stringer("receipt_id", event.ReceiptID))
}
