package test

import (
	"context"
	"fmt"
	"sync"

	"github.com/polkiloo/foodmarket/internal/domain/model"
)

// SearchCacheStub is an in-memory search cache with generation counting.
type SearchCacheStub struct {
	mu          sync.Mutex
	Pages       map[string]*model.SearchResult
	Generation  int64
	Gets        int
	Sets        int
	Invalidated int

	KeyErr        error
	GetErr        error
	SetErr        error
	InvalidateErr error
}

// NewSearchCacheStub constructs an empty cache.
func NewSearchCacheStub() *SearchCacheStub {
	return &SearchCacheStub{Pages: make(map[string]*model.SearchResult)}
}

// Key derives a readable key from the query and generation.
func (c *SearchCacheStub) Key(_ context.Context, query model.SearchQuery) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.KeyErr != nil {
		return "", c.KeyErr
	}
	return fmt.Sprintf("v%d:%s:%d:%d:%d", c.Generation, query.Text, query.Page, query.PageSize, query.MaxPrice), nil
}

// Get returns a stored page.
func (c *SearchCacheStub) Get(_ context.Context, key string) (*model.SearchResult, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Gets++
	if c.GetErr != nil {
		return nil, false, c.GetErr
	}
	page, ok := c.Pages[key]
	return page, ok, nil
}

// Set stores a page.
func (c *SearchCacheStub) Set(_ context.Context, key string, result *model.SearchResult) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Sets++
	if c.SetErr != nil {
		return c.SetErr
	}
	c.Pages[key] = result
	return nil
}

// Invalidate bumps the generation.
func (c *SearchCacheStub) Invalidate(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Invalidated++
	if c.InvalidateErr != nil {
		return c.InvalidateErr
	}
	c.Generation++
	return nil
}

// Stats returns get, set and invalidate counters.
func (c *SearchCacheStub) Stats() (gets, sets, invalidated int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.Gets, c.Sets, c.Invalidated
}

// PublisherStub records published events.
type PublisherStub struct {
	mu        sync.Mutex
	Events    []model.PurchaseEvent
	PublishFn func(context.Context, model.PurchaseEvent) error
}

// Publish records the event unless overridden.
func (p *PublisherStub) Publish(ctx context.Context, event model.PurchaseEvent) error {
	if p.PublishFn != nil {
		return p.PublishFn(ctx, event)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Events = append(p.Events, event)
	return nil
}

// RendererStub renders receipts through an override.
type RendererStub struct {
	RenderFn func(*model.Receipt) ([]byte, error)
}

// Render returns the receipt id bytes unless overridden.
func (r RendererStub) Render(receipt *model.Receipt) ([]byte, error) {
	if r.RenderFn != nil {
		return r.RenderFn(receipt)
	}
	return []byte(receipt.ID.String()), nil
}
