package repository

import (
	"context"

	"github.com/polkiloo/foodmarket/internal/domain/model"
)

// SearchCache stores rendered search pages.
type SearchCache interface {
	// Key resolves the cache key of a query under the current generation.
	Key(ctx context.Context, query model.SearchQuery) (string, error)
	Get(ctx context.Context, key string) (*model.SearchResult, bool, error)
	Set(ctx context.Context, key string, result *model.SearchResult) error
	// Invalidate makes every stored page unreachable.
	Invalidate(ctx context.Context) error
}
