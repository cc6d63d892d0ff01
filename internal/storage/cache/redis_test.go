package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap"

	"github.com/polkiloo/foodmarket/internal/config"
	"github.com/polkiloo/foodmarket/internal/domain/model"
)

func newTestCache(t *testing.T) (*RedisSearchCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisSearchCache(client, time.Minute), mr
}

func TestRedisSearchCacheRoundTrip(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()
	query := model.SearchQuery{Text: "Pizza", Page: 1, PageSize: 10}

	key, err := c.Key(ctx, query)
	require.NoError(t, err)
	assert.Contains(t, key, "search:v0:")

	_, hit, err := c.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, hit)

	page := &model.SearchResult{
		Items:    []model.ScoredRestaurant{{Restaurant: model.Restaurant{ID: 1, Name: "Pizza Place"}, Score: 1}},
		Total:    1,
		Page:     1,
		PageSize: 10,
	}
	require.NoError(t, c.Set(ctx, key, page))
	assert.Equal(t, time.Minute, mr.TTL(key))

	cached, hit, err := c.Get(ctx, key)
	require.NoError(t, err)
	require.True(t, hit)
	assert.Equal(t, "Pizza Place", cached.Items[0].Restaurant.Name)
	assert.Equal(t, 1, cached.Total)
}

func TestRedisSearchCacheKeyNormalizesText(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	a, err := c.Key(ctx, model.SearchQuery{Text: "  Sushi ", Page: 1, PageSize: 10})
	require.NoError(t, err)
	b, err := c.Key(ctx, model.SearchQuery{Text: "sushi", Page: 1, PageSize: 10})
	require.NoError(t, err)
	other, err := c.Key(ctx, model.SearchQuery{Text: "sushi", Page: 2, PageSize: 10})
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, other)
}

func TestRedisSearchCacheInvalidate(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()
	query := model.SearchQuery{Text: "ramen", Page: 1, PageSize: 10}

	before, err := c.Key(ctx, query)
	require.NoError(t, err)
	require.NoError(t, c.Set(ctx, before, &model.SearchResult{Total: 3}))

	require.NoError(t, c.Invalidate(ctx))

	after, err := c.Key(ctx, query)
	require.NoError(t, err)
	assert.NotEqual(t, before, after)
	assert.Contains(t, after, "search:v1:")

	_, hit, err := c.Get(ctx, after)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestRedisSearchCacheErrors(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	mr.Set("search:broken", "not-json")
	_, _, err := c.Get(ctx, "search:broken")
	assert.Error(t, err)

	mr.Close()
	_, err = c.Key(ctx, model.SearchQuery{Text: "x"})
	assert.Error(t, err)
	_, _, err = c.Get(ctx, "search:v0:abc")
	assert.Error(t, err)
	assert.Error(t, c.Invalidate(ctx))
	assert.Error(t, c.Ping(ctx))
}

func TestNopCache(t *testing.T) {
	var c NopCache
	ctx := context.Background()

	key, err := c.Key(ctx, model.SearchQuery{})
	require.NoError(t, err)
	require.NoError(t, c.Set(ctx, key, &model.SearchResult{}))
	_, hit, err := c.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.NoError(t, c.Invalidate(ctx))

	pizza, err := c.Key(ctx, model.SearchQuery{Text: "pizza", Page: 1, PageSize: 10})
	require.NoError(t, err)
	sushi, err := c.Key(ctx, model.SearchQuery{Text: "sushi", Page: 1, PageSize: 1})
	require.NoError(t, err)
	same, err := c.Key(ctx, model.SearchQuery{Text: "  PIZZA ", Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.NotEmpty(t, pizza)
	assert.NotEqual(t, pizza, sushi)
	assert.Equal(t, pizza, same)
}

func TestNewSearchCache(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	c := newSearchCache(cacheParams{Lifecycle: lc, Config: &config.Config{}, Logger: zap.NewNop()})
	assert.IsType(t, NopCache{}, c)

	mr := miniredis.RunT(t)
	lc = fxtest.NewLifecycle(t)
	c = newSearchCache(cacheParams{
		Lifecycle: lc,
		Config:    &config.Config{RedisAddress: mr.Addr(), SearchCacheTTL: time.Second},
		Logger:    zap.NewNop(),
	})
	redisCache, ok := c.(*RedisSearchCache)
	require.True(t, ok)
	assert.Equal(t, time.Second, redisCache.TTL)

	lc.RequireStart()
	lc.RequireStop()
}
