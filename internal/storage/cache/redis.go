package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/redis/go-redis/v9"

	"github.com/polkiloo/foodmarket/internal/domain/model"
)

const generationKey = "search:generation"

// RedisSearchCache keeps search pages in Redis under a generation prefix.
type RedisSearchCache struct {
	Client *redis.Client
	TTL    time.Duration
}

// NewRedisSearchCache wraps a connected client.
func NewRedisSearchCache(client *redis.Client, ttl time.Duration) *RedisSearchCache {
	return &RedisSearchCache{Client: client, TTL: ttl}
}

func (c *RedisSearchCache) Key(ctx context.Context, query model.SearchQuery) (string, error) {
	generation, err := c.Client.Get(ctx, generationKey).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return "", fmt.Errorf("read search generation: %w", err)
	}
	return "search:v" + strconv.FormatInt(generation, 10) + ":" + queryHash(query), nil
}

func (c *RedisSearchCache) Get(ctx context.Context, key string) (*model.SearchResult, bool, error) {
	raw, err := c.Client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var result model.SearchResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, false, fmt.Errorf("decode cached page: %w", err)
	}
	return &result, true, nil
}

func (c *RedisSearchCache) Set(ctx context.Context, key string, result *model.SearchResult) error {
	raw, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, key, raw, c.TTL).Err()
}

func (c *RedisSearchCache) Invalidate(ctx context.Context) error {
	return c.Client.Incr(ctx, generationKey).Err()
}

// Ping verifies the connection.
func (c *RedisSearchCache) Ping(ctx context.Context) error {
	return c.Client.Ping(ctx).Err()
}

// Close releases the client.
func (c *RedisSearchCache) Close() error {
	return c.Client.Close()
}

func queryHash(q model.SearchQuery) string {
	var b strings.Builder
	b.WriteString(strings.ToLower(strings.TrimSpace(q.Text)))
	b.WriteByte('|')
	b.WriteString(strconv.Itoa(q.Page))
	b.WriteByte('|')
	b.WriteString(strconv.Itoa(q.PageSize))
	b.WriteByte('|')
	b.WriteString(strconv.FormatInt(q.MaxPrice, 10))
	return strconv.FormatUint(xxhash.Sum64String(b.String()), 16)
}

// NopCache never stores anything. Its keys still identify the query so
// concurrent identical searches can share one computation.
type NopCache struct{}

func (NopCache) Key(_ context.Context, query model.SearchQuery) (string, error) {
	return "search:nop:" + queryHash(query), nil
}
func (NopCache) Get(context.Context, string) (*model.SearchResult, bool, error) {
	return nil, false, nil
}
func (NopCache) Set(context.Context, string, *model.SearchResult) error { return nil }
func (NopCache) Invalidate(context.Context) error                        { return nil }
