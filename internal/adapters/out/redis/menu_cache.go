// Package redis caches browse-menu pages in Redis.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"slices"
	"time"

	"pizzastore/internal/core/application/usecases/queries"

	goredis "github.com/redis/go-redis/v9"
)

const (
	keyPrefix = "menu:"
	scanBatch = 100
)

// MenuCache stores each page as a JSON array under "menu:<filter key>".
// It implements queries.MenuCache and commands.MenuCacheInvalidator.
type MenuCache struct {
	client *goredis.Client
	ttl    time.Duration
}

func NewMenuCache(client *goredis.Client, ttl time.Duration) *MenuCache {
	return &MenuCache{client: client, ttl: ttl}
}

func (c *MenuCache) Get(ctx context.Context, key string) ([]queries.MenuItem, bool, error) {
	data, err := c.client.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var items []queries.MenuItem
	if err = json.Unmarshal(data, &items); err != nil {
		return nil, false, err
	}
	return items, true, nil
}

func (c *MenuCache) Set(ctx context.Context, key string, items []queries.MenuItem) error {
	payload, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, keyPrefix+key, payload, c.ttl).Err()
}

// Invalidate deletes every cached page. The SCAN completes before the first
// DEL is issued.
func (c *MenuCache) Invalidate(ctx context.Context) error {
	var keys []string
	iter := c.client.Scan(ctx, 0, keyPrefix+"*", scanBatch).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}

	for batch := range slices.Chunk(keys, scanBatch) {
		if err := c.client.Del(ctx, batch...).Err(); err != nil {
			return err
		}
	}
	return nil
}
