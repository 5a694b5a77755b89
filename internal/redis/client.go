package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// ErrCacheMiss is returned when a key is absent or expired.
var ErrCacheMiss = errors.New("cache miss")

type Client struct {
	rdb *redis.Client
}

func Initialize(redisURL string) (*Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	// Test connection
	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

// Menu caching. The menu is read-mostly, so list responses are kept hot and
// dropped wholesale on any catalog write.

func menuKey(category string, availableOnly bool) string {
	return fmt.Sprintf("menu:items:%s:%t", category, availableOnly)
}

func (c *Client) SetMenuItems(category string, availableOnly bool, value interface{}, ttl time.Duration) error {
	ctx := context.Background()
	jsonData, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal menu items: %w", err)
	}

	return c.rdb.Set(ctx, menuKey(category, availableOnly), jsonData, ttl).Err()
}

func (c *Client) GetMenuItems(category string, availableOnly bool, dest interface{}) error {
	ctx := context.Background()
	val, err := c.rdb.Get(ctx, menuKey(category, availableOnly)).Result()
	if err != nil {
		if err == redis.Nil {
			return ErrCacheMiss
		}
		return fmt.Errorf("failed to get menu items: %w", err)
	}

	return json.Unmarshal([]byte(val), dest)
}

// InvalidateMenu drops every cached menu listing.
func (c *Client) InvalidateMenu() error {
	ctx := context.Background()
	keys, err := c.rdb.Keys(ctx, "menu:items:*").Result()
	if err != nil {
		return fmt.Errorf("failed to list menu cache keys: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	return c.rdb.Del(ctx, keys...).Err()
}
