package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"utibu_health/internal/models"

	"github.com/go-redis/redis/v8"
)

// Client caches the computed cart view per customer. The database stays the
// source of truth; every cart mutation invalidates the customer's key.
type Client struct {
	rdb *redis.Client
}

func Initialize(redisURL string) (*Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

func cartKey(customerID uint) string {
	return fmt.Sprintf("cart:%d", customerID)
}

func (c *Client) SetCartView(customerID uint, lines []models.CartLine, ttl time.Duration) error {
	ctx := context.Background()
	jsonData, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("failed to marshal cart view: %w", err)
	}

	return c.rdb.Set(ctx, cartKey(customerID), jsonData, ttl).Err()
}

func (c *Client) GetCartView(customerID uint) ([]models.CartLine, error) {
	ctx := context.Background()
	val, err := c.rdb.Get(ctx, cartKey(customerID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, fmt.Errorf("cart view not cached")
		}
		return nil, fmt.Errorf("failed to get cart view: %w", err)
	}

	var lines []models.CartLine
	if err := json.Unmarshal([]byte(val), &lines); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cart view: %w", err)
	}

	return lines, nil
}

func (c *Client) InvalidateCartView(customerID uint) error {
	ctx := context.Background()
	return c.rdb.Del(ctx, cartKey(customerID)).Err()
}

func (c *Client) Close() error {
	return c.rdb.Close()
}
