package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/nlekkerman/HotelMateBackend-sub002/internal/domain/stock"
)

// RedisStockItemCache implements StockItemCache using Redis. Suitable for
// deployments running more than one instance, where an invalidation on one
// instance must be visible to the others.
type RedisStockItemCache struct {
	client    *redis.Client
	keyPrefix string
	ttl       time.Duration
}

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// NewRedisStockItemCache creates a new Redis-backed stock item cache
func NewRedisStockItemCache(cfg RedisConfig, ttl time.Duration) (*RedisStockItemCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return NewRedisStockItemCacheWithClient(client, "", ttl), nil
}

// NewRedisStockItemCacheWithClient creates a cache with an existing Redis client.
// This is useful for testing or when sharing a client across components.
func NewRedisStockItemCacheWithClient(client *redis.Client, keyPrefix string, ttl time.Duration) *RedisStockItemCache {
	if keyPrefix == "" {
		keyPrefix = "stock:item:"
	}
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &RedisStockItemCache{
		client:    client,
		keyPrefix: keyPrefix,
		ttl:       ttl,
	}
}

// Get returns the cached item, or nil when the key does not exist.
func (c *RedisStockItemCache) Get(ctx context.Context, itemID uuid.UUID) (*stock.StockItem, error) {
	data, err := c.client.Get(ctx, stockItemKey(c.keyPrefix, itemID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read stock item from cache: %w", err)
	}

	var item stock.StockItem
	if err := json.Unmarshal(data, &item); err != nil {
		return nil, fmt.Errorf("failed to decode cached stock item: %w", err)
	}

	return &item, nil
}

// Set stores the item as JSON with the configured TTL.
func (c *RedisStockItemCache) Set(ctx context.Context, item *stock.StockItem) error {
	data, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("failed to encode stock item for cache: %w", err)
	}

	if err := c.client.Set(ctx, stockItemKey(c.keyPrefix, item.ID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write stock item to cache: %w", err)
	}

	return nil
}

// Invalidate removes the item from the cache.
func (c *RedisStockItemCache) Invalidate(ctx context.Context, itemID uuid.UUID) error {
	if err := c.client.Del(ctx, stockItemKey(c.keyPrefix, itemID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate cached stock item: %w", err)
	}
	return nil
}

// Close closes the Redis client
func (c *RedisStockItemCache) Close() error {
	return c.client.Close()
}

// GetClient returns the underlying Redis client (for testing/monitoring)
func (c *RedisStockItemCache) GetClient() *redis.Client {
	return c.client
}

// Ensure RedisStockItemCache implements StockItemCache
var _ StockItemCache = (*RedisStockItemCache)(nil)
