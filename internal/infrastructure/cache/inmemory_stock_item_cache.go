package cache

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nlekkerman/HotelMateBackend-sub002/internal/domain/stock"
)

const defaultCleanupInterval = 30 * time.Second

// InMemoryStockItemCache implements StockItemCache using in-process storage.
// Suitable for single-instance deployments; a distributed deployment should
// use the Redis backend so invalidations reach every instance.
type InMemoryStockItemCache struct {
	items   sync.Map // map[uuid.UUID]*itemEntry
	ttl     time.Duration
	logger  *zap.Logger
	stopCh  chan struct{}
	stopped int32

	// Stats for monitoring
	hits   int64
	misses int64
}

type itemEntry struct {
	item      *stock.StockItem
	expiresAt time.Time
}

func (e *itemEntry) isExpired() bool {
	return time.Now().After(e.expiresAt)
}

// InMemoryStockItemCacheOption is a functional option for configuring the cache
type InMemoryStockItemCacheOption func(*InMemoryStockItemCache)

// WithInMemoryTTL sets the entry TTL
func WithInMemoryTTL(ttl time.Duration) InMemoryStockItemCacheOption {
	return func(c *InMemoryStockItemCache) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// WithInMemoryLogger sets the logger for the cache
func WithInMemoryLogger(logger *zap.Logger) InMemoryStockItemCacheOption {
	return func(c *InMemoryStockItemCache) {
		c.logger = logger
	}
}

// NewInMemoryStockItemCache creates a new in-memory stock item cache
func NewInMemoryStockItemCache(opts ...InMemoryStockItemCacheOption) *InMemoryStockItemCache {
	cache := &InMemoryStockItemCache{
		ttl:    defaultTTL,
		logger: zap.NewNop(),
		stopCh: make(chan struct{}),
	}

	for _, opt := range opts {
		opt(cache)
	}

	go cache.cleanupExpired()

	return cache
}

// Get returns the cached item, or nil when absent or expired.
func (c *InMemoryStockItemCache) Get(_ context.Context, itemID uuid.UUID) (*stock.StockItem, error) {
	value, ok := c.items.Load(itemID)
	if !ok {
		atomic.AddInt64(&c.misses, 1)
		return nil, nil
	}

	entry := value.(*itemEntry)
	if entry.isExpired() {
		c.items.Delete(itemID)
		atomic.AddInt64(&c.misses, 1)
		return nil, nil
	}

	atomic.AddInt64(&c.hits, 1)
	return entry.item, nil
}

// Set stores the item for the configured TTL.
func (c *InMemoryStockItemCache) Set(_ context.Context, item *stock.StockItem) error {
	c.items.Store(item.ID, &itemEntry{
		item:      item,
		expiresAt: time.Now().Add(c.ttl),
	})
	return nil
}

// Invalidate removes the item from the cache.
func (c *InMemoryStockItemCache) Invalidate(_ context.Context, itemID uuid.UUID) error {
	c.items.Delete(itemID)
	return nil
}

// Close stops the background cleanup goroutine.
func (c *InMemoryStockItemCache) Close() error {
	if atomic.CompareAndSwapInt32(&c.stopped, 0, 1) {
		close(c.stopCh)
	}
	return nil
}

// Stats returns the hit and miss counters.
func (c *InMemoryStockItemCache) Stats() (hits, misses int64) {
	return atomic.LoadInt64(&c.hits), atomic.LoadInt64(&c.misses)
}

// cleanupExpired periodically sweeps expired entries so the map does not
// grow unbounded with items that are never read again.
func (c *InMemoryStockItemCache) cleanupExpired() {
	ticker := time.NewTicker(defaultCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stopCh:
			return
		case <-ticker.C:
			removed := 0
			c.items.Range(func(key, value interface{}) bool {
				if value.(*itemEntry).isExpired() {
					c.items.Delete(key)
					removed++
				}
				return true
			})
			if removed > 0 {
				c.logger.Debug("removed expired stock item cache entries",
					zap.Int("count", removed),
				)
			}
		}
	}
}

// Ensure InMemoryStockItemCache implements StockItemCache
var _ StockItemCache = (*InMemoryStockItemCache)(nil)
