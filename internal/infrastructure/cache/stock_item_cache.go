package cache

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/nlekkerman/HotelMateBackend-sub002/internal/domain/stock"
)

// StockItemCache caches stock item aggregates between the repository and
// its callers. A miss is reported as (nil, nil) so callers can fall
// through to the repository without treating it as a failure.
type StockItemCache interface {
	// Get returns the cached item, or nil when the item is not cached.
	Get(ctx context.Context, itemID uuid.UUID) (*stock.StockItem, error)

	// Set stores the item for the configured TTL.
	Set(ctx context.Context, item *stock.StockItem) error

	// Invalidate removes the item from the cache.
	Invalidate(ctx context.Context, itemID uuid.UUID) error

	// Close releases any resources held by the cache.
	Close() error
}

// defaultTTL applies when the configured TTL is zero or negative.
const defaultTTL = 5 * time.Minute

func stockItemKey(prefix string, itemID uuid.UUID) string {
	return prefix + itemID.String()
}
