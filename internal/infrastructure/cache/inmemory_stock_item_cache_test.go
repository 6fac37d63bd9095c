package cache

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nlekkerman/HotelMateBackend-sub002/internal/domain/stock"
)

func newTestItem(t *testing.T) *stock.StockItem {
	t.Helper()
	item, err := stock.NewStockItem(
		uuid.New(),
		"Guinness Keg",
		"DRA-001",
		stock.CategoryDraught,
		stock.SubcategoryNone,
		decimal.NewFromFloat(52.8),
		decimal.Zero,
		decimal.Zero,
	)
	require.NoError(t, err)
	return item
}

func TestInMemoryStockItemCache(t *testing.T) {
	ctx := context.Background()

	t.Run("get returns nil on miss", func(t *testing.T) {
		cache := NewInMemoryStockItemCache()
		defer cache.Close()

		item, err := cache.Get(ctx, uuid.New())
		require.NoError(t, err)
		assert.Nil(t, item)
	})

	t.Run("set then get returns the item", func(t *testing.T) {
		cache := NewInMemoryStockItemCache()
		defer cache.Close()

		item := newTestItem(t)
		require.NoError(t, cache.Set(ctx, item))

		cached, err := cache.Get(ctx, item.ID)
		require.NoError(t, err)
		require.NotNil(t, cached)
		assert.Equal(t, item.ID, cached.ID)
		assert.Equal(t, "DRA-001", cached.Code)
	})

	t.Run("invalidate removes the item", func(t *testing.T) {
		cache := NewInMemoryStockItemCache()
		defer cache.Close()

		item := newTestItem(t)
		require.NoError(t, cache.Set(ctx, item))
		require.NoError(t, cache.Invalidate(ctx, item.ID))

		cached, err := cache.Get(ctx, item.ID)
		require.NoError(t, err)
		assert.Nil(t, cached)
	})

	t.Run("expired entries are treated as misses", func(t *testing.T) {
		cache := NewInMemoryStockItemCache(WithInMemoryTTL(time.Millisecond))
		defer cache.Close()

		item := newTestItem(t)
		require.NoError(t, cache.Set(ctx, item))

		time.Sleep(5 * time.Millisecond)

		cached, err := cache.Get(ctx, item.ID)
		require.NoError(t, err)
		assert.Nil(t, cached)
	})

	t.Run("stats count hits and misses", func(t *testing.T) {
		cache := NewInMemoryStockItemCache()
		defer cache.Close()

		item := newTestItem(t)
		require.NoError(t, cache.Set(ctx, item))

		_, _ = cache.Get(ctx, item.ID)
		_, _ = cache.Get(ctx, uuid.New())

		hits, misses := cache.Stats()
		assert.Equal(t, int64(1), hits)
		assert.Equal(t, int64(1), misses)
	})

	t.Run("close is idempotent", func(t *testing.T) {
		cache := NewInMemoryStockItemCache()
		require.NoError(t, cache.Close())
		require.NoError(t, cache.Close())
	})
}
