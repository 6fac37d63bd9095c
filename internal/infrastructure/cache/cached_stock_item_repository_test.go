package cache

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nlekkerman/HotelMateBackend-sub002/internal/domain/shared"
	"github.com/nlekkerman/HotelMateBackend-sub002/internal/domain/stock"
)

// stubStockItemRepository counts calls so the tests can tell whether a
// lookup was answered from the cache or fell through.
type stubStockItemRepository struct {
	stock.StockItemRepository

	items     map[uuid.UUID]*stock.StockItem
	findCalls int
	saveErr   error
}

func newStubRepository() *stubStockItemRepository {
	return &stubStockItemRepository{items: make(map[uuid.UUID]*stock.StockItem)}
}

func (s *stubStockItemRepository) FindByID(_ context.Context, id uuid.UUID) (*stock.StockItem, error) {
	s.findCalls++
	item, ok := s.items[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return item, nil
}

func (s *stubStockItemRepository) FindByIDForHotel(_ context.Context, hotelID, id uuid.UUID) (*stock.StockItem, error) {
	s.findCalls++
	item, ok := s.items[id]
	if !ok || item.HotelID != hotelID {
		return nil, shared.ErrNotFound
	}
	return item, nil
}

func (s *stubStockItemRepository) Save(_ context.Context, item *stock.StockItem) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.items[item.ID] = item
	return nil
}

func (s *stubStockItemRepository) DeleteForHotel(_ context.Context, hotelID, id uuid.UUID) error {
	item, ok := s.items[id]
	if !ok || item.HotelID != hotelID {
		return shared.ErrNotFound
	}
	delete(s.items, id)
	return nil
}

func TestCachedStockItemRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("second lookup is served from the cache", func(t *testing.T) {
		repo := newStubRepository()
		cache := NewInMemoryStockItemCache()
		defer cache.Close()
		cached := NewCachedStockItemRepository(repo, cache, nil)

		item := newTestItem(t)
		repo.items[item.ID] = item

		first, err := cached.FindByID(ctx, item.ID)
		require.NoError(t, err)
		second, err := cached.FindByID(ctx, item.ID)
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, 1, repo.findCalls)
	})

	t.Run("hotel-scoped lookup rejects a cached item from another hotel", func(t *testing.T) {
		repo := newStubRepository()
		cache := NewInMemoryStockItemCache()
		defer cache.Close()
		cached := NewCachedStockItemRepository(repo, cache, nil)

		item := newTestItem(t)
		repo.items[item.ID] = item
		require.NoError(t, cache.Set(ctx, item))

		_, err := cached.FindByIDForHotel(ctx, uuid.New(), item.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.Equal(t, 1, repo.findCalls)
	})

	t.Run("save invalidates the cached copy", func(t *testing.T) {
		repo := newStubRepository()
		cache := NewInMemoryStockItemCache()
		defer cache.Close()
		cached := NewCachedStockItemRepository(repo, cache, nil)

		item := newTestItem(t)
		repo.items[item.ID] = item

		_, err := cached.FindByID(ctx, item.ID)
		require.NoError(t, err)

		item.Name = "Guinness Keg 50L"
		require.NoError(t, cached.Save(ctx, item))

		stale, err := cache.Get(ctx, item.ID)
		require.NoError(t, err)
		assert.Nil(t, stale)
	})

	t.Run("delete invalidates the cached copy", func(t *testing.T) {
		repo := newStubRepository()
		cache := NewInMemoryStockItemCache()
		defer cache.Close()
		cached := NewCachedStockItemRepository(repo, cache, nil)

		item := newTestItem(t)
		repo.items[item.ID] = item
		require.NoError(t, cache.Set(ctx, item))

		require.NoError(t, cached.DeleteForHotel(ctx, item.HotelID, item.ID))

		stale, err := cache.Get(ctx, item.ID)
		require.NoError(t, err)
		assert.Nil(t, stale)
	})

	t.Run("repository errors pass through unchanged", func(t *testing.T) {
		repo := newStubRepository()
		cache := NewInMemoryStockItemCache()
		defer cache.Close()
		cached := NewCachedStockItemRepository(repo, cache, nil)

		_, err := cached.FindByID(ctx, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}
