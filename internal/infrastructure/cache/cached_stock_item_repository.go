package cache

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nlekkerman/HotelMateBackend-sub002/internal/domain/shared"
	"github.com/nlekkerman/HotelMateBackend-sub002/internal/domain/stock"
)

// CachedStockItemRepository decorates a StockItemRepository with a
// read-through cache on the single-item lookups. List queries always hit
// the underlying repository; their results change with every filter and
// are not worth caching. Cache failures degrade to repository reads and
// are logged, never surfaced to the caller.
type CachedStockItemRepository struct {
	inner  stock.StockItemRepository
	cache  StockItemCache
	logger *zap.Logger
}

// NewCachedStockItemRepository wraps the repository with the given cache
func NewCachedStockItemRepository(inner stock.StockItemRepository, cache StockItemCache, logger *zap.Logger) *CachedStockItemRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachedStockItemRepository{
		inner:  inner,
		cache:  cache,
		logger: logger,
	}
}

// FindByID finds a stock item by its ID, consulting the cache first
func (r *CachedStockItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*stock.StockItem, error) {
	if item := r.cachedItem(ctx, id); item != nil {
		return item, nil
	}

	item, err := r.inner.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	r.storeItem(ctx, item)
	return item, nil
}

// FindByIDForHotel finds a stock item by ID within a hotel. The cached
// copy is only trusted when its hotel matches, otherwise the lookup falls
// through so the hotel scoping stays with the repository.
func (r *CachedStockItemRepository) FindByIDForHotel(ctx context.Context, hotelID, id uuid.UUID) (*stock.StockItem, error) {
	if item := r.cachedItem(ctx, id); item != nil && item.HotelID == hotelID {
		return item, nil
	}

	item, err := r.inner.FindByIDForHotel(ctx, hotelID, id)
	if err != nil {
		return nil, err
	}

	r.storeItem(ctx, item)
	return item, nil
}

// FindByCode finds a stock item by its code within a hotel
func (r *CachedStockItemRepository) FindByCode(ctx context.Context, hotelID uuid.UUID, code string) (*stock.StockItem, error) {
	item, err := r.inner.FindByCode(ctx, hotelID, code)
	if err != nil {
		return nil, err
	}

	r.storeItem(ctx, item)
	return item, nil
}

// FindByCategory finds all stock items in a category
func (r *CachedStockItemRepository) FindByCategory(ctx context.Context, hotelID uuid.UUID, category stock.Category, filter shared.Filter) ([]stock.StockItem, error) {
	return r.inner.FindByCategory(ctx, hotelID, category, filter)
}

// FindActiveForHotel finds all active stock items for a hotel
func (r *CachedStockItemRepository) FindActiveForHotel(ctx context.Context, hotelID uuid.UUID, filter shared.Filter) ([]stock.StockItem, error) {
	return r.inner.FindActiveForHotel(ctx, hotelID, filter)
}

// FindAllForHotel finds all stock items for a hotel
func (r *CachedStockItemRepository) FindAllForHotel(ctx context.Context, hotelID uuid.UUID, filter shared.Filter) ([]stock.StockItem, error) {
	return r.inner.FindAllForHotel(ctx, hotelID, filter)
}

// FindByIDs finds multiple stock items by their IDs
func (r *CachedStockItemRepository) FindByIDs(ctx context.Context, hotelID uuid.UUID, ids []uuid.UUID) ([]stock.StockItem, error) {
	return r.inner.FindByIDs(ctx, hotelID, ids)
}

// Save creates or updates a stock item and invalidates its cached copy
func (r *CachedStockItemRepository) Save(ctx context.Context, item *stock.StockItem) error {
	if err := r.inner.Save(ctx, item); err != nil {
		return err
	}

	if err := r.cache.Invalidate(ctx, item.ID); err != nil {
		r.logger.Warn("failed to invalidate cached stock item",
			zap.String("item_id", item.ID.String()),
			zap.Error(err),
		)
	}
	return nil
}

// DeleteForHotel deletes a stock item within a hotel and invalidates its
// cached copy
func (r *CachedStockItemRepository) DeleteForHotel(ctx context.Context, hotelID, id uuid.UUID) error {
	if err := r.inner.DeleteForHotel(ctx, hotelID, id); err != nil {
		return err
	}

	if err := r.cache.Invalidate(ctx, id); err != nil {
		r.logger.Warn("failed to invalidate cached stock item",
			zap.String("item_id", id.String()),
			zap.Error(err),
		)
	}
	return nil
}

// CountForHotel counts stock items matching the filter
func (r *CachedStockItemRepository) CountForHotel(ctx context.Context, hotelID uuid.UUID, filter shared.Filter) (int64, error) {
	return r.inner.CountForHotel(ctx, hotelID, filter)
}

// ExistsByCode checks if an item with the code exists in the hotel
func (r *CachedStockItemRepository) ExistsByCode(ctx context.Context, hotelID uuid.UUID, code string) (bool, error) {
	return r.inner.ExistsByCode(ctx, hotelID, code)
}

func (r *CachedStockItemRepository) cachedItem(ctx context.Context, id uuid.UUID) *stock.StockItem {
	item, err := r.cache.Get(ctx, id)
	if err != nil {
		r.logger.Warn("failed to read stock item from cache",
			zap.String("item_id", id.String()),
			zap.Error(err),
		)
		return nil
	}
	return item
}

func (r *CachedStockItemRepository) storeItem(ctx context.Context, item *stock.StockItem) {
	if err := r.cache.Set(ctx, item); err != nil {
		r.logger.Warn("failed to cache stock item",
			zap.String("item_id", item.ID.String()),
			zap.Error(err),
		)
	}
}

// Ensure CachedStockItemRepository implements StockItemRepository
var _ stock.StockItemRepository = (*CachedStockItemRepository)(nil)
