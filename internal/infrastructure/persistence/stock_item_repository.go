package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nlekkerman/HotelMateBackend-sub002/internal/domain/shared"
	"github.com/nlekkerman/HotelMateBackend-sub002/internal/domain/stock"
	"github.com/nlekkerman/HotelMateBackend-sub002/internal/infrastructure/persistence/models"
)

// GormStockItemRepository implements StockItemRepository using GORM
type GormStockItemRepository struct {
	db *gorm.DB
}

// NewGormStockItemRepository creates a new GormStockItemRepository
func NewGormStockItemRepository(db *gorm.DB) *GormStockItemRepository {
	return &GormStockItemRepository{db: db}
}

// FindByID finds a stock item by its ID
func (r *GormStockItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*stock.StockItem, error) {
	var model models.StockItemModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIDForHotel finds a stock item by ID within a hotel
func (r *GormStockItemRepository) FindByIDForHotel(ctx context.Context, hotelID, id uuid.UUID) (*stock.StockItem, error) {
	var model models.StockItemModel
	if err := r.db.WithContext(ctx).
		Where("hotel_id = ? AND id = ?", hotelID, id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByCode finds a stock item by its code within a hotel
func (r *GormStockItemRepository) FindByCode(ctx context.Context, hotelID uuid.UUID, code string) (*stock.StockItem, error) {
	var model models.StockItemModel
	if err := r.db.WithContext(ctx).
		Where("hotel_id = ? AND code = ?", hotelID, code).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByCategory finds all stock items in a category
func (r *GormStockItemRepository) FindByCategory(ctx context.Context, hotelID uuid.UUID, category stock.Category, filter shared.Filter) ([]stock.StockItem, error) {
	var itemModels []models.StockItemModel
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&models.StockItemModel{}).
			Where("hotel_id = ? AND category = ?", hotelID, category),
		filter,
	)

	if err := query.Find(&itemModels).Error; err != nil {
		return nil, err
	}
	return toDomainItems(itemModels), nil
}

// FindActiveForHotel finds all active stock items for a hotel
func (r *GormStockItemRepository) FindActiveForHotel(ctx context.Context, hotelID uuid.UUID, filter shared.Filter) ([]stock.StockItem, error) {
	var itemModels []models.StockItemModel
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&models.StockItemModel{}).
			Where("hotel_id = ? AND active = ?", hotelID, true),
		filter,
	)

	if err := query.Find(&itemModels).Error; err != nil {
		return nil, err
	}
	return toDomainItems(itemModels), nil
}

// FindAllForHotel finds all stock items for a hotel
func (r *GormStockItemRepository) FindAllForHotel(ctx context.Context, hotelID uuid.UUID, filter shared.Filter) ([]stock.StockItem, error) {
	var itemModels []models.StockItemModel
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&models.StockItemModel{}).
			Where("hotel_id = ?", hotelID),
		filter,
	)

	if err := query.Find(&itemModels).Error; err != nil {
		return nil, err
	}
	return toDomainItems(itemModels), nil
}

// FindByIDs finds multiple stock items by their IDs
func (r *GormStockItemRepository) FindByIDs(ctx context.Context, hotelID uuid.UUID, ids []uuid.UUID) ([]stock.StockItem, error) {
	if len(ids) == 0 {
		return []stock.StockItem{}, nil
	}
	var itemModels []models.StockItemModel
	if err := r.db.WithContext(ctx).
		Where("hotel_id = ? AND id IN ?", hotelID, ids).
		Find(&itemModels).Error; err != nil {
		return nil, err
	}
	return toDomainItems(itemModels), nil
}

// Save creates or updates a stock item
func (r *GormStockItemRepository) Save(ctx context.Context, item *stock.StockItem) error {
	model := models.StockItemModelFromDomain(item)
	return r.db.WithContext(ctx).Save(model).Error
}

// DeleteForHotel deletes a stock item within a hotel
func (r *GormStockItemRepository) DeleteForHotel(ctx context.Context, hotelID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("hotel_id = ? AND id = ?", hotelID, id).
		Delete(&models.StockItemModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// CountForHotel counts stock items matching the filter
func (r *GormStockItemRepository) CountForHotel(ctx context.Context, hotelID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.StockItemModel{}).
		Where("hotel_id = ?", hotelID)

	if filter.Search != "" {
		searchPattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(code) LIKE ?", searchPattern, searchPattern)
	}
	if category, ok := filter.Filters["category"]; ok {
		query = query.Where("category = ?", category)
	}
	if active, ok := filter.Filters["active"]; ok {
		query = query.Where("active = ?", active)
	}

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsByCode checks if an item with the code exists in the hotel
func (r *GormStockItemRepository) ExistsByCode(ctx context.Context, hotelID uuid.UUID, code string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.StockItemModel{}).
		Where("hotel_id = ? AND code = ?", hotelID, code).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// applyFilter applies common filter options to a query
func (r *GormStockItemRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(code) LIKE ?", searchPattern, searchPattern)
	}

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := "created_at"
	if filter.OrderBy != "" {
		// Whitelist order columns to prevent SQL injection
		validFields := map[string]bool{
			"name":       true,
			"code":       true,
			"category":   true,
			"created_at": true,
			"updated_at": true,
		}
		if validFields[filter.OrderBy] {
			orderBy = filter.OrderBy
		}
	}

	orderDir := "DESC"
	if strings.EqualFold(filter.OrderDir, "asc") {
		orderDir = "ASC"
	}

	return query.Order(fmt.Sprintf("%s %s", orderBy, orderDir))
}

func toDomainItems(itemModels []models.StockItemModel) []stock.StockItem {
	items := make([]stock.StockItem, len(itemModels))
	for i, model := range itemModels {
		items[i] = *model.ToDomain()
	}
	return items
}

// Ensure GormStockItemRepository implements StockItemRepository
var _ stock.StockItemRepository = (*GormStockItemRepository)(nil)
