package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nlekkerman/HotelMateBackend-sub002/internal/domain/shared"
	"github.com/nlekkerman/HotelMateBackend-sub002/internal/domain/stock"
	"github.com/nlekkerman/HotelMateBackend-sub002/internal/infrastructure/persistence/models"
)

// GormStocktakeRepository implements StocktakeRepository using GORM
type GormStocktakeRepository struct {
	db *gorm.DB
}

// NewGormStocktakeRepository creates a new GormStocktakeRepository
func NewGormStocktakeRepository(db *gorm.DB) *GormStocktakeRepository {
	return &GormStocktakeRepository{db: db}
}

// FindByID finds a stocktake by its ID
func (r *GormStocktakeRepository) FindByID(ctx context.Context, id uuid.UUID) (*stock.Stocktake, error) {
	var model models.StocktakeModel
	if err := r.db.WithContext(ctx).
		Preload("Lines").
		First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain()
}

// FindByIDForHotel finds a stocktake by ID within a hotel
func (r *GormStocktakeRepository) FindByIDForHotel(ctx context.Context, hotelID, id uuid.UUID) (*stock.Stocktake, error) {
	var model models.StocktakeModel
	if err := r.db.WithContext(ctx).
		Preload("Lines").
		Where("hotel_id = ? AND id = ?", hotelID, id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain()
}

// FindByTakingNumber finds a stocktake by its number
func (r *GormStocktakeRepository) FindByTakingNumber(ctx context.Context, hotelID uuid.UUID, takingNumber string) (*stock.Stocktake, error) {
	var model models.StocktakeModel
	if err := r.db.WithContext(ctx).
		Preload("Lines").
		Where("hotel_id = ? AND taking_number = ?", hotelID, takingNumber).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain()
}

// FindByStatus finds all stocktakes with a specific status
func (r *GormStocktakeRepository) FindByStatus(ctx context.Context, hotelID uuid.UUID, status stock.StocktakeStatus, filter shared.Filter) ([]stock.Stocktake, error) {
	var stModels []models.StocktakeModel
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&models.StocktakeModel{}).
			Where("hotel_id = ? AND status = ?", hotelID, status),
		filter,
	)

	if err := query.Find(&stModels).Error; err != nil {
		return nil, err
	}
	return toDomainStocktakes(stModels)
}

// FindAllForHotel finds all stocktakes for a hotel
func (r *GormStocktakeRepository) FindAllForHotel(ctx context.Context, hotelID uuid.UUID, filter shared.Filter) ([]stock.Stocktake, error) {
	var stModels []models.StocktakeModel
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&models.StocktakeModel{}).
			Where("hotel_id = ?", hotelID),
		filter,
	)

	if err := query.Find(&stModels).Error; err != nil {
		return nil, err
	}
	return toDomainStocktakes(stModels)
}

// FindByDateRange finds stocktakes within a date range
func (r *GormStocktakeRepository) FindByDateRange(ctx context.Context, hotelID uuid.UUID, start, end time.Time, filter shared.Filter) ([]stock.Stocktake, error) {
	var stModels []models.StocktakeModel
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&models.StocktakeModel{}).
			Where("hotel_id = ? AND taking_date >= ? AND taking_date <= ?", hotelID, start, end),
		filter,
	)

	if err := query.Find(&stModels).Error; err != nil {
		return nil, err
	}
	return toDomainStocktakes(stModels)
}

// Save saves a stocktake with its lines in a transaction
func (r *GormStocktakeRepository) Save(ctx context.Context, st *stock.Stocktake) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		model := models.StocktakeModelFromDomain(st)
		lines := model.Lines
		model.Lines = nil
		if err := tx.Omit("Lines").Save(model).Error; err != nil {
			return err
		}

		// Remove lines no longer on the stocktake
		var keptIDs []uuid.UUID
		for _, line := range st.Lines {
			keptIDs = append(keptIDs, line.ID)
		}
		if len(keptIDs) > 0 {
			if err := tx.Where("stocktake_id = ? AND id NOT IN ?", st.ID, keptIDs).
				Delete(&models.StocktakeLineModel{}).Error; err != nil {
				return err
			}
		} else {
			if err := tx.Where("stocktake_id = ?", st.ID).
				Delete(&models.StocktakeLineModel{}).Error; err != nil {
				return err
			}
		}

		for i := range lines {
			lines[i].StocktakeID = st.ID
			if err := tx.Save(&lines[i]).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// DeleteForHotel deletes a stocktake within a hotel
func (r *GormStocktakeRepository) DeleteForHotel(ctx context.Context, hotelID, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var model models.StocktakeModel
		if err := tx.Where("hotel_id = ? AND id = ?", hotelID, id).First(&model).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return shared.ErrNotFound
			}
			return err
		}

		if err := tx.Where("stocktake_id = ?", id).Delete(&models.StocktakeLineModel{}).Error; err != nil {
			return err
		}

		return tx.Delete(&model).Error
	})
}

// CountForHotel counts stocktakes matching the filter
func (r *GormStocktakeRepository) CountForHotel(ctx context.Context, hotelID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.StocktakeModel{}).
		Where("hotel_id = ?", hotelID)

	if filter.Search != "" {
		searchPattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(taking_number) LIKE ? OR LOWER(created_by_name) LIKE ?",
			searchPattern, searchPattern)
	}

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByStatus counts stocktakes by status
func (r *GormStocktakeRepository) CountByStatus(ctx context.Context, hotelID uuid.UUID, status stock.StocktakeStatus) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.StocktakeModel{}).
		Where("hotel_id = ? AND status = ?", hotelID, status).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// GenerateTakingNumber generates a new unique taking number.
// Format: STK-YYYYMMDD-NNN with a per-day sequence per hotel.
func (r *GormStocktakeRepository) GenerateTakingNumber(ctx context.Context, hotelID uuid.UUID) (string, error) {
	today := time.Now().Format("20060102")
	prefix := fmt.Sprintf("STK-%s-", today)

	var maxNumber string
	err := r.db.WithContext(ctx).Model(&models.StocktakeModel{}).
		Select("taking_number").
		Where("hotel_id = ? AND taking_number LIKE ?", hotelID, prefix+"%").
		Order("taking_number DESC").
		Limit(1).
		Pluck("taking_number", &maxNumber).Error

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	var seq int
	if maxNumber != "" {
		parts := strings.Split(maxNumber, "-")
		if len(parts) >= 3 {
			if _, err := fmt.Sscanf(parts[len(parts)-1], "%03d", &seq); err == nil {
				seq++
			}
		}
	}
	if seq == 0 {
		seq = 1
	}

	return fmt.Sprintf("%s%03d", prefix, seq), nil
}

// applyFilter applies common filter options to a query
func (r *GormStocktakeRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(taking_number) LIKE ? OR LOWER(created_by_name) LIKE ?",
			searchPattern, searchPattern)
	}

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := "created_at"
	if filter.OrderBy != "" {
		// Whitelist order columns to prevent SQL injection
		validFields := map[string]bool{
			"taking_number": true,
			"taking_date":   true,
			"status":        true,
			"created_at":    true,
			"updated_at":    true,
			"total_items":   true,
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

func toDomainStocktakes(stModels []models.StocktakeModel) ([]stock.Stocktake, error) {
	sts := make([]stock.Stocktake, len(stModels))
	for i, model := range stModels {
		st, err := model.ToDomain()
		if err != nil {
			return nil, err
		}
		sts[i] = *st
	}
	return sts, nil
}

// Ensure GormStocktakeRepository implements StocktakeRepository
var _ stock.StocktakeRepository = (*GormStocktakeRepository)(nil)
