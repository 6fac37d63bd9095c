package stock

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/nlekkerman/HotelMateBackend-sub002/internal/domain/shared"
)

// StockItemRepository defines the interface for stock item persistence
type StockItemRepository interface {
	// FindByID finds a stock item by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*StockItem, error)

	// FindByIDForHotel finds a stock item by ID within a hotel
	FindByIDForHotel(ctx context.Context, hotelID, id uuid.UUID) (*StockItem, error)

	// FindByCode finds a stock item by its code within a hotel
	FindByCode(ctx context.Context, hotelID uuid.UUID, code string) (*StockItem, error)

	// FindByCategory finds all stock items in a category
	FindByCategory(ctx context.Context, hotelID uuid.UUID, category Category, filter shared.Filter) ([]StockItem, error)

	// FindActiveForHotel finds all active stock items for a hotel
	FindActiveForHotel(ctx context.Context, hotelID uuid.UUID, filter shared.Filter) ([]StockItem, error)

	// FindAllForHotel finds all stock items for a hotel
	FindAllForHotel(ctx context.Context, hotelID uuid.UUID, filter shared.Filter) ([]StockItem, error)

	// FindByIDs finds multiple stock items by their IDs
	FindByIDs(ctx context.Context, hotelID uuid.UUID, ids []uuid.UUID) ([]StockItem, error)

	// Save creates or updates a stock item
	Save(ctx context.Context, item *StockItem) error

	// Delete deletes a stock item within a hotel
	DeleteForHotel(ctx context.Context, hotelID, id uuid.UUID) error

	// CountForHotel counts stock items matching the filter
	CountForHotel(ctx context.Context, hotelID uuid.UUID, filter shared.Filter) (int64, error)

	// ExistsByCode checks if an item with the code exists in the hotel
	ExistsByCode(ctx context.Context, hotelID uuid.UUID, code string) (bool, error)
}

// StocktakeRepository defines the interface for stocktake persistence
type StocktakeRepository interface {
	// FindByID finds a stocktake by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Stocktake, error)

	// FindByIDForHotel finds a stocktake by ID within a hotel
	FindByIDForHotel(ctx context.Context, hotelID, id uuid.UUID) (*Stocktake, error)

	// FindByTakingNumber finds a stocktake by its number
	FindByTakingNumber(ctx context.Context, hotelID uuid.UUID, takingNumber string) (*Stocktake, error)

	// FindByStatus finds all stocktakes with a specific status
	FindByStatus(ctx context.Context, hotelID uuid.UUID, status StocktakeStatus, filter shared.Filter) ([]Stocktake, error)

	// FindAllForHotel finds all stocktakes for a hotel
	FindAllForHotel(ctx context.Context, hotelID uuid.UUID, filter shared.Filter) ([]Stocktake, error)

	// FindByDateRange finds stocktakes within a date range
	FindByDateRange(ctx context.Context, hotelID uuid.UUID, start, end time.Time, filter shared.Filter) ([]Stocktake, error)

	// Save creates or updates a stocktake with its lines
	Save(ctx context.Context, st *Stocktake) error

	// Delete deletes a stocktake within a hotel
	DeleteForHotel(ctx context.Context, hotelID, id uuid.UUID) error

	// CountForHotel counts stocktakes matching the filter
	CountForHotel(ctx context.Context, hotelID uuid.UUID, filter shared.Filter) (int64, error)

	// CountByStatus counts stocktakes with a specific status
	CountByStatus(ctx context.Context, hotelID uuid.UUID, status StocktakeStatus) (int64, error)

	// GenerateTakingNumber generates the next taking number for a hotel
	GenerateTakingNumber(ctx context.Context, hotelID uuid.UUID) (string, error)
}
