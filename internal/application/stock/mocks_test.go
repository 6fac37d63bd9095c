package stock

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/nlekkerman/HotelMateBackend-sub002/internal/domain/shared"
	"github.com/nlekkerman/HotelMateBackend-sub002/internal/domain/stock"
)

// MockStockItemRepository is a mock implementation of StockItemRepository
type MockStockItemRepository struct {
	mock.Mock
}

func (m *MockStockItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*stock.StockItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stock.StockItem), args.Error(1)
}

func (m *MockStockItemRepository) FindByIDForHotel(ctx context.Context, hotelID, id uuid.UUID) (*stock.StockItem, error) {
	args := m.Called(ctx, hotelID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stock.StockItem), args.Error(1)
}

func (m *MockStockItemRepository) FindByCode(ctx context.Context, hotelID uuid.UUID, code string) (*stock.StockItem, error) {
	args := m.Called(ctx, hotelID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stock.StockItem), args.Error(1)
}

func (m *MockStockItemRepository) FindByCategory(ctx context.Context, hotelID uuid.UUID, category stock.Category, filter shared.Filter) ([]stock.StockItem, error) {
	args := m.Called(ctx, hotelID, category, filter)
	return args.Get(0).([]stock.StockItem), args.Error(1)
}

func (m *MockStockItemRepository) FindActiveForHotel(ctx context.Context, hotelID uuid.UUID, filter shared.Filter) ([]stock.StockItem, error) {
	args := m.Called(ctx, hotelID, filter)
	return args.Get(0).([]stock.StockItem), args.Error(1)
}

func (m *MockStockItemRepository) FindAllForHotel(ctx context.Context, hotelID uuid.UUID, filter shared.Filter) ([]stock.StockItem, error) {
	args := m.Called(ctx, hotelID, filter)
	return args.Get(0).([]stock.StockItem), args.Error(1)
}

func (m *MockStockItemRepository) FindByIDs(ctx context.Context, hotelID uuid.UUID, ids []uuid.UUID) ([]stock.StockItem, error) {
	args := m.Called(ctx, hotelID, ids)
	return args.Get(0).([]stock.StockItem), args.Error(1)
}

func (m *MockStockItemRepository) Save(ctx context.Context, item *stock.StockItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockStockItemRepository) DeleteForHotel(ctx context.Context, hotelID, id uuid.UUID) error {
	args := m.Called(ctx, hotelID, id)
	return args.Error(0)
}

func (m *MockStockItemRepository) CountForHotel(ctx context.Context, hotelID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, hotelID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStockItemRepository) ExistsByCode(ctx context.Context, hotelID uuid.UUID, code string) (bool, error) {
	args := m.Called(ctx, hotelID, code)
	return args.Bool(0), args.Error(1)
}

// MockStocktakeRepository is a mock implementation of StocktakeRepository
type MockStocktakeRepository struct {
	mock.Mock
}

func (m *MockStocktakeRepository) FindByID(ctx context.Context, id uuid.UUID) (*stock.Stocktake, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stock.Stocktake), args.Error(1)
}

func (m *MockStocktakeRepository) FindByIDForHotel(ctx context.Context, hotelID, id uuid.UUID) (*stock.Stocktake, error) {
	args := m.Called(ctx, hotelID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stock.Stocktake), args.Error(1)
}

func (m *MockStocktakeRepository) FindByTakingNumber(ctx context.Context, hotelID uuid.UUID, takingNumber string) (*stock.Stocktake, error) {
	args := m.Called(ctx, hotelID, takingNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stock.Stocktake), args.Error(1)
}

func (m *MockStocktakeRepository) FindByStatus(ctx context.Context, hotelID uuid.UUID, status stock.StocktakeStatus, filter shared.Filter) ([]stock.Stocktake, error) {
	args := m.Called(ctx, hotelID, status, filter)
	return args.Get(0).([]stock.Stocktake), args.Error(1)
}

func (m *MockStocktakeRepository) FindAllForHotel(ctx context.Context, hotelID uuid.UUID, filter shared.Filter) ([]stock.Stocktake, error) {
	args := m.Called(ctx, hotelID, filter)
	return args.Get(0).([]stock.Stocktake), args.Error(1)
}

func (m *MockStocktakeRepository) FindByDateRange(ctx context.Context, hotelID uuid.UUID, start, end time.Time, filter shared.Filter) ([]stock.Stocktake, error) {
	args := m.Called(ctx, hotelID, start, end, filter)
	return args.Get(0).([]stock.Stocktake), args.Error(1)
}

func (m *MockStocktakeRepository) Save(ctx context.Context, st *stock.Stocktake) error {
	args := m.Called(ctx, st)
	return args.Error(0)
}

func (m *MockStocktakeRepository) DeleteForHotel(ctx context.Context, hotelID, id uuid.UUID) error {
	args := m.Called(ctx, hotelID, id)
	return args.Error(0)
}

func (m *MockStocktakeRepository) CountForHotel(ctx context.Context, hotelID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, hotelID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStocktakeRepository) CountByStatus(ctx context.Context, hotelID uuid.UUID, status stock.StocktakeStatus) (int64, error) {
	args := m.Called(ctx, hotelID, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStocktakeRepository) GenerateTakingNumber(ctx context.Context, hotelID uuid.UUID) (string, error) {
	args := m.Called(ctx, hotelID)
	return args.String(0), args.Error(1)
}

// MockEventBus is a mock implementation of EventBus
type MockEventBus struct {
	mock.Mock
}

func (m *MockEventBus) Publish(ctx context.Context, events ...shared.DomainEvent) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}

func (m *MockEventBus) Subscribe(handler shared.EventHandler, eventTypes ...string) {
	m.Called(handler, eventTypes)
}

func (m *MockEventBus) Unsubscribe(handler shared.EventHandler) {
	m.Called(handler)
}

func (m *MockEventBus) Start(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockEventBus) Stop(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
