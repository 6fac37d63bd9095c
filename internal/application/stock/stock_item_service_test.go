package stock

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/nlekkerman/HotelMateBackend-sub002/internal/domain/stock"
)

func newTestItem(t *testing.T, hotelID uuid.UUID) *stock.StockItem {
	t.Helper()
	item, err := stock.NewStockItem(hotelID, "Jameson 70cl", "SP-0001", stock.CategorySpirits, stock.SubcategoryNone,
		decimal.NewFromInt(20), decimal.Zero, decimal.Zero)
	require.NoError(t, err)
	item.ClearDomainEvents()
	return item
}

func TestStockItemService_Create(t *testing.T) {
	hotelID := uuid.New()

	t.Run("creates item and publishes event", func(t *testing.T) {
		repo := new(MockStockItemRepository)
		bus := new(MockEventBus)
		service := NewStockItemService(repo, bus)

		repo.On("ExistsByCode", mock.Anything, hotelID, "SP-0001").Return(false, nil)
		repo.On("Save", mock.Anything, mock.AnythingOfType("*stock.StockItem")).Return(nil)
		bus.On("Publish", mock.Anything, mock.Anything).Return(nil)

		resp, err := service.Create(context.Background(), hotelID, CreateStockItemRequest{
			Name:     "Jameson 70cl",
			Code:     "SP-0001",
			Category: "S",
			UOM:      decimal.NewFromInt(20),
		})

		require.NoError(t, err)
		assert.Equal(t, "Jameson 70cl", resp.Name)
		assert.Equal(t, "S", resp.Category)
		assert.True(t, resp.Active)
		repo.AssertExpectations(t)
		bus.AssertExpectations(t)
	})

	t.Run("rejects duplicate code", func(t *testing.T) {
		repo := new(MockStockItemRepository)
		service := NewStockItemService(repo, nil)

		repo.On("ExistsByCode", mock.Anything, hotelID, "SP-0001").Return(true, nil)

		_, err := service.Create(context.Background(), hotelID, CreateStockItemRequest{
			Name:     "Jameson 70cl",
			Code:     "SP-0001",
			Category: "S",
			UOM:      decimal.NewFromInt(20),
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "already exists")
	})

	t.Run("rejects invalid configuration without saving", func(t *testing.T) {
		repo := new(MockStockItemRepository)
		service := NewStockItemService(repo, nil)

		repo.On("ExistsByCode", mock.Anything, hotelID, "MN-0001").Return(false, nil)

		_, err := service.Create(context.Background(), hotelID, CreateStockItemRequest{
			Name:     "Orange Juice",
			Code:     "MN-0001",
			Category: "M",
			Subcategory: "JUICES",
			UOM:      decimal.NewFromInt(12),
		})

		require.Error(t, err)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestStockItemService_AssignCost(t *testing.T) {
	hotelID := uuid.New()
	item := newTestItem(t, hotelID)

	repo := new(MockStockItemRepository)
	bus := new(MockEventBus)
	service := NewStockItemService(repo, bus)

	repo.On("FindByIDForHotel", mock.Anything, hotelID, item.ID).Return(item, nil)
	repo.On("Save", mock.Anything, item).Return(nil)
	bus.On("Publish", mock.Anything, mock.Anything).Return(nil)

	resp, err := service.AssignCost(context.Background(), hotelID, item.ID, AssignCostRequest{
		UnitCost: decimal.NewFromInt(30),
	})

	require.NoError(t, err)
	require.NotNil(t, resp.ValuationCost)
	// 30 per bottle of 20 servings
	assert.True(t, decimal.NewFromFloat(1.5).Equal(*resp.ValuationCost))
	require.NotNil(t, resp.BottleCost)
	assert.Equal(t, "30.00", *resp.BottleCost)
	repo.AssertExpectations(t)
}

func TestStockItemService_GetByID(t *testing.T) {
	hotelID := uuid.New()
	item := newTestItem(t, hotelID)

	repo := new(MockStockItemRepository)
	service := NewStockItemService(repo, nil)

	repo.On("FindByIDForHotel", mock.Anything, hotelID, item.ID).Return(item, nil)

	resp, err := service.GetByID(context.Background(), hotelID, item.ID)

	require.NoError(t, err)
	assert.Equal(t, item.ID, resp.ID)
	assert.Nil(t, resp.ValuationCost)
}

func TestStockItemService_List(t *testing.T) {
	hotelID := uuid.New()
	items := []stock.StockItem{*newTestItem(t, hotelID)}

	repo := new(MockStockItemRepository)
	service := NewStockItemService(repo, nil)

	repo.On("FindActiveForHotel", mock.Anything, hotelID, mock.Anything).Return(items, nil)
	repo.On("CountForHotel", mock.Anything, hotelID, mock.Anything).Return(int64(1), nil)

	resp, total, err := service.List(context.Background(), hotelID, StockItemListFilter{
		ActiveOnly: true,
		Page:       1,
		PageSize:   20,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, resp, 1)
}
