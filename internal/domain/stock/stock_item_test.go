package stock

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestItem(t *testing.T, hotelID uuid.UUID) *StockItem {
	t.Helper()
	item, err := NewStockItem(hotelID, "Guinness 30L Keg", "DR-0001", CategoryDraught, SubcategoryNone,
		decimal.NewFromFloat(52.8), decimal.Zero, decimal.Zero)
	require.NoError(t, err)
	return item
}

func TestNewStockItem(t *testing.T) {
	hotelID := uuid.New()

	t.Run("creates item with valid inputs", func(t *testing.T) {
		item := createTestItem(t, hotelID)

		assert.NotEqual(t, uuid.Nil, item.ID)
		assert.Equal(t, hotelID, item.HotelID)
		assert.Equal(t, "Guinness 30L Keg", item.Name)
		assert.Equal(t, CategoryDraught, item.Category)
		assert.True(t, item.Active)
		assert.False(t, item.HasCost())
		assert.Len(t, item.GetDomainEvents(), 1)
	})

	t.Run("fails with empty name", func(t *testing.T) {
		_, err := NewStockItem(hotelID, "", "DR-0001", CategoryDraught, SubcategoryNone,
			decimal.NewFromInt(1), decimal.Zero, decimal.Zero)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Item name cannot be empty")
	})

	t.Run("fails with unknown category", func(t *testing.T) {
		_, err := NewStockItem(hotelID, "Oddity", "XX-0001", Category("X"), SubcategoryNone,
			decimal.NewFromInt(1), decimal.Zero, decimal.Zero)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Unknown stock category")
	})

	t.Run("fails with unknown minerals subcategory", func(t *testing.T) {
		_, err := NewStockItem(hotelID, "Mystery Mixer", "MN-0001", CategoryMinerals, MineralSubcategory("weird"),
			decimal.NewFromInt(24), decimal.Zero, decimal.Zero)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Unknown minerals subcategory")
	})

	t.Run("fails with invalid unit configuration", func(t *testing.T) {
		_, err := NewStockItem(hotelID, "Orange Juice", "MN-0002", CategoryMinerals, SubcategoryJuices,
			decimal.NewFromInt(12), decimal.Zero, decimal.NewFromInt(200))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Bottle size must be positive")
	})
}

func TestStockItem_AssignCost(t *testing.T) {
	item := createTestItem(t, uuid.New())

	t.Run("derives per-serving valuation cost", func(t *testing.T) {
		err := item.AssignCost(decimal.NewFromFloat(2.64))

		require.NoError(t, err)
		require.True(t, item.HasCost())
		// 2.64 per keg of 52.8 pints
		assert.True(t, decimal.NewFromFloat(0.05).Equal(item.ValuationCost.Decimal),
			"got %s", item.ValuationCost.Decimal)
	})

	t.Run("fails with negative cost", func(t *testing.T) {
		err := item.AssignCost(decimal.NewFromInt(-1))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot be negative")
	})
}

func TestStockItem_UpdateConfiguration(t *testing.T) {
	item := createTestItem(t, uuid.New())
	require.NoError(t, item.AssignCost(decimal.NewFromFloat(2.64)))

	t.Run("clears valuation cost on change", func(t *testing.T) {
		err := item.UpdateConfiguration(decimal.NewFromFloat(88), decimal.Zero, decimal.Zero)

		require.NoError(t, err)
		assert.True(t, decimal.NewFromFloat(88).Equal(item.UOM))
		assert.False(t, item.HasCost())
	})

	t.Run("rejects invalid configuration", func(t *testing.T) {
		err := item.UpdateConfiguration(decimal.Zero, decimal.Zero, decimal.Zero)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Units per container must be positive")
	})
}

func TestStockItem_Lifecycle(t *testing.T) {
	item := createTestItem(t, uuid.New())

	item.Deactivate()
	assert.False(t, item.Active)

	// deactivating twice does not emit another event
	events := len(item.GetDomainEvents())
	item.Deactivate()
	assert.Len(t, item.GetDomainEvents(), events)

	item.Activate()
	assert.True(t, item.Active)

	require.NoError(t, item.Rename("Guinness 30L"))
	assert.Equal(t, "Guinness 30L", item.Name)

	err := item.Rename("")
	require.Error(t, err)
}
