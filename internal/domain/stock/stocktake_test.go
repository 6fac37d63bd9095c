package stock

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestStocktake(t *testing.T) *Stocktake {
	t.Helper()
	st, err := NewStocktake(uuid.New(), "STK-20260801-001", time.Now(), uuid.New(), "Niall")
	require.NoError(t, err)
	return st
}

func createCostedItem(t *testing.T, hotelID uuid.UUID, code string, category Category, subcategory MineralSubcategory, uom, unitCost float64) *StockItem {
	t.Helper()
	item, err := NewStockItem(hotelID, "Item "+code, code, category, subcategory,
		decimal.NewFromFloat(uom), decimal.Zero, decimal.Zero)
	require.NoError(t, err)
	require.NoError(t, item.AssignCost(decimal.NewFromFloat(unitCost)))
	return item
}

func TestNewStocktake(t *testing.T) {
	t.Run("creates stocktake with valid inputs", func(t *testing.T) {
		hotelID := uuid.New()
		creatorID := uuid.New()

		st, err := NewStocktake(hotelID, "STK-20260801-001", time.Now(), creatorID, "Niall")

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, st.ID)
		assert.Equal(t, hotelID, st.HotelID)
		assert.Equal(t, StocktakeStatusDraft, st.Status)
		assert.Equal(t, creatorID, st.CreatedByID)
		assert.Equal(t, 0, st.TotalItems)
		assert.True(t, st.TotalValue.IsZero())
		assert.Len(t, st.GetDomainEvents(), 1)
	})

	t.Run("fails with empty hotel ID", func(t *testing.T) {
		_, err := NewStocktake(uuid.Nil, "STK-001", time.Now(), uuid.New(), "Niall")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Hotel ID cannot be empty")
	})

	t.Run("fails with empty taking number", func(t *testing.T) {
		_, err := NewStocktake(uuid.New(), "", time.Now(), uuid.New(), "Niall")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Taking number cannot be empty")
	})

	t.Run("fails with empty creator", func(t *testing.T) {
		_, err := NewStocktake(uuid.New(), "STK-001", time.Now(), uuid.Nil, "Niall")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Creator ID cannot be empty")
	})
}

func TestStocktake_AddLine(t *testing.T) {
	st := createTestStocktake(t)
	item := createCostedItem(t, st.HotelID, "SP-0001", CategorySpirits, SubcategoryNone, 1, 2)

	t.Run("snapshots item onto the stocktake", func(t *testing.T) {
		err := st.AddLine(item, decimal.NewFromInt(10))

		require.NoError(t, err)
		require.Len(t, st.Lines, 1)
		line := st.Lines[0]
		assert.Equal(t, item.ID, line.ItemID)
		assert.Equal(t, item.Category, line.Category)
		assert.True(t, line.ValuationCost.Valid)
		assert.True(t, decimal.NewFromInt(10).Equal(line.Movements.OpeningQty))
		assert.Equal(t, 1, st.TotalItems)
	})

	t.Run("rejects duplicate item", func(t *testing.T) {
		err := st.AddLine(item, decimal.Zero)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "already exists")
	})

	t.Run("rejects item from another hotel", func(t *testing.T) {
		other := createCostedItem(t, uuid.New(), "SP-0002", CategorySpirits, SubcategoryNone, 1, 2)

		err := st.AddLine(other, decimal.Zero)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "different hotel")
	})

	t.Run("rejects inactive item", func(t *testing.T) {
		inactive := createCostedItem(t, st.HotelID, "SP-0003", CategorySpirits, SubcategoryNone, 1, 2)
		inactive.Deactivate()

		err := st.AddLine(inactive, decimal.Zero)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "not active")
	})

	t.Run("rejects add outside draft", func(t *testing.T) {
		require.NoError(t, st.StartCounting())
		extra := createCostedItem(t, st.HotelID, "SP-0004", CategorySpirits, SubcategoryNone, 1, 2)

		err := st.AddLine(extra, decimal.Zero)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "DRAFT")
	})
}

func TestStocktake_SnapshotIsFrozen(t *testing.T) {
	st := createTestStocktake(t)
	item := createCostedItem(t, st.HotelID, "SP-0001", CategorySpirits, SubcategoryNone, 1, 2)
	require.NoError(t, st.AddLine(item, decimal.NewFromInt(10)))

	// reprice the item after the line was created
	require.NoError(t, item.AssignCost(decimal.NewFromInt(99)))

	require.NoError(t, st.StartCounting())
	require.NoError(t, st.RecordLineCount(item.ID, decimal.NewFromInt(8), decimal.Zero, ""))

	// the line values at the cost frozen when it was added
	line := st.Lines[0]
	assert.True(t, decimal.NewFromInt(2).Equal(line.ValuationCost.Decimal))
	assert.True(t, decimal.NewFromInt(-4).Equal(line.Derived.VarianceValue), "got %s", line.Derived.VarianceValue)
}

func TestStocktake_RecordLineCount(t *testing.T) {
	st := createTestStocktake(t)
	spirit := createCostedItem(t, st.HotelID, "SP-0001", CategorySpirits, SubcategoryNone, 1, 2)
	bottled := createCostedItem(t, st.HotelID, "BT-0001", CategoryBottled, SubcategoryNone, 12, 18)

	require.NoError(t, st.AddLine(spirit, decimal.NewFromInt(10)))
	require.NoError(t, st.AddLine(bottled, decimal.NewFromInt(30)))
	require.NoError(t, st.StartCounting())

	t.Run("records count and computes derived state", func(t *testing.T) {
		err := st.RecordLineCount(spirit.ID, decimal.NewFromInt(9), decimal.NewFromFloat(0.5), "back bar")

		require.NoError(t, err)
		line := st.Lines[0]
		assert.True(t, line.Counted)
		assert.True(t, decimal.NewFromFloat(9.5).Equal(line.Derived.CountedQty))
		assert.True(t, decimal.NewFromFloat(-0.5).Equal(line.Derived.VarianceQty))
		assert.Equal(t, 1, st.CountedItems)
	})

	t.Run("totals sum derived values over counted lines", func(t *testing.T) {
		require.NoError(t, st.RecordLineCount(bottled.ID, decimal.NewFromInt(2), decimal.NewFromInt(4), ""))

		var expectedSum, countedSum, varianceSum decimal.Decimal
		for _, line := range st.Lines {
			expectedSum = expectedSum.Add(line.Derived.ExpectedValue)
			countedSum = countedSum.Add(line.Derived.CountedValue)
			varianceSum = varianceSum.Add(line.Derived.VarianceValue)
		}

		assert.True(t, st.TotalValue.Equal(expectedSum))
		assert.True(t, st.TotalCountedValue.Equal(countedSum))
		assert.True(t, st.TotalVarianceValue.Equal(varianceSum))
		assert.Equal(t, 2, st.VarianceItems)
	})

	t.Run("recounting does not double count", func(t *testing.T) {
		require.NoError(t, st.RecordLineCount(spirit.ID, decimal.NewFromInt(10), decimal.Zero, ""))

		assert.Equal(t, 2, st.CountedItems)
		assert.Equal(t, 1, st.VarianceItems)
	})

	t.Run("fails for unknown item", func(t *testing.T) {
		err := st.RecordLineCount(uuid.New(), decimal.NewFromInt(1), decimal.Zero, "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})

	t.Run("fails with negative count", func(t *testing.T) {
		err := st.RecordLineCount(spirit.ID, decimal.NewFromInt(-1), decimal.Zero, "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot be negative")
	})
}

func TestStocktake_RecordLineMovements(t *testing.T) {
	st := createTestStocktake(t)
	spirit := createCostedItem(t, st.HotelID, "SP-0001", CategorySpirits, SubcategoryNone, 1, 2)
	require.NoError(t, st.AddLine(spirit, decimal.NewFromInt(10)))
	require.NoError(t, st.StartCounting())
	require.NoError(t, st.RecordLineCount(spirit.ID, decimal.NewFromInt(9), decimal.Zero, ""))

	t.Run("late movement data recomputes a counted line", func(t *testing.T) {
		err := st.RecordLineMovements(spirit.ID, Movements{
			OpeningQty: decimal.NewFromInt(10),
			Purchases:  decimal.NewFromInt(2),
			Sales:      decimal.NewFromInt(3),
		})

		require.NoError(t, err)
		line := st.Lines[0]
		assert.True(t, decimal.NewFromInt(9).Equal(line.Derived.ExpectedQty))
		assert.True(t, line.Derived.VarianceQty.IsZero())
		assert.True(t, st.TotalVarianceValue.IsZero())
	})

	t.Run("rejected after submission", func(t *testing.T) {
		require.NoError(t, st.SubmitForApproval())

		err := st.RecordLineMovements(spirit.ID, Movements{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "DRAFT or COUNTING")
	})
}

func TestStocktake_CocktailOverlay(t *testing.T) {
	st := createTestStocktake(t)
	spirit := createCostedItem(t, st.HotelID, "SP-0001", CategorySpirits, SubcategoryNone, 1, 2)
	require.NoError(t, st.AddLine(spirit, decimal.NewFromInt(10)))
	require.NoError(t, st.StartCounting())
	require.NoError(t, st.RecordLineCount(spirit.ID, decimal.NewFromInt(8), decimal.Zero, ""))

	before := st.Lines[0].Derived
	totalBefore := st.TotalVarianceValue

	err := st.RecordCocktailUsage(spirit.ID, CocktailUsage{
		AvailableQty: decimal.NewFromFloat(1.5),
		MergedQty:    decimal.NewFromFloat(0.5),
	})

	require.NoError(t, err)
	line := st.Lines[0]
	assert.True(t, line.Cocktail.CanMerge())
	// the overlay never moves the derived numbers
	assert.True(t, before.ExpectedQty.Equal(line.Derived.ExpectedQty))
	assert.True(t, before.CountedQty.Equal(line.Derived.CountedQty))
	assert.True(t, before.VarianceValue.Equal(line.Derived.VarianceValue))
	assert.True(t, totalBefore.Equal(st.TotalVarianceValue))
}

func TestStocktake_StatusTransitions(t *testing.T) {
	t.Run("full happy path to approved", func(t *testing.T) {
		st := createTestStocktake(t)
		spirit := createCostedItem(t, st.HotelID, "SP-0001", CategorySpirits, SubcategoryNone, 1, 2)
		require.NoError(t, st.AddLine(spirit, decimal.NewFromInt(10)))

		require.NoError(t, st.StartCounting())
		assert.Equal(t, StocktakeStatusCounting, st.Status)
		assert.NotNil(t, st.StartedAt)

		require.NoError(t, st.RecordLineCount(spirit.ID, decimal.NewFromInt(10), decimal.Zero, ""))
		require.NoError(t, st.SubmitForApproval())
		assert.Equal(t, StocktakeStatusPendingApproval, st.Status)
		assert.True(t, st.IsComplete())

		approverID := uuid.New()
		require.NoError(t, st.Approve(approverID, "Aoife", "all good"))
		assert.Equal(t, StocktakeStatusApproved, st.Status)
		assert.Equal(t, approverID, *st.ApprovedByID)
	})

	t.Run("cannot start counting with no lines", func(t *testing.T) {
		st := createTestStocktake(t)

		err := st.StartCounting()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "no lines")
	})

	t.Run("cannot submit with uncounted lines", func(t *testing.T) {
		st := createTestStocktake(t)
		spirit := createCostedItem(t, st.HotelID, "SP-0001", CategorySpirits, SubcategoryNone, 1, 2)
		require.NoError(t, st.AddLine(spirit, decimal.Zero))
		require.NoError(t, st.StartCounting())

		err := st.SubmitForApproval()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Not all lines have been counted")
	})

	t.Run("reject requires a reason", func(t *testing.T) {
		st := createTestStocktake(t)
		spirit := createCostedItem(t, st.HotelID, "SP-0001", CategorySpirits, SubcategoryNone, 1, 2)
		require.NoError(t, st.AddLine(spirit, decimal.Zero))
		require.NoError(t, st.StartCounting())
		require.NoError(t, st.RecordLineCount(spirit.ID, decimal.Zero, decimal.Zero, ""))
		require.NoError(t, st.SubmitForApproval())

		err := st.Reject(uuid.New(), "Aoife", "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "reason is required")

		require.NoError(t, st.Reject(uuid.New(), "Aoife", "recount the cellar"))
		assert.Equal(t, StocktakeStatusRejected, st.Status)
	})

	t.Run("terminal states cannot transition", func(t *testing.T) {
		st := createTestStocktake(t)
		require.NoError(t, st.Cancel("duplicate entry"))
		assert.Equal(t, StocktakeStatusCancelled, st.Status)

		err := st.StartCounting()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Cannot transition")
	})
}

func TestStocktakeStatus_CanTransitionTo(t *testing.T) {
	assert.True(t, StocktakeStatusDraft.CanTransitionTo(StocktakeStatusCounting))
	assert.True(t, StocktakeStatusDraft.CanTransitionTo(StocktakeStatusCancelled))
	assert.False(t, StocktakeStatusDraft.CanTransitionTo(StocktakeStatusApproved))
	assert.True(t, StocktakeStatusCounting.CanTransitionTo(StocktakeStatusPendingApproval))
	assert.True(t, StocktakeStatusPendingApproval.CanTransitionTo(StocktakeStatusRejected))
	assert.False(t, StocktakeStatusApproved.CanTransitionTo(StocktakeStatusDraft))
	assert.False(t, StocktakeStatusCancelled.CanTransitionTo(StocktakeStatusCounting))
}

func TestStocktake_LineQueries(t *testing.T) {
	st := createTestStocktake(t)
	a := createCostedItem(t, st.HotelID, "SP-0001", CategorySpirits, SubcategoryNone, 1, 2)
	b := createCostedItem(t, st.HotelID, "SP-0002", CategorySpirits, SubcategoryNone, 1, 2)
	require.NoError(t, st.AddLine(a, decimal.NewFromInt(5)))
	require.NoError(t, st.AddLine(b, decimal.NewFromInt(5)))
	require.NoError(t, st.StartCounting())
	require.NoError(t, st.RecordLineCount(a.ID, decimal.NewFromInt(4), decimal.Zero, ""))

	assert.Len(t, st.GetUncountedLines(), 1)
	assert.Len(t, st.GetLinesWithVariance(), 1)
	assert.Equal(t, a.ID, st.GetLinesWithVariance()[0].ItemID)
	assert.InDelta(t, 50.0, st.GetProgress(), 0.001)
}

func TestStocktake_RemoveLine(t *testing.T) {
	st := createTestStocktake(t)
	a := createCostedItem(t, st.HotelID, "SP-0001", CategorySpirits, SubcategoryNone, 1, 2)
	require.NoError(t, st.AddLine(a, decimal.Zero))

	require.NoError(t, st.RemoveLine(a.ID))
	assert.Equal(t, 0, st.TotalItems)

	err := st.RemoveLine(a.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
