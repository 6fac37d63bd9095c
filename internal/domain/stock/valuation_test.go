package stock

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMovements_ExpectedQuantity(t *testing.T) {
	m := Movements{
		OpeningQty:   decimal.NewFromInt(100),
		Purchases:    decimal.NewFromInt(48),
		Sales:        decimal.NewFromInt(60),
		Waste:        decimal.NewFromInt(2),
		TransfersIn:  decimal.NewFromInt(12),
		TransfersOut: decimal.NewFromInt(6),
		Adjustments:  decimal.NewFromInt(-1),
	}

	expected := m.ExpectedQuantity()

	// 100 + 48 - 60 - 2 + 12 - 6 - 1
	assert.True(t, decimal.NewFromInt(91).Equal(expected), "got %s", expected)
}

func TestMovements_ExpectedQuantityZeroValue(t *testing.T) {
	var m Movements
	assert.True(t, m.ExpectedQuantity().IsZero())
}

func TestMovements_ExpectedQuantityIgnoresManualValues(t *testing.T) {
	m := Movements{
		OpeningQty: decimal.NewFromInt(100),
		Purchases:  decimal.NewFromInt(48),
		Sales:      decimal.NewFromInt(60),
	}
	base := m.ExpectedQuantity()

	m.ManualPurchasesValue = decimal.NewFromFloat(120.50)
	m.ManualWasteValue = decimal.NewFromFloat(9.99)
	m.ManualSalesValue = decimal.NewFromFloat(315)

	assert.True(t, base.Equal(m.ExpectedQuantity()), "manual values must not move the expected quantity")
}

func cost(v float64) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: decimal.NewFromFloat(v), Valid: true}
}

func TestComputeLine(t *testing.T) {
	spec := mustResolve(t, CategoryBottled, SubcategoryNone, 12, 0, 0)

	t.Run("derives quantities values and display", func(t *testing.T) {
		derived, err := ComputeLine(LineInputs{
			Spec: spec,
			Movements: Movements{
				OpeningQty: decimal.NewFromInt(30),
				Purchases:  decimal.NewFromInt(24),
				Sales:      decimal.NewFromInt(25),
			},
			CountedFull:    decimal.NewFromInt(2),
			CountedPartial: decimal.NewFromInt(3),
			ValuationCost:  cost(1.25),
		})

		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(29).Equal(derived.ExpectedQty), "expected %s", derived.ExpectedQty)
		assert.True(t, decimal.NewFromInt(27).Equal(derived.CountedQty), "counted %s", derived.CountedQty)
		assert.True(t, decimal.NewFromInt(-2).Equal(derived.VarianceQty), "variance %s", derived.VarianceQty)
		assert.True(t, decimal.NewFromFloat(36.25).Equal(derived.ExpectedValue))
		assert.True(t, decimal.NewFromFloat(33.75).Equal(derived.CountedValue))
		assert.True(t, decimal.NewFromFloat(-2.5).Equal(derived.VarianceValue))

		assert.Equal(t, DisplayPair{FullUnits: "2", PartialUnits: "5"}, derived.Display.Expected)
		assert.Equal(t, DisplayPair{FullUnits: "2", PartialUnits: "3"}, derived.Display.Counted)
		assert.Equal(t, DisplayPair{FullUnits: "-1", PartialUnits: "10"}, derived.Display.Variance)
	})

	t.Run("variance value equals both identities exactly", func(t *testing.T) {
		derived, err := ComputeLine(LineInputs{
			Spec: spec,
			Movements: Movements{
				OpeningQty: decimal.NewFromFloat(17.35),
				Purchases:  decimal.NewFromFloat(3.11),
			},
			CountedFull:    decimal.NewFromInt(1),
			CountedPartial: decimal.NewFromFloat(7.89),
			ValuationCost:  cost(0.37),
		})

		require.NoError(t, err)
		assert.True(t, derived.VarianceValue.Equal(derived.CountedValue.Sub(derived.ExpectedValue)))
		assert.True(t, derived.VarianceValue.Equal(derived.VarianceQty.Mul(decimal.NewFromFloat(0.37))))
	})

	t.Run("over-count renders through the same dispatcher", func(t *testing.T) {
		unit := mustResolve(t, CategorySpirits, SubcategoryNone, 1, 0, 0)

		derived, err := ComputeLine(LineInputs{
			Spec:          unit,
			Movements:     Movements{OpeningQty: decimal.NewFromInt(10)},
			CountedFull:   decimal.NewFromInt(12),
			ValuationCost: cost(2),
		})

		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(2).Equal(derived.VarianceQty))
		assert.True(t, decimal.NewFromInt(4).Equal(derived.VarianceValue))
		assert.Equal(t, DisplayPair{FullUnits: "2", PartialUnits: "0.00"}, derived.Display.Variance)
	})

	t.Run("fails without valuation cost", func(t *testing.T) {
		_, err := ComputeLine(LineInputs{
			Spec:        spec,
			CountedFull: decimal.NewFromInt(1),
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "no valuation cost")
	})

	t.Run("fails with unresolved spec", func(t *testing.T) {
		_, err := ComputeLine(LineInputs{
			ValuationCost: cost(1),
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "not resolved")
	})
}

func TestCocktailUsage(t *testing.T) {
	usage := CocktailUsage{
		AvailableQty: decimal.NewFromFloat(4.5),
		MergedQty:    decimal.NewFromInt(2),
	}
	unitCost := decimal.NewFromInt(3)

	assert.True(t, decimal.NewFromFloat(13.5).Equal(usage.AvailableValue(unitCost)))
	assert.True(t, decimal.NewFromInt(6).Equal(usage.MergedValue(unitCost)))
	assert.True(t, usage.CanMerge())

	assert.False(t, CocktailUsage{}.CanMerge())
}
