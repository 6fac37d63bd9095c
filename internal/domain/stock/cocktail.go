package stock

import (
	"github.com/shopspring/decimal"
)

// CocktailUsage is the read-only cocktail draw-down overlay of a line.
// Available quantities are cocktail consumption not yet merged into
// the movement fields; merged quantities were already folded into
// waste or sales by an earlier merge. The overlay never participates
// in expected/counted/variance arithmetic.
type CocktailUsage struct {
	AvailableQty decimal.Decimal `json:"available_qty"`
	MergedQty    decimal.Decimal `json:"merged_qty"`
}

// AvailableValue prices the unmerged draw-down at the line's frozen
// per-serving cost.
func (c CocktailUsage) AvailableValue(valuationCost decimal.Decimal) decimal.Decimal {
	return c.AvailableQty.Mul(valuationCost)
}

// MergedValue prices the already-merged draw-down at the same cost.
func (c CocktailUsage) MergedValue(valuationCost decimal.Decimal) decimal.Decimal {
	return c.MergedQty.Mul(valuationCost)
}

// CanMerge reports whether an external merge operation has anything to
// fold into the movement fields.
func (c CocktailUsage) CanMerge() bool {
	return c.AvailableQty.IsPositive()
}
