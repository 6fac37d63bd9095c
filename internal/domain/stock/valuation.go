package stock

import (
	"github.com/shopspring/decimal"

	"github.com/nlekkerman/HotelMateBackend-sub002/internal/domain/shared"
)

// LineInputs is everything the engine needs to value one stocktake
// line: the resolved unit spec, the recorded movements, the physical
// count in display units, and the per-serving cost frozen when the
// stocktake opened. ValuationCost is a NullDecimal because items can
// reach a stocktake before costing is set up; that is a configuration
// error, not a zero.
type LineInputs struct {
	Spec          UnitSpec
	Movements     Movements
	CountedFull   decimal.Decimal
	CountedPartial decimal.Decimal
	ValuationCost decimal.NullDecimal
}

// LineDerived holds everything the engine computes for one line. The
// decimal scalars are exact (no intermediate rounding); the display
// set carries the rounded presentation strings.
type LineDerived struct {
	ExpectedQty   decimal.Decimal `json:"expected_qty"`
	CountedQty    decimal.Decimal `json:"counted_qty"`
	VarianceQty   decimal.Decimal `json:"variance_qty"`
	ExpectedValue decimal.Decimal `json:"expected_value"`
	CountedValue  decimal.Decimal `json:"counted_value"`
	VarianceValue decimal.Decimal `json:"variance_value"`
	Display       DisplaySet      `json:"display"`
}

// ComputeLine derives the quantities, values and display pairs of a
// single line. It is a pure function of its inputs; the same inputs
// always produce the same derived state regardless of when or where the
// computation runs.
//
// Values stay exact all the way through, so both identities hold as
// decimal equality, not approximation:
//
//	variance_value == counted_value - expected_value
//	variance_value == variance_qty  x valuation_cost
func ComputeLine(in LineInputs) (LineDerived, error) {
	if !in.Spec.IsResolved() {
		return LineDerived{}, shared.NewDomainError("CONFIGURATION_ERROR", "Item unit configuration is not resolved")
	}
	if !in.ValuationCost.Valid {
		return LineDerived{}, shared.NewDomainError("CONFIGURATION_ERROR", "Item has no valuation cost assigned")
	}
	cost := in.ValuationCost.Decimal

	expectedQty := in.Movements.ExpectedQuantity()
	countedQty := in.Spec.Compose(in.CountedFull, in.CountedPartial)
	varianceQty := countedQty.Sub(expectedQty)

	derived := LineDerived{
		ExpectedQty:   expectedQty,
		CountedQty:    countedQty,
		VarianceQty:   varianceQty,
		ExpectedValue: expectedQty.Mul(cost),
		CountedValue:  countedQty.Mul(cost),
		VarianceValue: varianceQty.Mul(cost),
		Display: in.Spec.RenderSet(
			in.Movements.OpeningQty,
			expectedQty,
			countedQty,
			varianceQty,
		),
	}
	return derived, nil
}
