package stock

import "github.com/shopspring/decimal"

// RoundingMode selects how a display quantity is brought to its
// category precision.
type RoundingMode int

const (
	// RoundHalfUp rounds to the nearest step, halves away from zero.
	RoundHalfUp RoundingMode = iota
	// RoundTruncate drops digits beyond the precision.
	RoundTruncate
)

// DisplayPrecision is the per-category rounding rule for partial
// display units. It replaces precision literals scattered through the
// conversion code with a single value object supplied by the UnitSpec.
type DisplayPrecision struct {
	Places int32
	Mode   RoundingMode
}

// Display precisions per category, as reconciled against manual audits.
var (
	PrecisionWholeUnits  = DisplayPrecision{Places: 0, Mode: RoundTruncate}
	PrecisionPints       = DisplayPrecision{Places: 2, Mode: RoundHalfUp}
	PrecisionBottle      = DisplayPrecision{Places: 2, Mode: RoundHalfUp}
	PrecisionSyrupBottle = DisplayPrecision{Places: 3, Mode: RoundHalfUp}
	PrecisionLiters      = DisplayPrecision{Places: 2, Mode: RoundHalfUp}
)

// Apply quantizes d to the precision.
func (p DisplayPrecision) Apply(d decimal.Decimal) decimal.Decimal {
	if p.Mode == RoundTruncate {
		return d.Truncate(p.Places)
	}
	return d.Round(p.Places)
}

// Format quantizes d and renders it with a fixed number of decimals,
// e.g. "31.80" at two places, "5" at zero places.
func (p DisplayPrecision) Format(d decimal.Decimal) string {
	return p.Apply(d).StringFixed(p.Places)
}
