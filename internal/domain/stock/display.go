package stock

import (
	"github.com/shopspring/decimal"
)

// DisplayPair is the human-countable two-part rendering of a servings
// scalar: full containers and the partial remainder, both already
// rounded to the category's display precision. Consumers render these
// strings as-is; re-deriving them from the raw scalar with different
// rounding causes audit drift between platforms.
type DisplayPair struct {
	FullUnits    string `json:"full_units"`
	PartialUnits string `json:"partial_units"`
}

// DisplaySet carries the four raw quantities of a stocktake line
// rendered through the same dispatch table, so presentation stays
// consistent across opening, expected, counted and variance.
type DisplaySet struct {
	Opening  DisplayPair `json:"opening"`
	Expected DisplayPair `json:"expected"`
	Counted  DisplayPair `json:"counted"`
	Variance DisplayPair `json:"variance"`
}

var zeroDisplay = DisplayPair{FullUnits: "0", PartialUnits: "0"}

// renderFunc turns a raw servings quantity into the category's display
// pair. composeFunc is the inverse: counted display units back to the
// servings scalar. Both are selected once, when the UnitSpec resolves.
type (
	renderFunc  func(spec UnitSpec, qty decimal.Decimal) DisplayPair
	composeFunc func(spec UnitSpec, full, partial decimal.Decimal) decimal.Decimal
)

// floorSplit decomposes qty into floor(qty/per) full units and the
// remainder qty - full*per. Floor division keeps the remainder in
// [0, per) even for negative quantities, so a negative variance renders
// as a negative full part with a positive partial part. That mirrors
// the historical rendering; see the sign-convention note in DESIGN.md.
func floorSplit(qty, per decimal.Decimal) (full, remainder decimal.Decimal) {
	full = qty.Div(per).Floor()
	remainder = qty.Sub(full.Mul(per))
	return full, remainder
}

// renderContainersAndRemainder handles every category whose partial is
// the remainder itself: kegs+pints, cases+bottles, bottles+fraction.
func renderContainersAndRemainder(precision DisplayPrecision) renderFunc {
	return func(spec UnitSpec, qty decimal.Decimal) DisplayPair {
		full, remainder := floorSplit(qty, spec.UOM)
		return DisplayPair{
			FullUnits:    full.String(),
			PartialUnits: precision.Format(remainder),
		}
	}
}

// renderWholeAndFraction handles syrups and bulk juices: the quantity
// is already a bottle count, split into whole bottles and the
// fractional open bottle.
func renderWholeAndFraction(precision DisplayPrecision) renderFunc {
	return func(_ UnitSpec, qty decimal.Decimal) DisplayPair {
		full := qty.Floor()
		return DisplayPair{
			FullUnits:    full.String(),
			PartialUnits: precision.Format(qty.Sub(full)),
		}
	}
}

// renderCasesBottlesML handles juices: servings -> total bottles via the
// serving/bottle sizes, then cases plus the bottles-and-ml remainder
// combined as one decimal bottle count.
func renderCasesBottlesML(spec UnitSpec, qty decimal.Decimal) DisplayPair {
	totalBottles := qty.Mul(spec.ServingSizeML).Div(spec.SizeValueML)
	full, remainder := floorSplit(totalBottles, spec.UOM)
	return DisplayPair{
		FullUnits:    full.String(),
		PartialUnits: PrecisionBottle.Format(remainder),
	}
}

// renderBoxesAndLiters handles bag-in-box goods: servings -> liters via
// the serving size, then whole boxes plus the liters remainder.
func renderBoxesAndLiters(spec UnitSpec, qty decimal.Decimal) DisplayPair {
	liters := qty.Mul(spec.ServingSizeML).Div(mlPerLiter)
	full, remainder := floorSplit(liters, spec.UOM)
	return DisplayPair{
		FullUnits:    full.String(),
		PartialUnits: PrecisionLiters.Format(remainder),
	}
}

var mlPerLiter = decimal.NewFromInt(1000)

// composeLinear inverts the remainder renderers: raw = full*uom + partial.
func composeLinear(spec UnitSpec, full, partial decimal.Decimal) decimal.Decimal {
	return full.Mul(spec.UOM).Add(partial)
}

// composeWholeAndFraction inverts the bottle-count renderers.
func composeWholeAndFraction(_ UnitSpec, full, partial decimal.Decimal) decimal.Decimal {
	return full.Add(partial)
}

// composeCasesBottlesML inverts the juice renderer back to servings.
func composeCasesBottlesML(spec UnitSpec, full, partial decimal.Decimal) decimal.Decimal {
	totalBottles := full.Mul(spec.UOM).Add(partial)
	return totalBottles.Mul(spec.SizeValueML).Div(spec.ServingSizeML)
}

// composeBoxesAndLiters inverts the bag-in-box renderer back to servings.
func composeBoxesAndLiters(spec UnitSpec, full, partial decimal.Decimal) decimal.Decimal {
	liters := full.Mul(spec.UOM).Add(partial)
	return liters.Mul(mlPerLiter).Div(spec.ServingSizeML)
}
