package stock

import (
	"github.com/nlekkerman/HotelMateBackend-sub002/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Multi-level conversion between a scalar bottle/servings quantity and
// the case -> bottle -> ml container hierarchy used for juices and other
// cases-and-partial-bottle goods. All arithmetic is fixed-point decimal;
// binary floats are never involved, so re-composition is exact.

// ContainerBreakdown is the three-level display form of a bottle
// quantity: whole cases, whole bottles, and the remaining milliliters
// of a partially used bottle.
type ContainerBreakdown struct {
	Cases   int64
	Bottles int64
	ML      int64
}

// BottlesToCasesBottlesML decomposes a non-negative total bottle count
// (which may carry a fractional bottle) into whole cases, whole
// bottles, and ml of the open bottle. The ml part is truncated to a
// whole milliliter.
func BottlesToCasesBottlesML(totalBottles, bottleSizeML, bottlesPerCase decimal.Decimal) (ContainerBreakdown, error) {
	if err := validateContainerConfig(bottleSizeML, bottlesPerCase); err != nil {
		return ContainerBreakdown{}, err
	}
	if totalBottles.IsNegative() {
		return ContainerBreakdown{}, shared.NewDomainError("INVALID_QUANTITY", "Bottle quantity cannot be negative")
	}

	cases := totalBottles.Div(bottlesPerCase).Floor()
	remainder := totalBottles.Sub(cases.Mul(bottlesPerCase))
	wholeBottles := remainder.Floor()
	ml := remainder.Sub(wholeBottles).Mul(bottleSizeML).Truncate(0)

	return ContainerBreakdown{
		Cases:   cases.IntPart(),
		Bottles: wholeBottles.IntPart(),
		ML:      ml.IntPart(),
	}, nil
}

// CasesBottlesMLToBottles is the exact inverse of
// BottlesToCasesBottlesML: it re-composes a breakdown into a scalar
// bottle count. For all valid breakdowns (non-negative parts,
// ml < bottleSizeML) the round trip reproduces the breakdown.
func CasesBottlesMLToBottles(b ContainerBreakdown, bottleSizeML, bottlesPerCase decimal.Decimal) (decimal.Decimal, error) {
	if err := validateContainerConfig(bottleSizeML, bottlesPerCase); err != nil {
		return decimal.Zero, err
	}
	if b.Cases < 0 || b.Bottles < 0 || b.ML < 0 {
		return decimal.Zero, shared.NewDomainError("INVALID_QUANTITY", "Container breakdown parts cannot be negative")
	}

	wholeBottles := decimal.NewFromInt(b.Cases).Mul(bottlesPerCase).Add(decimal.NewFromInt(b.Bottles))
	fraction := decimal.NewFromInt(b.ML).Div(bottleSizeML)
	return wholeBottles.Add(fraction), nil
}

// CasesBottlesMLToServings converts a container breakdown into the
// servings scalar the stocktake engine computes in. Whole bottles
// contribute bottleSizeML/servingSizeML servings each; the open
// bottle's ml contribute ml/servingSizeML.
func CasesBottlesMLToServings(b ContainerBreakdown, bottleSizeML, bottlesPerCase, servingSizeML decimal.Decimal) (decimal.Decimal, error) {
	if servingSizeML.Sign() <= 0 {
		return decimal.Zero, shared.NewDomainError("CONFIGURATION_ERROR", "Serving size must be positive")
	}
	if err := validateContainerConfig(bottleSizeML, bottlesPerCase); err != nil {
		return decimal.Zero, err
	}
	if b.Cases < 0 || b.Bottles < 0 || b.ML < 0 {
		return decimal.Zero, shared.NewDomainError("INVALID_QUANTITY", "Container breakdown parts cannot be negative")
	}

	wholeBottles := decimal.NewFromInt(b.Cases).Mul(bottlesPerCase).Add(decimal.NewFromInt(b.Bottles))
	servingsPerBottle := bottleSizeML.Div(servingSizeML)
	fromBottles := wholeBottles.Mul(servingsPerBottle)
	fromOpenBottle := decimal.NewFromInt(b.ML).Div(servingSizeML)
	return fromBottles.Add(fromOpenBottle), nil
}

// ServingsToCasesBottlesML converts a non-negative servings scalar back
// into the container hierarchy.
func ServingsToCasesBottlesML(servings, bottleSizeML, bottlesPerCase, servingSizeML decimal.Decimal) (ContainerBreakdown, error) {
	if servingSizeML.Sign() <= 0 {
		return ContainerBreakdown{}, shared.NewDomainError("CONFIGURATION_ERROR", "Serving size must be positive")
	}
	if err := validateContainerConfig(bottleSizeML, bottlesPerCase); err != nil {
		return ContainerBreakdown{}, err
	}

	totalBottles := servings.Mul(servingSizeML).Div(bottleSizeML)
	return BottlesToCasesBottlesML(totalBottles, bottleSizeML, bottlesPerCase)
}

func validateContainerConfig(bottleSizeML, bottlesPerCase decimal.Decimal) error {
	if bottleSizeML.Sign() <= 0 {
		return shared.NewDomainError("CONFIGURATION_ERROR", "Bottle size must be positive")
	}
	if bottlesPerCase.Sign() <= 0 {
		return shared.NewDomainError("CONFIGURATION_ERROR", "Bottles per case must be positive")
	}
	return nil
}
