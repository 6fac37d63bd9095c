package stock

import (
	"github.com/shopspring/decimal"

	"github.com/nlekkerman/HotelMateBackend-sub002/internal/domain/shared"
)

// UnitSpec is the resolved unit configuration of a stock item: how many
// display units make a full container, the bottle and serving sizes,
// and the render/compose pair for its category. It is a value object;
// resolution happens once and the selected behavior never changes for
// the lifetime of the spec.
type UnitSpec struct {
	Category      Category
	Subcategory   MineralSubcategory
	UOM           decimal.Decimal
	SizeValueML   decimal.Decimal
	ServingSizeML decimal.Decimal

	render  renderFunc
	compose composeFunc
}

// ResolveUnitSpec validates the unit configuration against the category
// and selects the display behavior. Unknown categories fall back to the
// bottles-and-fraction rendering; nonsensical units for the selected
// behavior are configuration errors.
func ResolveUnitSpec(category Category, subcategory MineralSubcategory, uom, sizeValueML, servingSizeML decimal.Decimal) (UnitSpec, error) {
	spec := UnitSpec{
		Category:      category,
		Subcategory:   subcategory,
		UOM:           uom,
		SizeValueML:   sizeValueML,
		ServingSizeML: servingSizeML,
	}

	switch category {
	case CategoryDraught:
		spec.render = renderContainersAndRemainder(PrecisionPints)
		spec.compose = composeLinear
	case CategoryBottled:
		spec.render = renderContainersAndRemainder(PrecisionWholeUnits)
		spec.compose = composeLinear
	case CategorySpirits, CategoryWine:
		spec.render = renderContainersAndRemainder(PrecisionBottle)
		spec.compose = composeLinear
	case CategoryMinerals:
		switch subcategory {
		case SubcategorySoftDrinks, SubcategoryCordials:
			spec.render = renderContainersAndRemainder(PrecisionWholeUnits)
			spec.compose = composeLinear
		case SubcategorySyrups:
			spec.render = renderWholeAndFraction(PrecisionSyrupBottle)
			spec.compose = composeWholeAndFraction
		case SubcategoryBulkJuices:
			spec.render = renderWholeAndFraction(PrecisionBottle)
			spec.compose = composeWholeAndFraction
		case SubcategoryJuices:
			spec.render = renderCasesBottlesML
			spec.compose = composeCasesBottlesML
		case SubcategoryBIB:
			spec.render = renderBoxesAndLiters
			spec.compose = composeBoxesAndLiters
		default:
			spec.render = renderContainersAndRemainder(PrecisionBottle)
			spec.compose = composeLinear
		}
	default:
		spec.render = renderContainersAndRemainder(PrecisionBottle)
		spec.compose = composeLinear
	}

	if err := spec.validate(); err != nil {
		return UnitSpec{}, err
	}
	return spec, nil
}

func (s UnitSpec) validate() error {
	if !s.UOM.IsPositive() {
		return shared.NewDomainError("CONFIGURATION_ERROR", "Units per container must be positive")
	}
	if s.usesBottleSize() && !s.SizeValueML.IsPositive() {
		return shared.NewDomainError("CONFIGURATION_ERROR", "Bottle size must be positive for this category")
	}
	if s.usesServingSize() && !s.ServingSizeML.IsPositive() {
		return shared.NewDomainError("CONFIGURATION_ERROR", "Serving size must be positive for this category")
	}
	if s.usesBottleCount() && !s.UOM.Equal(decimal.NewFromInt(1)) {
		return shared.NewDomainError("CONFIGURATION_ERROR", "Units per container must be 1 for bottle-counted goods")
	}
	return nil
}

func (s UnitSpec) usesBottleSize() bool {
	return s.Category == CategoryMinerals && s.Subcategory == SubcategoryJuices
}

// usesBottleCount marks the subcategories whose raw quantity is already
// a bottle count, decomposed as whole bottles plus a fraction. That
// decomposition satisfies raw = full*uom + partial only when uom is 1,
// so any other uom is a configuration error.
func (s UnitSpec) usesBottleCount() bool {
	return s.Category == CategoryMinerals &&
		(s.Subcategory == SubcategorySyrups || s.Subcategory == SubcategoryBulkJuices)
}

func (s UnitSpec) usesServingSize() bool {
	return s.Category == CategoryMinerals &&
		(s.Subcategory == SubcategoryJuices || s.Subcategory == SubcategoryBIB)
}

// IsResolved reports whether the spec carries a selected display
// behavior. The zero UnitSpec is unresolved and must not be rendered.
func (s UnitSpec) IsResolved() bool {
	return s.render != nil && s.compose != nil
}

// Render decomposes a raw servings quantity into the category's display
// pair. An exact zero renders as ("0", "0") in every category.
func (s UnitSpec) Render(qty decimal.Decimal) DisplayPair {
	if qty.IsZero() {
		return zeroDisplay
	}
	return s.render(s, qty)
}

// RenderSet renders the four line quantities through the same behavior.
func (s UnitSpec) RenderSet(opening, expected, counted, variance decimal.Decimal) DisplaySet {
	return DisplaySet{
		Opening:  s.Render(opening),
		Expected: s.Render(expected),
		Counted:  s.Render(counted),
		Variance: s.Render(variance),
	}
}

// Compose converts counted display units (full containers plus partial)
// back to the raw servings scalar.
func (s UnitSpec) Compose(full, partial decimal.Decimal) decimal.Decimal {
	return s.compose(s, full, partial)
}

// CaseCost derives the per-case cost for case-packed goods. The second
// return is false for categories valued per serving or per bottle.
func (s UnitSpec) CaseCost(valuationCost decimal.Decimal) (decimal.Decimal, bool) {
	switch {
	case s.Category == CategoryBottled:
	case s.Category == CategoryMinerals &&
		(s.Subcategory == SubcategorySoftDrinks || s.Subcategory == SubcategoryCordials || s.Subcategory == SubcategoryJuices):
	default:
		return decimal.Decimal{}, false
	}
	return valuationCost.Mul(s.UOM), true
}

// BottleCost derives the per-bottle cost for spirits, where the
// valuation cost is per serving and UOM is servings per bottle.
func (s UnitSpec) BottleCost(valuationCost decimal.Decimal) (decimal.Decimal, bool) {
	if s.Category != CategorySpirits {
		return decimal.Decimal{}, false
	}
	return valuationCost.Mul(s.UOM), true
}
