package stock

// Category identifies the unit system a stock item is counted in.
// The set is closed: every category maps to exactly one display
// decomposition picked when the item's UnitSpec is resolved.
type Category string

const (
	CategoryDraught  Category = "D" // kegs + pints
	CategoryBottled  Category = "B" // cases + bottles
	CategorySpirits  Category = "S" // bottles + fractional bottle
	CategoryWine     Category = "W" // bottles + fractional bottle
	CategoryMinerals Category = "M" // per-subcategory container hierarchy
)

// IsValid checks if the category is a known Category
func (c Category) IsValid() bool {
	switch c {
	case CategoryDraught, CategoryBottled, CategorySpirits, CategoryWine, CategoryMinerals:
		return true
	}
	return false
}

// String returns the string representation of Category
func (c Category) String() string {
	return string(c)
}

// MineralSubcategory refines the Minerals category into its six
// incompatible container hierarchies. Empty for every other category.
type MineralSubcategory string

const (
	SubcategoryNone       MineralSubcategory = ""
	SubcategorySoftDrinks MineralSubcategory = "SOFT_DRINKS" // cases + bottles
	SubcategorySyrups     MineralSubcategory = "SYRUPS"      // bottles + fractional bottle
	SubcategoryJuices     MineralSubcategory = "JUICES"      // cases + bottles + ml
	SubcategoryCordials   MineralSubcategory = "CORDIALS"    // cases + bottles
	SubcategoryBIB        MineralSubcategory = "BIB"         // boxes + liters
	SubcategoryBulkJuices MineralSubcategory = "BULK_JUICES" // bottles + fractional bottle
)

// IsValid checks if the subcategory is a known MineralSubcategory
func (s MineralSubcategory) IsValid() bool {
	switch s {
	case SubcategoryNone, SubcategorySoftDrinks, SubcategorySyrups, SubcategoryJuices,
		SubcategoryCordials, SubcategoryBIB, SubcategoryBulkJuices:
		return true
	}
	return false
}

// String returns the string representation of MineralSubcategory
func (s MineralSubcategory) String() string {
	return string(s)
}
