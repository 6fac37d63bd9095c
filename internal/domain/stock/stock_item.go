package stock

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nlekkerman/HotelMateBackend-sub002/internal/domain/shared"
)

// StockItem represents a sellable bar or cellar product and its unit
// configuration. It is the aggregate root for item setup: category,
// container sizing and costing. Stocktake lines snapshot this
// configuration when they are created, so later edits here never
// change historical counts.
type StockItem struct {
	shared.HotelAggregateRoot
	Name          string
	Code          string
	Category      Category
	Subcategory   MineralSubcategory
	UOM           decimal.Decimal // display units per full container
	SizeValueML   decimal.Decimal // bottle size, where the category uses one
	ServingSizeML decimal.Decimal // serving size, where the category uses one
	UnitCost      decimal.Decimal // cost per full container, as purchased
	ValuationCost decimal.NullDecimal // frozen cost per serving, set at cost assignment
	Active        bool
}

// NewStockItem creates a stock item after validating that the unit
// configuration resolves for the chosen category.
func NewStockItem(hotelID uuid.UUID, name, code string, category Category, subcategory MineralSubcategory, uom, sizeValueML, servingSizeML decimal.Decimal) (*StockItem, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Item name cannot be empty")
	}
	if code == "" {
		return nil, shared.NewDomainError("INVALID_CODE", "Item code cannot be empty")
	}
	if !category.IsValid() {
		return nil, shared.NewDomainError("INVALID_CATEGORY", "Unknown stock category")
	}
	if category == CategoryMinerals && !subcategory.IsValid() {
		return nil, shared.NewDomainError("INVALID_CATEGORY", "Unknown minerals subcategory")
	}

	if _, err := ResolveUnitSpec(category, subcategory, uom, sizeValueML, servingSizeML); err != nil {
		return nil, err
	}

	item := &StockItem{
		HotelAggregateRoot: shared.NewHotelAggregateRoot(hotelID),
		Name:               name,
		Code:               code,
		Category:           category,
		Subcategory:        subcategory,
		UOM:                uom,
		SizeValueML:        sizeValueML,
		ServingSizeML:      servingSizeML,
		Active:             true,
	}

	item.AddDomainEvent(NewStockItemCreatedEvent(item))

	return item, nil
}

// UnitSpec resolves the item's current unit configuration.
func (i *StockItem) UnitSpec() (UnitSpec, error) {
	return ResolveUnitSpec(i.Category, i.Subcategory, i.UOM, i.SizeValueML, i.ServingSizeML)
}

// AssignCost sets the purchase cost per full container and derives the
// per-serving valuation cost from it. The derived cost is what future
// stocktakes freeze; stocktakes opened before this call keep whatever
// they snapshotted.
func (i *StockItem) AssignCost(unitCost decimal.Decimal) error {
	if unitCost.IsNegative() {
		return shared.NewDomainError("INVALID_COST", "Unit cost cannot be negative")
	}
	if !i.UOM.IsPositive() {
		return shared.NewDomainError("CONFIGURATION_ERROR", "Units per container must be positive")
	}

	i.UnitCost = unitCost
	i.ValuationCost = decimal.NullDecimal{Decimal: unitCost.Div(i.UOM), Valid: true}
	i.UpdatedAt = time.Now()
	i.IncrementVersion()

	i.AddDomainEvent(NewStockItemCostAssignedEvent(i))

	return nil
}

// UpdateConfiguration replaces the unit configuration. The new
// configuration must resolve for the item's category. Valuation cost
// is cleared because a per-serving cost derived against the old UOM is
// meaningless after the change.
func (i *StockItem) UpdateConfiguration(uom, sizeValueML, servingSizeML decimal.Decimal) error {
	if _, err := ResolveUnitSpec(i.Category, i.Subcategory, uom, sizeValueML, servingSizeML); err != nil {
		return err
	}

	i.UOM = uom
	i.SizeValueML = sizeValueML
	i.ServingSizeML = servingSizeML
	i.ValuationCost = decimal.NullDecimal{}
	i.UpdatedAt = time.Now()
	i.IncrementVersion()

	i.AddDomainEvent(NewStockItemConfigurationChangedEvent(i))

	return nil
}

// Rename changes the item's display name.
func (i *StockItem) Rename(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Item name cannot be empty")
	}
	i.Name = name
	i.UpdatedAt = time.Now()
	i.IncrementVersion()
	return nil
}

// Deactivate hides the item from new stocktakes. Existing lines are
// unaffected.
func (i *StockItem) Deactivate() {
	if !i.Active {
		return
	}
	i.Active = false
	i.UpdatedAt = time.Now()
	i.IncrementVersion()

	i.AddDomainEvent(NewStockItemDeactivatedEvent(i))
}

// Activate makes the item available for new stocktakes again.
func (i *StockItem) Activate() {
	if i.Active {
		return
	}
	i.Active = true
	i.UpdatedAt = time.Now()
	i.IncrementVersion()
}

// HasCost reports whether a valuation cost has been assigned.
func (i *StockItem) HasCost() bool {
	return i.ValuationCost.Valid
}
