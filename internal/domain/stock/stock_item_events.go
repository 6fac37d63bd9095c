package stock

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nlekkerman/HotelMateBackend-sub002/internal/domain/shared"
)

// Aggregate type constant for StockItem
const AggregateTypeStockItem = "StockItem"

// StockItem event type constants
const (
	EventTypeStockItemCreated              = "StockItemCreated"
	EventTypeStockItemCostAssigned         = "StockItemCostAssigned"
	EventTypeStockItemConfigurationChanged = "StockItemConfigurationChanged"
	EventTypeStockItemDeactivated          = "StockItemDeactivated"
)

// StockItemCreatedEvent is raised when a stock item is created
type StockItemCreatedEvent struct {
	shared.BaseDomainEvent
	StockItemID uuid.UUID `json:"stock_item_id"`
	Name        string    `json:"name"`
	Code        string    `json:"code"`
	Category    Category  `json:"category"`
}

// NewStockItemCreatedEvent creates a new StockItemCreatedEvent
func NewStockItemCreatedEvent(item *StockItem) *StockItemCreatedEvent {
	return &StockItemCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeStockItemCreated, item.ID, AggregateTypeStockItem, item.HotelID),
		StockItemID:     item.ID,
		Name:            item.Name,
		Code:            item.Code,
		Category:        item.Category,
	}
}

// EventType returns the event type name
func (e *StockItemCreatedEvent) EventType() string {
	return EventTypeStockItemCreated
}

// StockItemCostAssignedEvent is raised when an item's cost is assigned
type StockItemCostAssignedEvent struct {
	shared.BaseDomainEvent
	StockItemID   uuid.UUID       `json:"stock_item_id"`
	UnitCost      decimal.Decimal `json:"unit_cost"`
	ValuationCost decimal.Decimal `json:"valuation_cost"`
}

// NewStockItemCostAssignedEvent creates a new StockItemCostAssignedEvent
func NewStockItemCostAssignedEvent(item *StockItem) *StockItemCostAssignedEvent {
	return &StockItemCostAssignedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeStockItemCostAssigned, item.ID, AggregateTypeStockItem, item.HotelID),
		StockItemID:     item.ID,
		UnitCost:        item.UnitCost,
		ValuationCost:   item.ValuationCost.Decimal,
	}
}

// EventType returns the event type name
func (e *StockItemCostAssignedEvent) EventType() string {
	return EventTypeStockItemCostAssigned
}

// StockItemConfigurationChangedEvent is raised when unit configuration changes
type StockItemConfigurationChangedEvent struct {
	shared.BaseDomainEvent
	StockItemID   uuid.UUID       `json:"stock_item_id"`
	UOM           decimal.Decimal `json:"uom"`
	SizeValueML   decimal.Decimal `json:"size_value_ml"`
	ServingSizeML decimal.Decimal `json:"serving_size_ml"`
}

// NewStockItemConfigurationChangedEvent creates a new StockItemConfigurationChangedEvent
func NewStockItemConfigurationChangedEvent(item *StockItem) *StockItemConfigurationChangedEvent {
	return &StockItemConfigurationChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeStockItemConfigurationChanged, item.ID, AggregateTypeStockItem, item.HotelID),
		StockItemID:     item.ID,
		UOM:             item.UOM,
		SizeValueML:     item.SizeValueML,
		ServingSizeML:   item.ServingSizeML,
	}
}

// EventType returns the event type name
func (e *StockItemConfigurationChangedEvent) EventType() string {
	return EventTypeStockItemConfigurationChanged
}

// StockItemDeactivatedEvent is raised when a stock item is deactivated
type StockItemDeactivatedEvent struct {
	shared.BaseDomainEvent
	StockItemID uuid.UUID `json:"stock_item_id"`
	Code        string    `json:"code"`
}

// NewStockItemDeactivatedEvent creates a new StockItemDeactivatedEvent
func NewStockItemDeactivatedEvent(item *StockItem) *StockItemDeactivatedEvent {
	return &StockItemDeactivatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeStockItemDeactivated, item.ID, AggregateTypeStockItem, item.HotelID),
		StockItemID:     item.ID,
		Code:            item.Code,
	}
}

// EventType returns the event type name
func (e *StockItemDeactivatedEvent) EventType() string {
	return EventTypeStockItemDeactivated
}
