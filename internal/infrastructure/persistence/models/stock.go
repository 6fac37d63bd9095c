package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nlekkerman/HotelMateBackend-sub002/internal/domain/stock"
)

// StockItemModel is the persistence model for the StockItem aggregate root.
type StockItemModel struct {
	HotelAggregateModel
	Name          string                   `gorm:"type:varchar(200);not null"`
	Code          string                   `gorm:"type:varchar(50);not null;uniqueIndex:idx_stock_item_code_hotel,priority:2"`
	Category      stock.Category           `gorm:"type:varchar(5);not null;index"`
	Subcategory   stock.MineralSubcategory `gorm:"type:varchar(20);not null;default:''"`
	UOM           decimal.Decimal          `gorm:"type:decimal(18,6);not null"`
	SizeValueML   decimal.Decimal          `gorm:"type:decimal(18,6);not null;default:0"`
	ServingSizeML decimal.Decimal          `gorm:"type:decimal(18,6);not null;default:0"`
	UnitCost      decimal.Decimal          `gorm:"type:decimal(18,6);not null;default:0"`
	ValuationCost decimal.NullDecimal      `gorm:"type:decimal(18,6)"`
	Active        bool                     `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (StockItemModel) TableName() string {
	return "stock_items"
}

// ToDomain converts the persistence model to a domain StockItem entity.
func (m *StockItemModel) ToDomain() *stock.StockItem {
	item := &stock.StockItem{
		Name:          m.Name,
		Code:          m.Code,
		Category:      m.Category,
		Subcategory:   m.Subcategory,
		UOM:           m.UOM,
		SizeValueML:   m.SizeValueML,
		ServingSizeML: m.ServingSizeML,
		UnitCost:      m.UnitCost,
		ValuationCost: m.ValuationCost,
		Active:        m.Active,
	}
	m.PopulateHotelAggregateRoot(&item.HotelAggregateRoot)
	return item
}

// FromDomain populates the persistence model from a domain StockItem entity.
func (m *StockItemModel) FromDomain(item *stock.StockItem) {
	m.FromDomainHotelAggregateRoot(item.HotelAggregateRoot)
	m.Name = item.Name
	m.Code = item.Code
	m.Category = item.Category
	m.Subcategory = item.Subcategory
	m.UOM = item.UOM
	m.SizeValueML = item.SizeValueML
	m.ServingSizeML = item.ServingSizeML
	m.UnitCost = item.UnitCost
	m.ValuationCost = item.ValuationCost
	m.Active = item.Active
}

// StockItemModelFromDomain creates a new persistence model from a domain StockItem entity.
func StockItemModelFromDomain(item *stock.StockItem) *StockItemModel {
	m := &StockItemModel{}
	m.FromDomain(item)
	return m
}

// StocktakeModel is the persistence model for the Stocktake aggregate root.
type StocktakeModel struct {
	HotelAggregateModel
	TakingNumber       string                `gorm:"type:varchar(50);not null;uniqueIndex:idx_stocktake_number_hotel,priority:2"`
	Status             stock.StocktakeStatus `gorm:"type:varchar(20);not null;default:'DRAFT'"`
	TakingDate         time.Time             `gorm:"not null"`
	StartedAt          *time.Time            `gorm:""`
	CompletedAt        *time.Time            `gorm:""`
	ApprovedAt         *time.Time            `gorm:""`
	ApprovedByID       *uuid.UUID            `gorm:"type:uuid"`
	ApprovedByName     string                `gorm:"type:varchar(100)"`
	CreatedByID        uuid.UUID             `gorm:"type:uuid;not null"`
	CreatedByName      string                `gorm:"type:varchar(100);not null"`
	TotalItems         int                   `gorm:"not null;default:0"`
	CountedItems       int                   `gorm:"not null;default:0"`
	VarianceItems      int                   `gorm:"not null;default:0"`
	TotalValue         decimal.Decimal       `gorm:"type:decimal(18,6);not null;default:0"`
	TotalCountedValue  decimal.Decimal       `gorm:"type:decimal(18,6);not null;default:0"`
	TotalVarianceValue decimal.Decimal       `gorm:"type:decimal(18,6);not null;default:0"`
	ApprovalNote       string                `gorm:"type:varchar(500)"`
	Remark             string                `gorm:"type:varchar(500)"`
	Lines              []StocktakeLineModel  `gorm:"foreignKey:StocktakeID;references:ID"`
}

// TableName returns the table name for GORM
func (StocktakeModel) TableName() string {
	return "stocktakes"
}

// ToDomain converts the persistence model to a domain Stocktake entity.
// A line with an unresolvable unit configuration fails the whole
// conversion so the misconfiguration surfaces instead of defaulting.
func (m *StocktakeModel) ToDomain() (*stock.Stocktake, error) {
	st := &stock.Stocktake{
		TakingNumber:       m.TakingNumber,
		Status:             m.Status,
		TakingDate:         m.TakingDate,
		StartedAt:          m.StartedAt,
		CompletedAt:        m.CompletedAt,
		ApprovedAt:         m.ApprovedAt,
		ApprovedByID:       m.ApprovedByID,
		ApprovedByName:     m.ApprovedByName,
		CreatedByID:        m.CreatedByID,
		CreatedByName:      m.CreatedByName,
		TotalItems:         m.TotalItems,
		CountedItems:       m.CountedItems,
		VarianceItems:      m.VarianceItems,
		TotalValue:         m.TotalValue,
		TotalCountedValue:  m.TotalCountedValue,
		TotalVarianceValue: m.TotalVarianceValue,
		ApprovalNote:       m.ApprovalNote,
		Remark:             m.Remark,
		Lines:              make([]stock.StocktakeLine, len(m.Lines)),
	}
	m.PopulateHotelAggregateRoot(&st.HotelAggregateRoot)
	for i, line := range m.Lines {
		l, err := line.ToDomain()
		if err != nil {
			return nil, fmt.Errorf("stocktake %s: %w", m.TakingNumber, err)
		}
		st.Lines[i] = *l
	}
	return st, nil
}

// FromDomain populates the persistence model from a domain Stocktake entity.
func (m *StocktakeModel) FromDomain(st *stock.Stocktake) {
	m.FromDomainHotelAggregateRoot(st.HotelAggregateRoot)
	m.TakingNumber = st.TakingNumber
	m.Status = st.Status
	m.TakingDate = st.TakingDate
	m.StartedAt = st.StartedAt
	m.CompletedAt = st.CompletedAt
	m.ApprovedAt = st.ApprovedAt
	m.ApprovedByID = st.ApprovedByID
	m.ApprovedByName = st.ApprovedByName
	m.CreatedByID = st.CreatedByID
	m.CreatedByName = st.CreatedByName
	m.TotalItems = st.TotalItems
	m.CountedItems = st.CountedItems
	m.VarianceItems = st.VarianceItems
	m.TotalValue = st.TotalValue
	m.TotalCountedValue = st.TotalCountedValue
	m.TotalVarianceValue = st.TotalVarianceValue
	m.ApprovalNote = st.ApprovalNote
	m.Remark = st.Remark
	m.Lines = make([]StocktakeLineModel, len(st.Lines))
	for i, line := range st.Lines {
		m.Lines[i] = *StocktakeLineModelFromDomain(&line)
	}
}

// StocktakeModelFromDomain creates a new persistence model from a domain Stocktake entity.
func StocktakeModelFromDomain(st *stock.Stocktake) *StocktakeModel {
	m := &StocktakeModel{}
	m.FromDomain(st)
	return m
}

// StocktakeLineModel is the persistence model for the StocktakeLine entity.
// The derived scalars are stored exactly as computed; the display pairs
// are re-rendered from the frozen spec on load instead of being stored.
type StocktakeLineModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	StocktakeID uuid.UUID `gorm:"type:uuid;not null;index"`
	ItemID      uuid.UUID `gorm:"type:uuid;not null"`
	ItemName    string    `gorm:"type:varchar(200);not null"`
	ItemCode    string    `gorm:"type:varchar(50);not null"`

	Category      stock.Category           `gorm:"type:varchar(5);not null"`
	Subcategory   stock.MineralSubcategory `gorm:"type:varchar(20);not null;default:''"`
	UOM           decimal.Decimal          `gorm:"type:decimal(18,6);not null"`
	SizeValueML   decimal.Decimal          `gorm:"type:decimal(18,6);not null;default:0"`
	ServingSizeML decimal.Decimal          `gorm:"type:decimal(18,6);not null;default:0"`
	ValuationCost decimal.NullDecimal      `gorm:"type:decimal(18,6)"`

	OpeningQty   decimal.Decimal `gorm:"type:decimal(18,6);not null;default:0"`
	Purchases    decimal.Decimal `gorm:"type:decimal(18,6);not null;default:0"`
	Sales        decimal.Decimal `gorm:"type:decimal(18,6);not null;default:0"`
	Waste        decimal.Decimal `gorm:"type:decimal(18,6);not null;default:0"`
	TransfersIn  decimal.Decimal `gorm:"type:decimal(18,6);not null;default:0"`
	TransfersOut decimal.Decimal `gorm:"type:decimal(18,6);not null;default:0"`
	Adjustments  decimal.Decimal `gorm:"type:decimal(18,6);not null;default:0"`

	ManualPurchasesValue decimal.Decimal `gorm:"type:decimal(18,6);not null;default:0"`
	ManualWasteValue     decimal.Decimal `gorm:"type:decimal(18,6);not null;default:0"`
	ManualSalesValue     decimal.Decimal `gorm:"type:decimal(18,6);not null;default:0"`

	CountedFull    decimal.Decimal `gorm:"type:decimal(18,6);not null;default:0"`
	CountedPartial decimal.Decimal `gorm:"type:decimal(18,6);not null;default:0"`
	Counted        bool            `gorm:"not null;default:false"`

	ExpectedQty   decimal.Decimal `gorm:"type:decimal(18,6);not null;default:0"`
	CountedQty    decimal.Decimal `gorm:"type:decimal(18,6);not null;default:0"`
	VarianceQty   decimal.Decimal `gorm:"type:decimal(18,6);not null;default:0"`
	ExpectedValue decimal.Decimal `gorm:"type:decimal(18,6);not null;default:0"`
	CountedValue  decimal.Decimal `gorm:"type:decimal(18,6);not null;default:0"`
	VarianceValue decimal.Decimal `gorm:"type:decimal(18,6);not null;default:0"`

	CocktailAvailableQty decimal.Decimal `gorm:"type:decimal(18,6);not null;default:0"`
	CocktailMergedQty    decimal.Decimal `gorm:"type:decimal(18,6);not null;default:0"`

	Remark    string    `gorm:"type:varchar(500)"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (StocktakeLineModel) TableName() string {
	return "stocktake_lines"
}

// ToDomain converts the persistence model to a domain StocktakeLine
// entity. It fails when the frozen unit configuration on the row no
// longer resolves; returning zeroed display pairs for such a row would
// hide the broken configuration from the caller.
func (m *StocktakeLineModel) ToDomain() (*stock.StocktakeLine, error) {
	line := &stock.StocktakeLine{
		ID:            m.ID,
		StocktakeID:   m.StocktakeID,
		ItemID:        m.ItemID,
		ItemName:      m.ItemName,
		ItemCode:      m.ItemCode,
		Category:      m.Category,
		Subcategory:   m.Subcategory,
		UOM:           m.UOM,
		SizeValueML:   m.SizeValueML,
		ServingSizeML: m.ServingSizeML,
		ValuationCost: m.ValuationCost,
		Movements: stock.Movements{
			OpeningQty:           m.OpeningQty,
			Purchases:            m.Purchases,
			Sales:                m.Sales,
			Waste:                m.Waste,
			TransfersIn:          m.TransfersIn,
			TransfersOut:         m.TransfersOut,
			Adjustments:          m.Adjustments,
			ManualPurchasesValue: m.ManualPurchasesValue,
			ManualWasteValue:     m.ManualWasteValue,
			ManualSalesValue:     m.ManualSalesValue,
		},
		CountedFull:    m.CountedFull,
		CountedPartial: m.CountedPartial,
		Counted:        m.Counted,
		Derived: stock.LineDerived{
			ExpectedQty:   m.ExpectedQty,
			CountedQty:    m.CountedQty,
			VarianceQty:   m.VarianceQty,
			ExpectedValue: m.ExpectedValue,
			CountedValue:  m.CountedValue,
			VarianceValue: m.VarianceValue,
		},
		Cocktail: stock.CocktailUsage{
			AvailableQty: m.CocktailAvailableQty,
			MergedQty:    m.CocktailMergedQty,
		},
		Remark:    m.Remark,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}

	// Display pairs are not stored; render them from the frozen spec.
	spec, err := line.Spec()
	if err != nil {
		return nil, fmt.Errorf("stocktake line %s (%s): %w", m.ID, m.ItemCode, err)
	}
	line.Derived.Display = spec.RenderSet(m.OpeningQty, m.ExpectedQty, m.CountedQty, m.VarianceQty)

	return line, nil
}

// FromDomain populates the persistence model from a domain StocktakeLine entity.
func (m *StocktakeLineModel) FromDomain(l *stock.StocktakeLine) {
	m.ID = l.ID
	m.StocktakeID = l.StocktakeID
	m.ItemID = l.ItemID
	m.ItemName = l.ItemName
	m.ItemCode = l.ItemCode
	m.Category = l.Category
	m.Subcategory = l.Subcategory
	m.UOM = l.UOM
	m.SizeValueML = l.SizeValueML
	m.ServingSizeML = l.ServingSizeML
	m.ValuationCost = l.ValuationCost
	m.OpeningQty = l.Movements.OpeningQty
	m.Purchases = l.Movements.Purchases
	m.Sales = l.Movements.Sales
	m.Waste = l.Movements.Waste
	m.TransfersIn = l.Movements.TransfersIn
	m.TransfersOut = l.Movements.TransfersOut
	m.Adjustments = l.Movements.Adjustments
	m.ManualPurchasesValue = l.Movements.ManualPurchasesValue
	m.ManualWasteValue = l.Movements.ManualWasteValue
	m.ManualSalesValue = l.Movements.ManualSalesValue
	m.CountedFull = l.CountedFull
	m.CountedPartial = l.CountedPartial
	m.Counted = l.Counted
	m.ExpectedQty = l.Derived.ExpectedQty
	m.CountedQty = l.Derived.CountedQty
	m.VarianceQty = l.Derived.VarianceQty
	m.ExpectedValue = l.Derived.ExpectedValue
	m.CountedValue = l.Derived.CountedValue
	m.VarianceValue = l.Derived.VarianceValue
	m.CocktailAvailableQty = l.Cocktail.AvailableQty
	m.CocktailMergedQty = l.Cocktail.MergedQty
	m.Remark = l.Remark
	m.CreatedAt = l.CreatedAt
	m.UpdatedAt = l.UpdatedAt
}

// StocktakeLineModelFromDomain creates a new persistence model from a domain StocktakeLine entity.
func StocktakeLineModelFromDomain(l *stock.StocktakeLine) *StocktakeLineModel {
	m := &StocktakeLineModel{}
	m.FromDomain(l)
	return m
}
