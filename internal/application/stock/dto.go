package stock

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nlekkerman/HotelMateBackend-sub002/internal/domain/stock"
)

// ===================== Request DTOs =====================

// CreateStockItemRequest represents a request to create a stock item
type CreateStockItemRequest struct {
	Name          string          `json:"name" binding:"required,min=1,max=200"`
	Code          string          `json:"code" binding:"required,min=1,max=50"`
	Category      string          `json:"category" binding:"required"`
	Subcategory   string          `json:"subcategory"`
	UOM           decimal.Decimal `json:"uom" binding:"required"`
	SizeValueML   decimal.Decimal `json:"size_value_ml"`
	ServingSizeML decimal.Decimal `json:"serving_size_ml"`
}

// UpdateStockItemRequest represents a request to rename a stock item
type UpdateStockItemRequest struct {
	Name string `json:"name" binding:"required,min=1,max=200"`
}

// UpdateConfigurationRequest represents a request to change unit configuration
type UpdateConfigurationRequest struct {
	UOM           decimal.Decimal `json:"uom" binding:"required"`
	SizeValueML   decimal.Decimal `json:"size_value_ml"`
	ServingSizeML decimal.Decimal `json:"serving_size_ml"`
}

// AssignCostRequest represents a request to assign an item's unit cost
type AssignCostRequest struct {
	UnitCost decimal.Decimal `json:"unit_cost" binding:"required"`
}

// StockItemListFilter represents filter options for the item list
type StockItemListFilter struct {
	Search     string `form:"search"`
	Category   string `form:"category"`
	ActiveOnly bool   `form:"active_only"`
	Page       int    `form:"page" binding:"min=1"`
	PageSize   int    `form:"page_size" binding:"min=1,max=100"`
	OrderBy    string `form:"order_by"`
	OrderDir   string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// CreateStocktakeRequest represents a request to create a stocktake
type CreateStocktakeRequest struct {
	TakingDate    *time.Time `json:"taking_date"` // Optional, defaults to now
	Remark        string     `json:"remark"`
	CreatedByID   uuid.UUID  `json:"created_by_id" binding:"required"`
	CreatedByName string     `json:"created_by_name" binding:"required"`
}

// UpdateStocktakeRequest represents a request to update a stocktake
type UpdateStocktakeRequest struct {
	Remark string `json:"remark"`
}

// AddStocktakeLineRequest represents a request to add an item to a stocktake
type AddStocktakeLineRequest struct {
	ItemID     uuid.UUID       `json:"item_id" binding:"required"`
	OpeningQty decimal.Decimal `json:"opening_qty"`
}

// AddStocktakeLinesRequest represents a bulk request to add lines
type AddStocktakeLinesRequest struct {
	Lines []AddStocktakeLineRequest `json:"lines" binding:"required,min=1"`
}

// RecordMovementsRequest represents a request to set a line's movements.
// The manual value fields are advisory euro amounts shown alongside the
// line; they do not feed the expected-quantity calculation.
type RecordMovementsRequest struct {
	ItemID       uuid.UUID       `json:"item_id" binding:"required"`
	OpeningQty   decimal.Decimal `json:"opening_qty"`
	Purchases    decimal.Decimal `json:"purchases"`
	Sales        decimal.Decimal `json:"sales"`
	Waste        decimal.Decimal `json:"waste"`
	TransfersIn  decimal.Decimal `json:"transfers_in"`
	TransfersOut decimal.Decimal `json:"transfers_out"`
	Adjustments  decimal.Decimal `json:"adjustments"`

	ManualPurchasesValue decimal.Decimal `json:"manual_purchases_value"`
	ManualWasteValue     decimal.Decimal `json:"manual_waste_value"`
	ManualSalesValue     decimal.Decimal `json:"manual_sales_value"`
}

// RecordCountRequest represents a request to record the physical count for a line
type RecordCountRequest struct {
	ItemID       uuid.UUID       `json:"item_id" binding:"required"`
	FullUnits    decimal.Decimal `json:"full_units" binding:"gte=0"`
	PartialUnits decimal.Decimal `json:"partial_units" binding:"gte=0"`
	Remark       string          `json:"remark"`
}

// RecordCountsRequest represents a bulk request to record counts
type RecordCountsRequest struct {
	Counts []RecordCountRequest `json:"counts" binding:"required,min=1"`
}

// RecordCocktailUsageRequest attaches the cocktail draw-down overlay to a line
type RecordCocktailUsageRequest struct {
	ItemID       uuid.UUID       `json:"item_id" binding:"required"`
	AvailableQty decimal.Decimal `json:"available_qty"`
	MergedQty    decimal.Decimal `json:"merged_qty"`
}

// ApproveStocktakeRequest represents a request to approve a stocktake
type ApproveStocktakeRequest struct {
	ApproverID   uuid.UUID `json:"approver_id" binding:"required"`
	ApproverName string    `json:"approver_name" binding:"required"`
	Note         string    `json:"note"`
}

// RejectStocktakeRequest represents a request to reject a stocktake
type RejectStocktakeRequest struct {
	ApproverID   uuid.UUID `json:"approver_id" binding:"required"`
	ApproverName string    `json:"approver_name" binding:"required"`
	Reason       string    `json:"reason" binding:"required,min=1,max=500"`
}

// CancelStocktakeRequest represents a request to cancel a stocktake
type CancelStocktakeRequest struct {
	Reason string `json:"reason" binding:"max=500"`
}

// StocktakeListFilter represents filter options for the stocktake list
type StocktakeListFilter struct {
	Search    string     `form:"search"`
	Status    string     `form:"status"`
	StartDate *time.Time `form:"start_date"`
	EndDate   *time.Time `form:"end_date"`
	Page      int        `form:"page" binding:"min=1"`
	PageSize  int        `form:"page_size" binding:"min=1,max=100"`
	OrderBy   string     `form:"order_by"`
	OrderDir  string     `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ===================== Response DTOs =====================

// StockItemResponse represents a stock item in API responses
type StockItemResponse struct {
	ID            uuid.UUID        `json:"id"`
	HotelID       uuid.UUID        `json:"hotel_id"`
	Name          string           `json:"name"`
	Code          string           `json:"code"`
	Category      string           `json:"category"`
	Subcategory   string           `json:"subcategory,omitempty"`
	UOM           decimal.Decimal  `json:"uom"`
	SizeValueML   decimal.Decimal  `json:"size_value_ml"`
	ServingSizeML decimal.Decimal  `json:"serving_size_ml"`
	UnitCost      decimal.Decimal  `json:"unit_cost"`
	ValuationCost *decimal.Decimal `json:"valuation_cost,omitempty"`
	CaseCost      *string          `json:"case_cost,omitempty"`
	BottleCost    *string          `json:"bottle_cost,omitempty"`
	Active        bool             `json:"active"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
	Version       int              `json:"version"`
}

// StocktakeLineResponse represents a stocktake line in API responses.
// The display pairs are the authoritative rendered quantities; clients
// must not re-derive them from the raw scalars.
type StocktakeLineResponse struct {
	ID          uuid.UUID `json:"id"`
	StocktakeID uuid.UUID `json:"stocktake_id"`
	ItemID      uuid.UUID `json:"item_id"`
	ItemName    string    `json:"item_name"`
	ItemCode    string    `json:"item_code"`
	Category    string    `json:"category"`
	Subcategory string    `json:"subcategory,omitempty"`

	UOM           decimal.Decimal  `json:"uom"`
	ValuationCost *decimal.Decimal `json:"valuation_cost,omitempty"`

	OpeningQty   decimal.Decimal `json:"opening_qty"`
	Purchases    decimal.Decimal `json:"purchases"`
	Sales        decimal.Decimal `json:"sales"`
	Waste        decimal.Decimal `json:"waste"`
	TransfersIn  decimal.Decimal `json:"transfers_in"`
	TransfersOut decimal.Decimal `json:"transfers_out"`
	Adjustments  decimal.Decimal `json:"adjustments"`

	ManualPurchasesValue decimal.Decimal `json:"manual_purchases_value"`
	ManualWasteValue     decimal.Decimal `json:"manual_waste_value"`
	ManualSalesValue     decimal.Decimal `json:"manual_sales_value"`

	ExpectedQty   decimal.Decimal `json:"expected_qty"`
	CountedQty    decimal.Decimal `json:"counted_qty"`
	VarianceQty   decimal.Decimal `json:"variance_qty"`
	ExpectedValue decimal.Decimal `json:"expected_value"`
	CountedValue  decimal.Decimal `json:"counted_value"`
	VarianceValue decimal.Decimal `json:"variance_value"`

	Display stock.DisplaySet `json:"display"`

	AvailableCocktailQty decimal.Decimal `json:"available_cocktail_qty"`
	MergedCocktailQty    decimal.Decimal `json:"merged_cocktail_qty"`
	CanMergeCocktails    bool            `json:"can_merge_cocktails"`

	Counted   bool      `json:"counted"`
	Remark    string    `json:"remark,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StocktakeResponse represents a stocktake in API responses
type StocktakeResponse struct {
	ID             uuid.UUID  `json:"id"`
	HotelID        uuid.UUID  `json:"hotel_id"`
	TakingNumber   string     `json:"taking_number"`
	Status         string     `json:"status"`
	TakingDate     time.Time  `json:"taking_date"`
	StartedAt      *time.Time `json:"started_at,omitempty"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
	ApprovedAt     *time.Time `json:"approved_at,omitempty"`
	ApprovedByID   *uuid.UUID `json:"approved_by_id,omitempty"`
	ApprovedByName string     `json:"approved_by_name,omitempty"`
	CreatedByID    uuid.UUID  `json:"created_by_id"`
	CreatedByName  string     `json:"created_by_name"`

	TotalItems    int `json:"total_items"`
	CountedItems  int `json:"counted_items"`
	VarianceItems int `json:"variance_items"`

	TotalValue         decimal.Decimal `json:"total_value"`
	TotalCountedValue  decimal.Decimal `json:"total_counted_value"`
	TotalVarianceValue decimal.Decimal `json:"total_variance_value"`

	Progress     float64                 `json:"progress"`
	ApprovalNote string                  `json:"approval_note,omitempty"`
	Remark       string                  `json:"remark,omitempty"`
	Lines        []StocktakeLineResponse `json:"lines,omitempty"`
	CreatedAt    time.Time               `json:"created_at"`
	UpdatedAt    time.Time               `json:"updated_at"`
	Version      int                     `json:"version"`
}

// StocktakeListResponse represents a stocktake in list views (without lines)
type StocktakeListResponse struct {
	ID                 uuid.UUID       `json:"id"`
	TakingNumber       string          `json:"taking_number"`
	Status             string          `json:"status"`
	TakingDate         time.Time       `json:"taking_date"`
	CreatedByID        uuid.UUID       `json:"created_by_id"`
	CreatedByName      string          `json:"created_by_name"`
	TotalItems         int             `json:"total_items"`
	CountedItems       int             `json:"counted_items"`
	VarianceItems      int             `json:"variance_items"`
	TotalVarianceValue decimal.Decimal `json:"total_variance_value"`
	Progress           float64         `json:"progress"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// StocktakeProgressResponse represents counting progress
type StocktakeProgressResponse struct {
	ID                 uuid.UUID       `json:"id"`
	TakingNumber       string          `json:"taking_number"`
	Status             string          `json:"status"`
	TotalItems         int             `json:"total_items"`
	CountedItems       int             `json:"counted_items"`
	VarianceItems      int             `json:"variance_items"`
	TotalVarianceValue decimal.Decimal `json:"total_variance_value"`
	Progress           float64         `json:"progress"`
	IsComplete         bool            `json:"is_complete"`
}

// ===================== Conversion Functions =====================

// ToStockItemResponse converts a domain StockItem to a response DTO
func ToStockItemResponse(item *stock.StockItem) StockItemResponse {
	response := StockItemResponse{
		ID:            item.ID,
		HotelID:       item.HotelID,
		Name:          item.Name,
		Code:          item.Code,
		Category:      item.Category.String(),
		Subcategory:   item.Subcategory.String(),
		UOM:           item.UOM,
		SizeValueML:   item.SizeValueML,
		ServingSizeML: item.ServingSizeML,
		UnitCost:      item.UnitCost,
		Active:        item.Active,
		CreatedAt:     item.CreatedAt,
		UpdatedAt:     item.UpdatedAt,
		Version:       item.Version,
	}

	if item.ValuationCost.Valid {
		cost := item.ValuationCost.Decimal
		response.ValuationCost = &cost

		if spec, err := item.UnitSpec(); err == nil {
			if caseCost, ok := spec.CaseCost(cost); ok {
				s := caseCost.StringFixed(2)
				response.CaseCost = &s
			}
			if bottleCost, ok := spec.BottleCost(cost); ok {
				s := bottleCost.StringFixed(2)
				response.BottleCost = &s
			}
		}
	}

	return response
}

// ToStockItemResponses converts a slice of domain StockItems to responses
func ToStockItemResponses(items []stock.StockItem) []StockItemResponse {
	responses := make([]StockItemResponse, len(items))
	for i := range items {
		responses[i] = ToStockItemResponse(&items[i])
	}
	return responses
}

// ToStocktakeLineResponse converts a domain StocktakeLine to a response DTO
func ToStocktakeLineResponse(line *stock.StocktakeLine) StocktakeLineResponse {
	response := StocktakeLineResponse{
		ID:          line.ID,
		StocktakeID: line.StocktakeID,
		ItemID:      line.ItemID,
		ItemName:    line.ItemName,
		ItemCode:    line.ItemCode,
		Category:    line.Category.String(),
		Subcategory: line.Subcategory.String(),
		UOM:         line.UOM,

		OpeningQty:   line.Movements.OpeningQty,
		Purchases:    line.Movements.Purchases,
		Sales:        line.Movements.Sales,
		Waste:        line.Movements.Waste,
		TransfersIn:  line.Movements.TransfersIn,
		TransfersOut: line.Movements.TransfersOut,
		Adjustments:  line.Movements.Adjustments,

		ManualPurchasesValue: line.Movements.ManualPurchasesValue,
		ManualWasteValue:     line.Movements.ManualWasteValue,
		ManualSalesValue:     line.Movements.ManualSalesValue,

		ExpectedQty:   line.Derived.ExpectedQty,
		CountedQty:    line.Derived.CountedQty,
		VarianceQty:   line.Derived.VarianceQty,
		ExpectedValue: line.Derived.ExpectedValue,
		CountedValue:  line.Derived.CountedValue,
		VarianceValue: line.Derived.VarianceValue,
		Display:       line.Derived.Display,

		AvailableCocktailQty: line.Cocktail.AvailableQty,
		MergedCocktailQty:    line.Cocktail.MergedQty,
		CanMergeCocktails:    line.Cocktail.CanMerge(),

		Counted:   line.Counted,
		Remark:    line.Remark,
		CreatedAt: line.CreatedAt,
		UpdatedAt: line.UpdatedAt,
	}

	if line.ValuationCost.Valid {
		cost := line.ValuationCost.Decimal
		response.ValuationCost = &cost
	}

	return response
}

// ToStocktakeLineResponses converts a slice of lines to responses
func ToStocktakeLineResponses(lines []stock.StocktakeLine) []StocktakeLineResponse {
	responses := make([]StocktakeLineResponse, len(lines))
	for i := range lines {
		responses[i] = ToStocktakeLineResponse(&lines[i])
	}
	return responses
}

// ToStocktakeResponse converts a domain Stocktake to a response DTO
func ToStocktakeResponse(st *stock.Stocktake) StocktakeResponse {
	response := StocktakeResponse{
		ID:                 st.ID,
		HotelID:            st.HotelID,
		TakingNumber:       st.TakingNumber,
		Status:             string(st.Status),
		TakingDate:         st.TakingDate,
		StartedAt:          st.StartedAt,
		CompletedAt:        st.CompletedAt,
		ApprovedAt:         st.ApprovedAt,
		ApprovedByID:       st.ApprovedByID,
		ApprovedByName:     st.ApprovedByName,
		CreatedByID:        st.CreatedByID,
		CreatedByName:      st.CreatedByName,
		TotalItems:         st.TotalItems,
		CountedItems:       st.CountedItems,
		VarianceItems:      st.VarianceItems,
		TotalValue:         st.TotalValue,
		TotalCountedValue:  st.TotalCountedValue,
		TotalVarianceValue: st.TotalVarianceValue,
		Progress:           st.GetProgress(),
		ApprovalNote:       st.ApprovalNote,
		Remark:             st.Remark,
		CreatedAt:          st.CreatedAt,
		UpdatedAt:          st.UpdatedAt,
		Version:            st.Version,
	}

	if len(st.Lines) > 0 {
		response.Lines = ToStocktakeLineResponses(st.Lines)
	}

	return response
}

// ToStocktakeListResponse converts a domain Stocktake to a list response DTO
func ToStocktakeListResponse(st *stock.Stocktake) StocktakeListResponse {
	return StocktakeListResponse{
		ID:                 st.ID,
		TakingNumber:       st.TakingNumber,
		Status:             string(st.Status),
		TakingDate:         st.TakingDate,
		CreatedByID:        st.CreatedByID,
		CreatedByName:      st.CreatedByName,
		TotalItems:         st.TotalItems,
		CountedItems:       st.CountedItems,
		VarianceItems:      st.VarianceItems,
		TotalVarianceValue: st.TotalVarianceValue,
		Progress:           st.GetProgress(),
		CreatedAt:          st.CreatedAt,
		UpdatedAt:          st.UpdatedAt,
	}
}

// ToStocktakeListResponses converts a slice of domain Stocktakes to list responses
func ToStocktakeListResponses(sts []stock.Stocktake) []StocktakeListResponse {
	responses := make([]StocktakeListResponse, len(sts))
	for i := range sts {
		responses[i] = ToStocktakeListResponse(&sts[i])
	}
	return responses
}

// ToStocktakeProgressResponse converts a domain Stocktake to a progress DTO
func ToStocktakeProgressResponse(st *stock.Stocktake) StocktakeProgressResponse {
	return StocktakeProgressResponse{
		ID:                 st.ID,
		TakingNumber:       st.TakingNumber,
		Status:             string(st.Status),
		TotalItems:         st.TotalItems,
		CountedItems:       st.CountedItems,
		VarianceItems:      st.VarianceItems,
		TotalVarianceValue: st.TotalVarianceValue,
		Progress:           st.GetProgress(),
		IsComplete:         st.IsComplete(),
	}
}
