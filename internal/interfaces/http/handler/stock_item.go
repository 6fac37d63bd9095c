package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	stockapp "github.com/nlekkerman/HotelMateBackend-sub002/internal/application/stock"
	"github.com/nlekkerman/HotelMateBackend-sub002/internal/interfaces/http/middleware"
)

// StockItemHandler handles stock item-related API endpoints
type StockItemHandler struct {
	BaseHandler
	itemService *stockapp.StockItemService
}

// NewStockItemHandler creates a new StockItemHandler
func NewStockItemHandler(itemService *stockapp.StockItemService) *StockItemHandler {
	return &StockItemHandler{
		itemService: itemService,
	}
}

// GetByID retrieves a stock item by its ID
func (h *StockItemHandler) GetByID(c *gin.Context) {
	hotelID, err := getHotelID(c)
	if err != nil {
		h.BadRequest(c, "Invalid hotel ID")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid stock item ID format")
		return
	}

	result, err := h.itemService.GetByID(c.Request.Context(), hotelID, id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// GetByCode retrieves a stock item by its code
func (h *StockItemHandler) GetByCode(c *gin.Context) {
	hotelID, err := getHotelID(c)
	if err != nil {
		h.BadRequest(c, "Invalid hotel ID")
		return
	}

	code := c.Param("code")
	if code == "" {
		h.BadRequest(c, "Item code is required")
		return
	}

	result, err := h.itemService.GetByCode(c.Request.Context(), hotelID, code)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// List retrieves a paginated list of stock items with optional filtering
func (h *StockItemHandler) List(c *gin.Context) {
	hotelID, err := getHotelID(c)
	if err != nil {
		h.BadRequest(c, "Invalid hotel ID")
		return
	}

	filter := stockapp.StockItemListFilter{Page: 1, PageSize: 20}
	if err := c.ShouldBindQuery(&filter); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	items, total, err := h.itemService.List(c.Request.Context(), hotelID, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, items, total, filter.Page, filter.PageSize)
}

// Create creates a new stock item
func (h *StockItemHandler) Create(c *gin.Context) {
	hotelID, err := getHotelID(c)
	if err != nil {
		h.BadRequest(c, "Invalid hotel ID")
		return
	}

	var req stockapp.CreateStockItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	result, err := h.itemService.Create(c.Request.Context(), hotelID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, result)
}

// Update renames a stock item
func (h *StockItemHandler) Update(c *gin.Context) {
	hotelID, err := getHotelID(c)
	if err != nil {
		h.BadRequest(c, "Invalid hotel ID")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid stock item ID format")
		return
	}

	var req stockapp.UpdateStockItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	result, err := h.itemService.Update(c.Request.Context(), hotelID, id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// UpdateConfiguration changes an item's unit configuration. Any frozen
// valuation cost is cleared because it no longer matches the new units.
func (h *StockItemHandler) UpdateConfiguration(c *gin.Context) {
	hotelID, err := getHotelID(c)
	if err != nil {
		h.BadRequest(c, "Invalid hotel ID")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid stock item ID format")
		return
	}

	var req stockapp.UpdateConfigurationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	result, err := h.itemService.UpdateConfiguration(c.Request.Context(), hotelID, id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// AssignCost assigns the purchase cost and freezes the per-serving
// valuation cost
func (h *StockItemHandler) AssignCost(c *gin.Context) {
	hotelID, err := getHotelID(c)
	if err != nil {
		h.BadRequest(c, "Invalid hotel ID")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid stock item ID format")
		return
	}

	var req stockapp.AssignCostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	result, err := h.itemService.AssignCost(c.Request.Context(), hotelID, id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// Activate reactivates a stock item
func (h *StockItemHandler) Activate(c *gin.Context) {
	hotelID, err := getHotelID(c)
	if err != nil {
		h.BadRequest(c, "Invalid hotel ID")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid stock item ID format")
		return
	}

	if err := h.itemService.Activate(c.Request.Context(), hotelID, id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// Deactivate deactivates a stock item so it no longer appears in counts
func (h *StockItemHandler) Deactivate(c *gin.Context) {
	hotelID, err := getHotelID(c)
	if err != nil {
		h.BadRequest(c, "Invalid hotel ID")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid stock item ID format")
		return
	}

	if err := h.itemService.Deactivate(c.Request.Context(), hotelID, id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
