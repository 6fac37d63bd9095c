package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	stockapp "github.com/nlekkerman/HotelMateBackend-sub002/internal/application/stock"
	"github.com/nlekkerman/HotelMateBackend-sub002/internal/interfaces/http/middleware"
)

// StocktakeHandler handles stocktake-related API endpoints
type StocktakeHandler struct {
	BaseHandler
	stocktakeService *stockapp.StocktakeService
}

// NewStocktakeHandler creates a new StocktakeHandler
func NewStocktakeHandler(stocktakeService *stockapp.StocktakeService) *StocktakeHandler {
	return &StocktakeHandler{
		stocktakeService: stocktakeService,
	}
}

// GetByID retrieves a stocktake with all its lines
func (h *StocktakeHandler) GetByID(c *gin.Context) {
	hotelID, err := getHotelID(c)
	if err != nil {
		h.BadRequest(c, "Invalid hotel ID")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid stocktake ID format")
		return
	}

	result, err := h.stocktakeService.GetByID(c.Request.Context(), hotelID, id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// GetByTakingNumber retrieves a stocktake by its taking number
func (h *StocktakeHandler) GetByTakingNumber(c *gin.Context) {
	hotelID, err := getHotelID(c)
	if err != nil {
		h.BadRequest(c, "Invalid hotel ID")
		return
	}

	takingNumber := c.Param("taking_number")
	if takingNumber == "" {
		h.BadRequest(c, "Taking number is required")
		return
	}

	result, err := h.stocktakeService.GetByTakingNumber(c.Request.Context(), hotelID, takingNumber)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// List retrieves a paginated list of stocktakes with optional filtering
func (h *StocktakeHandler) List(c *gin.Context) {
	hotelID, err := getHotelID(c)
	if err != nil {
		h.BadRequest(c, "Invalid hotel ID")
		return
	}

	filter := stockapp.StocktakeListFilter{Page: 1, PageSize: 20}
	if err := c.ShouldBindQuery(&filter); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	stocktakes, total, err := h.stocktakeService.List(c.Request.Context(), hotelID, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, stocktakes, total, filter.Page, filter.PageSize)
}

// GetProgress reports how many lines have been counted so far
func (h *StocktakeHandler) GetProgress(c *gin.Context) {
	hotelID, err := getHotelID(c)
	if err != nil {
		h.BadRequest(c, "Invalid hotel ID")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid stocktake ID format")
		return
	}

	result, err := h.stocktakeService.GetProgress(c.Request.Context(), hotelID, id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// GetVarianceLines returns the lines whose counted quantity differs from
// the expected quantity
func (h *StocktakeHandler) GetVarianceLines(c *gin.Context) {
	hotelID, err := getHotelID(c)
	if err != nil {
		h.BadRequest(c, "Invalid hotel ID")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid stocktake ID format")
		return
	}

	result, err := h.stocktakeService.GetVarianceLines(c.Request.Context(), hotelID, id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// Create creates a new stocktake in draft status
func (h *StocktakeHandler) Create(c *gin.Context) {
	hotelID, err := getHotelID(c)
	if err != nil {
		h.BadRequest(c, "Invalid hotel ID")
		return
	}

	var req stockapp.CreateStocktakeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	result, err := h.stocktakeService.Create(c.Request.Context(), hotelID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, result)
}

// Update updates a draft stocktake's remark
func (h *StocktakeHandler) Update(c *gin.Context) {
	hotelID, err := getHotelID(c)
	if err != nil {
		h.BadRequest(c, "Invalid hotel ID")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid stocktake ID format")
		return
	}

	var req stockapp.UpdateStocktakeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	result, err := h.stocktakeService.Update(c.Request.Context(), hotelID, id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// Delete deletes a draft stocktake
func (h *StocktakeHandler) Delete(c *gin.Context) {
	hotelID, err := getHotelID(c)
	if err != nil {
		h.BadRequest(c, "Invalid hotel ID")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid stocktake ID format")
		return
	}

	if err := h.stocktakeService.Delete(c.Request.Context(), hotelID, id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// AddLine adds a stock item to the stocktake, freezing its configuration
// and valuation cost on the line
func (h *StocktakeHandler) AddLine(c *gin.Context) {
	hotelID, err := getHotelID(c)
	if err != nil {
		h.BadRequest(c, "Invalid hotel ID")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid stocktake ID format")
		return
	}

	var req stockapp.AddStocktakeLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	result, err := h.stocktakeService.AddLine(c.Request.Context(), hotelID, id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// AddLines adds multiple stock items to the stocktake in one call
func (h *StocktakeHandler) AddLines(c *gin.Context) {
	hotelID, err := getHotelID(c)
	if err != nil {
		h.BadRequest(c, "Invalid hotel ID")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid stocktake ID format")
		return
	}

	var req stockapp.AddStocktakeLinesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	result, err := h.stocktakeService.AddLines(c.Request.Context(), hotelID, id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// RemoveLine removes an item's line from a draft stocktake
func (h *StocktakeHandler) RemoveLine(c *gin.Context) {
	hotelID, err := getHotelID(c)
	if err != nil {
		h.BadRequest(c, "Invalid hotel ID")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid stocktake ID format")
		return
	}

	itemID, err := uuid.Parse(c.Param("item_id"))
	if err != nil {
		h.BadRequest(c, "Invalid item ID format")
		return
	}

	result, err := h.stocktakeService.RemoveLine(c.Request.Context(), hotelID, id, itemID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// StartCounting moves the stocktake from draft to counting
func (h *StocktakeHandler) StartCounting(c *gin.Context) {
	hotelID, err := getHotelID(c)
	if err != nil {
		h.BadRequest(c, "Invalid hotel ID")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid stocktake ID format")
		return
	}

	result, err := h.stocktakeService.StartCounting(c.Request.Context(), hotelID, id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// RecordMovements sets the period movements for a line
func (h *StocktakeHandler) RecordMovements(c *gin.Context) {
	hotelID, err := getHotelID(c)
	if err != nil {
		h.BadRequest(c, "Invalid hotel ID")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid stocktake ID format")
		return
	}

	var req stockapp.RecordMovementsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	result, err := h.stocktakeService.RecordMovements(c.Request.Context(), hotelID, id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// RecordCount records the physical count for a single line
func (h *StocktakeHandler) RecordCount(c *gin.Context) {
	hotelID, err := getHotelID(c)
	if err != nil {
		h.BadRequest(c, "Invalid hotel ID")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid stocktake ID format")
		return
	}

	var req stockapp.RecordCountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	result, err := h.stocktakeService.RecordCount(c.Request.Context(), hotelID, id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// RecordCounts records physical counts for multiple lines in one call
func (h *StocktakeHandler) RecordCounts(c *gin.Context) {
	hotelID, err := getHotelID(c)
	if err != nil {
		h.BadRequest(c, "Invalid hotel ID")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid stocktake ID format")
		return
	}

	var req stockapp.RecordCountsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	result, err := h.stocktakeService.RecordCounts(c.Request.Context(), hotelID, id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// RecordCocktailUsage attaches the cocktail draw-down overlay to a line
func (h *StocktakeHandler) RecordCocktailUsage(c *gin.Context) {
	hotelID, err := getHotelID(c)
	if err != nil {
		h.BadRequest(c, "Invalid hotel ID")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid stocktake ID format")
		return
	}

	var req stockapp.RecordCocktailUsageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	result, err := h.stocktakeService.RecordCocktailUsage(c.Request.Context(), hotelID, id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// SubmitForApproval submits a fully counted stocktake for approval
func (h *StocktakeHandler) SubmitForApproval(c *gin.Context) {
	hotelID, err := getHotelID(c)
	if err != nil {
		h.BadRequest(c, "Invalid hotel ID")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid stocktake ID format")
		return
	}

	result, err := h.stocktakeService.SubmitForApproval(c.Request.Context(), hotelID, id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// Approve approves a submitted stocktake
func (h *StocktakeHandler) Approve(c *gin.Context) {
	hotelID, err := getHotelID(c)
	if err != nil {
		h.BadRequest(c, "Invalid hotel ID")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid stocktake ID format")
		return
	}

	var req stockapp.ApproveStocktakeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	result, err := h.stocktakeService.Approve(c.Request.Context(), hotelID, id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// Reject sends a submitted stocktake back for recounting
func (h *StocktakeHandler) Reject(c *gin.Context) {
	hotelID, err := getHotelID(c)
	if err != nil {
		h.BadRequest(c, "Invalid hotel ID")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid stocktake ID format")
		return
	}

	var req stockapp.RejectStocktakeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	result, err := h.stocktakeService.Reject(c.Request.Context(), hotelID, id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// Cancel cancels a stocktake that has not been approved
func (h *StocktakeHandler) Cancel(c *gin.Context) {
	hotelID, err := getHotelID(c)
	if err != nil {
		h.BadRequest(c, "Invalid hotel ID")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid stocktake ID format")
		return
	}

	var req stockapp.CancelStocktakeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	result, err := h.stocktakeService.Cancel(c.Request.Context(), hotelID, id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}
