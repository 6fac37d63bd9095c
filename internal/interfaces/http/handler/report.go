package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	reportapp "github.com/nlekkerman/HotelMateBackend-sub002/internal/application/report"
)

// ReportHandler handles valuation report API endpoints
type ReportHandler struct {
	BaseHandler
	reportService *reportapp.ValuationReportService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService *reportapp.ValuationReportService) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

// GetValuationReport builds the valuation report for a stocktake: per-line
// quantities and values at frozen cost, per-category subtotals, and the
// grand totals
func (h *ReportHandler) GetValuationReport(c *gin.Context) {
	hotelID, err := getHotelID(c)
	if err != nil {
		h.BadRequest(c, "Invalid hotel ID")
		return
	}

	stocktakeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid stocktake ID format")
		return
	}

	report, err := h.reportService.BuildReport(c.Request.Context(), hotelID, stocktakeID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, report)
}
