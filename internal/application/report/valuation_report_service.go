package report

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nlekkerman/HotelMateBackend-sub002/internal/domain/stock"
)

// CategoryTotals is the per-category valuation summary of a stocktake.
// The decimal fields are exact sums; the formatted fields are the euro
// presentation rounded to the cent.
type CategoryTotals struct {
	Category      string          `json:"category"`
	Subcategory   string          `json:"subcategory,omitempty"`
	LineCount     int             `json:"line_count"`
	ExpectedValue decimal.Decimal `json:"expected_value"`
	CountedValue  decimal.Decimal `json:"counted_value"`
	VarianceValue decimal.Decimal `json:"variance_value"`

	ExpectedValueDisplay string `json:"expected_value_display"`
	CountedValueDisplay  string `json:"counted_value_display"`
	VarianceValueDisplay string `json:"variance_value_display"`
}

// ValuationReport is the category-rollup valuation view of a stocktake
type ValuationReport struct {
	StocktakeID  uuid.UUID        `json:"stocktake_id"`
	TakingNumber string           `json:"taking_number"`
	Status       string           `json:"status"`
	Categories   []CategoryTotals `json:"categories"`

	TotalExpectedValue decimal.Decimal `json:"total_expected_value"`
	TotalCountedValue  decimal.Decimal `json:"total_counted_value"`
	TotalVarianceValue decimal.Decimal `json:"total_variance_value"`

	TotalExpectedValueDisplay string `json:"total_expected_value_display"`
	TotalCountedValueDisplay  string `json:"total_counted_value_display"`
	TotalVarianceValueDisplay string `json:"total_variance_value_display"`
}

// ValuationReportService rolls stocktake line values up per category.
// It only sums what the valuation engine already derived; it never
// recomputes quantities or values itself.
type ValuationReportService struct {
	stocktakeRepo stock.StocktakeRepository
}

// NewValuationReportService creates a new ValuationReportService
func NewValuationReportService(stocktakeRepo stock.StocktakeRepository) *ValuationReportService {
	return &ValuationReportService{stocktakeRepo: stocktakeRepo}
}

type categoryKey struct {
	category    stock.Category
	subcategory stock.MineralSubcategory
}

// BuildReport builds the per-category valuation rollup for a stocktake
func (s *ValuationReportService) BuildReport(ctx context.Context, hotelID, stocktakeID uuid.UUID) (*ValuationReport, error) {
	st, err := s.stocktakeRepo.FindByIDForHotel(ctx, hotelID, stocktakeID)
	if err != nil {
		return nil, err
	}

	totals := make(map[categoryKey]*CategoryTotals)
	for _, line := range st.Lines {
		if !line.Counted {
			continue
		}

		key := categoryKey{category: line.Category, subcategory: line.Subcategory}
		row, ok := totals[key]
		if !ok {
			row = &CategoryTotals{
				Category:    line.Category.String(),
				Subcategory: line.Subcategory.String(),
			}
			totals[key] = row
		}

		row.LineCount++
		row.ExpectedValue = row.ExpectedValue.Add(line.Derived.ExpectedValue)
		row.CountedValue = row.CountedValue.Add(line.Derived.CountedValue)
		row.VarianceValue = row.VarianceValue.Add(line.Derived.VarianceValue)
	}

	report := &ValuationReport{
		StocktakeID:  st.ID,
		TakingNumber: st.TakingNumber,
		Status:       string(st.Status),
		Categories:   make([]CategoryTotals, 0, len(totals)),
	}

	for _, row := range totals {
		row.ExpectedValueDisplay = row.ExpectedValue.StringFixed(2)
		row.CountedValueDisplay = row.CountedValue.StringFixed(2)
		row.VarianceValueDisplay = row.VarianceValue.StringFixed(2)
		report.Categories = append(report.Categories, *row)

		report.TotalExpectedValue = report.TotalExpectedValue.Add(row.ExpectedValue)
		report.TotalCountedValue = report.TotalCountedValue.Add(row.CountedValue)
		report.TotalVarianceValue = report.TotalVarianceValue.Add(row.VarianceValue)
	}

	sort.Slice(report.Categories, func(i, j int) bool {
		if report.Categories[i].Category != report.Categories[j].Category {
			return report.Categories[i].Category < report.Categories[j].Category
		}
		return report.Categories[i].Subcategory < report.Categories[j].Subcategory
	})

	report.TotalExpectedValueDisplay = report.TotalExpectedValue.StringFixed(2)
	report.TotalCountedValueDisplay = report.TotalCountedValue.StringFixed(2)
	report.TotalVarianceValueDisplay = report.TotalVarianceValue.StringFixed(2)

	return report, nil
}
