package stock

import (
	"github.com/shopspring/decimal"
)

// Movements holds the recorded stock movements of a stocktake line for
// one period, all expressed in servings. The fields are populated by
// upstream collaborators (purchasing, POS, waste logging) before the
// engine computes the expected quantity; the engine never re-reads
// movement tables itself.
type Movements struct {
	OpeningQty   decimal.Decimal `json:"opening_qty"`
	Purchases    decimal.Decimal `json:"purchases"`
	Sales        decimal.Decimal `json:"sales"`
	Waste        decimal.Decimal `json:"waste"`
	TransfersIn  decimal.Decimal `json:"transfers_in"`
	TransfersOut decimal.Decimal `json:"transfers_out"`
	Adjustments  decimal.Decimal `json:"adjustments"`

	// Manual override values, in euro, entered by staff when a movement
	// feed is missing or disputed. They ride along with the line as
	// display metadata and never enter the expected-quantity sum.
	ManualPurchasesValue decimal.Decimal `json:"manual_purchases_value"`
	ManualWasteValue     decimal.Decimal `json:"manual_waste_value"`
	ManualSalesValue     decimal.Decimal `json:"manual_sales_value"`
}

// ExpectedQuantity aggregates the movements into the quantity the
// shelf should hold:
//
//	opening + purchases - sales - waste + transfers_in - transfers_out + adjustments
//
// The manual override values are deliberately not part of this sum.
func (m Movements) ExpectedQuantity() decimal.Decimal {
	return m.OpeningQty.
		Add(m.Purchases).
		Sub(m.Sales).
		Sub(m.Waste).
		Add(m.TransfersIn).
		Sub(m.TransfersOut).
		Add(m.Adjustments)
}
