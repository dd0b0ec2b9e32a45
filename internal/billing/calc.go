// Package billing implements GST invoice arithmetic, invoice numbering and the
// Indian number-to-words conversion used on printed invoices.
//
// Amounts are kept at full float64 precision throughout; rounding is applied
// once, when the grand total is converted to words.
package billing

import (
	"math"

	"github.com/google/uuid"
	"github.com/vijay-heerarajan/billing-app/internal/models"
)

// Totals are the aggregate figures of an invoice.
type Totals struct {
	TotalAmount float64 `json:"totalAmount"`
	TotalCGST   float64 `json:"totalCgst"`
	TotalSGST   float64 `json:"totalSgst"`
}

// LineAmount returns the taxable value of qty units at rate.
func LineAmount(qty, rate float64) float64 {
	return qty * rate
}

// GSTAmount returns ratePercent percent of taxableValue.
func GSTAmount(taxableValue, ratePercent float64) float64 {
	return taxableValue * ratePercent / 100
}

// NetAmount returns the line total including both tax components.
func NetAmount(taxableValue, cgstAmount, sgstAmount float64) float64 {
	return taxableValue + cgstAmount + sgstAmount
}

// InvoiceTotals sums the items in list order. An empty list yields zero totals.
func InvoiceTotals(items []models.InvoiceItem) Totals {
	var t Totals
	for _, item := range items {
		t.TotalAmount += item.NetAmount
		t.TotalCGST += item.CGSTAmount
		t.TotalSGST += item.SGSTAmount
	}
	return t
}

// RoundOff rounds amount half away from zero and returns the signed residual
// (rounded - amount) shown on the printed invoice.
func RoundOff(amount float64) (rounded, residual float64) {
	rounded = math.Round(amount)
	return rounded, rounded - amount
}

// ValidateQuantityAndRate rejects negative, NaN and infinite inputs.
func ValidateQuantityAndRate(qty, rate float64) error {
	for _, v := range []float64{qty, rate} {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrInvalidQuantityOrRate
		}
	}
	return nil
}

// NewItem builds an invoice line from a product snapshot and a quantity.
func NewItem(p models.Product, qty float64) models.InvoiceItem {
	taxable := LineAmount(qty, p.Rate)
	cgst := GSTAmount(taxable, p.CGSTRate)
	sgst := GSTAmount(taxable, p.SGSTRate)
	return models.InvoiceItem{
		ID:           uuid.NewString(),
		ProductName:  p.Name,
		HSN:          p.HSN,
		Qty:          qty,
		Rate:         p.Rate,
		TaxableValue: taxable,
		CGSTRate:     p.CGSTRate,
		CGSTAmount:   cgst,
		SGSTRate:     p.SGSTRate,
		SGSTAmount:   sgst,
		NetAmount:    NetAmount(taxable, cgst, sgst),
	}
}
