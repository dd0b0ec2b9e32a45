package billing

import (
	"strings"
	"time"

	"github.com/vijay-heerarajan/billing-app/internal/models"
)

// Draft is an invoice under construction. Items can be added and removed
// until Finalize produces the immutable invoice.
type Draft struct {
	InvoiceNo       string               `json:"invoiceNo"`
	Date            time.Time            `json:"date"`
	DeliveryDate    string               `json:"deliveryDate,omitempty"`
	CustomerName    string               `json:"customerName"`
	CustomerAddress string               `json:"customerAddress"`
	Items           []models.InvoiceItem `json:"items"`
}

// NewDraft starts an empty draft numbered from the existing invoices.
func NewDraft(existing []models.Invoice, now time.Time) *Draft {
	return &Draft{
		InvoiceNo: NextInvoiceNumberFor(existing, now),
		Date:      now,
	}
}

// AddItem appends a line for qty units of p.
func (d *Draft) AddItem(p models.Product, qty float64) (models.InvoiceItem, error) {
	if err := ValidateQuantityAndRate(qty, p.Rate); err != nil {
		return models.InvoiceItem{}, err
	}
	item := NewItem(p, qty)
	d.Items = append(d.Items, item)
	return item, nil
}

// RemoveItem drops the line with the given id and reports whether it existed.
func (d *Draft) RemoveItem(id string) bool {
	for i, item := range d.Items {
		if item.ID == id {
			d.Items = append(d.Items[:i:i], d.Items[i+1:]...)
			return true
		}
	}
	return false
}

// Totals returns the running totals of the draft.
func (d *Draft) Totals() Totals {
	return InvoiceTotals(d.Items)
}

// Finalize turns the draft into an invoice with the given id.
func (d *Draft) Finalize(id string) (models.Invoice, error) {
	if strings.TrimSpace(d.InvoiceNo) == "" || strings.TrimSpace(d.CustomerName) == "" || len(d.Items) == 0 {
		return models.Invoice{}, ErrIncompleteInvoice
	}
	items := make([]models.InvoiceItem, len(d.Items))
	copy(items, d.Items)
	totals := InvoiceTotals(items)
	return models.Invoice{
		ID:              id,
		InvoiceNo:       d.InvoiceNo,
		Date:            d.Date,
		DeliveryDate:    d.DeliveryDate,
		CustomerName:    d.CustomerName,
		CustomerAddress: d.CustomerAddress,
		Items:           items,
		TotalAmount:     totals.TotalAmount,
		TotalCGST:       totals.TotalCGST,
		TotalSGST:       totals.TotalSGST,
		AmountInWords:   AmountInWords(totals.TotalAmount),
	}, nil
}

// Recompute reports whether the stored totals and words of inv match a
// fresh computation over its own items.
func Recompute(inv models.Invoice) bool {
	t := InvoiceTotals(inv.Items)
	return t.TotalAmount == inv.TotalAmount &&
		t.TotalCGST == inv.TotalCGST &&
		t.TotalSGST == inv.TotalSGST &&
		AmountInWords(t.TotalAmount) == inv.AmountInWords
}
