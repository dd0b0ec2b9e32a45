package models

import "time"

// InvoiceItem is a line on an invoice. Every numeric field is derived from a
// product snapshot and the quantity at the time the line was added.
type InvoiceItem struct {
	ID           string  `json:"id"`
	ProductName  string  `json:"productName"`
	HSN          string  `json:"hsn"`
	Qty          float64 `json:"qty"`
	Rate         float64 `json:"rate"`
	TaxableValue float64 `json:"taxableValue"`
	CGSTRate     float64 `json:"cgstRate"`
	CGSTAmount   float64 `json:"cgstAmount"`
	SGSTRate     float64 `json:"sgstRate"`
	SGSTAmount   float64 `json:"sgstAmount"`
	NetAmount    float64 `json:"netAmount"`
}

// Invoice is a finalized invoice. It is read-only once persisted.
type Invoice struct {
	ID              string        `json:"id"`
	InvoiceNo       string        `json:"invoiceNo"`
	Date            time.Time     `json:"date"`
	DeliveryDate    string        `json:"deliveryDate,omitempty"` // single date or "dd/mm/yyyy - dd/mm/yyyy"
	CustomerName    string        `json:"customerName"`
	CustomerAddress string        `json:"customerAddress"`
	Items           []InvoiceItem `json:"items"`
	TotalAmount     float64       `json:"totalAmount"`
	TotalCGST       float64       `json:"totalCgst"`
	TotalSGST       float64       `json:"totalSgst"`
	AmountInWords   string        `json:"amountInWords"`
}

// TotalTaxableValue sums the pre-tax value of every line.
func (i *Invoice) TotalTaxableValue() float64 {
	var total float64
	for _, item := range i.Items {
		total += item.TaxableValue
	}
	return total
}

// TotalGST returns the combined CGST and SGST amount.
func (i *Invoice) TotalGST() float64 {
	return i.TotalCGST + i.TotalSGST
}
