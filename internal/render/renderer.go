// Package render produces the printable invoice document.
package render

import (
	"time"

	"github.com/vijay-heerarajan/billing-app/internal/billing"
	"github.com/vijay-heerarajan/billing-app/internal/models"
)

// RenderInput is everything printed on an invoice.
type RenderInput struct {
	Business BusinessView
	Invoice  InvoiceView
	Items    []LineItemView
}

type BusinessView struct {
	Name      string
	Address   string
	Phone     string
	Email     string
	GSTNo     string
	BankName  string
	AccountNo string
	IFSC      string
}

type InvoiceView struct {
	Number            string
	Date              time.Time
	DeliveryDate      string
	CustomerName      string
	CustomerAddress   string
	TotalTaxableValue float64
	TotalCGST         float64
	TotalSGST         float64
	TotalGST          float64
	TotalAmount       float64
	RoundOff          float64
	RoundedTotal      float64
	AmountInWords     string
}

type LineItemView struct {
	SNo          int
	ProductName  string
	HSN          string
	Qty          float64
	Rate         float64
	TaxableValue float64
	CGSTRate     float64
	CGSTAmount   float64
	SGSTRate     float64
	SGSTAmount   float64
	NetAmount    float64
}

type Renderer interface {
	RenderHTML(input RenderInput) (string, error)
}

// NewInput builds the render input for inv issued by the business in p.
func NewInput(p models.Profile, inv models.Invoice) RenderInput {
	rounded, residual := billing.RoundOff(inv.TotalAmount)
	in := RenderInput{
		Business: BusinessView{
			Name:      p.BusinessName,
			Address:   p.BusinessAddress,
			Phone:     p.Phone,
			Email:     p.Email,
			GSTNo:     p.GSTNo,
			BankName:  p.BankDetails.BankName,
			AccountNo: p.BankDetails.AccountNo,
			IFSC:      p.BankDetails.IFSC,
		},
		Invoice: InvoiceView{
			Number:            inv.InvoiceNo,
			Date:              inv.Date,
			DeliveryDate:      inv.DeliveryDate,
			CustomerName:      inv.CustomerName,
			CustomerAddress:   inv.CustomerAddress,
			TotalTaxableValue: inv.TotalTaxableValue(),
			TotalCGST:         inv.TotalCGST,
			TotalSGST:         inv.TotalSGST,
			TotalGST:          inv.TotalGST(),
			TotalAmount:       inv.TotalAmount,
			RoundOff:          residual,
			RoundedTotal:      rounded,
			AmountInWords:     inv.AmountInWords,
		},
	}
	for i, item := range inv.Items {
		in.Items = append(in.Items, LineItemView{
			SNo:          i + 1,
			ProductName:  item.ProductName,
			HSN:          item.HSN,
			Qty:          item.Qty,
			Rate:         item.Rate,
			TaxableValue: item.TaxableValue,
			CGSTRate:     item.CGSTRate,
			CGSTAmount:   item.CGSTAmount,
			SGSTRate:     item.SGSTRate,
			SGSTAmount:   item.SGSTAmount,
			NetAmount:    item.NetAmount,
		})
	}
	return in
}
