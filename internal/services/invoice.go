// Package services composes the billing engine with the repositories.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/vijay-heerarajan/billing-app/internal/billing"
	"github.com/vijay-heerarajan/billing-app/internal/logging"
	"github.com/vijay-heerarajan/billing-app/internal/models"
	"github.com/vijay-heerarajan/billing-app/internal/repository"
	"github.com/vijay-heerarajan/billing-app/internal/session"
	"github.com/vijay-heerarajan/billing-app/validation"
)

type InvoiceService struct {
	products *repository.Products
	invoices *repository.Invoices
	log      logrus.FieldLogger
	now      func() time.Time
}

func NewInvoiceService(products *repository.Products, invoices *repository.Invoices, log logrus.FieldLogger) *InvoiceService {
	return &InvoiceService{products: products, invoices: invoices, log: log, now: time.Now}
}

// LineRequest asks for Qty units of the catalog product named ProductName.
type LineRequest struct {
	ProductName string  `json:"productName"`
	Qty         float64 `json:"qty"`
}

// GenerateRequest is everything needed to issue an invoice. A zero Date
// means today.
type GenerateRequest struct {
	CustomerName    string        `json:"customerName" validate:"required"`
	CustomerAddress string        `json:"customerAddress"`
	DeliveryDate    string        `json:"deliveryDate,omitempty"`
	Date            time.Time     `json:"date,omitempty"`
	Items           []LineRequest `json:"items" validate:"required,min=1"`
}

// Check flags each line with a blank product name or a negative quantity,
// keyed as items[i].field.
func (r GenerateRequest) Check(v validation.Violations) {
	for i, line := range r.Items {
		validation.Required(fmt.Sprintf("items[%d].productName", i), line.ProductName, v)
		validation.NonNegativeFloat(fmt.Sprintf("items[%d].qty", i), line.Qty, v)
	}
}

// Summary aggregates the invoice history of a user.
type Summary struct {
	Count             int     `json:"count"`
	TotalTaxableValue float64 `json:"totalTaxableValue"`
	TotalGST          float64 `json:"totalGst"`
	TotalAmount       float64 `json:"totalAmount"`
}

// NextNumber previews the number the next invoice will get.
func (s *InvoiceService) NextNumber(ctx context.Context, sess session.Session) (string, error) {
	numbers, err := s.invoices.Numbers(ctx, sess)
	if err != nil {
		return "", err
	}
	return billing.NextInvoiceNumber(numbers, s.now()), nil
}

// NewDraft starts a draft numbered after the user's history.
func (s *InvoiceService) NewDraft(ctx context.Context, sess session.Session) (*billing.Draft, error) {
	existing, err := s.invoices.List(ctx, sess)
	if err != nil {
		return nil, err
	}
	return billing.NewDraft(existing, s.now()), nil
}

// AddItemByName looks the product up by exact name and adds it to d.
func (s *InvoiceService) AddItemByName(ctx context.Context, sess session.Session, d *billing.Draft, name string, qty float64) (models.InvoiceItem, error) {
	p, ok, err := s.products.FindByName(ctx, sess, name)
	if err != nil {
		return models.InvoiceItem{}, err
	}
	if !ok {
		return models.InvoiceItem{}, fmt.Errorf("%w: %q", billing.ErrProductNotFound, name)
	}
	return d.AddItem(p, qty)
}

// Generate builds, finalizes and stores an invoice. Nothing is stored when
// any line fails.
func (s *InvoiceService) Generate(ctx context.Context, sess session.Session, req GenerateRequest) (models.Invoice, error) {
	if !sess.Active() {
		return models.Invoice{}, repository.ErrNoActiveUser
	}
	d, err := s.NewDraft(ctx, sess)
	if err != nil {
		return models.Invoice{}, err
	}
	if !req.Date.IsZero() {
		d.Date = req.Date
	}
	d.CustomerName = req.CustomerName
	d.CustomerAddress = req.CustomerAddress
	d.DeliveryDate = req.DeliveryDate
	for _, line := range req.Items {
		if _, err := s.AddItemByName(ctx, sess, d, line.ProductName, line.Qty); err != nil {
			return models.Invoice{}, err
		}
	}
	inv, err := d.Finalize(uuid.NewString())
	if err != nil {
		return models.Invoice{}, err
	}
	if err := s.invoices.Append(ctx, sess, inv); err != nil {
		logging.LogError(s.log, "services", "Generate", "append invoice", inv.InvoiceNo, err)
		return models.Invoice{}, err
	}
	s.log.WithFields(logrus.Fields{
		"user":      sess.User.ID,
		"invoiceNo": inv.InvoiceNo,
		"items":     len(inv.Items),
		"total":     inv.TotalAmount,
	}).Info("invoice generated")
	return inv, nil
}

// ComputeTotals recomputes the totals of inv from its items.
func (s *InvoiceService) ComputeTotals(inv *models.Invoice) billing.Totals {
	return billing.InvoiceTotals(inv.Items)
}

// Summary totals the user's invoice history.
func (s *InvoiceService) Summary(ctx context.Context, sess session.Session) (Summary, error) {
	invoices, err := s.invoices.List(ctx, sess)
	if err != nil {
		return Summary{}, err
	}
	var sum Summary
	for i := range invoices {
		t := s.ComputeTotals(&invoices[i])
		sum.Count++
		sum.TotalTaxableValue += invoices[i].TotalTaxableValue()
		sum.TotalGST += t.TotalCGST + t.TotalSGST
		sum.TotalAmount += t.TotalAmount
	}
	return sum, nil
}
