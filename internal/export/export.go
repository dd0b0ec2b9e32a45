// Package export writes the invoice history as an Excel workbook.
package export

import (
	"fmt"
	"io"

	"github.com/vijay-heerarajan/billing-app/internal/models"
	"github.com/vijay-heerarajan/billing-app/internal/money"
	"github.com/xuri/excelize/v2"
)

const (
	InvoicesSheet = "Invoices"
	ItemsSheet    = "Items"
)

var (
	invoiceHeadings = []any{"Invoice No", "Date", "Delivery Date", "Customer", "Customer Address", "Items", "Taxable Value", "CGST", "SGST", "Total GST", "Total", "Amount In Words"}
	itemHeadings    = []any{"Invoice No", "S.No", "Product", "HSN", "Qty", "Rate", "Taxable Value", "CGST %", "CGST", "SGST %", "SGST", "Amount"}
)

// Workbook builds a workbook with one row per invoice on the Invoices sheet
// and one row per line on the Items sheet. Amounts are rounded to paise.
func Workbook(invoices []models.Invoice) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := fill(f, invoices); err != nil {
		_ = f.Close()
		return nil, err
	}
	return f, nil
}

func fill(f *excelize.File, invoices []models.Invoice) error {
	if err := f.SetSheetName("Sheet1", InvoicesSheet); err != nil {
		return err
	}
	if _, err := f.NewSheet(ItemsSheet); err != nil {
		return err
	}
	if err := setRow(f, InvoicesSheet, 1, invoiceHeadings); err != nil {
		return err
	}
	if err := setRow(f, ItemsSheet, 1, itemHeadings); err != nil {
		return err
	}

	itemRow := 2
	for i := range invoices {
		inv := &invoices[i]
		if err := setRow(f, InvoicesSheet, i+2, []any{
			inv.InvoiceNo,
			inv.Date.Format("2006-01-02"),
			inv.DeliveryDate,
			inv.CustomerName,
			inv.CustomerAddress,
			len(inv.Items),
			money.Round2(inv.TotalTaxableValue()),
			money.Round2(inv.TotalCGST),
			money.Round2(inv.TotalSGST),
			money.Round2(inv.TotalGST()),
			money.Round2(inv.TotalAmount),
			inv.AmountInWords,
		}); err != nil {
			return err
		}
		for j, item := range inv.Items {
			if err := setRow(f, ItemsSheet, itemRow, []any{
				inv.InvoiceNo,
				j + 1,
				item.ProductName,
				item.HSN,
				item.Qty,
				money.Round2(item.Rate),
				money.Round2(item.TaxableValue),
				item.CGSTRate,
				money.Round2(item.CGSTAmount),
				item.SGSTRate,
				money.Round2(item.SGSTAmount),
				money.Round2(item.NetAmount),
			}); err != nil {
				return err
			}
			itemRow++
		}
	}
	return nil
}

// Write streams the workbook for invoices to w.
func Write(w io.Writer, invoices []models.Invoice) error {
	f, err := Workbook(invoices)
	if err != nil {
		return fmt.Errorf("build workbook: %w", err)
	}
	defer f.Close()
	return f.Write(w)
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}
