package render

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/vijay-heerarajan/billing-app/internal/money"
)

// PDFRenderer lays the invoice out on an A4 page.
type PDFRenderer struct{}

func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

var (
	headingText = props.Text{Size: 14, Style: fontstyle.Bold, Align: align.Center}
	centerText  = props.Text{Size: 9, Align: align.Center}
	labelText   = props.Text{Size: 8, Style: fontstyle.Bold}
	cellText    = props.Text{Size: 8}
	numberText  = props.Text{Size: 8, Align: align.Right}
	totalText   = props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Right}
)

// gridSize is the column count of every row on the page.
const gridSize = 16

// itemColumns are the grid widths of the item table; they sum to gridSize.
var itemColumns = []struct {
	title   string
	size    int
	numeric bool
}{
	{"S.No", 1, false}, {"Product", 4, false}, {"HSN", 1, false},
	{"Qty", 1, true}, {"Rate", 1, true}, {"Taxable", 2, true},
	{"CGST %", 1, true}, {"CGST", 1, true}, {"SGST %", 1, true}, {"SGST", 1, true},
	{"Amount", 2, true},
}

// itemCells returns the text of each item column for one line.
func itemCells(item LineItemView) []string {
	return []string{
		fmt.Sprint(item.SNo),
		item.ProductName,
		item.HSN,
		formatQuantity(item.Qty),
		money.Format(item.Rate),
		money.Format(item.TaxableValue),
		formatQuantity(item.CGSTRate),
		money.Format(item.CGSTAmount),
		formatQuantity(item.SGSTRate),
		money.Format(item.SGSTAmount),
		money.Format(item.NetAmount),
	}
}

func (r *PDFRenderer) RenderPDF(input RenderInput) ([]byte, error) {
	if input.Business.Name == "" {
		input.Business.Name = "Tax Invoice"
	}
	cfg := config.NewBuilder().
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithMaxGridSize(gridSize).
		Build()
	m := maroto.New(cfg)

	m.AddRows(text.NewRow(8, input.Business.Name, headingText))
	if input.Business.Address != "" {
		m.AddRows(text.NewRow(5, input.Business.Address, centerText))
	}
	if input.Business.GSTNo != "" {
		m.AddRows(text.NewRow(5, "GSTIN: "+input.Business.GSTNo, centerText))
	}
	m.AddRows(line.NewRow(4))
	m.AddRows(text.NewRow(7, "TAX INVOICE", props.Text{Size: 11, Style: fontstyle.Bold, Align: align.Center}))

	inv := input.Invoice
	half := gridSize / 2
	m.AddRow(5,
		text.NewCol(half, "Bill To: "+inv.CustomerName, labelText),
		text.NewCol(half, "Invoice No: "+inv.Number, props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Right}),
	)
	m.AddRow(5,
		text.NewCol(half, inv.CustomerAddress, cellText),
		text.NewCol(half, "Date: "+formatDate(inv.Date), numberText),
	)
	if inv.DeliveryDate != "" {
		m.AddRow(5, text.NewCol(gridSize, "Delivery Date: "+inv.DeliveryDate, numberText))
	}
	m.AddRows(line.NewRow(4))

	header := make([]core.Col, 0, len(itemColumns))
	for _, c := range itemColumns {
		header = append(header, text.NewCol(c.size, c.title, labelText))
	}
	m.AddRow(6, header...)
	for _, item := range input.Items {
		cells := itemCells(item)
		cols := make([]core.Col, 0, len(itemColumns))
		for i, c := range itemColumns {
			style := cellText
			if c.numeric {
				style = numberText
			}
			cols = append(cols, text.NewCol(c.size, cells[i], style))
		}
		m.AddRow(5, cols...)
	}
	m.AddRows(line.NewRow(4))

	for _, row := range []struct {
		label, value string
	}{
		{"Taxable Value", money.Format(inv.TotalTaxableValue)},
		{"CGST", money.Format(inv.TotalCGST)},
		{"SGST", money.Format(inv.TotalSGST)},
		{"Total GST", money.Format(inv.TotalGST)},
		{"Round Off", formatSigned(inv.RoundOff)},
		{"Grand Total", "Rs. " + money.Format(inv.RoundedTotal)},
	} {
		m.AddRow(5,
			text.NewCol(gridSize-5, row.label, totalText),
			text.NewCol(5, row.value, totalText),
		)
	}
	m.AddRows(text.NewRow(8, "Rupees In Words: "+inv.AmountInWords, props.Text{Top: 2, Size: 9, Style: fontstyle.Bold}))

	if input.Business.BankName != "" {
		m.AddRows(
			text.NewRow(5, "Bank: "+input.Business.BankName, cellText),
			text.NewRow(5, "A/c No: "+input.Business.AccountNo, cellText),
			text.NewRow(5, "IFSC: "+input.Business.IFSC, cellText),
		)
	}
	m.AddRows(text.NewRow(12, "For "+input.Business.Name+" - Authorised Signatory", props.Text{Top: 6, Size: 8, Align: align.Right}))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate pdf: %w", err)
	}
	return doc.GetBytes(), nil
}
