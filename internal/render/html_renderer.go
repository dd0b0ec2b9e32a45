package render

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/vijay-heerarajan/billing-app/internal/money"
)

const invoiceHTMLTemplate = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <title>Tax Invoice {{.Invoice.Number}}</title>
  <style>
    * { box-sizing: border-box; }
    body {
      margin: 0;
      padding: 24px;
      font-family: "Helvetica Neue", Arial, sans-serif;
      font-size: 13px;
      color: #111827;
    }
    .invoice { max-width: 960px; margin: 0 auto; }
    .header { text-align: center; border-bottom: 2px solid #111827; padding-bottom: 12px; margin-bottom: 16px; }
    .header h1 { margin: 0 0 4px; font-size: 22px; }
    .title { text-align: center; font-weight: bold; letter-spacing: 0.08em; margin-bottom: 12px; }
    .parties { display: flex; justify-content: space-between; margin-bottom: 16px; }
    .label { color: #6b7280; text-transform: uppercase; font-size: 11px; letter-spacing: 0.04em; }
    table { width: 100%; border-collapse: collapse; }
    th, td { border: 1px solid #d1d5db; padding: 6px; }
    th { background: #f3f4f6; font-size: 11px; }
    td.num { text-align: right; }
    tr.totals td { font-weight: bold; }
    .summary { display: flex; justify-content: space-between; margin-top: 16px; }
    .summary table { width: 320px; }
    .words { margin-top: 12px; }
    .footer { margin-top: 24px; display: flex; justify-content: space-between; }
  </style>
</head>
<body>
  <div class="invoice">
    <div class="header">
      <h1>{{.Business.Name}}</h1>
      {{if .Business.Address}}<div>{{.Business.Address}}</div>{{end}}
      <div>{{if .Business.Phone}}Phone: {{.Business.Phone}}{{end}}{{if .Business.Email}} | Email: {{.Business.Email}}{{end}}</div>
      {{if .Business.GSTNo}}<div><strong>GSTIN: {{.Business.GSTNo}}</strong></div>{{end}}
    </div>
    <div class="title">TAX INVOICE</div>

    <div class="parties">
      <div>
        <div class="label">Bill To</div>
        <div><strong>{{.Invoice.CustomerName}}</strong></div>
        {{if .Invoice.CustomerAddress}}<div>{{.Invoice.CustomerAddress}}</div>{{end}}
      </div>
      <div>
        <div>Invoice No: <strong>{{.Invoice.Number}}</strong></div>
        <div>Date: {{formatDate .Invoice.Date}}</div>
        {{if .Invoice.DeliveryDate}}<div>Delivery Date: {{.Invoice.DeliveryDate}}</div>{{end}}
      </div>
    </div>

    <table>
      <thead>
        <tr>
          <th rowspan="2">S.No</th>
          <th rowspan="2">Product</th>
          <th rowspan="2">HSN</th>
          <th rowspan="2">Qty</th>
          <th rowspan="2">Rate</th>
          <th rowspan="2">Taxable Value</th>
          <th colspan="2">CGST</th>
          <th colspan="2">SGST</th>
          <th rowspan="2">Amount</th>
        </tr>
        <tr>
          <th>%</th><th>Amt</th><th>%</th><th>Amt</th>
        </tr>
      </thead>
      <tbody>
        {{range .Items}}
        <tr>
          <td>{{.SNo}}</td>
          <td>{{.ProductName}}</td>
          <td>{{.HSN}}</td>
          <td class="num">{{formatQuantity .Qty}}</td>
          <td class="num">{{formatMoney .Rate}}</td>
          <td class="num">{{formatMoney .TaxableValue}}</td>
          <td class="num">{{formatQuantity .CGSTRate}}</td>
          <td class="num">{{formatMoney .CGSTAmount}}</td>
          <td class="num">{{formatQuantity .SGSTRate}}</td>
          <td class="num">{{formatMoney .SGSTAmount}}</td>
          <td class="num">{{formatMoney .NetAmount}}</td>
        </tr>
        {{end}}
        <tr class="totals">
          <td colspan="5">Total</td>
          <td class="num">{{formatMoney .Invoice.TotalTaxableValue}}</td>
          <td></td>
          <td class="num">{{formatMoney .Invoice.TotalCGST}}</td>
          <td></td>
          <td class="num">{{formatMoney .Invoice.TotalSGST}}</td>
          <td class="num">{{formatMoney .Invoice.TotalAmount}}</td>
        </tr>
      </tbody>
    </table>

    <div class="summary">
      <div>
        {{if .Business.BankName}}
        <div class="label">Bank Details</div>
        <div>Bank: {{.Business.BankName}}</div>
        <div>A/c No: {{.Business.AccountNo}}</div>
        <div>IFSC: {{.Business.IFSC}}</div>
        {{end}}
      </div>
      <table>
        <tr><td>Taxable Value</td><td class="num">{{formatMoney .Invoice.TotalTaxableValue}}</td></tr>
        <tr><td>CGST</td><td class="num">{{formatMoney .Invoice.TotalCGST}}</td></tr>
        <tr><td>SGST</td><td class="num">{{formatMoney .Invoice.TotalSGST}}</td></tr>
        <tr><td>Round Off</td><td class="num">{{formatSigned .Invoice.RoundOff}}</td></tr>
        <tr class="totals"><td>Grand Total</td><td class="num">{{formatINR .Invoice.RoundedTotal}}</td></tr>
      </table>
    </div>

    <div class="words"><span class="label">Rupees In Words:</span> {{.Invoice.AmountInWords}}</div>

    <div class="footer">
      <div>Receiver's Signature</div>
      <div>For {{.Business.Name}}<br /><br />Authorised Signatory</div>
    </div>
  </div>
</body>
</html>
`

type HTMLRenderer struct {
	tpl *template.Template
}

func NewRenderer() Renderer {
	funcs := template.FuncMap{
		"formatMoney":    money.Format,
		"formatINR":      money.FormatINR,
		"formatSigned":   formatSigned,
		"formatDate":     formatDate,
		"formatQuantity": formatQuantity,
	}
	return &HTMLRenderer{
		tpl: template.Must(template.New("invoice").Funcs(funcs).Parse(invoiceHTMLTemplate)),
	}
}

func (r *HTMLRenderer) RenderHTML(input RenderInput) (string, error) {
	if strings.TrimSpace(input.Business.Name) == "" {
		input.Business.Name = "Tax Invoice"
	}
	var buf bytes.Buffer
	if err := r.tpl.Execute(&buf, input); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func formatDate(value time.Time) string {
	if value.IsZero() {
		return "-"
	}
	return value.Format("02/01/2006")
}

func formatQuantity(value float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", value), "0"), ".")
}

func formatSigned(value float64) string {
	s := money.Format(value)
	if !strings.HasPrefix(s, "-") {
		s = "+" + s
	}
	return s
}
