package models

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/vijay-heerarajan/billing-app/validation"
)

func TestProduct_Check(t *testing.T) {
	tests := []struct {
		name string
		p    Product
		want validation.Violations
	}{
		{"valid", Product{Name: "Rice", Rate: 50, CGSTRate: 2.5, SGSTRate: 2.5}, validation.Violations{}},
		{"free item", Product{Name: "Sample"}, validation.Violations{}},
		{"blank name", Product{Name: "  ", Rate: 1}, validation.Violations{"name": "required"}},
		{"negative rate", Product{Name: "Rice", Rate: -1}, validation.Violations{"rate": "must_not_be_negative"}},
		{"tax over 100", Product{Name: "Rice", CGSTRate: 101, SGSTRate: -1}, validation.Violations{"cgstRate": "out_of_range", "sgstRate": "out_of_range"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := validation.Struct(&tt.p)
			if len(got) != len(tt.want) {
				t.Fatalf("Struct() = %v, want %v", got, tt.want)
			}
			for field, code := range tt.want {
				if got[field] != code {
					t.Errorf("got[%q] = %q, want %q", field, got[field], code)
				}
			}
		})
	}
}

func TestInvoice_Totals(t *testing.T) {
	inv := Invoice{
		Items: []InvoiceItem{
			{TaxableValue: 100},
			{TaxableValue: 25.5},
		},
		TotalCGST: 9,
		TotalSGST: 9,
	}
	if got := inv.TotalTaxableValue(); got != 125.5 {
		t.Errorf("TotalTaxableValue() = %v, want 125.5", got)
	}
	if got := inv.TotalGST(); got != 18 {
		t.Errorf("TotalGST() = %v, want 18", got)
	}
}

func TestProfile_Identity(t *testing.T) {
	c := Credential{Profile: Profile{ID: "u1", Email: "a@b.co", Name: "A", BusinessName: "B"}, PasswordHash: "hash"}
	id := c.Identity()
	if id != (AuthUser{ID: "u1", Email: "a@b.co", Name: "A"}) {
		t.Errorf("Identity() = %+v", id)
	}
	b, err := json.Marshal(c.Profile)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(b), "hash") {
		t.Errorf("profile JSON %s contains the password hash", b)
	}
}

func TestInvoice_JSONFieldNames(t *testing.T) {
	b, err := json.Marshal(Invoice{InvoiceNo: "INV2024030001", Items: []InvoiceItem{{CGSTRate: 9}}})
	if err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{`"invoiceNo"`, `"customerName"`, `"totalCgst"`, `"totalSgst"`, `"amountInWords"`, `"cgstRate"`, `"taxableValue"`} {
		if !strings.Contains(string(b), key) {
			t.Errorf("invoice JSON missing %s: %s", key, b)
		}
	}
	if strings.Contains(string(b), "deliveryDate") {
		t.Errorf("empty deliveryDate should be omitted: %s", b)
	}
}
