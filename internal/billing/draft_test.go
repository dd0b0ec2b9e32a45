package billing

import (
	"testing"
	"time"

	"github.com/vijay-heerarajan/billing-app/internal/models"
)

var (
	notebook = models.Product{ID: "p1", Name: "Notebook", HSN: "4820", Rate: 45.5, CGSTRate: 6, SGSTRate: 6}
	pen      = models.Product{ID: "p2", Name: "Pen", HSN: "9608", Rate: 12.25, CGSTRate: 9, SGSTRate: 9}
)

func TestNewDraft_Numbering(t *testing.T) {
	now := time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)
	d := NewDraft([]models.Invoice{{InvoiceNo: "INV2025030004"}}, now)
	if d.InvoiceNo != "INV2025030005" {
		t.Errorf("InvoiceNo = %q, want INV2025030005", d.InvoiceNo)
	}
	if !d.Date.Equal(now) {
		t.Errorf("Date = %v, want %v", d.Date, now)
	}
}

func TestDraft_AddAndRemove(t *testing.T) {
	d := &Draft{InvoiceNo: "INV2025030001", CustomerName: "Acme"}

	first, err := d.AddItem(notebook, 3)
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if _, err := d.AddItem(pen, 10); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if len(d.Items) != 2 {
		t.Fatalf("len(Items) = %d, want 2", len(d.Items))
	}

	if !d.RemoveItem(first.ID) {
		t.Fatal("RemoveItem() = false for existing item")
	}
	if d.RemoveItem(first.ID) {
		t.Error("RemoveItem() = true for already removed item")
	}
	if len(d.Items) != 1 || d.Items[0].ProductName != "Pen" {
		t.Errorf("unexpected items after removal: %+v", d.Items)
	}
}

func TestDraft_AddItemRejectsNegativeQuantity(t *testing.T) {
	d := &Draft{}
	if _, err := d.AddItem(notebook, -2); err != ErrInvalidQuantityOrRate {
		t.Fatalf("AddItem() error = %v, want ErrInvalidQuantityOrRate", err)
	}
	if len(d.Items) != 0 {
		t.Errorf("rejected item was appended")
	}
}

func TestDraft_FinalizeRequiresFields(t *testing.T) {
	tests := []struct {
		name  string
		draft Draft
	}{
		{"no number", Draft{CustomerName: "Acme", Items: []models.InvoiceItem{NewItem(pen, 1)}}},
		{"no customer", Draft{InvoiceNo: "INV2025030001", Items: []models.InvoiceItem{NewItem(pen, 1)}}},
		{"blank customer", Draft{InvoiceNo: "INV2025030001", CustomerName: "  ", Items: []models.InvoiceItem{NewItem(pen, 1)}}},
		{"no items", Draft{InvoiceNo: "INV2025030001", CustomerName: "Acme"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.draft.Finalize("id"); err != ErrIncompleteInvoice {
				t.Errorf("Finalize() error = %v, want ErrIncompleteInvoice", err)
			}
		})
	}
}

func TestDraft_Finalize(t *testing.T) {
	d := &Draft{
		InvoiceNo:       "INV2025030001",
		Date:            time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC),
		DeliveryDate:    "01/03/2025 - 03/03/2025",
		CustomerName:    "Acme Traders",
		CustomerAddress: "12 MG Road, Pune",
	}
	_, _ = d.AddItem(notebook, 3)
	_, _ = d.AddItem(pen, 10)

	inv, err := d.Finalize("inv-1")
	if err != nil {
		t.Fatalf("Finalize: %v", err)
	}
	if inv.ID != "inv-1" || inv.InvoiceNo != "INV2025030001" || inv.DeliveryDate != d.DeliveryDate {
		t.Errorf("header not copied: %+v", inv)
	}
	totals := d.Totals()
	if inv.TotalAmount != totals.TotalAmount || inv.TotalCGST != totals.TotalCGST || inv.TotalSGST != totals.TotalSGST {
		t.Errorf("totals = %v/%v/%v, want %+v", inv.TotalAmount, inv.TotalCGST, inv.TotalSGST, totals)
	}
	// 3*45.5*1.12 + 10*12.25*1.18 = 152.88 + 144.55 = 297.43
	if inv.AmountInWords != "Two Hundred Ninety Seven Only" {
		t.Errorf("AmountInWords = %q", inv.AmountInWords)
	}
	if !Recompute(inv) {
		t.Error("Recompute() = false for a freshly finalized invoice")
	}

	// The invoice must not share its item slice with the draft.
	d.RemoveItem(d.Items[0].ID)
	if len(inv.Items) != 2 {
		t.Errorf("finalized invoice changed when the draft was edited")
	}
}

func TestRecompute_DetectsTampering(t *testing.T) {
	d := &Draft{InvoiceNo: "INV2025030001", CustomerName: "Acme"}
	_, _ = d.AddItem(pen, 4)
	inv, _ := d.Finalize("x")
	inv.TotalAmount += 1
	if Recompute(inv) {
		t.Error("Recompute() = true for tampered totals")
	}
}
