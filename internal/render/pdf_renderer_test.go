package render

import (
	"bytes"
	"testing"
)

func TestRenderPDF(t *testing.T) {
	profile, inv := sampleInvoice(t)
	out, err := NewPDFRenderer().RenderPDF(NewInput(profile, inv))
	if err != nil {
		t.Fatalf("RenderPDF() error = %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Errorf("RenderPDF() output is not a PDF document")
	}
}

func TestRenderPDF_Empty(t *testing.T) {
	out, err := NewPDFRenderer().RenderPDF(RenderInput{})
	if err != nil {
		t.Fatalf("RenderPDF() error = %v", err)
	}
	if len(out) == 0 {
		t.Errorf("RenderPDF() returned no bytes")
	}
}

func TestItemColumns(t *testing.T) {
	var width int
	titles := make(map[string]int)
	for i, c := range itemColumns {
		width += c.size
		titles[c.title] = i
	}
	if width != gridSize {
		t.Errorf("item columns span %d, want %d", width, gridSize)
	}

	profile, inv := sampleInvoice(t)
	in := NewInput(profile, inv)
	cells := itemCells(in.Items[0])
	if len(cells) != len(itemColumns) {
		t.Fatalf("itemCells() has %d cells for %d columns", len(cells), len(itemColumns))
	}
	for title, want := range map[string]string{
		"Product": "Widget",
		"CGST %":  "9",
		"CGST":    "17.91",
		"SGST %":  "9",
		"Amount":  "234.82",
	} {
		i, ok := titles[title]
		if !ok {
			t.Errorf("missing column %q", title)
			continue
		}
		if cells[i] != want {
			t.Errorf("%s cell = %q, want %q", title, cells[i], want)
		}
	}
}
