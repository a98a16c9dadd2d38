package table_test

import (
	"bytes"
	"math"
	"testing"

	"github.com/jung-kurt/gofpdf"

	"github.com/lvillar/notapdf/table"
)

func newTestPDF() *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "Letter", "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.AddPage()
	return pdf
}

func TestColumnWidths(t *testing.T) {
	cols := []table.Column{
		{Header: "#", Width: 10},
		{Header: "Descripción"},
		{Header: "Precio", Width: 28},
		{Header: "Cant.", Width: 16},
		{Header: "Importe", Width: 28},
	}
	widths := table.ColumnWidths(cols, 195.9)

	if widths[1] != 195.9-10-28-16-28 {
		t.Fatalf("flexible column = %v, want %v", widths[1], 195.9-10-28-16-28)
	}
	sum := 0.0
	for _, w := range widths {
		sum += w
	}
	if math.Abs(sum-195.9) > 1e-9 {
		t.Fatalf("widths sum to %v, want 195.9", sum)
	}
}

func TestColumnWidthsMultipleFlexible(t *testing.T) {
	cols := []table.Column{{Width: 40}, {}, {}}
	widths := table.ColumnWidths(cols, 100)
	if widths[1] != 30 || widths[2] != 30 {
		t.Fatalf("flexible columns should share equally, got %v", widths)
	}
}

func TestColumnWidthsOverflowFloorsAtZero(t *testing.T) {
	cols := []table.Column{{Width: 120}, {}}
	widths := table.ColumnWidths(cols, 100)
	if widths[1] != 0 {
		t.Fatalf("overflowed flexible column = %v, want 0", widths[1])
	}
}

func TestRenderBasic(t *testing.T) {
	pdf := newTestPDF()

	tb := table.New(pdf, nil, []table.Column{
		{Header: "#", Width: 10, Align: "C"},
		{Header: "Concepto"},
		{Header: "Importe", Width: 30, Align: "R"},
	}, table.Style{
		HeaderFill: table.RGB{R: 37, G: 99, B: 235},
		HeaderText: table.RGB{R: 255, G: 255, B: 255},
		ZebraFill:  table.RGB{R: 241, G: 245, B: 249},
		Border:     table.RGB{R: 203, G: 213, B: 225},
		Text:       table.RGB{R: 30, G: 41, B: 59},
	})

	tb.AddRow("1", "Lavado", "$100.00")
	tb.AddRow("2", "Secado", "$50.00")

	endY, err := tb.Render(10, 50, 195.9)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if endY <= 50 {
		t.Fatalf("cursor did not advance: %v", endY)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		t.Fatalf("output: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("expected non-empty PDF output")
	}
	t.Logf("Basic table PDF: %d bytes", buf.Len())
}

func TestRenderWrapsLongCells(t *testing.T) {
	pdf := newTestPDF()

	tb := table.New(pdf, nil, []table.Column{
		{Header: "Concepto"},
		{Header: "Importe", Width: 30, Align: "R"},
	}, table.Style{FontSize: 9})

	tb.AddRow("Un concepto con una descripción deliberadamente larga que no cabe en una sola línea de la celda", "$10.00")
	tb.AddRow("Corto", "$5.00")

	endShort, err := table.New(pdf, nil, []table.Column{{Header: "C"}}, table.Style{FontSize: 9}).Render(10, 200, 60)
	if err != nil {
		t.Fatalf("render short: %v", err)
	}

	endY, err := tb.Render(10, 50, 100)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if endY-50 <= endShort-200 {
		t.Fatal("wrapped row should consume more height than a header-only table")
	}
}

func TestRenderHeaderRepeatsOnPageBreak(t *testing.T) {
	pdf := newTestPDF()

	tb := table.New(pdf, nil, []table.Column{
		{Header: "#", Width: 12, Align: "C"},
		{Header: "Concepto"},
	}, table.Style{})

	for i := 0; i < 90; i++ {
		tb.AddRow("1", "Fila de prueba")
	}

	breaks := 0
	tb.OnPageBreak(func() { breaks++ })

	if _, err := tb.Render(10, 30, 195.9); err != nil {
		t.Fatalf("render: %v", err)
	}
	if pdf.PageNo() < 2 {
		t.Fatalf("expected at least 2 pages with 90 rows, got %d", pdf.PageNo())
	}
	if breaks != pdf.PageNo()-1 {
		t.Fatalf("page break hook ran %d times for %d pages", breaks, pdf.PageNo())
	}
	t.Logf("Multi-page table: %d pages", pdf.PageNo())
}

func TestRenderEmptyTable(t *testing.T) {
	pdf := newTestPDF()
	tb := table.New(pdf, nil, []table.Column{{Header: "A"}, {Header: "B"}}, table.Style{})

	// No rows added: only the header renders, and nothing panics.
	endY, err := tb.Render(10, 40, 100)
	if err != nil {
		t.Fatalf("render empty table: %v", err)
	}
	if endY <= 40 {
		t.Fatal("header row should still advance the cursor")
	}
}
