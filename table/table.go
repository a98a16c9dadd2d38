package table

import (
	"github.com/jung-kurt/gofpdf"
)

// Table accumulates rows and renders them as a bordered grid.
type Table struct {
	pdf     *gofpdf.Fpdf
	tr      func(string) string
	cols    []Column
	style   Style
	rows    [][]string
	onBreak func()
}

// New creates a table on the given document. tr translates UTF-8 text into
// the document's code page before measuring and drawing; pass an identity
// function when no translation is needed.
func New(pdf *gofpdf.Fpdf, tr func(string) string, cols []Column, style Style) *Table {
	if tr == nil {
		tr = func(s string) string { return s }
	}
	if style.Padding == 0 {
		style.Padding = 1.5
	}
	if style.FontFamily == "" {
		style.FontFamily = "Helvetica"
	}
	if style.FontSize == 0 {
		style.FontSize = 10
	}
	return &Table{pdf: pdf, tr: tr, cols: cols, style: style}
}

// OnPageBreak registers a hook invoked just before the table starts a new
// page, letting the caller finalize overlays on the completed page.
func (t *Table) OnPageBreak(fn func()) {
	t.onBreak = fn
}

// AddRow appends a body row. Missing trailing cells render empty.
func (t *Table) AddRow(cells ...string) {
	t.rows = append(t.rows, cells)
}

// Render draws the table starting at (x, y) with the given total width and
// returns the cursor below the last row. The header row is drawn first and
// repeated at the top of every new page.
func (t *Table) Render(x, y, width float64) (float64, error) {
	if t.pdf.Err() {
		return y, t.pdf.Error()
	}

	widths := ColumnWidths(t.cols, width)
	_, pageH := t.pdf.GetPageSize()
	_, topM, _, bottomM := t.pdf.GetMargins()

	y = t.renderHeader(x, y, widths)

	for i, row := range t.rows {
		rowH := t.rowHeight(row, widths)
		if y+rowH > pageH-bottomM {
			if t.onBreak != nil {
				t.onBreak()
			}
			t.pdf.AddPage()
			y = t.renderHeader(x, topM, widths)
		}
		t.renderRow(x, y, row, widths, rowH, i%2 == 1)
		y += rowH
	}

	return y, t.pdf.Error()
}

func (t *Table) setFont(style string) {
	t.pdf.SetFont(t.style.FontFamily, style, t.style.FontSize)
}

// lineH is the height of one wrapped text line in document units.
func (t *Table) lineH() float64 {
	_, unitSize := t.pdf.GetFontSize()
	return unitSize * 1.35
}

func (t *Table) renderHeader(x, y float64, widths []float64) float64 {
	t.setFont("B")
	h := t.lineH() + 2*t.style.Padding

	t.pdf.SetLineWidth(0.25)
	t.pdf.SetDrawColor(t.style.Border.R, t.style.Border.G, t.style.Border.B)
	t.pdf.SetFillColor(t.style.HeaderFill.R, t.style.HeaderFill.G, t.style.HeaderFill.B)
	t.pdf.SetTextColor(t.style.HeaderText.R, t.style.HeaderText.G, t.style.HeaderText.B)

	cx := x
	for i, col := range t.cols {
		t.pdf.Rect(cx, y, widths[i], h, "FD")
		t.drawCellText(col.Header, cx, y, widths[i], col.Align, 0)
		cx += widths[i]
	}
	return y + h
}

func (t *Table) renderRow(x, y float64, row []string, widths []float64, rowH float64, zebra bool) {
	t.setFont("")
	t.pdf.SetDrawColor(t.style.Border.R, t.style.Border.G, t.style.Border.B)
	t.pdf.SetTextColor(t.style.Text.R, t.style.Text.G, t.style.Text.B)

	cx := x
	for i := range t.cols {
		if zebra {
			t.pdf.SetFillColor(t.style.ZebraFill.R, t.style.ZebraFill.G, t.style.ZebraFill.B)
			t.pdf.Rect(cx, y, widths[i], rowH, "FD")
		} else {
			t.pdf.Rect(cx, y, widths[i], rowH, "D")
		}

		if i < len(row) && row[i] != "" {
			lines := t.wrap(row[i], widths[i])
			for j, line := range lines {
				t.drawTranslated(line, cx, y, widths[i], t.cols[i].Align, j)
			}
		}
		cx += widths[i]
	}
}

// rowHeight computes the height needed for a row from its tallest wrapped cell.
func (t *Table) rowHeight(row []string, widths []float64) float64 {
	t.setFont("")
	maxLines := 1
	for i := range t.cols {
		if i >= len(row) || row[i] == "" {
			continue
		}
		if n := len(t.wrap(row[i], widths[i])); n > maxLines {
			maxLines = n
		}
	}
	return float64(maxLines)*t.lineH() + 2*t.style.Padding
}

// wrap splits translated cell text into lines fitting the cell's content width.
func (t *Table) wrap(text string, colW float64) []string {
	contentW := colW - 2*t.style.Padding
	if contentW < 1 {
		contentW = 1
	}
	split := t.pdf.SplitLines([]byte(t.tr(text)), contentW)
	lines := make([]string, len(split))
	for i, b := range split {
		lines[i] = string(b)
	}
	return lines
}

// drawCellText draws untranslated (header) text at wrapped-line index idx.
func (t *Table) drawCellText(text string, cx, y, colW float64, align string, idx int) {
	t.drawTranslated(t.tr(text), cx, y, colW, align, idx)
}

// drawTranslated draws already-translated text aligned within the cell.
func (t *Table) drawTranslated(line string, cx, y, colW float64, align string, idx int) {
	tw := t.pdf.GetStringWidth(line)
	var tx float64
	switch align {
	case "C":
		tx = cx + (colW-tw)/2
	case "R":
		tx = cx + colW - t.style.Padding - tw
	default:
		tx = cx + t.style.Padding
	}
	lh := t.lineH()
	ty := y + t.style.Padding + float64(idx)*lh + lh*0.75
	t.pdf.Text(tx, ty, line)
}
