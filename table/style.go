// Package table draws bordered, zebra-filled grids for itemized document
// sections. Column widths are resolved from fixed and flexible definitions,
// rows wrap their text, and the header row is repeated after a page break.
package table

// RGB represents an RGB color value.
type RGB struct {
	R, G, B int
}

// Column defines one table column. A zero Width marks the column as
// flexible: flexible columns share the width left over by the fixed ones.
type Column struct {
	Header string
	Width  float64 // fixed width; 0 means flexible
	Align  string  // "L", "C", "R" (default "L")
}

// Style defines the visual appearance of the whole table. Every cell is
// individually bordered; body rows alternate between plain and ZebraFill
// backgrounds.
type Style struct {
	HeaderFill RGB
	HeaderText RGB
	ZebraFill  RGB
	Border     RGB
	Text       RGB

	FontFamily string
	FontSize   float64 // in points
	Padding    float64 // uniform cell padding in document units
}

// ColumnWidths resolves the final column widths for the given total width.
// Fixed columns keep their width; the remaining space is split evenly among
// the flexible columns, floored at zero.
func ColumnWidths(cols []Column, total float64) []float64 {
	widths := make([]float64, len(cols))
	fixed := 0.0
	flexible := 0
	for i, col := range cols {
		if col.Width > 0 {
			widths[i] = col.Width
			fixed += col.Width
		} else {
			flexible++
		}
	}
	if flexible == 0 {
		return widths
	}
	remaining := total - fixed
	if remaining < 0 {
		remaining = 0
	}
	share := remaining / float64(flexible)
	for i, col := range cols {
		if col.Width == 0 {
			widths[i] = share
		}
	}
	return widths
}
