package notapdf

import (
	"strconv"

	"github.com/lvillar/notapdf/table"
)

// items renders the line item table. Index and quantity columns are fixed
// narrow, price and subtotal fixed medium, and the description column
// absorbs the remaining width.
func (c *composer) items(y float64) (float64, error) {
	cols := []table.Column{
		{Header: "#", Width: 10, Align: "C"},
		{Header: "Descripción", Align: "L"},
		{Header: "P. unitario", Width: 28, Align: "R"},
		{Header: "Cant.", Width: 16, Align: "C"},
		{Header: "Importe", Width: 28, Align: "R"},
	}

	t := table.New(c.pdf, c.tr, cols, table.Style{
		HeaderFill: rgb(c.pal.Primary),
		HeaderText: table.RGB{R: 255, G: 255, B: 255},
		ZebraFill:  rgb(c.pal.Soft),
		Border:     rgb(c.pal.Border),
		Text:       rgb(c.pal.Text),
		FontFamily: c.cfg.fontFamily,
		FontSize:   8.5,
		Padding:    1.6,
	})
	t.OnPageBreak(c.overlay)

	for i, it := range c.note.Items {
		t.AddRow(
			strconv.Itoa(i+1),
			it.Name,
			c.money(it.UnitPrice),
			strconv.FormatFloat(it.Quantity, 'f', -1, 64),
			c.money(it.Subtotal),
		)
	}

	endY, err := t.Render(c.cfg.margin, y, c.contentW())
	if err != nil {
		return endY, newRenderError("items", err)
	}
	return endY + 5, nil
}

func rgb(c RGBColor) table.RGB {
	return table.RGB{R: c.R, G: c.G, B: c.B}
}
