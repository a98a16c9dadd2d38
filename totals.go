package notapdf

// Totals box geometry.
const (
	totalsBoxW  = 72.0
	totalsBoxH  = 25.0
	totalsPad   = 4.0
	totalsRowH  = 5.2
	totalsGap   = 6.0
	totalsRound = 1.8
)

// totals renders the stacked summary: recomputed subtotal, advance, divider,
// and the emphasized remainder. The stored total field plays no part here.
func (c *composer) totals(y float64) float64 {
	y = c.ensureSpace(y, totalsBoxH)
	x := c.pageW - c.cfg.margin - totalsBoxW

	c.pdf.SetLineWidth(0.3)
	c.setDraw(c.pal.Border)
	c.setFill(RGBColor{255, 255, 255})
	c.pdf.RoundedRect(x, y, totalsBoxW, totalsBoxH, totalsRound, "1234", "FD")

	rowY := y + totalsPad + 1.4
	c.totalsRow(x, rowY, "Subtotal", c.money(c.note.Subtotal()), false)
	rowY += totalsRowH
	c.totalsRow(x, rowY, "Anticipo", c.money(c.note.Advance), false)
	rowY += 2.2

	c.setDraw(c.pal.Border)
	c.pdf.Line(x+totalsPad-1, rowY, x+totalsBoxW-totalsPad+1, rowY)
	rowY += totalsRowH + 0.6

	c.totalsRow(x, rowY, "Restante", c.money(c.note.Remainder()), true)

	return y + totalsBoxH + totalsGap
}

func (c *composer) totalsRow(x, baseline float64, label, value string, emphasized bool) {
	if emphasized {
		c.setFont("B", 11)
		c.setText(c.pal.Accent)
	} else {
		c.setFont("", 8.5)
		c.setText(c.pal.Text)
	}
	c.pdf.Text(x+totalsPad, baseline, c.tr(label))
	c.pdf.Text(x+totalsBoxW-totalsPad-c.width(value), baseline, c.tr(value))
}
