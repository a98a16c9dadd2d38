package notapdf

// Header geometry in millimeters. The header occupies a fixed band so the
// downstream cursor never depends on whether the logo decoded or how many
// contact lines the theme carries.
const (
	accentBandH = 2.5
	headerBgH   = 40.0
	headerGap   = 6.0

	logoBoxX = 0.0 // relative to the left margin
	logoBoxY = 7.0
	logoBoxW = 26.0
	logoBoxH = 18.0

	infoBoxW     = 70.0
	infoBoxY     = 7.0
	infoTitleH   = 7.0
	infoRowH     = 5.3
	infoBoxPad   = 3.0
	infoBoxRound = 1.8
)

// header renders the accent band, the tinted brand block with logo (or text
// mark) and compacted contact lines, and the bordered document info box.
// It returns the fixed cursor below the header band.
func (c *composer) header() float64 {
	m := c.cfg.margin

	c.setFill(c.pal.Accent)
	c.pdf.Rect(0, 0, c.pageW, accentBandH, "F")

	c.setFill(c.pal.Soft)
	c.pdf.Rect(0, accentBandH, c.pageW, headerBgH, "F")

	c.brandMark(m+logoBoxX, logoBoxY)

	nameX := m + logoBoxX + logoBoxW + 4
	infoX := c.pageW - m - infoBoxW
	nameW := infoX - nameX - 4

	c.setFont("B", 13)
	c.setText(c.pal.PrimaryDark)
	c.pdf.Text(nameX, 12, c.tr(c.fit(c.theme.BusinessName, nameW)))

	c.setFont("", 8)
	c.setText(c.pal.TextLight)
	y := 16.5
	for _, line := range c.theme.contactLines() {
		c.pdf.Text(nameX, y, c.tr(c.fit(line, nameW)))
		y += 3.8
	}

	c.infoBox(infoX, infoBoxY)

	return accentBandH + headerBgH + headerGap
}

// brandMark draws the logo fitted into its box, or the business name as a
// textual mark when the payload is absent or undecodable. A bad payload can
// never abort the render.
func (c *composer) brandMark(x, y float64) {
	if len(c.theme.Logo) > 0 {
		if img, err := decodeImage(c.theme.Logo); err == nil {
			c.drawImage("logo", img, x, y, logoBoxW, logoBoxH)
			return
		}
	}

	c.setFont("B", 11)
	c.setText(c.pal.Primary)
	mark := c.fit(c.theme.BusinessName, logoBoxW-2)
	w := c.width(mark)
	c.pdf.Text(x+(logoBoxW-w)/2, y+logoBoxH/2+1.5, c.tr(mark))
}

// infoRows returns the label/value pairs of the info box. Each row is
// rendered fully or omitted as a unit; the delivery and payment rows drop
// together when the note hides them.
func (c *composer) infoRows() [][2]string {
	rows := [][2]string{
		{"Folio", c.note.Folio},
		{"Fecha", c.note.Date},
		{"Estado", c.note.Status.Label()},
	}
	if !c.note.HideDeliveryPayment {
		rows = append(rows,
			[2]string{"Entrega", c.note.DeliveryText()},
			[2]string{"Pago", c.note.PaymentText()},
		)
	}
	return rows
}

func (c *composer) infoBox(x, y float64) {
	rows := c.infoRows()
	h := infoTitleH + float64(len(rows))*infoRowH + 1.6

	c.pdf.SetLineWidth(0.3)
	c.setDraw(c.pal.Border)
	c.setFill(RGBColor{255, 255, 255})
	c.pdf.RoundedRect(x, y, infoBoxW, h, infoBoxRound, "1234", "FD")

	c.setFill(c.pal.Primary)
	c.pdf.RoundedRect(x, y, infoBoxW, infoTitleH, infoBoxRound, "12", "F")

	c.setFont("B", 10)
	c.setText(RGBColor{255, 255, 255})
	title := c.fit(c.note.TitleText(), infoBoxW-2*infoBoxPad)
	c.pdf.Text(x+(infoBoxW-c.width(title))/2, y+infoTitleH-2.2, c.tr(title))

	ry := y + infoTitleH + infoRowH - 1.4
	valueW := infoBoxW - 2*infoBoxPad - 16
	for _, row := range rows {
		c.setFont("B", 8)
		c.setText(c.pal.Text)
		c.pdf.Text(x+infoBoxPad, ry, c.tr(row[0]))

		c.setFont("", 8)
		c.setText(c.pal.TextLight)
		v := c.fit(row[1], valueW)
		c.pdf.Text(x+infoBoxW-infoBoxPad-c.width(v), ry, c.tr(v))
		ry += infoRowH
	}
}
