package notapdf

// Client panel geometry.
const (
	clientPad   = 3.0
	clientLineH = 3.8
	clientRound = 1.8
)

// clientBlock renders the bordered, tinted client panel: name and phone on
// one row, wrapped address below. Absent fields fall back to the walk-in
// defaults instead of leaving blanks.
func (c *composer) clientBlock(y float64) float64 {
	name := c.note.ClientName
	if name == "" {
		name = WalkInClient
	}
	phone := c.note.ClientPhone
	if phone == "" {
		phone = "—"
	}
	addr := c.note.ClientAddress
	if addr == "" {
		addr = "—"
	}

	m := c.cfg.margin
	w := c.contentW()

	c.setFont("", 8.5)
	addrW := w - 2*clientPad - 18
	lines := c.pdf.SplitLines([]byte(c.tr(addr)), addrW)

	h := clientPad + 4.5 + 5.5 + float64(len(lines))*clientLineH + clientPad
	y = c.ensureSpace(y, h)

	c.pdf.SetLineWidth(0.3)
	c.setDraw(c.pal.Border)
	c.setFill(c.pal.Soft)
	c.pdf.RoundedRect(m, y, w, h, clientRound, "1234", "FD")

	c.setFont("B", 9.5)
	c.setText(c.pal.Primary)
	c.pdf.Text(m+clientPad, y+clientPad+2.5, c.tr("Cliente"))

	rowY := y + clientPad + 4.5 + 3.6
	colW := w/2 - clientPad

	c.setFont("B", 8)
	c.setText(c.pal.Text)
	c.pdf.Text(m+clientPad, rowY, c.tr("Nombre:"))
	c.setFont("", 8.5)
	c.setText(c.pal.TextLight)
	c.pdf.Text(m+clientPad+16, rowY, c.tr(c.fit(name, colW-16)))

	c.setFont("B", 8)
	c.setText(c.pal.Text)
	c.pdf.Text(m+w/2, rowY, c.tr("Teléfono:"))
	c.setFont("", 8.5)
	c.setText(c.pal.TextLight)
	c.pdf.Text(m+w/2+16, rowY, c.tr(c.fit(phone, colW-16)))

	addrY := rowY + 5.0
	c.setFont("B", 8)
	c.setText(c.pal.Text)
	c.pdf.Text(m+clientPad, addrY, c.tr("Dirección:"))
	c.setFont("", 8.5)
	c.setText(c.pal.TextLight)
	for _, line := range lines {
		c.pdf.Text(m+clientPad+18, addrY, string(line))
		addrY += clientLineH
	}

	return y + h + 5
}
