package notapdf

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/lvillar/notapdf/barcode"
)

// Social row geometry.
const (
	socialRowH  = 8.0
	socialIconW = 5.0
	socialGap   = 1.5
)

// footer flows the closing sections downward from the shared cursor: thanks
// message, closing message, social row, terms, trailing info text and the
// folio barcode strip. Every section is optional; an absent section draws
// nothing and advances the cursor by nothing.
func (c *composer) footer(y float64) float64 {
	th := c.theme

	if th.ThanksMessage != "" {
		y = c.ensureSpace(y, 8)
		c.setFont("B", 11)
		c.setText(c.pal.Primary)
		msg := c.fit(th.ThanksMessage, c.contentW())
		c.pdf.Text((c.pageW-c.width(msg))/2, y+4.5, c.tr(msg))
		y += 8
	}

	if th.ClosingMessage != "" {
		y = c.ensureSpace(y, 6)
		c.setFont("", 9)
		c.setText(c.pal.TextLight)
		msg := c.fit(th.ClosingMessage, c.contentW())
		c.pdf.Text((c.pageW-c.width(msg))/2, y+3.5, c.tr(msg))
		y += 6
	}

	y = c.socialRow(y)

	if th.Terms != "" {
		y = c.paragraph(y, "Términos y condiciones", th.Terms)
	}
	if th.InfoText != "" {
		y = c.paragraph(y, "", th.InfoText)
	}

	return c.barcodeStrip(y)
}

// socialRow distributes the available footer width evenly among the present
// entries. With no entries it consumes zero height and draws nothing.
func (c *composer) socialRow(y float64) float64 {
	entries := c.theme.socialEntries()
	if len(entries) == 0 {
		return y
	}

	y = c.ensureSpace(y, socialRowH)
	slotW := socialSlotWidth(c.contentW(), len(entries))

	for i, e := range entries {
		x := c.cfg.margin + float64(i)*slotW
		labelX := x

		if len(e.Icon) > 0 {
			if img, err := decodeImage(e.Icon); err == nil {
				name := fmt.Sprintf("social-%d", i)
				c.drawImage(name, img, x, y+(socialRowH-socialIconW)/2, socialIconW, socialIconW)
				labelX = x + socialIconW + socialGap
			}
		}

		c.setFont("", 8)
		c.setText(c.pal.Text)
		label := e.Network.DisplayName() + ": " + e.Value
		maxW := x + slotW - labelX - 1
		c.pdf.Text(labelX, y+socialRowH/2+1.2, c.tr(c.fit(label, maxW)))
	}

	return y + socialRowH + 2
}

// socialSlotWidth divides the available width into n equal slots.
func socialSlotWidth(available float64, n int) float64 {
	if n <= 0 {
		return 0
	}
	return available / float64(n)
}

// paragraph renders an optional heading followed by wrapped body text.
func (c *composer) paragraph(y float64, heading, body string) float64 {
	const lineH = 3.4

	c.setFont("", 7.5)
	lines := c.pdf.SplitLines([]byte(c.tr(body)), c.contentW())

	need := float64(len(lines))*lineH + 3
	if heading != "" {
		need += 4.5
	}
	y = c.ensureSpace(y, need)

	if heading != "" {
		c.setFont("B", 8.5)
		c.setText(c.pal.Text)
		c.pdf.Text(c.cfg.margin, y+3, c.tr(heading))
		y += 4.5
	}

	c.setFont("", 7.5)
	c.setText(c.pal.TextLight)
	for _, line := range lines {
		c.pdf.Text(c.cfg.margin, y+2.6, string(line))
		y += lineH
	}

	return y + 3
}

// barcodeStrip draws a Code 128 barcode of the folio centered at the bottom
// of the flow. Encoding failures are degraded-asset conditions: the strip is
// skipped and the render continues.
func (c *composer) barcodeStrip(y float64) float64 {
	data, err := barcode.Code128PNG(c.note.Folio, 400, 72)
	if err != nil {
		return y
	}

	const bw, bh = 55.0, 9.0
	y = c.ensureSpace(y, bh+8)

	opts := gofpdf.ImageOptions{ImageType: "png"}
	c.pdf.RegisterImageOptionsReader("folio-barcode", opts, bytes.NewReader(data))
	c.pdf.ImageOptions("folio-barcode", (c.pageW-bw)/2, y+2, bw, bh, false, opts, 0, "")

	c.setFont("", 7)
	c.setText(c.pal.TextLight)
	c.pdf.Text((c.pageW-c.width(c.note.Folio))/2, y+bh+5, c.tr(c.note.Folio))

	return y + bh + 8
}
