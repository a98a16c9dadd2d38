package notapdf

import "github.com/jung-kurt/gofpdf"

// The cancellation overlay uses a fixed warning color, independent of the
// branding theme, so the marker stays legible on any palette.
var warnColor = RGBColor{211, 47, 47}

const (
	cancelLabel  = "CANCELADA"
	cancelNotice = "NOTA CANCELADA"

	cancelFontSize = 88.0
	cancelOpacity  = 0.16
	cancelAngle    = 45.0

	noticeW = 50.0
	noticeH = 7.0
	noticeY = 3.2
)

// drawCancelOverlay stamps the current page with the diagonal cancellation
// label and the top corner notice. It is called after all content on the
// page has been drawn.
func drawCancelOverlay(pdf *gofpdf.Fpdf, family string, pageW, pageH float64) {
	pdf.SetFont(family, "B", cancelFontSize)
	pdf.SetTextColor(warnColor.R, warnColor.G, warnColor.B)
	pdf.SetAlpha(cancelOpacity, "Normal")

	textW := pdf.GetStringWidth(cancelLabel)
	_, unitSize := pdf.GetFontSize()
	cx := pageW / 2
	cy := pageH / 2

	pdf.TransformBegin()
	pdf.TransformRotate(cancelAngle, cx, cy)
	pdf.Text(cx-textW/2, cy+unitSize/3, cancelLabel)
	pdf.TransformEnd()

	pdf.SetAlpha(1.0, "Normal")

	x := pageW - noticeW - 8
	pdf.SetFillColor(warnColor.R, warnColor.G, warnColor.B)
	pdf.RoundedRect(x, noticeY, noticeW, noticeH, 1.4, "1234", "F")

	pdf.SetFont(family, "B", 8)
	pdf.SetTextColor(255, 255, 255)
	nw := pdf.GetStringWidth(cancelNotice)
	pdf.Text(x+(noticeW-nw)/2, noticeY+noticeH-2.4, cancelNotice)
}
