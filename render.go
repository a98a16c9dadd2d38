package notapdf

import (
	"bytes"
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
)

// Document is a fully composed nota, ready for the output sink. It wraps the
// finished drawing surface; Output may be called once, after which the
// underlying document is closed.
type Document struct {
	pdf   *gofpdf.Fpdf
	folio string
}

// Output writes the PDF to w and closes the document.
func (d *Document) Output(w io.Writer) error {
	return d.pdf.Output(w)
}

// Filename is the deterministic download name derived from the folio.
func (d *Document) Filename() string {
	return "Nota-" + d.folio + ".pdf"
}

// Pages returns the number of pages composed.
func (d *Document) Pages() int {
	return d.pdf.PageNo()
}

// Render composes a nota from the note payload and the merchant theme.
// The call is synchronous and owns its own drawing surface; it performs no
// I/O and produces a complete document for any structurally valid input.
// Undecodable assets and malformed color tokens degrade to fallbacks and
// never surface as errors.
func Render(note *Note, theme *Theme, opts ...Option) (*Document, error) {
	if note == nil || theme == nil {
		return nil, ErrInvalidParam
	}
	if note.Folio == "" {
		return nil, ErrNoFolio
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	pdf := gofpdf.New("P", "mm", "Letter", "")
	if err := compose(pdf, note, theme, cfg); err != nil {
		return nil, err
	}
	return &Document{pdf: pdf, folio: note.Folio}, nil
}

// compose runs the composers top to bottom on a shared cursor. Split out
// from Render so tests can supply their own surface.
func compose(pdf *gofpdf.Fpdf, note *Note, theme *Theme, cfg renderConfig) error {
	pdf.SetTitle(note.TitleText()+" "+note.Folio, true)
	pdf.SetAuthor(theme.BusinessName, true)
	pdf.SetMargins(cfg.margin, cfg.margin, cfg.margin)
	pdf.SetAutoPageBreak(false, cfg.margin)
	pdf.AddPage()

	c := &composer{
		pdf:   pdf,
		tr:    pdf.UnicodeTranslatorFromDescriptor(""),
		note:  note,
		theme: theme,
		pal:   resolvePalette(theme.Colors),
		cfg:   cfg,
	}
	c.pageW, c.pageH = pdf.GetPageSize()

	y := c.header()
	y = c.clientBlock(y)
	y, err := c.items(y)
	if err != nil {
		return err
	}
	y = c.totals(y)
	c.footer(y)

	// The overlay is drawn last so it sits above all prior content.
	c.overlay()

	if pdf.Err() {
		return newRenderError("compose", pdf.Error())
	}
	return nil
}

// composer threads the drawing surface, the resolved palette and the shared
// vertical cursor through the individual block composers. Each composer
// receives the cursor, draws, and returns the advanced cursor, so blocks
// stay independently testable with a supplied starting position.
type composer struct {
	pdf   *gofpdf.Fpdf
	tr    func(string) string
	note  *Note
	theme *Theme
	pal   palette
	cfg   renderConfig

	pageW, pageH float64
}

func (c *composer) contentW() float64 {
	return c.pageW - 2*c.cfg.margin
}

// ensureSpace breaks the page when fewer than need millimeters remain,
// returning the (possibly reset) cursor.
func (c *composer) ensureSpace(y, need float64) float64 {
	if y+need <= c.pageH-c.cfg.margin {
		return y
	}
	c.breakPage()
	return c.cfg.margin
}

// breakPage finalizes the current page before starting the next one, so a
// canceled note carries the overlay on every page.
func (c *composer) breakPage() {
	c.overlay()
	c.pdf.AddPage()
}

func (c *composer) overlay() {
	if c.note.Status.Canceled() {
		drawCancelOverlay(c.pdf, c.cfg.fontFamily, c.pageW, c.pageH)
	}
}

func (c *composer) setFont(style string, size float64) {
	c.pdf.SetFont(c.cfg.fontFamily, style, size)
}

func (c *composer) setText(col RGBColor) { c.pdf.SetTextColor(col.R, col.G, col.B) }
func (c *composer) setFill(col RGBColor) { c.pdf.SetFillColor(col.R, col.G, col.B) }
func (c *composer) setDraw(col RGBColor) { c.pdf.SetDrawColor(col.R, col.G, col.B) }

// width measures s in document units under the current font.
func (c *composer) width(s string) float64 {
	return c.pdf.GetStringWidth(c.tr(s))
}

// fit truncates s with an ellipsis to stay within maxW under the current font.
func (c *composer) fit(s string, maxW float64) string {
	return FitText(c.width, s, maxW)
}

// money formats a monetary value with the configured literal prefix and
// exactly two decimals. Negative values pass through unclamped.
func (c *composer) money(v float64) string {
	return fmt.Sprintf("%s%.2f", c.cfg.currency, v)
}

// drawImage embeds a decoded payload fitted into the given box, centered on
// both axes. The name must be unique per payload within the document.
func (c *composer) drawImage(name string, img *embeddedImage, x, y, maxW, maxH float64) {
	w, h := fitBox(float64(img.w), float64(img.h), maxW, maxH)
	if w <= 0 || h <= 0 {
		return
	}
	opts := gofpdf.ImageOptions{ImageType: img.format}
	c.pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(img.data))
	c.pdf.ImageOptions(name, x+(maxW-w)/2, y+(maxH-h)/2, w, h, false, opts, 0, "")
}
