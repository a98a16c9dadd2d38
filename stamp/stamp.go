// Package stamp applies the cancellation overlay to already-issued nota
// PDFs. When a sale is canceled after its document was generated, the stored
// file is re-stamped page by page instead of re-rendered: each page is
// imported as a template and the diagonal label plus corner notice are drawn
// on top, matching the overlay a live render of a canceled note produces.
package stamp

import (
	"fmt"
	"io"
	"os"

	"github.com/jung-kurt/gofpdf"
	"github.com/jung-kurt/gofpdf/contrib/gofpdi"
)

// Options configures the overlay. Zero values fall back to the defaults
// used by the rendering engine.
type Options struct {
	Label    string  // diagonal stamp text (default "CANCELADA")
	Notice   string  // corner notice text (default "NOTA CANCELADA")
	FontSize float64 // diagonal label size in points (default 88)
	Opacity  float64 // 0.0 to 1.0 (default 0.16)
	Angle    float64 // rotation in degrees (default 45)
}

// The warning color is fixed and not themeable, matching the live overlay.
var warnColor = struct{ R, G, B int }{211, 47, 47}

// Canceled stamps every page of the PDF at inputPath with the default
// cancellation overlay and writes the result to w.
func Canceled(w io.Writer, inputPath string) error {
	return Apply(w, inputPath, Options{})
}

// CanceledFile stamps the PDF at inputPath and saves it to outputPath.
func CanceledFile(inputPath, outputPath string) error {
	pdf, err := build(inputPath, Options{})
	if err != nil {
		return err
	}
	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("stamp: creating %s: %w", outputPath, err)
	}
	defer f.Close()
	return pdf.Output(f)
}

// Apply stamps every page of the PDF at inputPath with the given overlay
// options and writes the result to w.
func Apply(w io.Writer, inputPath string, o Options) error {
	pdf, err := build(inputPath, o)
	if err != nil {
		return err
	}
	return pdf.Output(w)
}

func build(inputPath string, o Options) (*gofpdf.Fpdf, error) {
	if o.Label == "" {
		o.Label = "CANCELADA"
	}
	if o.Notice == "" {
		o.Notice = "NOTA CANCELADA"
	}
	if o.FontSize == 0 {
		o.FontSize = 88
	}
	if o.Opacity == 0 {
		o.Opacity = 0.16
	}
	if o.Angle == 0 {
		o.Angle = 45
	}

	pdf := gofpdf.New("P", "pt", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)
	imp := gofpdi.NewImporter()

	// Importing the first page makes every page size of the source known.
	tplID := imp.ImportPage(pdf, inputPath, 1, "/MediaBox")
	sizes := imp.GetPageSizes()
	pageCount := len(sizes)
	if pageCount == 0 {
		return nil, fmt.Errorf("stamp: %s has no pages", inputPath)
	}

	for i := 1; i <= pageCount; i++ {
		if i > 1 {
			tplID = imp.ImportPage(pdf, inputPath, i, "/MediaBox")
		}
		pw, ph := pageSize(sizes, i)

		pdf.AddPageFormat("P", gofpdf.SizeType{Wd: pw, Ht: ph})
		imp.UseImportedTemplate(pdf, tplID, 0, 0, pw, ph)
		overlay(pdf, o, pw, ph)
	}

	if pdf.Err() {
		return nil, fmt.Errorf("stamp: %w", pdf.Error())
	}
	return pdf, nil
}

func pageSize(sizes map[int]map[string]map[string]float64, pageNum int) (w, h float64) {
	if dims, ok := sizes[pageNum]; ok {
		if mb, ok := dims["/MediaBox"]; ok {
			w = mb["w"]
			h = mb["h"]
		}
	}
	if w == 0 || h == 0 {
		// Letter in points.
		w, h = 612, 792
	}
	return
}

// overlay draws the diagonal label and the corner notice on the current
// page. Geometry mirrors the live renderer's overlay, in points.
func overlay(pdf *gofpdf.Fpdf, o Options, pageW, pageH float64) {
	pdf.SetFont("Helvetica", "B", o.FontSize)
	pdf.SetTextColor(warnColor.R, warnColor.G, warnColor.B)
	pdf.SetAlpha(o.Opacity, "Normal")

	textW := pdf.GetStringWidth(o.Label)
	cx := pageW / 2
	cy := pageH / 2

	pdf.TransformBegin()
	pdf.TransformRotate(o.Angle, cx, cy)
	pdf.Text(cx-textW/2, cy+o.FontSize/3, o.Label)
	pdf.TransformEnd()

	pdf.SetAlpha(1.0, "Normal")

	const noticeW, noticeH, noticeY = 142.0, 20.0, 9.0
	x := pageW - noticeW - 23
	pdf.SetFillColor(warnColor.R, warnColor.G, warnColor.B)
	pdf.RoundedRect(x, noticeY, noticeW, noticeH, 4, "1234", "F")

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetTextColor(255, 255, 255)
	nw := pdf.GetStringWidth(o.Notice)
	pdf.Text(x+(noticeW-nw)/2, noticeY+noticeH-7, o.Notice)
}
