package notapdf_test

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/lvillar/notapdf"
)

func logoPayload(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 48, 32))
	for x := 0; x < 48; x++ {
		for y := 0; y < 32; y++ {
			img.Set(x, y, color.RGBA{R: 30, G: 60, B: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encoding logo: %v", err)
	}
	return buf.Bytes()
}

func fullNote() *notapdf.Note {
	return &notapdf.Note{
		Folio:         "00123",
		Date:          "12/08/2026",
		ClientName:    "María Pérez",
		ClientPhone:   "555-1234",
		ClientAddress: "Av. Reforma 123, Col. Centro, Ciudad de México",
		Total:         1000, // stale on purpose; the render recomputes
		Advance:       100,
		Status:        notapdf.StatusActive,
		Delivered:     false,
		PaymentMethod: "Efectivo",
		Items: []notapdf.LineItem{
			{Name: "Lavado de edredón matrimonial", UnitPrice: 100, Quantity: 2, Subtotal: 200},
			{Name: "Secado", UnitPrice: 50, Quantity: 1, Subtotal: 50},
		},
	}
}

func fullTheme(t *testing.T) *notapdf.Theme {
	return &notapdf.Theme{
		BusinessName:   "Lavandería Azteca",
		Logo:           logoPayload(t),
		Phone:          "555-0000",
		Email:          "contacto@azteca.mx",
		Website:        "azteca.mx",
		Address:        "Calle Hidalgo 45, Centro",
		ThanksMessage:  "¡Gracias por su preferencia!",
		ClosingMessage: "Vuelva pronto",
		InfoText:       "Conserve esta nota para cualquier aclaración.",
		Terms:          "No nos hacemos responsables por prendas no recogidas después de 30 días.",
		Social: []notapdf.SocialEntry{
			{Network: notapdf.NetworkFacebook, Value: "lavanderiaazteca"},
			{Network: notapdf.NetworkWhatsApp, Value: "555-0000"},
		},
		Colors: notapdf.ThemeColors{
			Primary: "#2563eb",
			Accent:  "d97706",
			Soft:    "#eef",
		},
	}
}

func TestRenderFullNote(t *testing.T) {
	doc, err := notapdf.Render(fullNote(), fullTheme(t))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	if got := doc.Filename(); got != "Nota-00123.pdf" {
		t.Fatalf("Filename() = %q, want Nota-00123.pdf", got)
	}
	if got := doc.Pages(); got != 1 {
		t.Fatalf("Pages() = %d, want 1", got)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		t.Fatalf("Output: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Fatal("output does not start with %PDF header")
	}
	if buf.Len() < 1000 {
		t.Fatalf("PDF output seems too small: %d bytes", buf.Len())
	}
	t.Logf("Full nota PDF: %d bytes", buf.Len())
}

func TestRenderMinimalInputs(t *testing.T) {
	note := &notapdf.Note{Folio: "1"}
	theme := &notapdf.Theme{BusinessName: "X"}

	doc, err := notapdf.Render(note, theme)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		t.Fatalf("Output: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("expected non-empty PDF output")
	}
}

func TestRenderInvalidInputs(t *testing.T) {
	if _, err := notapdf.Render(nil, &notapdf.Theme{}); !errors.Is(err, notapdf.ErrInvalidParam) {
		t.Fatalf("nil note: got %v", err)
	}
	if _, err := notapdf.Render(&notapdf.Note{Folio: "1"}, nil); !errors.Is(err, notapdf.ErrInvalidParam) {
		t.Fatalf("nil theme: got %v", err)
	}
	if _, err := notapdf.Render(&notapdf.Note{}, &notapdf.Theme{}); !errors.Is(err, notapdf.ErrNoFolio) {
		t.Fatalf("missing folio: got %v", err)
	}
}

func TestRenderCorruptLogoFallsBack(t *testing.T) {
	theme := fullTheme(t)
	theme.Logo = []byte("this is not an image at all")

	doc, err := notapdf.Render(fullNote(), theme)
	if err != nil {
		t.Fatalf("Render with corrupt logo: %v", err)
	}
	if got := doc.Pages(); got != 1 {
		t.Fatalf("Pages() = %d, want 1", got)
	}
	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		t.Fatalf("Output: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Fatal("output does not start with %PDF header")
	}
}

func TestRenderCanceledDiffersFromActive(t *testing.T) {
	render := func(status notapdf.Status) []byte {
		note := fullNote()
		note.Status = status
		doc, err := notapdf.Render(note, fullTheme(t))
		if err != nil {
			t.Fatalf("Render(%s): %v", status, err)
		}
		var buf bytes.Buffer
		if err := doc.Output(&buf); err != nil {
			t.Fatalf("Output(%s): %v", status, err)
		}
		return buf.Bytes()
	}

	active := render(notapdf.StatusActive)
	canceled := render(notapdf.StatusCanceled)
	if bytes.Equal(active, canceled) {
		t.Fatal("canceled render should carry extra overlay content")
	}
	if len(canceled) <= len(active) {
		t.Fatalf("expected canceled output to be larger: %d vs %d bytes", len(canceled), len(active))
	}
}

func TestRenderManyItemsPaginates(t *testing.T) {
	note := fullNote()
	note.Items = nil
	for i := 0; i < 70; i++ {
		note.Items = append(note.Items, notapdf.LineItem{
			Name: "Servicio de lavado y planchado con entrega a domicilio",
			UnitPrice: 25, Quantity: 1, Subtotal: 25,
		})
	}

	doc, err := notapdf.Render(note, fullTheme(t))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if doc.Pages() < 2 {
		t.Fatalf("expected pagination with 70 items, got %d page(s)", doc.Pages())
	}
	t.Logf("70-item nota: %d pages", doc.Pages())
}

func TestRenderOptions(t *testing.T) {
	doc, err := notapdf.Render(fullNote(), fullTheme(t),
		notapdf.WithCurrencyPrefix("MXN "),
		notapdf.WithMargin(14),
		notapdf.WithFontFamily("Times"),
	)
	if err != nil {
		t.Fatalf("Render with options: %v", err)
	}
	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		t.Fatalf("Output: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("expected non-empty PDF output")
	}
}
