package barcode_test

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/lvillar/notapdf/barcode"
)

func TestCode128PNG(t *testing.T) {
	data, err := barcode.Code128PNG("00123", 400, 72)
	if err != nil {
		t.Fatalf("Code128PNG: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Fatal("output is not a PNG")
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decoding output: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 400 || b.Dy() != 72 {
		t.Fatalf("scaled size = %dx%d, want 400x72", b.Dx(), b.Dy())
	}
}

func TestCode128PNGEmptyText(t *testing.T) {
	if _, err := barcode.Code128PNG("", 400, 72); err == nil {
		t.Fatal("expected error for empty text")
	}
}

func TestPDF417PNG(t *testing.T) {
	data, err := barcode.PDF417PNG("Nota-00123", 2, 600, 240)
	if err != nil {
		t.Fatalf("PDF417PNG: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Fatal("output is not a PNG")
	}
}
