// Package barcode encodes folio identifiers as in-memory PNG barcodes for
// embedding into rendered documents.
package barcode

import (
	"bytes"
	"fmt"
	"image/png"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
	"github.com/boombuler/barcode/pdf417"
)

// Code128PNG encodes text as a Code 128 barcode scaled to the given pixel
// size and returns it PNG-encoded.
func Code128PNG(text string, widthPx, heightPx int) ([]byte, error) {
	if text == "" {
		return nil, fmt.Errorf("barcode: empty text")
	}
	bc, err := code128.Encode(text)
	if err != nil {
		return nil, fmt.Errorf("barcode: encoding %q: %w", text, err)
	}
	return scalePNG(bc, widthPx, heightPx)
}

// PDF417PNG encodes text as a PDF417 symbol scaled to the given pixel size
// and returns it PNG-encoded. securityLevel ranges from 0 to 8.
func PDF417PNG(text string, securityLevel byte, widthPx, heightPx int) ([]byte, error) {
	if text == "" {
		return nil, fmt.Errorf("barcode: empty text")
	}
	bc, err := pdf417.Encode(text, securityLevel)
	if err != nil {
		return nil, fmt.Errorf("barcode: encoding %q: %w", text, err)
	}
	return scalePNG(bc, widthPx, heightPx)
}

func scalePNG(bc barcode.Barcode, widthPx, heightPx int) ([]byte, error) {
	scaled, err := barcode.Scale(bc, widthPx, heightPx)
	if err != nil {
		return nil, fmt.Errorf("barcode: scaling: %w", err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return nil, fmt.Errorf("barcode: encoding png: %w", err)
	}
	return buf.Bytes(), nil
}
