package notapdf

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	_ "image/gif" // register decoders for the formats gofpdf draws natively
	_ "image/jpeg"

	"golang.org/x/image/bmp"
	"golang.org/x/image/webp"
)

// embeddedImage is a decoded, gofpdf-ready image payload.
type embeddedImage struct {
	data   []byte
	format string // "png", "jpeg" or "gif"
	w, h   int    // intrinsic pixel dimensions
}

// decodeImage validates and normalizes an image payload before it is handed
// to the drawing surface. gofpdf's error state is sticky, so decoding is
// verified here first: a corrupt payload returns an error the caller maps to
// the textual fallback, and the document is never poisoned.
//
// WebP and BMP payloads are transcoded to PNG in memory since gofpdf only
// embeds PNG, JPEG and GIF.
func decodeImage(data []byte) (*embeddedImage, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUndecodable, err)
	}

	switch format {
	case "png", "jpeg", "gif":
		// Verify the full payload decodes, not just the header.
		if _, _, err := image.Decode(bytes.NewReader(data)); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUndecodable, err)
		}
		return &embeddedImage{data: data, format: format, w: cfg.Width, h: cfg.Height}, nil
	case "webp", "bmp":
		return transcodePNG(data, format)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, format)
	}
}

func transcodePNG(data []byte, format string) (*embeddedImage, error) {
	var (
		img image.Image
		err error
	)
	switch format {
	case "webp":
		img, err = webp.Decode(bytes.NewReader(data))
	case "bmp":
		img, err = bmp.Decode(bytes.NewReader(data))
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUndecodable, err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUndecodable, err)
	}
	b := img.Bounds()
	return &embeddedImage{data: buf.Bytes(), format: "png", w: b.Dx(), h: b.Dy()}, nil
}

// fitBox computes the largest draw size for an image of intrinsic size
// imgW x imgH that preserves aspect ratio and exceeds neither bound.
// Fit-to-box, not fill: small images are scaled up, wide or tall images are
// letterboxed by the caller via centering.
func fitBox(imgW, imgH, maxW, maxH float64) (w, h float64) {
	if imgW <= 0 || imgH <= 0 || maxW <= 0 || maxH <= 0 {
		return 0, 0
	}
	scale := maxW / imgW
	if s := maxH / imgH; s < scale {
		scale = s
	}
	return imgW * scale, imgH * scale
}
