package notapdf

import (
	"errors"
	"fmt"
)

// Sentinel errors for the few hard failure conditions the engine can hit.
// Degraded assets (bad colors, undecodable logos or icons) are never errors:
// they fall back silently per the rendering contract.
var (
	ErrNoFolio      = errors.New("notapdf: note has no folio")
	ErrUnsupported  = errors.New("notapdf: unsupported image format")
	ErrUndecodable  = errors.New("notapdf: image payload cannot be decoded")
	ErrInvalidParam = errors.New("notapdf: invalid parameter")
)

// RenderError wraps an underlying drawing failure with the composer stage
// that produced it.
type RenderError struct {
	Op  string // stage name, e.g. "header", "items", "output"
	Err error
}

func (e *RenderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("notapdf.%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("notapdf.%s: unknown error", e.Op)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

func newRenderError(op string, err error) *RenderError {
	return &RenderError{Op: op, Err: err}
}
