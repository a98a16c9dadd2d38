// Package sink materializes composed documents. Two modes exist: download
// writes the document under its deterministic folio-derived name into a
// caller-chosen directory, preview writes it into an unnamed temporary file
// intended for a one-off viewer session. Mode selection never affects
// layout; it is purely the disposal step.
package sink

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/lvillar/notapdf"
)

// Mode selects how a document is materialized.
type Mode string

const (
	ModeDownload Mode = "download"
	ModePreview  Mode = "preview"
)

// Write materializes doc according to mode and returns the path of the
// resulting file. In download mode dir is the target directory; preview
// mode ignores dir and uses the system temporary directory.
func Write(doc *notapdf.Document, mode Mode, dir string) (string, error) {
	switch mode {
	case ModeDownload:
		return Download(doc, dir)
	case ModePreview:
		return Preview(doc)
	default:
		return "", fmt.Errorf("sink: unknown mode %q", mode)
	}
}

// Download writes doc into dir as "Nota-<folio>.pdf" and returns the full path.
func Download(doc *notapdf.Document, dir string) (string, error) {
	path := filepath.Join(dir, doc.Filename())
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("sink: creating %s: %w", path, err)
	}
	defer f.Close()
	if err := doc.Output(f); err != nil {
		return "", fmt.Errorf("sink: writing %s: %w", path, err)
	}
	return path, nil
}

// Preview writes doc into an ephemeral temporary file and returns its path.
// The file carries no folio-derived name and is never registered anywhere;
// callers typically hand the path to OpenViewer and forget it.
func Preview(doc *notapdf.Document) (string, error) {
	f, err := os.CreateTemp("", "nota-preview-*.pdf")
	if err != nil {
		return "", fmt.Errorf("sink: creating preview file: %w", err)
	}
	defer f.Close()
	if err := doc.Output(f); err != nil {
		return "", fmt.Errorf("sink: writing preview: %w", err)
	}
	return f.Name(), nil
}

// OpenViewer launches the platform document viewer on path. Best effort:
// the viewer process is started, not awaited.
func OpenViewer(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", "", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("sink: opening viewer: %w", err)
	}
	return nil
}
