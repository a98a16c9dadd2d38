// Command nota renders printable sales notes from JSON payloads and stamps
// already-issued notes as canceled.
//
// # Usage
//
//	nota render payload.json --out ./documents
//	nota render payload.json --preview
//	nota stamp Nota-00123.pdf --out Nota-00123-cancelada.pdf
//
// The payload file carries the note and the merchant theme:
//
//	{
//	  "note":  {"folio": "00123", "date": "12/08/2026", "items": [...]},
//	  "theme": {"businessName": "Lavandería Azteca", ...}
//	}
//
// Environment variables (a .env file is honored when present):
//
//	NOTA_OUT_DIR    - default output directory for downloads
//	NOTA_LOG_LEVEL  - zerolog level (default "info")
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/lvillar/notapdf"
	"github.com/lvillar/notapdf/sink"
	"github.com/lvillar/notapdf/stamp"
)

var log zerolog.Logger

type payload struct {
	Note  notapdf.Note  `json:"note"`
	Theme notapdf.Theme `json:"theme"`
}

var rootCmd = &cobra.Command{
	Use:   "nota",
	Short: "Render and stamp printable sales notes",
	Long: `nota turns a sales note payload plus a merchant branding theme into a
fixed-layout Letter PDF, and re-stamps already-issued PDFs when a sale is
canceled after the fact.`,
	SilenceUsage: true,
}

var (
	renderOut      string
	renderPreview  bool
	renderCurrency string
)

var renderCmd = &cobra.Command{
	Use:   "render [payload.json]",
	Short: "Render a sales note PDF from a JSON payload",
	Args:  cobra.ExactArgs(1),
	RunE:  runRender,
}

var stampOut string

var stampCmd = &cobra.Command{
	Use:   "stamp [input.pdf]",
	Short: "Stamp an issued note PDF as canceled",
	Args:  cobra.ExactArgs(1),
	RunE:  runStamp,
}

func runRender(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading payload: %w", err)
	}
	var p payload
	if err := json.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("parsing payload: %w", err)
	}

	var opts []notapdf.Option
	if renderCurrency != "" {
		opts = append(opts, notapdf.WithCurrencyPrefix(renderCurrency))
	}

	doc, err := notapdf.Render(&p.Note, &p.Theme, opts...)
	if err != nil {
		return err
	}
	log.Info().
		Str("folio", p.Note.Folio).
		Str("status", string(p.Note.Status)).
		Int("items", len(p.Note.Items)).
		Msg("note composed")

	if renderPreview {
		path, err := sink.Preview(doc)
		if err != nil {
			return err
		}
		log.Info().Str("path", path).Msg("preview written")
		if err := sink.OpenViewer(path); err != nil {
			log.Debug().Err(err).Msg("viewer not launched")
		}
		return nil
	}

	path, err := sink.Download(doc, renderOut)
	if err != nil {
		return err
	}
	log.Info().Str("path", path).Msg("note written")
	return nil
}

func runStamp(cmd *cobra.Command, args []string) error {
	input := args[0]
	out := stampOut
	if out == "" {
		out = strings.TrimSuffix(input, ".pdf") + "-cancelada.pdf"
	}
	if err := stamp.CanceledFile(input, out); err != nil {
		return err
	}
	log.Info().Str("input", input).Str("output", out).Msg("note stamped as canceled")
	return nil
}

func main() {
	// A missing .env is fine; explicit environment still applies.
	_ = godotenv.Load()

	level, err := zerolog.ParseLevel(strings.ToLower(envOr("NOTA_LOG_LEVEL", "info")))
	if err != nil {
		level = zerolog.InfoLevel
	}
	log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(level).
		With().Timestamp().Str("component", "nota").Logger()

	renderCmd.Flags().StringVarP(&renderOut, "out", "o", envOr("NOTA_OUT_DIR", "."), "output directory for the downloaded PDF")
	renderCmd.Flags().BoolVar(&renderPreview, "preview", false, "write an ephemeral preview instead of a named download")
	renderCmd.Flags().StringVar(&renderCurrency, "currency", "", "literal currency prefix for monetary values")
	stampCmd.Flags().StringVarP(&stampOut, "out", "o", "", "output path (default: <input>-cancelada.pdf)")

	rootCmd.AddCommand(renderCmd, stampCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
