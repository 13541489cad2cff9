package cli

import (
	"io"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/tsawler/docxdump"
	"github.com/tsawler/docxdump/internal/config"
	"github.com/tsawler/docxdump/internal/launcher"
)

// Replaced in tests.
var (
	newExtractor = docxdump.Open
	openDocument = launcher.Open
)

var (
	okColor   = color.New(color.FgGreen)
	failColor = color.New(color.FgRed)
	noteColor = color.New(color.FgYellow)
)

// runExtract resolves settings and performs one extraction.
func runExtract(cmd *cobra.Command, opts *options) error {
	s, err := resolveSettings(cmd, opts)
	if err != nil {
		return err
	}

	setupLogging(cmd.ErrOrStderr(), s.Verbose)

	ext := newExtractor(s.Input).Output(s.Output).Encoding(s.Encoding)
	if s.CRLF {
		ext = ext.CRLF()
	}
	log.Debug().
		Str("input", ext.Input()).
		Str("output", ext.OutputPath()).
		Str("encoding", ext.EncodingName()).
		Bool("crlf", s.CRLF).
		Bool("reader", ext.Available()).
		Msg("extracting document text")

	res, err := ext.Save()
	if errors.Is(err, docxdump.ErrReaderUnavailable) {
		reportUnavailable(cmd.OutOrStdout(), s)
		return nil
	}
	if err != nil {
		return err
	}

	log.Debug().
		Int("paragraphs", res.Paragraphs).
		Int("tables", res.Tables).
		Int("rows", res.Rows).
		Int64("bytes", res.Bytes).
		Msg("extraction complete")

	okColor.Fprintf(cmd.OutOrStdout(), "✓ Extracted %s to %s\n", filepath.Base(s.Input), filepath.Base(res.Output))
	return nil
}

// resolveSettings layers the config file under explicit flags.
func resolveSettings(cmd *cobra.Command, opts *options) (config.Settings, error) {
	s := opts.settings
	changed := cmd.Flags().Changed
	if changed(config.FlagNoOpen) {
		s.Fallback = !opts.noOpen
	}

	if path := config.Path(opts.configPath); path != "" {
		fc, err := config.LoadFile(path)
		if err != nil {
			return s, errors.Wrap(err, "loading config")
		}
		config.Apply(&s, fc, changed)
	}
	return s, nil
}

// reportUnavailable tells the user how to get a reader and, if allowed,
// opens the document in its default application instead.
func reportUnavailable(out io.Writer, s config.Settings) {
	failColor.Fprintln(out, "❌ docx reader not available. Rebuild without the nodocx tag: go build ./cmd/docxdump")
	if !s.Fallback {
		return
	}

	noteColor.Fprintln(out, "\nAlternatively, opening the Word document manually...")
	if err := openDocument(s.Input); err != nil {
		log.Warn().Err(err).Str("path", s.Input).Msg("could not open document")
	}
}
