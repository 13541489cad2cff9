// Package cli implements the docxdump command line.
package cli

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/tsawler/docxdump/internal/config"
)

// Set at build time with -ldflags "-X github.com/tsawler/docxdump/internal/cli.version=..."
var version = "dev"

// options holds the raw flag values of one command instance.
type options struct {
	settings   config.Settings
	configPath string
	noOpen     bool
}

// NewRootCmd builds the docxdump command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{settings: config.Defaults()}

	cmd := &cobra.Command{
		Use:   "docxdump",
		Short: "Dump the paragraphs and tables of a Word document to a text file",
		Long: `docxdump writes one line per paragraph of a .docx document, followed by
one tab-separated line per table row, to a plain text file.

Run without flags it reads "` + config.Defaults().Input + `" and writes
"` + config.Defaults().Output + `".`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExtract(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.settings.Input, config.FlagInput, "i", opts.settings.Input, "Word document to read")
	flags.StringVarP(&opts.settings.Output, config.FlagOutput, "o", opts.settings.Output, "Text file to write")
	flags.StringVar(&opts.settings.Encoding, config.FlagEncoding, opts.settings.Encoding, "Output encoding (WHATWG label, e.g. utf-8, windows-1252)")
	flags.BoolVar(&opts.settings.CRLF, config.FlagCRLF, false, "Terminate lines with CRLF")
	flags.BoolVar(&opts.noOpen, config.FlagNoOpen, false, "Do not open the document when no reader is available")
	flags.BoolVarP(&opts.settings.Verbose, config.FlagVerbose, "v", false, "Verbose logging")
	flags.StringVar(&opts.configPath, "config", "", "YAML config file (default $"+config.EnvConfigPath+")")

	cmd.AddCommand(newVersionCmd())
	return cmd
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	setupLogging(os.Stderr, false)

	if err := NewRootCmd().Execute(); err != nil {
		log.Error().Stack().Err(err).Msg("docxdump failed")
		return 1
	}
	return 0
}
