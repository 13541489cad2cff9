package cli

import (
	"github.com/spf13/cobra"

	"github.com/tsawler/docxdump"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			reader := "docx"
			if !docxdump.Available() {
				reader = "none"
			}
			cmd.Printf("docxdump version %s (reader: %s)\n", version, reader)
		},
	}
}
