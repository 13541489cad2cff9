// Command docxdump writes the paragraph and table text of a Word document
// to a plain text file.
//
// Build with -tags nodocx to produce a binary without the document reader;
// it reports how to get one and opens the document in the default
// application instead.
package main

import (
	"os"

	"github.com/tsawler/docxdump/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
