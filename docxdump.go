// Package docxdump dumps the text of a Word (.docx) document to a plain
// text file: one line per body paragraph, followed by one tab-separated
// line per table row.
//
// Basic usage:
//
//	res, err := docxdump.Open("report.docx").Output("report.txt").Save()
//	if errors.Is(err, docxdump.ErrReaderUnavailable) {
//	    // built with -tags nodocx
//	}
//
// With options:
//
//	res, err := docxdump.Open("report.docx").
//	    Output("report.txt").
//	    Encoding("windows-1252").
//	    CRLF().
//	    Save()
//
// For lower-level access to paragraphs and tables, use the docx package.
package docxdump

// Default locations used when no paths are given.
const (
	DefaultInput  = "API_docs/Spec ETF.docx"
	DefaultOutput = "API_docs/Spec_ETF_extracted.txt"
)

// Open starts an extraction of the document at path.
// Nothing is read until a terminal operation (Save or Dump) is called.
//
// Example:
//
//	res, err := docxdump.Open("document.docx").Save()
func Open(path string) *Extractor {
	return &Extractor{
		input:   path,
		open:    defaultOpener,
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	res := docxdump.Must(docxdump.Open("document.docx").Save())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
