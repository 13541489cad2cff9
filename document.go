package docxdump

import (
	"iter"

	"github.com/pkg/errors"
)

// ErrReaderUnavailable is returned when the binary was built without a
// document reader.
var ErrReaderUnavailable = errors.New("docx reader not available")

// Document is a read-only structured document.
//
// Paragraphs and Tables yield content in document order. When a sequence
// ends early because of a decoding error, Err reports it.
type Document interface {
	Paragraphs() iter.Seq[string]
	Tables() iter.Seq[Table]
	Err() error
	Close() error
}

// Table is a sequence of rows, top to bottom.
type Table interface {
	Rows() iter.Seq[Row]
}

// Row is a sequence of cell texts, left to right.
type Row interface {
	Cells() iter.Seq[string]
}

// OpenFunc opens the document at path.
type OpenFunc func(path string) (Document, error)

// Available reports whether a document reader is compiled into the binary.
func Available() bool {
	return defaultOpener != nil
}
