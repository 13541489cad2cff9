//go:build !nodocx

package docxdump

import (
	"iter"

	"github.com/pkg/errors"

	"github.com/tsawler/docxdump/docx"
	"github.com/tsawler/docxdump/format"
)

var defaultOpener OpenFunc = openDOCX

// openDOCX rejects containers that are recognisably something other than
// a Word document, then opens the file with the docx reader. Unrecognised
// content is left to the reader, which reports what is missing.
func openDOCX(path string) (Document, error) {
	f, err := format.DetectFile(path)
	if err != nil {
		return nil, err
	}
	if f != format.DOCX && f != format.Unknown {
		return nil, errors.Errorf("unsupported format %s (%s); only Word .docx documents can be read", f, f.Extension())
	}

	r, err := docx.Open(path)
	if err != nil {
		return nil, err
	}
	return docxDocument{r: r}, nil
}

// docxDocument adapts docx.Reader to Document.
type docxDocument struct {
	r *docx.Reader
}

func (d docxDocument) Paragraphs() iter.Seq[string] { return d.r.Paragraphs() }
func (d docxDocument) Err() error                   { return d.r.Err() }
func (d docxDocument) Close() error                 { return d.r.Close() }

func (d docxDocument) Tables() iter.Seq[Table] {
	return func(yield func(Table) bool) {
		for t := range d.r.Tables() {
			if !yield(docxTable{t: t}) {
				return
			}
		}
	}
}

type docxTable struct {
	t *docx.Table
}

func (t docxTable) Rows() iter.Seq[Row] {
	return func(yield func(Row) bool) {
		for row := range t.t.Rows() {
			if !yield(row) {
				return
			}
		}
	}
}
