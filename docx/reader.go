// Package docx provides DOCX (Office Open XML) document parsing.
//
// The Reader exposes the body of a document as two lazy sequences:
// paragraphs and tables, each in document order. Both re-read
// word/document.xml from the archive, so they can be ranged over any
// number of times without holding the whole document in memory.
package docx

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"iter"
)

// Reader provides read-only access to DOCX document content.
type Reader struct {
	zipReader *zip.ReadCloser
	document  *zip.File
	err       error
}

// Open opens a DOCX file for reading.
func Open(filename string) (*Reader, error) {
	zr, err := zip.OpenReader(filename)
	if err != nil {
		return nil, fmt.Errorf("opening ZIP archive: %w", err)
	}

	r := &Reader{
		zipReader: zr,
	}

	// Validate required files exist
	if err := r.validate(); err != nil {
		zr.Close()
		return nil, err
	}

	r.document = r.getFile(partDocument)
	return r, nil
}

// Close releases resources associated with the Reader.
func (r *Reader) Close() error {
	if r.zipReader != nil {
		err := r.zipReader.Close()
		r.zipReader = nil
		return err
	}
	return nil
}

// Err returns the first error met while iterating over the document.
// A sequence that stops early because of an error simply ends; callers
// check Err after ranging.
func (r *Reader) Err() error {
	return r.err
}

// validate checks that required DOCX files exist.
func (r *Reader) validate() error {
	required := []string{
		partContentTypes,
		partDocument,
	}

	fileMap := make(map[string]bool)
	for _, f := range r.zipReader.File {
		fileMap[f.Name] = true
	}

	for _, name := range required {
		if !fileMap[name] {
			return fmt.Errorf("missing required file: %s", name)
		}
	}

	return nil
}

// getFile returns a zip.File by name.
func (r *Reader) getFile(name string) *zip.File {
	for _, f := range r.zipReader.File {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// Paragraphs returns the text of each body paragraph in document order.
// Paragraphs inside tables are not included.
func (r *Reader) Paragraphs() iter.Seq[string] {
	return func(yield func(string) bool) {
		r.walkBody(func(b *bodyDecoder, name string) (bool, error) {
			if name != "p" {
				return true, b.skip()
			}
			text, err := b.paragraph()
			if err != nil {
				return false, err
			}
			return yield(text), nil
		})
	}
}

// Tables returns each body table in document order.
// Tables nested inside table cells are not included.
func (r *Reader) Tables() iter.Seq[*Table] {
	return func(yield func(*Table) bool) {
		r.walkBody(func(b *bodyDecoder, name string) (bool, error) {
			if name != "tbl" {
				return true, b.skip()
			}
			tbl, err := b.table()
			if err != nil {
				return false, err
			}
			return yield(tbl), nil
		})
	}
}

// walkBody streams word/document.xml and calls visit for every direct
// child of the body. visit must consume the element. Iteration stops when
// visit returns false or an error; the error is recorded for Err.
func (r *Reader) walkBody(visit func(b *bodyDecoder, name string) (bool, error)) {
	if r.err != nil {
		return
	}
	if r.zipReader == nil {
		r.err = errors.New("reader is closed")
		return
	}

	rc, err := r.document.Open()
	if err != nil {
		r.err = fmt.Errorf("opening %s: %w", partDocument, err)
		return
	}
	defer rc.Close()

	b := newBodyDecoder(rc)
	if err := b.seekBody(); err != nil {
		r.err = fmt.Errorf("parsing %s: %w", partDocument, err)
		return
	}

	for {
		se, err := b.next()
		if err == io.EOF {
			return
		}
		if err != nil {
			r.err = fmt.Errorf("parsing %s: %w", partDocument, err)
			return
		}

		name := se.Name.Local
		if se.Name.Space != nsW && se.Name.Space != "" {
			name = ""
		}

		more, err := visit(b, name)
		if err != nil {
			r.err = fmt.Errorf("parsing %s: %w", partDocument, err)
			return
		}
		if !more {
			return
		}
	}
}
