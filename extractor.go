package docxdump

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// Result summarises a completed extraction.
type Result struct {
	Output     string // Output path; empty for Dump
	Paragraphs int
	Tables     int
	Rows       int
	Bytes      int64 // Encoded bytes written
}

// Lines returns the number of lines written.
func (r Result) Lines() int {
	return r.Paragraphs + r.Rows
}

// Extractor provides a fluent interface for dumping a document as text.
// Each configuration method returns a new Extractor instance, making it
// safe for concurrent use and allowing method chaining.
type Extractor struct {
	input string
	open  OpenFunc

	// Configuration
	options ExtractOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Extractor with a copy of options.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		input:   e.input,
		open:    e.open,
		options: e.options.clone(),
		err:     e.err,
	}
}

// Output sets the path of the text file written by Save.
func (e *Extractor) Output(path string) *Extractor {
	newExt := e.clone()
	newExt.options.output = path
	return newExt
}

// Encoding sets the output text encoding by WHATWG label, for example
// "utf-8", "utf-16le" or "windows-1252". An unknown label makes every
// terminal operation fail.
func (e *Extractor) Encoding(label string) *Extractor {
	newExt := e.clone()
	name, enc, err := lookupEncoding(label)
	if err != nil {
		if newExt.err == nil {
			newExt.err = err
		}
		return newExt
	}
	newExt.options.encodingName = name
	newExt.options.encoding = enc
	return newExt
}

// CRLF terminates lines with "\r\n" instead of "\n".
func (e *Extractor) CRLF() *Extractor {
	newExt := e.clone()
	newExt.options.newline = "\r\n"
	return newExt
}

// Using replaces the document reader. A nil OpenFunc behaves like a
// binary built without a reader.
func (e *Extractor) Using(open OpenFunc) *Extractor {
	newExt := e.clone()
	newExt.open = open
	return newExt
}

// Available reports whether the Extractor has a document reader.
func (e *Extractor) Available() bool {
	return e.open != nil
}

// Input returns the document path.
func (e *Extractor) Input() string {
	return e.input
}

// OutputPath returns the path Save writes to.
func (e *Extractor) OutputPath() string {
	return e.options.output
}

// EncodingName returns the canonical name of the output encoding.
func (e *Extractor) EncodingName() string {
	return e.options.encodingName
}

// openDocument checks the reader capability and opens the input.
func (e *Extractor) openDocument() (Document, error) {
	if e.err != nil {
		return nil, e.err
	}
	if e.open == nil {
		return nil, ErrReaderUnavailable
	}
	if e.input == "" {
		return nil, errors.New("no input document specified")
	}

	doc, err := e.open(e.input)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", e.input)
	}
	return doc, nil
}

// Dump writes the document text to w.
func (e *Extractor) Dump(w io.Writer) (Result, error) {
	doc, err := e.openDocument()
	if err != nil {
		return Result{}, err
	}
	defer doc.Close()

	return e.write(doc, w)
}

// Save writes the document text to the output file, creating or
// truncating it. The document is opened first, so a missing or
// unreadable input never creates the output file. The file is closed on
// every path; a write failure part way through leaves partial output.
func (e *Extractor) Save() (res Result, err error) {
	doc, err := e.openDocument()
	if err != nil {
		return Result{}, err
	}
	defer doc.Close()

	path := e.options.output
	if path == "" {
		return Result{}, errors.New("no output path specified")
	}

	f, err := os.Create(path)
	if err != nil {
		return Result{}, errors.WithStack(err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "closing %s", path)
		}
	}()

	res, err = e.write(doc, f)
	res.Output = path
	return res, err
}

// write streams paragraphs and then table rows to w.
func (e *Extractor) write(doc Document, w io.Writer) (Result, error) {
	var res Result

	cw := &countingWriter{w: w}
	ew := newEncodingWriter(cw, e.options.encoding)
	lw := &lineWriter{w: bufio.NewWriter(ew), newline: e.options.newline}

	for p := range doc.Paragraphs() {
		if !lw.line(flattenParagraph(p)) {
			break
		}
		res.Paragraphs++
	}

	if lw.err == nil && doc.Err() == nil {
	tables:
		for tbl := range doc.Tables() {
			res.Tables++
			for row := range tbl.Rows() {
				if !lw.line(joinCells(row)) {
					break tables
				}
				res.Rows++
			}
		}
	}

	if err := doc.Err(); err != nil {
		return res, errors.Wrapf(err, "reading %s", e.input)
	}
	if lw.err != nil {
		return res, errors.Wrap(lw.err, "writing text")
	}
	if err := lw.w.Flush(); err != nil {
		return res, errors.Wrap(err, "writing text")
	}
	if err := ew.Close(); err != nil {
		return res, errors.Wrap(err, "writing text")
	}

	res.Bytes = cw.n
	return res, nil
}

// lineWriter writes newline-terminated lines and keeps the first error.
type lineWriter struct {
	w       *bufio.Writer
	newline string
	err     error
}

func (lw *lineWriter) line(s string) bool {
	if lw.err != nil {
		return false
	}
	if _, err := lw.w.WriteString(s); err != nil {
		lw.err = err
		return false
	}
	if _, err := lw.w.WriteString(lw.newline); err != nil {
		lw.err = err
		return false
	}
	return true
}

// Breaks inside a paragraph or cell would split one item over several
// lines; tabs inside a cell would shift the columns of its row.
var (
	paragraphFlattener = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")
	cellFlattener      = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\t", " ")
)

func flattenParagraph(s string) string {
	return paragraphFlattener.Replace(s)
}

// joinCells joins a row's cells with tabs.
func joinCells(row Row) string {
	var sb strings.Builder
	first := true
	for cell := range row.Cells() {
		if !first {
			sb.WriteByte('\t')
		}
		first = false
		sb.WriteString(cellFlattener.Replace(cell))
	}
	return sb.String()
}
