package docxdump

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const defaultEncoding = "utf-8"

var utf8Encoding encoding.Encoding = unicode.UTF8

// lookupEncoding resolves a WHATWG encoding label such as "utf-8",
// "latin1" or "windows-1252" and returns its canonical name.
func lookupEncoding(label string) (string, encoding.Encoding, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return defaultEncoding, utf8Encoding, nil
	}

	enc, err := htmlindex.Get(label)
	if err != nil {
		return "", nil, errors.Wrapf(err, "unsupported encoding %q", label)
	}
	name, err := htmlindex.Name(enc)
	if err != nil {
		name = strings.ToLower(label)
	}
	return name, enc, nil
}

// newEncodingWriter returns a writer that encodes UTF-8 text into enc
// before passing it to w. Runes the encoding cannot represent are
// replaced. Close flushes buffered bytes but does not close w.
func newEncodingWriter(w io.Writer, enc encoding.Encoding) io.WriteCloser {
	return transform.NewWriter(w, encoding.ReplaceUnsupported(enc.NewEncoder()))
}

// countingWriter counts bytes passed through to the underlying writer.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
