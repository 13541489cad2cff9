//go:build nodocx

package docxdump

// Built without a document reader; every extraction reports
// ErrReaderUnavailable.
var defaultOpener OpenFunc
