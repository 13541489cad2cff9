package docxdump

import "golang.org/x/text/encoding"

// ExtractOptions holds configuration for an extraction.
type ExtractOptions struct {
	output string

	// Output text encoding; canonical name and its codec
	encodingName string
	encoding     encoding.Encoding

	newline string
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		output:       DefaultOutput,
		encodingName: defaultEncoding,
		encoding:     utf8Encoding,
		newline:      "\n",
	}
}

// clone creates a copy of ExtractOptions.
func (o ExtractOptions) clone() ExtractOptions {
	return ExtractOptions{
		output:       o.output,
		encodingName: o.encodingName,
		encoding:     o.encoding,
		newline:      o.newline,
	}
}
