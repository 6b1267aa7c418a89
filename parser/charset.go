package parser

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/ianaindex"
)

// charsetReader decodes non-UTF-8 XML input based on the encoding declared
// in the XML prolog. WSDL documents in the wild frequently declare
// ISO-8859-1 or Windows-1252, which encoding/xml refuses to read without a
// CharsetReader. Lookup goes through the IANA index so any registered
// charset name the x/text encoding tables know about is accepted.
func charsetReader(charset string, input io.Reader) (io.Reader, error) {
	switch strings.ToLower(charset) {
	case "", "utf-8", "utf8":
		return input, nil
	}
	enc, err := ianaindex.IANA.Encoding(charset)
	if err != nil {
		return nil, fmt.Errorf("parser: unsupported charset %q: %w", charset, err)
	}
	if enc == nil {
		// The IANA index maps some names to a nil Encoding (e.g. aliases of
		// UTF-8 variants it declines to provide). Treat those as pass-through.
		return input, nil
	}
	return enc.NewDecoder().Reader(input), nil
}
