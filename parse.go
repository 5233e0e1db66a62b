package xml

import "io"

// ParseBytes builds the full pipeline over r: encoding detection and
// decoding (§4.1), tokenizing, namespace resolution, and a peekable
// cursor, accepting any of the encodings DetectAndDecode recognizes. File
// I/O, exception-style error helpers, and gluing this to a concrete
// domain data model are left to the caller, per spec.md §1/§6.
func ParseBytes(r io.Reader, opts ...ParserOption) (*Cursor, error) {
	decoded, err := DetectAndDecode(r)
	if err != nil {
		return nil, err
	}
	return ParseText(decoded, opts...), nil
}

// ParseText builds the pipeline over already-decoded UTF-8 text, skipping
// encoding detection entirely (spec.md §6's "parseText(chars) -> events").
func ParseText(text []byte, opts ...ParserOption) *Cursor {
	tok := NewTokenizer(text, opts...)
	res := NewResolver(tok, opts...)
	return NewCursor(res)
}
