package xml

import (
	"bytes"
	"fmt"
	"io"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/transform"
)

// encodingKind names the five UTF variants the decision table distinguishes.
type encodingKind int

const (
	encUTF8 encodingKind = iota
	encUTF16BE
	encUTF16LE
	encUTF32BE
	encUTF32LE
)

// detectEncoding applies spec.md §4.1's decision table to up to four
// leading bytes, returning the chosen encoding and how many of those bytes
// are BOM (to be dropped rather than decoded as content). The 4-byte BOM
// tests precede the 2-byte ones because UTF-32 LE's BOM (FF FE 00 00)
// begins with UTF-16 LE's BOM (FF FE).
func detectEncoding(b []byte) (kind encodingKind, bomLen int) {
	get := func(i int) (byte, bool) {
		if i < len(b) {
			return b[i], true
		}
		return 0, false
	}
	b0, ok0 := get(0)
	b1, ok1 := get(1)
	b2, ok2 := get(2)
	b3, ok3 := get(3)

	switch {
	case ok0 && ok1 && ok2 && ok3 && b0 == 0x00 && b1 == 0x00 && b2 == 0xFE && b3 == 0xFF:
		return encUTF32BE, 4
	case ok0 && ok1 && ok2 && ok3 && b0 == 0xFF && b1 == 0xFE && b2 == 0x00 && b3 == 0x00:
		return encUTF32LE, 4
	case ok0 && ok1 && b0 == 0xFE && b1 == 0xFF:
		return encUTF16BE, 2
	case ok0 && ok1 && b0 == 0xFF && b1 == 0xFE:
		return encUTF16LE, 2
	case ok0 && ok1 && ok2 && b0 == 0xEF && b1 == 0xBB && b2 == 0xBF:
		return encUTF8, 3
	case ok0 && ok1 && ok2 && ok3 && b0 == 0x00 && b1 == 0x00 && b2 == 0x00 && b3 == 0x3C:
		return encUTF32BE, 0
	case ok0 && ok1 && ok2 && ok3 && b0 == 0x3C && b1 == 0x00 && b2 == 0x00 && b3 == 0x00:
		return encUTF32LE, 0
	case ok0 && ok1 && ok2 && ok3 && b0 == 0x00 && b1 == 0x3C && b2 == 0x00 && b3 == 0x3F:
		return encUTF16BE, 0
	case ok0 && ok1 && ok2 && ok3 && b0 == 0x3C && b1 == 0x00 && b2 == 0x3F && b3 == 0x00:
		return encUTF16LE, 0
	default:
		return encUTF8, 0
	}
}

// DetectAndDecode peeks up to four leading bytes of r, applies spec.md
// §4.1's decision table, strips any BOM, and returns the remaining input
// re-encoded as UTF-8.
//
// Grounded on the teacher's Scanner/Decoder whole-buffer strategy
// (fastxml reads its entire input into one []byte up front); this module
// keeps that strategy at the byte layer even though every stage downstream
// consumes one item at a time. UTF-16 BE/LE decoding reuses
// golang.org/x/net/html/charset.Lookup (an example-pack dependency via
// ucarion/c14n) for the encoding.Encoding, wired through
// golang.org/x/text/transform directly rather than charset.NewReader,
// which also does meta-tag sniffing this module doesn't want. UTF-32 has
// no ecosystem codec in the pack, so utf32Decoder in utf32.go implements
// transform.Transformer by hand — the one ambient concern this module
// builds on the standard library rather than a third-party decoder,
// because none exists in the corpus or its usual ecosystem.
func DetectAndDecode(r io.Reader) ([]byte, error) {
	lookahead := make([]byte, 4)
	n, err := io.ReadFull(r, lookahead)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, newWrappedError("reading encoding lookahead", err)
	}
	lookahead = lookahead[:n]

	kind, bomLen := detectEncoding(lookahead)
	rest := io.MultiReader(bytes.NewReader(lookahead[bomLen:]), r)

	switch kind {
	case encUTF8:
		out, err := io.ReadAll(rest)
		if err != nil {
			return nil, newWrappedError("reading UTF-8 input", err)
		}
		return out, nil
	case encUTF16BE:
		enc, _, _ := charset.Lookup("utf-16be")
		return decodeWithTransformer(rest, enc.NewDecoder())
	case encUTF16LE:
		enc, _, _ := charset.Lookup("utf-16le")
		return decodeWithTransformer(rest, enc.NewDecoder())
	case encUTF32BE:
		return decodeWithTransformer(rest, &utf32Decoder{bigEndian: true})
	case encUTF32LE:
		return decodeWithTransformer(rest, &utf32Decoder{bigEndian: false})
	default:
		return nil, fmt.Errorf("xml: unreachable encoding kind %d", kind)
	}
}

func decodeWithTransformer(r io.Reader, t transform.Transformer) ([]byte, error) {
	out, err := io.ReadAll(transform.NewReader(r, t))
	if err != nil {
		return nil, newWrappedError("decoding input", err)
	}
	return out, nil
}
