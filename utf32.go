package xml

import (
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// utf32Decoder implements transform.Transformer for UTF-32 BE/LE, a codec
// no library in the example pack (or the x/text ecosystem generally)
// ships. Grounded on the transform.Transformer contract golang.org/x/text
// defines and golang.org/x/net/html/charset consumes; the decode loop
// itself follows the four-bytes-per-rune structure of spec.md §4.1's UTF-32
// rows.
type utf32Decoder struct {
	bigEndian bool
}

var _ transform.Transformer = (*utf32Decoder)(nil)

func (d *utf32Decoder) Reset() {}

func (d *utf32Decoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for len(src)-nSrc >= 4 {
		b := src[nSrc : nSrc+4]
		var cp uint32
		if d.bigEndian {
			cp = uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
		} else {
			cp = uint32(b[3])<<24 | uint32(b[2])<<16 | uint32(b[1])<<8 | uint32(b[0])
		}
		if cp > 0x10FFFF || (cp >= 0xD800 && cp <= 0xDFFF) {
			return nDst, nSrc, newError("invalid UTF-32 code point", nil)
		}
		r := rune(cp)
		if len(dst)-nDst < utf8.UTFMax {
			return nDst, nSrc, transform.ErrShortDst
		}
		size := utf8.EncodeRune(dst[nDst:], r)
		nDst += size
		nSrc += 4
	}
	if atEOF && len(src)-nSrc != 0 {
		return nDst, nSrc, newError("truncated UTF-32 sequence", nil)
	}
	if !atEOF && len(src)-nSrc > 0 {
		err = transform.ErrShortSrc
	}
	return nDst, nSrc, err
}
