package xml

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectEncoding(t *testing.T) {
	testCases := []struct {
		Name     string
		Bytes    []byte
		Kind     encodingKind
		BOMLen   int
	}{
		{Name: "UTF-32 BE BOM", Bytes: []byte{0x00, 0x00, 0xFE, 0xFF}, Kind: encUTF32BE, BOMLen: 4},
		{Name: "UTF-32 LE BOM", Bytes: []byte{0xFF, 0xFE, 0x00, 0x00}, Kind: encUTF32LE, BOMLen: 4},
		{Name: "UTF-16 BE BOM", Bytes: []byte{0xFE, 0xFF, 0x00, 0x3C}, Kind: encUTF16BE, BOMLen: 2},
		{Name: "UTF-16 LE BOM", Bytes: []byte{0xFF, 0xFE, 0x3C, 0x00}, Kind: encUTF16LE, BOMLen: 2},
		{Name: "UTF-8 BOM", Bytes: []byte{0xEF, 0xBB, 0xBF, '<'}, Kind: encUTF8, BOMLen: 3},
		{Name: "UTF-32 BE no BOM", Bytes: []byte{0x00, 0x00, 0x00, 0x3C}, Kind: encUTF32BE, BOMLen: 0},
		{Name: "UTF-32 LE no BOM", Bytes: []byte{0x3C, 0x00, 0x00, 0x00}, Kind: encUTF32LE, BOMLen: 0},
		{Name: "UTF-16 BE no BOM", Bytes: []byte{0x00, 0x3C, 0x00, 0x3F}, Kind: encUTF16BE, BOMLen: 0},
		{Name: "UTF-16 LE no BOM", Bytes: []byte{0x3C, 0x00, 0x3F, 0x00}, Kind: encUTF16LE, BOMLen: 0},
		{Name: "plain UTF-8", Bytes: []byte("<p/>"), Kind: encUTF8, BOMLen: 0},
	}
	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			kind, bomLen := detectEncoding(tc.Bytes)
			assert.Equal(t, tc.Kind, kind)
			assert.Equal(t, tc.BOMLen, bomLen)
		})
	}
}

func TestDetectAndDecodeUTF8NoBOM(t *testing.T) {
	out, err := DetectAndDecode(bytes.NewReader([]byte(`<p>hi</p>`)))
	require.NoError(t, err)
	assert.Equal(t, `<p>hi</p>`, string(out))
}

func TestDetectAndDecodeUTF8WithBOM(t *testing.T) {
	input := append([]byte{0xEF, 0xBB, 0xBF}, []byte(`<p/>`)...)
	out, err := DetectAndDecode(bytes.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, `<p/>`, string(out))
}

func encodeUTF16(s string, bigEndian bool) []byte {
	var buf bytes.Buffer
	for _, r := range s {
		var units []uint16
		if r > 0xFFFF {
			r -= 0x10000
			units = []uint16{uint16(0xD800 + (r >> 10)), uint16(0xDC00 + (r & 0x3FF))}
		} else {
			units = []uint16{uint16(r)}
		}
		for _, u := range units {
			if bigEndian {
				buf.WriteByte(byte(u >> 8))
				buf.WriteByte(byte(u))
			} else {
				buf.WriteByte(byte(u))
				buf.WriteByte(byte(u >> 8))
			}
		}
	}
	return buf.Bytes()
}

func encodeUTF32(s string, bigEndian bool) []byte {
	var buf bytes.Buffer
	for _, r := range s {
		b := make([]byte, 4)
		if bigEndian {
			b[0] = byte(r >> 24)
			b[1] = byte(r >> 16)
			b[2] = byte(r >> 8)
			b[3] = byte(r)
		} else {
			b[0] = byte(r)
			b[1] = byte(r >> 8)
			b[2] = byte(r >> 16)
			b[3] = byte(r >> 24)
		}
		buf.Write(b)
	}
	return buf.Bytes()
}

func TestDetectAndDecodeEncodingAgnosticism(t *testing.T) {
	const doc = `<p a="1">hello</p>`

	variants := map[string][]byte{
		"utf-8 no BOM": []byte(doc),
		"utf-8 BOM":    append([]byte{0xEF, 0xBB, 0xBF}, []byte(doc)...),
		"utf-16 be":    append([]byte{0xFE, 0xFF}, encodeUTF16(doc, true)...),
		"utf-16 le":    append([]byte{0xFF, 0xFE}, encodeUTF16(doc, false)...),
		"utf-32 be":    append([]byte{0x00, 0x00, 0xFE, 0xFF}, encodeUTF32(doc, true)...),
		"utf-32 le":    append([]byte{0xFF, 0xFE, 0x00, 0x00}, encodeUTF32(doc, false)...),
	}

	for name, raw := range variants {
		t.Run(name, func(t *testing.T) {
			out, err := DetectAndDecode(bytes.NewReader(raw))
			require.NoError(t, err)
			assert.Equal(t, doc, string(out))
		})
	}
}

func TestUTF32DecoderRejectsSurrogateCodepoint(t *testing.T) {
	d := &utf32Decoder{bigEndian: true}
	src := []byte{0x00, 0x00, 0xD8, 0x00} // a UTF-16 surrogate value, invalid in UTF-32
	dst := make([]byte, 16)
	_, _, err := d.Transform(dst, src, true)
	assert.Error(t, err)
}
