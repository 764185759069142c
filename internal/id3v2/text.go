package id3v2

import (
	"bytes"
	"encoding/binary"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	binutil "github.com/simonhull/id3meta/internal/binary"
)

// Text encodings selected by the first byte of a text frame body.
const (
	EncodingLatin1  byte = 0
	EncodingUTF16   byte = 1 // UTF-16 with byte order mark
	EncodingUTF16BE byte = 2
	EncodingUTF8    byte = 3
)

// UTF16Mode selects how UTF-16 payloads are decoded.
type UTF16Mode int

const (
	// UTF16ASCII keeps only code units in the range 1-127 and drops
	// everything else, including byte order marks, non-ASCII characters
	// and surrogates.
	UTF16ASCII UTF16Mode = iota

	// UTF16Full transcodes the payload to UTF-8, surrogate pairs included.
	UTF16Full
)

var (
	utf16WithBOM = unicode.UTF16(unicode.BigEndian, unicode.UseBOM)
	utf16BE      = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
)

// DecodeText decodes the body of text frame f in tag h.
// It returns "" if the frame lies outside the tag or the buffer, or if the
// encoding byte is unknown.
func DecodeText(buf *binutil.Buffer, h Header, f FrameHeader, mode UTF16Mode) string {
	if !f.within(h) || f.Size == 0 {
		return ""
	}
	body, err := buf.Slice(f.BodyOffset(), f.Size, "text frame "+f.ID)
	if err != nil {
		return ""
	}
	return decodeText(body[1:], body[0], mode)
}

// decodeText decodes payload under the given encoding byte.
// Trailing NUL terminators are removed.
func decodeText(payload []byte, enc byte, mode UTF16Mode) string {
	if len(payload) == 0 {
		return ""
	}

	var s string
	switch enc {
	case EncodingLatin1:
		s = decodeLatin1(payload)
	case EncodingUTF16:
		s = decodeUTF16(payload, true, mode)
	case EncodingUTF16BE:
		s = decodeUTF16(payload, false, mode)
	case EncodingUTF8:
		s = string(payload)
	default:
		return ""
	}

	return strings.TrimRight(s, "\x00")
}

// decodeLatin1 maps ISO-8859-1 bytes to UTF-8. ASCII is unchanged.
func decodeLatin1(b []byte) string {
	out, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
	if err != nil {
		return string(b)
	}
	return string(out)
}

func decodeUTF16(b []byte, withBOM bool, mode UTF16Mode) string {
	if mode == UTF16Full {
		if s, ok := transcodeUTF16(b, withBOM); ok {
			return s
		}
	}
	return asciiUTF16(b, withBOM)
}

// transcodeUTF16 decodes b with golang.org/x/text. A payload without a byte
// order mark is read big-endian.
func transcodeUTF16(b []byte, withBOM bool) (string, bool) {
	var enc encoding.Encoding = utf16BE
	if withBOM {
		enc = utf16WithBOM
	}

	// Drop an odd trailing byte rather than emitting U+FFFD for it.
	b = b[:len(b)&^1]

	out, err := enc.NewDecoder().Bytes(b)
	if err != nil {
		return "", false
	}
	if !withBOM {
		out = bytes.TrimPrefix(out, []byte("\uFEFF"))
	}
	return string(out), true
}

// asciiUTF16 reads b as 16-bit code units and keeps the units in 1-127.
// With withBOM set, a leading FF FE selects little-endian; anything else is
// read big-endian.
func asciiUTF16(b []byte, withBOM bool) string {
	var order binary.ByteOrder = binary.BigEndian
	if withBOM && len(b) >= 2 && b[0] == 0xFF && b[1] == 0xFE {
		order = binary.LittleEndian
	}

	var sb strings.Builder
	sb.Grow(len(b) / 2)
	for i := 0; i+1 < len(b); i += 2 {
		if u := order.Uint16(b[i:]); u >= 1 && u <= 0x7F {
			sb.WriteByte(byte(u))
		}
	}
	return sb.String()
}

// findNullTerminator returns the index of the string terminator for enc, or
// -1. UTF-16 terminators are two zero bytes on an even offset.
func findNullTerminator(data []byte, enc byte) int {
	switch enc {
	case EncodingUTF16, EncodingUTF16BE:
		for i := 0; i+1 < len(data); i += 2 {
			if data[i] == 0 && data[i+1] == 0 {
				return i
			}
		}
		return -1
	default:
		return bytes.IndexByte(data, 0)
	}
}

// terminatorSize returns the size of the string terminator for enc.
func terminatorSize(enc byte) int {
	switch enc {
	case EncodingUTF16, EncodingUTF16BE:
		return 2
	default:
		return 1
	}
}
