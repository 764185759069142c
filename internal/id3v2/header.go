// Package id3v2 locates ID3v2 tags inside an in-memory file, walks their
// frames, and decodes the text and picture frames used for metadata.
//
// Everything in this package is a pure function of an immutable
// binary.Buffer. Tag and frame headers are small values holding offsets into
// that buffer; they never copy frame bodies.
package id3v2

import (
	"fmt"

	binutil "github.com/simonhull/id3meta/internal/binary"
)

// Magic is the byte sequence at the start of an ID3v2 tag header.
const Magic = "ID3"

// HeaderSize is the size of both the tag header and a frame header.
const HeaderSize = 10

// Tag header flags.
const (
	FlagUnsynchronisation = 0x80
	FlagExtendedHeader    = 0x40
	FlagExperimental      = 0x20
	FlagFooter            = 0x10
)

// Header is an ID3v2 tag header found in a buffer.
type Header struct {
	Offset   int  // Position of "ID3" in the buffer
	Version  byte // Major version (2, 3 or 4)
	Revision byte // Minor version
	Flags    byte
	Size     int // Tag body size excluding this header, synchsafe-decoded
}

// FramesOffset returns where the header ends and the tag body begins.
func (h Header) FramesOffset() int {
	return h.Offset + HeaderSize
}

// End returns the offset one past the last byte of the declared tag body.
func (h Header) End() int {
	return h.Offset + HeaderSize + h.Size
}

// HasExtendedHeader reports whether the extended header flag is set.
func (h Header) HasExtendedHeader() bool {
	return h.Flags&FlagExtendedHeader != 0
}

// String implements fmt.Stringer.
func (h Header) String() string {
	return fmt.Sprintf("ID3v2.%d.%d at %d (%d bytes)", h.Version, h.Revision, h.Offset, h.Size)
}

// ScanMode selects how Locate searches the buffer for tag headers.
type ScanMode int

const (
	// ScanBruteForce reports every occurrence of "ID3" at offsets
	// 0 <= i < len-10, earliest first. Signatures that happen to occur in
	// audio or image data are reported too.
	ScanBruteForce ScanMode = iota

	// ScanAnchored only reports candidates with a plausible header (major
	// version 2-4, size bytes below 0x80) that do not start inside the body
	// of a tag already reported.
	ScanAnchored
)

// String implements fmt.Stringer.
func (m ScanMode) String() string {
	switch m {
	case ScanBruteForce:
		return "brute-force"
	case ScanAnchored:
		return "anchored"
	default:
		return fmt.Sprintf("ScanMode(%d)", int(m))
	}
}

// Locate returns every ID3v2 tag header in buf, in offset order.
func Locate(buf *binutil.Buffer, mode ScanMode) []Header {
	var headers []Header

	limit := buf.Len() - HeaderSize
	next := 0
	for i := buf.IndexFrom(0, Magic); i >= 0 && i < limit; i = buf.IndexFrom(i+1, Magic) {
		h, ok := parseHeader(buf, i)
		if !ok {
			continue
		}

		if mode == ScanAnchored {
			if i < next || !plausible(buf, h) {
				continue
			}
			next = h.End()
		}

		headers = append(headers, h)
	}

	return headers
}

func parseHeader(buf *binutil.Buffer, off int) (Header, bool) {
	raw, err := buf.Slice(off, HeaderSize, "ID3v2 header")
	if err != nil {
		return Header{}, false
	}

	return Header{
		Offset:   off,
		Version:  raw[3],
		Revision: raw[4],
		Flags:    raw[5],
		Size:     int(binutil.Synchsafe(raw[6:10])),
	}, true
}

// plausible rejects "ID3" byte sequences that cannot start a real header.
func plausible(buf *binutil.Buffer, h Header) bool {
	if h.Version < 2 || h.Version > 4 || h.Revision == 0xFF {
		return false
	}
	raw, err := buf.Slice(h.Offset+6, 4, "ID3v2 size")
	if err != nil {
		return false
	}
	for _, b := range raw {
		if b&0x80 != 0 {
			return false
		}
	}
	return true
}
