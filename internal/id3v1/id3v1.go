// Package id3v1 locates and reads the fixed 128-byte ID3v1 tag that trails
// an audio file.
package id3v1

import (
	"bytes"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"

	"github.com/simonhull/id3meta/internal/binary"
	"github.com/simonhull/id3meta/internal/types"
)

// TagSize is the length of an ID3v1 tag in bytes.
const TagSize = 128

// Magic is the byte sequence at the start of an ID3v1 tag.
const Magic = "TAG"

// Field layout within the tag.
const (
	titleOffset   = 3
	artistOffset  = 33
	albumOffset   = 63
	yearOffset    = 93
	commentOffset = 97
	genreOffset   = 127

	textFieldSize = 30
	yearSize      = 4
)

// Tag is a view of an ID3v1 tag inside a buffer.
//
// String fields are decoded from ISO-8859-1 and trimmed of trailing NUL and
// space padding.
type Tag struct {
	view binary.View
}

// Locate returns the ID3v1 tag at len-128, if the buffer has one.
// Absence is a normal outcome, not an error.
func Locate(buf *binary.Buffer) (Tag, bool) {
	off := buf.Len() - TagSize
	if off < 0 || !buf.HasPrefixAt(off, Magic) {
		return Tag{}, false
	}

	view, err := buf.View(off, TagSize, "ID3v1 tag")
	if err != nil {
		return Tag{}, false
	}
	return Tag{view: view}, true
}

// Offset returns the position of the tag within the buffer.
func (t Tag) Offset() int {
	return t.view.Offset()
}

// Magic returns the 3-byte tag identifier ("TAG").
func (t Tag) Magic() string {
	return string(t.field(0, 3))
}

// Title returns the title field.
func (t Tag) Title() string {
	return decodeField(t.field(titleOffset, textFieldSize))
}

// Artist returns the artist field.
func (t Tag) Artist() string {
	return decodeField(t.field(artistOffset, textFieldSize))
}

// Album returns the album field.
func (t Tag) Album() string {
	return decodeField(t.field(albumOffset, textFieldSize))
}

// Year returns the 4-character year field.
func (t Tag) Year() string {
	return decodeField(t.field(yearOffset, yearSize))
}

// Comment returns the comment field. In ID3v1.1 tags the comment is 28
// bytes long and the last two bytes hold the track number.
func (t Tag) Comment() string {
	if t.Track() > 0 {
		return decodeField(t.field(commentOffset, textFieldSize-2))
	}
	return decodeField(t.field(commentOffset, textFieldSize))
}

// Track returns the ID3v1.1 track number, or 0 for plain ID3v1 tags.
func (t Tag) Track() int {
	c := t.field(commentOffset, textFieldSize)
	if len(c) != textFieldSize || c[28] != 0 {
		return 0
	}
	return int(c[29])
}

// GenreCode returns the raw genre byte.
func (t Tag) GenreCode() byte {
	g := t.field(genreOffset, 1)
	if len(g) == 0 {
		return 0xFF
	}
	return g[0]
}

// Genre returns the genre name for GenreCode, or "" when the code is unset
// or outside the table.
func (t Tag) Genre() string {
	return types.GenreName(t.GenreCode())
}

// Metadata converts the tag into a Metadata record, for use as a fallback
// when the ID3v2 tags leave fields empty.
func (t Tag) Metadata() types.Metadata {
	meta := types.Metadata{
		Title:  t.Title(),
		Artist: t.Artist(),
		Album:  t.Album(),
		Year:   t.Year(),
		Genre:  t.Genre(),
	}
	if track := t.Track(); track > 0 {
		meta.Track = strconv.Itoa(track)
	}
	return meta
}

func (t Tag) field(off, n int) []byte {
	b := t.view.Bytes()
	if off+n > len(b) {
		return nil
	}
	return b[off : off+n]
}

// decodeField converts an ISO-8859-1 field to UTF-8 and strips padding.
func decodeField(raw []byte) string {
	if i := bytes.IndexByte(raw, 0); i >= 0 {
		raw = raw[:i]
	}
	s, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	if err != nil {
		return strings.TrimRight(string(raw), " ")
	}
	return strings.TrimRight(string(s), " ")
}
