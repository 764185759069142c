package id3v2

import (
	"bytes"
	"strings"

	binutil "github.com/simonhull/id3meta/internal/binary"
	"github.com/simonhull/id3meta/internal/types"
)

// DecodePicture decodes an APIC (Attached Picture) frame.
// Format:
//
//	[1 byte]              Text encoding
//	[null-terminated]     MIME type (ISO-8859-1)
//	[1 byte]              Picture type
//	[null-terminated]     Description
//	[remaining]           Picture data
//
// The picture data is a view into buf. It returns false if the frame lies
// outside the tag or the buffer, or has an empty body.
func DecodePicture(buf *binutil.Buffer, h Header, f FrameHeader, mode UTF16Mode) (types.Picture, bool) {
	if !f.within(h) || f.Size == 0 {
		return types.Picture{}, false
	}
	data, err := buf.Slice(f.BodyOffset(), f.Size, "APIC frame data")
	if err != nil {
		return types.Picture{}, false
	}

	enc := data[0]
	pos := 1

	// A MIME type without terminator swallows the rest of the frame.
	var mimeType string
	if end := bytes.IndexByte(data[pos:], 0); end >= 0 {
		mimeType = decodeLatin1(data[pos : pos+end])
		pos += end + 1
	} else {
		pos = len(data)
	}
	mimeType = normalizeMIME(mimeType)

	var pictureType byte
	if pos < len(data) {
		pictureType = data[pos]
		pos++
	}

	var description string
	if pos < len(data) {
		// Some encoders don't terminate the description; the rest is
		// then image data.
		if end := findNullTerminator(data[pos:], enc); end >= 0 {
			description = decodeText(data[pos:pos+end], enc, mode)
			pos += end + terminatorSize(enc)
		}
	}
	pos = min(pos, len(data))

	image, err := buf.View(f.BodyOffset()+pos, len(data)-pos, "APIC picture data")
	if err != nil {
		return types.Picture{}, false
	}

	return types.Picture{
		MIMEType:    mimeType,
		Description: description,
		Data:        image,
		Type:        types.PictureType(pictureType),
	}, true
}

// normalizeMIME maps legacy ID3v2.2 image format markers and empty values
// onto MIME types.
func normalizeMIME(mimeType string) string {
	switch strings.ToUpper(mimeType) {
	case "JPG", "JPEG":
		return "image/jpeg"
	case "PNG":
		return "image/png"
	case "", "-->":
		return types.DefaultPictureMIME
	}
	return mimeType
}
