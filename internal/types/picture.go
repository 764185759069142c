package types

import (
	"fmt"

	"github.com/gabriel-vasile/mimetype"

	"github.com/simonhull/id3meta/internal/binary"
)

// DefaultPictureMIME is assumed when an APIC frame declares no MIME type.
const DefaultPictureMIME = "image/jpeg"

// Picture is an embedded image taken from an APIC frame.
//
// Data is a view into the reader's buffer, not a copy. It reads as empty
// once the reader is closed; use Clone to keep the image beyond that.
type Picture struct {
	// MIME type as declared by the frame ("image/jpeg" when none was given)
	MIMEType string

	// Description of the picture (optional)
	Description string

	// Image bytes
	Data binary.View

	// Type of picture (front cover, back cover, artist photo, etc.)
	Type PictureType
}

// Size returns the image size in bytes.
func (p *Picture) Size() int {
	if p == nil {
		return 0
	}
	return p.Data.Len()
}

// Bytes returns the image bytes without copying.
func (p *Picture) Bytes() []byte {
	if p == nil {
		return nil
	}
	return p.Data.Bytes()
}

// Clone returns a copy of the image bytes that outlives the reader.
func (p *Picture) Clone() []byte {
	if p == nil {
		return nil
	}
	return p.Data.Clone()
}

// DetectMIMEType sniffs the image bytes and returns the detected MIME type.
//
// Declared MIME types are frequently wrong or missing. Returns "" when the
// picture has no data.
func (p *Picture) DetectMIMEType() string {
	data := p.Bytes()
	if len(data) == 0 {
		return ""
	}
	return mimetype.Detect(data).String()
}

// PictureType categorizes the purpose/content of an embedded picture.
//
// Values follow the ID3v2 APIC picture type byte.
// See: https://id3.org/id3v2.4.0-frames (APIC frame)
type PictureType byte

const (
	PictureOther             PictureType = iota // Other
	PictureIcon                                 // File icon (32x32 PNG)
	PictureOtherIcon                            // Other file icon
	PictureFrontCover                           // Front cover
	PictureBackCover                            // Back cover
	PictureLeaflet                              // Leaflet page
	PictureMedia                                // Media (CD/vinyl label)
	PictureLeadArtist                           // Lead artist/performer/soloist
	PictureArtist                               // Artist/performer
	PictureConductor                            // Conductor
	PictureBand                                 // Band/orchestra
	PictureComposer                             // Composer
	PictureLyricist                             // Lyricist/text writer
	PictureRecordingLocation                    // Recording location
	PictureDuringRecording                      // During recording
	PictureDuringPerformance                    // During performance
	PictureVideoCapture                         // Movie/video screen capture
	PictureBrightFish                           // A bright colored fish
	PictureIllustration                         // Illustration
	PictureBandLogotype                         // Band/artist logotype
	PicturePublisherLogotype                    // Publisher/studio logotype
)

var pictureTypeNames = [...]string{
	"Other", "File icon", "Other file icon", "Front cover", "Back cover",
	"Leaflet page", "Media", "Lead artist", "Artist", "Conductor", "Band",
	"Composer", "Lyricist", "Recording location", "During recording",
	"During performance", "Video capture", "A bright colored fish",
	"Illustration", "Band logotype", "Publisher logotype",
}

func (t PictureType) String() string {
	if int(t) < len(pictureTypeNames) {
		return pictureTypeNames[t]
	}
	return fmt.Sprintf("PictureType(%d)", byte(t))
}

// String returns a human-readable description of the picture.
//
// Example output: "Front cover (JPEG, 245KB)"
func (p Picture) String() string {
	return fmt.Sprintf("%s (%s, %s)", p.Type, mimeToFormat(p.MIMEType), formatSize(p.Data.Len()))
}

// formatSize formats byte size in human-readable form.
func formatSize(bytes int) string {
	const (
		KB = 1024
		MB = 1024 * KB
	)

	switch {
	case bytes >= MB:
		return fmt.Sprintf("%.1fMB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%dKB", bytes/KB)
	default:
		return fmt.Sprintf("%dB", bytes)
	}
}

// mimeToFormat converts MIME type to short format name.
func mimeToFormat(mime string) string {
	switch mime {
	case "image/jpeg":
		return "JPEG"
	case "image/png":
		return "PNG"
	case "image/gif":
		return "GIF"
	case "image/bmp":
		return "BMP"
	case "image/webp":
		return "WebP"
	default:
		return "Image"
	}
}
