package server

import (
	"time"

	"github.com/simonhull/id3meta"
)

// ErrorResponse is returned for failed requests.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// MetadataResponse is the body of a successful metadata request.
type MetadataResponse struct {
	Success  bool         `json:"success"`
	Filename string       `json:"filename"`
	Size     int          `json:"size"`
	Metadata MetadataJSON `json:"metadata"`
	ID3v1    *ID3v1JSON   `json:"id3v1,omitempty"`
	Tags     []TagJSON    `json:"tags"`
	Audio    *AudioJSON   `json:"audio,omitempty"`
	Warnings []string     `json:"warnings,omitempty"`
}

// MetadataJSON mirrors id3meta.Metadata.
type MetadataJSON struct {
	Title       string       `json:"title,omitempty"`
	Artist      string       `json:"artist,omitempty"`
	Album       string       `json:"album,omitempty"`
	Year        string       `json:"year,omitempty"`
	Track       string       `json:"track,omitempty"`
	Genre       string       `json:"genre,omitempty"`
	GenreName   string       `json:"genre_name,omitempty"`
	TrackNumber int          `json:"track_number,omitempty"`
	TrackTotal  int          `json:"track_total,omitempty"`
	Picture     *PictureJSON `json:"picture,omitempty"`
}

// PictureJSON describes an embedded picture without its bytes.
type PictureJSON struct {
	MIMEType    string `json:"mime_type"`
	Detected    string `json:"detected_mime_type,omitempty"`
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
	Size        int    `json:"size"`
}

// ID3v1JSON holds the fields of a trailing ID3v1 tag.
type ID3v1JSON struct {
	Title   string `json:"title,omitempty"`
	Artist  string `json:"artist,omitempty"`
	Album   string `json:"album,omitempty"`
	Year    string `json:"year,omitempty"`
	Comment string `json:"comment,omitempty"`
	Track   int    `json:"track,omitempty"`
	Genre   string `json:"genre,omitempty"`
}

// TagJSON describes one located ID3v2 tag.
type TagJSON struct {
	Offset  int         `json:"offset"`
	Version string      `json:"version"`
	Size    int         `json:"size"`
	Frames  []FrameJSON `json:"frames"`
}

// FrameJSON describes one frame of a tag.
type FrameJSON struct {
	ID     string `json:"id"`
	Offset int    `json:"offset"`
	Size   int    `json:"size"`
}

// AudioJSON describes the first MPEG audio frame.
type AudioJSON struct {
	Version    string `json:"version"`
	Layer      int    `json:"layer"`
	Bitrate    int    `json:"bitrate_kbps"`
	SampleRate int    `json:"sample_rate"`
	Mode       string `json:"mode"`
	FrameSize  int    `json:"frame_size"`
	DurationMS int64  `json:"duration_ms"`
	VBR        bool   `json:"vbr"`
}

func newMetadataJSON(meta *id3meta.Metadata) MetadataJSON {
	number, total := meta.TrackNumber()
	out := MetadataJSON{
		Title:       meta.Title,
		Artist:      meta.Artist,
		Album:       meta.Album,
		Year:        meta.Year,
		Track:       meta.Track,
		Genre:       meta.Genre,
		GenreName:   meta.GenreName(),
		TrackNumber: number,
		TrackTotal:  total,
	}
	if p := meta.Picture; p != nil {
		out.Picture = &PictureJSON{
			MIMEType:    p.MIMEType,
			Detected:    p.DetectMIMEType(),
			Type:        p.Type.String(),
			Description: p.Description,
			Size:        p.Size(),
		}
	}
	return out
}

func newID3v1JSON(tag id3meta.ID3v1Tag) *ID3v1JSON {
	return &ID3v1JSON{
		Title:   tag.Title(),
		Artist:  tag.Artist(),
		Album:   tag.Album(),
		Year:    tag.Year(),
		Comment: tag.Comment(),
		Track:   tag.Track(),
		Genre:   tag.Genre(),
	}
}

func newAudioJSON(f id3meta.AudioFrame, d time.Duration, vbr bool) *AudioJSON {
	return &AudioJSON{
		Version:    f.Version.String(),
		Layer:      f.Layer,
		Bitrate:    f.Bitrate(),
		SampleRate: f.SampleRate(),
		Mode:       f.Mode.String(),
		FrameSize:  f.Length(),
		DurationMS: d.Milliseconds(),
		VBR:        vbr,
	}
}
