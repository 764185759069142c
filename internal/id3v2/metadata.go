package id3v2

import (
	"fmt"
	"log/slog"

	binutil "github.com/simonhull/id3meta/internal/binary"
	"github.com/simonhull/id3meta/internal/types"
)

// Config controls Extract.
type Config struct {
	Scan  ScanMode
	UTF16 UTF16Mode

	// MaxPictureSize drops pictures larger than this many bytes.
	// Zero means no limit.
	MaxPictureSize int

	Logger *slog.Logger
}

// Extract assembles metadata from every ID3v2 tag in buf.
//
// Tags are visited in scan order and frames in walk order; when a field
// appears more than once, the last occurrence wins. Extract never fails:
// structural problems end up in Metadata.Warnings.
func Extract(buf *binutil.Buffer, cfg Config) types.Metadata {
	var meta types.Metadata

	w := Walker{
		Logger: cfg.Logger,
		Warn: func(warn types.Warning) {
			meta.Warnings = append(meta.Warnings, warn)
		},
	}

	for _, h := range Locate(buf, cfg.Scan) {
		if cfg.Logger != nil {
			cfg.Logger.Debug("ID3v2 tag", slog.Int("offset", h.Offset), slog.Int("version", int(h.Version)), slog.Int("size", h.Size))
		}

		for f := range w.Walk(buf, h) {
			switch f.ID {
			case "TIT2":
				meta.Title = DecodeText(buf, h, f, cfg.UTF16)
			case "TPE1":
				meta.Artist = DecodeText(buf, h, f, cfg.UTF16)
			case "TALB":
				meta.Album = DecodeText(buf, h, f, cfg.UTF16)
			case "TYER", "TDRC":
				meta.Year = DecodeText(buf, h, f, cfg.UTF16)
			case "TRCK":
				meta.Track = DecodeText(buf, h, f, cfg.UTF16)
			case "TCON":
				meta.Genre = DecodeText(buf, h, f, cfg.UTF16)
			case "APIC":
				pic, ok := DecodePicture(buf, h, f, cfg.UTF16)
				if !ok {
					continue
				}
				if cfg.MaxPictureSize > 0 && pic.Size() > cfg.MaxPictureSize {
					meta.Warnings = append(meta.Warnings, types.Warning{
						Stage:   "picture",
						Message: fmt.Sprintf("picture of %d bytes exceeds limit of %d", pic.Size(), cfg.MaxPictureSize),
						Offset:  int64(f.Offset),
					})
					continue
				}
				meta.Picture = &pic
			}
		}
	}

	return meta
}
