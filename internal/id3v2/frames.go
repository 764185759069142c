package id3v2

import (
	"encoding/binary"
	"fmt"
	"iter"
	"log/slog"

	binutil "github.com/simonhull/id3meta/internal/binary"
	"github.com/simonhull/id3meta/internal/types"
)

// FrameHeader is the 10-byte header of one frame inside a tag.
type FrameHeader struct {
	Offset int    // Position of the frame header in the buffer
	ID     string // 4-character frame ID (e.g., "TIT2", "APIC")
	Size   int    // Body size, decoded according to the tag version
	Flags  uint16
}

// BodyOffset returns the position of the first byte after the frame header.
func (f FrameHeader) BodyOffset() int {
	return f.Offset + HeaderSize
}

// End returns the offset one past the frame body.
func (f FrameHeader) End() int {
	return f.Offset + HeaderSize + f.Size
}

// String implements fmt.Stringer.
func (f FrameHeader) String() string {
	return fmt.Sprintf("%s at %d (%d bytes)", f.ID, f.Offset, f.Size)
}

// within reports whether the frame lies inside the body of h.
func (f FrameHeader) within(h Header) bool {
	return f.Offset >= h.FramesOffset() && f.Size >= 0 && f.End() <= h.End()
}

// FrameSize decodes a frame size field. ID3v2.4 and later use synchsafe
// integers, earlier versions plain big-endian ones.
func FrameSize(version byte, b []byte) int {
	if version >= 4 {
		return int(binutil.Synchsafe(b))
	}
	return int(binutil.Plain(b))
}

// Walker walks the frames of a tag. The zero value is ready to use and
// neither logs nor reports warnings.
type Walker struct {
	Logger *slog.Logger

	// Warn is called for structural problems that end a walk early.
	Warn func(types.Warning)
}

// Walk yields the frames of tag h in order.
//
// The walk stops at the first of: fewer than 10 bytes left in the buffer,
// the position reaching the last 10 bytes of the tag body, a zero byte where
// a frame ID should start (padding), or a frame whose declared size runs past
// the tag body or the buffer. No yielded frame extends past h.End().
func (w *Walker) Walk(buf *binutil.Buffer, h Header) iter.Seq[FrameHeader] {
	return func(yield func(FrameHeader) bool) {
		bodyEnd := h.End()
		pos := w.framesStart(buf, h)

		for {
			if pos+HeaderSize > buf.Len() {
				w.debug("frame walk reached end of buffer", h, pos)
				return
			}
			if pos >= bodyEnd-HeaderSize {
				w.debug("frame walk reached end of tag", h, pos)
				return
			}

			raw, err := buf.Slice(pos, HeaderSize, "frame header")
			if err != nil {
				w.warn(err.Error(), pos)
				return
			}
			if raw[0] == 0 {
				w.debug("frame walk reached padding", h, pos)
				return
			}

			frame := FrameHeader{
				Offset: pos,
				ID:     string(raw[0:4]),
				Size:   FrameSize(h.Version, raw[4:8]),
				Flags:  binary.BigEndian.Uint16(raw[8:10]),
			}

			switch {
			case frame.End() > bodyEnd:
				w.warn(fmt.Sprintf("frame %s size %d overruns tag ending at %d", frame.ID, frame.Size, bodyEnd), pos)
				return
			case frame.End() > buf.Len():
				w.warn(fmt.Sprintf("frame %s size %d overruns buffer of %d bytes", frame.ID, frame.Size, buf.Len()), pos)
				return
			}

			if !yield(frame) {
				return
			}
			pos = frame.End()
		}
	}
}

// framesStart returns the offset of the first frame, skipping the extended
// header when the tag declares one.
func (w *Walker) framesStart(buf *binutil.Buffer, h Header) int {
	start := h.FramesOffset()
	if !h.HasExtendedHeader() {
		return start
	}

	raw, err := buf.Slice(start, 4, "extended header size")
	if err != nil {
		return start
	}

	switch {
	case h.Version >= 4:
		// ID3v2.4: synchsafe, includes the size field itself
		return start + int(binutil.Synchsafe(raw))
	case h.Version == 3:
		// ID3v2.3: plain, excludes the size field
		return start + int(binutil.Plain(raw)) + 4
	default:
		return start
	}
}

func (w *Walker) debug(msg string, h Header, pos int) {
	if w.Logger == nil {
		return
	}
	w.Logger.Debug(msg, slog.Int("tag", h.Offset), slog.Int("pos", pos))
}

func (w *Walker) warn(msg string, pos int) {
	if w.Logger != nil {
		w.Logger.Warn(msg, slog.Int("pos", pos))
	}
	if w.Warn != nil {
		w.Warn(types.Warning{Stage: "frames", Message: msg, Offset: int64(pos)})
	}
}

// Walk yields the frames of tag h using a zero Walker.
func Walk(buf *binutil.Buffer, h Header) iter.Seq[FrameHeader] {
	var w Walker
	return w.Walk(buf, h)
}

// Frames returns the frames of tag h as a slice.
func Frames(buf *binutil.Buffer, h Header) []FrameHeader {
	var frames []FrameHeader
	for f := range Walk(buf, h) {
		frames = append(frames, f)
	}
	return frames
}
