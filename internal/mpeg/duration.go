package mpeg

import (
	"encoding/binary"
	"time"

	binutil "github.com/simonhull/id3meta/internal/binary"
)

// xingOffset returns where a Xing/Info header would start, relative to the
// frame header: 4 header bytes, the optional CRC and the side information.
func (f Frame) xingOffset() int {
	off := 4
	if f.Protected {
		off += 2
	}

	mono := f.Mode == ModeMono
	switch {
	case f.Version == Version1 && mono:
		off += 17
	case f.Version == Version1:
		off += 32
	case mono:
		off += 9
	default:
		off += 17
	}
	return off
}

// XingFrames returns the frame count from a Xing or Info header in frame f,
// if one is present and declares it.
func XingFrames(buf *binutil.Buffer, f Frame) (uint32, bool) {
	raw, err := buf.Slice(f.Offset+f.xingOffset(), 12, "Xing header")
	if err != nil {
		return 0, false
	}

	if magic := string(raw[0:4]); magic != "Xing" && magic != "Info" {
		return 0, false
	}

	// Frames field is present if bit 0 is set
	if binary.BigEndian.Uint32(raw[4:8])&0x1 == 0 {
		return 0, false
	}
	return binary.BigEndian.Uint32(raw[8:12]), true
}

// Duration estimates the playing time of the audio that starts with frame f
// and ends at audioEnd. A Xing/Info frame count is used when present (vbr is
// true); otherwise the stream is assumed to have a constant bitrate.
func Duration(buf *binutil.Buffer, f Frame, audioEnd int) (d time.Duration, vbr bool) {
	rate := f.SampleRate()
	if rate == 0 {
		return 0, false
	}

	if frames, ok := XingFrames(buf, f); ok {
		samples := uint64(frames) * uint64(f.SamplesPerFrame())
		return perSecond(samples, uint64(rate)), true
	}

	bitrate := f.Bitrate() * 1000
	size := audioEnd - f.Offset
	if bitrate == 0 || size <= 0 {
		return 0, false
	}
	return perSecond(uint64(size)*8, uint64(bitrate)), false
}

// perSecond converts n units at rate units per second to a duration,
// dividing before scaling so large counts do not overflow.
func perSecond(n, rate uint64) time.Duration {
	secs, rem := n/rate, n%rate
	return time.Duration(secs)*time.Second + time.Duration(rem*uint64(time.Second)/rate)
}
