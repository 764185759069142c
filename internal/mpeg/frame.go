// Package mpeg reads MPEG audio frame headers for diagnostics.
//
// Nothing here affects metadata extraction; it reports what the first audio
// frame after the tags looks like.
package mpeg

import (
	"fmt"

	binutil "github.com/simonhull/id3meta/internal/binary"
)

// Frame is a decoded 4-byte MPEG audio frame header.
type Frame struct {
	Offset int // Position of the header in the buffer

	Version         Version
	Layer           int // 1, 2 or 3
	Protected       bool
	BitrateIndex    byte
	SampleRateIndex byte
	Padding         bool
	Private         bool
	Mode            ChannelMode
	ModeExtension   byte
	Copyright       bool
	Original        bool
	Emphasis        Emphasis
}

// Parse decodes a raw big-endian frame header. It returns false unless the
// sync bits are set and the version, layer, bitrate and sample rate indexes
// are all valid.
func Parse(raw uint32) (Frame, bool) {
	bits := func(shift, width uint) byte {
		return byte((raw >> shift) & (1<<width - 1))
	}

	if raw>>21 != 0x7FF {
		return Frame{}, false
	}

	f := Frame{
		Version:         Version(bits(19, 2)),
		Layer:           4 - int(bits(17, 2)),
		Protected:       bits(16, 1) == 0,
		BitrateIndex:    bits(12, 4),
		SampleRateIndex: bits(10, 2),
		Padding:         bits(9, 1) == 1,
		Private:         bits(8, 1) == 1,
		Mode:            ChannelMode(bits(6, 2)),
		ModeExtension:   bits(4, 2),
		Copyright:       bits(3, 1) == 1,
		Original:        bits(2, 1) == 1,
		Emphasis:        Emphasis(bits(0, 2)),
	}

	switch {
	case f.Version == VersionReserved:
		return Frame{}, false
	case f.Layer == 4: // layer bits 00 are reserved
		return Frame{}, false
	case f.BitrateIndex == 0xF:
		return Frame{}, false
	case f.SampleRateIndex == 3:
		return Frame{}, false
	}

	return f, true
}

// FindFirst returns the first valid frame header at or after from.
func FindFirst(buf *binutil.Buffer, from int) (Frame, bool) {
	for off := max(from, 0); off+4 <= buf.Len(); off++ {
		b, ok := buf.ByteAt(off)
		if !ok || b != 0xFF {
			continue
		}
		raw, err := binutil.ReadBE[uint32](buf, off, "MPEG frame header")
		if err != nil {
			return Frame{}, false
		}
		if f, ok := Parse(raw); ok {
			f.Offset = off
			return f, true
		}
	}
	return Frame{}, false
}

// Bitrate returns the bitrate in kbps, or 0 for the free format.
func (f Frame) Bitrate() int {
	row := 1
	if f.Version == Version1 {
		row = 0
	}
	if f.Layer < 1 || f.Layer > 3 {
		return 0
	}
	return bitrates[row][f.Layer-1][f.BitrateIndex&0xF]
}

// SampleRate returns the sample rate in Hz.
func (f Frame) SampleRate() int {
	return sampleRates[f.Version&0x3][f.SampleRateIndex&0x3]
}

// SamplesPerFrame returns the number of PCM samples a frame decodes to.
func (f Frame) SamplesPerFrame() int {
	switch {
	case f.Layer == 1:
		return 384
	case f.Layer == 3 && f.Version != Version1:
		return 576
	default:
		return 1152
	}
}

// Length returns the frame length in bytes including the header, or 0 when
// the bitrate or sample rate is unknown.
func (f Frame) Length() int {
	bitrate, rate := f.Bitrate()*1000, f.SampleRate()
	if bitrate == 0 || rate == 0 {
		return 0
	}

	pad := 0
	if f.Padding {
		pad = 1
	}

	if f.Layer == 1 {
		return (12*bitrate/rate + pad) * 4
	}
	return f.SamplesPerFrame()/8*bitrate/rate + pad
}

// String implements fmt.Stringer.
func (f Frame) String() string {
	return fmt.Sprintf("%s Layer %d, %d kbps, %d Hz, %s", f.Version, f.Layer, f.Bitrate(), f.SampleRate(), f.Mode)
}
