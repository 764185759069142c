package mpeg

import (
	"testing"
	"time"

	binutil "github.com/simonhull/id3meta/internal/binary"
)

var (
	// MPEG 1 Layer III, 128 kbps, 44100 Hz, stereo, no CRC
	mpeg1L3 = []byte{0xFF, 0xFB, 0x90, 0x00}
	// MPEG 2 Layer III, 64 kbps, 22050 Hz, mono, no CRC
	mpeg2L3Mono = []byte{0xFF, 0xF3, 0x80, 0xC0}
	// MPEG 1 Layer I, 32 kbps, 32000 Hz, stereo, no CRC
	mpeg1L1 = []byte{0xFF, 0xFF, 0x18, 0x00}
)

func be(b []byte) uint32 {
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}

func TestParse(t *testing.T) {
	tests := []struct {
		name       string
		header     []byte
		version    Version
		layer      int
		bitrate    int
		sampleRate int
		mode       ChannelMode
		length     int
	}{
		{"mpeg1 layer3", mpeg1L3, Version1, 3, 128, 44100, ModeStereo, 417},
		{"mpeg2 layer3 mono", mpeg2L3Mono, Version2, 3, 64, 22050, ModeMono, 208},
		{"mpeg1 layer1", mpeg1L1, Version1, 1, 32, 32000, ModeStereo, 48},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, ok := Parse(be(tt.header))
			if !ok {
				t.Fatal("Parse() rejected a valid header")
			}
			if f.Version != tt.version || f.Layer != tt.layer || f.Mode != tt.mode {
				t.Errorf("got %v layer %d mode %v", f.Version, f.Layer, f.Mode)
			}
			if f.Bitrate() != tt.bitrate {
				t.Errorf("Bitrate() = %d, want %d", f.Bitrate(), tt.bitrate)
			}
			if f.SampleRate() != tt.sampleRate {
				t.Errorf("SampleRate() = %d, want %d", f.SampleRate(), tt.sampleRate)
			}
			if f.Length() != tt.length {
				t.Errorf("Length() = %d, want %d", f.Length(), tt.length)
			}
			if f.Protected {
				t.Error("Protected = true, want false")
			}
		})
	}
}

func TestParse_Padding(t *testing.T) {
	f, ok := Parse(be([]byte{0xFF, 0xFB, 0x92, 0x00}))
	if !ok || !f.Padding {
		t.Fatalf("Parse() = %+v, %v", f, ok)
	}
	if f.Length() != 418 {
		t.Errorf("Length() = %d, want 418", f.Length())
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		header []byte
	}{
		{"no sync", []byte{0xFE, 0xFB, 0x90, 0x00}},
		{"reserved version", []byte{0xFF, 0xEB, 0x90, 0x00}},
		{"reserved layer", []byte{0xFF, 0xF9, 0x90, 0x00}},
		{"bad bitrate", []byte{0xFF, 0xFB, 0xF0, 0x00}},
		{"bad sample rate", []byte{0xFF, 0xFB, 0x9C, 0x00}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if f, ok := Parse(be(tt.header)); ok {
				t.Errorf("Parse() accepted %x as %v", tt.header, f)
			}
		})
	}
}

func TestNames(t *testing.T) {
	if Version2_5.String() != "MPEG 2.5" || Version1.String() != "MPEG 1" {
		t.Errorf("version names: %q, %q", Version2_5, Version1)
	}
	if ModeJointStereo.String() != "Joint stereo" || ModeMono.Channels() != 1 || ModeStereo.Channels() != 2 {
		t.Error("unexpected channel mode names")
	}
	if Emphasis(3).String() != "CCIT J.17" {
		t.Errorf("Emphasis(3) = %q", Emphasis(3))
	}
}

func TestFindFirst(t *testing.T) {
	data := []byte{0x00, 0xFF, 0x00, 0xFF, 0xE1, 0x12, 0x34}
	data = append(data, mpeg1L3...)
	data = append(data, make([]byte, 64)...)
	buf := binutil.NewBuffer(data, "")

	f, ok := FindFirst(buf, 0)
	if !ok {
		t.Fatal("FindFirst() found nothing")
	}
	if f.Offset != 7 {
		t.Errorf("Offset = %d, want 7", f.Offset)
	}

	if _, ok := FindFirst(buf, 8); ok {
		t.Error("FindFirst() past the only frame should fail")
	}
	if _, ok := FindFirst(binutil.NewBuffer([]byte{0xFF, 0xFB}, ""), 0); ok {
		t.Error("FindFirst() on a short buffer should fail")
	}
}

func TestDuration_CBR(t *testing.T) {
	data := make([]byte, 100+16000)
	copy(data[100:], mpeg1L3)
	buf := binutil.NewBuffer(data, "")

	f, ok := FindFirst(buf, 0)
	if !ok {
		t.Fatal("FindFirst() found nothing")
	}

	d, vbr := Duration(buf, f, len(data))
	if vbr {
		t.Error("vbr = true, want false")
	}
	if d != time.Second {
		t.Errorf("Duration() = %v, want 1s", d)
	}
}

func TestDuration_Xing(t *testing.T) {
	data := append([]byte{}, mpeg1L3...)
	data = append(data, make([]byte, 32)...)
	data = append(data, "Xing"...)
	data = append(data, 0x00, 0x00, 0x00, 0x01) // flags: frames present
	data = append(data, 0x00, 0x00, 0x03, 0xE8) // 1000 frames
	data = append(data, make([]byte, 400)...)
	buf := binutil.NewBuffer(data, "")

	f, _ := FindFirst(buf, 0)
	n, ok := XingFrames(buf, f)
	if !ok || n != 1000 {
		t.Fatalf("XingFrames() = %d, %v", n, ok)
	}

	d, vbr := Duration(buf, f, len(data))
	if !vbr {
		t.Error("vbr = false, want true")
	}
	want := time.Duration(1000 * 1152 * uint64(time.Second) / 44100)
	if d != want {
		t.Errorf("Duration() = %v, want %v", d, want)
	}
}

func TestDuration_LargeXingCount(t *testing.T) {
	data := append([]byte{}, mpeg1L3...)
	data = append(data, make([]byte, 32)...)
	data = append(data, "Xing"...)
	data = append(data, 0x00, 0x00, 0x00, 0x01)
	data = append(data, 0xFF, 0xFF, 0xFF, 0xFF) // corrupt frame count
	data = append(data, make([]byte, 400)...)
	buf := binutil.NewBuffer(data, "")

	f, _ := FindFirst(buf, 0)
	d, vbr := Duration(buf, f, len(data))
	if !vbr {
		t.Error("vbr = false, want true")
	}

	// 0xFFFFFFFF * 1152 samples at 44100 Hz
	want := 112195064*time.Second + 32653061*time.Nanosecond
	if d != want {
		t.Errorf("Duration() = %v, want %v", d, want)
	}
}
