package id3meta_test

import (
	"os"
	"path/filepath"
	"testing"
)

// mpegFrame is an MPEG 1 Layer III header (128 kbps, 44100 Hz, stereo).
var mpegFrame = []byte{0xFF, 0xFB, 0x90, 0x00}

// createID3v2Tag builds an ID3v2.3 tag from frames and padding.
func createID3v2Tag(padding int, frames ...[]byte) []byte {
	var body []byte
	for _, f := range frames {
		body = append(body, f...)
	}
	body = append(body, make([]byte, padding)...)

	n := len(body)
	data := []byte{'I', 'D', '3', 0x03, 0x00, 0x00,
		byte(n>>21) & 0x7F, byte(n>>14) & 0x7F, byte(n>>7) & 0x7F, byte(n) & 0x7F}
	return append(data, body...)
}

// createFrame builds an ID3v2.3 frame with a plain 32-bit size.
func createFrame(id string, body []byte) []byte {
	n := len(body)
	data := append([]byte(id), byte(n>>24), byte(n>>16), byte(n>>8), byte(n), 0x00, 0x00)
	return append(data, body...)
}

// createTextFrame builds a Latin-1 text frame.
func createTextFrame(id, text string) []byte {
	return createFrame(id, append([]byte{0x00}, text...))
}

// createAPICFrame builds an APIC frame holding image.
func createAPICFrame(mimeType string, image []byte) []byte {
	body := []byte{0x00}
	body = append(body, mimeType...)
	body = append(body, 0x00, 0x03, 0x00) // front cover, empty description
	return createFrame("APIC", append(body, image...))
}

// createID3v1Tag builds a 128-byte ID3v1 tag with space-padded fields.
func createID3v1Tag(title, artist string, genre byte) []byte {
	tag := make([]byte, 128)
	copy(tag, "TAG")
	for i := 3; i < 127; i++ {
		tag[i] = ' '
	}
	copy(tag[3:33], title)
	copy(tag[33:63], artist)
	tag[127] = genre
	return tag
}

func fakeImage(n int) []byte {
	img := make([]byte, n)
	copy(img, []byte{0xFF, 0xD8, 0xFF, 0xE0})
	for i := 4; i < n; i++ {
		img[i] = byte(i)
	}
	return img
}

// createSampleMP3 returns an ID3v2.3 tag with title "Override" and a
// picture of imageSize bytes, some audio, and an ID3v1 tag with artist
// "Yoshida Yasei".
func createSampleMP3(imageSize int) []byte {
	var data []byte
	data = append(data, createID3v2Tag(32,
		createTextFrame("TIT2", "Override"),
		createAPICFrame("image/jpeg", fakeImage(imageSize)),
	)...)
	data = append(data, mpegFrame...)
	data = append(data, make([]byte, 4096)...)
	data = append(data, createID3v1Tag("", "Yoshida Yasei", 17)...)
	return data
}

// writeTempFile writes data to a file that is removed when the test ends.
func writeTempFile(tb testing.TB, data []byte) string {
	tb.Helper()

	path := filepath.Join(tb.TempDir(), "test.mp3")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		tb.Fatal(err)
	}
	return path
}
