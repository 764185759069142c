package id3v2

import (
	binutil "github.com/simonhull/id3meta/internal/binary"
)

// createTag builds an ID3v2 tag of the given major version whose body holds
// frames followed by padding zero bytes.
func createTag(version byte, padding int, frames ...[]byte) []byte {
	var body []byte
	for _, f := range frames {
		body = append(body, f...)
	}
	body = append(body, make([]byte, padding)...)

	data := []byte{'I', 'D', '3', version, 0x00, 0x00}
	data = append(data, synchsafe(len(body))...)
	return append(data, body...)
}

// createFrame builds a frame header plus body, encoding the size the way
// the given tag version expects.
func createFrame(version byte, id string, body []byte) []byte {
	data := []byte(id)
	if version >= 4 {
		data = append(data, synchsafe(len(body))...)
	} else {
		n := len(body)
		data = append(data, byte(n>>24), byte(n>>16), byte(n>>8), byte(n))
	}
	data = append(data, 0x00, 0x00)
	return append(data, body...)
}

// createTextFrame builds a text frame with an encoding byte.
func createTextFrame(version byte, id string, enc byte, payload []byte) []byte {
	return createFrame(version, id, append([]byte{enc}, payload...))
}

// createAPIC builds an APIC body with a Latin-1 description.
func createAPIC(mimeType string, pictureType byte, description string, image []byte) []byte {
	body := []byte{EncodingLatin1}
	body = append(body, mimeType...)
	body = append(body, 0x00, pictureType)
	body = append(body, description...)
	body = append(body, 0x00)
	return append(body, image...)
}

func synchsafe(n int) []byte {
	return []byte{
		byte(n>>21) & 0x7F,
		byte(n>>14) & 0x7F,
		byte(n>>7) & 0x7F,
		byte(n) & 0x7F,
	}
}

func newBuffer(parts ...[]byte) *binutil.Buffer {
	var data []byte
	for _, p := range parts {
		data = append(data, p...)
	}
	return binutil.NewBuffer(data, "test.mp3")
}

func fakeJPEG(n int) []byte {
	img := make([]byte, n)
	copy(img, []byte{0xFF, 0xD8, 0xFF, 0xE0})
	for i := 4; i < n; i++ {
		img[i] = byte(i)
	}
	return img
}
