package binary

import "encoding/binary"

// Synchsafe decodes a 4-byte synchsafe integer (7 bits per byte).
//
// Only the low 7 bits of each byte contribute. Used for every ID3v2 tag size
// and for frame sizes from ID3v2.4 on. Inputs shorter than 4 bytes decode to 0.
func Synchsafe(b []byte) uint32 {
	if len(b) < 4 {
		return 0
	}
	return uint32(b[0]&0x7F)<<21 |
		uint32(b[1]&0x7F)<<14 |
		uint32(b[2]&0x7F)<<7 |
		uint32(b[3]&0x7F)
}

// Plain decodes a 4-byte big-endian integer (8 bits per byte).
// Used for ID3v2.3 and earlier frame sizes.
func Plain(b []byte) uint32 {
	if len(b) < 4 {
		return 0
	}
	return binary.BigEndian.Uint32(b)
}
