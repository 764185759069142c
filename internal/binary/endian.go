package binary

import "encoding/binary"

// ReadBE reads a big-endian value of type T at off.
//
// ID3v2 and MPEG audio headers are big-endian throughout.
//
// Example:
//
//	flags, err := binary.ReadBE[uint16](buf, frameOffset+8, "frame flags")
func ReadBE[T uint8 | uint16 | uint32](b *Buffer, off int, what string) (T, error) {
	var zero T
	var size int

	switch any(zero).(type) {
	case uint8:
		size = 1
	case uint16:
		size = 2
	case uint32:
		size = 4
	}

	raw, err := b.Slice(off, size, what)
	if err != nil {
		return zero, err
	}

	var val T
	switch any(zero).(type) {
	case uint8:
		val = T(raw[0])
	case uint16:
		val = T(binary.BigEndian.Uint16(raw))
	case uint32:
		val = T(binary.BigEndian.Uint32(raw))
	}

	return val, nil
}
