package binary

import (
	"bytes"
	"fmt"
)

// Buffer holds the complete contents of one audio file.
//
// The bytes are never modified after construction. Every parsing structure in
// this module is a non-owning window into a Buffer; once Release is called,
// those windows read as empty.
type Buffer struct {
	data []byte
	path string
}

// NewBuffer wraps data. The caller must not modify data afterwards.
func NewBuffer(data []byte, path string) *Buffer {
	return &Buffer{data: data, path: path}
}

// Path returns the path the buffer was loaded from, if any.
func (b *Buffer) Path() string {
	return b.path
}

// Len returns the buffer length in bytes. A released buffer has length 0.
func (b *Buffer) Len() int {
	if b == nil {
		return 0
	}
	return len(b.data)
}

// Released reports whether Release has been called.
func (b *Buffer) Released() bool {
	return b == nil || b.data == nil
}

// Release drops the buffer contents. Views derived from the buffer return
// nil from Bytes afterwards; copies made with View.Clone are unaffected.
//
// Release must not run concurrently with readers of the buffer.
func (b *Buffer) Release() {
	b.data = nil
}

// View returns a bounds-checked window of n bytes at off.
func (b *Buffer) View(off, n int, what string) (View, error) {
	if err := b.check(off, n, what); err != nil {
		return View{}, err
	}
	return View{buf: b, off: off, n: n}, nil
}

// Slice returns the n bytes at off without copying.
// The returned slice has its capacity clipped so appends never write
// into the shared buffer.
func (b *Buffer) Slice(off, n int, what string) ([]byte, error) {
	if err := b.check(off, n, what); err != nil {
		return nil, err
	}
	return b.data[off : off+n : off+n], nil
}

// HasPrefixAt reports whether the bytes at off equal magic.
func (b *Buffer) HasPrefixAt(off int, magic string) bool {
	if off < 0 || off+len(magic) > b.Len() {
		return false
	}
	return bytes.Equal(b.data[off:off+len(magic)], []byte(magic))
}

// ByteAt returns the byte at off, or false if off is out of range.
func (b *Buffer) ByteAt(off int) (byte, bool) {
	if off < 0 || off >= b.Len() {
		return 0, false
	}
	return b.data[off], true
}

// IndexFrom returns the offset of the first occurrence of magic at or after
// off, or -1.
func (b *Buffer) IndexFrom(off int, magic string) int {
	if off < 0 || off >= b.Len() {
		return -1
	}
	i := bytes.Index(b.data[off:], []byte(magic))
	if i < 0 {
		return -1
	}
	return off + i
}

func (b *Buffer) check(off, n int, what string) error {
	size := b.Len()
	if off < 0 || n < 0 || off > size || n > size-off {
		return &OutOfBoundsError{
			Path:   b.Path(),
			What:   what,
			Offset: int64(off),
			Length: n,
			Size:   int64(size),
		}
	}
	return nil
}

// View is a window (offset, length) into a Buffer.
//
// The zero View is empty. Views are values and cheap to copy; they stay
// valid only while the underlying Buffer is not released.
type View struct {
	buf *Buffer
	off int
	n   int
}

// Offset returns the position of the view within its buffer.
func (v View) Offset() int {
	return v.off
}

// Len returns the view length in bytes, or 0 once the buffer is released.
func (v View) Len() int {
	if v.buf.Released() {
		return 0
	}
	return v.n
}

// Bytes returns the viewed bytes without copying, or nil if the buffer has
// been released. Callers must not modify the result.
func (v View) Bytes() []byte {
	if v.buf == nil || v.n == 0 {
		return nil
	}
	b, err := v.buf.Slice(v.off, v.n, "view")
	if err != nil {
		return nil
	}
	return b
}

// Clone returns a copy of the viewed bytes that outlives the buffer.
func (v View) Clone() []byte {
	b := v.Bytes()
	if b == nil {
		return nil
	}
	return bytes.Clone(b)
}

// String implements fmt.Stringer.
func (v View) String() string {
	return fmt.Sprintf("[%d:%d]", v.off, v.off+v.n)
}
