// Package binary provides bounds-checked access to in-memory audio files.
package binary

import (
	"fmt"
	"io"
)

// SafeReader wraps io.ReaderAt with bounds checking and helpful error messages.
type SafeReader struct {
	r    io.ReaderAt
	path string
	size int64
}

// NewSafeReader creates a new SafeReader.
func NewSafeReader(r io.ReaderAt, size int64, path string) *SafeReader {
	return &SafeReader{
		r:    r,
		size: size,
		path: path,
	}
}

// Path returns the file path associated with this reader.
func (sr *SafeReader) Path() string {
	return sr.path
}

// Size returns the declared size of the underlying data.
func (sr *SafeReader) Size() int64 {
	return sr.size
}

// ReadAt reads bytes at the given offset with context for error messages.
func (sr *SafeReader) ReadAt(b []byte, off int64, what string) error {
	if off < 0 || off >= sr.size || off+int64(len(b)) > sr.size {
		return &OutOfBoundsError{
			Path:   sr.path,
			What:   what,
			Offset: off,
			Length: len(b),
			Size:   sr.size,
		}
	}

	n, err := sr.r.ReadAt(b, off)
	if err != nil && err != io.EOF {
		return fmt.Errorf("%s: failed to read %s at offset %d: %w", sr.path, what, off, err)
	}

	if n < len(b) {
		return fmt.Errorf("%s: short read for %s at offset %d: got %d bytes, expected %d",
			sr.path, what, off, n, len(b))
	}

	return nil
}

// Buffer reads the whole input into memory.
func (sr *SafeReader) Buffer() (*Buffer, error) {
	if sr.size < 0 {
		return nil, fmt.Errorf("%s: negative size %d", sr.path, sr.size)
	}
	data := make([]byte, sr.size)
	if sr.size > 0 {
		if err := sr.ReadAt(data, 0, "file contents"); err != nil {
			return nil, err
		}
	}
	return NewBuffer(data, sr.path), nil
}
