package types

import (
	"fmt"

	"github.com/simonhull/id3meta/internal/binary"
)

// OutOfBoundsError is returned when a computed offset falls outside the buffer.
type OutOfBoundsError = binary.OutOfBoundsError

// Warning represents a non-fatal issue encountered during parsing.
//
// Warnings indicate problems that don't prevent metadata extraction but
// may indicate corrupted or unusual data. Examples include:
//   - A frame whose declared size runs past its tag or the file
//   - A picture dropped because it exceeds the configured size limit
//
// Fields the warning concerns are simply left empty in Metadata.
type Warning struct {
	// Stage where the warning occurred
	Stage string // "tags", "frames", "picture", "id3v1"

	// Warning message
	Message string

	// Buffer offset where the issue occurred (0 if not applicable)
	Offset int64
}

// String returns a human-readable warning message.
func (w Warning) String() string {
	if w.Offset > 0 {
		return fmt.Sprintf("%s (at offset %d): %s", w.Stage, w.Offset, w.Message)
	}
	return fmt.Sprintf("%s: %s", w.Stage, w.Message)
}

// StrictParsingError is returned in strict mode when parsing produced
// warnings.
type StrictParsingError struct {
	Path     string
	Warnings []Warning
}

func (e *StrictParsingError) Error() string {
	if len(e.Warnings) == 0 {
		return fmt.Sprintf("%s: strict parsing failed", e.Path)
	}
	return fmt.Sprintf("%s: strict parsing failed: %s (%d warnings)", e.Path, e.Warnings[0].Message, len(e.Warnings))
}
