package id3meta

import (
	"github.com/simonhull/id3meta/internal/types"
)

// OutOfBoundsError is an alias to types.OutOfBoundsError.
// Re-exporting from internal/types to maintain public API.
type OutOfBoundsError = types.OutOfBoundsError

// StrictParsingError is an alias to types.StrictParsingError.
// Re-exporting from internal/types to maintain public API.
type StrictParsingError = types.StrictParsingError

// Warning is an alias to types.Warning.
// Re-exporting from internal/types to maintain public API.
type Warning = types.Warning
