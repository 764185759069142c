package id3meta

import (
	"log/slog"

	"github.com/simonhull/id3meta/internal/id3v2"
)

// Option configures how a Reader parses its buffer.
//
// Options use the functional options pattern for clean, extensible APIs.
//
// Example:
//
//	r, err := id3meta.Load("song.mp3",
//	    id3meta.WithStrictParsing(),
//	    id3meta.WithID3v1Fallback(),
//	)
type Option func(*readOptions)

// readOptions holds configuration for a Reader.
type readOptions struct {
	strictParsing  bool // Fail on any warning
	ignoreWarnings bool // Suppress all warnings
	maxPictureSize int  // Maximum picture size in bytes (0 = no limit)
	fullUTF16      bool
	anchoredScan   bool
	id3v1Fallback  bool
	logger         *slog.Logger
}

// defaultOptions returns the default configuration.
func defaultOptions() *readOptions {
	return &readOptions{
		logger: slog.New(slog.DiscardHandler),
	}
}

func (o *readOptions) extractConfig() id3v2.Config {
	cfg := id3v2.Config{
		MaxPictureSize: o.maxPictureSize,
		Logger:         o.logger,
	}
	if o.anchoredScan {
		cfg.Scan = id3v2.ScanAnchored
	}
	if o.fullUTF16 {
		cfg.UTF16 = id3v2.UTF16Full
	}
	return cfg
}

// WithStrictParsing treats any warning as a fatal error.
//
// By default, parsing continues past malformed frames and oversized
// pictures, returning warnings alongside the metadata. With strict parsing
// enabled, Load and friends return a *StrictParsingError instead.
//
// Example:
//
//	r, err := id3meta.Load("song.mp3", id3meta.WithStrictParsing())
//	// err != nil if ANY issue is encountered
func WithStrictParsing() Option {
	return func(o *readOptions) {
		o.strictParsing = true
	}
}

// WithIgnoreWarnings suppresses all warnings.
//
// Metadata.Warnings will always be empty.
func WithIgnoreWarnings() Option {
	return func(o *readOptions) {
		o.ignoreWarnings = true
	}
}

// WithMaxPictureSize sets a maximum size for embedded pictures.
//
// If a picture exceeds this size (in bytes), it is skipped with a warning.
// This protects against excessively large embedded images.
//
// Default is 0 (no limit).
func WithMaxPictureSize(bytes int) Option {
	return func(o *readOptions) {
		o.maxPictureSize = bytes
	}
}

// WithFullUTF16 decodes UTF-16 text frames completely, including
// non-ASCII characters and surrogate pairs.
//
// By default only code units in the ASCII range 1-127 are kept from UTF-16
// text, matching what older readers of these files produced.
func WithFullUTF16() Option {
	return func(o *readOptions) {
		o.fullUTF16 = true
	}
}

// WithAnchoredScan only accepts ID3v2 headers with a supported version and a
// well-formed size, and ignores "ID3" byte sequences inside a tag already
// found.
//
// By default every "ID3" occurrence in the buffer is treated as a tag header.
func WithAnchoredScan() Option {
	return func(o *readOptions) {
		o.anchoredScan = true
	}
}

// WithID3v1Fallback fills fields the ID3v2 tags left empty from the ID3v1
// tag at the end of the file, if there is one.
func WithID3v1Fallback() Option {
	return func(o *readOptions) {
		o.id3v1Fallback = true
	}
}

// WithLogger sets the logger used for parse diagnostics. Frame walk stop
// reasons are logged at debug level. Logging is disabled by default.
func WithLogger(logger *slog.Logger) Option {
	return func(o *readOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}
