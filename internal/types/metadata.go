// Package types provides the data structures shared by the ID3 parsers.
//
// This package defines Metadata, Picture and Warning, the values handed back
// to callers of the root id3meta package.
package types

import (
	"fmt"
	"iter"
	"slices"
	"strconv"
	"strings"
)

// Metadata is the assembled result of reading a file's ID3 tags.
//
// Text fields hold the decoded frame text; an empty string means the frame
// was absent. When a frame appears more than once, across frames or across
// tags, the last occurrence in scan order wins.
type Metadata struct {
	Picture  *Picture
	Title    string
	Artist   string
	Album    string
	Year     string // TYER or TDRC
	Track    string // "N" or "N/Total"
	Genre    string // TCON, possibly "(17)" or "17" style references
	Warnings []Warning
}

// Fields returns an iterator over the non-empty text fields, in a fixed order.
//
// Example:
//
//	for name, value := range meta.Fields() {
//		fmt.Printf("%-8s %s\n", name, value)
//	}
func (m *Metadata) Fields() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, f := range []struct{ name, value string }{
			{"Title", m.Title},
			{"Artist", m.Artist},
			{"Album", m.Album},
			{"Year", m.Year},
			{"Track", m.Track},
			{"Genre", m.Genre},
		} {
			if f.value == "" {
				continue
			}
			if !yield(f.name, f.value) {
				return
			}
		}
	}
}

// IsEmpty reports whether no field was populated.
func (m *Metadata) IsEmpty() bool {
	return m.Title == "" && m.Artist == "" && m.Album == "" &&
		m.Year == "" && m.Track == "" && m.Genre == "" && m.Picture == nil
}

// Merge fills fields that are empty in m from other.
//
// Non-empty fields in m are never overwritten. Warnings are appended.
//
// Example:
//
//	// Use the ID3v1 tag for anything the ID3v2 tags did not provide
//	meta.Merge(&fallback)
func (m *Metadata) Merge(other *Metadata) {
	if other == nil {
		return
	}

	if m.Title == "" {
		m.Title = other.Title
	}
	if m.Artist == "" {
		m.Artist = other.Artist
	}
	if m.Album == "" {
		m.Album = other.Album
	}
	if m.Year == "" {
		m.Year = other.Year
	}
	if m.Track == "" {
		m.Track = other.Track
	}
	if m.Genre == "" {
		m.Genre = other.Genre
	}
	if m.Picture == nil {
		m.Picture = other.Picture
	}

	m.Warnings = append(m.Warnings, other.Warnings...)
}

// Equal reports whether two results are identical, including the position
// and length of the picture view.
func (m *Metadata) Equal(other *Metadata) bool {
	if m == nil || other == nil {
		return m == other
	}

	if m.Title != other.Title ||
		m.Artist != other.Artist ||
		m.Album != other.Album ||
		m.Year != other.Year ||
		m.Track != other.Track ||
		m.Genre != other.Genre {
		return false
	}

	if (m.Picture == nil) != (other.Picture == nil) {
		return false
	}
	if m.Picture != nil {
		a, b := m.Picture, other.Picture
		if a.MIMEType != b.MIMEType ||
			a.Description != b.Description ||
			a.Type != b.Type ||
			a.Data.Offset() != b.Data.Offset() ||
			a.Data.Len() != b.Data.Len() {
			return false
		}
	}

	return slices.Equal(m.Warnings, other.Warnings)
}

// TrackNumber parses the "N" or "N/Total" track field.
func (m *Metadata) TrackNumber() (number, total int) {
	parts := strings.Split(m.Track, "/")
	if len(parts) >= 1 {
		fmt.Sscanf(strings.TrimSpace(parts[0]), "%d", &number)
	}
	if len(parts) >= 2 {
		fmt.Sscanf(strings.TrimSpace(parts[1]), "%d", &total)
	}
	return
}

// YearNumber extracts the year from "YYYY" or ISO 8601 style dates.
// Returns 0 when no plausible year is present.
func (m *Metadata) YearNumber() int {
	text := strings.TrimSpace(m.Year)
	if len(text) >= 4 {
		year, err := strconv.Atoi(text[:4])
		if err == nil && year >= 1000 && year <= 9999 {
			return year
		}
	}
	return 0
}

// GenreName resolves numeric genre references such as "(17)", "17" or
// "(17)Rock" to their ID3v1 genre names. Free-form genres are returned as is.
func (m *Metadata) GenreName() string {
	return ResolveGenre(m.Genre)
}
