package types

import (
	"testing"

	"github.com/simonhull/id3meta/internal/binary"
)

func TestMetadata_Fields(t *testing.T) {
	meta := &Metadata{
		Title: "Override",
		Album: "Single",
		Track: "1/1",
	}

	var names []string
	for name, value := range meta.Fields() {
		names = append(names, name)
		if value == "" {
			t.Errorf("Fields() yielded empty value for %s", name)
		}
	}

	want := []string{"Title", "Album", "Track"}
	if len(names) != len(want) {
		t.Fatalf("Fields() yielded %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Fields()[%d] = %s, want %s", i, names[i], want[i])
		}
	}
}

func TestMetadata_Fields_EarlyBreak(t *testing.T) {
	meta := &Metadata{Title: "a", Artist: "b", Album: "c"}

	count := 0
	for range meta.Fields() {
		count++
		break
	}

	if count != 1 {
		t.Errorf("expected iteration to stop after 1, got %d", count)
	}
}

func TestMetadata_Merge(t *testing.T) {
	meta := &Metadata{Title: "Override"}
	fallback := &Metadata{
		Title:    "Other Title",
		Artist:   "Yoshida Yasei",
		Warnings: []Warning{{Stage: "id3v1", Message: "test"}},
	}

	meta.Merge(fallback)

	if meta.Title != "Override" {
		t.Errorf("non-empty title was overwritten: %q", meta.Title)
	}
	if meta.Artist != "Yoshida Yasei" {
		t.Errorf("expected artist from fallback, got %q", meta.Artist)
	}
	if len(meta.Warnings) != 1 {
		t.Errorf("expected warnings to be appended, got %d", len(meta.Warnings))
	}

	meta.Merge(nil)
}

func TestMetadata_Equal(t *testing.T) {
	buf := binary.NewBuffer(make([]byte, 32), "test.mp3")
	v1, _ := buf.View(10, 4, "image")
	v2, _ := buf.View(12, 4, "image")

	a := &Metadata{Title: "x", Picture: &Picture{MIMEType: "image/png", Data: v1}}
	b := &Metadata{Title: "x", Picture: &Picture{MIMEType: "image/png", Data: v1}}
	c := &Metadata{Title: "x", Picture: &Picture{MIMEType: "image/png", Data: v2}}

	if !a.Equal(b) {
		t.Error("expected identical metadata to be equal")
	}
	if a.Equal(c) {
		t.Error("expected different picture views to differ")
	}
	if a.Equal(&Metadata{Title: "x"}) {
		t.Error("expected missing picture to differ")
	}

	var nilMeta *Metadata
	if !nilMeta.Equal(nil) {
		t.Error("nil should equal nil")
	}
}

func TestMetadata_IsEmpty(t *testing.T) {
	if !(&Metadata{}).IsEmpty() {
		t.Error("zero Metadata should be empty")
	}
	if (&Metadata{Genre: "Rock"}).IsEmpty() {
		t.Error("Metadata with genre should not be empty")
	}
}

func TestTrackNumber(t *testing.T) {
	tests := []struct {
		input         string
		expectedNum   int
		expectedTotal int
	}{
		{"5", 5, 0},
		{"5/12", 5, 12},
		{" 1 / 1 ", 1, 1},
		{"invalid", 0, 0},
		{"", 0, 0},
	}

	for _, tt := range tests {
		meta := &Metadata{Track: tt.input}
		num, total := meta.TrackNumber()
		if num != tt.expectedNum || total != tt.expectedTotal {
			t.Errorf("TrackNumber(%q) = (%d, %d), expected (%d, %d)",
				tt.input, num, total, tt.expectedNum, tt.expectedTotal)
		}
	}
}

func TestYearNumber(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"2023", 2023},
		{"2023-11-08", 2023},
		{"2023-11-08T10:00", 2023},
		{"invalid", 0},
		{"", 0},
		{"99", 0},
	}

	for _, tt := range tests {
		meta := &Metadata{Year: tt.input}
		if result := meta.YearNumber(); result != tt.expected {
			t.Errorf("YearNumber(%q) = %d, expected %d", tt.input, result, tt.expected)
		}
	}
}
