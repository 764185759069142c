// Command id3dump prints what id3meta reads from a file: every ID3v2 tag
// and frame, the assembled metadata, the ID3v1 tag and the first MPEG
// audio frame.
//
// Usage:
//
//	id3dump [-cover out.jpg] [-full-utf16] [-anchored] [-v] <file.mp3>
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/simonhull/id3meta"
)

func main() {
	var (
		cover    = flag.String("cover", "", "write the embedded picture to `file`")
		full     = flag.Bool("full-utf16", false, "decode UTF-16 text completely instead of ASCII only")
		anchored = flag.Bool("anchored", false, "only accept well-formed ID3v2 headers")
		verbose  = flag.Bool("v", false, "log frame walking at debug level")
		version  = flag.Bool("version", false, "print version information and exit")
	)
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: id3dump [flags] <file.mp3>")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *version {
		info := id3meta.GetVersionInfo()
		fmt.Printf("id3dump %s (commit %s, %s)\n", info.Version, info.GitCommit, info.GoVersion)
		return
	}

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	opts := []id3meta.Option{id3meta.WithLogger(logger)}
	if *full {
		opts = append(opts, id3meta.WithFullUTF16())
	}
	if *anchored {
		opts = append(opts, id3meta.WithAnchoredScan())
	}

	r, err := id3meta.Load(flag.Arg(0), opts...)
	if err != nil {
		logger.Error("load failed", slog.String("path", flag.Arg(0)), slog.Any("error", err))
		os.Exit(1)
	}
	defer r.Close()

	dump(os.Stdout, r)

	if *cover != "" {
		if err := saveCover(r, *cover); err != nil {
			logger.Error("save cover failed", slog.String("path", *cover), slog.Any("error", err))
			os.Exit(1)
		}
		fmt.Printf("\nCover written to %s\n", *cover)
	}
}

func dump(w io.Writer, r *id3meta.Reader) {
	fmt.Fprintf(w, "File: %s (%d bytes)\n", r.Path(), r.Size())

	for _, tag := range r.LocateID3v2Tags() {
		fmt.Fprintf(w, "\n%s\n", tag)
		for _, f := range r.Frames(tag) {
			fmt.Fprintf(w, "  %s", f)
			switch {
			case f.ID == "APIC":
				fmt.Fprintf(w, "  %s", r.DecodePicture(tag, f))
			case strings.HasPrefix(f.ID, "T") && f.ID != "TXXX":
				fmt.Fprintf(w, "  %q", r.DecodeText(tag, f))
			}
			fmt.Fprintln(w)
		}
	}

	meta := r.ExtractMetadata()
	fmt.Fprintln(w, "\nMetadata:")
	fmt.Fprintln(w, "─────────")
	for name, value := range meta.Fields() {
		fmt.Fprintf(w, "%-8s %s\n", name+":", value)
	}
	if g := meta.GenreName(); g != meta.Genre {
		fmt.Fprintf(w, "%-8s %s\n", "", g)
	}
	if meta.Picture != nil {
		fmt.Fprintf(w, "%-8s %s\n", "Picture:", meta.Picture)
	}

	if v1, ok := r.LocateID3v1(); ok {
		fmt.Fprintln(w, "\nID3v1:")
		fmt.Fprintln(w, "──────")
		fmt.Fprintf(w, "Title:   %s\nArtist:  %s\nAlbum:   %s\nYear:    %s\nComment: %s\n",
			v1.Title(), v1.Artist(), v1.Album(), v1.Year(), v1.Comment())
		if n := v1.Track(); n > 0 {
			fmt.Fprintf(w, "Track:   %d\n", n)
		}
		fmt.Fprintf(w, "Genre:   %s (%d)\n", v1.Genre(), v1.GenreCode())
	}

	if f, ok := r.FirstAudioFrame(); ok {
		d, vbr := r.Duration()
		fmt.Fprintln(w, "\nFirst audio frame:")
		fmt.Fprintln(w, "──────────────────")
		fmt.Fprintf(w, "Offset:     %d\n", f.Offset)
		fmt.Fprintf(w, "Version:    %s\n", f.Version)
		fmt.Fprintf(w, "Layer:      %d\n", f.Layer)
		fmt.Fprintf(w, "Protected:  %t\n", f.Protected)
		fmt.Fprintf(w, "Bitrate:    %d kbps\n", f.Bitrate())
		fmt.Fprintf(w, "Frequency:  %d Hz\n", f.SampleRate())
		fmt.Fprintf(w, "Padding:    %t\n", f.Padding)
		fmt.Fprintf(w, "Mode:       %s\n", f.Mode)
		fmt.Fprintf(w, "Copyright:  %t\n", f.Copyright)
		fmt.Fprintf(w, "Original:   %t\n", f.Original)
		fmt.Fprintf(w, "Emphasis:   %s\n", f.Emphasis)
		fmt.Fprintf(w, "Frame size: %d\n", f.Length())
		fmt.Fprintf(w, "Duration:   %s", d.Round(1e6))
		if vbr {
			fmt.Fprint(w, " (VBR)")
		}
		fmt.Fprintln(w)
	}

	if len(meta.Warnings) > 0 {
		fmt.Fprintln(w, "\nWarnings:")
		fmt.Fprintln(w, "─────────")
		for _, warn := range meta.Warnings {
			fmt.Fprintf(w, "  • %s\n", warn)
		}
	}
}

func saveCover(r *id3meta.Reader, path string) error {
	meta := r.ExtractMetadata()
	if meta.Picture == nil || meta.Picture.Size() == 0 {
		return errors.New("no embedded picture")
	}
	return os.WriteFile(path, meta.Picture.Clone(), 0o644)
}
