package id3meta

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	binutil "github.com/simonhull/id3meta/internal/binary"
	"github.com/simonhull/id3meta/internal/id3v1"
	"github.com/simonhull/id3meta/internal/id3v2"
	"github.com/simonhull/id3meta/internal/mpeg"
)

// Reader holds the complete contents of one audio file and answers
// metadata queries against it.
//
// Every result that refers to bytes in the file (tag headers, frame headers,
// picture data) is a view into the Reader's buffer. Views read as empty
// once Close has been called; use Picture.Clone to keep image bytes.
//
// A Reader is safe for concurrent use until Close is called:
//
//	r, err := id3meta.Load("song.mp3")
//	if err != nil {
//		return err
//	}
//	defer r.Close()
type Reader struct {
	buf  *binutil.Buffer
	opts *readOptions
}

// Load reads the file at path into memory.
//
// Load only fails on I/O errors, or when strict parsing is enabled and the
// file has structural problems. A file without any tags loads fine and
// yields empty metadata.
//
// Example:
//
//	r, err := id3meta.Load("song.mp3")
//	if err != nil {
//		return err
//	}
//	defer r.Close()
//
//	meta := r.ExtractMetadata()
//	fmt.Printf("%s - %s\n", meta.Artist, meta.Title)
func Load(path string, opts ...Option) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load file: %w", err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat file: %w", err)
	}

	return ReadFrom(f, stat.Size(), path, opts...)
}

// LoadContext is Load with a context checked before and after reading.
func LoadContext(ctx context.Context, path string, opts ...Option) (*Reader, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r, err := Load(path, opts...)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		r.Close()
		return nil, err
	}
	return r, nil
}

// ReadFrom reads size bytes from r into memory. path is only used in error
// messages.
func ReadFrom(r io.ReaderAt, size int64, path string, opts ...Option) (*Reader, error) {
	buf, err := binutil.NewSafeReader(r, size, path).Buffer()
	if err != nil {
		return nil, fmt.Errorf("load file: %w", err)
	}
	return newReader(buf, opts)
}

// NewReader wraps data, which must not be modified afterwards.
func NewReader(data []byte, opts ...Option) (*Reader, error) {
	return newReader(binutil.NewBuffer(data, ""), opts)
}

func newReader(buf *binutil.Buffer, opts []Option) (*Reader, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	r := &Reader{buf: buf, opts: options}

	if options.strictParsing && !options.ignoreWarnings {
		if meta := r.ExtractMetadata(); len(meta.Warnings) > 0 {
			r.Close()
			return nil, &StrictParsingError{Path: buf.Path(), Warnings: meta.Warnings}
		}
	}

	return r, nil
}

// Path returns the path the Reader was loaded from, if any.
func (r *Reader) Path() string {
	return r.buf.Path()
}

// Size returns the buffer length in bytes, or 0 after Close.
func (r *Reader) Size() int {
	return r.buf.Len()
}

// Close releases the buffer. Views obtained from the Reader read as empty
// afterwards. Close is idempotent.
func (r *Reader) Close() error {
	r.buf.Release()
	return nil
}

// LocateID3v1 returns the ID3v1 tag occupying the last 128 bytes, if any.
func (r *Reader) LocateID3v1() (ID3v1Tag, bool) {
	return id3v1.Locate(r.buf)
}

// LocateID3v2Tags returns every ID3v2 tag header in the buffer in offset
// order. Which "ID3" byte sequences count as headers depends on
// WithAnchoredScan.
func (r *Reader) LocateID3v2Tags() []TagHeader {
	return id3v2.Locate(r.buf, r.opts.extractConfig().Scan)
}

// Frames returns the frames of tag in order. Frame IDs are not interpreted.
func (r *Reader) Frames(tag TagHeader) []FrameHeader {
	w := id3v2.Walker{Logger: r.opts.logger}

	var frames []FrameHeader
	for f := range w.Walk(r.buf, tag) {
		frames = append(frames, f)
	}
	return frames
}

// DecodeText decodes a text frame of tag. It returns "" for frames that do
// not belong to tag and for unknown text encodings.
func (r *Reader) DecodeText(tag TagHeader, frame FrameHeader) string {
	return id3v2.DecodeText(r.buf, tag, frame, r.opts.extractConfig().UTF16)
}

// DecodePicture decodes an APIC frame of tag. The picture data is a view
// into the Reader's buffer. A zero Picture is returned for frames that do
// not belong to tag.
func (r *Reader) DecodePicture(tag TagHeader, frame FrameHeader) Picture {
	pic, _ := id3v2.DecodePicture(r.buf, tag, frame, r.opts.extractConfig().UTF16)
	return pic
}

// ExtractMetadata assembles metadata from every ID3v2 tag, in order.
// When a field appears more than once, the last occurrence wins.
//
// With WithID3v1Fallback, fields still empty afterwards are taken from the
// ID3v1 tag. Calling ExtractMetadata again returns an identical result.
func (r *Reader) ExtractMetadata() Metadata {
	meta := id3v2.Extract(r.buf, r.opts.extractConfig())

	if r.opts.id3v1Fallback {
		if tag, ok := id3v1.Locate(r.buf); ok {
			fallback := tag.Metadata()
			meta.Merge(&fallback)
		}
	}

	if r.opts.ignoreWarnings {
		meta.Warnings = nil
	}
	return meta
}

// audioStart returns the offset just past a leading ID3v2 tag.
func (r *Reader) audioStart() int {
	tags := id3v2.Locate(r.buf, id3v2.ScanAnchored)
	if len(tags) == 0 || tags[0].Offset != 0 {
		return 0
	}

	end := tags[0].End()
	if tags[0].Flags&id3v2.FlagFooter != 0 {
		end += id3v2.HeaderSize
	}
	return end
}

// FirstAudioFrame returns the first MPEG audio frame header after the
// leading ID3v2 tag. It has no influence on metadata.
func (r *Reader) FirstAudioFrame() (AudioFrame, bool) {
	return mpeg.FindFirst(r.buf, r.audioStart())
}

// Duration estimates the playing time from the first audio frame. vbr
// reports whether a Xing/Info frame count was used.
func (r *Reader) Duration() (d time.Duration, vbr bool) {
	f, ok := r.FirstAudioFrame()
	if !ok {
		return 0, false
	}

	end := r.buf.Len()
	if _, ok := id3v1.Locate(r.buf); ok {
		end -= id3v1.TagSize
	}
	return mpeg.Duration(r.buf, f, end)
}

// LoadMany loads multiple files concurrently.
//
// Files are loaded in parallel using up to runtime.NumCPU() goroutines.
// Results are returned in the same order as the input paths.
//
// If any file fails to load, all successfully loaded Readers are closed
// and an error is returned.
//
// Example:
//
//	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
//	defer cancel()
//
//	readers, err := id3meta.LoadMany(ctx, paths...)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer func() {
//		for _, r := range readers {
//			r.Close()
//		}
//	}()
func LoadMany(ctx context.Context, paths ...string) ([]*Reader, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	results := make([]*Reader, len(paths))

	for i, path := range paths {
		g.Go(func() error {
			r, err := LoadContext(ctx, path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			results[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		for _, r := range results {
			if r != nil {
				r.Close()
			}
		}
		return nil, err
	}

	return results, nil
}
