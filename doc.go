// Package id3meta reads descriptive metadata from ID3-tagged audio files.
//
// It locates the trailing ID3v1 tag and any number of ID3v2 tags inside a
// file held in memory, walks their frames, and decodes title, artist,
// album, year, track, genre and the embedded cover picture. Audio is never
// decoded.
//
// # Quick Start
//
//	r, err := id3meta.Load("song.mp3")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer r.Close()
//
//	meta := r.ExtractMetadata()
//	fmt.Printf("%s - %s\n", meta.Artist, meta.Title)
//	if meta.Picture != nil {
//		os.WriteFile("cover.jpg", meta.Picture.Clone(), 0644)
//	}
//
// # Lower-level Access
//
// The steps ExtractMetadata performs are available individually:
//
//	for _, tag := range r.LocateID3v2Tags() {
//		for _, frame := range r.Frames(tag) {
//			if strings.HasPrefix(frame.ID, "T") {
//				fmt.Println(frame.ID, r.DecodeText(tag, frame))
//			}
//		}
//	}
//
//	if v1, ok := r.LocateID3v1(); ok {
//		fmt.Println(v1.Artist())
//	}
//
// # Memory
//
// A Reader keeps the whole file in one buffer. Tag headers, frame headers
// and Picture.Data are views into that buffer and read as empty after
// Close. Copy what must outlive the Reader with Picture.Clone.
//
// # Error Handling
//
// Only loading can fail. Missing tags produce empty results, and malformed
// frames stop the walk of their tag and are reported in Metadata.Warnings:
//
//	for _, w := range meta.Warnings {
//		log.Printf("Warning: %s", w)
//	}
//
// WithStrictParsing turns warnings into a *StrictParsingError at load time.
//
// # Compatibility Defaults
//
// By default every "ID3" byte sequence is treated as a tag header and
// UTF-16 text keeps only its ASCII characters. WithAnchoredScan and
// WithFullUTF16 switch to stricter header detection and complete UTF-16
// decoding.
package id3meta
