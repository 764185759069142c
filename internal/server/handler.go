// Package server exposes metadata extraction over HTTP.
package server

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/simonhull/id3meta"
)

// DefaultMaxUploadSize limits uploaded files when Config.MaxUploadSize is 0.
const DefaultMaxUploadSize = 64 << 20

// Handler serves the metadata API.
type Handler struct {
	logger    *slog.Logger
	maxUpload int64
	opts      []id3meta.Option
}

// NewHandler creates a Handler. opts are applied to every uploaded file.
func NewHandler(logger *slog.Logger, maxUpload int64, opts ...id3meta.Option) *Handler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if maxUpload <= 0 {
		maxUpload = DefaultMaxUploadSize
	}
	return &Handler{logger: logger, maxUpload: maxUpload, opts: opts}
}

// HealthCheck reports that the service is up.
func (h *Handler) HealthCheck(c *gin.Context) {
	info := id3meta.GetVersionInfo()
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "ID3 metadata API is running",
		"version": info.Version,
		"commit":  info.GitCommit,
	})
}

// Metadata parses the uploaded file and returns its tags as JSON.
func (h *Handler) Metadata(c *gin.Context) {
	r, name, ok := h.load(c)
	if !ok {
		return
	}
	defer r.Close()

	meta := r.ExtractMetadata()
	resp := MetadataResponse{
		Success:  true,
		Filename: name,
		Size:     r.Size(),
		Metadata: newMetadataJSON(&meta),
		Tags:     []TagJSON{},
	}

	if tag, ok := r.LocateID3v1(); ok {
		resp.ID3v1 = newID3v1JSON(tag)
	}

	for _, tag := range r.LocateID3v2Tags() {
		tj := TagJSON{
			Offset:  tag.Offset,
			Version: fmt.Sprintf("2.%d.%d", tag.Version, tag.Revision),
			Size:    tag.Size,
			Frames:  []FrameJSON{},
		}
		for _, f := range r.Frames(tag) {
			tj.Frames = append(tj.Frames, FrameJSON{ID: f.ID, Offset: f.Offset, Size: f.Size})
		}
		resp.Tags = append(resp.Tags, tj)
	}

	if f, ok := r.FirstAudioFrame(); ok {
		d, vbr := r.Duration()
		resp.Audio = newAudioJSON(f, d, vbr)
	}

	for _, w := range meta.Warnings {
		resp.Warnings = append(resp.Warnings, w.String())
	}

	h.logger.Info("metadata extracted",
		slog.String("file", name),
		slog.Int("size", r.Size()),
		slog.Int("tags", len(resp.Tags)),
		slog.Int("warnings", len(meta.Warnings)),
	)
	c.JSON(http.StatusOK, resp)
}

// Cover returns the embedded picture of the uploaded file.
func (h *Handler) Cover(c *gin.Context) {
	r, name, ok := h.load(c)
	if !ok {
		return
	}
	defer r.Close()

	meta := r.ExtractMetadata()
	if meta.Picture == nil || meta.Picture.Size() == 0 {
		c.JSON(http.StatusNotFound, ErrorResponse{Message: "No embedded picture"})
		return
	}

	contentType := meta.Picture.MIMEType
	if detected := meta.Picture.DetectMIMEType(); detected != "" && detected != "application/octet-stream" {
		contentType = detected
	}

	c.Header("X-Picture-Type", meta.Picture.Type.String())
	c.Header("Content-Length", strconv.Itoa(meta.Picture.Size()))
	h.logger.Info("cover served", slog.String("file", name), slog.String("content_type", contentType))
	c.Data(http.StatusOK, contentType, meta.Picture.Bytes())
}

// load reads the multipart "file" field into a Reader. On failure it writes
// the error response and returns false.
func (h *Handler) load(c *gin.Context) (*id3meta.Reader, string, bool) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUpload)

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		status := http.StatusBadRequest
		msg := "Audio file is required"
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			status = http.StatusRequestEntityTooLarge
			msg = fmt.Sprintf("File exceeds %d bytes", h.maxUpload)
		}
		c.JSON(status, ErrorResponse{Message: msg})
		return nil, "", false
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: fmt.Sprintf("Failed to read file: %v", err),
		})
		return nil, "", false
	}

	r, err := id3meta.NewReader(data, h.opts...)
	if err != nil {
		var strict *id3meta.StrictParsingError
		if errors.As(err, &strict) {
			c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Message: err.Error()})
			return nil, "", false
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: fmt.Sprintf("Failed to parse file: %v", err),
		})
		return nil, "", false
	}

	return r, header.Filename, true
}
