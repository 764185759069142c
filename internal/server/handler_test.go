package server

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/simonhull/id3meta"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func createFrame(id string, body []byte) []byte {
	n := len(body)
	data := append([]byte(id), byte(n>>24), byte(n>>16), byte(n>>8), byte(n), 0x00, 0x00)
	return append(data, body...)
}

// createTestMP3 builds an ID3v2.3 tag with a title, a track and an
// optional JPEG picture, followed by one MPEG frame header and some audio.
func createTestMP3(withPicture bool) []byte {
	body := createFrame("TIT2", append([]byte{0x00}, "Override"...))
	body = append(body, createFrame("TRCK", append([]byte{0x00}, "4/10"...))...)
	if withPicture {
		apic := []byte{0x00}
		apic = append(apic, "image/jpeg\x00"...)
		apic = append(apic, 0x03, 0x00)
		apic = append(apic, 0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F', 0x00)
		apic = append(apic, make([]byte, 64)...)
		body = append(body, createFrame("APIC", apic)...)
	}
	body = append(body, make([]byte, 16)...)

	n := len(body)
	data := []byte{'I', 'D', '3', 0x03, 0x00, 0x00,
		byte(n>>21) & 0x7F, byte(n>>14) & 0x7F, byte(n>>7) & 0x7F, byte(n) & 0x7F}
	data = append(data, body...)
	data = append(data, 0xFF, 0xFB, 0x90, 0x00)
	return append(data, make([]byte, 2048)...)
}

func newUploadRequest(t *testing.T, path string, data []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("file", "song.mp3")
	if err != nil {
		t.Fatal(err)
	}
	part.Write(data)
	w.Close()

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func newTestRouter(opts ...id3meta.Option) *gin.Engine {
	return NewRouter(NewHandler(nil, 0, opts...), Config{AllowOrigins: []string{"http://localhost:3000"}})
}

func TestHealthCheck(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["status"] != "healthy" || body["version"] != id3meta.Version {
		t.Errorf("body = %v", body)
	}
}

func TestMetadata(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, newUploadRequest(t, "/api/v1/metadata", createTestMP3(true)))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}

	var resp MetadataResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}

	if !resp.Success || resp.Filename != "song.mp3" {
		t.Errorf("resp = %+v", resp)
	}
	if resp.Metadata.Title != "Override" {
		t.Errorf("title = %q", resp.Metadata.Title)
	}
	if resp.Metadata.TrackNumber != 4 || resp.Metadata.TrackTotal != 10 {
		t.Errorf("track = %d/%d", resp.Metadata.TrackNumber, resp.Metadata.TrackTotal)
	}
	if p := resp.Metadata.Picture; p == nil || p.MIMEType != "image/jpeg" || p.Size != 75 || p.Type != "Front cover" {
		t.Errorf("picture = %+v", p)
	}
	if len(resp.Tags) != 1 || len(resp.Tags[0].Frames) != 3 || resp.Tags[0].Version != "2.3.0" {
		t.Errorf("tags = %+v", resp.Tags)
	}
	if resp.Audio == nil || resp.Audio.Bitrate != 128 || resp.Audio.SampleRate != 44100 {
		t.Errorf("audio = %+v", resp.Audio)
	}
	if resp.ID3v1 != nil {
		t.Errorf("unexpected ID3v1 = %+v", resp.ID3v1)
	}
}

func TestMetadata_MissingFile(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/metadata", nil)
	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestMetadata_Strict(t *testing.T) {
	data := createTestMP3(false)
	data[17] = 0x40 // TIT2 size overruns the tag

	rec := httptest.NewRecorder()
	newTestRouter(id3meta.WithStrictParsing()).ServeHTTP(rec, newUploadRequest(t, "/api/v1/metadata", data))

	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", rec.Code)
	}
}

func TestCover(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, newUploadRequest(t, "/api/v1/cover", createTestMP3(true)))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/jpeg" {
		t.Errorf("Content-Type = %q", ct)
	}
	if rec.Body.Len() != 75 {
		t.Errorf("body length = %d, want 75", rec.Body.Len())
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte{0xFF, 0xD8, 0xFF}) {
		t.Error("body is not the JPEG picture")
	}
	if got := rec.Header().Get("X-Picture-Type"); got != "Front cover" {
		t.Errorf("X-Picture-Type = %q", got)
	}
}

func TestCover_NotFound(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, newUploadRequest(t, "/api/v1/cover", createTestMP3(false)))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestCORS(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Errorf("Access-Control-Allow-Origin = %q", got)
	}
}
