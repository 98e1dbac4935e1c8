package testutil

import (
	"bytes"
	"encoding/binary"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

// SampleRate is the sample rate of generated fixtures, matching the canonical container.
const SampleRate = 16000

// SilentWAV returns a mono 16-bit PCM WAV file containing seconds of silence.
func SilentWAV(seconds float64) []byte {
	samples := int(seconds * SampleRate)
	dataSize := uint32(samples * 2)

	buf := &bytes.Buffer{}
	buf.WriteString("RIFF")
	_ = binary.Write(buf, binary.LittleEndian, 36+dataSize)
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	_ = binary.Write(buf, binary.LittleEndian, uint32(16))         // chunk size
	_ = binary.Write(buf, binary.LittleEndian, uint16(1))          // PCM
	_ = binary.Write(buf, binary.LittleEndian, uint16(1))          // mono
	_ = binary.Write(buf, binary.LittleEndian, uint32(SampleRate)) // sample rate
	_ = binary.Write(buf, binary.LittleEndian, uint32(SampleRate*2))
	_ = binary.Write(buf, binary.LittleEndian, uint16(2))  // block align
	_ = binary.Write(buf, binary.LittleEndian, uint16(16)) // bits per sample

	buf.WriteString("data")
	_ = binary.Write(buf, binary.LittleEndian, dataSize)
	buf.Write(make([]byte, dataSize))

	return buf.Bytes()
}

// CreateTestAudioFile writes a short silent WAV file named filename into a fresh temp dir.
func CreateTestAudioFile(t *testing.T, filename string) string {
	t.Helper()

	fullPath := filepath.Join(t.TempDir(), filepath.Base(filename))
	if err := os.WriteFile(fullPath, SilentWAV(0.25), 0o644); err != nil {
		t.Fatalf("Failed to create test audio file: %v", err)
	}
	return fullPath
}

// NewUploadRequest builds a multipart POST with content stored under field.
func NewUploadRequest(t *testing.T, target, field, filename string, content []byte) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile(field, filename)
	if err != nil {
		t.Fatalf("Failed to create form file: %v", err)
	}
	if _, err := io.Copy(part, bytes.NewReader(content)); err != nil {
		t.Fatalf("Failed to write form file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Failed to close multipart writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, target, body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

// NewFormRequest builds a multipart POST that carries only a text field, no file.
func NewFormRequest(t *testing.T, target string) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	if err := writer.WriteField("note", "no audio here"); err != nil {
		t.Fatalf("Failed to write field: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Failed to close multipart writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, target, body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

// ListDir returns the names of the entries in dir.
func ListDir(t *testing.T, dir string) []string {
	t.Helper()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to read dir %s: %v", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}
