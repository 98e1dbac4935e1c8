// Package session manages the temporary files belonging to a single upload.
//
// Every file a request writes to disk is registered with its Session, and the
// request defers Cleanup so nothing outlives the request regardless of how it ends.
package session

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/fabmdb/ai-order/internal/app/util/files"
)

// Session tracks the temporary files created while serving one request.
type Session struct {
	ID      string
	baseDir string

	mu    sync.Mutex
	files []string
}

// New starts a session storing its files in baseDir (os.TempDir() when empty).
func New(baseDir string) (*Session, error) {
	if baseDir == "" {
		baseDir = os.TempDir()
	}
	if err := os.MkdirAll(baseDir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to prepare temp dir %s: %w", baseDir, err)
	}
	return &Session{
		ID:      uuid.NewString(),
		baseDir: baseDir,
	}, nil
}

// SaveUpload copies r into a new uniquely named file ending in suffix.
func (s *Session) SaveUpload(r io.Reader, suffix string) (string, error) {
	f, err := os.CreateTemp(s.baseDir, "upload-"+s.ID+"-*"+suffix)
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	path := f.Name()
	s.Track(path)

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return "", fmt.Errorf("failed to write upload file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close upload file: %w", err)
	}
	return path, nil
}

// Track registers a file created on behalf of this session. Registering a path twice is a no-op.
func (s *Session) Track(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if path == "" || lo.Contains(s.files, path) {
		return
	}
	s.files = append(s.files, path)
}

// Files returns the paths tracked so far.
func (s *Session) Files() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.files...)
}

// Cleanup removes every tracked file. Files that are already gone are ignored.
// It is safe to call more than once.
func (s *Session) Cleanup() error {
	s.mu.Lock()
	tracked := s.files
	s.files = nil
	s.mu.Unlock()

	var errs []error
	for _, path := range tracked {
		if err := files.RemoveIfExists(path); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
