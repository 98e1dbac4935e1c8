package testutil

import (
	"context"
	"os"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/fabmdb/ai-order/internal/app/audio"
)

var _ audio.Transcoder = (*MockTranscoder)(nil)

// MockTranscoder is a mock implementation of audio.Transcoder.
// On success it writes a silent WAV at audio.OutputPath so callers see a real file.
type MockTranscoder struct {
	mock.Mock

	// PartialOutputOnError leaves a truncated output file behind when failing,
	// as a crashed ffmpeg would.
	PartialOutputOnError bool

	mu      sync.Mutex
	outputs []string
}

// NewMockTranscoder creates a new MockTranscoder
func NewMockTranscoder() *MockTranscoder {
	return &MockTranscoder{}
}

// Convert implements audio.Transcoder
func (m *MockTranscoder) Convert(ctx context.Context, inputPath string, container audio.Container) (string, error) {
	args := m.Called(ctx, inputPath, container)
	outputPath := audio.OutputPath(inputPath, container)

	if err := args.Error(0); err != nil {
		if m.PartialOutputOnError {
			_ = os.WriteFile(outputPath, []byte("RIFF"), 0o600)
			m.record(outputPath)
		}
		return "", err
	}

	if err := os.WriteFile(outputPath, SilentWAV(0.1), 0o600); err != nil {
		return "", err
	}
	m.record(outputPath)
	return outputPath, nil
}

// ExpectConvert sets up an expectation for any WAV conversion
func (m *MockTranscoder) ExpectConvert(err error) *MockTranscoder {
	m.On("Convert", mock.Anything, mock.Anything, audio.ContainerWAV).Return(err)
	return m
}

// Outputs returns every output path the mock wrote
func (m *MockTranscoder) Outputs() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.outputs...)
}

func (m *MockTranscoder) record(path string) {
	m.mu.Lock()
	m.outputs = append(m.outputs, path)
	m.mu.Unlock()
}
