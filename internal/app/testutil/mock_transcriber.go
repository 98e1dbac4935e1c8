package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/fabmdb/ai-order/internal/app/api"
	"github.com/fabmdb/ai-order/internal/app/util/files"
)

var _ api.Transcriber = (*MockTranscriber)(nil)

// MockTranscriber is a mock implementation of the api.Transcriber interface
type MockTranscriber struct {
	mock.Mock
	mu sync.RWMutex

	// Latency is slept before answering, to widen concurrency windows.
	Latency time.Duration

	callHistory []TranscriptionCall
}

// TranscriptionCall represents a single transcription call for tracking
type TranscriptionCall struct {
	InputFilePath string
	Language      string
	InputExisted  bool
	Timestamp     time.Time
}

// NewMockTranscriber creates a new MockTranscriber
func NewMockTranscriber() *MockTranscriber {
	return &MockTranscriber{}
}

// Transcript implements the api.Transcriber interface
func (m *MockTranscriber) Transcript(ctx context.Context, inputFilePath string, language string) (string, error) {
	call := TranscriptionCall{
		InputFilePath: inputFilePath,
		Language:      language,
		InputExisted:  files.Exists(inputFilePath),
		Timestamp:     time.Now(),
	}
	m.mu.Lock()
	m.callHistory = append(m.callHistory, call)
	m.mu.Unlock()

	if m.Latency > 0 {
		time.Sleep(m.Latency)
	}

	args := m.Called(ctx, inputFilePath, language)
	return args.String(0), args.Error(1)
}

// ExpectTranscript sets up an expectation for any file in the French language
func (m *MockTranscriber) ExpectTranscript(response string, err error) *MockTranscriber {
	m.On("Transcript", mock.Anything, mock.Anything, api.Language).Return(response, err)
	return m
}

// ExpectTranscriptFor sets up an expectation for a specific file
func (m *MockTranscriber) ExpectTranscriptFor(filePath string, response string, err error) *MockTranscriber {
	m.On("Transcript", mock.Anything, filePath, api.Language).Return(response, err).Once()
	return m
}

// GetCallCount returns the number of calls made
func (m *MockTranscriber) GetCallCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.callHistory)
}

// GetCallHistory returns a copy of the call history
func (m *MockTranscriber) GetCallHistory() []TranscriptionCall {
	m.mu.RLock()
	defer m.mu.RUnlock()
	history := make([]TranscriptionCall, len(m.callHistory))
	copy(history, m.callHistory)
	return history
}

// GetLastCall returns the most recent call, or nil
func (m *MockTranscriber) GetLastCall() *TranscriptionCall {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if len(m.callHistory) == 0 {
		return nil
	}
	last := m.callHistory[len(m.callHistory)-1]
	return &last
}
