package api

import (
	"context"
	"fmt"
)

// Language is the spoken language every transcription is constrained to.
const Language = "fr"

// Transcriber converts an audio file to text.
// Implementations are created once per process and shared by concurrent requests.
type Transcriber interface {
	Transcript(ctx context.Context, inputFilePath string, language string) (string, error)
}

// HealthChecker is implemented by transcribers that can verify their backend is ready.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// TranscriptionError is the failure type returned by every Transcriber backend.
type TranscriptionError struct {
	Backend string
	Message string
	Cause   error
}

func (e *TranscriptionError) Error() string {
	return e.Message
}

func (e *TranscriptionError) Unwrap() error {
	return e.Cause
}

// NewTranscriptionError builds a TranscriptionError whose message includes cause.
func NewTranscriptionError(backend string, cause error, format string, args ...interface{}) *TranscriptionError {
	message := fmt.Sprintf(format, args...)
	if cause != nil {
		message = fmt.Sprintf("%s: %v", message, cause)
	}
	return &TranscriptionError{
		Backend: backend,
		Message: message,
		Cause:   cause,
	}
}
