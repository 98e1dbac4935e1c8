package services

import (
	"context"
	"io"

	"github.com/fabmdb/ai-order/internal/api/v1/dto"
)

// TranscriptionService defines the interface for transcription operations
type TranscriptionService interface {
	// Transcribe stores upload for the duration of the call, converts it to WAV and
	// returns the French transcription. Every temporary file is removed before it returns.
	Transcribe(ctx context.Context, upload io.Reader) (*dto.TranscriptionResponse, error)
}
