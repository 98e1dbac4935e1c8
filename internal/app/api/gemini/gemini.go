package gemini

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/fabmdb/ai-order/internal/app/api"
)

const (
	backendName   = "gemini"
	audioMIMEType = "audio/wav"
)

// ErrEmptyResponse is returned when the model produced no text.
var ErrEmptyResponse = errors.New("model returned no text")

// languageNames maps language codes to the names used in the prompt.
var languageNames = map[string]string{
	"fr": "French",
	"en": "English",
}

// Transcriber sends audio inline to a Gemini multimodal model and asks for a verbatim transcript.
type Transcriber struct {
	client *genai.Client
	model  string
	logger *zap.Logger
}

// NewClient creates a Gemini API client. baseURL is optional.
func NewClient(ctx context.Context, apiKey, baseURL string) (*genai.Client, error) {
	clientConfig := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if baseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("NewClient of gemini failed: %w", err)
	}
	return client, nil
}

// NewTranscriber wraps client for model.
func NewTranscriber(client *genai.Client, model string, logger *zap.Logger) *Transcriber {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Transcriber{client: client, model: model, logger: logger}
}

// Prompt returns the instruction sent alongside the audio.
func Prompt(language string) string {
	name, ok := languageNames[language]
	if !ok {
		name = language
	}
	return fmt.Sprintf("Transcribe this audio verbatim in %s. Reply with the transcript text only, without commentary or timestamps.", name)
}

// Transcript implements api.Transcriber.
func (t *Transcriber) Transcript(ctx context.Context, inputFilePath string, language string) (string, error) {
	data, err := os.ReadFile(inputFilePath)
	if err != nil {
		return "", api.NewTranscriptionError(backendName, err, "failed to read audio")
	}

	parts := []*genai.Part{
		genai.NewPartFromText(Prompt(language)),
		genai.NewPartFromBytes(data, audioMIMEType),
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	resp, err := t.client.Models.GenerateContent(ctx, t.model, contents, &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](0),
	})
	if err != nil {
		return "", api.NewTranscriptionError(backendName, err, "generateContent failed")
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", api.NewTranscriptionError(backendName, ErrEmptyResponse, "gemini transcription failed")
	}

	t.logger.Debug("gemini transcription completed",
		zap.String("model", t.model),
		zap.Int("audio_bytes", len(data)),
	)
	return text, nil
}

// HealthCheck fetches the model metadata, which verifies both the key and the model name.
func (t *Transcriber) HealthCheck(ctx context.Context) error {
	if _, err := t.client.Models.Get(ctx, t.model, nil); err != nil {
		return fmt.Errorf("gemini model %s unavailable: %w", t.model, err)
	}
	return nil
}
