package elevenlabs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/fabmdb/ai-order/internal/app/api"
)

const (
	backendName = "elevenlabs"

	DefaultBaseURL = "https://api.elevenlabs.io/v1"
	DefaultModel   = "scribe_v1"
)

// ElevenLabsSTTProvider transcribes through the ElevenLabs Speech-to-Text API.
type ElevenLabsSTTProvider struct {
	config ElevenLabsConfig
	client *http.Client
	logger *zap.Logger
}

// ElevenLabsConfig represents configuration for ElevenLabs STT provider
type ElevenLabsConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// ElevenLabsResponse represents the response from ElevenLabs STT API
type ElevenLabsResponse struct {
	Text         string `json:"text"`
	LanguageCode string `json:"language_code,omitempty"`
	Words        []Word `json:"words,omitempty"`
}

// Word represents word-level timing information from ElevenLabs
type Word struct {
	Text  string  `json:"text"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// NewElevenLabsSTTProvider creates a new ElevenLabs STT provider
func NewElevenLabsSTTProvider(config ElevenLabsConfig, logger *zap.Logger) *ElevenLabsSTTProvider {
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	config.BaseURL = strings.TrimRight(config.BaseURL, "/")
	if config.Model == "" {
		config.Model = DefaultModel
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &ElevenLabsSTTProvider{
		config: config,
		client: &http.Client{Timeout: config.Timeout},
		logger: logger,
	}
}

// Transcript uploads the audio file and returns the recognized text.
func (el *ElevenLabsSTTProvider) Transcript(ctx context.Context, inputFilePath string, language string) (string, error) {
	start := time.Now()

	httpReq, err := el.createHTTPRequest(ctx, inputFilePath, language)
	if err != nil {
		return "", api.NewTranscriptionError(backendName, err, "failed to create request")
	}

	resp, err := el.client.Do(httpReq)
	if err != nil {
		return "", api.NewTranscriptionError(backendName, err, "failed to call ElevenLabs API")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", el.handleHTTPError(resp)
	}

	var parsed ElevenLabsResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", api.NewTranscriptionError(backendName, err, "failed to parse API response")
	}

	el.logger.Debug("elevenlabs transcription completed",
		zap.Duration("took", time.Since(start)),
		zap.String("language_code", parsed.LanguageCode),
		zap.Int("words", len(parsed.Words)),
	)
	return strings.TrimSpace(parsed.Text), nil
}

func (el *ElevenLabsSTTProvider) createHTTPRequest(ctx context.Context, inputFilePath, language string) (*http.Request, error) {
	file, err := os.Open(inputFilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open audio file: %w", err)
	}
	defer file.Close()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filepath.Base(inputFilePath))
	if err != nil {
		return nil, fmt.Errorf("failed to create form: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("failed to copy file data: %w", err)
	}
	if err := writer.WriteField("model_id", el.config.Model); err != nil {
		return nil, fmt.Errorf("failed to add model field: %w", err)
	}
	if err := writer.WriteField("language_code", language); err != nil {
		return nil, fmt.Errorf("failed to add language field: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to close multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, el.config.BaseURL+"/speech-to-text", &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("xi-api-key", el.config.APIKey)
	return req, nil
}

func (el *ElevenLabsSTTProvider) handleHTTPError(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)
	detail := strings.TrimSpace(string(body))

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return api.NewTranscriptionError(backendName, nil, "ElevenLabs API key is invalid or missing")
	case http.StatusTooManyRequests:
		return api.NewTranscriptionError(backendName, nil, "ElevenLabs API rate limit exceeded")
	case http.StatusRequestEntityTooLarge:
		return api.NewTranscriptionError(backendName, nil, "audio file is too large")
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return api.NewTranscriptionError(backendName, nil, "invalid request: %s", detail)
	default:
		return api.NewTranscriptionError(backendName, nil, "unexpected HTTP status %d: %s", resp.StatusCode, detail)
	}
}

// ValidateConfiguration validates the provider configuration
func (el *ElevenLabsSTTProvider) ValidateConfiguration() error {
	if el.config.APIKey == "" {
		return fmt.Errorf("ElevenLabs API key is required")
	}
	if !strings.HasPrefix(el.config.BaseURL, "http://") && !strings.HasPrefix(el.config.BaseURL, "https://") {
		return fmt.Errorf("base_url must start with http:// or https://")
	}
	return nil
}

// HealthCheck validates the key against the user endpoint.
func (el *ElevenLabsSTTProvider) HealthCheck(ctx context.Context) error {
	if err := el.ValidateConfiguration(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, el.config.BaseURL+"/user", nil)
	if err != nil {
		return fmt.Errorf("failed to create health check request: %w", err)
	}
	req.Header.Set("xi-api-key", el.config.APIKey)

	resp, err := el.client.Do(req)
	if err != nil {
		return fmt.Errorf("ElevenLabs API health check failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("ElevenLabs API authentication failed")
	}
	if resp.StatusCode >= 500 {
		return fmt.Errorf("ElevenLabs API returned status %d", resp.StatusCode)
	}
	return nil
}
