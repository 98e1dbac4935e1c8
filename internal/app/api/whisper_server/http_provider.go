package whisper_server

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

const backendName = "whisper_server"

// WhisperServerProvider implements transcription via HTTP to a whisper-server instance.
// The server keeps the model loaded, so requests pay no model start-up cost.
type WhisperServerProvider struct {
	config WhisperServerConfig
	client *http.Client
	logger *zap.Logger
}

// WhisperServerConfig represents configuration for whisper-server HTTP API
type WhisperServerConfig struct {
	BaseURL       string            // e.g. "http://127.0.0.1:8080"
	InferencePath string            // default "/inference"
	Timeout       time.Duration     // zero means no client timeout
	CustomHeaders map[string]string
}

// WhisperServerResponse is the json response_format payload.
type WhisperServerResponse struct {
	Text     string  `json:"text"`
	Language string  `json:"language,omitempty"`
	Duration float64 `json:"duration,omitempty"`
	Error    string  `json:"error,omitempty"`
}

// NewWhisperServerProvider creates a new whisper-server HTTP provider
func NewWhisperServerProvider(config WhisperServerConfig, logger *zap.Logger) *WhisperServerProvider {
	if config.InferencePath == "" {
		config.InferencePath = "/inference"
	}
	if config.CustomHeaders == nil {
		config.CustomHeaders = make(map[string]string)
	}
	config.BaseURL = strings.TrimRight(config.BaseURL, "/")
	if logger == nil {
		logger = zap.NewNop()
	}

	return &WhisperServerProvider{
		config: config,
		client: &http.Client{Timeout: config.Timeout},
		logger: logger,
	}
}

// Transcript uploads the audio file to the server and returns the recognized text.
func (wsp *WhisperServerProvider) Transcript(ctx context.Context, inputFilePath string, language string) (string, error) {
	start := time.Now()

	body, contentType, err := wsp.createMultipartForm(inputFilePath, language)
	if err != nil {
		return "", api.NewTranscriptionError(backendName, err, "failed to create multipart form")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, wsp.config.BaseURL+wsp.config.InferencePath, body)
	if err != nil {
		return "", api.NewTranscriptionError(backendName, err, "failed to create HTTP request")
	}
	httpReq.Header.Set("Content-Type", contentType)
	wsp.setHeaders(httpReq)

	resp, err := wsp.client.Do(httpReq)
	if err != nil {
		return "", api.NewTranscriptionError(backendName, err, "HTTP request failed")
	}
	defer resp.Body.Close()

	responseData, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", api.NewTranscriptionError(backendName, err, "failed to read response")
	}

	if resp.StatusCode != http.StatusOK {
		return "", api.NewTranscriptionError(backendName, nil,
			"whisper-server returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(responseData)))
	}

	var parsed WhisperServerResponse
	if err := json.Unmarshal(responseData, &parsed); err != nil {
		return "", api.NewTranscriptionError(backendName, err, "failed to parse response")
	}
	if parsed.Error != "" {
		return "", api.NewTranscriptionError(backendName, nil, "whisper-server error: %s", parsed.Error)
	}

	wsp.logger.Debug("whisper-server transcription completed",
		zap.Duration("took", time.Since(start)),
		zap.Int("response_size", len(responseData)),
	)
	return strings.TrimSpace(parsed.Text), nil
}

// createMultipartForm creates the multipart form for the inference request
func (wsp *WhisperServerProvider) createMultipartForm(inputFilePath, language string) (*bytes.Buffer, string, error) {
	file, err := os.Open(inputFilePath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", filepath.Base(inputFilePath))
	if err != nil {
		return nil, "", fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, "", fmt.Errorf("failed to copy file content: %w", err)
	}

	params := map[string]string{
		"response_format": "json",
		"temperature":     "0.00",
		"language":        language,
	}
	for key, value := range params {
		if err := writer.WriteField(key, value); err != nil {
			return nil, "", fmt.Errorf("failed to write field %s: %w", key, err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to close multipart writer: %w", err)
	}
	return body, writer.FormDataContentType(), nil
}

func (wsp *WhisperServerProvider) setHeaders(req *http.Request) {
	for key, value := range wsp.config.CustomHeaders {
		req.Header.Set(key, value)
	}
}

// ValidateConfiguration checks the provider configuration
func (wsp *WhisperServerProvider) ValidateConfiguration() error {
	if wsp.config.BaseURL == "" {
		return fmt.Errorf("base_url is required")
	}
	if !strings.HasPrefix(wsp.config.BaseURL, "http://") && !strings.HasPrefix(wsp.config.BaseURL, "https://") {
		return fmt.Errorf("base_url must start with http:// or https://")
	}
	return nil
}

// HealthCheck verifies the server answers. Any status below 500 counts as up.
func (wsp *WhisperServerProvider) HealthCheck(ctx context.Context) error {
	if err := wsp.ValidateConfiguration(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, wsp.config.BaseURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create health check request: %w", err)
	}
	wsp.setHeaders(req)

	resp, err := wsp.client.Do(req)
	if err != nil {
		return fmt.Errorf("server connectivity test failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		return fmt.Errorf("server returned error status: %d", resp.StatusCode)
	}
	return nil
}
