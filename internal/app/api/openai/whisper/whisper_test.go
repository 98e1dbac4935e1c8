package whisper

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fabmdb/ai-order/internal/app/api"
	openaiclient "github.com/fabmdb/ai-order/internal/app/api/openai"
	"github.com/fabmdb/ai-order/internal/config"
)

type capturedRequest struct {
	model    string
	language string
	format   string
	content  string
}

func newMockOpenAI(t *testing.T, status int, body string, got *capturedRequest) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/audio/transcriptions":
			require.NoError(t, r.ParseMultipartForm(10<<20))
			if got != nil {
				file, _, err := r.FormFile("file")
				require.NoError(t, err)
				data, _ := io.ReadAll(file)
				file.Close()
				got.model = r.FormValue("model")
				got.language = r.FormValue("language")
				got.format = r.FormValue("response_format")
				got.content = string(data)
			}
		case "/v1/models":
			body = `{"object":"list","data":[]}`
		default:
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func newTranscriber(t *testing.T, url string) *RemoteTranscriber {
	t.Helper()
	client, err := openaiclient.NewClient("test-key", url+"/v1")
	require.NoError(t, err)
	return NewRemoteTranscriber(client, "", nil)
}

func writeAudio(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "audio.wav")
	require.NoError(t, os.WriteFile(path, []byte("RIFF-data"), 0o600))
	return path
}

func TestRemoteTranscriber_Transcript(t *testing.T) {
	var got capturedRequest
	server := newMockOpenAI(t, http.StatusOK, `{"text": " Bonjour, ça va ? "}`, &got)

	text, err := newTranscriber(t, server.URL).Transcript(context.Background(), writeAudio(t), api.Language)
	require.NoError(t, err)

	assert.Equal(t, "Bonjour, ça va ?", text)
	assert.Equal(t, "whisper-1", got.model)
	assert.Equal(t, "fr", got.language)
	assert.Equal(t, "json", got.format)
	assert.Equal(t, "RIFF-data", got.content)
}

func TestRemoteTranscriber_APIErrors(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		body          string
		errorContains string
	}{
		{"unauthorized", http.StatusUnauthorized, `{"error": {"message": "Invalid API key", "type": "invalid_request_error"}}`, "401"},
		{"rate limit", http.StatusTooManyRequests, `{"error": {"message": "Rate limit exceeded", "type": "rate_limit_error"}}`, "429"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newMockOpenAI(t, tt.status, tt.body, nil)

			_, err := newTranscriber(t, server.URL).Transcript(context.Background(), writeAudio(t), api.Language)
			require.Error(t, err)

			var terr *api.TranscriptionError
			require.True(t, errors.As(err, &terr))
			assert.Equal(t, backendName, terr.Backend)
			assert.Contains(t, err.Error(), tt.errorContains)
		})
	}
}

func TestRemoteTranscriber_HealthCheck(t *testing.T) {
	server := newMockOpenAI(t, http.StatusOK, "", nil)
	assert.NoError(t, newTranscriber(t, server.URL).HealthCheck(context.Background()))

	failing := newMockOpenAI(t, http.StatusUnauthorized, `{"error": {"message": "bad key"}}`, nil)
	assert.Error(t, newTranscriber(t, failing.URL).HealthCheck(context.Background()))
}

func TestCreateOpenAIProviderRequiresKey(t *testing.T) {
	_, err := createOpenAIProvider(config.TranscriptionConfig{Backend: backendName, Model: "base"}, nil)
	assert.ErrorIs(t, err, openaiclient.ErrMissingAPIKey)

	transcriber, err := createOpenAIProvider(config.TranscriptionConfig{
		Backend: backendName,
		Model:   "base",
		OpenAI:  config.OpenAIConfig{APIKey: "k", Model: "gpt-4o-transcribe"},
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o-transcribe", transcriber.(*RemoteTranscriber).model)
}
