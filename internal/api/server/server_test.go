package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fabmdb/ai-order/internal/api/v1/services"
	"github.com/fabmdb/ai-order/internal/app/metrics"
	apptestutil "github.com/fabmdb/ai-order/internal/app/testutil"
	"github.com/fabmdb/ai-order/internal/config"
)

func newTestServer(t *testing.T) (*Server, *apptestutil.MockTranscoder, *apptestutil.MockTranscriber) {
	t.Helper()

	cfg := config.Defaults()
	cfg.Server.Environment = "test"
	cfg.Uploads.TempDir = t.TempDir()

	transcoder := apptestutil.NewMockTranscoder()
	transcriber := apptestutil.NewMockTranscriber()
	m := metrics.NewMetrics()
	service := services.NewTranscriptionService(transcoder, transcriber, m, zap.NewNop(), services.TranscriptionOptions{
		TempDir: cfg.Uploads.TempDir,
		Backend: "mock",
	})
	return NewServer(cfg, service, m, zap.NewNop()), transcoder, transcriber
}

func serve(s *Server, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func TestServerAddr(t *testing.T) {
	s, _, _ := newTestServer(t)
	assert.Equal(t, "0.0.0.0:8000", s.httpServer.Addr)
	assert.Equal(t, int64(25<<20), s.router.MaxMultipartMemory)
}

func TestServerTranscribeEndToEnd(t *testing.T) {
	s, transcoder, transcriber := newTestServer(t)
	transcoder.ExpectConvert(nil)
	transcriber.ExpectTranscript("Bonjour", nil)

	req := apptestutil.NewUploadRequest(t, "/transcribe", "file", "voice.webm", []byte("webm"))
	req.Header.Set("Origin", "https://client.example")
	rec := serve(s, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"transcription":"Bonjour"}`, rec.Body.String())
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestServerMissingFile(t *testing.T) {
	s, _, _ := newTestServer(t)

	rec := serve(s, apptestutil.NewFormRequest(t, "/transcribe"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"no audio file provided"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestServerPreflight(t *testing.T) {
	s, _, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/transcribe", nil)
	req.Header.Set("Origin", "https://client.example")
	req.Header.Set("Access-Control-Request-Method", "POST")
	rec := serve(s, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestServerHealth(t *testing.T) {
	s, _, _ := newTestServer(t)

	rec := serve(s, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
}

func TestServerMetrics(t *testing.T) {
	s, _, _ := newTestServer(t)
	serve(s, apptestutil.NewFormRequest(t, "/transcribe"))

	rec := serve(s, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `transcribe_requests_total{outcome="missing_file"} 1`)
	assert.Contains(t, rec.Body.String(), `http_requests_total{endpoint="/transcribe",method="POST",status_code="400"} 1`)
}

func TestServerSwagger(t *testing.T) {
	s, _, _ := newTestServer(t)

	rec := serve(s, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `"/transcribe"`))
}

func TestServerUnknownRoute(t *testing.T) {
	s, _, _ := newTestServer(t)

	rec := serve(s, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"route not found"}`, rec.Body.String())
}
