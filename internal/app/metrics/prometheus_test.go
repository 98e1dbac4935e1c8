package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordRequest(t *testing.T) {
	m := NewMetrics()

	m.RecordRequest(OutcomeSuccess)
	m.RecordRequest(OutcomeSuccess)
	m.RecordRequest(OutcomeConversionFailed)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.TranscribeRequests.WithLabelValues(OutcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.TranscribeRequests.WithLabelValues(OutcomeConversionFailed)))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.TranscribeRequests.WithLabelValues(OutcomeMissingFile)))
}

func TestActiveSessions(t *testing.T) {
	m := NewMetrics()

	m.SessionStarted()
	m.SessionStarted()
	m.SessionFinished()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.ActiveSessions))
}

func TestInstancesAreIndependent(t *testing.T) {
	a := NewMetrics()
	b := NewMetrics()

	a.RecordCleanupFailure()

	assert.Equal(t, 1.0, testutil.ToFloat64(a.CleanupFailures))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.CleanupFailures))
}

func TestHandlerExposesMetrics(t *testing.T) {
	m := NewMetrics()
	m.RecordRequest(OutcomeMissingFile)
	m.ObserveConversion(120 * time.Millisecond)
	m.ObserveTranscription("whisper_cpp", 2*time.Second)
	m.RecordHTTPRequest(http.MethodPost, "/transcribe", "200", time.Second)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `transcribe_requests_total{outcome="missing_file"} 1`)
	assert.Contains(t, body, "transcribe_conversion_duration_seconds_count 1")
	assert.Contains(t, body, `transcribe_model_duration_seconds_count{backend="whisper_cpp"} 1`)
	assert.Contains(t, body, `http_requests_total{endpoint="/transcribe",method="POST",status_code="200"} 1`)
	assert.Contains(t, body, "go_goroutines")
}
