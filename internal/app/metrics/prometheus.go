package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Request outcomes, used as the "outcome" label.
const (
	OutcomeSuccess             = "success"
	OutcomeMissingFile         = "missing_file"
	OutcomeUploadFailed        = "upload_failed"
	OutcomeConversionFailed    = "conversion_failed"
	OutcomeTranscriptionFailed = "transcription_failed"
)

// Metrics contains all Prometheus metrics for the transcription service
type Metrics struct {
	registry *prometheus.Registry

	// Pipeline metrics
	TranscribeRequests    *prometheus.CounterVec
	ConversionDuration    prometheus.Histogram
	TranscriptionDuration *prometheus.HistogramVec
	AudioDuration         prometheus.Histogram
	ActiveSessions        prometheus.Gauge
	CleanupFailures       prometheus.Counter

	// HTTP API metrics
	HTTPRequests        *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
}

// NewMetrics creates all metrics on a dedicated registry, together with the Go and process collectors.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,

		TranscribeRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "transcribe_requests_total",
			Help: "Total number of /transcribe requests by outcome",
		}, []string{"outcome"}),
		ConversionDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "transcribe_conversion_duration_seconds",
			Help:    "Duration of audio conversion to WAV",
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 10), // 50ms to ~25s
		}),
		TranscriptionDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "transcribe_model_duration_seconds",
			Help:    "Duration of speech-to-text inference",
			Buckets: prometheus.ExponentialBuckets(0.1, 2, 12), // 100ms to ~3.5 minutes
		}, []string{"backend"}),
		AudioDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "transcribe_audio_duration_seconds",
			Help:    "Duration of the submitted audio",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		}),
		ActiveSessions: factory.NewGauge(prometheus.GaugeOpts{
			Name: "transcribe_active_sessions",
			Help: "Number of upload sessions currently in progress",
		}),
		CleanupFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "transcribe_cleanup_failures_total",
			Help: "Total number of sessions whose temporary files could not all be removed",
		}),

		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"method", "endpoint", "status_code"}),
		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "endpoint"}),
	}
}

// Registry returns the registry the metrics are registered on.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler returns the exposition handler for the registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// RecordRequest increments the request counter for outcome
func (m *Metrics) RecordRequest(outcome string) {
	m.TranscribeRequests.WithLabelValues(outcome).Inc()
}

// ObserveConversion records a conversion duration
func (m *Metrics) ObserveConversion(d time.Duration) {
	m.ConversionDuration.Observe(d.Seconds())
}

// ObserveTranscription records an inference duration for backend
func (m *Metrics) ObserveTranscription(backend string, d time.Duration) {
	m.TranscriptionDuration.WithLabelValues(backend).Observe(d.Seconds())
}

// ObserveAudioDuration records the length of the submitted audio in seconds
func (m *Metrics) ObserveAudioDuration(seconds float64) {
	m.AudioDuration.Observe(seconds)
}

// SessionStarted increments the active sessions gauge
func (m *Metrics) SessionStarted() {
	m.ActiveSessions.Inc()
}

// SessionFinished decrements the active sessions gauge
func (m *Metrics) SessionFinished() {
	m.ActiveSessions.Dec()
}

// RecordCleanupFailure increments the cleanup failure counter
func (m *Metrics) RecordCleanupFailure() {
	m.CleanupFailures.Inc()
}

// RecordHTTPRequest records an HTTP request and its duration
func (m *Metrics) RecordHTTPRequest(method, endpoint, statusCode string, d time.Duration) {
	m.HTTPRequests.WithLabelValues(method, endpoint, statusCode).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, endpoint).Observe(d.Seconds())
}
