package services

import (
	"context"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/fabmdb/ai-order/internal/api/errors"
	"github.com/fabmdb/ai-order/internal/api/v1/dto"
	"github.com/fabmdb/ai-order/internal/app/api"
	"github.com/fabmdb/ai-order/internal/app/audio"
	"github.com/fabmdb/ai-order/internal/app/metrics"
	"github.com/fabmdb/ai-order/internal/app/session"
)

// Client-facing error messages.
const (
	MsgNoAudioFile      = "no audio file provided"
	MsgUploadTooLarge   = "audio file too large"
	MsgUploadFailed     = "failed to store uploaded audio"
	MsgConversionFailed = "audio conversion failed"
)

// TranscriptionOptions configures TranscriptionServiceImpl.
type TranscriptionOptions struct {
	// TempDir is the base directory for upload sessions; empty means os.TempDir().
	TempDir string
	// Backend names the transcription backend in metrics and logs.
	Backend string
	// FFprobePath enables audio duration metrics when set.
	FFprobePath string
}

// TranscriptionServiceImpl implements TranscriptionService
type TranscriptionServiceImpl struct {
	transcoder  audio.Transcoder
	transcriber api.Transcriber
	metrics     *metrics.Metrics
	logger      *zap.Logger
	options     TranscriptionOptions
}

// NewTranscriptionService creates a new transcription service
func NewTranscriptionService(
	transcoder audio.Transcoder,
	transcriber api.Transcriber,
	m *metrics.Metrics,
	logger *zap.Logger,
	options TranscriptionOptions,
) *TranscriptionServiceImpl {
	if logger == nil {
		logger = zap.NewNop()
	}
	if m == nil {
		m = metrics.NewMetrics()
	}
	return &TranscriptionServiceImpl{
		transcoder:  transcoder,
		transcriber: transcriber,
		metrics:     m,
		logger:      logger,
		options:     options,
	}
}

// Transcribe runs save, convert and transcribe strictly in sequence.
func (s *TranscriptionServiceImpl) Transcribe(ctx context.Context, upload io.Reader) (*dto.TranscriptionResponse, error) {
	s.metrics.SessionStarted()
	defer s.metrics.SessionFinished()

	sess, err := session.New(s.options.TempDir)
	if err != nil {
		s.logger.Error("failed to create upload session", zap.Error(err))
		s.metrics.RecordRequest(metrics.OutcomeUploadFailed)
		return nil, errors.NewInternalError(MsgUploadFailed)
	}
	log := s.logger.With(zap.String("session_id", sess.ID))

	defer func() {
		if err := sess.Cleanup(); err != nil {
			log.Warn("failed to remove session files", zap.Error(err))
			s.metrics.RecordCleanupFailure()
		}
	}()

	inputPath, err := sess.SaveUpload(upload, string(audio.ContainerWebM))
	if err != nil {
		log.Error("failed to save upload", zap.Error(err))
		s.metrics.RecordRequest(metrics.OutcomeUploadFailed)
		return nil, errors.NewInternalError(MsgUploadFailed)
	}
	// Tracked before conversion so a partial output is removed too.
	sess.Track(audio.OutputPath(inputPath, audio.ContainerWAV))

	start := time.Now()
	wavPath, err := s.transcoder.Convert(ctx, inputPath, audio.ContainerWAV)
	s.metrics.ObserveConversion(time.Since(start))
	if err != nil {
		log.Error("audio conversion failed", zap.String("input", inputPath), zap.Error(err))
		s.metrics.RecordRequest(metrics.OutcomeConversionFailed)
		return nil, errors.NewInternalError(MsgConversionFailed)
	}
	sess.Track(wavPath)

	s.observeAudioDuration(ctx, wavPath, log)

	start = time.Now()
	text, err := s.transcriber.Transcript(ctx, wavPath, api.Language)
	s.metrics.ObserveTranscription(s.options.Backend, time.Since(start))
	if err != nil {
		log.Error("transcription failed", zap.String("backend", s.options.Backend), zap.Error(err))
		s.metrics.RecordRequest(metrics.OutcomeTranscriptionFailed)
		return nil, errors.NewInternalError(err.Error())
	}

	log.Info("transcription completed",
		zap.Int("characters", len(text)),
		zap.Duration("inference", time.Since(start)),
	)
	s.metrics.RecordRequest(metrics.OutcomeSuccess)
	return &dto.TranscriptionResponse{Transcription: text}, nil
}

func (s *TranscriptionServiceImpl) observeAudioDuration(ctx context.Context, wavPath string, log *zap.Logger) {
	if s.options.FFprobePath == "" {
		return
	}
	probe, err := audio.Probe(ctx, s.options.FFprobePath, wavPath)
	if err != nil {
		log.Debug("could not probe audio", zap.Error(err))
		return
	}
	log.Debug("probed converted audio",
		zap.String("codec", probe.Codec),
		zap.Int("sample_rate", probe.SampleRate),
		zap.Float64("seconds", probe.Duration),
	)
	s.metrics.ObserveAudioDuration(probe.Duration)
}
