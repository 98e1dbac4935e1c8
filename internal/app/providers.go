package app

import (
	"context"

	"go.uber.org/zap"

	"github.com/fabmdb/ai-order/internal/api/server"
	"github.com/fabmdb/ai-order/internal/api/v1/services"
	"github.com/fabmdb/ai-order/internal/app/api"
	"github.com/fabmdb/ai-order/internal/app/api/provider"
	"github.com/fabmdb/ai-order/internal/app/audio"
	"github.com/fabmdb/ai-order/internal/app/common"
	"github.com/fabmdb/ai-order/internal/config"

	// Register transcription backends
	_ "github.com/fabmdb/ai-order/internal/app/api/elevenlabs"
	_ "github.com/fabmdb/ai-order/internal/app/api/gemini"
	_ "github.com/fabmdb/ai-order/internal/app/api/openai/whisper"
	_ "github.com/fabmdb/ai-order/internal/app/api/whisper_cpp"
	_ "github.com/fabmdb/ai-order/internal/app/api/whisper_server"
)

// Application is the fully wired service.
type Application struct {
	Config     *config.Config
	Logger     *zap.Logger
	Transcoder audio.Transcoder
	Service    *services.TranscriptionServiceImpl
	Server     *server.Server
}

// provideLogger builds the process logger; the cleanup flushes buffered entries.
func provideLogger(cfg *config.Config) (*zap.Logger, func(), error) {
	logger, err := common.NewLogger(!cfg.Server.IsProduction(), cfg.Log.Level)
	if err != nil {
		return nil, nil, err
	}
	return logger, func() { _ = logger.Sync() }, nil
}

// provideTranscoder returns the ffmpeg backed transcoder
func provideTranscoder(cfg *config.Config, logger *zap.Logger) audio.Transcoder {
	return audio.NewFFmpegTranscoder(cfg.FFmpeg.Path, logger.Named("ffmpeg"))
}

// provideTranscriber opens the configured backend once; it is shared by every request.
func provideTranscriber(ctx context.Context, cfg *config.Config, logger *zap.Logger) (api.Transcriber, error) {
	return provider.Open(ctx, cfg.Transcription, logger)
}

func provideServiceOptions(cfg *config.Config) services.TranscriptionOptions {
	return services.TranscriptionOptions{
		TempDir:     cfg.Uploads.TempDir,
		Backend:     cfg.Transcription.Backend,
		FFprobePath: cfg.FFmpeg.ProbePath,
	}
}
