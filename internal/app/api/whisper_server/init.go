package whisper_server

import (
	"go.uber.org/zap"

	"github.com/fabmdb/ai-order/internal/app/api"
	"github.com/fabmdb/ai-order/internal/app/api/provider"
	"github.com/fabmdb/ai-order/internal/config"
)

func init() {
	provider.RegisterProvider(backendName, createWhisperServerProvider)
}

func createWhisperServerProvider(cfg config.TranscriptionConfig, logger *zap.Logger) (api.Transcriber, error) {
	settings := cfg.WhisperServer
	return NewWhisperServerProvider(WhisperServerConfig{
		BaseURL:       settings.BaseURL,
		InferencePath: settings.InferencePath,
		Timeout:       settings.Timeout,
		CustomHeaders: settings.CustomHeaders,
	}, logger), nil
}
