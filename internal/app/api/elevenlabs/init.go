package elevenlabs

import (
	"go.uber.org/zap"

	"github.com/fabmdb/ai-order/internal/app/api"
	"github.com/fabmdb/ai-order/internal/app/api/provider"
	"github.com/fabmdb/ai-order/internal/config"
)

func init() {
	provider.RegisterProvider(backendName, createElevenLabsProvider)
}

func createElevenLabsProvider(cfg config.TranscriptionConfig, logger *zap.Logger) (api.Transcriber, error) {
	settings := cfg.ElevenLabs
	return NewElevenLabsSTTProvider(ElevenLabsConfig{
		APIKey:  settings.APIKey,
		BaseURL: settings.BaseURL,
		Model:   settings.Model,
		Timeout: settings.Timeout,
	}, logger), nil
}
