package whisper

import (
	"go.uber.org/zap"

	"github.com/fabmdb/ai-order/internal/app/api"
	openaiclient "github.com/fabmdb/ai-order/internal/app/api/openai"
	"github.com/fabmdb/ai-order/internal/app/api/provider"
	"github.com/fabmdb/ai-order/internal/config"
)

func init() {
	// Register openai provider with the factory
	provider.RegisterProvider(backendName, createOpenAIProvider)
}

// createOpenAIProvider creates an OpenAI Whisper provider from configuration
func createOpenAIProvider(cfg config.TranscriptionConfig, logger *zap.Logger) (api.Transcriber, error) {
	client, err := openaiclient.NewClient(cfg.OpenAI.APIKey, cfg.OpenAI.BaseURL)
	if err != nil {
		return nil, err
	}
	return NewRemoteTranscriber(client, cfg.OpenAI.Model, logger), nil
}
