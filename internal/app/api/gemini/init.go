package gemini

import (
	"context"

	"go.uber.org/zap"

	"github.com/fabmdb/ai-order/internal/app/api"
	"github.com/fabmdb/ai-order/internal/app/api/provider"
	"github.com/fabmdb/ai-order/internal/config"
)

func init() {
	provider.RegisterProvider(backendName, createGeminiProvider)
}

func createGeminiProvider(cfg config.TranscriptionConfig, logger *zap.Logger) (api.Transcriber, error) {
	client, err := NewClient(context.Background(), cfg.Gemini.APIKey, cfg.Gemini.BaseURL)
	if err != nil {
		return nil, err
	}
	return NewTranscriber(client, cfg.Gemini.Model, logger), nil
}
