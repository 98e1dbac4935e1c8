package whisper_cpp

import (
	"go.uber.org/zap"

	"github.com/fabmdb/ai-order/internal/app/api"
	"github.com/fabmdb/ai-order/internal/app/api/provider"
	"github.com/fabmdb/ai-order/internal/config"
)

func init() {
	// Register whisper_cpp provider with the factory
	provider.RegisterProvider(backendName, createWhisperCppProvider)
}

// createWhisperCppProvider creates a whisper.cpp provider from configuration
func createWhisperCppProvider(cfg config.TranscriptionConfig, logger *zap.Logger) (api.Transcriber, error) {
	settings := cfg.WhisperCpp

	modelPath := settings.ModelPath
	if modelPath == "" {
		modelPath = ModelFile(settings.ModelsDir, cfg.Model)
	}

	return NewLocalTranscriber(LocalProviderConfig{
		BinaryPath:    settings.BinaryPath,
		ModelPath:     modelPath,
		Threads:       settings.Threads,
		MaxConcurrent: settings.MaxConcurrent,
	}, logger), nil
}
