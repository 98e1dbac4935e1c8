package provider

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/fabmdb/ai-order/internal/app/api"
	"github.com/fabmdb/ai-order/internal/config"
)

// ErrUnknownBackend is returned by Open for names nobody registered.
var ErrUnknownBackend = errors.New("unknown transcription backend")

// ProviderCreator builds a Transcriber from configuration.
type ProviderCreator func(cfg config.TranscriptionConfig, logger *zap.Logger) (api.Transcriber, error)

var (
	providerRegistry = make(map[string]ProviderCreator)
	registryMutex    sync.RWMutex
)

// RegisterProvider registers a provider creator function
func RegisterProvider(providerType string, creator ProviderCreator) {
	registryMutex.Lock()
	defer registryMutex.Unlock()
	providerRegistry[providerType] = creator
}

// GetProviderCreator returns the creator function for a provider type
func GetProviderCreator(providerType string) (ProviderCreator, error) {
	registryMutex.RLock()
	defer registryMutex.RUnlock()

	creator, ok := providerRegistry[providerType]
	if !ok {
		return nil, fmt.Errorf("%w %q (registered: %v)", ErrUnknownBackend, providerType, lo.Keys(providerRegistry))
	}
	return creator, nil
}

// ListRegisteredProviders returns all registered provider types, sorted
func ListRegisteredProviders() []string {
	registryMutex.RLock()
	defer registryMutex.RUnlock()

	providers := lo.Keys(providerRegistry)
	sort.Strings(providers)
	return providers
}

// Open creates the configured backend and, when it supports it, verifies it is ready.
// It is meant to run once at startup; the returned Transcriber is shared by all requests.
func Open(ctx context.Context, cfg config.TranscriptionConfig, logger *zap.Logger) (api.Transcriber, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	creator, err := GetProviderCreator(cfg.Backend)
	if err != nil {
		return nil, err
	}

	transcriber, err := creator(cfg, logger.Named(cfg.Backend))
	if err != nil {
		return nil, fmt.Errorf("failed to create %s backend: %w", cfg.Backend, err)
	}

	if checker, ok := transcriber.(api.HealthChecker); ok {
		if err := checker.HealthCheck(ctx); err != nil {
			return nil, fmt.Errorf("%s backend is not ready: %w", cfg.Backend, err)
		}
	}

	logger.Info("transcription backend ready",
		zap.String("backend", cfg.Backend),
		zap.String("model", cfg.Model),
	)
	return transcriber, nil
}
