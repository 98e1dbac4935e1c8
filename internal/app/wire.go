//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/google/wire"

	"github.com/fabmdb/ai-order/internal/api/server"
	"github.com/fabmdb/ai-order/internal/api/v1/services"
	"github.com/fabmdb/ai-order/internal/app/metrics"
	"github.com/fabmdb/ai-order/internal/config"
)

// InitializeApplication assembles config, logger, metrics, transcoder, model, service and server.
func InitializeApplication(ctx context.Context, cfg *config.Config) (*Application, func(), error) {
	wire.Build(
		provideLogger,
		metrics.NewMetrics,
		provideTranscoder,
		provideTranscriber,
		provideServiceOptions,
		services.NewTranscriptionService,
		wire.Bind(new(services.TranscriptionService), new(*services.TranscriptionServiceImpl)),
		server.NewServer,
		wire.Struct(new(Application), "*"),
	)
	return nil, nil, nil
}
