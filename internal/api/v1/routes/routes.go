package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fabmdb/ai-order/internal/api/middleware"
	"github.com/fabmdb/ai-order/internal/api/v1/handlers"
	"github.com/fabmdb/ai-order/internal/api/v1/services"
	"github.com/fabmdb/ai-order/internal/app/metrics"
)

// ServiceContainer holds all services needed by handlers
type ServiceContainer struct {
	TranscriptionService services.TranscriptionService
	Metrics              *metrics.Metrics
	Logger               *zap.Logger
	MaxUploadBytes       int64
}

// RegisterRoutes registers the service routes on router
func RegisterRoutes(router gin.IRoutes, container *ServiceContainer) {
	transcriptionHandler := handlers.NewTranscriptionHandler(
		container.TranscriptionService,
		container.Metrics,
		container.Logger,
	)
	router.POST("/transcribe", middleware.BodyLimit(container.MaxUploadBytes), transcriptionHandler.Transcribe)
	router.GET("/health", handlers.Health)
}
