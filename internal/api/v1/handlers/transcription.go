package handlers

import (
	"context"
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fabmdb/ai-order/internal/api/errors"
	"github.com/fabmdb/ai-order/internal/api/middleware"
	"github.com/fabmdb/ai-order/internal/api/v1/services"
	"github.com/fabmdb/ai-order/internal/app/metrics"
)

// UploadField is the multipart field carrying the audio.
const UploadField = "file"

// TranscriptionHandler handles the transcription endpoint
type TranscriptionHandler struct {
	service services.TranscriptionService
	metrics *metrics.Metrics
	logger  *zap.Logger
}

// NewTranscriptionHandler creates a new transcription handler
func NewTranscriptionHandler(service services.TranscriptionService, m *metrics.Metrics, logger *zap.Logger) *TranscriptionHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TranscriptionHandler{
		service: service,
		metrics: m,
		logger:  logger,
	}
}

// Transcribe handles POST /transcribe
//
// @Summary Transcribe an audio file
// @Description Uploads an audio recording, converts it to 16kHz mono WAV and returns its French transcription.
// @Tags transcriptions
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Audio file to transcribe"
// @Success 200 {object} dto.TranscriptionResponse "Transcription text"
// @Failure 400 {object} errors.APIError "No audio file provided, or the file is too large"
// @Failure 500 {object} errors.APIError "Audio conversion or transcription failed"
// @Header all {string} X-Request-ID "Request identifier"
// @Router /transcribe [post]
func (h *TranscriptionHandler) Transcribe(c *gin.Context) {
	fileHeader, err := c.FormFile(UploadField)
	if err != nil {
		h.reject(c, err)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.reject(c, err)
		return
	}
	defer file.Close()

	// The pipeline runs to completion even if the client disconnects, so its
	// temp files are always cleaned up by the pipeline itself.
	ctx := context.WithoutCancel(c.Request.Context())

	response, err := h.service.Transcribe(ctx, file)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *TranscriptionHandler) reject(c *gin.Context, err error) {
	if h.metrics != nil {
		h.metrics.RecordRequest(metrics.OutcomeMissingFile)
	}

	var maxErr *http.MaxBytesError
	if stderrors.As(err, &maxErr) {
		h.logger.Info("upload rejected", zap.Int64("limit_bytes", maxErr.Limit))
		middleware.HandleError(c, errors.NewTooLargeError(services.MsgUploadTooLarge))
		return
	}

	middleware.HandleError(c, errors.NewBadRequestError(services.MsgNoAudioFile))
}
