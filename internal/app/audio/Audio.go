package audio

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/fabmdb/ai-order/internal/app/util/files"
	"github.com/fabmdb/ai-order/internal/app/util/process"
)

// Container is the file suffix identifying an audio container.
type Container string

const (
	ContainerWAV  Container = ".wav"
	ContainerWebM Container = ".webm"
)

// Transcoder converts an audio file into another container.
type Transcoder interface {
	// Convert writes OutputPath(inputPath, container) and returns that path.
	Convert(ctx context.Context, inputPath string, container Container) (string, error)
}

// ConversionError is returned when the external transcoder fails.
type ConversionError struct {
	InputPath string
	ExitCode  int
	Stderr    string
	Err       error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("audio conversion of %s failed (exit code %d): %v", e.InputPath, e.ExitCode, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// OutputPath is the sibling of inputPath carrying the container's suffix.
func OutputPath(inputPath string, container Container) string {
	return files.SiblingPath(inputPath, string(container))
}

// FFmpegTranscoder converts audio by running the ffmpeg binary.
type FFmpegTranscoder struct {
	binaryPath string
	logger     *zap.Logger
}

// NewFFmpegTranscoder creates a transcoder that runs binaryPath ("ffmpeg" when empty).
func NewFFmpegTranscoder(binaryPath string, logger *zap.Logger) *FFmpegTranscoder {
	if binaryPath == "" {
		binaryPath = "ffmpeg"
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FFmpegTranscoder{binaryPath: binaryPath, logger: logger}
}

// ConvertCommand returns the ffmpeg arguments producing 16kHz mono PCM from input.
func ConvertCommand(inputPath, outputPath string) []string {
	return []string{
		"-y",
		"-hide_banner",
		"-loglevel", "error",
		"-i", inputPath,
		"-vn",
		"-acodec", "pcm_s16le",
		"-ar", "16000",
		"-ac", "1",
		outputPath,
	}
}

// Convert runs ffmpeg on inputPath. Any partial output is removed on failure.
func (t *FFmpegTranscoder) Convert(ctx context.Context, inputPath string, container Container) (string, error) {
	if container != ContainerWAV {
		return "", &ConversionError{InputPath: inputPath, ExitCode: -1, Err: fmt.Errorf("unsupported target container %q", container)}
	}

	outputPath := OutputPath(inputPath, container)
	if outputPath == inputPath {
		return "", &ConversionError{InputPath: inputPath, ExitCode: -1, Err: errors.New("input already uses the target container suffix")}
	}

	t.logger.Debug("converting audio", zap.String("input", inputPath), zap.String("output", outputPath))

	result, err := process.Run(ctx, t.binaryPath, ConvertCommand(inputPath, outputPath)...)
	if err != nil {
		if rmErr := files.RemoveIfExists(outputPath); rmErr != nil {
			t.logger.Warn("failed to remove partial conversion output", zap.String("path", outputPath), zap.Error(rmErr))
		}
		convErr := &ConversionError{InputPath: inputPath, ExitCode: -1, Err: err}
		if result != nil {
			convErr.ExitCode = result.ExitCode
			convErr.Stderr = strings.TrimSpace(string(result.Stderr))
		}
		return "", convErr
	}

	t.logger.Debug("audio conversion completed",
		zap.String("output", outputPath),
		zap.Duration("took", result.Duration),
	)
	return outputPath, nil
}
