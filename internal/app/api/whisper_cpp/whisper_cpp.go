package whisper_cpp

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/fabmdb/ai-order/internal/app/api"
	"github.com/fabmdb/ai-order/internal/app/util/files"
	"github.com/fabmdb/ai-order/internal/app/util/process"
)

const backendName = "whisper_cpp"

// LocalProviderConfig configures LocalTranscriber.
type LocalProviderConfig struct {
	BinaryPath    string
	ModelPath     string
	Threads       int
	MaxConcurrent int
}

// LocalTranscriber implements local transcription, using local binary commands.
type LocalTranscriber struct {
	config LocalProviderConfig
	slots  chan struct{}
	logger *zap.Logger
}

// NewLocalTranscriber creates a new instance of LocalTranscriber.
func NewLocalTranscriber(config LocalProviderConfig, logger *zap.Logger) *LocalTranscriber {
	if logger == nil {
		logger = zap.NewNop()
	}
	lt := &LocalTranscriber{config: config, logger: logger}
	if config.MaxConcurrent > 0 {
		lt.slots = make(chan struct{}, config.MaxConcurrent)
	}
	return lt
}

// ModelFile maps a model size name such as "base" to its ggml file inside modelsDir.
func ModelFile(modelsDir, model string) string {
	if strings.HasSuffix(model, ".bin") {
		return filepath.Join(modelsDir, model)
	}
	return filepath.Join(modelsDir, "ggml-"+model+".bin")
}

// BuildArgs returns the whisper.cpp arguments for one transcription.
func (lt *LocalTranscriber) BuildArgs(inputFilePath, language, outputPrefix string) []string {
	args := []string{
		"-m", lt.config.ModelPath,
		"-l", language,
		"-nt",
		"-np",
		"-otxt",
		"-f", inputFilePath,
		"-of", outputPrefix,
	}
	if lt.config.Threads > 0 {
		args = append(args, "-t", strconv.Itoa(lt.config.Threads))
	}
	return args
}

// Transcript runs whisper.cpp on a 16kHz WAV file and returns the recognized text.
// The text output is written next to the input and removed before returning.
func (lt *LocalTranscriber) Transcript(ctx context.Context, inputFilePath string, language string) (string, error) {
	if _, err := os.Stat(inputFilePath); err != nil {
		return "", api.NewTranscriptionError(backendName, err, "input file not available")
	}

	if lt.slots != nil {
		select {
		case lt.slots <- struct{}{}:
			defer func() { <-lt.slots }()
		case <-ctx.Done():
			return "", api.NewTranscriptionError(backendName, ctx.Err(), "transcription aborted")
		}
	}

	outputPrefix := files.SiblingPath(inputFilePath, "")
	outputFile := outputPrefix + ".txt"
	defer func() {
		if err := files.RemoveIfExists(outputFile); err != nil {
			lt.logger.Warn("failed to remove transcription output", zap.String("path", outputFile), zap.Error(err))
		}
	}()

	args := lt.BuildArgs(inputFilePath, language, outputPrefix)
	lt.logger.Debug("running whisper.cpp",
		zap.String("command", lt.config.BinaryPath+" "+strings.Join(args, " ")),
	)

	result, err := process.Run(ctx, lt.config.BinaryPath, args...)
	if err != nil {
		stderr := ""
		if result != nil {
			stderr = strings.TrimSpace(string(result.Stderr))
		}
		lt.logger.Error("whisper.cpp failed", zap.Error(err), zap.String("stderr", stderr))
		return "", api.NewTranscriptionError(backendName, err, "whisper.cpp execution failed")
	}

	output, err := files.ReadOutputFile(outputFile)
	if err != nil {
		return "", api.NewTranscriptionError(backendName, err, "failed to read whisper.cpp output")
	}

	lt.logger.Debug("whisper.cpp completed", zap.Duration("took", result.Duration))
	return output, nil
}

// ValidateConfiguration checks that the binary and model file exist.
func (lt *LocalTranscriber) ValidateConfiguration() error {
	if _, err := exec.LookPath(lt.config.BinaryPath); err != nil {
		return fmt.Errorf("whisper.cpp binary not found at %s: %w", lt.config.BinaryPath, err)
	}
	if _, err := os.Stat(lt.config.ModelPath); err != nil {
		return fmt.Errorf("whisper model not found at %s: %w", lt.config.ModelPath, err)
	}
	return nil
}

// HealthCheck validates the configuration; it runs once when the backend is opened.
func (lt *LocalTranscriber) HealthCheck(ctx context.Context) error {
	return lt.ValidateConfiguration()
}
