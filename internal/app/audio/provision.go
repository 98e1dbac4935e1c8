package audio

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/fabmdb/ai-order/internal/app/util/process"
)

// DefaultInstallCommand installs ffmpeg through nix.
var DefaultInstallCommand = []string{"nix-env", "-iA", "nixpkgs.ffmpeg"}

// CheckFFmpeg runs "<binary> -version" to confirm the transcoder is usable.
func CheckFFmpeg(ctx context.Context, binaryPath string) error {
	if _, err := process.Run(ctx, binaryPath, "-version"); err != nil {
		return fmt.Errorf("ffmpeg not available at %q: %w", binaryPath, err)
	}
	return nil
}

// EnsureFFmpeg checks for ffmpeg and, when autoInstall is set, runs installCommand once
// if it is missing. Failures are reported to the caller, which decides whether they matter.
func EnsureFFmpeg(ctx context.Context, binaryPath string, autoInstall bool, installCommand []string, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	checkErr := CheckFFmpeg(ctx, binaryPath)
	if checkErr == nil {
		return nil
	}
	if !autoInstall {
		return checkErr
	}
	if len(installCommand) == 0 {
		installCommand = DefaultInstallCommand
	}

	logger.Warn("ffmpeg not found, attempting installation",
		zap.String("binary", binaryPath),
		zap.String("command", strings.Join(installCommand, " ")),
	)

	result, err := process.Run(ctx, installCommand[0], installCommand[1:]...)
	if err != nil {
		stderr := ""
		if result != nil {
			stderr = strings.TrimSpace(string(result.Stderr))
		}
		return fmt.Errorf("ffmpeg installation failed: %w (stderr: %s)", err, stderr)
	}

	return CheckFFmpeg(ctx, binaryPath)
}
