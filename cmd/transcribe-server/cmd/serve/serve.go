package serve

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fabmdb/ai-order/internal/app"
	"github.com/fabmdb/ai-order/internal/app/audio"
	"github.com/fabmdb/ai-order/internal/config"
)

var (
	host string
	port int
)

func init() {
	Cmd.Flags().StringVar(&host, "host", "", "Bind address (overrides HOST)")
	Cmd.Flags().IntVarP(&port, "port", "p", 0, "TCP port (overrides PORT)")
}

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the transcription HTTP server",
	Long: `Start the transcription HTTP server

- Loads .env, the optional YAML config file and environment variables
- Checks for ffmpeg and optionally installs it
- Opens the transcription backend once and serves until SIGINT or SIGTERM`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if host != "" {
			cfg.Server.Host = host
		}
		if port != 0 {
			cfg.Server.Port = port
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return run(ctx, cfg)
	},
}

func run(ctx context.Context, cfg *config.Config) error {
	application, cleanup, err := app.InitializeApplication(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	defer cleanup()

	logger := application.Logger
	if cfg.EnvFile != "" {
		logger.Info("loaded environment file", zap.String("path", cfg.EnvFile))
	}

	// Best effort: a missing ffmpeg only fails the requests that need it.
	if err := audio.EnsureFFmpeg(ctx, cfg.FFmpeg.Path, cfg.FFmpeg.AutoInstall, cfg.FFmpeg.InstallArgs(), logger); err != nil {
		logger.Warn("ffmpeg is not available", zap.Error(err))
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- application.Server.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	return application.Server.Shutdown(shutdownCtx)
}
