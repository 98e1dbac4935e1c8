package transcribe

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	apierrors "github.com/fabmdb/ai-order/internal/api/errors"
	"github.com/fabmdb/ai-order/internal/api/v1/services"
	"github.com/fabmdb/ai-order/internal/app"
	"github.com/fabmdb/ai-order/internal/config"
)

// Cmd represents the transcribe command
var Cmd = &cobra.Command{
	Use:   "transcribe <audio-file>",
	Short: "Transcribe a local audio file and print the JSON result",
	Long: `Transcribe a local audio file and print the JSON result

Runs the same pipeline as POST /transcribe: the file is copied into a temporary
session, converted to WAV, transcribed in French and every temporary file removed.
The output is the response body the server would return.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		application, cleanup, err := app.InitializeApplication(cmd.Context(), cfg)
		if err != nil {
			return fmt.Errorf("failed to initialize: %w", err)
		}
		defer cleanup()

		return Run(cmd, application.Service, args[0])
	},
}

// Run transcribes path with service and writes the JSON body to cmd's output.
func Run(cmd *cobra.Command, service services.TranscriptionService, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	response, err := service.Transcribe(cmd.Context(), file)
	if err != nil {
		_ = writeJSON(cmd.OutOrStdout(), apierrors.AsAPIError(err))
		return err
	}
	return writeJSON(cmd.OutOrStdout(), response)
}

func writeJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
