package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/fabmdb/ai-order/cmd/transcribe-server/cmd/serve"
	"github.com/fabmdb/ai-order/cmd/transcribe-server/cmd/transcribe"
	"github.com/fabmdb/ai-order/cmd/transcribe-server/cmd/version"
)

var configFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "transcribe-server",
	Short: "HTTP service that transcribes uploaded French audio",
	Long: `HTTP service that transcribes uploaded French audio.

- POST an audio file as multipart field "file" to /transcribe
- The upload is converted to 16kHz mono WAV with ffmpeg
- The WAV is transcribed by the configured speech model
- Running without a subcommand starts the server`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if configFile != "" {
			return os.Setenv("CONFIG_FILE", configFile)
		}
		return nil
	},
	RunE:          serve.Cmd.RunE,
	SilenceUsage:  true,
	SilenceErrors: false,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serve.Cmd)
	rootCmd.AddCommand(transcribe.Cmd)
	rootCmd.AddCommand(version.Cmd)

	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "YAML config file (overrides CONFIG_FILE)")
}
