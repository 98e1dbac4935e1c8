package config

import "time"

// Default configuration constants
const (
	// Server defaults
	DefaultHost            = "0.0.0.0"
	DefaultPort            = 8000
	DefaultEnvironment     = "development"
	DefaultReadTimeout     = 30 * time.Second
	DefaultWriteTimeout    = 10 * time.Minute
	DefaultIdleTimeout     = 120 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	// Upload defaults
	DefaultMaxUploadMB = 25

	// Transcoder defaults
	DefaultFFmpegPath  = "ffmpeg"
	DefaultFFprobePath = "ffprobe"

	// Backend defaults
	DefaultBackend              = "whisper_cpp"
	DefaultWhisperModel         = "base"
	DefaultWhisperCppBinary     = "whisper-cli"
	DefaultWhisperCppModelsDir  = "./models"
	DefaultWhisperServerURL     = "http://127.0.0.1:8080"
	DefaultWhisperServerTimeout = 5 * time.Minute
	DefaultOpenAIModel          = "whisper-1"
	DefaultGeminiModel          = "gemini-2.5-flash"
	DefaultElevenLabsModel      = "scribe_v1"
	DefaultElevenLabsTimeout    = 5 * time.Minute

	// Logging defaults
	DefaultLogLevel = "info"
)

// DefaultInstallCommand is the package-manager invocation used to provision ffmpeg.
const DefaultInstallCommand = "nix-env -iA nixpkgs.ffmpeg"

// Defaults returns a Config populated with the built-in defaults.
func Defaults() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            DefaultHost,
			Port:            DefaultPort,
			Environment:     DefaultEnvironment,
			ReadTimeout:     DefaultReadTimeout,
			WriteTimeout:    DefaultWriteTimeout,
			IdleTimeout:     DefaultIdleTimeout,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
		Uploads: UploadConfig{
			MaxUploadMB: DefaultMaxUploadMB,
		},
		FFmpeg: FFmpegConfig{
			Path:           DefaultFFmpegPath,
			ProbePath:      DefaultFFprobePath,
			InstallCommand: DefaultInstallCommand,
		},
		Transcription: TranscriptionConfig{
			Backend: DefaultBackend,
			Model:   DefaultWhisperModel,
			WhisperCpp: WhisperCppConfig{
				BinaryPath: DefaultWhisperCppBinary,
				ModelsDir:  DefaultWhisperCppModelsDir,
			},
			WhisperServer: WhisperServerConfig{
				BaseURL: DefaultWhisperServerURL,
				Timeout: DefaultWhisperServerTimeout,
			},
			OpenAI: OpenAIConfig{
				Model: DefaultOpenAIModel,
			},
			Gemini: GeminiConfig{
				Model: DefaultGeminiModel,
			},
			ElevenLabs: ElevenLabsConfig{
				Model:   DefaultElevenLabsModel,
				Timeout: DefaultElevenLabsTimeout,
			},
		},
	}
}
