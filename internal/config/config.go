package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the complete service configuration.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Log           LogConfig           `yaml:"log"`
	Uploads       UploadConfig        `yaml:"uploads"`
	FFmpeg        FFmpegConfig        `yaml:"ffmpeg"`
	Transcription TranscriptionConfig `yaml:"transcription"`

	// EnvFile is the .env file that was loaded, if any.
	EnvFile string `yaml:"-"`
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Host            string        `yaml:"host" validate:"omitempty,ip|hostname"`
	Port            int           `yaml:"port" validate:"min=1,max=65535"`
	Environment     string        `yaml:"environment" validate:"oneof=development production test"`
	ReadTimeout     time.Duration `yaml:"read_timeout" validate:"gte=0"`
	WriteTimeout    time.Duration `yaml:"write_timeout" validate:"gte=0"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" validate:"gte=0"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" validate:"gt=0"`
}

// Addr returns the host:port listen address.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// IsProduction reports whether the service runs in production mode.
func (s ServerConfig) IsProduction() bool {
	return s.Environment == "production"
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
}

// UploadConfig controls where uploads are stored and how large they may be.
type UploadConfig struct {
	TempDir     string `yaml:"temp_dir"`
	MaxUploadMB int    `yaml:"max_upload_mb" validate:"min=1,max=1024"`
}

// MaxUploadBytes returns the upload limit in bytes.
func (u UploadConfig) MaxUploadBytes() int64 {
	return int64(u.MaxUploadMB) << 20
}

// FFmpegConfig locates the transcoder and controls startup provisioning.
type FFmpegConfig struct {
	Path           string `yaml:"path" validate:"required"`
	ProbePath      string `yaml:"probe_path"`
	AutoInstall    bool   `yaml:"auto_install"`
	InstallCommand string `yaml:"install_command"`
}

// InstallArgs splits InstallCommand into an argument vector.
func (f FFmpegConfig) InstallArgs() []string {
	return strings.Fields(f.InstallCommand)
}

// TranscriptionConfig selects and configures the speech model backend.
type TranscriptionConfig struct {
	Backend       string              `yaml:"backend" validate:"required"`
	Model         string              `yaml:"model" validate:"required"`
	WhisperCpp    WhisperCppConfig    `yaml:"whisper_cpp"`
	WhisperServer WhisperServerConfig `yaml:"whisper_server"`
	OpenAI        OpenAIConfig        `yaml:"openai"`
	Gemini        GeminiConfig        `yaml:"gemini"`
	ElevenLabs    ElevenLabsConfig    `yaml:"elevenlabs"`
}

// WhisperCppConfig configures the local whisper.cpp CLI backend.
type WhisperCppConfig struct {
	BinaryPath    string `yaml:"binary_path"`
	ModelsDir     string `yaml:"models_dir"`
	ModelPath     string `yaml:"model_path"`
	Threads       int    `yaml:"threads" validate:"gte=0"`
	MaxConcurrent int    `yaml:"max_concurrent" validate:"gte=0,lte=100"`
}

// WhisperServerConfig configures the whisper.cpp server backend.
type WhisperServerConfig struct {
	BaseURL       string            `yaml:"base_url"`
	InferencePath string            `yaml:"inference_path"`
	Timeout       time.Duration     `yaml:"timeout" validate:"gte=0"`
	CustomHeaders map[string]string `yaml:"custom_headers"`
}

// OpenAIConfig configures the OpenAI transcription backend.
type OpenAIConfig struct {
	APIKey  string `yaml:"api_key"`
	BaseURL string `yaml:"base_url"`
	Model   string `yaml:"model"`
}

// GeminiConfig configures the Gemini transcription backend.
type GeminiConfig struct {
	APIKey  string `yaml:"api_key"`
	BaseURL string `yaml:"base_url"`
	Model   string `yaml:"model"`
}

// ElevenLabsConfig configures the ElevenLabs speech-to-text backend.
type ElevenLabsConfig struct {
	APIKey  string        `yaml:"api_key"`
	BaseURL string        `yaml:"base_url"`
	Model   string        `yaml:"model"`
	Timeout time.Duration `yaml:"timeout" validate:"gte=0"`
}

// Load builds the configuration from defaults, an optional YAML file named by
// CONFIG_FILE, and environment variables, in increasing order of precedence.
func Load() (*Config, error) {
	envFile, err := LoadEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	cfg := Defaults()
	cfg.EnvFile = envFile

	if path := strings.TrimSpace(os.Getenv("CONFIG_FILE")); path != "" {
		if err := cfg.LoadFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFile merges the YAML document at path into c.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	var err error
	set := func(key string, fn func(string) error) {
		if err != nil {
			return
		}
		value, ok := os.LookupEnv(key)
		if !ok || strings.TrimSpace(value) == "" {
			return
		}
		if fnErr := fn(strings.TrimSpace(value)); fnErr != nil {
			err = fmt.Errorf("invalid %s: %w", key, fnErr)
		}
	}

	set("HOST", str(&c.Server.Host))
	set("PORT", integer(&c.Server.Port))
	set("ENVIRONMENT", str(&c.Server.Environment))
	set("READ_TIMEOUT", duration(&c.Server.ReadTimeout))
	set("WRITE_TIMEOUT", duration(&c.Server.WriteTimeout))
	set("IDLE_TIMEOUT", duration(&c.Server.IdleTimeout))
	set("SHUTDOWN_TIMEOUT", duration(&c.Server.ShutdownTimeout))

	set("LOG_LEVEL", str(&c.Log.Level))

	set("TEMP_DIR", str(&c.Uploads.TempDir))
	set("MAX_UPLOAD_MB", integer(&c.Uploads.MaxUploadMB))

	set("FFMPEG_PATH", str(&c.FFmpeg.Path))
	set("FFPROBE_PATH", str(&c.FFmpeg.ProbePath))
	set("FFMPEG_AUTO_INSTALL", boolean(&c.FFmpeg.AutoInstall))
	set("FFMPEG_INSTALL_COMMAND", str(&c.FFmpeg.InstallCommand))

	set("TRANSCRIPTION_BACKEND", str(&c.Transcription.Backend))
	set("WHISPER_MODEL", str(&c.Transcription.Model))
	set("WHISPER_CPP_BINARY", str(&c.Transcription.WhisperCpp.BinaryPath))
	set("WHISPER_CPP_MODELS_DIR", str(&c.Transcription.WhisperCpp.ModelsDir))
	set("WHISPER_CPP_MODEL", str(&c.Transcription.WhisperCpp.ModelPath))
	set("WHISPER_CPP_THREADS", integer(&c.Transcription.WhisperCpp.Threads))
	set("WHISPER_CPP_MAX_CONCURRENT", integer(&c.Transcription.WhisperCpp.MaxConcurrent))
	set("WHISPER_SERVER_URL", str(&c.Transcription.WhisperServer.BaseURL))
	set("WHISPER_SERVER_TIMEOUT", duration(&c.Transcription.WhisperServer.Timeout))
	set("OPENAI_API_KEY", str(&c.Transcription.OpenAI.APIKey))
	set("OPENAI_BASE_URL", str(&c.Transcription.OpenAI.BaseURL))
	set("OPENAI_TRANSCRIPTION_MODEL", str(&c.Transcription.OpenAI.Model))
	set("GEMINI_API_KEY", str(&c.Transcription.Gemini.APIKey))
	set("GEMINI_BASE_URL", str(&c.Transcription.Gemini.BaseURL))
	set("GEMINI_MODEL", str(&c.Transcription.Gemini.Model))
	set("ELEVENLABS_API_KEY", str(&c.Transcription.ElevenLabs.APIKey))
	set("ELEVENLABS_BASE_URL", str(&c.Transcription.ElevenLabs.BaseURL))
	set("ELEVENLABS_MODEL", str(&c.Transcription.ElevenLabs.Model))

	return err
}

func str(dst *string) func(string) error {
	return func(v string) error {
		*dst = v
		return nil
	}
}

func integer(dst *int) func(string) error {
	return func(v string) error {
		n, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		*dst = n
		return nil
	}
}

func boolean(dst *bool) func(string) error {
	return func(v string) error {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return err
		}
		*dst = b
		return nil
	}
}

func duration(dst *time.Duration) func(string) error {
	return func(v string) error {
		d, err := time.ParseDuration(v)
		if err != nil {
			return err
		}
		*dst = d
		return nil
	}
}
