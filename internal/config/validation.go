package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks struct constraints and the settings required by the selected backend.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			msgs := make([]string, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				msgs = append(msgs, fmt.Sprintf("%s failed on '%s'", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("invalid configuration: %w", err)
	}

	t := c.Transcription
	switch t.Backend {
	case "whisper_cpp":
		if t.WhisperCpp.BinaryPath == "" {
			return errors.New("whisper_cpp backend requires a binary path (WHISPER_CPP_BINARY)")
		}
		if t.WhisperCpp.ModelPath == "" && t.WhisperCpp.ModelsDir == "" {
			return errors.New("whisper_cpp backend requires WHISPER_CPP_MODEL or WHISPER_CPP_MODELS_DIR")
		}
	case "whisper_server":
		if err := ValidateURL(t.WhisperServer.BaseURL, "whisper_server"); err != nil {
			return err
		}
		if t.WhisperServer.Timeout != 0 {
			if err := ValidateTimeout(t.WhisperServer.Timeout, "whisper_server"); err != nil {
				return err
			}
		}
	case "openai":
		if err := ValidateAPIKey(t.OpenAI.APIKey, "OpenAI"); err != nil {
			return err
		}
		if t.OpenAI.BaseURL != "" {
			if err := ValidateURL(t.OpenAI.BaseURL, "OpenAI base"); err != nil {
				return err
			}
		}
	case "gemini":
		if err := ValidateAPIKey(t.Gemini.APIKey, "Gemini"); err != nil {
			return err
		}
	case "elevenlabs":
		if err := ValidateAPIKey(t.ElevenLabs.APIKey, "ElevenLabs"); err != nil {
			return err
		}
		if t.ElevenLabs.BaseURL != "" {
			if err := ValidateURL(t.ElevenLabs.BaseURL, "ElevenLabs base"); err != nil {
				return err
			}
		}
	}

	return nil
}

// ValidateTimeout validates timeout duration
func ValidateTimeout(timeout time.Duration, name string) error {
	if timeout <= 0 {
		return fmt.Errorf("%s timeout must be positive", name)
	}
	if timeout > 30*time.Minute {
		return fmt.Errorf("%s timeout too large (max 30 minutes)", name)
	}
	return nil
}

// ValidateAPIKey validates API key format
func ValidateAPIKey(apiKey string, keyType string) error {
	if apiKey == "" {
		return fmt.Errorf("%s API key is required", keyType)
	}

	switch keyType {
	case "OpenAI":
		if !strings.HasPrefix(apiKey, "sk-") {
			return fmt.Errorf("invalid OpenAI API key format: must start with 'sk-'")
		}
		if len(apiKey) < 20 {
			return fmt.Errorf("invalid OpenAI API key format: too short")
		}
	case "Gemini":
		if !strings.HasPrefix(apiKey, "AIza") {
			return fmt.Errorf("invalid Gemini API key format: must start with 'AIza'")
		}
		if len(apiKey) < 30 {
			return fmt.Errorf("invalid Gemini API key format: too short")
		}
	}

	return nil
}

// ValidateURL validates URL format
func ValidateURL(url string, name string) error {
	if url == "" {
		return fmt.Errorf("%s URL is required", name)
	}

	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return fmt.Errorf("%s URL must start with http:// or https://", name)
	}

	return nil
}
