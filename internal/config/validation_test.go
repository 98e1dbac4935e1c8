package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidateTimeout(t *testing.T) {
	assert.NoError(t, ValidateTimeout(time.Minute, "test"))
	assert.Error(t, ValidateTimeout(0, "test"))
	assert.Error(t, ValidateTimeout(-time.Second, "test"))
	assert.Error(t, ValidateTimeout(31*time.Minute, "test"))
}

func TestValidateAPIKey(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		keyType string
		wantErr bool
	}{
		{name: "valid openai", key: "sk-1234567890abcdef1234567890abcdef", keyType: "OpenAI"},
		{name: "openai wrong prefix", key: "pk-1234567890abcdef1234567890", keyType: "OpenAI", wantErr: true},
		{name: "openai too short", key: "sk-short", keyType: "OpenAI", wantErr: true},
		{name: "valid gemini", key: "AIzaTest-1234567890abcdef1234567890", keyType: "Gemini"},
		{name: "gemini too short", key: "AIzaShort", keyType: "Gemini", wantErr: true},
		{name: "empty", key: "", keyType: "OpenAI", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAPIKey(tt.key, tt.keyType)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateURL(t *testing.T) {
	assert.NoError(t, ValidateURL("http://localhost:8080", "x"))
	assert.NoError(t, ValidateURL("https://api.example.com", "x"))
	assert.Error(t, ValidateURL("", "x"))
	assert.Error(t, ValidateURL("ftp://example.com", "x"))
}
