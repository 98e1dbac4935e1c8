package files

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSiblingPath(t *testing.T) {
	tests := []struct {
		name  string
		input string
		ext   string
		want  string
	}{
		{name: "webm to wav", input: "/tmp/upload-1.webm", ext: ".wav", want: "/tmp/upload-1.wav"},
		{name: "no extension", input: "/tmp/upload", ext: ".wav", want: "/tmp/upload.wav"},
		{name: "dotted directory", input: "/tmp/a.b/upload.webm", ext: ".txt", want: "/tmp/a.b/upload.txt"},
		{name: "same extension", input: "clip.wav", ext: ".wav", want: "clip.wav"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SiblingPath(tt.input, tt.ext))
		})
	}
}

func TestRemoveIfExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))

	require.NoError(t, RemoveIfExists(path))
	assert.False(t, Exists(path))

	// second removal is a no-op
	assert.NoError(t, RemoveIfExists(path))
	assert.NoError(t, RemoveIfExists(""))
}

func TestReadOutputFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")
	require.NoError(t, os.WriteFile(path, []byte("  Bonjour tout le monde \n"), 0o600))

	got, err := ReadOutputFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Bonjour tout le monde", got)

	_, err = ReadOutputFile(filepath.Join(dir, "missing.txt"))
	assert.Error(t, err)
}
