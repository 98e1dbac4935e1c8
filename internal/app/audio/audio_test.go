package audio

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeScript creates an executable shell script standing in for an external binary.
func writeScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fake-bin")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o755))
	return path
}

// fakeFFmpeg copies the -i input to the last argument, or fails when the input contains "corrupt".
const fakeFFmpeg = `
in=""
out=""
while [ $# -gt 0 ]; do
  if [ "$1" = "-i" ]; then shift; in="$1"; fi
  out="$1"
  shift
done
if grep -q corrupt "$in"; then
  echo "Invalid data found when processing input" >&2
  : > "$out"
  exit 1
fi
cp "$in" "$out"
`

func TestOutputPath(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		container Container
		want      string
	}{
		{name: "webm to wav", input: "/tmp/upload-abc.webm", container: ContainerWAV, want: "/tmp/upload-abc.wav"},
		{name: "wav to webm", input: "/tmp/upload-abc.wav", container: ContainerWebM, want: "/tmp/upload-abc.webm"},
		{name: "no extension", input: "/tmp/upload-abc", container: ContainerWAV, want: "/tmp/upload-abc.wav"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OutputPath(tt.input, tt.container))
		})
	}
}

func TestConvertCommand(t *testing.T) {
	args := ConvertCommand("in.webm", "out.wav")
	assert.Equal(t, "-y", args[0])
	assert.Equal(t, "out.wav", args[len(args)-1])
	assert.Contains(t, args, "pcm_s16le")
	assert.Contains(t, args, "16000")

	for i, arg := range args {
		if arg == "-i" {
			assert.Equal(t, "in.webm", args[i+1])
		}
	}
}

func TestFFmpegTranscoder_Convert(t *testing.T) {
	binary := writeScript(t, fakeFFmpeg)

	t.Run("success writes sibling wav", func(t *testing.T) {
		dir := t.TempDir()
		input := filepath.Join(dir, "upload.webm")
		require.NoError(t, os.WriteFile(input, []byte("webm-bytes"), 0o600))

		out, err := NewFFmpegTranscoder(binary, nil).Convert(context.Background(), input, ContainerWAV)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "upload.wav"), out)

		data, err := os.ReadFile(out)
		require.NoError(t, err)
		assert.Equal(t, "webm-bytes", string(data))
	})

	t.Run("non-zero exit returns ConversionError and removes partial output", func(t *testing.T) {
		dir := t.TempDir()
		input := filepath.Join(dir, "upload.webm")
		require.NoError(t, os.WriteFile(input, []byte("corrupt"), 0o600))

		out, err := NewFFmpegTranscoder(binary, nil).Convert(context.Background(), input, ContainerWAV)
		require.Error(t, err)
		assert.Empty(t, out)

		var convErr *ConversionError
		require.True(t, errors.As(err, &convErr))
		assert.Equal(t, 1, convErr.ExitCode)
		assert.Equal(t, input, convErr.InputPath)
		assert.Contains(t, convErr.Stderr, "Invalid data")

		_, statErr := os.Stat(filepath.Join(dir, "upload.wav"))
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("missing binary", func(t *testing.T) {
		dir := t.TempDir()
		input := filepath.Join(dir, "upload.webm")
		require.NoError(t, os.WriteFile(input, []byte("x"), 0o600))

		_, err := NewFFmpegTranscoder(filepath.Join(dir, "nope"), nil).Convert(context.Background(), input, ContainerWAV)
		var convErr *ConversionError
		require.True(t, errors.As(err, &convErr))
		assert.Equal(t, -1, convErr.ExitCode)
	})

	t.Run("unsupported container", func(t *testing.T) {
		_, err := NewFFmpegTranscoder(binary, nil).Convert(context.Background(), "/tmp/a.wav", ContainerWebM)
		var convErr *ConversionError
		assert.True(t, errors.As(err, &convErr))
	})

	t.Run("input already wav", func(t *testing.T) {
		_, err := NewFFmpegTranscoder(binary, nil).Convert(context.Background(), "/tmp/a.wav", ContainerWAV)
		assert.Error(t, err)
	})
}

func TestEnsureFFmpeg(t *testing.T) {
	ok := writeScript(t, "exit 0\n")
	missing := filepath.Join(t.TempDir(), "missing-ffmpeg")

	t.Run("present binary", func(t *testing.T) {
		assert.NoError(t, EnsureFFmpeg(context.Background(), ok, false, nil, nil))
	})

	t.Run("missing without auto install", func(t *testing.T) {
		assert.Error(t, EnsureFFmpeg(context.Background(), missing, false, nil, nil))
	})

	t.Run("install command fails", func(t *testing.T) {
		failing := writeScript(t, "echo no nix >&2\nexit 127\n")
		err := EnsureFFmpeg(context.Background(), missing, true, []string{failing}, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "installation failed")
	})

	t.Run("install command provides binary", func(t *testing.T) {
		target := filepath.Join(t.TempDir(), "ffmpeg")
		installer := writeScript(t, "printf '#!/bin/sh\\nexit 0\\n' > "+target+"\nchmod +x "+target+"\n")
		assert.NoError(t, EnsureFFmpeg(context.Background(), target, true, []string{installer}, nil))
	})
}
