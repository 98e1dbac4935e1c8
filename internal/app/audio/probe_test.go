package audio

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const canonicalProbe = `{
  "streams": [
    {"codec_type": "audio", "codec_name": "pcm_s16le", "sample_rate": "16000", "channels": 1}
  ],
  "format": {"duration": "2.500000"}
}`

func TestParseProbe(t *testing.T) {
	tests := []struct {
		name    string
		output  string
		want    *ProbeResult
		wantErr string
	}{
		{
			name:   "canonical wav",
			output: canonicalProbe,
			want:   &ProbeResult{Codec: "pcm_s16le", SampleRate: 16000, Channels: 1, Duration: 2.5},
		},
		{
			name: "video stream first",
			output: `{"streams":[{"codec_type":"video","codec_name":"vp9"},
				{"codec_type":"audio","codec_name":"opus","sample_rate":"48000","channels":2}],
				"format":{"duration":"12"}}`,
			want: &ProbeResult{Codec: "opus", SampleRate: 48000, Channels: 2, Duration: 12},
		},
		{
			name:    "no audio stream",
			output:  `{"streams":[{"codec_type":"video","codec_name":"vp9"}],"format":{"duration":"1"}}`,
			wantErr: "no audio stream",
		},
		{
			name:    "missing duration",
			output:  `{"streams":[{"codec_type":"audio","codec_name":"opus","sample_rate":"48000"}],"format":{}}`,
			wantErr: "invalid duration",
		},
		{
			name:    "negative duration",
			output:  `{"streams":[{"codec_type":"audio","codec_name":"opus","sample_rate":"48000"}],"format":{"duration":"-1"}}`,
			wantErr: "invalid duration",
		},
		{
			name:    "not json",
			output:  "30\n",
			wantErr: "failed to parse ffprobe output",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseProbe([]byte(tt.output))
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProbe_RunsBinary(t *testing.T) {
	binary := writeScript(t, "cat <<'JSON'\n"+canonicalProbe+"\nJSON\n")

	got, err := Probe(context.Background(), binary, "/tmp/clip.wav")
	require.NoError(t, err)
	assert.Equal(t, 16000, got.SampleRate)
	assert.InDelta(t, 2.5, got.Duration, 1e-9)
}

func TestProbe_Failure(t *testing.T) {
	binary := writeScript(t, "echo 'clip.wav: Invalid data' >&2\nexit 1\n")

	_, err := Probe(context.Background(), binary, "/tmp/clip.wav")
	assert.Error(t, err)
}
