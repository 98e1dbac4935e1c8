package audio

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/fabmdb/ai-order/internal/app/util/process"
)

// FFProbeOutput is the subset of `ffprobe -print_format json` output we read.
type FFProbeOutput struct {
	Streams []struct {
		CodecType  string `json:"codec_type"`
		CodecName  string `json:"codec_name"`
		SampleRate int    `json:"sample_rate,string"`
		Channels   int    `json:"channels"`
	} `json:"streams"`
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
}

// ProbeResult describes the first audio stream of a file.
type ProbeResult struct {
	Codec      string
	SampleRate int
	Channels   int
	Duration   float64 // seconds
}

// Probe runs ffprobe on filePath and reports its audio stream.
func Probe(ctx context.Context, ffprobePath, filePath string) (*ProbeResult, error) {
	if ffprobePath == "" {
		ffprobePath = "ffprobe"
	}
	result, err := process.Run(ctx, ffprobePath,
		"-v", "error",
		"-print_format", "json",
		"-show_streams",
		"-show_format",
		filePath,
	)
	if err != nil {
		return nil, err
	}
	return parseProbe(result.Stdout)
}

func parseProbe(data []byte) (*ProbeResult, error) {
	var out FFProbeOutput
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to parse ffprobe output: %w", err)
	}

	probe := &ProbeResult{}
	found := false
	for _, stream := range out.Streams {
		if stream.CodecType != "audio" {
			continue
		}
		probe.Codec = stream.CodecName
		probe.SampleRate = stream.SampleRate
		probe.Channels = stream.Channels
		found = true
		break
	}
	if !found {
		return nil, fmt.Errorf("no audio stream found")
	}

	duration, err := strconv.ParseFloat(out.Format.Duration, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid duration %q: %w", out.Format.Duration, err)
	}
	if math.IsNaN(duration) || duration < 0 {
		return nil, fmt.Errorf("invalid duration %q", out.Format.Duration)
	}
	probe.Duration = duration
	return probe, nil
}
