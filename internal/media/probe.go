// Package media probes video files for the metadata the console needs
// (dimensions and duration, no full decode) and enforces the mask/original
// compatibility rules.
package media

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// VideoInfo is the probed metadata of one video file.
type VideoInfo struct {
	Width    int
	Height   int
	Duration float64 // seconds
}

// AspectRatio returns width/height, or 0 when the height is unknown.
func (v VideoInfo) AspectRatio() float64 {
	if v.Height == 0 {
		return 0
	}
	return float64(v.Width) / float64(v.Height)
}

// Probe shells out to ffprobe for metadata extraction.
type Probe struct {
	binary string
}

func NewProbe(binary string) *Probe {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		binary = "ffprobe"
	}
	return &Probe{binary: binary}
}

type probeResult struct {
	Streams []struct {
		CodecType string `json:"codec_type"`
		Width     int    `json:"width"`
		Height    int    `json:"height"`
		Duration  string `json:"duration"`
	} `json:"streams"`
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
}

// Inspect reads the first video stream's dimensions and the container
// duration. The ffprobe invocation reads metadata only.
func (p *Probe) Inspect(ctx context.Context, path string) (VideoInfo, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return VideoInfo{}, errors.New("probe: empty path")
	}

	cmd := exec.CommandContext(ctx, p.binary, "-v", "error", "-hide_banner", "-show_format", "-show_streams", "-of", "json", "--", path)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return VideoInfo{}, fmt.Errorf("probe %s: %w: %s", path, err, strings.TrimSpace(string(output)))
	}

	var res probeResult
	if err := json.Unmarshal(output, &res); err != nil {
		return VideoInfo{}, fmt.Errorf("probe parse: %w", err)
	}

	info := VideoInfo{Duration: parseSeconds(res.Format.Duration)}
	for _, s := range res.Streams {
		if !strings.EqualFold(s.CodecType, "video") {
			continue
		}
		info.Width = s.Width
		info.Height = s.Height
		if d := parseSeconds(s.Duration); d > 0 {
			info.Duration = d
		}
		break
	}
	if info.Width == 0 || info.Height == 0 {
		return VideoInfo{}, fmt.Errorf("probe %s: no video stream found", path)
	}
	return info, nil
}

func parseSeconds(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v
	}
	return 0
}
