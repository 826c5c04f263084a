package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	ffmpeg "github.com/u2takey/ffmpeg-go"
	"go.uber.org/zap"
)

// FFmpegExtractor extracts frames by running the ffmpeg executable.
type FFmpegExtractor struct {
	logger *zap.Logger
}

// NewFFmpegExtractor creates an extractor that logs to logger.
func NewFFmpegExtractor(logger *zap.Logger) *FFmpegExtractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FFmpegExtractor{logger: logger}
}

// ExtractFrames runs ffmpeg -i videoPath -vf fps=N -pix_fmt rgb24
// outputDir/frame_%04d.png and waits for it to finish.
func (e *FFmpegExtractor) ExtractFrames(ctx context.Context, videoPath, outputDir string, fps int) error {
	duration, err := probeDuration(videoPath)
	if err != nil {
		e.logger.Warn("could not get video duration", zap.String("video", videoPath), zap.Error(err))
	}

	pattern := filepath.Join(outputDir, imageNamePattern)
	var stderr bytes.Buffer
	stream := ffmpeg.Input(videoPath).
		Output(pattern, ffmpeg.KwArgs{
			"vf":      fmt.Sprintf("fps=%d", fps),
			"pix_fmt": "rgb24",
		}).
		OverWriteOutput().
		WithErrorOutput(&stderr)
	stream.Context = ctx

	e.logger.Debug("running ffmpeg", zap.Strings("args", stream.GetArgs()))
	if err := stream.Run(); err != nil {
		return fmt.Errorf("%w: ffmpeg %s: %w: %s",
			ErrExtraction, videoPath, err, lastLine(stderr.String()))
	}

	e.logger.Info("frames extracted",
		zap.String("video", videoPath),
		zap.Int("fps", fps),
		zap.Float64("video_duration", duration),
	)
	return nil
}

// probeResult is the part of ffprobe's JSON output we read.
type probeResult struct {
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
}

// probeDuration returns the container duration in seconds.
func probeDuration(videoPath string) (float64, error) {
	out, err := ffmpeg.Probe(videoPath)
	if err != nil {
		return 0, fmt.Errorf("ffprobe: %w", err)
	}
	return parseProbeDuration(out)
}

func parseProbeDuration(probe string) (float64, error) {
	var res probeResult
	if err := json.Unmarshal([]byte(probe), &res); err != nil {
		return 0, fmt.Errorf("parse ffprobe output: %w", err)
	}
	if res.Format.Duration == "" {
		return 0, fmt.Errorf("ffprobe reported no duration")
	}
	duration, err := strconv.ParseFloat(res.Format.Duration, 64)
	if err != nil {
		return 0, fmt.Errorf("parse duration: %w", err)
	}
	return duration, nil
}

// lastLine returns the last non-empty line of ffmpeg's diagnostics,
// which is where it reports the fatal error.
func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	return strings.TrimSpace(lines[len(lines)-1])
}
