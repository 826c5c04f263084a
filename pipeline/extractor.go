package pipeline

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

var (
	// ErrExtraction is wrapped by every frame extractor failure,
	// including a missing extraction tool.
	ErrExtraction = errors.New("frame extraction failed")

	// ErrNoFrames is returned when extraction succeeds but leaves no
	// still images behind.
	ErrNoFrames = errors.New("no frames extracted")
)

// FrameExtractor turns a video into still images. ExtractFrames must
// populate outputDir with sequentially numbered, zero-padded images
// (frame_%04d.png) sampled at fps frames per second, and return an error
// wrapping ErrExtraction on failure.
type FrameExtractor interface {
	ExtractFrames(ctx context.Context, videoPath, outputDir string, fps int) error
}

// ExtractFunc adapts a function to the FrameExtractor interface.
type ExtractFunc func(ctx context.Context, videoPath, outputDir string, fps int) error

// ExtractFrames calls f.
func (f ExtractFunc) ExtractFrames(ctx context.Context, videoPath, outputDir string, fps int) error {
	return f(ctx, videoPath, outputDir, fps)
}

// extractorFactories holds the extractors compiled into the binary,
// keyed by Config.Extractor name.
var extractorFactories = map[string]func(*zap.Logger) FrameExtractor{
	ExtractorFFmpeg: func(logger *zap.Logger) FrameExtractor {
		return NewFFmpegExtractor(logger)
	},
}

// NewExtractor returns the extractor registered under name.
func NewExtractor(name string, logger *zap.Logger) (FrameExtractor, error) {
	factory, ok := extractorFactories[name]
	if !ok {
		if name == ExtractorOpenCV {
			return nil, fmt.Errorf("extractor %q requires building with -tags gocv", name)
		}
		return nil, fmt.Errorf("unknown extractor %q", name)
	}
	return factory(logger), nil
}
