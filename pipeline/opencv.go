//go:build gocv

package pipeline

import (
	"context"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"
	"gocv.io/x/gocv"
)

func init() {
	extractorFactories[ExtractorOpenCV] = func(logger *zap.Logger) FrameExtractor {
		return NewOpenCVExtractor(logger)
	}
}

// OpenCVExtractor decodes the video in-process with OpenCV, keeping
// source frames at the requested rate.
type OpenCVExtractor struct {
	logger *zap.Logger
}

// NewOpenCVExtractor creates an extractor that logs to logger.
func NewOpenCVExtractor(logger *zap.Logger) *OpenCVExtractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OpenCVExtractor{logger: logger}
}

// ExtractFrames writes every source frame that falls on the fps sampling
// grid to outputDir as frame_%04d.png, numbered from zero.
func (e *OpenCVExtractor) ExtractFrames(ctx context.Context, videoPath, outputDir string, fps int) error {
	vc, err := gocv.VideoCaptureFile(videoPath)
	if err != nil {
		return fmt.Errorf("%w: open %s: %w", ErrExtraction, videoPath, err)
	}
	defer vc.Close()

	srcFPS := vc.Get(gocv.VideoCaptureFPS)
	if srcFPS <= 0 {
		srcFPS = float64(fps)
	}
	step := srcFPS / float64(fps)

	mat := gocv.NewMat()
	defer mat.Close()

	written := 0
	next := 0.0
	for i := 0; ; i++ {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("%w: %w", ErrExtraction, err)
		}
		if ok := vc.Read(&mat); !ok || mat.Empty() {
			break
		}
		if float64(i) < next {
			continue
		}
		next += step

		path := filepath.Join(outputDir, FrameImageName(written))
		if !gocv.IMWrite(path, mat) {
			return fmt.Errorf("%w: failed to write %s", ErrExtraction, path)
		}
		written++
	}

	e.logger.Info("frames extracted",
		zap.String("video", videoPath),
		zap.Int("count", written),
		zap.Float64("source_fps", srcFPS),
	)
	return nil
}
