// Package pipeline drives character-art conversion end to end: it
// resizes input images to the character grid, converts single images or
// every frame extracted from a video, persists the text frames, and
// plays them back in the terminal.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/wbrown/asciiart"
	"github.com/wbrown/asciiart/imageutil"
)

// Pipeline runs one configured conversion. Frames are processed strictly
// in order; only the per-frame pixel loop is parallel.
type Pipeline struct {
	cfg       Config
	renderer  *asciiart.Renderer
	extractor FrameExtractor
	logger    *zap.Logger
	stdout    io.Writer
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// WithExtractor replaces the extractor named by Config.Extractor.
func WithExtractor(e FrameExtractor) Option {
	return func(p *Pipeline) {
		p.extractor = e
	}
}

// WithStdout sets where single-image output and playback go when no
// output file is configured. The default is os.Stdout.
func WithStdout(w io.Writer) Option {
	return func(p *Pipeline) {
		p.stdout = w
	}
}

// New validates cfg and builds a Pipeline for it.
func New(cfg *Config, opts ...Option) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	p := &Pipeline{
		cfg:    *cfg,
		logger: zap.NewNop(),
		stdout: os.Stdout,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.renderer = asciiart.NewRenderer(
		asciiart.WithGrayscale(cfg.Grayscale),
		asciiart.WithWorkers(cfg.Workers),
	)

	if p.extractor == nil && cfg.Animation {
		e, err := NewExtractor(cfg.Extractor, p.logger)
		if err != nil {
			return nil, err
		}
		p.extractor = e
	}
	return p, nil
}

// Run performs the configured conversion and, in animation mode, the
// optional playback.
func (p *Pipeline) Run(ctx context.Context) error {
	if !p.cfg.Animation {
		return p.ConvertImage(ctx)
	}

	if _, err := p.ConvertAnimation(ctx); err != nil {
		return err
	}
	if p.cfg.Play {
		return p.Player().Play(ctx, p.outputDir())
	}
	return nil
}

// Player returns a player for the pipeline's output and delay.
func (p *Pipeline) Player() *Player {
	return NewPlayer(p.stdout, p.cfg.Delay, p.logger)
}

// ConvertImage converts the single input image and writes the text to
// the output file, or to stdout when none is configured.
func (p *Pipeline) ConvertImage(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	img, err := imageutil.LoadImage(p.cfg.Input)
	if err != nil {
		return fmt.Errorf("single-image conversion: %w", err)
	}
	raster, err := p.convertFrame(img, 0)
	if err != nil {
		return err
	}

	text := p.serialize(raster)
	if p.cfg.Output == "" {
		if _, err := io.WriteString(p.stdout, text); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	if err := os.WriteFile(p.cfg.Output, []byte(text), 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	p.logger.Info("frame written", zap.String("path", p.cfg.Output),
		zap.Int("width", raster.Width), zap.Int("height", raster.Height))
	return nil
}

// ConvertAnimation extracts the input video's frames into a fresh
// intermediate directory, converts each one in file-name order, and
// writes frame_%04d.txt files to the output directory. The intermediate
// directory is removed afterwards, even on failure, unless
// Config.KeepFrames is set.
func (p *Pipeline) ConvertAnimation(ctx context.Context) (frames []Frame, err error) {
	outDir := p.outputDir()
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	framesDir, err := p.makeFramesDir()
	if err != nil {
		return nil, err
	}
	defer func() {
		if p.cfg.KeepFrames {
			p.logger.Info("keeping intermediate frames", zap.String("dir", framesDir))
			return
		}
		if rmErr := os.RemoveAll(framesDir); rmErr != nil {
			err = errors.Join(err, fmt.Errorf("failed to remove intermediate frames: %w", rmErr))
			return
		}
		p.logger.Info("removed intermediate frames", zap.String("dir", framesDir))
	}()

	p.logger.Info("extracting frames",
		zap.String("video", p.cfg.Input),
		zap.String("dir", framesDir),
		zap.Int("fps", p.cfg.FPS),
	)
	if err := p.extractor.ExtractFrames(ctx, p.cfg.Input, framesDir, p.cfg.FPS); err != nil {
		if !errors.Is(err, ErrExtraction) {
			err = fmt.Errorf("%w: %w", ErrExtraction, err)
		}
		return nil, err
	}

	stills, err := listFiles(framesDir, nil)
	if err != nil {
		return nil, err
	}
	if len(stills) == 0 {
		return nil, fmt.Errorf("%s: %w", p.cfg.Input, ErrNoFrames)
	}

	frames = make([]Frame, 0, len(stills))
	for index, still := range stills {
		if err := ctx.Err(); err != nil {
			return frames, err
		}
		frame, err := p.convertStill(still, index, outDir)
		if err != nil {
			return frames, err
		}
		frames = append(frames, frame)
	}

	p.logger.Info("animation converted",
		zap.Int("frames", len(frames)),
		zap.String("dir", outDir),
	)
	return frames, nil
}

// convertStill converts one extracted image to its text frame.
func (p *Pipeline) convertStill(path string, index int, outDir string) (Frame, error) {
	img, err := imageutil.LoadImage(path)
	if err != nil {
		return Frame{}, fmt.Errorf("frame %d: %w", index, err)
	}
	raster, err := p.convertFrame(img, index)
	if err != nil {
		return Frame{}, fmt.Errorf("frame %d: %w", index, err)
	}

	frame := Frame{Index: index, Path: filepath.Join(outDir, FrameTextName(index))}
	if err := os.WriteFile(frame.Path, []byte(p.serialize(raster)), 0o644); err != nil {
		return Frame{}, fmt.Errorf("failed to write frame %d: %w", index, err)
	}
	p.logger.Debug("frame converted",
		zap.Int("index", index),
		zap.String("source", path),
		zap.String("path", frame.Path),
	)
	return frame, nil
}

// convertFrame resizes img to the character grid and converts it. The
// first frame also produces the optional intermediate image and
// snapshot.
func (p *Pipeline) convertFrame(img *imageutil.Image, index int) (*asciiart.Raster, error) {
	resized := imageutil.ResizeForGlyphs(img, p.cfg.Width, p.cfg.Height, p.cfg.Fatness)
	if resized.Empty() {
		return nil, fmt.Errorf("resized image is empty (%dx%d at fatness %g)",
			p.cfg.Width, p.cfg.Height, p.cfg.Fatness)
	}

	if index == 0 && p.cfg.SaveIntermediate != "" {
		if err := imageutil.SaveImage(resized, p.cfg.SaveIntermediate); err != nil {
			return nil, err
		}
		p.logger.Info("saved intermediate image", zap.String("path", p.cfg.SaveIntermediate))
	}

	raster := p.renderer.Convert(resized)

	if index == 0 && p.cfg.Snapshot != "" {
		if err := asciiart.SaveSnapshot(raster, p.cfg.Snapshot, asciiart.DefaultSnapshotOptions); err != nil {
			return nil, err
		}
		p.logger.Info("saved snapshot", zap.String("path", p.cfg.Snapshot))
	}
	return raster, nil
}

func (p *Pipeline) serialize(r *asciiart.Raster) string {
	if p.cfg.Compact {
		return r.Compact()
	}
	return r.String()
}

// DefaultFramesDir is the animation output directory used when
// Config.Output is empty.
const DefaultFramesDir = "ascii_frames"

// outputDir is where animation frames are written.
func (p *Pipeline) outputDir() string {
	if p.cfg.Output == "" {
		return DefaultFramesDir
	}
	return p.cfg.Output
}

// makeFramesDir creates a uniquely named intermediate directory under
// Config.WorkDir.
func (p *Pipeline) makeFramesDir() (string, error) {
	workDir := p.cfg.WorkDir
	if workDir == "" {
		workDir = "."
	}
	dir := filepath.Join(workDir, "frames-"+uuid.NewString())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create intermediate directory: %w", err)
	}
	return dir, nil
}
