// Command asciify converts an image, or every frame of a video, to
// character art for the terminal.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"

	"github.com/wbrown/asciiart/pipeline"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "asciify: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Environment variables provide the defaults flags override.
	cfg, err := pipeline.LoadConfig()
	if err != nil {
		return err
	}

	flag.StringVar(&cfg.Input, "input", cfg.Input,
		"Path to the input image, or video with -animation (required)")
	flag.StringVar(&cfg.Output, "output", cfg.Output,
		"Output text file (default stdout), or frame directory with -animation (default ascii_frames)")
	flag.BoolVar(&cfg.Grayscale, "grayscale", cfg.Grayscale,
		"Print bare glyphs without color")
	flag.IntVar(&cfg.Width, "width", cfg.Width,
		"Target width in characters, before the fatness stretch")
	flag.IntVar(&cfg.Height, "height", cfg.Height,
		"Target height in characters")
	flag.Float64Var(&cfg.Fatness, "fatness", cfg.Fatness,
		"Horizontal stretch compensating for tall character cells")
	flag.StringVar(&cfg.SaveIntermediate, "save-intermediate", cfg.SaveIntermediate,
		"Save the resized image used for conversion to this path")
	flag.BoolVar(&cfg.Animation, "animation", cfg.Animation,
		"Treat the input as a video and convert every extracted frame")
	flag.IntVar(&cfg.FPS, "fps", cfg.FPS,
		"Frames per second to extract from the video")
	flag.BoolVar(&cfg.Play, "play", cfg.Play,
		"Play the converted frames in the terminal")
	flag.DurationVar(&cfg.Delay, "delay", cfg.Delay,
		"Pause between frames during playback")
	flag.BoolVar(&cfg.KeepFrames, "keep-frames", cfg.KeepFrames,
		"Keep the extracted still images")
	flag.StringVar(&cfg.WorkDir, "workdir", cfg.WorkDir,
		"Directory for intermediate still images")
	flag.StringVar(&cfg.Extractor, "extractor", cfg.Extractor,
		"Frame extractor: ffmpeg or opencv (needs -tags gocv)")
	flag.IntVar(&cfg.Workers, "workers", cfg.Workers,
		"Goroutines converting rows of each frame")
	flag.BoolVar(&cfg.Compact, "compact", cfg.Compact,
		"Merge runs of equally colored glyphs under one escape")
	flag.StringVar(&cfg.Snapshot, "snapshot", cfg.Snapshot,
		"Render the first converted frame to this PNG file")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel,
		"Log level: debug, info, warn or error")
	fit := flag.Bool("fit", false,
		"Size width and height to the current terminal")
	flag.Parse()

	if cfg.Input == "" {
		fmt.Fprintln(os.Stderr, "Please provide the input using the -input flag")
		flag.PrintDefaults()
		return errors.New("missing -input")
	}

	log, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer log.Sync()

	if *fit {
		if err := fitTerminal(cfg); err != nil {
			return err
		}
		log.Debug("fitted to terminal", zap.Int("width", cfg.Width), zap.Int("height", cfg.Height))
	}
	if cfg.Play && !term.IsTerminal(int(os.Stdout.Fd())) {
		log.Warn("stdout is not a terminal, playback escapes will be written verbatim")
	}

	p, err := pipeline.New(cfg, pipeline.WithLogger(log))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return p.Run(ctx)
}

// newLogger builds a console logger on stderr, keeping stdout for art.
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.Lock(os.Stderr),
		lvl,
	)
	return zap.New(core), nil
}

// fitTerminal sets the character grid so that a frame, after the
// fatness stretch, fills the terminal without wrapping.
func fitTerminal(cfg *pipeline.Config) error {
	cols, rows, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return fmt.Errorf("failed to get terminal size: %w", err)
	}
	fatness := cfg.Fatness
	if fatness <= 0 {
		return fmt.Errorf("fatness must be positive, got %g", fatness)
	}
	cfg.Width = max(int(math.Floor(float64(cols)/fatness)), 1)
	cfg.Height = max(rows-1, 1)
	return nil
}
