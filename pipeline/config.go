package pipeline

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/wbrown/asciiart/imageutil"
)

// Extractor names accepted by Config.Extractor.
const (
	ExtractorFFmpeg = "ffmpeg"
	ExtractorOpenCV = "opencv"
)

// Config describes one conversion run. Zero values are not meaningful;
// start from LoadConfig or DefaultConfig.
type Config struct {
	// Input is the image or, in animation mode, video path.
	Input string `env:"INPUT"`

	// Output is the text file written in single-image mode (stdout when
	// empty) or the frame directory in animation mode (DefaultFramesDir
	// when empty).
	Output string `env:"OUTPUT"`

	Grayscale bool `env:"GRAYSCALE" envDefault:"false"`

	// Width and Height are the character grid dimensions before the
	// horizontal fatness stretch.
	Width  int `env:"WIDTH"  envDefault:"80"`
	Height int `env:"HEIGHT" envDefault:"24"`

	// Fatness widens the image to compensate for tall character cells.
	Fatness float64 `env:"FATNESS" envDefault:"2.45"`

	// SaveIntermediate, when set, is the path the resized image is saved
	// to (first frame only in animation mode).
	SaveIntermediate string `env:"SAVE_INTERMEDIATE"`

	Animation bool `env:"ANIMATION" envDefault:"false"`
	FPS       int  `env:"FPS"       envDefault:"24"`

	Play  bool          `env:"PLAY"  envDefault:"false"`
	Delay time.Duration `env:"DELAY" envDefault:"41ms"`

	// KeepFrames leaves the extracted still images on disk.
	KeepFrames bool `env:"KEEP_FRAMES" envDefault:"false"`

	// WorkDir is where the intermediate frames-<uuid> directory is made.
	WorkDir string `env:"WORK_DIR" envDefault:"."`

	Extractor string `env:"EXTRACTOR" envDefault:"ffmpeg"`
	Workers   int    `env:"WORKERS"   envDefault:"1"`
	Compact   bool   `env:"COMPACT"   envDefault:"false"`

	// Snapshot, when set, is the path of a PNG rendering of the first
	// converted frame.
	Snapshot string `env:"SNAPSHOT"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// EnvPrefix is prepended to every Config environment variable.
const EnvPrefix = "ASCIIART_"

// LoadConfig reads ASCIIART_* environment variables into a Config,
// applying defaults for unset ones.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}

// DefaultConfig returns a Config holding only the defaults.
func DefaultConfig() *Config {
	return &Config{
		Width:     80,
		Height:    24,
		Fatness:   imageutil.DefaultFatness,
		FPS:       24,
		Delay:     41 * time.Millisecond,
		WorkDir:   ".",
		Extractor: ExtractorFFmpeg,
		Workers:   1,
		LogLevel:  "info",
	}
}

// Validate reports every setting that would make a run fail before any
// work is done.
func (c *Config) Validate() error {
	var errs []error
	if c.Input == "" {
		errs = append(errs, errors.New("input path is required"))
	}
	if c.Width <= 0 {
		errs = append(errs, fmt.Errorf("width must be positive, got %d", c.Width))
	}
	if c.Height <= 0 {
		errs = append(errs, fmt.Errorf("height must be positive, got %d", c.Height))
	}
	if c.Fatness <= 0 {
		errs = append(errs, fmt.Errorf("fatness must be positive, got %g", c.Fatness))
	}
	if c.Animation && c.FPS <= 0 {
		errs = append(errs, fmt.Errorf("fps must be positive, got %d", c.FPS))
	}
	if c.Delay < 0 {
		errs = append(errs, fmt.Errorf("delay must not be negative, got %s", c.Delay))
	}
	switch c.Extractor {
	case ExtractorFFmpeg, ExtractorOpenCV:
	default:
		errs = append(errs, fmt.Errorf("unknown extractor %q", c.Extractor))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}
