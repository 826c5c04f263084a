package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/wbrown/asciiart"
)

// Player prints text frames to a terminal one after another.
type Player struct {
	// Out receives the clear-screen sequences and frame text.
	Out io.Writer

	// Delay is the pause after each frame. Render time is not
	// subtracted from it.
	Delay time.Duration

	logger *zap.Logger
	sleep  func(ctx context.Context, d time.Duration) error
}

// NewPlayer creates a Player writing to out.
func NewPlayer(out io.Writer, delay time.Duration, logger *zap.Logger) *Player {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Player{
		Out:    out,
		Delay:  delay,
		logger: logger,
		sleep:  sleepContext,
	}
}

// Play shows every frame_*.txt file in dir in name order: clear the
// screen, print the frame, wait Delay. It blocks until the last frame's
// delay has passed or ctx is done.
func (p *Player) Play(ctx context.Context, dir string) error {
	frames, err := ListFrames(dir)
	if err != nil {
		return err
	}
	p.logger.Info("starting playback",
		zap.String("dir", dir),
		zap.Int("frames", len(frames)),
		zap.Duration("delay", p.Delay),
	)

	for _, frame := range frames {
		data, err := os.ReadFile(frame.Path)
		if err != nil {
			return fmt.Errorf("failed to read frame %d: %w", frame.Index, err)
		}
		if _, err := io.WriteString(p.Out, asciiart.ClearScreen); err != nil {
			return fmt.Errorf("failed to write frame %d: %w", frame.Index, err)
		}
		if _, err := p.Out.Write(data); err != nil {
			return fmt.Errorf("failed to write frame %d: %w", frame.Index, err)
		}
		if err := p.sleep(ctx, p.Delay); err != nil {
			return err
		}
	}
	return nil
}

// sleepContext waits for d or until ctx is done.
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
