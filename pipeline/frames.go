package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// imageNamePattern names extracted still images.
	imageNamePattern = "frame_%04d.png"

	// textNamePattern names converted text frames.
	textNamePattern = "frame_%04d.txt"

	// textGlob matches converted text frames in an output directory.
	textGlob = "frame_*.txt"
)

// Frame is one converted frame persisted as text.
type Frame struct {
	// Index is the 0-based position of the frame in the animation.
	Index int

	// Path is the frame_%04d.txt file holding the frame.
	Path string
}

// FrameImageName returns the file name of the index'th extracted still.
func FrameImageName(index int) string {
	return fmt.Sprintf(imageNamePattern, index)
}

// FrameTextName returns the file name of the index'th text frame.
func FrameTextName(index int) string {
	return fmt.Sprintf(textNamePattern, index)
}

// listFiles returns the paths of the regular files in dir whose names
// satisfy match, sorted lexicographically by name.
func listFiles(dir string, match func(name string) bool) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	// os.ReadDir sorts entries by file name.
	var paths []string
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		if match != nil && !match(entry.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	return paths, nil
}

// ListFrames returns the text frames in dir in playback order.
func ListFrames(dir string) ([]Frame, error) {
	paths, err := listFiles(dir, func(name string) bool {
		ok, _ := filepath.Match(textGlob, name)
		return ok
	})
	if err != nil {
		return nil, err
	}

	frames := make([]Frame, len(paths))
	for i, path := range paths {
		frames[i] = Frame{Index: i, Path: path}
	}
	return frames, nil
}
