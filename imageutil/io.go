package imageutil

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // Register WebP decoder
)

// ErrDecode is wrapped by every error caused by unreadable or corrupt
// image data, as opposed to errors opening the file.
var ErrDecode = errors.New("failed to decode image")

// LoadImage loads an image from the specified path. PNG, JPEG, GIF, BMP,
// TIFF and WebP are supported. JPEG EXIF orientation is applied so the
// image is upright.
func LoadImage(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	return DecodeImage(f, path)
}

// DecodeImage decodes an image from r. The name is only used in errors.
func DecodeImage(r io.Reader, name string) (*Image, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrDecode, name, err)
	}
	return FromImage(img), nil
}

// SaveImage saves an image to the specified path. The format is
// determined by the file extension, defaulting to PNG for unknown
// extensions.
func SaveImage(img image.Image, path string) error {
	format, err := imaging.FormatFromFilename(path)
	if err != nil {
		format = imaging.PNG
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	if err := imaging.Encode(f, img, format, imaging.JPEGQuality(95)); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return f.Close()
}
