// Package imageutil provides the image plumbing for character-art
// conversion: decoding, nearest-neighbor resizing with glyph aspect
// compensation, and encoding of intermediate images.
//
// Pixels are held non-premultiplied (image.NRGBA) so that the channel
// values seen by the converter are the ones stored in the source file,
// including for partially transparent pixels.
package imageutil

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// RGB represents a color in the RGB color space with 8-bit channels.
type RGB struct {
	R, G, B uint8
}

// ToColor converts RGB to an opaque color.NRGBA.
func (rgb RGB) ToColor() color.NRGBA {
	return color.NRGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255}
}

// Image wraps image.NRGBA with convenience methods for pixel access.
type Image struct {
	*image.NRGBA
}

// NewImage creates a new, fully transparent Image with the specified
// dimensions. Negative dimensions are treated as zero.
func NewImage(width, height int) *Image {
	return &Image{
		NRGBA: image.NewNRGBA(image.Rect(0, 0, max(width, 0), max(height, 0))),
	}
}

// FromImage converts any image.Image to an Image whose bounds start at
// the origin. An *Image or an origin-anchored *image.NRGBA is wrapped
// without copying. NRGBA sources are copied byte for byte; other color
// models are converted to straight alpha.
func FromImage(img image.Image) *Image {
	switch src := img.(type) {
	case *Image:
		if src.Rect.Min == (image.Point{}) {
			return src
		}
		img = src.NRGBA
	case *image.NRGBA:
		if src.Rect.Min == (image.Point{}) {
			return &Image{NRGBA: src}
		}
	}
	return &Image{NRGBA: imaging.Clone(img)}
}

// Width returns the image width.
func (img *Image) Width() int {
	return img.Bounds().Dx()
}

// Height returns the image height.
func (img *Image) Height() int {
	return img.Bounds().Dy()
}

// Empty reports whether the image has no pixels.
func (img *Image) Empty() bool {
	return img.Width() <= 0 || img.Height() <= 0
}

// GetRGB returns the RGB value at (x, y), ignoring alpha.
func (img *Image) GetRGB(x, y int) RGB {
	c := img.NRGBAAt(x, y)
	return RGB{R: c.R, G: c.G, B: c.B}
}

// SetRGB sets an opaque RGB value at (x, y).
func (img *Image) SetRGB(x, y int, c RGB) {
	img.SetNRGBA(x, y, c.ToColor())
}
