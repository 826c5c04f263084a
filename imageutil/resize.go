package imageutil

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
)

// DefaultFatness is the horizontal stretch applied before conversion to
// compensate for terminal cells being taller than they are wide.
const DefaultFatness = 2.45

// Resize resizes an image to exactly width x height with nearest-neighbor
// sampling. Every output pixel is a byte-for-byte copy of one source
// pixel, alpha included. Zero or negative target dimensions, or an empty
// source, produce an empty image.
func Resize(img image.Image, width, height int) *Image {
	dst := NewImage(width, height)
	if dst.Empty() || img.Bounds().Empty() {
		return dst
	}

	// imaging reads *image.NRGBA rows directly; any other source type is
	// converted to straight alpha once by FromImage.
	src := FromImage(img).NRGBA
	return &Image{NRGBA: imaging.Resize(src, width, height, imaging.NearestNeighbor)}
}

// GlyphDimensions returns the pixel dimensions an image must have so that
// each pixel becomes one character cell of a width x height grid, after
// stretching the width by fatness. A non-positive fatness selects
// DefaultFatness.
func GlyphDimensions(width, height int, fatness float64) (int, int) {
	if fatness <= 0 {
		fatness = DefaultFatness
	}
	return int(math.Round(float64(width) * fatness)), height
}

// ResizeForGlyphs resizes an image with nearest-neighbor sampling to
// GlyphDimensions(width, height, fatness).
func ResizeForGlyphs(img image.Image, width, height int, fatness float64) *Image {
	w, h := GlyphDimensions(width, height, fatness)
	return Resize(img, w, h)
}
