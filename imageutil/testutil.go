package imageutil

import (
	"image/color"
	"image/png"
	"os"
)

// CreateSolidImage creates an opaque, single-color image.
func CreateSolidImage(width, height int, c RGB) *Image {
	img := NewImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGB(x, y, c)
		}
	}
	return img
}

// CreateGradientImage creates an opaque horizontal gray gradient.
func CreateGradientImage(width, height int) *Image {
	img := NewImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := uint8(0)
			if width > 1 {
				v = uint8(255 * x / (width - 1))
			}
			img.SetNRGBA(x, y, color.NRGBA{R: v, G: v, B: v, A: 255})
		}
	}
	return img
}

// CreateCheckerboardImage creates an opaque black and white checkerboard.
func CreateCheckerboardImage(width, height, squareSize int) *Image {
	img := NewImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if ((x/squareSize)+(y/squareSize))%2 == 0 {
				img.SetRGB(x, y, RGB{R: 255, G: 255, B: 255})
			} else {
				img.SetRGB(x, y, RGB{})
			}
		}
	}
	return img
}

// CreateColorBarsImage creates an opaque color bars test pattern.
func CreateColorBarsImage(width, height int) *Image {
	img := NewImage(width, height)
	colors := []RGB{
		{255, 255, 255}, // White
		{255, 255, 0},   // Yellow
		{0, 255, 255},   // Cyan
		{0, 255, 0},     // Green
		{255, 0, 255},   // Magenta
		{255, 0, 0},     // Red
		{0, 0, 255},     // Blue
		{0, 0, 0},       // Black
	}

	barWidth := max(width/len(colors), 1)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			colorIdx := min(x/barWidth, len(colors)-1)
			img.SetRGB(x, y, colors[colorIdx])
		}
	}
	return img
}

// CreateFadeImage creates an image of a single RGB color whose alpha
// falls from 255 on the left to 0 on the right.
func CreateFadeImage(width, height int, c RGB) *Image {
	img := NewImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			a := uint8(255)
			if width > 1 {
				a = uint8(255 - 255*x/(width-1))
			}
			img.SetNRGBA(x, y, color.NRGBA{R: c.R, G: c.G, B: c.B, A: a})
		}
	}
	return img
}

// WritePNG encodes img as PNG to path. It is a small helper for tests
// that need image files on disk.
func WritePNG(img *Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img.NRGBA); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// MaxChannelDiff returns the largest per-channel difference, alpha
// included, between two images of equal size, or 256 if the sizes differ.
func MaxChannelDiff(img1, img2 *Image) int {
	if img1.Width() != img2.Width() || img1.Height() != img2.Height() {
		return 256
	}

	maxDiff := 0
	for y := 0; y < img1.Height(); y++ {
		for x := 0; x < img1.Width(); x++ {
			c1 := img1.NRGBAAt(x, y)
			c2 := img2.NRGBAAt(x, y)
			for _, d := range [4]int{
				int(c1.R) - int(c2.R),
				int(c1.G) - int(c2.G),
				int(c1.B) - int(c2.B),
				int(c1.A) - int(c2.A),
			} {
				if d < 0 {
					d = -d
				}
				maxDiff = max(maxDiff, d)
			}
		}
	}
	return maxDiff
}
