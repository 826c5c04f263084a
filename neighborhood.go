package asciiart

import "github.com/wbrown/asciiart/imageutil"

// Neighborhood is the 3x3 block of pixels around a center pixel. Rows run
// from the row below the center (y+1) to the row above it (y-1); columns
// run left to right (x-1, x, x+1). The center is always [1][1].
type Neighborhood [3][3]Pixel

// Center returns the pixel the neighborhood was sampled around.
func (n Neighborhood) Center() Pixel {
	return n[1][1]
}

// SampleNeighborhood gathers the neighborhood of (x, y). Coordinates
// outside the image are filled with Transparent.
func SampleNeighborhood(img *imageutil.Image, x, y int) Neighborhood {
	var n Neighborhood
	w, h := img.Width(), img.Height()
	for row := 0; row < 3; row++ {
		sy := y + 1 - row
		for col := 0; col < 3; col++ {
			sx := x - 1 + col
			if sx < 0 || sx >= w || sy < 0 || sy >= h {
				n[row][col] = Transparent
				continue
			}
			n[row][col] = pixelFromNRGBA(img.NRGBAAt(sx, sy))
		}
	}
	return n
}
