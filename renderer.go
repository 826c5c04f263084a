package asciiart

import (
	"image"
	"sync"

	"github.com/wbrown/asciiart/imageutil"
)

// Renderer converts images to character rasters. A Renderer holds only
// configuration, so one value may be shared by concurrent callers.
type Renderer struct {
	// Grayscale emits bare glyphs instead of 24-bit colored ones.
	Grayscale bool

	// Threshold is the squared RGBA distance below which a neighbor is
	// considered part of the center pixel's region.
	Threshold int

	// Workers is the number of goroutines rows are partitioned across.
	// Output does not depend on it.
	Workers int
}

// RendererOption is a functional option for configuring a Renderer.
type RendererOption func(*Renderer)

// NewRenderer creates a new Renderer with the given options.
// Default values: Grayscale=false, Threshold=SimilarityThreshold, Workers=1.
func NewRenderer(opts ...RendererOption) *Renderer {
	r := &Renderer{
		Threshold: SimilarityThreshold,
		Workers:   1,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// WithGrayscale selects plain glyph output without color escapes.
func WithGrayscale(grayscale bool) RendererOption {
	return func(r *Renderer) {
		r.Grayscale = grayscale
	}
}

// WithThreshold sets the color similarity threshold.
func WithThreshold(threshold int) RendererOption {
	return func(r *Renderer) {
		r.Threshold = threshold
	}
}

// WithWorkers sets how many goroutines convert rows in parallel.
func WithWorkers(n int) RendererOption {
	return func(r *Renderer) {
		r.Workers = n
	}
}

// ConvertPixel classifies the pixel at (x, y) and returns its cell.
func (r *Renderer) ConvertPixel(img *imageutil.Image, x, y int) Cell {
	center := pixelFromNRGBA(img.NRGBAAt(x, y))
	if center.IsTransparent() {
		return Cell{Glyph: " ", Color: center, Blank: true}
	}

	grid := Classify(SampleNeighborhood(img, x, y), r.Threshold)
	return Cell{
		Glyph: Glyphs.Glyph(SelectPattern(grid)),
		Color: center,
	}
}

// Convert converts every pixel of img into one cell of the returned
// raster. The image should already be resized to the character grid.
// Empty images produce an empty raster.
func (r *Renderer) Convert(img image.Image) *Raster {
	src := imageutil.FromImage(img)
	raster := NewRaster(src.Width(), src.Height(), r.Grayscale)
	if raster.Empty() {
		return raster
	}

	workers := min(max(r.Workers, 1), raster.Height)
	if workers == 1 {
		r.convertRows(src, raster, 0, raster.Height)
		return raster
	}

	// Each goroutine owns a contiguous band of rows.
	var wg sync.WaitGroup
	band := (raster.Height + workers - 1) / workers
	for start := 0; start < raster.Height; start += band {
		end := min(start+band, raster.Height)
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			r.convertRows(src, raster, start, end)
		}(start, end)
	}
	wg.Wait()
	return raster
}

// ConvertToString converts img and serializes the raster.
func (r *Renderer) ConvertToString(img image.Image) string {
	return r.Convert(img).String()
}

func (r *Renderer) convertRows(src *imageutil.Image, raster *Raster, start, end int) {
	for y := start; y < end; y++ {
		for x := 0; x < raster.Width; x++ {
			raster.Set(x, y, r.ConvertPixel(src, x, y))
		}
	}
}
