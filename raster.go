package asciiart

import (
	"io"
	"strings"
)

// Cell is one converted pixel: the selected glyph and the source pixel's
// color. Blank cells come from transparent pixels and render as a space.
type Cell struct {
	Glyph string
	Color Pixel
	Blank bool
}

// Format renders the cell; see FormatCell.
func (c Cell) Format(grayscale bool) string {
	if c.Blank {
		return " "
	}
	return FormatCell(c.Glyph, c.Color, grayscale)
}

// Raster is the converted form of one image: one cell per source pixel,
// stored row-major in a buffer sized up front.
type Raster struct {
	Width     int
	Height    int
	Grayscale bool
	cells     []Cell
}

// NewRaster allocates a raster of width x height blank cells. Degenerate
// dimensions produce an empty raster.
func NewRaster(width, height int, grayscale bool) *Raster {
	if width <= 0 || height <= 0 {
		width, height = 0, 0
	}
	cells := make([]Cell, width*height)
	for i := range cells {
		cells[i] = Cell{Glyph: " ", Blank: true}
	}
	return &Raster{
		Width:     width,
		Height:    height,
		Grayscale: grayscale,
		cells:     cells,
	}
}

// Empty reports whether the raster has no cells.
func (r *Raster) Empty() bool {
	return len(r.cells) == 0
}

// Cell returns the cell at (x, y).
func (r *Raster) Cell(x, y int) Cell {
	return r.cells[y*r.Width+x]
}

// Set stores the cell at (x, y).
func (r *Raster) Set(x, y int, c Cell) {
	r.cells[y*r.Width+x] = c
}

// At returns the formatted string for the cell at (x, y).
func (r *Raster) At(x, y int) string {
	return r.Cell(x, y).Format(r.Grayscale)
}

// Row returns the cells of row y. The slice aliases the raster.
func (r *Raster) Row(y int) []Cell {
	return r.cells[y*r.Width : (y+1)*r.Width]
}

// String serializes the raster: each row's formatted cells concatenated
// with no separator, each row terminated by a newline.
func (r *Raster) String() string {
	var sb strings.Builder
	for y := 0; y < r.Height; y++ {
		for _, c := range r.Row(y) {
			sb.WriteString(c.Format(r.Grayscale))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Compact serializes the raster like String, but merges runs of equally
// colored cells under one color escape. Grayscale rasters serialize
// identically with either method.
func (r *Raster) Compact() string {
	if r.Grayscale {
		return r.String()
	}
	var sb strings.Builder
	for y := 0; y < r.Height; y++ {
		writeCompactRow(&sb, r.Row(y))
	}
	return sb.String()
}

// WriteTo writes String() to w.
func (r *Raster) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, r.String())
	return int64(n), err
}
