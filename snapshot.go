package asciiart

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"
	"sync"
	"unicode/utf8"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

// ErrEmptyRaster is returned when asked to draw a raster with no cells.
var ErrEmptyRaster = errors.New("raster has no cells")

// SnapshotOptions controls how a raster is drawn to an image.
type SnapshotOptions struct {
	// FontSize is the glyph size in points at 72 DPI.
	FontSize float64

	// Background fills every cell before glyphs are drawn.
	Background color.Color

	// Foreground is used for glyphs of grayscale rasters.
	Foreground color.Color
}

// DefaultSnapshotOptions draws light gray or colored glyphs on black.
var DefaultSnapshotOptions = SnapshotOptions{
	FontSize:   12,
	Background: color.Black,
	Foreground: color.Gray{Y: 0xd0},
}

var (
	monoFont     *truetype.Font
	monoFontErr  error
	monoFontOnce sync.Once
)

// loadMonoFont parses the embedded Go Mono TrueType font once.
func loadMonoFont() (*truetype.Font, error) {
	monoFontOnce.Do(func() {
		monoFont, monoFontErr = freetype.ParseFont(gomono.TTF)
	})
	return monoFont, monoFontErr
}

// RenderImage draws the raster as it would appear in a terminal, one
// monospace cell per raster cell.
func RenderImage(r *Raster, opts SnapshotOptions) (*image.RGBA, error) {
	if r.Empty() {
		return nil, ErrEmptyRaster
	}
	if opts.FontSize <= 0 {
		opts.FontSize = DefaultSnapshotOptions.FontSize
	}
	if opts.Background == nil {
		opts.Background = DefaultSnapshotOptions.Background
	}
	if opts.Foreground == nil {
		opts.Foreground = DefaultSnapshotOptions.Foreground
	}

	ttf, err := loadMonoFont()
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}

	face := truetype.NewFace(ttf, &truetype.Options{
		Size:    opts.FontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	defer face.Close()

	// Go Mono is monospaced, so any glyph's advance is the cell width.
	advance, ok := face.GlyphAdvance('M')
	if !ok {
		return nil, fmt.Errorf("font has no advance for 'M'")
	}
	metrics := face.Metrics()
	cellW := advance.Ceil()
	cellH := (metrics.Ascent + metrics.Descent).Ceil()
	baseline := metrics.Ascent.Ceil()

	img := image.NewRGBA(image.Rect(0, 0, r.Width*cellW, r.Height*cellH))
	draw.Draw(img, img.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)

	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(ttf)
	ctx.SetFontSize(opts.FontSize)
	ctx.SetClip(img.Bounds())
	ctx.SetDst(img)
	ctx.SetHinting(font.HintingFull)

	gray := image.NewUniform(opts.Foreground)
	for y := 0; y < r.Height; y++ {
		for x, c := range r.Row(y) {
			if c.Blank || c.Glyph == " " {
				continue
			}
			src := gray
			if !r.Grayscale {
				src = image.NewUniform(color.RGBA{R: c.Color.R, G: c.Color.G, B: c.Color.B, A: 255})
			}

			// Go Mono has no box-drawing glyphs; draw those as lines.
			if ch, _ := utf8.DecodeRuneInString(c.Glyph); ttf.Index(ch) == 0 {
				cell := image.Rect(x*cellW, y*cellH, (x+1)*cellW, (y+1)*cellH)
				if seg, ok := boxSegment(cell, ch); ok {
					draw.Draw(img, seg, src, image.Point{}, draw.Over)
					continue
				}
			}

			ctx.SetSrc(src)
			pt := freetype.Pt(x*cellW, y*cellH+baseline)
			if _, err := ctx.DrawString(c.Glyph, pt); err != nil {
				return nil, fmt.Errorf("failed to draw %q at (%d,%d): %w", c.Glyph, x, y, err)
			}
		}
	}

	return img, nil
}

// boxSegment returns the rectangle a light box-drawing half line covers
// inside cell. It reports false for any other rune.
func boxSegment(cell image.Rectangle, r rune) (image.Rectangle, bool) {
	t := max(cell.Dy()/12, 1)
	cx := cell.Min.X + (cell.Dx()-t)/2
	cy := cell.Min.Y + (cell.Dy()-t)/2
	switch r {
	case '╴':
		return image.Rect(cell.Min.X, cy, cx+t, cy+t), true
	case '╶':
		return image.Rect(cx, cy, cell.Max.X, cy+t), true
	case '╵':
		return image.Rect(cx, cell.Min.Y, cx+t, cy+t), true
	case '╷':
		return image.Rect(cx, cy, cx+t, cell.Max.Y), true
	}
	return image.Rectangle{}, false
}

// RenderPNG draws the raster and encodes it as PNG to w.
func RenderPNG(r *Raster, w io.Writer, opts SnapshotOptions) error {
	img, err := RenderImage(r, opts)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// SaveSnapshot draws the raster to a PNG file at path.
func SaveSnapshot(r *Raster, path string, opts SnapshotOptions) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create snapshot: %w", err)
	}
	if err := RenderPNG(r, f, opts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
