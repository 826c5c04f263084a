package asciiart

import (
	"strconv"
	"strings"
)

const (
	ESC = "\u001b"

	// Reset restores default terminal attributes.
	Reset = ESC + "[0m"

	// ClearScreen clears the terminal and homes the cursor.
	ClearScreen = ESC + "[2J" + ESC + "[1;1H"
)

// foregroundCode returns the 24-bit foreground color escape for p.
func foregroundCode(p Pixel) string {
	var code strings.Builder
	code.Grow(19)
	code.WriteString(ESC)
	code.WriteString("[38;2;")
	code.WriteString(strconv.Itoa(int(p.R)))
	code.WriteByte(';')
	code.WriteString(strconv.Itoa(int(p.G)))
	code.WriteByte(';')
	code.WriteString(strconv.Itoa(int(p.B)))
	code.WriteByte('m')
	return code.String()
}

// FormatCell renders a glyph for a source pixel. Transparent pixels are a
// bare space. Otherwise grayscale output is the bare glyph and color output
// wraps the glyph in the pixel's 24-bit foreground color and a reset.
func FormatCell(glyph string, p Pixel, grayscale bool) string {
	if p.IsTransparent() {
		return " "
	}
	if grayscale {
		return glyph
	}
	return foregroundCode(p) + glyph + Reset
}

// writeCompactRow writes one raster row, emitting a color escape only
// when the color differs from the previous colored cell and a single
// reset at the end of the row.
func writeCompactRow(sb *strings.Builder, cells []Cell) {
	var current Pixel
	colored := false
	for _, c := range cells {
		if c.Blank {
			sb.WriteByte(' ')
			continue
		}
		rgb := Pixel{R: c.Color.R, G: c.Color.G, B: c.Color.B}
		if !colored || rgb != current {
			sb.WriteString(foregroundCode(rgb))
			current, colored = rgb, true
		}
		sb.WriteString(c.Glyph)
	}
	if colored {
		sb.WriteString(Reset)
	}
	sb.WriteByte('\n')
}
