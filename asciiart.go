// Package asciiart converts images to character art for the terminal.
//
// Every pixel of a (pre-resized) image becomes one character cell. The
// cell's glyph is chosen from its 3x3 neighborhood: neighbors whose color
// is close to the center pixel are marked active, the most active 2x2
// corner of that grid is encoded marching-squares style into a 4-bit
// pattern index, and the index selects one of 16 glyphs. In color mode
// the glyph is wrapped in a 24-bit foreground escape of the pixel's RGB.
package asciiart

// PatternIndex is a 4-bit marching-squares pattern in [0, 15]. See
// Quadrants.Index for the bit layout.
type PatternIndex uint8

// FullBlock is the pattern with all four cells active.
const FullBlock PatternIndex = 15

// GlyphTable maps every PatternIndex to a single-character string.
type GlyphTable [16]string

// Glyphs is the glyph alphabet. Several patterns share a glyph on
// purpose (1/12, 5/7, 2/10/11); do not "fix" the duplicates.
var Glyphs = GlyphTable{
	" ", // 0000: Empty space
	"~", // 0001: Bottom-left corner
	"$", // 0010: Bottom-right corner
	">", // 0011: Bottom edge
	"╶", // 0100: Top-right corner
	"=", // 0101: Anti-diagonal
	"<", // 0110: Right edge
	"=", // 0111: All but top-left
	"^", // 1000: Top-left corner
	"+", // 1001: Left edge
	"$", // 1010: Diagonal
	"$", // 1011: All but top-right
	"~", // 1100: Top edge
	"*", // 1101: All but bottom-right
	"@", // 1110: All but bottom-left
	"#", // 1111: Full block
}

// Glyph returns the glyph for a pattern index. Only the low four bits of
// idx are used.
func (t *GlyphTable) Glyph(idx PatternIndex) string {
	return t[idx&0x0f]
}
