package asciiart

import "image/color"

// Pixel is one straight-alpha RGBA sample with 8-bit channels.
type Pixel struct {
	R, G, B, A uint8
}

// Transparent is the sentinel used for neighbors outside the image.
var Transparent = Pixel{}

// pixelFromNRGBA converts a non-premultiplied color to a Pixel.
func pixelFromNRGBA(c color.NRGBA) Pixel {
	return Pixel{R: c.R, G: c.G, B: c.B, A: c.A}
}

// DistanceSquared returns the squared Euclidean distance between two
// pixels over all four channels.
func (p Pixel) DistanceSquared(other Pixel) int {
	dr := int(p.R) - int(other.R)
	dg := int(p.G) - int(other.G)
	db := int(p.B) - int(other.B)
	da := int(p.A) - int(other.A)
	return dr*dr + dg*dg + db*db + da*da
}

// IsTransparent reports whether the pixel's alpha, normalized to [0,1],
// is below AlphaCutoff. Such pixels render as a blank cell.
func (p Pixel) IsTransparent() bool {
	return float64(p.A)/255 < AlphaCutoff
}
