package qview

import "image/color"

// Checkerboard holds the two shades blended under transparent pixels.
// Odd is used where ((x & 1) + y) & 1 is set, Even everywhere else.
type Checkerboard struct {
	Odd  color.RGBA
	Even color.RGBA
}

// DefaultCheckerboard is the gray pattern used when no other is configured
var DefaultCheckerboard = Checkerboard{
	Odd:  color.RGBA{R: 0xAA, G: 0xAA, B: 0xAA, A: 0xFF},
	Even: color.RGBA{R: 0xDD, G: 0xDD, B: 0xDD, A: 0xFF},
}

// At returns the checker shade for pixel (x, y)
func (cb Checkerboard) At(x, y int) color.RGBA {
	if ((x&1)+y)&1 != 0 {
		return cb.Odd
	}
	return cb.Even
}

// Blend composites p over the checker shade at (x, y) using straight alpha.
// Division truncates.
func (cb Checkerboard) Blend(x, y int, p color.NRGBA) color.RGBA {
	k := cb.At(x, y)
	a := uint32(p.A)
	return color.RGBA{
		R: uint8((uint32(p.R)*a + uint32(k.R)*(255-a)) / 255),
		G: uint8((uint32(p.G)*a + uint32(k.G)*(255-a)) / 255),
		B: uint8((uint32(p.B)*a + uint32(k.B)*(255-a)) / 255),
		A: 0xFF,
	}
}

// Composite turns the pixel pair at column x, rows yTop and yTop+1 into the
// colors of one half-block cell. The lower pixel becomes the foreground
// because the glyph draws the lower half.
func (cb Checkerboard) Composite(x, yTop int, top, bottom color.NRGBA) (fg, bg color.RGBA) {
	return cb.Blend(x, yTop+1, bottom), cb.Blend(x, yTop, top)
}

// Composite is Checkerboard.Composite with DefaultCheckerboard
func Composite(x, yTop int, top, bottom color.NRGBA) (fg, bg color.RGBA) {
	return DefaultCheckerboard.Composite(x, yTop, top, bottom)
}
