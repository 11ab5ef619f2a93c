package qview

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	shadeOdd  = color.RGBA{R: 0xAA, G: 0xAA, B: 0xAA, A: 0xFF}
	shadeEven = color.RGBA{R: 0xDD, G: 0xDD, B: 0xDD, A: 0xFF}
)

func TestCheckerboardParity(t *testing.T) {
	cb := DefaultCheckerboard

	assert.Equal(t, shadeEven, cb.At(0, 0))
	assert.Equal(t, shadeOdd, cb.At(1, 0))
	assert.Equal(t, shadeOdd, cb.At(0, 1))
	assert.Equal(t, shadeEven, cb.At(1, 1))

	for y := range 6 {
		for x := range 6 {
			assert.NotEqual(t, cb.At(x, y), cb.At(x+1, y), "x toggles at (%d,%d)", x, y)
			assert.NotEqual(t, cb.At(x, y), cb.At(x, y+1), "y toggles at (%d,%d)", x, y)
		}
	}
}

func TestBlendExtremes(t *testing.T) {
	cb := DefaultCheckerboard
	pixels := []color.NRGBA{
		{R: 0, G: 0, B: 0},
		{R: 255, G: 255, B: 255},
		{R: 12, G: 200, B: 99},
	}

	for _, p := range pixels {
		for y := range 2 {
			for x := range 2 {
				opaque := p
				opaque.A = 255
				got := cb.Blend(x, y, opaque)
				assert.Equal(t, color.RGBA{R: p.R, G: p.G, B: p.B, A: 0xFF}, got)

				seeThrough := p
				seeThrough.A = 0
				assert.Equal(t, cb.At(x, y), cb.Blend(x, y, seeThrough))
			}
		}
	}
}

func TestBlendTruncates(t *testing.T) {
	tests := []struct {
		name string
		p    color.NRGBA
		x, y int
		want color.RGBA
	}{
		{
			// (255*128 + 0xDD*127) / 255 = 60707 / 255 = 238.07
			name: "Half white over even",
			p:    color.NRGBA{R: 255, G: 255, B: 255, A: 128},
			want: color.RGBA{R: 238, G: 238, B: 238, A: 0xFF},
		},
		{
			// (0*128 + 0xAA*127) / 255 = 21590 / 255 = 84.67
			name: "Half black over odd",
			p:    color.NRGBA{A: 128},
			x:    1,
			want: color.RGBA{R: 84, G: 84, B: 84, A: 0xFF},
		},
		{
			// R: (200*1 + 0xDD*254)/255 = 56334/255 = 220.92
			// G: (10*1 + 0xDD*254)/255 = 56144/255 = 220.17
			name: "Nearly transparent",
			p:    color.NRGBA{R: 200, G: 10, B: 0, A: 1},
			want: color.RGBA{R: 220, G: 220, B: 220, A: 0xFF},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DefaultCheckerboard.Blend(tt.x, tt.y, tt.p))
		})
	}
}

func TestCompositeRowsCheckIndependently(t *testing.T) {
	transparent := color.NRGBA{R: 1, G: 2, B: 3, A: 0}

	fg, bg := Composite(0, 0, transparent, transparent)
	assert.Equal(t, shadeEven, bg, "top pixel uses row 0")
	assert.Equal(t, shadeOdd, fg, "bottom pixel uses row 1")

	fg, bg = Composite(1, 0, transparent, transparent)
	assert.Equal(t, shadeOdd, bg)
	assert.Equal(t, shadeEven, fg)
}

func TestCompositeOrder(t *testing.T) {
	top := color.NRGBA{R: 255, A: 255}
	bottom := color.NRGBA{B: 255, A: 255}

	fg, bg := Composite(3, 4, top, bottom)
	assert.Equal(t, color.RGBA{B: 255, A: 0xFF}, fg, "foreground draws the lower half")
	assert.Equal(t, color.RGBA{R: 255, A: 0xFF}, bg)
}

func TestCustomCheckerboard(t *testing.T) {
	cb := Checkerboard{
		Odd:  color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xFF},
		Even: color.RGBA{R: 0xF0, G: 0xE0, B: 0xD0, A: 0xFF},
	}
	transparent := color.NRGBA{}

	fg, bg := cb.Composite(0, 0, transparent, transparent)
	assert.Equal(t, cb.Even, bg)
	assert.Equal(t, cb.Odd, fg)
}
