package qview

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Canvas is a decoded image normalized to 8-bit straight-alpha RGBA.
// A Canvas is never modified after it is created.
type Canvas struct {
	w, h int
	pix  []color.NRGBA // row-major, len(pix) == w*h
}

// Open decodes the image file at path into a Canvas
func Open(path string) (*Canvas, error) {
	if path == "" {
		return nil, &DecodeError{Err: fmt.Errorf("path cannot be empty")}
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: fmt.Errorf("failed to open file: %w", err)}
	}
	defer file.Close()

	c, err := Decode(file)
	if err != nil {
		var de *DecodeError
		if errors.As(err, &de) {
			de.Path = path
		}
		return nil, err
	}
	return c, nil
}

// Decode reads an image in any registered format from r
func Decode(r io.Reader) (*Canvas, error) {
	if r == nil {
		return nil, &DecodeError{Err: fmt.Errorf("reader cannot be nil")}
	}

	img, _, err := image.Decode(r)
	if err != nil {
		return nil, &DecodeError{Err: fmt.Errorf("failed to decode image: %w", err)}
	}
	return FromImage(img)
}

// FromImage copies img into a new Canvas, converting every pixel to RGBA8.
func FromImage(img image.Image) (*Canvas, error) {
	if img == nil {
		return nil, &DecodeError{Err: fmt.Errorf("image cannot be nil")}
	}

	b := img.Bounds()
	if b.Dx() < 1 || b.Dy() < 1 {
		return nil, &DecodeError{Err: fmt.Errorf("image has no pixels (%dx%d)", b.Dx(), b.Dy())}
	}

	c := &Canvas{
		w:   b.Dx(),
		h:   b.Dy(),
		pix: make([]color.NRGBA, b.Dx()*b.Dy()),
	}

	switch src := img.(type) {
	case *image.NRGBA:
		for y := range c.h {
			for x := range c.w {
				c.pix[y*c.w+x] = src.NRGBAAt(b.Min.X+x, b.Min.Y+y)
			}
		}
	case *image.NRGBA64:
		for y := range c.h {
			for x := range c.w {
				p := src.NRGBA64At(b.Min.X+x, b.Min.Y+y)
				c.pix[y*c.w+x] = color.NRGBA{
					R: scale16(p.R),
					G: scale16(p.G),
					B: scale16(p.B),
					A: scale16(p.A),
				}
			}
		}
	case *image.RGBA64:
		for y := range c.h {
			for x := range c.w {
				p := color.NRGBA64Model.Convert(src.RGBA64At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA64)
				c.pix[y*c.w+x] = color.NRGBA{
					R: scale16(p.R),
					G: scale16(p.G),
					B: scale16(p.B),
					A: scale16(p.A),
				}
			}
		}
	case *image.Gray16:
		for y := range c.h {
			for x := range c.w {
				v := scale16(src.Gray16At(b.Min.X+x, b.Min.Y+y).Y)
				c.pix[y*c.w+x] = color.NRGBA{R: v, G: v, B: v, A: 0xFF}
			}
		}
	default:
		for y := range c.h {
			for x := range c.w {
				c.pix[y*c.w+x] = color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			}
		}
	}

	return c, nil
}

// scale16 reduces a 16-bit channel to 8 bits, rounding to nearest
func scale16(v uint16) uint8 {
	return uint8((uint32(v)*255 + 32895) >> 16)
}

// Size returns the canvas width and height in pixels
func (c *Canvas) Size() (w, h int) {
	return c.w, c.h
}

// Width returns the canvas width in pixels
func (c *Canvas) Width() int { return c.w }

// Height returns the canvas height in pixels
func (c *Canvas) Height() int { return c.h }

// Contains reports whether (x, y) lies inside the canvas
func (c *Canvas) Contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < c.w && y < c.h
}

// At returns the pixel at (x, y). It panics if the point is out of bounds.
func (c *Canvas) At(x, y int) color.NRGBA {
	return c.pix[y*c.w+x]
}

// Image returns a copy of the canvas as an *image.NRGBA
func (c *Canvas) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, c.w, c.h))
	for i, p := range c.pix {
		img.Pix[i*4+0] = p.R
		img.Pix[i*4+1] = p.G
		img.Pix[i*4+2] = p.B
		img.Pix[i*4+3] = p.A
	}
	return img
}

// Encode writes the canvas to w as a non-interlaced RGBA8 PNG
func (c *Canvas) Encode(w io.Writer) error {
	if err := png.Encode(w, c.Image()); err != nil {
		return &EncodeError{Err: fmt.Errorf("failed to encode png: %w", err)}
	}
	return nil
}

// Save writes the canvas to path as a PNG file
func (c *Canvas) Save(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return &EncodeError{Path: path, Err: fmt.Errorf("failed to create file: %w", err)}
	}

	if err := c.Encode(file); err != nil {
		file.Close()
		var ee *EncodeError
		if errors.As(err, &ee) {
			ee.Path = path
		}
		return err
	}
	if err := file.Close(); err != nil {
		return &EncodeError{Path: path, Err: fmt.Errorf("failed to close file: %w", err)}
	}
	return nil
}
