package qview

import (
	"fmt"
	"io"
)

// HalfblocksRenderer draws a Viewport of a Canvas with one lower-half-block
// glyph per cell, two pixel rows per terminal row.
type HalfblocksRenderer struct {
	checker Checkerboard
	buf     []byte // reused between frames
}

// NewHalfblocksRenderer creates a renderer using DefaultCheckerboard
func NewHalfblocksRenderer() *HalfblocksRenderer {
	return &HalfblocksRenderer{checker: DefaultCheckerboard}
}

// SetCheckerboard sets the pattern shown behind transparent pixels
func (r *HalfblocksRenderer) SetCheckerboard(cb Checkerboard) *HalfblocksRenderer {
	r.checker = cb
	return r
}

// Checkerboard returns the pattern shown behind transparent pixels
func (r *HalfblocksRenderer) Checkerboard() Checkerboard {
	return r.checker
}

// AppendFrame appends one full frame for the effective region of v to dst.
//
// The frame starts at the home position, rows are terminated by moving back
// to the starting column and down one line instead of relying on line wrap,
// and the colors are reset at the end.
func (r *HalfblocksRenderer) AppendFrame(dst []byte, c *Canvas, v Viewport) []byte {
	dst = appendMoveTo(dst, 1, 1)

	effW, effH := v.Effective(c)
	if effW > 0 && effH > 0 {
		for y := v.Y; y < v.Y+effH; y += 2 {
			top := c.pix[y*c.w : (y+1)*c.w]
			bottom := c.pix[(y+1)*c.w : (y+2)*c.w]
			for x := v.X; x < v.X+effW; x++ {
				fg, bg := r.checker.Composite(x, y, top[x], bottom[x])
				dst = appendColors(dst, fg, bg)
				dst = append(dst, lowerHalf...)
			}
			dst = appendCursorBack(dst, effW)
			dst = append(dst, cursorDown1...)
		}
	}

	return append(dst, sgrReset...)
}

// Render returns the frame for v as a string
func (r *HalfblocksRenderer) Render(c *Canvas, v Viewport) string {
	return string(r.AppendFrame(nil, c, v))
}

// Draw writes the frame for v to w
func (r *HalfblocksRenderer) Draw(w io.Writer, c *Canvas, v Viewport) error {
	r.buf = r.AppendFrame(r.buf[:0], c, v)
	if _, err := w.Write(r.buf); err != nil {
		return fmt.Errorf("failed to write frame: %w", err)
	}
	return nil
}
