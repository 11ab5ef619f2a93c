package qview

// Viewport is the visible window over a Canvas, in canvas pixel coordinates.
// H is always twice the terminal row count since every cell holds two pixel rows.
type Viewport struct {
	X, Y int
	W, H int
}

// ResizeTo sets the viewport size from a terminal size in cells
func (v *Viewport) ResizeTo(cols, rows int) {
	v.W = cols
	v.H = rows * 2
}

// SameSize reports whether the viewport already matches a terminal of cols x rows
func (v Viewport) SameSize(cols, rows int) bool {
	return v.W == cols && v.H == rows*2
}

// Pan moves the origin by (dx, dy) and wraps both axes around the canvas.
func (v *Viewport) Pan(dx, dy int, c *Canvas) {
	v.X = wrap(v.X+dx, c.Width())
	v.Y = wrap(v.Y+dy, c.Height())
}

// Effective returns the width and height that can be drawn from the current
// origin without reading past the canvas. The height keeps one extra row of
// headroom below the origin so that the lower pixel of every cell exists.
// An origin outside the canvas has no effective region.
func (v Viewport) Effective(c *Canvas) (w, h int) {
	if !c.Contains(v.X, v.Y) {
		return 0, 0
	}
	w = max(min(v.W, c.Width()-v.X), 0)
	h = max(min(v.H, c.Height()-v.Y-1), 0)
	return w, h
}

// wrap returns n modulo size in the range [0, size)
func wrap(n, size int) int {
	if size <= 0 {
		return 0
	}
	n %= size
	if n < 0 {
		n += size
	}
	return n
}
