/*
Package qview renders images in a true-color terminal using Unicode half
blocks and lets the user pan around images larger than the window.

Every terminal cell shows two vertically stacked pixels: the upper pixel is
the cell background and the lower pixel is the foreground of a "▄" glyph.
Transparent pixels are blended over a gray checkerboard so that alpha is
visible without terminal support for it.

Supported input formats are those registered with Go's image package (PNG,
JPEG, GIF) plus BMP, TIFF and WebP from golang.org/x/image. Every image is
normalized to 8-bit straight-alpha RGBA on load.

Basic Usage:

	canvas, err := qview.Open("image.png")
	if err != nil {
	    log.Fatal(err)
	}

	tty, err := qview.OpenTTY()
	if err != nil {
	    log.Fatal(err)
	}
	defer tty.Close()

	if err := qview.NewSession(canvas, tty).Run(); err != nil {
	    log.Fatal(err)
	}

Rendering a fixed window without a session:

	r := qview.NewHalfblocksRenderer()
	frame := r.Render(canvas, qview.Viewport{X: 0, Y: 0, W: 80, H: 48})
	fmt.Print(frame)

Keys:

	a / d    pan left / right by 1 pixel (A / D by 10)
	s / w    pan up / down by 1 pixel (S / W by 10)
	q        next file (also Ctrl-D and Ctrl-C)

Note that 's' moves toward the top of the image and 'w' toward the bottom.
*/
package qview
