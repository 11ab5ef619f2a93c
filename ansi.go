package qview

import (
	"image/color"
	"strconv"
)

// Escape sequences written by the renderer
const (
	csi         = "\x1b["
	sgrReset    = "\x1b[m"
	cursorDown1 = "\x1b[B"
	lowerHalf   = "▄" // U+2584 LOWER HALF BLOCK
)

// appendMoveTo appends HVP, moving the cursor to 1-based (row, col)
func appendMoveTo(dst []byte, row, col int) []byte {
	dst = append(dst, csi...)
	dst = strconv.AppendInt(dst, int64(row), 10)
	dst = append(dst, ';')
	dst = strconv.AppendInt(dst, int64(col), 10)
	return append(dst, 'f')
}

// appendCursorBack appends CUB, moving the cursor n columns left
func appendCursorBack(dst []byte, n int) []byte {
	dst = append(dst, csi...)
	dst = strconv.AppendInt(dst, int64(n), 10)
	return append(dst, 'D')
}

// appendColors appends a single SGR setting a true-color foreground and background
func appendColors(dst []byte, fg, bg color.RGBA) []byte {
	dst = append(dst, csi+"38;2;"...)
	dst = appendRGB(dst, fg)
	dst = append(dst, ";48;2;"...)
	dst = appendRGB(dst, bg)
	return append(dst, 'm')
}

func appendRGB(dst []byte, c color.RGBA) []byte {
	dst = strconv.AppendUint(dst, uint64(c.R), 10)
	dst = append(dst, ';')
	dst = strconv.AppendUint(dst, uint64(c.G), 10)
	dst = append(dst, ';')
	return strconv.AppendUint(dst, uint64(c.B), 10)
}
