package qview

import (
	"errors"
	"io"
	"os"

	"golang.org/x/term"
)

// Terminal is what a Session draws into and reads keys from
type Terminal interface {
	io.Writer

	// Size returns the terminal size in character cells
	Size() (cols, rows int, err error)

	// ReadKey blocks until one input byte is available
	ReadKey() (byte, error)
}

// TTY is a raw-mode session on the controlling terminal. The previous mode is
// restored by Close.
type TTY struct {
	in, out  *os.File
	oldState *term.State
}

// IsTerminal reports whether f is connected to a terminal
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// OpenTTY puts standard input into raw mode: no line buffering, no echo,
// reads return after a single byte.
func OpenTTY() (*TTY, error) {
	return openTTY(os.Stdin, os.Stdout)
}

func openTTY(in, out *os.File) (*TTY, error) {
	if !IsTerminal(in) {
		return nil, ErrNotTerminal
	}

	oldState, err := term.MakeRaw(int(in.Fd()))
	if err != nil {
		return nil, &TerminalError{Op: "enter raw mode", Err: err}
	}

	return &TTY{in: in, out: out, oldState: oldState}, nil
}

// Close restores the terminal mode saved by OpenTTY. It is safe to call more than once.
func (t *TTY) Close() error {
	if t == nil || t.oldState == nil {
		return nil
	}
	state := t.oldState
	t.oldState = nil
	if err := term.Restore(int(t.in.Fd()), state); err != nil {
		return &TerminalError{Op: "restore mode", Err: err}
	}
	return nil
}

// Write writes to the terminal output
func (t *TTY) Write(p []byte) (int, error) {
	return t.out.Write(p)
}

// Size queries the output terminal size
func (t *TTY) Size() (cols, rows int, err error) {
	cols, rows, err = term.GetSize(int(t.out.Fd()))
	if err != nil {
		return 0, 0, &TerminalError{Op: "query size", Err: err}
	}
	return cols, rows, nil
}

// ReadKey reads a single byte from the terminal input
func (t *TTY) ReadKey() (byte, error) {
	var buf [1]byte
	for {
		n, err := t.in.Read(buf[:])
		if n == 1 {
			return buf[0], nil
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return 0, io.EOF
			}
			return 0, &TerminalError{Op: "read key", Err: err}
		}
	}
}
