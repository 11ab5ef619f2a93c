package qview

import (
	"errors"
	"fmt"
)

var (
	// ErrNoFiles is returned when the viewer is started without any image paths
	ErrNoFiles = errors.New("no file name given")
	// ErrNotTerminal is returned when standard input is not a terminal
	ErrNotTerminal = errors.New("not a terminal")
)

// DecodeError reports a file that could not be loaded into a Canvas
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("unable to load image: %v", e.Err)
	}
	return fmt.Sprintf("unable to load %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// EncodeError reports a Canvas that could not be written out
type EncodeError struct {
	Path string
	Err  error
}

func (e *EncodeError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("unable to save image: %v", e.Err)
	}
	return fmt.Sprintf("unable to save %s: %v", e.Path, e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }

// TerminalError reports a failed operation on the controlling terminal
type TerminalError struct {
	Op  string
	Err error
}

func (e *TerminalError) Error() string {
	return fmt.Sprintf("terminal %s: %v", e.Op, e.Err)
}

func (e *TerminalError) Unwrap() error { return e.Err }
