package qview

import (
	"errors"
	"fmt"
	"io"
)

// State is the phase of a Session's control loop
type State int

const (
	StateMeasuring State = iota
	StateRendering
	StateAwaitingKey
	StateQuit
)

func (s State) String() string {
	switch s {
	case StateMeasuring:
		return "measuring"
	case StateRendering:
		return "rendering"
	case StateAwaitingKey:
		return "awaiting-key"
	case StateQuit:
		return "quit"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Session is the interactive viewer for one Canvas.
//
// Each iteration polls the terminal size, redraws if it changed, then blocks
// for one key. Every key that does not quit causes a redraw, whether or not it
// moved the viewport. A resize is therefore only noticed after the next key.
type Session struct {
	canvas   *Canvas
	term     Terminal
	renderer *HalfblocksRenderer
	bindings Bindings

	view   Viewport
	state  State
	frames int
}

// NewSession creates a session for c drawing to t. The viewport starts at the
// origin with a zero size so the first measurement always triggers a draw.
func NewSession(c *Canvas, t Terminal) *Session {
	return &Session{
		canvas:   c,
		term:     t,
		renderer: NewHalfblocksRenderer(),
		bindings: DefaultBindings(),
	}
}

// SetBindings replaces the key table
func (s *Session) SetBindings(b Bindings) *Session {
	if b != nil {
		s.bindings = b
	}
	return s
}

// SetCheckerboard sets the pattern drawn behind transparent pixels
func (s *Session) SetCheckerboard(cb Checkerboard) *Session {
	s.renderer.SetCheckerboard(cb)
	return s
}

// Viewport returns the current viewport
func (s *Session) Viewport() Viewport { return s.view }

// State returns the current loop state
func (s *Session) State() State { return s.state }

// Frames returns how many frames have been drawn
func (s *Session) Frames() int { return s.frames }

// Run drives the session until a quit key or the end of input.
func (s *Session) Run() error {
	if s.canvas == nil {
		return fmt.Errorf("no canvas configured")
	}
	if s.term == nil {
		return fmt.Errorf("no terminal configured")
	}

	for {
		s.state = StateMeasuring
		cols, rows, err := s.term.Size()
		if err != nil {
			return err
		}
		if !s.view.SameSize(cols, rows) {
			s.view.ResizeTo(cols, rows)
			if err := s.render(); err != nil {
				return err
			}
		}

		s.state = StateAwaitingKey
		key, err := s.term.ReadKey()
		if err != nil {
			if errors.Is(err, io.EOF) {
				s.state = StateQuit
				return nil
			}
			return err
		}

		if s.HandleKey(key) {
			s.state = StateQuit
			return nil
		}

		if err := s.render(); err != nil {
			return err
		}
	}
}

// HandleKey applies key to the viewport and reports whether it ends the session
func (s *Session) HandleKey(key byte) (quit bool) {
	b := s.bindings.Lookup(key)
	if b.Action == ActionQuit {
		return true
	}
	dx, dy := b.Offset()
	s.view.Pan(dx, dy, s.canvas)
	return false
}

func (s *Session) render() error {
	s.state = StateRendering
	if err := s.renderer.Draw(s.term, s.canvas, s.view); err != nil {
		return err
	}
	s.frames++
	return nil
}
