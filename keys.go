package qview

// Default pan steps in canvas pixels
const (
	DefaultFineStep   = 1
	DefaultCoarseStep = 10
)

// Control bytes read from a raw terminal
const (
	KeyCtrlC byte = 0x03
	KeyCtrlD byte = 0x04
)

// Action is what a key does to the session
type Action int

const (
	// ActionNone redraws without changing the viewport
	ActionNone Action = iota
	// ActionPan moves the viewport along one axis
	ActionPan
	// ActionQuit ends the session for the current file
	ActionQuit
)

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionPan:
		return "pan"
	case ActionQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Axis selects the viewport coordinate a pan changes
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	if a == AxisY {
		return "y"
	}
	return "x"
}

// Binding is one entry of the key table
type Binding struct {
	Action Action
	Axis   Axis
	Delta  int
}

// Offset returns the (dx, dy) a pan binding applies
func (b Binding) Offset() (dx, dy int) {
	if b.Action != ActionPan {
		return 0, 0
	}
	if b.Axis == AxisY {
		return 0, b.Delta
	}
	return b.Delta, 0
}

// Bindings maps an input byte to what it does
type Bindings map[byte]Binding

// DefaultBindings returns the key table with the default steps
func DefaultBindings() Bindings {
	return NewBindings(DefaultFineStep, DefaultCoarseStep)
}

// NewBindings builds the key table for the given fine and coarse steps.
//
// NOTE: 's' moves the origin up the canvas and 'w' moves it down, which is
// the opposite of most viewers. The mapping is kept as-is.
func NewBindings(fine, coarse int) Bindings {
	return Bindings{
		KeyCtrlD: {Action: ActionQuit},
		KeyCtrlC: {Action: ActionQuit},
		'q':      {Action: ActionQuit},

		's': {Action: ActionPan, Axis: AxisY, Delta: -fine},
		'S': {Action: ActionPan, Axis: AxisY, Delta: -coarse},
		'w': {Action: ActionPan, Axis: AxisY, Delta: fine},
		'W': {Action: ActionPan, Axis: AxisY, Delta: coarse},
		'a': {Action: ActionPan, Axis: AxisX, Delta: -fine},
		'A': {Action: ActionPan, Axis: AxisX, Delta: -coarse},
		'd': {Action: ActionPan, Axis: AxisX, Delta: fine},
		'D': {Action: ActionPan, Axis: AxisX, Delta: coarse},
	}
}

// Lookup returns the binding for key. Unbound keys map to ActionNone.
func (b Bindings) Lookup(key byte) Binding {
	if binding, ok := b[key]; ok {
		return binding
	}
	return Binding{Action: ActionNone}
}
