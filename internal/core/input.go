package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionRestart        // Space, R - start a new game after game over
	ActionQuit           // Q, Ctrl+C - exit the program
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the player's input during one simulation tick.
// Besides semantic actions it carries at most one pointer click and at most
// one direct tile selection (keys 1-9); the last one written wins.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	click    Point
	hasClick bool
	tile     int
	hasTile  bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// SetClick records a pointer press at screen cell (x, y).
func (f *InputFrame) SetClick(x, y int) {
	f.click = Point{X: x, Y: y}
	f.hasClick = true
}

// Click returns the pointer press recorded this frame, if any.
func (f InputFrame) Click() (Point, bool) {
	return f.click, f.hasClick
}

// SelectTile records a direct tile selection by index.
func (f *InputFrame) SelectTile(index int) {
	f.tile = index
	f.hasTile = true
}

// Tile returns the tile selected directly this frame, if any.
func (f InputFrame) Tile() (int, bool) {
	return f.tile, f.hasTile
}

// Clear resets all input for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.click = Point{}
	f.hasClick = false
	f.tile = 0
	f.hasTile = false
}
