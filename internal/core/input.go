package core

// Action represents a semantic game action, abstracted from physical key
// presses or mouse events. This allows games to work with high-level
// intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionUp               // W, Up arrow, k - move cursor up
	ActionDown             // S, Down arrow, j - move cursor down
	ActionLeft             // A, Left arrow, h - move cursor left
	ActionRight            // D, Right arrow, l - move cursor right
	ActionSelect           // Enter, Space - select the cell under the cursor
	ActionConfirm          // Enter - confirm selection in menu
	ActionBack             // B, Escape - go back to menu
	ActionRestart          // R key - restart at current board/level
	ActionNextLevel        // N key - advance level after clearing the board
	ActionLevelUp          // ] key - raise level (rebuilds the board)
	ActionLevelDown        // [ key - lower level (rebuilds the board)
	ActionQuit             // Q, Ctrl+C - exit game/session
	ActionPause            // P - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionSelect:
		return "Select"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionNextLevel:
		return "NextLevel"
	case ActionLevelUp:
		return "LevelUp"
	case ActionLevelDown:
		return "LevelDown"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation tick.
// It contains all actions that were triggered during this frame, plus an
// optional cell click delivered by the platform's mouse handling.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Click is an optional board-cell click (from the mouse), already
	// translated from screen to grid coordinates by the platform.
	Click *CellClick
}

// CellClick identifies a clicked board cell in grid coordinates.
type CellClick struct {
	Row, Col int
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

// SetClick records a board-cell click for this frame.
func (f *InputFrame) SetClick(row, col int) {
	f.Click = &CellClick{Row: row, Col: col}
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions and the click for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Click = nil
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	if f.Click != nil {
		click := *f.Click
		clone.Click = &click
	}
	return clone
}
