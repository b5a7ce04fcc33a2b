package tenpair

import "tenpair/internal/grid"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateWon         GameStateType = "won"
	StateDone        GameStateType = "campaign_done"
	StatePausedSmall GameStateType = "paused_small_window"
	StatePaused      GameStateType = "paused"
)

// Snapshot captures the complete game state for determinism testing and
// debugging.
type Snapshot struct {
	Tick      uint64
	Mode      string
	Level     int
	Score     int
	Rows      int
	Cols      int
	Tokens    []int // Row-major; -1 for empty cells
	Selection *grid.Position
	Cursor    grid.Position
	State     GameStateType

	InvariantViolations int
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.campaignDone:
		state = StateDone
	case g.board.IsWon():
		state = StateWon
	case g.paused:
		state = StatePaused
	}

	tokens := make([]int, 0, g.rows*g.cols)
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			tokens = append(tokens, int(g.board.At(grid.Position{Row: row, Col: col})))
		}
	}

	var selection *grid.Position
	if g.selection != nil {
		sel := *g.selection
		selection = &sel
	}

	return Snapshot{
		Tick:                g.tick,
		Mode:                string(g.mode),
		Level:               g.level,
		Score:               g.score,
		Rows:                g.rows,
		Cols:                g.cols,
		Tokens:              tokens,
		Selection:           selection,
		Cursor:              g.cursor,
		State:               state,
		InvariantViolations: g.invariantViolations,
	}
}
