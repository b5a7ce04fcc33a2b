// Package tenpair implements the ten-pair puzzle: a board of numeric
// tokens where the player clears two cells at a time by picking values
// that sum to ten. New pairs spawn on a level-scaled timer (classic
// mode) and the board is won when every cell is empty.
package tenpair

import (
	"fmt"
	"math/rand"
	"strings"

	"tenpair/internal/config"
	"tenpair/internal/core"
	"tenpair/internal/grid"
	"tenpair/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	// ModeClassic spawns a new pair on a timer that shortens with level.
	ModeClassic Mode = "classic"
	// ModeZen has no autonomous spawning: clear the initial board.
	ModeZen Mode = "zen"
)

// Game implements the ten-pair puzzle as a registry.Game.
type Game struct {
	mode Mode
	cfg  config.TenpairConfig
	rng  *rand.Rand
	tick uint64

	score int

	// Board state
	board grid.Grid
	rows  int
	cols  int
	level int

	// Selection is the first cell of an in-progress match attempt.
	// Nil while idle.
	selection *grid.Position

	// Cursor is the keyboard-driven cell highlight. Purely presentational;
	// ActionSelect turns it into a click.
	cursor grid.Position

	// Spawn cadence, in simulation ticks. Rebuilt together with the board
	// on every level or dimension change so a stale cadence never
	// outlives its board.
	tickRate        int
	spawnEveryTicks int
	spawnTicker     int

	// Screen dimensions and board placement (computed by layout)
	screenW int
	screenH int
	boardX  int
	boardY  int

	// State flags
	paused       bool
	tooSmall     bool
	campaignDone bool // Cleared the board at the maximum level

	// Count of internal-consistency defects (reaching the compare step
	// with an empty selected cell). Should stay zero; surfaced through
	// StepResult so the platform can log it.
	invariantViolations int
}

// Package-level variables for config, set by the CLI before game creation.
var (
	configPath       string
	difficultyPreset string
)

// SetConfigPath sets the config file path used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset applied on the next Reset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// New creates a new classic mode ten-pair game.
func New() *Game {
	return &Game{
		mode: ModeClassic,
	}
}

// NewZen creates a new zen mode ten-pair game (no periodic spawning).
func NewZen() *Game {
	return &Game{
		mode: ModeZen,
	}
}

func init() {
	registry.Register("tenpair", func() registry.Game {
		return New()
	})
	registry.Register("tenpair_zen", func() registry.Game {
		return NewZen()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeZen {
		return "tenpair_zen"
	}
	return "tenpair"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeZen {
		return "Ten-Pair (Zen)"
	}
	return "Ten-Pair"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	loaded, err := config.Load(configPath)
	if err != nil {
		loaded = config.DefaultTenpairConfig()
	}
	config.ApplyPreset(&loaded, config.DifficultyPreset(difficultyPreset))
	g.cfg = loaded

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.score = 0
	g.paused = false
	g.campaignDone = false
	g.invariantViolations = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}

	g.rows, g.cols = g.cfg.Board.ClampDimensions(cfg.Rows, cfg.Cols)
	g.level = g.cfg.Levels.ClampLevel(cfg.Level)
	g.cursor = grid.Position{}

	g.rebuildBoard()
}

// rebuildBoard replaces the whole board state for the current rows, cols
// and level: a fresh empty board populated with pairs_per_level * level
// pairs (bounded by capacity), selection reset, spawn cadence restarted.
func (g *Game) rebuildBoard() {
	board := grid.MustNew(g.rows, g.cols)
	g.board = grid.AddRandomPairs(board, g.rng, g.cfg.Levels.PairsPerLevel*g.level)
	g.selection = nil
	g.campaignDone = false
	g.cursor.Row = core.Clamp(g.cursor.Row, 0, g.rows-1)
	g.cursor.Col = core.Clamp(g.cursor.Col, 0, g.cols-1)
	g.resetSpawnTimer()
	g.layout()
}

// resetSpawnTimer recomputes the spawn interval for the current level and
// restarts the countdown.
func (g *Game) resetSpawnTimer() {
	interval := g.cfg.Spawn.IntervalSeconds(g.level)
	g.spawnEveryTicks = core.Max(1, int(interval*float64(g.tickRate)))
	g.spawnTicker = 0
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if input.Has(core.ActionRestart) {
		g.restart()
		return g.result()
	}

	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || g.tooSmall {
		return g.result()
	}

	if g.board.IsWon() {
		g.stepWon(input)
		return g.result()
	}

	g.handleLevelChange(input)
	g.handleCursor(input)

	if click, ok := g.clickFrom(input); ok {
		g.HandleCellClick(click.Row, click.Col)
	}

	// Periodic spawn (classic only): one new pair per elapsed interval,
	// never into a board that was just cleared.
	if g.mode == ModeClassic && !g.board.IsWon() {
		g.spawnTicker++
		if g.spawnTicker >= g.spawnEveryTicks {
			g.spawnTicker = 0
			g.board = grid.AddRandomPairs(g.board, g.rng, 1)
		}
	}

	return g.result()
}

// restart rebuilds the board at the current configuration and zeroes the
// score.
func (g *Game) restart() {
	g.score = 0
	g.rebuildBoard()
}

// stepWon handles input while the win overlay is showing.
func (g *Game) stepWon(input core.InputFrame) {
	if g.campaignDone {
		return
	}
	if input.Has(core.ActionNextLevel) || input.Has(core.ActionSelect) {
		if g.level >= g.cfg.Levels.Max {
			g.campaignDone = true
			return
		}
		g.level++
		g.rebuildBoard()
	}
}

// handleLevelChange rebuilds the game state when the player adjusts the
// level. The board is rebuilt from empty, losing in-progress tokens.
func (g *Game) handleLevelChange(input core.InputFrame) {
	level := g.level
	if input.Has(core.ActionLevelUp) {
		level++
	}
	if input.Has(core.ActionLevelDown) {
		level--
	}
	level = core.Clamp(level, 1, g.cfg.Levels.Max)
	if level == g.level {
		return
	}
	g.level = level
	g.rebuildBoard()
}

// handleCursor moves the keyboard cursor within board bounds.
func (g *Game) handleCursor(input core.InputFrame) {
	if input.Has(core.ActionUp) {
		g.cursor.Row--
	}
	if input.Has(core.ActionDown) {
		g.cursor.Row++
	}
	if input.Has(core.ActionLeft) {
		g.cursor.Col--
	}
	if input.Has(core.ActionRight) {
		g.cursor.Col++
	}
	g.cursor.Row = core.Clamp(g.cursor.Row, 0, g.rows-1)
	g.cursor.Col = core.Clamp(g.cursor.Col, 0, g.cols-1)
}

// clickFrom extracts the cell click for this frame: an explicit mouse
// click wins over a keyboard select on the cursor cell.
func (g *Game) clickFrom(input core.InputFrame) (grid.Position, bool) {
	if input.Click != nil {
		p := grid.Position{Row: input.Click.Row, Col: input.Click.Col}
		if g.board.InBounds(p) {
			g.cursor = p
			return p, true
		}
		return grid.Position{}, false
	}
	if input.Has(core.ActionSelect) {
		return g.cursor, true
	}
	return grid.Position{}, false
}

// HandleCellClick resolves a click on the given cell through the
// match-interaction state machine:
//
//	empty cell          -> clear any selection
//	same selected cell  -> deselect
//	no selection        -> select the cell
//	second cell, sum 10 -> clear both, score a pair
//	second cell, else   -> mismatch; the original selection stays put
func (g *Game) HandleCellClick(row, col int) {
	p := grid.Position{Row: row, Col: col}
	if !g.board.InBounds(p) {
		return
	}

	clicked := g.board.At(p)
	if clicked.IsEmpty() {
		g.selection = nil
		return
	}

	if g.selection == nil {
		sel := p
		g.selection = &sel
		return
	}

	sel := *g.selection
	if sel == p {
		g.selection = nil
		return
	}

	selected := g.board.At(sel)
	if selected.IsEmpty() {
		// Unreachable under correct sequencing: a selection always points
		// at a non-empty cell. Count it, drop the stale selection, ignore
		// the click.
		g.invariantViolations++
		g.selection = nil
		return
	}

	if int(selected)+int(clicked) == grid.PairSum {
		g.board = g.board.ClearPair(sel, p)
		g.selection = nil
		g.score++
	}
	// Mismatch: selection intentionally left standing; a further click
	// on it (or on an empty cell) deselects.
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Level:    g.level,
		Won:      g.board.IsWon(),
		GameOver: g.campaignDone,
		Paused:   g.paused,
	}
}

func (g *Game) result() core.StepResult {
	return core.StepResult{
		State:               g.State(),
		InvariantViolations: g.invariantViolations,
	}
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Tick: %d, Score: %d, Level: %d/%d\n", g.tick, g.score, g.level, g.cfg.Levels.Max))
	b.WriteString(fmt.Sprintf("Board: %dx%d, Tokens: %d\n", g.rows, g.cols, g.board.CountTokens()))
	if g.selection != nil {
		b.WriteString(fmt.Sprintf("Selection: (%d, %d)\n", g.selection.Row, g.selection.Col))
	}
	b.WriteString(fmt.Sprintf("Won: %v, Done: %v, Paused: %v, Violations: %d\n",
		g.board.IsWon(), g.campaignDone, g.paused, g.invariantViolations))
	return b.String()
}
