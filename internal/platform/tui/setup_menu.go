package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"tenpair/internal/config"
	"tenpair/internal/core"
)

// BoardSetup holds the board parameters chosen in the setup selector.
type BoardSetup struct {
	Rows  int
	Cols  int
	Level int
}

// setupField identifies an adjustable row in the setup selector.
type setupField int

const (
	fieldRows setupField = iota
	fieldCols
	fieldLevel
	fieldStart
	fieldCount
)

// SetupModel lets users pick board dimensions and starting level before
// a game begins. Left/right adjust the highlighted value within the
// configured bounds.
type SetupModel struct {
	cursor    setupField
	setup     BoardSetup
	board     config.BoardConfig
	levels    config.LevelsConfig
	width     int
	height    int
	keyMapper *KeyMapper
	choosing  bool
	quitting  bool
	back      bool
}

// NewSetupModel creates a setup selector seeded from the game config.
func NewSetupModel(cfg config.TenpairConfig, width, height int) SetupModel {
	return SetupModel{
		setup: BoardSetup{
			Rows:  cfg.Board.Rows,
			Cols:  cfg.Board.Cols,
			Level: cfg.Levels.Start,
		},
		board:     cfg.Board,
		levels:    cfg.Levels,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m SetupModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m SetupModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < fieldCount-1 {
			m.cursor++
		}
	case MenuActionLeft:
		m.adjust(-1)
	case MenuActionRight:
		m.adjust(1)
	case MenuActionSelect:
		if m.cursor == fieldStart {
			m.choosing = false
			return m, tea.Quit
		}
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

// adjust moves the highlighted value by delta, clamped to config bounds.
func (m *SetupModel) adjust(delta int) {
	switch m.cursor {
	case fieldRows:
		m.setup.Rows, _ = m.board.ClampDimensions(m.setup.Rows+delta, m.setup.Cols)
	case fieldCols:
		_, m.setup.Cols = m.board.ClampDimensions(m.setup.Rows, m.setup.Cols+delta)
	case fieldLevel:
		m.setup.Level = m.levels.ClampLevel(m.setup.Level + delta)
	}
}

// View renders the setup selector.
func (m SetupModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("B O A R D   S E T U P", m.width))
	b.WriteString("\n\n")

	lines := []struct {
		field setupField
		label string
	}{
		{fieldRows, fmt.Sprintf("Rows:  < %2d >   (%d-%d)", m.setup.Rows, m.board.MinRows, m.board.MaxRows)},
		{fieldCols, fmt.Sprintf("Cols:  < %2d >   (%d-%d)", m.setup.Cols, m.board.MinCols, m.board.MaxCols)},
		{fieldLevel, fmt.Sprintf("Level: < %2d >   (1-%d)", m.setup.Level, m.levels.Max)},
		{fieldStart, "Start Game"},
	}

	for _, line := range lines {
		cursor := "  "
		if line.field == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+line.label, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Left/Right: Adjust  |  Enter: Start  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the chosen setup, or nil if still choosing.
func (m SetupModel) Selected() *BoardSetup {
	if m.choosing {
		return nil
	}
	return &m.setup
}

// IsQuitting returns true if user wants to quit.
func (m SetupModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m SetupModel) WantsBack() bool {
	return m.back
}

// RunSetupSelector runs the board setup selector and returns the chosen
// board parameters. A nil setup with nil error means the user backed out.
func RunSetupSelector(cfg config.TenpairConfig, rt core.RuntimeConfig) (*BoardSetup, core.RuntimeConfig, error) {
	model := NewSetupModel(cfg, rt.ScreenW, rt.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, rt, err
	}

	m, ok := finalModel.(SetupModel)
	if !ok {
		return nil, rt, nil
	}

	if m.IsQuitting() || m.WantsBack() {
		return nil, rt, nil
	}

	setup := m.Selected()
	if setup != nil {
		rt.Rows = setup.Rows
		rt.Cols = setup.Cols
		rt.Level = setup.Level
	}

	return setup, rt, nil
}
