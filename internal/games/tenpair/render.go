package tenpair

import (
	"fmt"
	"strconv"

	"tenpair/internal/core"
	"tenpair/internal/grid"
)

const (
	cellWidth  = 4 // Width of each cell including its left border
	cellHeight = 2 // Height of each cell including its top border
	hudHeight  = 2 // HUD line plus separator
)

// layout recomputes the board placement for the current screen and board
// dimensions and flags the game as paused-too-small when it cannot fit.
func (g *Game) layout() {
	boardW := g.cols*cellWidth + 1
	boardH := g.rows*cellHeight + 1

	requiredW := boardW + 2
	requiredH := boardH + hudHeight + 2
	if g.screenW < requiredW || g.screenH < requiredH {
		g.tooSmall = true
		return
	}
	g.tooSmall = false

	g.boardX = (g.screenW - boardW) / 2
	g.boardY = hudHeight + 1
}

// CellAt maps screen coordinates to a board cell, for mouse clicks.
// Returns false when the point is outside the board interior.
func (g *Game) CellAt(screenX, screenY int) (grid.Position, bool) {
	if g.tooSmall {
		return grid.Position{}, false
	}

	dx := screenX - g.boardX
	dy := screenY - g.boardY
	if dx <= 0 || dy <= 0 {
		return grid.Position{}, false
	}

	col := dx / cellWidth
	row := dy / cellHeight
	// Clicks landing exactly on a border line are ignored.
	if dx%cellWidth == 0 || dy%cellHeight == 0 {
		return grid.Position{}, false
	}

	p := grid.Position{Row: row, Col: col}
	if !g.board.InBounds(p) {
		return grid.Position{}, false
	}
	return p, true
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderBoard(dst)

	switch {
	case g.campaignDone:
		g.renderOverlay(dst, "All levels cleared!", fmt.Sprintf("Final score: %d", g.score))
	case g.board.IsWon():
		if g.level >= g.cfg.Levels.Max {
			g.renderOverlay(dst, "Board cleared!", "N: finish  R: replay level")
		} else {
			g.renderOverlay(dst, "Board cleared!", "N: next level  R: replay")
		}
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	var hud string
	if g.mode == ModeZen {
		hud = fmt.Sprintf(" Ten-Pair (Zen) | Score: %d  Level: %d/%d  Tokens: %d",
			g.score, g.level, g.cfg.Levels.Max, g.board.CountTokens())
	} else {
		secondsLeft := (g.spawnEveryTicks - g.spawnTicker + g.tickRate - 1) / g.tickRate
		hud = fmt.Sprintf(" Ten-Pair | Score: %d  Level: %d/%d  Tokens: %d  Spawn in: %ds",
			g.score, g.level, g.cfg.Levels.Max, g.board.CountTokens(), secondsLeft)
	}

	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderBoard draws the grid lines and tokens.
func (g *Game) renderBoard(dst *core.Screen) {
	// Grid borders with intersections
	for row := 0; row <= g.rows; row++ {
		for col := 0; col <= g.cols; col++ {
			px := g.boardX + col*cellWidth
			py := g.boardY + row*cellHeight

			dst.Set(px, py, g.borderRune(row, col))

			if col < g.cols {
				for i := 1; i < cellWidth; i++ {
					dst.Set(px+i, py, '─')
				}
			}
			if row < g.rows {
				for i := 1; i < cellHeight; i++ {
					dst.Set(px, py+i, '│')
				}
			}
		}
	}

	// Tokens, selection and cursor
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			p := grid.Position{Row: row, Col: col}
			cell := g.board.At(p)

			cx := g.boardX + col*cellWidth + 1
			cy := g.boardY + row*cellHeight + 1

			color := g.cellColor(p)

			if !cell.IsEmpty() {
				val := strconv.Itoa(int(cell))
				// Right-align within the interior; column cx stays free
				// for the selection mark.
				vx := cx + cellWidth - 1 - len(val)
				for i, ch := range val {
					dst.SetCell(vx+i, cy, ch, color)
				}
			} else if g.cursor == p {
				// Make the cursor visible on empty cells too.
				dst.SetCell(cx+1, cy, '·', core.ColorBrightCyan)
			}

			if g.selection != nil && *g.selection == p {
				dst.SetCell(cx, cy, '▶', core.ColorBrightYellow)
			}
		}
	}
}

// borderRune picks the box-drawing character for a grid intersection.
func (g *Game) borderRune(row, col int) rune {
	switch {
	case row == 0 && col == 0:
		return '┌'
	case row == 0 && col == g.cols:
		return '┐'
	case row == g.rows && col == 0:
		return '└'
	case row == g.rows && col == g.cols:
		return '┘'
	case row == 0:
		return '┬'
	case row == g.rows:
		return '┴'
	case col == 0:
		return '├'
	case col == g.cols:
		return '┤'
	default:
		return '┼'
	}
}

// cellColor returns the token color for a cell: selected beats cursor
// beats plain.
func (g *Game) cellColor(p grid.Position) core.Color {
	if g.selection != nil && *g.selection == p {
		return core.ColorBrightYellow
	}
	if g.cursor == p {
		return core.ColorBrightCyan
	}
	return core.ColorWhite
}

// renderOverlay draws a centered overlay message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := core.Max(len(line1), len(line2))
	boxW := maxLen + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
