// Package grid implements the board model for the ten-pair puzzle:
// a rectangular grid of optional numeric tokens, pure queries over it,
// and randomized placement of complementary token pairs.
//
// All operations are copy-on-write: a Grid value handed out is never
// mutated in place, so callers can treat snapshots as immutable.
package grid

import "errors"

// PairSum is the target sum for a matching pair of tokens.
const PairSum = 10

// FirstValueMax is the largest value drawn for the first token of a
// generated pair. The complement PairSum-v covers the rest of the range,
// so tokens span [0, PairSum].
const FirstValueMax = 5

// ErrInvalidDimension is returned when constructing a grid with
// non-positive row or column counts.
var ErrInvalidDimension = errors.New("grid: rows and columns must be positive")

// Cell holds an optional token. Empty is distinct from a zero token:
// 0 is a legal value (it pairs with 10), so emptiness needs its own state.
type Cell int

// Empty is the no-token sentinel.
const Empty Cell = -1

// IsEmpty reports whether the cell holds no token.
func (c Cell) IsEmpty() bool {
	return c == Empty
}

// Position is a 0-indexed (row, column) coordinate on a grid.
type Position struct {
	Row, Col int
}

// Grid is a fixed-size rectangular matrix of cells.
// The zero value is an empty 0x0 grid, which is vacuously won.
type Grid struct {
	rows, cols int
	cells      []Cell // row-major, len == rows*cols
}

// New creates a grid of the given dimensions with every cell empty.
func New(rows, cols int) (Grid, error) {
	if rows <= 0 || cols <= 0 {
		return Grid{}, ErrInvalidDimension
	}

	cells := make([]Cell, rows*cols)
	for i := range cells {
		cells[i] = Empty
	}
	return Grid{rows: rows, cols: cols, cells: cells}, nil
}

// MustNew is New for dimensions already validated by the caller.
// Panics on invalid dimensions.
func MustNew(rows, cols int) Grid {
	g, err := New(rows, cols)
	if err != nil {
		panic(err)
	}
	return g
}

// FromTokens builds a grid from a row-major token slice, with negative
// values meaning empty. len(tokens) must equal rows*cols.
func FromTokens(rows, cols int, tokens []int) (Grid, error) {
	g, err := New(rows, cols)
	if err != nil {
		return Grid{}, err
	}
	if len(tokens) != rows*cols {
		return Grid{}, errors.New("grid: token count does not match dimensions")
	}
	for i, v := range tokens {
		if v >= 0 {
			g.cells[i] = Cell(v)
		}
	}
	return g, nil
}

// Rows returns the number of rows.
func (g Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns.
func (g Grid) Cols() int {
	return g.cols
}

// InBounds reports whether the position lies within the grid.
func (g Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// At returns the cell at the given position.
func (g Grid) At(p Position) Cell {
	return g.cells[p.Row*g.cols+p.Col]
}

// IsWon reports whether every cell is empty. A grid with zero cells
// is vacuously won.
func (g Grid) IsWon() bool {
	for _, c := range g.cells {
		if !c.IsEmpty() {
			return false
		}
	}
	return true
}

// EmptyPositions returns the coordinates of all empty cells in row-major
// order.
func (g Grid) EmptyPositions() []Position {
	var positions []Position
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			if g.At(Position{Row: row, Col: col}).IsEmpty() {
				positions = append(positions, Position{Row: row, Col: col})
			}
		}
	}
	return positions
}

// CountEmpty returns the number of empty cells.
func (g Grid) CountEmpty() int {
	n := 0
	for _, c := range g.cells {
		if c.IsEmpty() {
			n++
		}
	}
	return n
}

// CountTokens returns the number of occupied cells.
func (g Grid) CountTokens() int {
	return g.rows*g.cols - g.CountEmpty()
}

// Clone returns a deep copy of the grid.
func (g Grid) Clone() Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return Grid{rows: g.rows, cols: g.cols, cells: cells}
}

// ClearPair returns a copy of the grid with both positions set to empty.
// The receiver is not modified.
func (g Grid) ClearPair(a, b Position) Grid {
	out := g.Clone()
	out.cells[a.Row*out.cols+a.Col] = Empty
	out.cells[b.Row*out.cols+b.Col] = Empty
	return out
}

// set assigns a cell value in place. Only used on freshly cloned grids
// so the copy-on-write contract holds for callers.
func (g *Grid) set(p Position, c Cell) {
	g.cells[p.Row*g.cols+p.Col] = c
}
