package grid

import (
	"errors"
	"testing"
)

func TestNewInvalidDimensions(t *testing.T) {
	tests := []struct {
		name       string
		rows, cols int
	}{
		{"zero rows", 0, 5},
		{"zero cols", 5, 0},
		{"negative rows", -1, 5},
		{"negative cols", 5, -3},
		{"both zero", 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.rows, tc.cols)
			if !errors.Is(err, ErrInvalidDimension) {
				t.Errorf("New(%d, %d) error = %v, want ErrInvalidDimension", tc.rows, tc.cols, err)
			}
		})
	}
}

func TestNewEmptyGridIsWon(t *testing.T) {
	sizes := []struct{ rows, cols int }{
		{1, 1}, {3, 3}, {5, 5}, {20, 14}, {1, 14},
	}

	for _, sz := range sizes {
		g, err := New(sz.rows, sz.cols)
		if err != nil {
			t.Fatalf("New(%d, %d) error = %v", sz.rows, sz.cols, err)
		}
		if !g.IsWon() {
			t.Errorf("fresh %dx%d grid should be won", sz.rows, sz.cols)
		}
		if g.CountEmpty() != sz.rows*sz.cols {
			t.Errorf("fresh %dx%d grid has %d empty cells, want %d",
				sz.rows, sz.cols, g.CountEmpty(), sz.rows*sz.cols)
		}
	}
}

func TestCellEmptyDistinctFromZero(t *testing.T) {
	if Cell(0).IsEmpty() {
		t.Error("a zero token must not count as empty")
	}
	if !Empty.IsEmpty() {
		t.Error("the Empty sentinel must count as empty")
	}
}

func TestIsWonPure(t *testing.T) {
	g := MustNew(3, 3)
	g.set(Position{Row: 1, Col: 1}, 4)

	first := g.IsWon()
	second := g.IsWon()
	if first != second {
		t.Error("IsWon must be pure: two calls on the same grid disagreed")
	}
	if first {
		t.Error("grid with a token should not be won")
	}
}

func TestClearPair(t *testing.T) {
	g := MustNew(3, 3)
	a := Position{Row: 0, Col: 0}
	b := Position{Row: 0, Col: 1}
	g.set(a, 3)
	g.set(b, 7)

	cleared := g.ClearPair(a, b)

	if !cleared.IsWon() {
		t.Error("clearing the only pair should leave a won grid")
	}
	// Input grid untouched
	if g.At(a) != 3 || g.At(b) != 7 {
		t.Error("ClearPair mutated its input grid")
	}
}

func TestEmptyPositionsRowMajor(t *testing.T) {
	g := MustNew(2, 2)
	g.set(Position{Row: 0, Col: 1}, 5)

	got := g.EmptyPositions()
	want := []Position{{0, 0}, {1, 0}, {1, 1}}
	if len(got) != len(want) {
		t.Fatalf("EmptyPositions() returned %d positions, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("EmptyPositions()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestInBounds(t *testing.T) {
	g := MustNew(3, 4)

	tests := []struct {
		pos      Position
		expected bool
	}{
		{Position{0, 0}, true},
		{Position{2, 3}, true},
		{Position{3, 0}, false},
		{Position{0, 4}, false},
		{Position{-1, 0}, false},
		{Position{0, -1}, false},
	}

	for _, tc := range tests {
		if got := g.InBounds(tc.pos); got != tc.expected {
			t.Errorf("InBounds(%v) = %v, want %v", tc.pos, got, tc.expected)
		}
	}
}

func TestCloneIndependence(t *testing.T) {
	g := MustNew(2, 2)
	c := g.Clone()
	c.set(Position{Row: 0, Col: 0}, 9)

	if !g.At(Position{Row: 0, Col: 0}).IsEmpty() {
		t.Error("writing to a clone leaked into the original grid")
	}
}
