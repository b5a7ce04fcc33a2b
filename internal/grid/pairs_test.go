package grid

import (
	"math/rand"
	"testing"
)

// tokensAdded returns the values present in next but empty in prev.
func tokensAdded(t *testing.T, prev, next Grid) []Cell {
	t.Helper()
	var added []Cell
	for row := 0; row < prev.Rows(); row++ {
		for col := 0; col < prev.Cols(); col++ {
			p := Position{Row: row, Col: col}
			if prev.At(p).IsEmpty() && !next.At(p).IsEmpty() {
				added = append(added, next.At(p))
			}
		}
	}
	return added
}

// checkComplementary verifies the added tokens can be partitioned into
// pairs summing to PairSum: for every value v, count(v) == count(10-v),
// with count(5) even.
func checkComplementary(t *testing.T, added []Cell) {
	t.Helper()
	counts := make(map[Cell]int)
	for _, v := range added {
		if v < 0 || v > PairSum {
			t.Errorf("token %d out of range [0, %d]", v, PairSum)
		}
		counts[v]++
	}
	for v, n := range counts {
		if counts[PairSum-v] != n {
			t.Errorf("count(%d) = %d but count(%d) = %d; tokens cannot pair up",
				v, n, PairSum-v, counts[PairSum-v])
		}
	}
	if counts[PairSum/2]%2 != 0 {
		t.Errorf("odd number of %d tokens cannot pair up", PairSum/2)
	}
}

func TestAddRandomPairsCount(t *testing.T) {
	rng := rand.New(rand.NewSource(12345))

	tests := []struct {
		name       string
		rows, cols int
		numPairs   int
		wantPairs  int
	}{
		{"three pairs on 5x5", 5, 5, 3, 3},
		{"zero pairs", 5, 5, 0, 0},
		{"exact capacity 2x3", 2, 3, 3, 3},
		{"over capacity clamps", 2, 2, 10, 2},
		{"single cell fits nothing", 1, 1, 1, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := MustNew(tc.rows, tc.cols)
			next := AddRandomPairs(g, rng, tc.numPairs)

			added := tokensAdded(t, g, next)
			if len(added) != 2*tc.wantPairs {
				t.Fatalf("added %d tokens, want %d", len(added), 2*tc.wantPairs)
			}
			checkComplementary(t, added)

			if next.CountEmpty() != g.CountEmpty()-2*tc.wantPairs {
				t.Errorf("empty count = %d, want %d", next.CountEmpty(), g.CountEmpty()-2*tc.wantPairs)
			}
		})
	}
}

func TestAddRandomPairsFillMax(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	g := MustNew(3, 3) // 9 cells: floor(9/2) = 4 pairs, one cell left empty
	next := AddRandomPairs(g, rng, FillMax)

	if next.CountEmpty() != 1 {
		t.Errorf("fill-max on 3x3 left %d empty cells, want 1", next.CountEmpty())
	}
	checkComplementary(t, tokensAdded(t, g, next))
}

func TestAddRandomPairsSingleEmptyCell(t *testing.T) {
	rng := rand.New(rand.NewSource(99))

	// Fill a 3x3 down to exactly one empty cell.
	g := AddRandomPairs(MustNew(3, 3), rng, FillMax)
	if g.CountEmpty() != 1 {
		t.Fatalf("setup: %d empty cells, want 1", g.CountEmpty())
	}

	// floor(1/2) = 0: nothing may change.
	next := AddRandomPairs(g, rng, FillMax)
	if len(tokensAdded(t, g, next)) != 0 {
		t.Error("fill-max with one empty cell must place zero pairs")
	}
	if !next.At(g.EmptyPositions()[0]).IsEmpty() {
		t.Error("the odd leftover cell must never be modified")
	}
}

func TestAddRandomPairsDoesNotMutateInput(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	g := MustNew(4, 4)
	before := g.Clone()

	_ = AddRandomPairs(g, rng, 5)

	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			p := Position{Row: row, Col: col}
			if g.At(p) != before.At(p) {
				t.Fatalf("input grid mutated at %v", p)
			}
		}
	}
}

func TestAddRandomPairsOnPartialGrid(t *testing.T) {
	rng := rand.New(rand.NewSource(6))

	g := MustNew(4, 4)
	g.set(Position{Row: 0, Col: 0}, 2)
	g.set(Position{Row: 3, Col: 3}, 8)

	next := AddRandomPairs(g, rng, 2)

	// Existing tokens survive untouched.
	if next.At(Position{Row: 0, Col: 0}) != 2 || next.At(Position{Row: 3, Col: 3}) != 8 {
		t.Error("pre-existing tokens were disturbed")
	}
	added := tokensAdded(t, g, next)
	if len(added) != 4 {
		t.Fatalf("added %d tokens, want 4", len(added))
	}
	checkComplementary(t, added)
}

func TestAddRandomPairsValueRange(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))

	// Value distribution over many fills: firsts in [0,5] imply all
	// tokens stay within [0,10] with both halves represented.
	seen := make(map[Cell]bool)
	for i := 0; i < 200; i++ {
		g := AddRandomPairs(MustNew(4, 4), rng, FillMax)
		for row := 0; row < g.Rows(); row++ {
			for col := 0; col < g.Cols(); col++ {
				c := g.At(Position{Row: row, Col: col})
				if c.IsEmpty() {
					continue
				}
				if c < 0 || c > PairSum {
					t.Fatalf("token %d out of range", c)
				}
				seen[c] = true
			}
		}
	}

	// With 200 full boards every value in [0,10] should occur.
	for v := Cell(0); v <= PairSum; v++ {
		if !seen[v] {
			t.Errorf("value %d never generated across 200 boards", v)
		}
	}
}

func TestAddRandomPairsShuffleSpread(t *testing.T) {
	// A uniform shuffle must be able to land the first pair outside the
	// first two row-major cells. Catches degenerate "no shuffle" bugs,
	// not full uniformity.
	hitElsewhere := false
	for seed := int64(0); seed < 50; seed++ {
		rng := rand.New(rand.NewSource(seed))
		g := AddRandomPairs(MustNew(3, 3), rng, 1)
		if g.At(Position{Row: 0, Col: 0}).IsEmpty() || g.At(Position{Row: 0, Col: 1}).IsEmpty() {
			hitElsewhere = true
			break
		}
	}
	if !hitElsewhere {
		t.Error("50 seeds always filled the first two row-major cells; shuffle looks broken")
	}
}
