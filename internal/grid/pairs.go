package grid

import "math/rand"

// FillMax asks AddRandomPairs to place as many pairs as the empty cells
// allow: floor(empty/2).
const FillMax = -1

// AddRandomPairs returns a copy of the grid with numPairs additional
// complementary pairs placed in randomly chosen empty cells. The input
// grid is never mutated.
//
// Empty positions are permuted with a uniform Fisher-Yates shuffle and
// consumed two at a time. Each consumed pair gets a first value drawn
// uniformly from [0, FirstValueMax] and a second value of PairSum minus
// the first, so every inserted pair sums to exactly PairSum.
//
// Pass FillMax (or any negative count) to fill as much as possible.
// If fewer than 2*numPairs empty cells exist, as many complete pairs as
// fit are placed; an odd leftover cell is never touched.
func AddRandomPairs(g Grid, rng *rand.Rand, numPairs int) Grid {
	empty := g.EmptyPositions()

	if numPairs < 0 {
		numPairs = len(empty) / 2
	}
	numPairs = min(numPairs, len(empty)/2)
	if numPairs == 0 {
		return g.Clone()
	}

	rng.Shuffle(len(empty), func(i, j int) {
		empty[i], empty[j] = empty[j], empty[i]
	})

	out := g.Clone()
	for i := 0; i < numPairs; i++ {
		first := Cell(rng.Intn(FirstValueMax + 1))
		out.set(empty[2*i], first)
		out.set(empty[2*i+1], PairSum-first)
	}
	return out
}
