package solver

import (
	"math/rand"

	"github.com/hjeni/sudoku-ai/internal/board"
	"github.com/hjeni/sudoku-ai/internal/domain"
)

// fillStrategy produces a starting candidate by filling the grid's blanks.
type fillStrategy func(g *board.Grid, rng *rand.Rand)

// stepStrategy mutates a candidate grid into a neighbouring state.
type stepStrategy func(g *board.Grid, rng *rand.Rand)

// chance fires with probability p: never for p=0, always for p=1.
func chance(rng *rand.Rand, p float64) bool {
	return rng.Float64() < p
}

func randomValue(rng *rand.Rand, size int) uint8 {
	return uint8(1 + rng.Intn(size))
}

// fillUnique fills every row's blanks with a shuffled pool of the values the
// row is missing, so each row ends up a permutation of 1..size.
func fillUnique(g *board.Grid, rng *rand.Rand) {
	for y := 0; y < g.Size(); y++ {
		g.FillRow(y, fillRowUnique(g.Row(y), g.Size(), rng))
	}
}

// fillRowUnique returns the row with blanks replaced by the missing values in
// shuffled order. The input slice is not modified.
func fillRowUnique(row []uint8, size int, rng *rand.Rand) []uint8 {
	seen := make([]bool, size+1)
	for _, v := range row {
		if v != 0 && int(v) <= size {
			seen[v] = true
		}
	}
	pool := make([]uint8, 0, size)
	for v := 1; v <= size; v++ {
		if !seen[v] {
			pool = append(pool, uint8(v))
		}
	}
	rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	out := make([]uint8, len(row))
	copy(out, row)
	for x, v := range out {
		if v == 0 && len(pool) > 0 {
			out[x] = pool[0]
			pool = pool[1:]
		}
	}
	return out
}

// fillRandom assigns an independent uniform value in 1..size to every
// non-initial cell, ignoring row uniqueness.
func fillRandom(g *board.Grid, rng *rand.Rand) {
	size := g.Size()
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			p := domain.Position{X: x, Y: y}
			if !g.IsInitial(p) {
				g.Set(p, randomValue(rng, size))
			}
		}
	}
}

// stepRowSwap picks one row with at least two blanks and exchanges the values
// of two of its originally blank cells. Initial cells are never touched and
// the row's value multiset is preserved.
func stepRowSwap(g *board.Grid, rng *rand.Rand) {
	rows := g.UnfilledRows()
	if len(rows) == 0 {
		return
	}
	row := rows[rng.Intn(len(rows))]
	line := g.Row(row)
	swapInRow(line, g.UnfilledByRow()[row], rng)
	g.FillRow(row, line)
}

// swapInRow exchanges two distinct entries of line chosen uniformly from the
// viable indexes.
func swapInRow(line []uint8, viable []int, rng *rand.Rand) {
	if len(viable) < 2 {
		return
	}
	i := rng.Intn(len(viable))
	j := rng.Intn(len(viable) - 1)
	if j >= i {
		j++
	}
	line[viable[i]], line[viable[j]] = line[viable[j]], line[viable[i]]
}

// cellNeighbourOp perturbs each modifiable cell with probability n by ±1,
// chosen with equal probability and clamped to [1, size].
func cellNeighbourOp(n float64) stepStrategy {
	return func(g *board.Grid, rng *rand.Rand) {
		size := g.Size()
		for _, p := range g.UnfilledPositions() {
			if !chance(rng, n) {
				continue
			}
			v, _ := g.At(p)
			g.Set(p, neighbourValue(v, size, rng))
		}
	}
}

func neighbourValue(v uint8, size int, rng *rand.Rand) uint8 {
	if chance(rng, 0.5) {
		if int(v) < size {
			return v + 1
		}
		return v
	}
	if v > 1 {
		return v - 1
	}
	return 1
}

// cellRegenOp regenerates each modifiable cell with probability beta to a
// fresh uniform value in 1..size.
func cellRegenOp(beta float64) stepStrategy {
	return func(g *board.Grid, rng *rand.Rand) {
		size := g.Size()
		for _, p := range g.UnfilledPositions() {
			if chance(rng, beta) {
				g.Set(p, randomValue(rng, size))
			}
		}
	}
}

// rowNeighbourOp applies, with probability n per eligible row, exactly one
// swap of two originally blank cells in that row.
func rowNeighbourOp(n float64) stepStrategy {
	return func(g *board.Grid, rng *rand.Rand) {
		unfilled := g.UnfilledByRow()
		for _, row := range g.UnfilledRows() {
			if !chance(rng, n) {
				continue
			}
			line := g.Row(row)
			swapInRow(line, unfilled[row], rng)
			g.FillRow(row, line)
		}
	}
}

// rowRegenOp clears and uniquely refills each eligible row's blanks with
// probability beta.
func rowRegenOp(beta float64) stepStrategy {
	return func(g *board.Grid, rng *rand.Rand) {
		unfilled := g.UnfilledByRow()
		for _, row := range g.UnfilledRows() {
			if !chance(rng, beta) {
				continue
			}
			line := g.Row(row)
			for _, x := range unfilled[row] {
				line[x] = 0
			}
			g.FillRow(row, fillRowUnique(line, g.Size(), rng))
		}
	}
}

// compose runs the steps in order on the same grid, n-operator first then
// ß-operator for the probabilistic variants.
func compose(steps ...stepStrategy) stepStrategy {
	return func(g *board.Grid, rng *rand.Rand) {
		for _, step := range steps {
			step(g, rng)
		}
	}
}
