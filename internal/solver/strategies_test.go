package solver

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hjeni/sudoku-ai/internal/board"
	"github.com/hjeni/sudoku-ai/internal/domain"
)

func grid4(t *testing.T, values [][]int) *board.Grid {
	t.Helper()
	g := board.New(4)
	require.True(t, g.Load(values))
	return g
}

func multiset(row []uint8) map[uint8]int {
	m := map[uint8]int{}
	for _, v := range row {
		m[v]++
	}
	return m
}

var partial4 = [][]int{
	{1, 0, 3, 0},
	{0, 4, 0, 2},
	{2, 1, 4, 3},
	{0, 3, 0, 1},
}

func TestFillUniqueMakesEveryRowAPermutation(t *testing.T) {
	g := grid4(t, partial4)
	rng := rand.New(rand.NewSource(1))
	fillUnique(g, rng)

	want := map[uint8]int{1: 1, 2: 1, 3: 1, 4: 1}
	for y, row := range g.Rows() {
		assert.Equal(t, want, multiset(row), "row %d", y)
	}
	// initial cells stay put
	assert.Equal(t, uint8(1), atXY(t, g, 0, 0))
	assert.Equal(t, uint8(4), atXY(t, g, 1, 1))
}

func TestFillRowUniqueLeavesInputAlone(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	in := []uint8{0, 2, 0, 4}
	out := fillRowUnique(in, 4, rng)

	assert.Equal(t, []uint8{0, 2, 0, 4}, in)
	assert.Equal(t, map[uint8]int{1: 1, 2: 1, 3: 1, 4: 1}, multiset(out))
	assert.Equal(t, uint8(2), out[1])
	assert.Equal(t, uint8(4), out[3])
}

func TestFillRandomRespectsInitialMask(t *testing.T) {
	g := grid4(t, partial4)
	rng := rand.New(rand.NewSource(3))
	fillRandom(g, rng)

	for y, row := range g.Rows() {
		for x, v := range row {
			p := domain.Position{X: x, Y: y}
			if g.IsInitial(p) {
				assert.Equal(t, uint8(partial4[y][x]), v, "initial cell %v", p)
			} else {
				assert.GreaterOrEqual(t, v, uint8(1), "cell %v", p)
				assert.LessOrEqual(t, v, uint8(4), "cell %v", p)
			}
		}
	}
}

func TestRowSwapPreservesRowMultisetAndInitials(t *testing.T) {
	g := grid4(t, partial4)
	rng := rand.New(rand.NewSource(5))
	fillUnique(g, rng)
	before := g.Rows()

	stepRowSwap(g, rng)

	changed := 0
	for y, after := range g.Rows() {
		assert.Equal(t, multiset(before[y]), multiset(after), "row %d multiset", y)
		if !assert.ObjectsAreEqual(before[y], after) {
			changed++
		}
	}
	assert.Equal(t, 1, changed, "exactly one row is touched")
	assert.Equal(t, uint8(1), atXY(t, g, 0, 0))
	assert.Equal(t, uint8(4), atXY(t, g, 1, 1))
}

func TestCellNeighbourOpProbabilityBounds(t *testing.T) {
	// all-blank 9x9, every cell set to the midpoint value 5
	g := board.New(9)
	require.True(t, g.Load(make9(0)))
	require.True(t, g.FillAll(fill9(5)))
	rng := rand.New(rand.NewSource(7))

	t.Run("n=0 is a no-op", func(t *testing.T) {
		before := g.Values()
		cellNeighbourOp(0)(g, rng)
		assert.Equal(t, before, g.Values())
	})

	t.Run("n=1 perturbs every modifiable cell", func(t *testing.T) {
		cellNeighbourOp(1)(g, rng)
		for _, row := range g.Rows() {
			for _, v := range row {
				assert.Contains(t, []uint8{4, 6}, v)
			}
		}
	})
}

func TestCellRegenOpProbabilityBounds(t *testing.T) {
	g := board.New(9)
	require.True(t, g.Load(make9(0)))
	require.True(t, g.FillAll(fill9(5)))
	rng := rand.New(rand.NewSource(9))

	before := g.Values()
	cellRegenOp(0)(g, rng)
	assert.Equal(t, before, g.Values())

	cellRegenOp(1)(g, rng)
	for _, row := range g.Rows() {
		for _, v := range row {
			assert.GreaterOrEqual(t, v, uint8(1))
			assert.LessOrEqual(t, v, uint8(9))
		}
	}
}

func TestRowLevelOperators(t *testing.T) {
	g := grid4(t, partial4)
	rng := rand.New(rand.NewSource(11))
	fillUnique(g, rng)

	t.Run("n=0 swap is a no-op", func(t *testing.T) {
		before := g.Values()
		rowNeighbourOp(0)(g, rng)
		assert.Equal(t, before, g.Values())
	})

	t.Run("n=1 swaps within every eligible row", func(t *testing.T) {
		before := g.Rows()
		rowNeighbourOp(1)(g, rng)
		for _, y := range g.UnfilledRows() {
			after := g.Row(y)
			assert.Equal(t, multiset(before[y]), multiset(after), "row %d", y)
			assert.NotEqual(t, before[y], after, "row %d must change", y)
		}
	})

	t.Run("beta=1 regenerates every eligible row into a permutation", func(t *testing.T) {
		rowRegenOp(1)(g, rng)
		want := map[uint8]int{1: 1, 2: 1, 3: 1, 4: 1}
		for _, y := range g.UnfilledRows() {
			assert.Equal(t, want, multiset(g.Row(y)), "row %d", y)
		}
		assert.Equal(t, uint8(1), atXY(t, g, 0, 0))
	})
}

func TestChanceEndpoints(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	for i := 0; i < 1000; i++ {
		assert.False(t, chance(rng, 0))
		assert.True(t, chance(rng, 1))
	}
}

func atXY(t *testing.T, g *board.Grid, x, y int) uint8 {
	t.Helper()
	v, ok := g.At(domain.Position{X: x, Y: y})
	require.True(t, ok)
	return v
}

func make9(v int) [][]int {
	m := make([][]int, 9)
	for y := range m {
		m[y] = make([]int, 9)
		for x := range m[y] {
			m[y][x] = v
		}
	}
	return m
}

func fill9(v uint8) [][]uint8 {
	m := make([][]uint8, 9)
	for y := range m {
		m[y] = make([]uint8, 9)
		for x := range m[y] {
			m[y][x] = v
		}
	}
	return m
}
