package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hjeni/sudoku-ai/internal/domain"
)

// A valid 4x4 solution (blocks are 2x2).
var valid4 = [][]int{
	{1, 2, 3, 4},
	{3, 4, 1, 2},
	{2, 1, 4, 3},
	{4, 3, 2, 1},
}

func load4(t *testing.T, values [][]int) *Grid {
	t.Helper()
	g := New(4)
	require.True(t, g.Load(values))
	return g
}

func TestNewPanicsOnNonSquareSize(t *testing.T) {
	for _, size := range []int{-1, 0, 3, 8, 12} {
		assert.Panics(t, func() { New(size) }, "size %d", size)
	}
	assert.NotPanics(t, func() { New(1); New(4); New(9); New(16) })
}

func TestLoadRejectsMalformedInput(t *testing.T) {
	cases := []struct {
		name   string
		values [][]int
	}{
		{"too few rows", [][]int{{1, 2, 3, 4}}},
		{"short row", [][]int{{1, 2, 3, 4}, {3, 4, 1}, {2, 1, 4, 3}, {4, 3, 2, 1}}},
		{"value above size", [][]int{{1, 2, 3, 4}, {3, 4, 1, 2}, {2, 1, 4, 5}, {4, 3, 2, 1}}},
		{"negative value", [][]int{{1, 2, 3, 4}, {3, 4, 1, 2}, {2, 1, 4, -1}, {4, 3, 2, 1}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := load4(t, valid4)
			require.False(t, g.Load(tc.values))
			// the previously loaded state must survive a failed load
			assert.Equal(t, uint8(1), mustAt(t, g, 0, 0))
			m, _ := g.Check()
			assert.Zero(t, m)
		})
	}
}

func TestInitialMaskProtectsLoadedCells(t *testing.T) {
	initial := [][]int{
		{1, 0, 3, 4},
		{0, 4, 0, 2},
		{2, 1, 4, 3},
		{0, 3, 2, 0},
	}
	g := load4(t, initial)

	for y, row := range initial {
		for x, v := range row {
			p := domain.Position{X: x, Y: y}
			assert.Equal(t, v != 0, g.IsInitial(p), "pos %v", p)
		}
	}
	assert.False(t, g.IsInitial(domain.Position{X: -1, Y: 0}))
	assert.False(t, g.IsInitial(domain.Position{X: 0, Y: 4}))

	// writes to initial cells or out of bounds must fail
	assert.False(t, g.Set(domain.Position{X: 0, Y: 0}, 2))
	assert.False(t, g.Set(domain.Position{X: 4, Y: 0}, 2))
	assert.True(t, g.Set(domain.Position{X: 1, Y: 0}, 2))
	assert.Equal(t, uint8(2), mustAt(t, g, 1, 0))

	// FillRow refuses to change an initial value, keeping the row intact
	assert.False(t, g.FillRow(0, []uint8{2, 2, 3, 4}))
	assert.Equal(t, uint8(1), mustAt(t, g, 0, 0))
	assert.True(t, g.FillRow(0, []uint8{1, 2, 3, 4}))

	// FillAll is all-or-nothing: one bad row leaves the whole grid untouched
	bad := [][]uint8{
		{1, 2, 3, 4},
		{1, 1, 3, 2}, // would change the initial 4 at (1,1)
		{2, 1, 4, 3},
		{4, 3, 2, 1},
	}
	before := g.Values()
	assert.False(t, g.FillAll(bad))
	assert.Equal(t, before, g.Values())
}

func TestUnfilledIndexTracksRowsWithTwoOrMoreBlanks(t *testing.T) {
	g := load4(t, [][]int{
		{0, 2, 0, 4}, // 2 blanks
		{3, 4, 0, 2}, // 1 blank
		{2, 1, 4, 3}, // none
		{0, 0, 0, 1}, // 3 blanks
	})

	assert.Equal(t, []int{0, 3}, g.UnfilledRows())
	assert.Equal(t, map[int][]int{0: {0, 2}, 3: {0, 1, 2}}, g.UnfilledByRow())
	assert.Equal(t, []domain.Position{
		{X: 0, Y: 0}, {X: 2, Y: 0},
		{X: 0, Y: 3}, {X: 1, Y: 3}, {X: 2, Y: 3},
	}, g.UnfilledPositions())
}

func TestAreasEnumerationOrder(t *testing.T) {
	g := load4(t, valid4)
	areas := g.Areas()
	require.Len(t, areas, 12)

	assert.Equal(t, []uint8{1, 2, 3, 4}, areas[0], "first row")
	assert.Equal(t, []uint8{1, 3, 2, 4}, areas[4], "first column")
	assert.Equal(t, []uint8{1, 2, 3, 4}, areas[8], "top-left block")
	assert.Equal(t, []uint8{3, 4, 1, 2}, areas[9], "top-right block")
	assert.Equal(t, []uint8{2, 1, 4, 3}, areas[10], "bottom-left block")
}

func TestCheckOnValidGrid(t *testing.T) {
	g := load4(t, valid4)
	mistakes, ratio := g.Check()
	assert.Zero(t, mistakes)
	assert.Zero(t, ratio)
}

func TestCheckCountsBlankRowArea(t *testing.T) {
	g := load4(t, [][]int{
		{0, 0, 0, 0},
		{3, 4, 1, 2},
		{2, 1, 4, 3},
		{4, 3, 2, 1},
	})
	mistakes, ratio := g.Check()
	assert.GreaterOrEqual(t, mistakes, 1)
	assert.InDelta(t, float64(mistakes)/12.0, ratio, 1e-12)
}

func TestResetRestoresInitialState(t *testing.T) {
	g := load4(t, [][]int{
		{1, 0, 3, 4},
		{3, 4, 1, 2},
		{2, 1, 4, 3},
		{4, 3, 2, 1},
	})
	require.True(t, g.Set(domain.Position{X: 1, Y: 0}, 3))
	g.Reset()
	assert.Equal(t, uint8(0), mustAt(t, g, 1, 0))
}

func TestCopyIsIndependent(t *testing.T) {
	g := load4(t, [][]int{
		{1, 0, 3, 4},
		{3, 4, 0, 2},
		{2, 1, 4, 3},
		{4, 3, 2, 1},
	})
	c := g.Copy()
	require.True(t, c.Set(domain.Position{X: 1, Y: 0}, 2))

	assert.Equal(t, uint8(0), mustAt(t, g, 1, 0), "original must not see the copy's write")
	assert.Equal(t, uint8(2), mustAt(t, c, 1, 0))
	assert.True(t, c.IsInitial(domain.Position{X: 0, Y: 0}), "copy keeps the initial mask")
}

func mustAt(t *testing.T, g *Grid, x, y int) uint8 {
	t.Helper()
	v, ok := g.At(domain.Position{X: x, Y: y})
	require.True(t, ok)
	return v
}
