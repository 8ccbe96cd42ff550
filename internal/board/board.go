package board

import (
	"fmt"
	"math"

	"github.com/hjeni/sudoku-ai/internal/domain"
)

// Grid is a square sudoku-style table of values in [0, size], 0 meaning blank.
// It keeps an immutable snapshot of the initially loaded puzzle and refuses
// any mutation that would change an initial cell.
type Grid struct {
	size  int
	block int

	cells   [][]uint8
	initial [][]uint8

	// rows with at least two initially blank cells, ascending, and the
	// ordered column indexes of those blanks per row
	unfilledRows []int
	unfilledCols map[int][]int
}

// New creates an empty grid. The size must be a perfect square; anything else
// is a programming error and panics.
func New(size int) *Grid {
	block := int(math.Sqrt(float64(size)))
	if size <= 0 || block*block != size {
		panic(fmt.Sprintf("board: size %d is not a perfect square", size))
	}
	g := &Grid{
		size:         size,
		block:        block,
		cells:        newMatrix(size),
		initial:      newMatrix(size),
		unfilledCols: map[int][]int{},
	}
	return g
}

func newMatrix(size int) [][]uint8 {
	m := make([][]uint8, size)
	for i := range m {
		m[i] = make([]uint8, size)
	}
	return m
}

// Size returns the edge length of the grid.
func (g *Grid) Size() int { return g.size }

// BlockSize returns the edge length of one constraint block.
func (g *Grid) BlockSize() int { return g.block }

// Load freezes the given matrix as the initial puzzle state. It fails when
// the dimensions do not match or any value falls outside [0, size], and in
// that case leaves any previously loaded state untouched.
func (g *Grid) Load(values [][]int) bool {
	if len(values) != g.size {
		return false
	}
	for _, row := range values {
		if len(row) != g.size {
			return false
		}
		for _, v := range row {
			if v < 0 || v > g.size {
				return false
			}
		}
	}

	cells := newMatrix(g.size)
	for y, row := range values {
		for x, v := range row {
			cells[y][x] = uint8(v)
		}
	}
	g.cells = cells
	g.initial = copyMatrix(cells)

	g.unfilledRows = g.unfilledRows[:0]
	g.unfilledCols = map[int][]int{}
	for y := 0; y < g.size; y++ {
		blanks := blankIndexes(g.initial[y])
		if len(blanks) >= 2 {
			g.unfilledRows = append(g.unfilledRows, y)
			g.unfilledCols[y] = blanks
		}
	}
	return true
}

func blankIndexes(row []uint8) []int {
	var idx []int
	for x, v := range row {
		if v == 0 {
			idx = append(idx, x)
		}
	}
	return idx
}

// Valid reports whether the position lies within the grid.
func (g *Grid) Valid(p domain.Position) bool {
	return p.X >= 0 && p.X < g.size && p.Y >= 0 && p.Y < g.size
}

// At returns the value at p, or false when p is out of bounds.
func (g *Grid) At(p domain.Position) (uint8, bool) {
	if !g.Valid(p) {
		return 0, false
	}
	return g.cells[p.Y][p.X], true
}

// IsInitial reports whether the originally loaded cell at p was non-blank.
func (g *Grid) IsInitial(p domain.Position) bool {
	if !g.Valid(p) {
		return false
	}
	return g.initial[p.Y][p.X] != 0
}

// Set writes v at p. It fails when p is out of bounds, p holds an initial
// value, or v exceeds the grid size.
func (g *Grid) Set(p domain.Position, v uint8) bool {
	if !g.Valid(p) || g.IsInitial(p) || int(v) > g.size {
		return false
	}
	g.cells[p.Y][p.X] = v
	return true
}

// FillRow replaces one row. It fails without touching the grid when the row
// index or length is off, a value is out of range, or any initial cell in the
// row would change.
func (g *Grid) FillRow(row int, values []uint8) bool {
	if row < 0 || row >= g.size || len(values) != g.size {
		return false
	}
	if !g.rowAdmissible(row, values) {
		return false
	}
	copy(g.cells[row], values)
	return true
}

// FillAll replaces the whole working grid. All-or-nothing: it fails before
// any write when the shape is wrong or any initial cell would change.
func (g *Grid) FillAll(values [][]uint8) bool {
	if len(values) != g.size {
		return false
	}
	for y, row := range values {
		if len(row) != g.size || !g.rowAdmissible(y, row) {
			return false
		}
	}
	for y, row := range values {
		copy(g.cells[y], row)
	}
	return true
}

func (g *Grid) rowAdmissible(row int, values []uint8) bool {
	for x, v := range values {
		if int(v) > g.size {
			return false
		}
		if init := g.initial[row][x]; init != 0 && init != v {
			return false
		}
	}
	return true
}

// Reset restores the working state to the initial puzzle.
func (g *Grid) Reset() {
	for y := range g.cells {
		copy(g.cells[y], g.initial[y])
	}
}

// Row returns a copy of one row's working values.
func (g *Grid) Row(row int) []uint8 {
	out := make([]uint8, g.size)
	copy(out, g.cells[row])
	return out
}

// Values returns a deep copy of the working grid.
func (g *Grid) Values() [][]uint8 { return copyMatrix(g.cells) }

// UnfilledRows lists, in ascending order, the rows that had at least two
// blanks in the initial state.
func (g *Grid) UnfilledRows() []int {
	out := make([]int, len(g.unfilledRows))
	copy(out, g.unfilledRows)
	return out
}

// UnfilledByRow maps each row with at least two initial blanks to the ordered
// column indexes of those blanks.
func (g *Grid) UnfilledByRow() map[int][]int {
	out := make(map[int][]int, len(g.unfilledCols))
	for row, cols := range g.unfilledCols {
		cc := make([]int, len(cols))
		copy(cc, cols)
		out[row] = cc
	}
	return out
}

// UnfilledPositions lists every modifiable cell tracked by the per-row blank
// index, in row-then-column order.
func (g *Grid) UnfilledPositions() []domain.Position {
	var out []domain.Position
	for _, row := range g.unfilledRows {
		for _, col := range g.unfilledCols[row] {
			out = append(out, domain.Position{X: col, Y: row})
		}
	}
	return out
}

// Copy returns an independent deep copy, including the initial snapshot and
// the blank index.
func (g *Grid) Copy() *Grid {
	c := &Grid{
		size:         g.size,
		block:        g.block,
		cells:        copyMatrix(g.cells),
		initial:      copyMatrix(g.initial),
		unfilledRows: make([]int, len(g.unfilledRows)),
		unfilledCols: make(map[int][]int, len(g.unfilledCols)),
	}
	copy(c.unfilledRows, g.unfilledRows)
	for row, cols := range g.unfilledCols {
		cc := make([]int, len(cols))
		copy(cc, cols)
		c.unfilledCols[row] = cc
	}
	return c
}

func copyMatrix(m [][]uint8) [][]uint8 {
	out := make([][]uint8, len(m))
	for i, row := range m {
		out[i] = make([]uint8, len(row))
		copy(out[i], row)
	}
	return out
}
