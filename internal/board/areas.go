package board

// Rows returns a copy of every row, top to bottom.
func (g *Grid) Rows() [][]uint8 {
	out := make([][]uint8, 0, g.size)
	for y := 0; y < g.size; y++ {
		out = append(out, g.Row(y))
	}
	return out
}

// Columns returns a copy of every column, left to right.
func (g *Grid) Columns() [][]uint8 {
	out := make([][]uint8, 0, g.size)
	for x := 0; x < g.size; x++ {
		col := make([]uint8, g.size)
		for y := 0; y < g.size; y++ {
			col[y] = g.cells[y][x]
		}
		out = append(out, col)
	}
	return out
}

// Blocks returns every block flattened row by row, blocks enumerated
// row-major over the block grid.
func (g *Grid) Blocks() [][]uint8 {
	out := make([][]uint8, 0, g.size)
	for by := 0; by < g.block; by++ {
		for bx := 0; bx < g.block; bx++ {
			flat := make([]uint8, 0, g.size)
			for dy := 0; dy < g.block; dy++ {
				row := g.cells[by*g.block+dy]
				flat = append(flat, row[bx*g.block:(bx+1)*g.block]...)
			}
			out = append(out, flat)
		}
	}
	return out
}

// Areas returns all 3·size constraint areas in fixed order: rows, then
// columns, then blocks.
func (g *Grid) Areas() [][]uint8 {
	out := make([][]uint8, 0, 3*g.size)
	out = append(out, g.Rows()...)
	out = append(out, g.Columns()...)
	out = append(out, g.Blocks()...)
	return out
}

// Check counts constraint areas that are not a permutation of 1..size.
// The ratio is mistakes over the 3·size areas.
func (g *Grid) Check() (int, float64) {
	mistakes := 0
	for _, area := range g.Areas() {
		if !areaOK(area, g.size) {
			mistakes++
		}
	}
	return mistakes, float64(mistakes) / float64(3*g.size)
}

// areaOK reports whether the area is a permutation of 1..size. A blank,
// duplicate, or out-of-range value disqualifies the whole area.
func areaOK(area []uint8, size int) bool {
	seen := make([]bool, size+1)
	for _, v := range area {
		if v == 0 || int(v) > size || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}
