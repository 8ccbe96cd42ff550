package solver

import "github.com/hjeni/sudoku-ai/internal/board"

// Objective scores a grid; lower is better, 0 is a perfect solution.
type Objective func(g *board.Grid) int

// CountMistakes scores a grid by the exact number of violated constraint
// areas.
func CountMistakes(g *board.Grid) int {
	mistakes, _ := g.Check()
	return mistakes
}

// SumDeviation scores a grid by how far each constraint area's sum strays
// from the sum of a correctly filled area, size·(size+1)/2. It is a softer
// heuristic than CountMistakes: some permutation errors still sum correctly.
func SumDeviation(g *board.Grid) int {
	size := g.Size()
	target := size * (size + 1) / 2
	total := 0
	for _, area := range g.Areas() {
		sum := 0
		for _, v := range area {
			sum += int(v)
		}
		d := target - sum
		if d < 0 {
			d = -d
		}
		total += d
	}
	return total
}
