package render

import (
	"strconv"
	"strings"

	"github.com/hjeni/sudoku-ai/internal/board"
)

// Console renders the grid as text with one delimiter line per block row and
// vertical bars between block columns. Blanks render as spaces.
func Console(g *board.Grid) string {
	size := g.Size()
	block := g.BlockSize()
	digits := countDigits(size)

	var b strings.Builder
	writeDelimiter(&b, size, block, digits)
	for y, row := range g.Rows() {
		writeRow(&b, row, block, digits)
		if y%block == block-1 && y != 0 {
			writeDelimiter(&b, size, block, digits)
		}
	}
	if size == 1 {
		writeDelimiter(&b, size, block, digits)
	}
	return b.String()
}

func writeRow(b *strings.Builder, row []uint8, block, digits int) {
	b.WriteString("| ")
	for x, v := range row {
		b.WriteString(pad(v, digits))
		b.WriteByte(' ')
		if x%block == block-1 {
			b.WriteString("| ")
		}
	}
	b.WriteByte('\n')
}

func writeDelimiter(b *strings.Builder, size, block, digits int) {
	n := size*(1+digits) + block*2 + 1
	b.WriteString(strings.Repeat("-", n))
	b.WriteByte('\n')
}

// pad centers the value in a digits-wide field; 0 renders blank.
func pad(v uint8, digits int) string {
	if v == 0 {
		return strings.Repeat(" ", digits)
	}
	s := strconv.Itoa(int(v))
	rest := digits - len(s)
	return strings.Repeat(" ", (rest+1)/2) + s + strings.Repeat(" ", rest/2)
}

func countDigits(n int) int {
	d := 1
	for n >= 10 {
		n /= 10
		d++
	}
	return d
}
