package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hjeni/sudoku-ai/internal/board"
)

func TestConsoleRendersBlocksAndBlanks(t *testing.T) {
	g := board.New(4)
	require.True(t, g.Load([][]int{
		{1, 0, 3, 4},
		{3, 4, 1, 2},
		{2, 1, 4, 3},
		{4, 3, 2, 1},
	}))

	out := Console(g)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 7, "4 rows plus 3 delimiter lines")

	assert.Equal(t, strings.Repeat("-", 13), lines[0])
	assert.Equal(t, "| 1   | 3 4 | ", lines[1], "blank cells render as spaces")
	assert.Equal(t, strings.Repeat("-", 13), lines[3])
	assert.Equal(t, strings.Repeat("-", 13), lines[6])
}
