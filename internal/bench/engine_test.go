package bench

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hjeni/sudoku-ai/internal/board"
	"github.com/hjeni/sudoku-ai/internal/solver"
)

func easySolver(t *testing.T) *solver.LocalSearch {
	t.Helper()
	g := board.New(4)
	require.True(t, g.Load([][]int{
		{0, 2, 3, 4},
		{3, 4, 0, 2},
		{2, 1, 4, 3},
		{4, 0, 2, 1},
	}))
	s, err := solver.NewHillClimbing(g, solver.Config{MaxRestarts: 5, MaxIter: 50, Seed: 1})
	require.NoError(t, err)
	return s
}

func TestAnalyzeAggregatesPerfectRestarts(t *testing.T) {
	a, err := Analyze(context.Background(), easySolver(t))
	require.NoError(t, err)

	assert.Equal(t, 1.0, a.Accuracy)
	assert.Len(t, a.Perfect, 5)
	assert.Zero(t, a.ItrMin)
	assert.Zero(t, a.ItrMax)
	assert.Zero(t, a.ItrAvg)
}

func TestTimeSeparateCollectsAllRuns(t *testing.T) {
	tm, err := TimeSeparate(context.Background(), easySolver(t), 3)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, tm.Max, tm.Min)
	assert.GreaterOrEqual(t, tm.Total, tm.Max)
	assert.GreaterOrEqual(t, tm.Avg, time.Duration(0))
}

func TestTimePerfectStopsOnPerfectScore(t *testing.T) {
	tm, err := TimePerfect(context.Background(), easySolver(t), 2)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, tm.Total, tm.Min)
}

func TestTimingHonorsCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := TimeSeparate(ctx, easySolver(t), 3)
	assert.ErrorIs(t, err, context.Canceled)
}
