package bench

import (
	"context"
	"sort"
	"time"

	"github.com/hjeni/sudoku-ai/internal/ports"
)

// Analysis summarizes the per-restart results of one solve run.
type Analysis struct {
	Accuracy float64 // ratio of perfect restarts
	ItrAvg   int     // average iterations over perfect restarts, 0 when none
	ItrMin   int
	ItrMax   int
	Perfect  []int // iterations of all perfect restarts, ascending
}

// Analyze runs the solver once and aggregates its per-restart results.
func Analyze(ctx context.Context, s ports.Solver) (Analysis, error) {
	if _, err := s.TrySolve(ctx); err != nil {
		return Analysis{}, err
	}
	results := s.Results()

	var perfect []int
	for _, r := range results {
		if r.Score == 0 {
			perfect = append(perfect, r.Iterations)
		}
	}
	sort.Ints(perfect)

	a := Analysis{Perfect: perfect}
	if len(results) > 0 {
		a.Accuracy = float64(len(perfect)) / float64(len(results))
	}
	if len(perfect) > 0 {
		sum := 0
		for _, itr := range perfect {
			sum += itr
		}
		a.ItrAvg = sum / len(perfect)
		a.ItrMin = perfect[0]
		a.ItrMax = perfect[len(perfect)-1]
	}
	return a, nil
}

// Timing aggregates wall-clock durations over repeated solves.
type Timing struct {
	Min   time.Duration
	Max   time.Duration
	Avg   time.Duration
	Total time.Duration
}

// TimePerfect measures, over runs repetitions, how long the solver takes to
// reach a perfect solution, re-running the whole solve until one appears.
func TimePerfect(ctx context.Context, s ports.Solver, runs int) (Timing, error) {
	var samples []time.Duration
	for i := 0; i < runs; i++ {
		var cur time.Duration
		for {
			if err := ctx.Err(); err != nil {
				return Timing{}, err
			}
			start := time.Now()
			sol, err := s.TrySolve(ctx)
			cur += time.Since(start)
			if err != nil {
				return Timing{}, err
			}
			if sol.Result.Score == 0 {
				break
			}
		}
		samples = append(samples, cur)
	}
	return summarize(samples), nil
}

// TimeSeparate measures the wall time of runs independent solves, perfect or
// not.
func TimeSeparate(ctx context.Context, s ports.Solver, runs int) (Timing, error) {
	var samples []time.Duration
	for i := 0; i < runs; i++ {
		if err := ctx.Err(); err != nil {
			return Timing{}, err
		}
		start := time.Now()
		if _, err := s.TrySolve(ctx); err != nil {
			return Timing{}, err
		}
		samples = append(samples, time.Since(start))
	}
	return summarize(samples), nil
}

func summarize(samples []time.Duration) Timing {
	if len(samples) == 0 {
		return Timing{}
	}
	t := Timing{Min: samples[0], Max: samples[0]}
	for _, d := range samples {
		t.Total += d
		if d < t.Min {
			t.Min = d
		}
		if d > t.Max {
			t.Max = d
		}
	}
	t.Avg = t.Total / time.Duration(len(samples))
	return t
}
