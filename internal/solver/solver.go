package solver

import (
	"context"
	"math"
	"math/rand"

	"github.com/hjeni/sudoku-ai/internal/board"
	"github.com/hjeni/sudoku-ai/internal/domain"
)

// Solution pairs the best grid found across all restarts with its result.
type Solution struct {
	Grid   *board.Grid
	Result domain.Result
}

// LocalSearch is the generic restart + hill-climbing driver. A variant is a
// choice of fill strategy, step operator, and objective; see variants.go.
//
// All randomness is drawn from one seeded source, so a fixed Config.Seed
// reproduces an identical sequence of fills, swaps, and probability draws.
type LocalSearch struct {
	grid *board.Grid
	cfg  Config
	rng  *rand.Rand

	fill fillStrategy
	step stepStrategy
	eval Objective

	results []domain.Result
}

func newLocalSearch(g *board.Grid, cfg Config, fill fillStrategy, step stepStrategy, eval Objective) (*LocalSearch, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &LocalSearch{
		grid: g,
		cfg:  cfg,
		rng:  rand.New(rand.NewSource(cfg.Seed)),
		fill: fill,
		step: step,
		eval: eval,
	}, nil
}

// TrySolve resets the grid to its initial state and runs up to MaxRestarts
// independent climbs, keeping the best-scoring, fewest-iteration result.
// A score above zero in the returned result is a normal outcome: the budget
// ran out before a perfect solution was reached.
func (s *LocalSearch) TrySolve(ctx context.Context) (Solution, error) {
	s.grid.Reset()
	s.results = s.results[:0]

	// No row with two or more blanks: the unique fill is the only possible
	// completion, no climbing needed.
	if len(s.grid.UnfilledRows()) == 0 {
		return s.solveTrivial(), nil
	}

	best := domain.Result{Score: math.MaxInt, Iterations: math.MaxInt}
	var bestGrid *board.Grid
	for r := 0; r < s.cfg.MaxRestarts; r++ {
		if err := ctx.Err(); err != nil {
			return Solution{}, err
		}
		s.fill(s.grid, s.rng)
		res := s.climb()
		s.results = append(s.results, res)
		if s.cfg.StopIfFound && res.Score == 0 {
			return Solution{Grid: s.grid, Result: res}, nil
		}
		// Two-key ordering across restarts: lower score wins, fewer
		// iterations breaks ties.
		if res.Score < best.Score || (res.Score == best.Score && res.Iterations < best.Iterations) {
			best = res
			bestGrid = s.grid.Copy()
		}
		s.grid.Reset()
	}
	s.grid = bestGrid
	return Solution{Grid: s.grid, Result: best}, nil
}

// climb runs one bounded hill climb from the current fill. Candidates are
// independent copies; one is promoted to incumbent iff its score does not
// exceed the best seen in this climb, so lateral moves across plateaus are
// accepted.
func (s *LocalSearch) climb() domain.Result {
	best := s.eval(s.grid)
	for i := 0; i < s.cfg.MaxIter; i++ {
		cand := s.grid.Copy()
		s.step(cand, s.rng)
		score := s.eval(cand)
		if score <= best {
			best = score
			s.grid = cand
			if score == 0 {
				return domain.Result{Score: 0, Iterations: i + 1}
			}
		}
	}
	return domain.Result{Score: best, Iterations: s.cfg.MaxIter}
}

func (s *LocalSearch) solveTrivial() Solution {
	fillUnique(s.grid, s.rng)
	for r := 0; r < s.cfg.MaxRestarts; r++ {
		s.results = append(s.results, domain.Result{})
	}
	return Solution{Grid: s.grid, Result: domain.Result{}}
}

// Results returns the per-restart results of the most recent TrySolve call,
// in restart order.
func (s *LocalSearch) Results() []domain.Result {
	out := make([]domain.Result, len(s.results))
	copy(out, s.results)
	return out
}
