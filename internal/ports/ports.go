package ports

import (
	"context"
	"time"

	"github.com/hjeni/sudoku-ai/internal/domain"
	"github.com/hjeni/sudoku-ai/internal/solver"
)

// Stats captures performance characteristics of a solve run.
type Stats struct {
	Restarts int
	Duration time.Duration
}

// Solver runs a bounded local search and exposes the per-restart results of
// the most recent run for analysis tooling.
type Solver interface {
	TrySolve(ctx context.Context) (solver.Solution, error)
	Results() []domain.Result
}

// InitialStateProvider supplies the initial puzzle matrix for a given size;
// 0 means blank.
type InitialStateProvider interface {
	Initial(ctx context.Context, size int) ([][]int, error)
}

// ReportStore persists and retrieves solve reports as JSON.
type ReportStore interface {
	Save(ctx context.Context, r *domain.Report) error
	Load(ctx context.Context, id string) (*domain.Report, error)
	List(ctx context.Context) ([]domain.ReportMeta, error)
}
