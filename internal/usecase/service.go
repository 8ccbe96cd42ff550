package usecase

import (
	"context"
	"math"
	"time"

	"github.com/pkg/errors"

	"github.com/hjeni/sudoku-ai/internal/board"
	"github.com/hjeni/sudoku-ai/internal/domain"
	"github.com/hjeni/sudoku-ai/internal/ports"
	"github.com/hjeni/sudoku-ai/internal/solver"
)

// Service wires the initial-state provider and report store around the
// solver core.
type Service struct {
	Provider ports.InitialStateProvider
	Store    ports.ReportStore
}

func NewService(p ports.InitialStateProvider, st ports.ReportStore) *Service {
	return &Service{Provider: p, Store: st}
}

var errNotConfigured = errors.New("usecase dependency not configured")

// StoreError marks a report-store failure, a server-side condition transports
// must not report as a bad request.
type StoreError struct{ Err error }

func (e *StoreError) Error() string { return "saving report: " + e.Err.Error() }
func (e *StoreError) Unwrap() error { return e.Err }

// SolveRequest describes one solve run.
type SolveRequest struct {
	Size      int
	Algorithm domain.Algorithm
	Config    solver.Config
	Name      string // optional report name
	Persist   bool   // save a report when a store is configured
}

// NewGrid loads the initial state for the requested size into a fresh grid.
func (u *Service) NewGrid(ctx context.Context, size int) (*board.Grid, error) {
	if u.Provider == nil {
		return nil, errNotConfigured
	}
	root := int(math.Sqrt(float64(size)))
	if size <= 0 || root*root != size {
		return nil, errors.Errorf("size %d is not a perfect square", size)
	}
	matrix, err := u.Provider.Initial(ctx, size)
	if err != nil {
		return nil, errors.Wrapf(err, "loading initial state for size %d", size)
	}
	g := board.New(size)
	if !g.Load(matrix) {
		return nil, errors.Errorf("initial state for size %d is malformed", size)
	}
	return g, nil
}

// NewSolver builds the requested variant over a freshly loaded grid.
func (u *Service) NewSolver(ctx context.Context, req SolveRequest) (ports.Solver, error) {
	g, err := u.NewGrid(ctx, req.Size)
	if err != nil {
		return nil, err
	}
	return solver.New(req.Algorithm, g, req.Config)
}

// Solve runs one full solve and, when requested, persists a report of it.
func (u *Service) Solve(ctx context.Context, req SolveRequest) (solver.Solution, *domain.Report, ports.Stats, error) {
	s, err := u.NewSolver(ctx, req)
	if err != nil {
		return solver.Solution{}, nil, ports.Stats{}, err
	}

	start := time.Now()
	sol, err := s.TrySolve(ctx)
	stats := ports.Stats{Restarts: len(s.Results()), Duration: time.Since(start)}
	if err != nil {
		return solver.Solution{}, nil, stats, err
	}

	report := &domain.Report{
		Algorithm:  req.Algorithm,
		Size:       req.Size,
		Seed:       req.Config.Seed,
		Best:       sol.Result,
		Restarts:   s.Results(),
		DurationMs: stats.Duration.Milliseconds(),
		CreatedAt:  time.Now().UnixNano(),
		Name:       req.Name,
	}
	if req.Persist {
		if u.Store == nil {
			return sol, report, stats, errNotConfigured
		}
		if err := u.Store.Save(ctx, report); err != nil {
			return sol, report, stats, &StoreError{Err: err}
		}
	}
	return sol, report, stats, nil
}

// LoadReport retrieves a persisted report by id.
func (u *Service) LoadReport(ctx context.Context, id string) (*domain.Report, error) {
	if u.Store == nil {
		return nil, errNotConfigured
	}
	return u.Store.Load(ctx, id)
}

// ListReports lists persisted report metadata.
func (u *Service) ListReports(ctx context.Context) ([]domain.ReportMeta, error) {
	if u.Store == nil {
		return nil, errNotConfigured
	}
	return u.Store.List(ctx)
}
