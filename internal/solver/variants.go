package solver

import (
	"github.com/hjeni/sudoku-ai/internal/board"
	"github.com/hjeni/sudoku-ai/internal/domain"
)

// NewHillClimbing builds the plain variant: unique row fill, single row swap
// per step, mistake-count objective. Config.N and Config.Beta are unused.
func NewHillClimbing(g *board.Grid, cfg Config) (*LocalSearch, error) {
	return newLocalSearch(g, cfg, fillUnique, stepRowSwap, CountMistakes)
}

// NewBetaHillClimbing builds the cell-level ß-hill-climbing variant from the
// literature: random fill, per-cell n-operator then ß-operator, and the
// sum-deviation objective.
func NewBetaHillClimbing(g *board.Grid, cfg Config) (*LocalSearch, error) {
	step := compose(cellNeighbourOp(cfg.N), cellRegenOp(cfg.Beta))
	return newLocalSearch(g, cfg, fillRandom, step, SumDeviation)
}

// NewCustomBetaHillClimbing builds the row-level ß-hill-climbing variant:
// unique row fill, per-row n-operator (one swap) then ß-operator (row
// regeneration), and the mistake-count objective.
func NewCustomBetaHillClimbing(g *board.Grid, cfg Config) (*LocalSearch, error) {
	step := compose(rowNeighbourOp(cfg.N), rowRegenOp(cfg.Beta))
	return newLocalSearch(g, cfg, fillUnique, step, CountMistakes)
}

// New builds the variant selected by algo.
func New(algo domain.Algorithm, g *board.Grid, cfg Config) (*LocalSearch, error) {
	switch algo {
	case domain.BetaHC:
		return NewBetaHillClimbing(g, cfg)
	case domain.CustomBetaHC:
		return NewCustomBetaHillClimbing(g, cfg)
	default:
		return NewHillClimbing(g, cfg)
	}
}
