package main

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/hjeni/sudoku-ai/internal/domain"
	"github.com/hjeni/sudoku-ai/internal/infrastructure/storage"
	"github.com/hjeni/sudoku-ai/internal/render"
	"github.com/hjeni/sudoku-ai/internal/solver"
	"github.com/hjeni/sudoku-ai/internal/usecase"
)

// solveFlags maps 1:1 onto the solver configuration plus IO options.
type solveFlags struct {
	size      int
	dataDir   string
	algorithm string

	restarts    int
	iterations  int
	stopIfFound bool
	n           float64
	beta        float64
	seed        int64

	persist bool
	name    string
}

func (f *solveFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.size, "size", 9, "grid edge length, must be a perfect square")
	cmd.Flags().StringVar(&f.dataDir, "data", "./data", "directory with initial states and reports")
	cmd.Flags().StringVar(&f.algorithm, "algorithm", "hillclimb", "hillclimb|beta|custom-beta")
	cmd.Flags().IntVar(&f.restarts, "restarts", 100, "max independent climbs")
	cmd.Flags().IntVar(&f.iterations, "iterations", 2500, "max steps per climb")
	cmd.Flags().BoolVar(&f.stopIfFound, "stop-if-found", true, "return on the first perfect restart")
	cmd.Flags().Float64Var(&f.n, "n", 0.25, "exploitation probability")
	cmd.Flags().Float64Var(&f.beta, "beta", 0.05, "exploration probability")
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "random seed, 0 picks one from the clock")
	cmd.Flags().BoolVar(&f.persist, "save-report", false, "persist a JSON report of the run")
	cmd.Flags().StringVar(&f.name, "name", "", "optional report name")
}

func (f *solveFlags) request() usecase.SolveRequest {
	seed := f.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return usecase.SolveRequest{
		Size:      f.size,
		Algorithm: domain.ParseAlgorithm(f.algorithm),
		Config: solver.Config{
			MaxRestarts: f.restarts,
			MaxIter:     f.iterations,
			StopIfFound: f.stopIfFound,
			N:           f.n,
			Beta:        f.beta,
			Seed:        seed,
		},
		Name:    f.name,
		Persist: f.persist,
	}
}

func (f *solveFlags) service() *usecase.Service {
	fs := storage.NewFS(f.dataDir)
	return usecase.NewService(fs, fs)
}

func newSolveCmd() *cobra.Command {
	flags := &solveFlags{}
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Run one solve and print the resulting grid",
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := flags.service()
			ctx := cmd.Context()

			g, err := uc.NewGrid(ctx, flags.size)
			if err != nil {
				return err
			}
			fmt.Println(render.Console(g))
			fmt.Println("initial state")
			fmt.Println()

			sol, report, stats, err := uc.Solve(ctx, flags.request())
			if err != nil {
				return err
			}
			fmt.Println(render.Console(sol.Grid))
			fmt.Printf("solution found with %d mistakes, number of steps needed: %d\n",
				sol.Result.Score, sol.Result.Iterations)

			log.WithFields(log.Fields{
				"algorithm": flags.algorithm,
				"restarts":  stats.Restarts,
				"duration":  stats.Duration.Round(time.Millisecond),
			}).Debug("solve finished")
			if report != nil && report.ID != "" {
				fmt.Printf("report saved as %s\n", report.ID)
			}
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}
