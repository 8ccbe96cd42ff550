package main

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/hjeni/sudoku-ai/internal/bench"
)

func newBenchCmd() *cobra.Command {
	flags := &solveFlags{}
	var runs int
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Analyze restart accuracy and timing of one configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := flags.service()
			ctx := cmd.Context()

			s, err := uc.NewSolver(ctx, flags.request())
			if err != nil {
				return err
			}

			a, err := bench.Analyze(ctx, s)
			if err != nil {
				return err
			}
			fmt.Printf("accuracy: %.2f (%d/%d perfect restarts)\n",
				a.Accuracy, len(a.Perfect), len(s.Results()))
			if len(a.Perfect) > 0 {
				fmt.Printf("iterations to perfect: min=%d avg=%d max=%d\n",
					a.ItrMin, a.ItrAvg, a.ItrMax)
			}

			t, err := bench.TimeSeparate(ctx, s, runs)
			if err != nil {
				return err
			}
			fmt.Printf("wall time over %d solves: min=%v avg=%v max=%v total=%v\n",
				runs,
				t.Min.Round(time.Millisecond),
				t.Avg.Round(time.Millisecond),
				t.Max.Round(time.Millisecond),
				t.Total.Round(time.Millisecond),
			)

			log.WithField("algorithm", flags.algorithm).Debug("bench finished")
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().IntVar(&runs, "runs", 10, "number of timed solves")
	return cmd
}
