package solver

import "github.com/pkg/errors"

// Config carries the search-strategy parameters shared by all variants.
// N and Beta are ignored by plain hill climbing.
type Config struct {
	MaxRestarts int     // independent climbs per solve
	MaxIter     int     // steps per climb
	StopIfFound bool    // return on the first perfect restart
	N           float64 // exploitation rate, probability in [0,1]
	Beta        float64 // exploration rate, probability in [0,1]
	Seed        int64   // seed for the solver's random source
}

// Validate rejects configurations that violate the construction-time
// contract: non-positive budgets or probabilities outside [0,1].
func (c Config) Validate() error {
	if c.MaxRestarts <= 0 {
		return errors.Errorf("max restarts must be positive, got %d", c.MaxRestarts)
	}
	if c.MaxIter <= 0 {
		return errors.Errorf("max iterations must be positive, got %d", c.MaxIter)
	}
	if c.N < 0 || c.N > 1 {
		return errors.Errorf("n probability must be in [0,1], got %v", c.N)
	}
	if c.Beta < 0 || c.Beta > 1 {
		return errors.Errorf("beta probability must be in [0,1], got %v", c.Beta)
	}
	return nil
}
