package domain

import (
	"encoding/json"
	"strings"
)

// Algorithm selects a local-search variant.
type Algorithm int

const (
	HillClimbing   Algorithm = iota // row-swap hill climbing
	BetaHC                          // cell-level ß-hill-climbing (paper variant)
	CustomBetaHC                    // row-level ß-hill-climbing
)

func (a Algorithm) String() string {
	switch a {
	case BetaHC:
		return "beta"
	case CustomBetaHC:
		return "custom-beta"
	default:
		return "hillclimb"
	}
}

// MarshalJSON writes the algorithm by name, matching the form requests use.
func (a Algorithm) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// UnmarshalJSON accepts the name form; bare integers from older reports are
// taken as-is.
func (a *Algorithm) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*a = ParseAlgorithm(s)
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*a = Algorithm(n)
	return nil
}

// ParseAlgorithm maps a user-facing name to an Algorithm, defaulting to
// plain hill climbing.
func ParseAlgorithm(s string) Algorithm {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "beta", "beta-hc", "paper":
		return BetaHC
	case "custom-beta", "custom":
		return CustomBetaHC
	default:
		return HillClimbing
	}
}
