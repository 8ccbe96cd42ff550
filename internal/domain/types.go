package domain

// Position identifies a cell on the grid; X is the column, Y the row.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Result is the outcome of a single climb: the best score reached and the
// iteration at which it was reached (or the iteration budget if never perfect).
type Result struct {
	Score      int `json:"score"`
	Iterations int `json:"iterations"`
}

// Report is a persisted record of one solve run with metadata.
type Report struct {
	ID         string    `json:"id,omitempty"`
	Algorithm  Algorithm `json:"algorithm"`
	Size       int       `json:"size"`
	Seed       int64     `json:"seed,omitempty"`
	Best       Result    `json:"best"`
	Restarts   []Result  `json:"restarts,omitempty"`
	DurationMs int64     `json:"durationMs,omitempty"`
	CreatedAt  int64     `json:"createdAt,omitempty"`
	// Optional user metadata
	Name string `json:"name,omitempty"`
}

// ReportMeta is a lightweight listing entry.
type ReportMeta struct {
	ID        string    `json:"id"`
	Name      string    `json:"name,omitempty"`
	Algorithm Algorithm `json:"algorithm"`
	CreatedAt int64     `json:"createdAt"`
}
