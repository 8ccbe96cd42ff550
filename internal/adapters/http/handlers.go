package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/hjeni/sudoku-ai/internal/bench"
	"github.com/hjeni/sudoku-ai/internal/domain"
	"github.com/hjeni/sudoku-ai/internal/render"
	"github.com/hjeni/sudoku-ai/internal/solver"
	"github.com/hjeni/sudoku-ai/internal/usecase"
)

type Handler struct {
	UC *usecase.Service
}

func New(uc *usecase.Service) *Handler { return &Handler{UC: uc} }

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/solve", h.handleSolve)
	mux.HandleFunc("/api/analyze", h.handleAnalyze)
	mux.HandleFunc("/api/algorithms", h.handleAlgorithms)
	mux.HandleFunc("/api/report", h.handleReport)
	mux.HandleFunc("/api/reports", h.handleReports)
}

// solverConfig is the wire form of a solve request shared by solve/analyze.
type solverConfig struct {
	Size        int     `json:"size"`
	Algorithm   string  `json:"algorithm,omitempty"`
	MaxRestarts int     `json:"maxRestarts,omitempty"`
	MaxIter     int     `json:"maxIter,omitempty"`
	StopIfFound bool    `json:"stopIfFound,omitempty"`
	N           float64 `json:"n,omitempty"`
	Beta        float64 `json:"beta,omitempty"`
	Seed        int64   `json:"seed,omitempty"`
}

func (c solverConfig) request(name string, persist bool) usecase.SolveRequest {
	size := c.Size
	if size == 0 {
		size = 9
	}
	restarts := c.MaxRestarts
	if restarts == 0 {
		restarts = 100
	}
	iter := c.MaxIter
	if iter == 0 {
		iter = 2500
	}
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return usecase.SolveRequest{
		Size:      size,
		Algorithm: domain.ParseAlgorithm(c.Algorithm),
		Config: solver.Config{
			MaxRestarts: restarts,
			MaxIter:     iter,
			StopIfFound: c.StopIfFound,
			N:           c.N,
			Beta:        c.Beta,
			Seed:        seed,
		},
		Name:    name,
		Persist: persist,
	}
}

// ---- Solve ----

type solveReq struct {
	solverConfig
	Name    string `json:"name,omitempty"`
	Persist bool   `json:"persist,omitempty"`
}

type solveResp struct {
	// [][]int rather than [][]uint8: encoding/json writes []uint8 as a
	// base64 string, not a number array.
	Grid       [][]int `json:"grid,omitempty"`
	Text       string  `json:"text,omitempty"`
	Score      int     `json:"score"`
	Iterations int     `json:"iterations"`
	Restarts   int     `json:"restarts,omitempty"`
	ReportID   string  `json:"reportId,omitempty"`
	DurationMs int64   `json:"durationMs,omitempty"`
	Error      string  `json:"error,omitempty"`
}

func gridRows(values [][]uint8) [][]int {
	out := make([][]int, len(values))
	for y, row := range values {
		out[y] = make([]int, len(row))
		for x, v := range row {
			out[y][x] = int(v)
		}
	}
	return out
}

func (h *Handler) handleSolve(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req solveReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(solveResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	sol, report, stats, err := h.UC.Solve(r.Context(), req.request(req.Name, req.Persist))
	if err != nil {
		// store/IO failures are server-side, everything else is a bad request
		status := http.StatusBadRequest
		var storeErr *usecase.StoreError
		if errors.As(err, &storeErr) {
			status = http.StatusInternalServerError
		}
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(solveResp{Error: err.Error()})
		return
	}
	resp := solveResp{
		Grid:       gridRows(sol.Grid.Values()),
		Text:       render.Console(sol.Grid),
		Score:      sol.Result.Score,
		Iterations: sol.Result.Iterations,
		Restarts:   stats.Restarts,
		DurationMs: stats.Duration.Milliseconds(),
	}
	if report != nil {
		resp.ReportID = report.ID
	}
	_ = json.NewEncoder(w).Encode(resp)
}

// ---- Analyze ----

type analyzeResp struct {
	Accuracy float64 `json:"accuracy"`
	ItrAvg   int     `json:"itrAvg,omitempty"`
	ItrMin   int     `json:"itrMin,omitempty"`
	ItrMax   int     `json:"itrMax,omitempty"`
	Perfect  []int   `json:"perfect,omitempty"`
	Error    string  `json:"error,omitempty"`
}

func (h *Handler) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req solverConfig
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(analyzeResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	s, err := h.UC.NewSolver(r.Context(), req.request("", false))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(analyzeResp{Error: err.Error()})
		return
	}
	a, err := bench.Analyze(r.Context(), s)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(analyzeResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(analyzeResp{
		Accuracy: a.Accuracy,
		ItrAvg:   a.ItrAvg,
		ItrMin:   a.ItrMin,
		ItrMax:   a.ItrMax,
		Perfect:  a.Perfect,
	})
}

// ---- Algorithms ----

func (h *Handler) handleAlgorithms(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodGet {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	names := []string{
		domain.HillClimbing.String(),
		domain.BetaHC.String(),
		domain.CustomBetaHC.String(),
	}
	_ = json.NewEncoder(w).Encode(map[string][]string{"algorithms": names})
}

// ---- Reports ----

type reportReq struct {
	ID string `json:"id"`
}
type reportResp struct {
	Report *domain.Report `json:"report,omitempty"`
	Error  string         `json:"error,omitempty"`
}

func (h *Handler) handleReport(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req reportReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(reportResp{Error: "invalid JSON or missing id"})
		return
	}
	rep, err := h.UC.LoadReport(r.Context(), req.ID)
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(reportResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(reportResp{Report: rep})
}

type reportsResp struct {
	Reports []domain.ReportMeta `json:"reports"`
	Error   string              `json:"error,omitempty"`
}

func (h *Handler) handleReports(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodGet {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	metas, err := h.UC.ListReports(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(reportsResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(reportsResp{Reports: metas})
}
