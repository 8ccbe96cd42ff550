package storage

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/hjeni/sudoku-ai/internal/domain"
)

// FS serves initial puzzle states from text files and persists solve reports
// as JSON, both under one base directory.
//
// Initial states live in files named sample_init_<size>.txt holding <size>
// lines of whitespace-separated integers, 0 meaning blank. Reports live in
// per-algorithm subdirectories.
type FS struct{ dir string }

func NewFS(dir string) *FS { return &FS{dir: dir} }

// Initial reads and parses the initial state for the given size.
func (s *FS) Initial(ctx context.Context, size int) ([][]int, error) {
	path := filepath.Join(s.dir, fmt.Sprintf("sample_init_%d.txt", size))
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening initial state")
	}
	defer f.Close()
	return parseMatrix(f, size, path)
}

func parseMatrix(f *os.File, size int, path string) ([][]int, error) {
	var matrix [][]int
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		row := make([]int, 0, size)
		for _, tok := range fields {
			v, err := strconv.Atoi(tok)
			if err != nil {
				return nil, errors.Wrapf(err, "%s line %d: bad token %q", path, len(matrix)+1, tok)
			}
			row = append(row, v)
		}
		if len(row) != size {
			return nil, errors.Errorf("%s line %d: want %d values, got %d", path, len(matrix)+1, size, len(row))
		}
		matrix = append(matrix, row)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "reading initial state")
	}
	if len(matrix) != size {
		return nil, errors.Errorf("%s: want %d rows, got %d", path, size, len(matrix))
	}
	return matrix, nil
}

func (s *FS) pathFor(id string, a domain.Algorithm) string {
	return filepath.Join(s.dir, a.String(), strings.TrimSpace(id)+".json")
}

// Save writes the report under its algorithm's subdirectory, assigning an ID
// when the report has none.
func (s *FS) Save(ctx context.Context, r *domain.Report) error {
	if r == nil {
		return errors.New("invalid report: nil")
	}
	if r.ID == "" {
		r.ID = strconv.FormatInt(time.Now().UnixNano(), 10)
	}
	target := s.pathFor(r.ID, r.Algorithm)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return errors.Wrap(err, "creating report directory")
	}
	f, err := os.Create(target)
	if err != nil {
		return errors.Wrap(err, "creating report file")
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// Load retrieves a report by id, scanning every algorithm subdirectory.
func (s *FS) Load(ctx context.Context, id string) (*domain.Report, error) {
	for _, a := range []domain.Algorithm{domain.HillClimbing, domain.BetaHC, domain.CustomBetaHC} {
		data, err := os.ReadFile(s.pathFor(id, a))
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, errors.Wrap(err, "reading report")
		}
		var out domain.Report
		if err := json.Unmarshal(data, &out); err != nil {
			return nil, errors.Wrapf(err, "decoding report %s", id)
		}
		return &out, nil
	}
	return nil, os.ErrNotExist
}

// List returns metadata for every stored report.
func (s *FS) List(ctx context.Context) ([]domain.ReportMeta, error) {
	var out []domain.ReportMeta
	for _, a := range []domain.Algorithm{domain.HillClimbing, domain.BetaHC, domain.CustomBetaHC} {
		ents, err := os.ReadDir(filepath.Join(s.dir, a.String()))
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, errors.Wrap(err, "listing reports")
		}
		for _, e := range ents {
			if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
				continue
			}
			data, err := os.ReadFile(filepath.Join(s.dir, a.String(), e.Name()))
			if err != nil {
				continue
			}
			var r domain.Report
			if err := json.Unmarshal(data, &r); err != nil || r.ID == "" {
				continue
			}
			out = append(out, domain.ReportMeta{
				ID:        r.ID,
				Name:      r.Name,
				Algorithm: r.Algorithm,
				CreatedAt: r.CreatedAt,
			})
		}
	}
	return out, nil
}
