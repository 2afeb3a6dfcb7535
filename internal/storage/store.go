package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/NumanAsghar901/AI-Path-Finder/internal/grid"
	"github.com/NumanAsghar901/AI-Path-Finder/internal/run"
	"github.com/NumanAsghar901/AI-Path-Finder/internal/search"
)

// Store persists run traces under a base directory, one directory per run:
// metadata.json with the run summary and events.csv with the step trace.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string    `json:"id"`
	Algorithm string    `json:"algorithm"`
	Timestamp time.Time `json:"timestamp"`
	Rows      int       `json:"rows"`
	Cols      int       `json:"cols"`
	Seed      int64     `json:"seed"`
	Outcome   string    `json:"outcome"`
	Stats     run.Stats `json:"stats"`
}

// Save writes one finished run. The returned run ID is the algorithm name
// plus a short random suffix.
func (s *Store) Save(meta RunMetadata, trace []run.TraceEvent) (string, error) {
	runID := fmt.Sprintf("%s_%s", meta.Algorithm, uuid.NewString()[:8])
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta.ID = runID
	if meta.Timestamp.IsZero() {
		meta.Timestamp = time.Now()
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "events.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"step", "event", "row", "col"}); err != nil {
		return "", err
	}
	for _, ev := range trace {
		row := []string{
			strconv.Itoa(ev.Step),
			ev.Kind.String(),
			strconv.Itoa(ev.Cell.Row),
			strconv.Itoa(ev.Cell.Col),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

// List returns metadata for all stored runs, newest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var runs []RunMetadata
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		meta, err := s.Load(e.Name())
		if err != nil {
			continue // skip unreadable runs rather than failing the listing
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.After(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadEvents reads a run's step trace back from events.csv.
func (s *Store) LoadEvents(runID string) ([]run.TraceEvent, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, "events.csv"))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}

	trace := make([]run.TraceEvent, 0, len(records)-1)
	for _, rec := range records[1:] { // skip header
		if len(rec) != 4 {
			return nil, fmt.Errorf("malformed event row: %v", rec)
		}
		step, err := strconv.Atoi(rec[0])
		if err != nil {
			return nil, err
		}
		kind, err := parseEventKind(rec[1])
		if err != nil {
			return nil, err
		}
		row, err := strconv.Atoi(rec[2])
		if err != nil {
			return nil, err
		}
		col, err := strconv.Atoi(rec[3])
		if err != nil {
			return nil, err
		}
		trace = append(trace, run.TraceEvent{
			Step: step,
			Kind: kind,
			Cell: grid.Coord{Row: row, Col: col},
		})
	}
	return trace, nil
}

func parseEventKind(s string) (search.EventKind, error) {
	switch s {
	case "visit":
		return search.EventVisit, nil
	case "discover":
		return search.EventDiscover, nil
	case "path":
		return search.EventPath, nil
	default:
		return 0, fmt.Errorf("unknown event kind: %s", s)
	}
}
