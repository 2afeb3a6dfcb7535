package storage

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/NumanAsghar901/AI-Path-Finder/internal/grid"
	"github.com/NumanAsghar901/AI-Path-Finder/internal/run"
	"github.com/NumanAsghar901/AI-Path-Finder/internal/search"
)

func sampleTrace() []run.TraceEvent {
	return []run.TraceEvent{
		{Step: 1, Kind: search.EventVisit, Cell: grid.Coord{Row: 0, Col: 0}},
		{Step: 1, Kind: search.EventDiscover, Cell: grid.Coord{Row: 0, Col: 1}},
		{Step: 1, Kind: search.EventDiscover, Cell: grid.Coord{Row: 1, Col: 0}},
		{Step: 2, Kind: search.EventVisit, Cell: grid.Coord{Row: 0, Col: 1}},
		{Step: 3, Kind: search.EventPath, Cell: grid.Coord{Row: 0, Col: 0}},
	}
}

func TestSaveAndLoadRoundtrip(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	meta := RunMetadata{
		Algorithm: "bfs",
		Rows:      5,
		Cols:      5,
		Seed:      42,
		Outcome:   "found",
		Stats:     run.Stats{Steps: 3, Expanded: 2, PathLen: 2},
	}

	id, err := st.Save(meta, sampleTrace())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(id, "bfs_") {
		t.Errorf("run id should carry the algorithm name, got %s", id)
	}

	got, err := st.Load(id)
	if err != nil {
		t.Fatal(err)
	}
	if got.ID != id || got.Algorithm != "bfs" || got.Outcome != "found" {
		t.Errorf("metadata mismatch: %+v", got)
	}
	if got.Stats.Steps != 3 {
		t.Errorf("stats not persisted: %+v", got.Stats)
	}
	if got.Timestamp.IsZero() {
		t.Error("timestamp should be filled in on save")
	}

	events, err := st.LoadEvents(id)
	if err != nil {
		t.Fatal(err)
	}
	want := sampleTrace()
	if len(events) != len(want) {
		t.Fatalf("expected %d events, got %d", len(want), len(events))
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("event %d: got %+v, want %+v", i, events[i], want[i])
		}
	}
}

func TestListRuns(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 0 {
		t.Fatalf("expected empty store, got %d runs", len(runs))
	}

	for _, algo := range []string{"bfs", "astar"} {
		if _, err := st.Save(RunMetadata{Algorithm: algo}, nil); err != nil {
			t.Fatal(err)
		}
	}

	runs, err = st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
}

func TestLoadUnknownRun(t *testing.T) {
	st := New(t.TempDir())
	st.Init()
	if _, err := st.Load("bfs_deadbeef"); err == nil {
		t.Error("expected error for unknown run")
	}
	if _, err := st.LoadEvents("bfs_deadbeef"); err == nil {
		t.Error("expected error for unknown run")
	}
}

func TestExportJSON(t *testing.T) {
	meta := &RunMetadata{ID: "bfs_cafe0123", Algorithm: "bfs", Outcome: "found"}

	var buf bytes.Buffer
	if err := ExportJSON(&buf, meta, sampleTrace()); err != nil {
		t.Fatal(err)
	}

	var decoded runExport
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if decoded.Meta.ID != "bfs_cafe0123" {
		t.Errorf("unexpected meta: %+v", decoded.Meta)
	}
	if len(decoded.Events) != len(sampleTrace()) {
		t.Errorf("expected %d events, got %d", len(sampleTrace()), len(decoded.Events))
	}
	if decoded.Events[0].Event != "visit" {
		t.Errorf("unexpected first event: %+v", decoded.Events[0])
	}
}

func TestExportCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := ExportCSV(&buf, sampleTrace()); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != len(sampleTrace())+1 {
		t.Fatalf("expected header plus %d rows, got %d lines", len(sampleTrace()), len(lines))
	}
	if lines[0] != "step,event,row,col" {
		t.Errorf("unexpected header: %s", lines[0])
	}
}
