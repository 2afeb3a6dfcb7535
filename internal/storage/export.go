package storage

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/NumanAsghar901/AI-Path-Finder/internal/run"
)

type runExport struct {
	Meta   RunMetadata   `json:"meta"`
	Events []eventExport `json:"events"`
}

type eventExport struct {
	Step  int    `json:"step"`
	Event string `json:"event"`
	Row   int    `json:"row"`
	Col   int    `json:"col"`
}

// ExportJSON writes a run with its full trace as a single JSON document.
func ExportJSON(w io.Writer, meta *RunMetadata, trace []run.TraceEvent) error {
	out := runExport{Meta: *meta, Events: make([]eventExport, 0, len(trace))}
	for _, ev := range trace {
		out.Events = append(out.Events, eventExport{
			Step:  ev.Step,
			Event: ev.Kind.String(),
			Row:   ev.Cell.Row,
			Col:   ev.Cell.Col,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// ExportCSV streams a run trace in the same shape as the stored events.csv.
func ExportCSV(w io.Writer, trace []run.TraceEvent) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"step", "event", "row", "col"}); err != nil {
		return err
	}
	for _, ev := range trace {
		row := []string{
			strconv.Itoa(ev.Step),
			ev.Kind.String(),
			strconv.Itoa(ev.Cell.Row),
			strconv.Itoa(ev.Cell.Col),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	return cw.Error()
}
