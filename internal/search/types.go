package search

import "github.com/NumanAsghar901/AI-Path-Finder/internal/grid"

// EventKind classifies a cell-role change produced by one engine step.
type EventKind uint8

const (
	// EventVisit marks the node expanded this step.
	EventVisit EventKind = iota
	// EventDiscover marks a node newly pushed onto the frontier.
	EventDiscover
	// EventPath carries the reconstructed path, start-first inclusive.
	EventPath
)

func (k EventKind) String() string {
	switch k {
	case EventVisit:
		return "visit"
	case EventDiscover:
		return "discover"
	case EventPath:
		return "path"
	default:
		return "unknown"
	}
}

// Event is one visual delta emitted by a step.
type Event struct {
	Kind  EventKind
	Cells []grid.Coord
}

// Outcome is the terminal status of a search.
type Outcome uint8

const (
	OutcomePending Outcome = iota
	OutcomeFound
	OutcomeUnreachable
)

func (o Outcome) String() string {
	switch o {
	case OutcomePending:
		return "pending"
	case OutcomeFound:
		return "found"
	case OutcomeUnreachable:
		return "unreachable"
	default:
		return "unknown"
	}
}

// Stepper advances a search one node expansion at a time. Implementations
// are single-run: construct a fresh one per run and discard it on reset.
type Stepper interface {
	// Name returns the registered variant name.
	Name() string
	// Step expands one node and returns the resulting events. While the
	// outcome is OutcomePending the caller should keep ticking; a terminal
	// outcome makes every further Step a no-op.
	Step() ([]Event, Outcome)
	// Pending returns the current frontier size.
	Pending() int
}

// manhattan is the A*/greedy heuristic. With 4-directional unit moves it
// never overestimates the true remaining cost.
func manhattan(a, b grid.Coord) int {
	dr := a.Row - b.Row
	if dr < 0 {
		dr = -dr
	}
	dc := a.Col - b.Col
	if dc < 0 {
		dc = -dc
	}
	return dr + dc
}
