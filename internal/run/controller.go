package run

import (
	"context"
	"math/rand"

	"github.com/NumanAsghar901/AI-Path-Finder/internal/grid"
	"github.com/NumanAsghar901/AI-Path-Finder/internal/search"
)

// Phase is the controller's lifecycle state.
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhasePaused
	PhaseFound
	PhaseUnreachable
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseFound:
		return "found"
	case PhaseUnreachable:
		return "unreachable"
	default:
		return "unknown"
	}
}

// Terminal reports whether the phase ends a run.
func (p Phase) Terminal() bool { return p == PhaseFound || p == PhaseUnreachable }

// Stats accumulates per-run counters for the UI panel and stored metadata.
type Stats struct {
	Steps       int `json:"steps"`
	Expanded    int `json:"expanded"`
	Discovered  int `json:"discovered"`
	MaxFrontier int `json:"max_frontier"`
	PathLen     int `json:"path_len"`
}

// TraceEvent is one cell-role change in the run trace, ready for storage.
type TraceEvent struct {
	Step int
	Kind search.EventKind
	Cell grid.Coord
}

// Controller drives a search over its grid one tick at a time.
type Controller struct {
	g         *grid.Grid
	registry  *search.Registry
	algorithm string

	phase   Phase
	stepper search.Stepper
	stats   Stats
	trace   []TraceEvent

	// optional mid-run obstacle injection, seeded for reproducibility
	obstacleRng  *rand.Rand
	obstacleRate float64
}

// NewController returns an idle controller over g, defaulting to BFS.
func NewController(g *grid.Grid) *Controller {
	return &Controller{
		g:         g,
		registry:  search.NewRegistry(),
		algorithm: "bfs",
	}
}

func (c *Controller) Grid() *grid.Grid     { return c.g }
func (c *Controller) Phase() Phase         { return c.phase }
func (c *Controller) Algorithm() string    { return c.algorithm }
func (c *Controller) Stats() Stats         { return c.stats }
func (c *Controller) Algorithms() []string { return c.registry.List() }

// FrontierSize is the number of nodes currently pending expansion, zero
// when no run is in flight. Unlike Stats().MaxFrontier it shrinks as the
// frontier drains.
func (c *Controller) FrontierSize() int {
	if c.stepper == nil {
		return 0
	}
	return c.stepper.Pending()
}

// Trace returns a copy of the run trace so far.
func (c *Controller) Trace() []TraceEvent {
	out := make([]TraceEvent, len(c.trace))
	copy(out, c.trace)
	return out
}

// EnableObstacles turns on random mid-run wall injection: each tick one
// empty cell may become a wall with the given probability. The seed makes
// a run reproducible despite the randomness.
func (c *Controller) EnableObstacles(rate float64, seed int64) {
	c.obstacleRng = rand.New(rand.NewSource(seed))
	c.obstacleRate = rate
}

// SelectAlgorithm switches the variant for the next run. Rejected while a
// run is live; switching also clears leftover search coloring.
func (c *Controller) SelectAlgorithm(name string) error {
	if c.phase == PhaseRunning || c.phase == PhasePaused {
		return ErrAlreadyRunning
	}
	if !c.registry.Has(name) {
		return search.ErrUnknownAlgorithm
	}
	c.algorithm = name
	c.stepper = nil
	c.g.ClearSearch()
	c.phase = PhaseIdle
	return nil
}

// Start begins a fresh run. A live run is discarded first: its coloring is
// wiped before the new search state is created, so nothing leaks between
// runs. Fails without state change to Running when an endpoint is missing.
func (c *Controller) Start() error {
	c.g.ClearSearch()
	stepper, err := c.registry.New(c.g, c.algorithm)
	if err != nil {
		c.stepper = nil
		c.phase = PhaseIdle
		return err
	}
	c.stepper = stepper
	c.stats = Stats{}
	c.trace = nil
	c.phase = PhaseRunning
	return nil
}

// Pause suspends a running search between ticks.
func (c *Controller) Pause() error {
	if c.phase != PhaseRunning {
		return ErrNotRunning
	}
	c.phase = PhasePaused
	return nil
}

// Resume continues a paused search.
func (c *Controller) Resume() error {
	if c.phase != PhasePaused {
		return ErrNotRunning
	}
	c.phase = PhaseRunning
	return nil
}

// Reset abandons any run and clears search coloring, keeping walls and
// endpoints. The controller returns to Idle.
func (c *Controller) Reset() {
	c.stepper = nil
	c.stats = Stats{}
	c.trace = nil
	c.g.ClearSearch()
	c.phase = PhaseIdle
}

// Clear is the heavier reset: walls go too. The endpoints survive in place,
// matching the original board's Clear control.
func (c *Controller) Clear() {
	start, hasStart := c.g.Start()
	target, hasTarget := c.g.Target()
	c.g.Reset()
	if hasStart {
		c.g.SetRole(start, grid.RoleStart)
	}
	if hasTarget {
		c.g.SetRole(target, grid.RoleTarget)
	}
	c.stepper = nil
	c.stats = Stats{}
	c.trace = nil
	c.phase = PhaseIdle
}

// Tick advances the run by exactly one engine step and paints the emitted
// events onto the grid. On a terminal outcome the controller transitions to
// Found or Unreachable and further ticks fail with ErrNotRunning.
func (c *Controller) Tick() error {
	if c.phase != PhaseRunning {
		return ErrNotRunning
	}

	c.maybeInjectObstacle()

	c.stats.Steps++
	events, outcome := c.stepper.Step()
	c.paint(events)

	if pending := c.stepper.Pending(); pending > c.stats.MaxFrontier {
		c.stats.MaxFrontier = pending
	}

	switch outcome {
	case search.OutcomeFound:
		c.phase = PhaseFound
	case search.OutcomeUnreachable:
		c.phase = PhaseUnreachable
	}
	return nil
}

// Run drives a started run to completion, for headless use.
func (c *Controller) Run(ctx context.Context) error {
	if err := c.Start(); err != nil {
		return err
	}
	for c.phase == PhaseRunning {
		select {
		case <-ctx.Done():
			c.Reset()
			return ctx.Err()
		default:
		}
		if err := c.Tick(); err != nil {
			return err
		}
	}
	return nil
}

// paint applies step events to grid roles. Endpoints keep their own role
// when the search sweeps over them.
func (c *Controller) paint(events []search.Event) {
	start, _ := c.g.Start()
	target, _ := c.g.Target()

	for _, ev := range events {
		var role grid.Role
		switch ev.Kind {
		case search.EventVisit:
			role = grid.RoleVisited
			c.stats.Expanded += len(ev.Cells)
		case search.EventDiscover:
			role = grid.RoleFrontier
			c.stats.Discovered += len(ev.Cells)
		case search.EventPath:
			role = grid.RolePath
			c.stats.PathLen = len(ev.Cells)
		default:
			continue
		}
		for _, cell := range ev.Cells {
			c.trace = append(c.trace, TraceEvent{Step: c.stats.Steps, Kind: ev.Kind, Cell: cell})
			if cell == start || cell == target {
				continue
			}
			c.g.SetRole(cell, role)
		}
	}
}

// maybeInjectObstacle may wall off one random empty cell, imitating the
// original's dynamic obstacles. Empty means untouched by the search, so the
// injected wall never contradicts already-painted state.
func (c *Controller) maybeInjectObstacle() {
	if c.obstacleRng == nil || c.obstacleRng.Float64() >= c.obstacleRate {
		return
	}
	var empties []grid.Coord
	c.g.Each(func(cell grid.Coord, role grid.Role) {
		if role == grid.RoleEmpty {
			empties = append(empties, cell)
		}
	})
	if len(empties) == 0 {
		return
	}
	c.g.SetRole(empties[c.obstacleRng.Intn(len(empties))], grid.RoleWall)
}
