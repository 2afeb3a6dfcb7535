package search

import (
	"fmt"
	"sort"

	"github.com/NumanAsghar901/AI-Path-Finder/internal/grid"
)

type constructor func(g *grid.Grid, start, target grid.Coord) Stepper

// Registry maps variant names to stepper constructors.
type Registry struct {
	variants map[string]constructor
}

// NewRegistry returns a registry with every built-in variant registered.
func NewRegistry() *Registry {
	return &Registry{variants: map[string]constructor{
		"bfs":           newBFS,
		"dfs":           newDFS,
		"dijkstra":      newDijkstra,
		"astar":         newAStar,
		"greedy":        newGreedy,
		"dls":           newDepthLimited,
		"iddfs":         newIterativeDeepening,
		"bidirectional": newBidirectional,
	}}
}

// Has reports whether name is a registered variant.
func (r *Registry) Has(name string) bool {
	_, ok := r.variants[name]
	return ok
}

// List returns the registered variant names, sorted.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.variants))
	for name := range r.variants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New builds a fresh stepper for one run over the grid's current start and
// target. The run must not begin before both endpoints are placed.
func (r *Registry) New(g *grid.Grid, name string) (Stepper, error) {
	start, ok := g.Start()
	if !ok {
		return nil, ErrNoStart
	}
	target, ok := g.Target()
	if !ok {
		return nil, ErrNoTarget
	}
	fn, ok := r.variants[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, name)
	}
	return fn(g, start, target), nil
}
