package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NumanAsghar901/AI-Path-Finder/internal/grid"
)

func TestDepthLimitedFindsNearbyTarget(t *testing.T) {
	g := buildGrid(t, 5, 5, grid.Coord{Row: 0, Col: 0}, grid.Coord{Row: 4, Col: 4}, nil)
	s, err := NewRegistry().New(g, "dls")
	require.NoError(t, err)

	outcome, path, _, _ := drain(t, s)
	assert.Equal(t, OutcomeFound, outcome)
	require.NotEmpty(t, path)
	assert.Equal(t, grid.Coord{Row: 0, Col: 0}, path[0])
	assert.Equal(t, grid.Coord{Row: 4, Col: 4}, path[len(path)-1])
	assert.LessOrEqual(t, len(path), DefaultDepthLimit+1, "path cannot exceed the depth limit")
}

func TestDepthLimitedRespectsLimit(t *testing.T) {
	// A 2x20 strip: the target sits 20 moves away, beyond the default
	// limit of 15, so the run must exhaust without finding it.
	g := buildGrid(t, 2, 20, grid.Coord{Row: 0, Col: 0}, grid.Coord{Row: 1, Col: 19}, nil)
	s, err := NewRegistry().New(g, "dls")
	require.NoError(t, err)

	outcome, path, visits, _ := drain(t, s)
	assert.Equal(t, OutcomeUnreachable, outcome)
	assert.Nil(t, path)
	assert.NotContains(t, visits, grid.Coord{Row: 1, Col: 19})
}

func TestDepthLimitedCutoffFlag(t *testing.T) {
	g := buildGrid(t, 2, 20, grid.Coord{Row: 0, Col: 0}, grid.Coord{Row: 1, Col: 19}, nil)

	truncated := newDepthLimitedAt("dls", g, grid.Coord{Row: 0, Col: 0}, grid.Coord{Row: 1, Col: 19}, 3)
	drain(t, truncated)
	assert.True(t, truncated.cutoff, "a limit shorter than the board must suppress expansions")

	roomy := newDepthLimitedAt("dls", g, grid.Coord{Row: 0, Col: 0}, grid.Coord{Row: 1, Col: 19}, 100)
	drain(t, roomy)
	assert.False(t, roomy.cutoff, "nothing is suppressed once the limit covers the board")
}

func TestIterativeDeepeningGoesBeyondDefaultLimit(t *testing.T) {
	// Same strip that defeats plain dls: deepening must keep raising the
	// limit until the target is in range.
	g := buildGrid(t, 2, 20, grid.Coord{Row: 0, Col: 0}, grid.Coord{Row: 1, Col: 19}, nil)
	s, err := NewRegistry().New(g, "iddfs")
	require.NoError(t, err)

	outcome, path, _, _ := drain(t, s)
	assert.Equal(t, OutcomeFound, outcome)
	require.NotEmpty(t, path)
	assert.Equal(t, grid.Coord{Row: 0, Col: 0}, path[0])
	assert.Equal(t, grid.Coord{Row: 1, Col: 19}, path[len(path)-1])
}

func TestIterativeDeepeningSealedBoardTerminates(t *testing.T) {
	walls := make([]grid.Coord, 0, 5)
	for r := 0; r < 5; r++ {
		walls = append(walls, grid.Coord{Row: r, Col: 2})
	}
	g := buildGrid(t, 5, 5, grid.Coord{Row: 0, Col: 0}, grid.Coord{Row: 4, Col: 4}, walls)
	s, err := NewRegistry().New(g, "iddfs")
	require.NoError(t, err)

	outcome, path, _, _ := drain(t, s)
	assert.Equal(t, OutcomeUnreachable, outcome)
	assert.Nil(t, path)
}

func TestIterativeDeepeningRestartsRounds(t *testing.T) {
	g := buildGrid(t, 4, 4, grid.Coord{Row: 0, Col: 0}, grid.Coord{Row: 3, Col: 3}, nil)
	s, err := NewRegistry().New(g, "iddfs")
	require.NoError(t, err)

	// The limit-0 round is a single expansion of the start; the next
	// step must begin a fresh round by re-visiting the start.
	events, outcome := s.Step()
	require.Equal(t, OutcomePending, outcome)
	require.NotEmpty(t, events)
	assert.Equal(t, []grid.Coord{{Row: 0, Col: 0}}, events[0].Cells)
	assert.Len(t, events, 1, "limit 0 expands nothing beyond the start")

	// Draining the dry frontier rolls the limit without emitting events.
	events, outcome = s.Step()
	require.Equal(t, OutcomePending, outcome)
	assert.Empty(t, events)

	events, outcome = s.Step()
	require.Equal(t, OutcomePending, outcome)
	require.NotEmpty(t, events)
	assert.Equal(t, EventVisit, events[0].Kind)
	assert.Equal(t, []grid.Coord{{Row: 0, Col: 0}}, events[0].Cells, "each round restarts from the start")
}
