package search

import "github.com/NumanAsghar901/AI-Path-Finder/internal/grid"

// DefaultDepthLimit is how many moves a plain depth-limited run may take
// from the start before it gives up on a branch.
const DefaultDepthLimit = 15

// depthLimited is DFS with a depth cutoff. Nodes at the limit are still
// checked against the target but never expanded; cutoff records that the
// limit suppressed at least one expansion, so a deepening wrapper can tell
// "exhausted" apart from "truncated".
type depthLimited struct {
	name    string
	g       *grid.Grid
	start   grid.Coord
	target  grid.Coord
	limit   int
	front   lifo
	seen    map[grid.Coord]bool
	prev    map[grid.Coord]grid.Coord
	cutoff  bool
	outcome Outcome
}

func newDepthLimitedAt(name string, g *grid.Grid, start, target grid.Coord, limit int) *depthLimited {
	d := &depthLimited{
		name:   name,
		g:      g,
		start:  start,
		target: target,
		limit:  limit,
		seen:   map[grid.Coord]bool{start: true},
		prev:   make(map[grid.Coord]grid.Coord),
	}
	d.front.push(node{cell: start, g: 0})
	return d
}

func (d *depthLimited) Name() string { return d.name }

func (d *depthLimited) Pending() int { return d.front.len() }

func (d *depthLimited) Step() ([]Event, Outcome) {
	if d.outcome != OutcomePending {
		return nil, d.outcome
	}

	n, ok := d.front.pop()
	if !ok {
		d.outcome = OutcomeUnreachable
		return nil, d.outcome
	}

	events := []Event{{Kind: EventVisit, Cells: []grid.Coord{n.cell}}}

	if n.cell == d.target {
		d.outcome = OutcomeFound
		events = append(events, Event{Kind: EventPath, Cells: d.reconstruct()})
		return events, d.outcome
	}

	neighbors := d.g.Neighbors(n.cell)
	for i, j := 0, len(neighbors)-1; i < j; i, j = i+1, j-1 {
		neighbors[i], neighbors[j] = neighbors[j], neighbors[i]
	}
	for _, nb := range neighbors {
		if d.seen[nb] {
			continue
		}
		if n.g >= d.limit {
			d.cutoff = true
			continue
		}
		d.seen[nb] = true
		d.prev[nb] = n.cell
		d.front.push(node{cell: nb, g: n.g + 1})
		events = append(events, Event{Kind: EventDiscover, Cells: []grid.Coord{nb}})
	}

	return events, d.outcome
}

func (d *depthLimited) reconstruct() []grid.Coord {
	path := []grid.Coord{d.target}
	cur := d.target
	for cur != d.start {
		cur = d.prev[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// iterativeDeepening reruns depth-limited rounds with a growing limit,
// starting from zero like the original deepening loop. A round that dries
// up without hitting its cutoff proves the target unreachable; otherwise
// the next round starts fresh with limit+1.
type iterativeDeepening struct {
	g        *grid.Grid
	start    grid.Coord
	target   grid.Coord
	limit    int
	maxDepth int
	round    *depthLimited
	outcome  Outcome
}

func newIterativeDeepeningAt(g *grid.Grid, start, target grid.Coord, limit int) *iterativeDeepening {
	return &iterativeDeepening{
		g:        g,
		start:    start,
		target:   target,
		limit:    limit,
		maxDepth: g.Rows() * g.Cols(),
		round:    newDepthLimitedAt("iddfs", g, start, target, limit),
	}
}

func (it *iterativeDeepening) Name() string { return "iddfs" }

func (it *iterativeDeepening) Pending() int { return it.round.Pending() }

func (it *iterativeDeepening) Step() ([]Event, Outcome) {
	if it.outcome != OutcomePending {
		return nil, it.outcome
	}

	events, outcome := it.round.Step()
	switch outcome {
	case OutcomeFound:
		it.outcome = OutcomeFound
	case OutcomeUnreachable:
		if !it.round.cutoff || it.limit >= it.maxDepth {
			it.outcome = OutcomeUnreachable
			break
		}
		it.limit++
		it.round = newDepthLimitedAt("iddfs", it.g, it.start, it.target, it.limit)
	}
	return events, it.outcome
}

func newDepthLimited(g *grid.Grid, start, target grid.Coord) Stepper {
	return newDepthLimitedAt("dls", g, start, target, DefaultDepthLimit)
}

func newIterativeDeepening(g *grid.Grid, start, target grid.Coord) Stepper {
	return newIterativeDeepeningAt(g, start, target, 0)
}
