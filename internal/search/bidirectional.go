package search

import "github.com/NumanAsghar901/AI-Path-Finder/internal/grid"

// Bidirectional grows a FIFO frontier from each endpoint, expanding one node
// per step and alternating sides. The run terminates when one side expands a
// cell the other side has already discovered; the two predecessor chains are
// spliced into a single start-to-target path. On unit-cost grids the result
// is optimal like plain BFS.
type Bidirectional struct {
	g      *grid.Grid
	start  grid.Coord
	target grid.Coord

	forward  *bidiSide
	backward *bidiSide
	turn     int

	outcome Outcome
}

type bidiSide struct {
	front fifo
	seen  map[grid.Coord]bool
	prev  map[grid.Coord]grid.Coord
}

func newBidiSide(origin grid.Coord) *bidiSide {
	s := &bidiSide{
		seen: map[grid.Coord]bool{origin: true},
		prev: make(map[grid.Coord]grid.Coord),
	}
	s.front.push(node{cell: origin})
	return s
}

func newBidirectional(g *grid.Grid, start, target grid.Coord) Stepper {
	return &Bidirectional{
		g:        g,
		start:    start,
		target:   target,
		forward:  newBidiSide(start),
		backward: newBidiSide(target),
	}
}

func (b *Bidirectional) Name() string { return "bidirectional" }

func (b *Bidirectional) Pending() int {
	return b.forward.front.len() + b.backward.front.len()
}

func (b *Bidirectional) Step() ([]Event, Outcome) {
	if b.outcome != OutcomePending {
		return nil, b.outcome
	}

	side, other := b.forward, b.backward
	if b.turn%2 == 1 {
		side, other = b.backward, b.forward
	}
	// Alternate strictly, but keep going on one side once the other dries up.
	if side.front.len() == 0 {
		side, other = other, side
	}
	b.turn++

	n, ok := side.front.pop()
	if !ok {
		b.outcome = OutcomeUnreachable
		return nil, b.outcome
	}

	events := []Event{{Kind: EventVisit, Cells: []grid.Coord{n.cell}}}

	if other.seen[n.cell] {
		b.outcome = OutcomeFound
		events = append(events, Event{Kind: EventPath, Cells: b.splice(n.cell)})
		return events, b.outcome
	}

	for _, nb := range b.g.Neighbors(n.cell) {
		if side.seen[nb] {
			continue
		}
		side.seen[nb] = true
		side.prev[nb] = n.cell
		side.front.push(node{cell: nb, g: n.g + 1})
		events = append(events, Event{Kind: EventDiscover, Cells: []grid.Coord{nb}})
	}

	return events, b.outcome
}

// splice joins the two half-paths at the meeting cell: start..meet from the
// forward chain, then meet..target from the backward chain.
func (b *Bidirectional) splice(meet grid.Coord) []grid.Coord {
	var head []grid.Coord
	for cur := meet; ; {
		head = append(head, cur)
		prev, ok := b.forward.prev[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(head)-1; i < j; i, j = i+1, j-1 {
		head[i], head[j] = head[j], head[i]
	}

	path := head
	for cur := meet; ; {
		prev, ok := b.backward.prev[cur]
		if !ok {
			break
		}
		cur = prev
		path = append(path, cur)
	}
	return path
}
