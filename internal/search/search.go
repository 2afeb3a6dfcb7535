package search

import "github.com/NumanAsghar901/AI-Path-Finder/internal/grid"

// Search is the shared engine behind every single-frontier variant. The
// frontier policy and two small flags are the only things that differ
// between BFS, DFS, Dijkstra, A* and greedy best-first.
type Search struct {
	name    string
	g       *grid.Grid
	start   grid.Coord
	target  grid.Coord
	front   frontier
	visited map[grid.Coord]bool
	seen    map[grid.Coord]bool
	prev    map[grid.Coord]grid.Coord
	cost    map[grid.Coord]int

	// relax enables cost-based re-discovery for the weighted variants;
	// without it a cell is pushed at most once, like the original FIFO/LIFO
	// searches. reverse flips neighbor push order so a LIFO frontier still
	// explores clockwise-first.
	relax   bool
	reverse bool

	outcome Outcome
}

func newSearch(name string, g *grid.Grid, start, target grid.Coord, front frontier, relax, reverse bool) *Search {
	s := &Search{
		name:    name,
		g:       g,
		start:   start,
		target:  target,
		front:   front,
		visited: make(map[grid.Coord]bool),
		seen:    make(map[grid.Coord]bool),
		prev:    make(map[grid.Coord]grid.Coord),
		cost:    make(map[grid.Coord]int),
		relax:   relax,
		reverse: reverse,
	}
	s.cost[start] = 0
	s.seen[start] = true
	front.push(node{cell: start, g: 0})
	return s
}

func (s *Search) Name() string { return s.name }

func (s *Search) Pending() int { return s.front.len() }

// Step expands exactly one node. Stale frontier entries left behind by
// relaxation are skipped without counting as an expansion.
func (s *Search) Step() ([]Event, Outcome) {
	if s.outcome != OutcomePending {
		return nil, s.outcome
	}

	for {
		n, ok := s.front.pop()
		if !ok {
			s.outcome = OutcomeUnreachable
			return nil, s.outcome
		}
		if s.visited[n.cell] {
			continue
		}
		s.visited[n.cell] = true

		events := []Event{{Kind: EventVisit, Cells: []grid.Coord{n.cell}}}

		if n.cell == s.target {
			s.outcome = OutcomeFound
			events = append(events, Event{Kind: EventPath, Cells: s.reconstruct()})
			return events, s.outcome
		}

		neighbors := s.g.Neighbors(n.cell)
		if s.reverse {
			for i, j := 0, len(neighbors)-1; i < j; i, j = i+1, j-1 {
				neighbors[i], neighbors[j] = neighbors[j], neighbors[i]
			}
		}

		for _, nb := range neighbors {
			if s.visited[nb] {
				continue
			}
			g := n.g + 1
			if s.relax {
				if prev, known := s.cost[nb]; known && g >= prev {
					continue
				}
				s.cost[nb] = g
			} else {
				if s.seen[nb] {
					continue
				}
				s.seen[nb] = true
			}
			s.prev[nb] = n.cell
			s.front.push(node{cell: nb, g: g})
			events = append(events, Event{Kind: EventDiscover, Cells: []grid.Coord{nb}})
		}

		return events, s.outcome
	}
}

// reconstruct walks predecessors from the target back to the start and
// returns the path start-first, both endpoints included.
func (s *Search) reconstruct() []grid.Coord {
	path := []grid.Coord{s.target}
	cur := s.target
	for cur != s.start {
		cur = s.prev[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

func newBFS(g *grid.Grid, start, target grid.Coord) Stepper {
	return newSearch("bfs", g, start, target, &fifo{}, false, false)
}

func newDFS(g *grid.Grid, start, target grid.Coord) Stepper {
	return newSearch("dfs", g, start, target, &lifo{}, false, true)
}

func newDijkstra(g *grid.Grid, start, target grid.Coord) Stepper {
	front := newMinHeap(func(n node) int { return n.g }, false)
	return newSearch("dijkstra", g, start, target, front, true, false)
}

func newAStar(g *grid.Grid, start, target grid.Coord) Stepper {
	front := newMinHeap(func(n node) int { return n.g + manhattan(n.cell, target) }, true)
	return newSearch("astar", g, start, target, front, true, false)
}

func newGreedy(g *grid.Grid, start, target grid.Coord) Stepper {
	front := newMinHeap(func(n node) int { return manhattan(n.cell, target) }, false)
	return newSearch("greedy", g, start, target, front, false, false)
}
