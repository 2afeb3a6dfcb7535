package grid

import "fmt"

// Coord addresses a single cell by row and column.
type Coord struct {
	Row int
	Col int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Role is the visual and semantic state of one cell. A cell holds exactly
// one role at a time.
type Role uint8

const (
	RoleEmpty Role = iota
	RoleWall
	RoleStart
	RoleTarget
	RoleFrontier
	RoleVisited
	RolePath
)

func (r Role) String() string {
	switch r {
	case RoleEmpty:
		return "empty"
	case RoleWall:
		return "wall"
	case RoleStart:
		return "start"
	case RoleTarget:
		return "target"
	case RoleFrontier:
		return "frontier"
	case RoleVisited:
		return "visited"
	case RolePath:
		return "path"
	default:
		return "unknown"
	}
}

// searchRole reports whether r is transient coloring left behind by a run.
func (r Role) searchRole() bool {
	return r == RoleFrontier || r == RoleVisited || r == RolePath
}

// directions enumerates 4-directional adjacency clockwise from Up. The order
// is part of the engine's determinism contract.
var directions = [4]Coord{
	{Row: -1, Col: 0}, // up
	{Row: 0, Col: 1},  // right
	{Row: 1, Col: 0},  // down
	{Row: 0, Col: -1}, // left
}

// Grid is a fixed-size rectangular field of cell roles.
type Grid struct {
	rows  int
	cols  int
	cells [][]Role

	start     Coord
	target    Coord
	hasStart  bool
	hasTarget bool
}

// New creates an empty grid. Dimensions are fixed for the grid's lifetime.
func New(rows, cols int) (*Grid, error) {
	if rows < 2 || cols < 2 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadDimensions, rows, cols)
	}
	cells := make([][]Role, rows)
	for r := range cells {
		cells[r] = make([]Role, cols)
	}
	return &Grid{rows: rows, cols: cols, cells: cells}, nil
}

func (g *Grid) Rows() int { return g.rows }
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether c addresses a cell of this grid.
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// At returns the role at c, or RoleEmpty for out-of-bounds coordinates.
func (g *Grid) At(c Coord) Role {
	if !g.InBounds(c) {
		return RoleEmpty
	}
	return g.cells[c.Row][c.Col]
}

// Start returns the start cell, if one has been placed.
func (g *Grid) Start() (Coord, bool) { return g.start, g.hasStart }

// Target returns the target cell, if one has been placed.
func (g *Grid) Target() (Coord, bool) { return g.target, g.hasTarget }

// SetRole assigns a role to a cell, enforcing the endpoint invariants.
// Placing RoleStart or RoleTarget clears the previous holder of that role.
// Assignments that would leave the grid without a placed endpoint, or put a
// wall on one, fail with ErrInvalidRoleTransition.
func (g *Grid) SetRole(c Coord, role Role) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %v", ErrInvalidCoordinate, c)
	}

	switch role {
	case RoleStart:
		if g.hasTarget && c == g.target {
			return fmt.Errorf("%w: start onto target %v", ErrInvalidRoleTransition, c)
		}
		if g.hasStart {
			g.cells[g.start.Row][g.start.Col] = RoleEmpty
		}
		g.start = c
		g.hasStart = true
	case RoleTarget:
		if g.hasStart && c == g.start {
			return fmt.Errorf("%w: target onto start %v", ErrInvalidRoleTransition, c)
		}
		if g.hasTarget {
			g.cells[g.target.Row][g.target.Col] = RoleEmpty
		}
		g.target = c
		g.hasTarget = true
	default:
		if (g.hasStart && c == g.start) || (g.hasTarget && c == g.target) {
			return fmt.Errorf("%w: %v onto %v at %v", ErrInvalidRoleTransition, role, g.cells[c.Row][c.Col], c)
		}
	}

	g.cells[c.Row][c.Col] = role
	return nil
}

// ToggleWall flips a cell between empty and wall. Cells holding any other
// role are left untouched; endpoints report ErrInvalidRoleTransition so the
// caller can surface the rejection.
func (g *Grid) ToggleWall(c Coord) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %v", ErrInvalidCoordinate, c)
	}
	switch g.cells[c.Row][c.Col] {
	case RoleEmpty:
		return g.SetRole(c, RoleWall)
	case RoleWall:
		return g.SetRole(c, RoleEmpty)
	case RoleStart, RoleTarget:
		return fmt.Errorf("%w: wall onto endpoint %v", ErrInvalidRoleTransition, c)
	}
	return nil
}

// Neighbors returns the in-bounds, non-wall cells adjacent to c, enumerated
// clockwise from Up. The result is a pure function of the grid at call time.
func (g *Grid) Neighbors(c Coord) []Coord {
	out := make([]Coord, 0, len(directions))
	for _, d := range directions {
		n := Coord{Row: c.Row + d.Row, Col: c.Col + d.Col}
		if g.InBounds(n) && g.cells[n.Row][n.Col] != RoleWall {
			out = append(out, n)
		}
	}
	return out
}

// ClearSearch resets all Frontier/Visited/Path cells to empty, preserving
// walls and endpoints. Calling it twice is a no-op the second time.
func (g *Grid) ClearSearch() {
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.cells[r][c].searchRole() {
				g.cells[r][c] = RoleEmpty
			}
		}
	}
}

// Reset clears every cell to empty, including walls and endpoints.
func (g *Grid) Reset() {
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			g.cells[r][c] = RoleEmpty
		}
	}
	g.hasStart = false
	g.hasTarget = false
}

// Snapshot copies the full cell field for a renderer to consume.
func (g *Grid) Snapshot() [][]Role {
	out := make([][]Role, g.rows)
	for r := range out {
		out[r] = make([]Role, g.cols)
		copy(out[r], g.cells[r])
	}
	return out
}

// Each visits every cell in row-major order.
func (g *Grid) Each(fn func(c Coord, role Role)) {
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			fn(Coord{Row: r, Col: c}, g.cells[r][c])
		}
	}
}

// Count returns the number of cells currently holding role.
func (g *Grid) Count(role Role) int {
	n := 0
	g.Each(func(_ Coord, r Role) {
		if r == role {
			n++
		}
	})
	return n
}
