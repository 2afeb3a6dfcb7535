package config

import (
	"sort"

	"github.com/NumanAsghar901/AI-Path-Finder/internal/grid"
)

// Preset is a named board layout: dimensions, endpoints, and walls.
type Preset struct {
	Name   string
	Rows   int
	Cols   int
	Start  grid.Coord
	Target grid.Coord
	Walls  []grid.Coord
}

// BuildGrid materializes the preset into a fresh grid.
func (p *Preset) BuildGrid() (*grid.Grid, error) {
	g, err := grid.New(p.Rows, p.Cols)
	if err != nil {
		return nil, err
	}
	if err := g.SetRole(p.Start, grid.RoleStart); err != nil {
		return nil, err
	}
	if err := g.SetRole(p.Target, grid.RoleTarget); err != nil {
		return nil, err
	}
	for _, w := range p.Walls {
		if err := g.SetRole(w, grid.RoleWall); err != nil {
			return nil, err
		}
	}
	return g, nil
}

var Presets = map[string]*Preset{
	// The hand-laid demo maze from the original board.
	"sample": {
		Name: "sample", Rows: 20, Cols: 25,
		Start:  grid.Coord{Row: 1, Col: 1},
		Target: grid.Coord{Row: 18, Col: 23},
		Walls: []grid.Coord{
			{Row: 5, Col: 8}, {Row: 6, Col: 8}, {Row: 7, Col: 8}, {Row: 8, Col: 8}, {Row: 9, Col: 8},
			{Row: 12, Col: 5}, {Row: 12, Col: 6}, {Row: 12, Col: 7}, {Row: 12, Col: 8}, {Row: 12, Col: 9}, {Row: 12, Col: 10},
			{Row: 15, Col: 15}, {Row: 15, Col: 16}, {Row: 15, Col: 17}, {Row: 16, Col: 17}, {Row: 17, Col: 17},
			{Row: 3, Col: 15}, {Row: 4, Col: 15}, {Row: 10, Col: 20}, {Row: 11, Col: 20},
		},
	},
	"corridor": corridorPreset(),
	"spiral":   spiralPreset(),
	"rooms":    roomsPreset(),
}

// corridorPreset is a vertical serpentine: full-height walls with the
// passage alternating between top and bottom.
func corridorPreset() *Preset {
	p := &Preset{
		Name: "corridor", Rows: 20, Cols: 25,
		Start:  grid.Coord{Row: 1, Col: 1},
		Target: grid.Coord{Row: 18, Col: 23},
	}
	for i, col := range []int{4, 9, 14, 19} {
		if i%2 == 0 {
			p.Walls = append(p.Walls, vline(col, 0, 17)...)
		} else {
			p.Walls = append(p.Walls, vline(col, 2, 19)...)
		}
	}
	return p
}

// spiralPreset winds two square rings around a central target. The ring
// openings sit on opposite sides, so the path has to circle each ring to
// reach the next gap.
func spiralPreset() *Preset {
	p := &Preset{
		Name: "spiral", Rows: 13, Cols: 13,
		Start:  grid.Coord{Row: 1, Col: 1},
		Target: grid.Coord{Row: 6, Col: 6},
	}
	// Outer ring, gap at the top.
	p.Walls = append(p.Walls, hline(2, 2, 10, 6)...)
	p.Walls = append(p.Walls, hline(10, 2, 10)...)
	p.Walls = append(p.Walls, vline(2, 3, 9)...)
	p.Walls = append(p.Walls, vline(10, 3, 9)...)
	// Inner ring, gap at the bottom.
	p.Walls = append(p.Walls, hline(4, 4, 8)...)
	p.Walls = append(p.Walls, hline(8, 4, 8, 6)...)
	p.Walls = append(p.Walls, vline(4, 5, 7)...)
	p.Walls = append(p.Walls, vline(8, 5, 7)...)
	return p
}

// roomsPreset splits the board into four rooms connected by doors.
func roomsPreset() *Preset {
	p := &Preset{
		Name: "rooms", Rows: 20, Cols: 25,
		Start:  grid.Coord{Row: 1, Col: 1},
		Target: grid.Coord{Row: 18, Col: 23},
	}
	p.Walls = append(p.Walls, hline(9, 0, 24, 5, 19)...)
	p.Walls = append(p.Walls, vline(12, 0, 19, 4, 15)...)
	return p
}

func vline(col, r0, r1 int, skipRows ...int) []grid.Coord {
	var out []grid.Coord
	for r := r0; r <= r1; r++ {
		if contains(skipRows, r) {
			continue
		}
		out = append(out, grid.Coord{Row: r, Col: col})
	}
	return out
}

func hline(row, c0, c1 int, skipCols ...int) []grid.Coord {
	var out []grid.Coord
	for c := c0; c <= c1; c++ {
		if contains(skipCols, c) {
			continue
		}
		out = append(out, grid.Coord{Row: row, Col: c})
	}
	return out
}

func contains(xs []int, x int) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}

// GetPreset returns the named preset, or nil when it does not exist.
func GetPreset(name string) *Preset {
	return Presets[name]
}

// ListPresets returns the available preset names, sorted.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
