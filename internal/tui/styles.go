package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/NumanAsghar901/AI-Path-Finder/internal/grid"
)

// Theme maps each cell role to a terminal color.
type Theme struct {
	Name     string
	Empty    lipgloss.Color
	Wall     lipgloss.Color
	Start    lipgloss.Color
	Target   lipgloss.Color
	Frontier lipgloss.Color
	Visited  lipgloss.Color
	Path     lipgloss.Color
}

// Available themes. Classic reproduces the original board palette: green
// start, red target, blue frontier, light-blue visited, yellow path.
var Themes = []Theme{
	{
		Name:     "classic",
		Empty:    lipgloss.Color("#ffffff"),
		Wall:     lipgloss.Color("#000000"),
		Start:    lipgloss.Color("#00ff00"),
		Target:   lipgloss.Color("#ff0000"),
		Frontier: lipgloss.Color("#0064ff"),
		Visited:  lipgloss.Color("#add8e6"),
		Path:     lipgloss.Color("#ffff00"),
	},
	{
		Name:     "retro",
		Empty:    lipgloss.Color("#001100"),
		Wall:     lipgloss.Color("#005500"),
		Start:    lipgloss.Color("#88ff88"),
		Target:   lipgloss.Color("#ffff00"),
		Frontier: lipgloss.Color("#00cc00"),
		Visited:  lipgloss.Color("#003300"),
		Path:     lipgloss.Color("#00ff00"),
	},
	{
		Name:     "ocean",
		Empty:    lipgloss.Color("#001a33"),
		Wall:     lipgloss.Color("#4488aa"),
		Start:    lipgloss.Color("#00ff88"),
		Target:   lipgloss.Color("#ffd700"),
		Frontier: lipgloss.Color("#00a8cc"),
		Visited:  lipgloss.Color("#004466"),
		Path:     lipgloss.Color("#e0f0ff"),
	},
}

// ThemeByName returns the named theme, defaulting to the first one.
func ThemeByName(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return Themes[0]
}

// CellStyle renders one grid cell. Cells are two characters wide so the
// board is roughly square on a terminal.
func (t Theme) CellStyle(role grid.Role) lipgloss.Style {
	var c lipgloss.Color
	switch role {
	case grid.RoleWall:
		c = t.Wall
	case grid.RoleStart:
		c = t.Start
	case grid.RoleTarget:
		c = t.Target
	case grid.RoleFrontier:
		c = t.Frontier
	case grid.RoleVisited:
		c = t.Visited
	case grid.RolePath:
		c = t.Path
	default:
		c = t.Empty
	}
	return lipgloss.NewStyle().Background(c)
}

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(11)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	activeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	panelStyle  = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 2).
			Width(34)
)
