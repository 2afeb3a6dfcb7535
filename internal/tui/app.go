package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/NumanAsghar901/AI-Path-Finder/internal/config"
	"github.com/NumanAsghar901/AI-Path-Finder/internal/grid"
	"github.com/NumanAsghar901/AI-Path-Finder/internal/run"
)

// Rows above the board in the left column: title, status, one blank line.
// Mouse events are mapped to cells relative to this offset.
const gridTop = 3

const frontierHistoryCap = 240

// Step delays selectable at runtime, slowest first.
var speedSteps = []int{config.SpeedSlow, config.SpeedNormal, config.SpeedFast, 25}

type TickMsg time.Time

type drawMode uint8

const (
	modeWall drawMode = iota
	modeStart
	modeTarget
)

func (d drawMode) String() string {
	switch d {
	case modeStart:
		return "start"
	case modeTarget:
		return "target"
	default:
		return "wall"
	}
}

// Model is the interactive board. All grid mutations go through the
// controller's command interface so the TUI never touches cells directly.
type Model struct {
	ctrl     *run.Controller
	theme    Theme
	themeIdx int
	mode     drawMode
	speedIdx int
	status   string
	statusOK bool
	history  []float64
	showHelp bool
	width    int
	height   int
}

func NewModel(ctrl *run.Controller, cfg *config.Config) Model {
	themeIdx := 0
	for i, t := range Themes {
		if t.Name == cfg.Theme {
			themeIdx = i
			break
		}
	}
	speedIdx := 1
	for i, ms := range speedSteps {
		if ms == cfg.StepDelayMS {
			speedIdx = i
			break
		}
	}
	return Model{
		ctrl:     ctrl,
		theme:    Themes[themeIdx],
		themeIdx: themeIdx,
		speedIdx: speedIdx,
		status:   "idle. space starts, ? for keys",
		statusOK: true,
		history:  make([]float64, 0, frontierHistoryCap),
	}
}

func (m Model) delay() time.Duration {
	return time.Duration(speedSteps[m.speedIdx]) * time.Millisecond
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(m.delay(), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case TickMsg:
		if m.ctrl.Phase() == run.PhaseRunning {
			if err := m.ctrl.Tick(); err == nil {
				m.recordFrontier()
				m.noteOutcome()
			}
		}
		return m, tea.Tick(m.delay(), func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

func (m *Model) recordFrontier() {
	m.history = append(m.history, float64(m.ctrl.FrontierSize()))
	if len(m.history) > frontierHistoryCap {
		m.history = m.history[1:]
	}
}

func (m *Model) noteOutcome() {
	switch m.ctrl.Phase() {
	case run.PhaseFound:
		m.setStatus(fmt.Sprintf("path found, %d cells", m.ctrl.Stats().PathLen), true)
	case run.PhaseUnreachable:
		m.setStatus("target unreachable", false)
	}
}

func (m *Model) setStatus(s string, ok bool) {
	m.status, m.statusOK = s, ok
}

func (m *Model) apply(cmd run.Command, okMsg string) {
	if err := m.ctrl.Apply(cmd); err != nil {
		m.setStatus(err.Error(), false)
		return
	}
	if okMsg != "" {
		m.setStatus(okMsg, true)
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case " ":
		switch m.ctrl.Phase() {
		case run.PhaseRunning:
			m.apply(run.Pause(), "paused")
		case run.PhasePaused:
			m.apply(run.Pause(), "running")
		default:
			m.history = m.history[:0]
			m.apply(run.StartRun(), "running "+m.ctrl.Algorithm())
		}
	case "r":
		m.history = m.history[:0]
		m.apply(run.Reset(), "search cleared")
	case "c":
		m.history = m.history[:0]
		m.apply(run.Clear(), "board cleared")
	case "w":
		m.mode = modeWall
		m.setStatus("drawing walls", true)
	case "s":
		m.mode = modeStart
		m.setStatus("placing start", true)
	case "t":
		m.mode = modeTarget
		m.setStatus("placing target", true)
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		algos := m.ctrl.Algorithms()
		i := int(msg.String()[0] - '1')
		if i < len(algos) {
			m.apply(run.SelectAlgorithm(algos[i]), "algorithm: "+algos[i])
		}
	case "+", "=":
		if m.speedIdx < len(speedSteps)-1 {
			m.speedIdx++
		}
		m.setStatus(fmt.Sprintf("step delay %dms", speedSteps[m.speedIdx]), true)
	case "-", "_":
		if m.speedIdx > 0 {
			m.speedIdx--
		}
		m.setStatus(fmt.Sprintf("step delay %dms", speedSteps[m.speedIdx]), true)
	case "tab":
		m.themeIdx = (m.themeIdx + 1) % len(Themes)
		m.theme = Themes[m.themeIdx]
		m.setStatus("theme: "+m.theme.Name, true)
	case "?":
		m.showHelp = !m.showHelp
	}
	return m, nil
}

// cellAt translates a terminal coordinate into a board cell. Cells are two
// columns wide and the board starts gridTop rows below the top.
func (m Model) cellAt(x, y int) (grid.Coord, bool) {
	c := grid.Coord{Row: y - gridTop, Col: x / 2}
	if !m.ctrl.Grid().InBounds(c) {
		return grid.Coord{}, false
	}
	return c, true
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	if msg.Button != tea.MouseButtonLeft {
		return
	}
	cell, ok := m.cellAt(msg.X, msg.Y)
	if !ok {
		return
	}
	switch msg.Action {
	case tea.MouseActionPress:
		switch m.mode {
		case modeStart:
			m.apply(run.SetStart(cell), "start moved")
		case modeTarget:
			m.apply(run.SetTarget(cell), "target moved")
		default:
			m.apply(run.ToggleWall(cell), "")
		}
	case tea.MouseActionMotion:
		// Dragging paints walls instead of toggling so a sweep never
		// erases its own trail.
		if m.mode == modeWall {
			m.apply(run.PlaceWall(cell), "")
		}
	}
}

// View renders the board on the left and a stats panel on the right.
func (m Model) View() string {
	var left strings.Builder
	left.WriteString(titleStyle.Render("PATHFINDER") + "  " + dimStyle.Render(m.theme.Name) + "\n")
	style := okStyle
	if !m.statusOK {
		style = errStyle
	}
	left.WriteString(style.Render(m.status) + "\n\n")
	left.WriteString(m.renderGrid())
	left.WriteString("\n" + m.renderLegend() + "\n")

	mainView := lipgloss.JoinHorizontal(lipgloss.Top, left.String(), panelStyle.Render(m.renderPanel()))
	if m.showHelp {
		return helpOverlay + "\n\n" + mainView
	}
	return mainView
}

func (m Model) renderGrid() string {
	var s strings.Builder
	m.ctrl.Grid().Each(func(c grid.Coord, role grid.Role) {
		if c.Col == 0 && c.Row > 0 {
			s.WriteByte('\n')
		}
		s.WriteString(m.theme.CellStyle(role).Render("  "))
	})
	s.WriteByte('\n')
	return s.String()
}

func (m Model) renderLegend() string {
	entries := []struct {
		role grid.Role
		name string
	}{
		{grid.RoleStart, "start"},
		{grid.RoleTarget, "target"},
		{grid.RoleFrontier, "frontier"},
		{grid.RoleVisited, "visited"},
		{grid.RolePath, "path"},
	}
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, m.theme.CellStyle(e.role).Render("  ")+dimStyle.Render(" "+e.name))
	}
	return strings.Join(parts, "  ")
}

func (m Model) renderPanel() string {
	var s strings.Builder
	s.WriteString(titleStyle.Render("ALGORITHMS") + "\n")
	current := m.ctrl.Algorithm()
	for i, name := range m.ctrl.Algorithms() {
		line := fmt.Sprintf("%d %s", i+1, name)
		if name == current {
			s.WriteString(activeStyle.Render("> "+line) + "\n")
		} else {
			s.WriteString(dimStyle.Render("  "+line) + "\n")
		}
	}

	st := m.ctrl.Stats()
	s.WriteString("\n" + titleStyle.Render("RUN") + "\n")
	s.WriteString(labelStyle.Render("Phase") + valueStyle.Render(m.ctrl.Phase().String()) + "\n")
	s.WriteString(labelStyle.Render("Steps") + valueStyle.Render(fmt.Sprintf("%d", st.Steps)) + "\n")
	s.WriteString(labelStyle.Render("Expanded") + valueStyle.Render(fmt.Sprintf("%d", st.Expanded)) + "\n")
	s.WriteString(labelStyle.Render("Discovered") + valueStyle.Render(fmt.Sprintf("%d", st.Discovered)) + "\n")
	s.WriteString(labelStyle.Render("Frontier") + valueStyle.Render(fmt.Sprintf("%d", st.MaxFrontier)) + "\n")
	if st.PathLen > 0 {
		s.WriteString(labelStyle.Render("Path") + okStyle.Render(fmt.Sprintf("%d cells", st.PathLen)) + "\n")
	}

	if len(m.history) > 1 {
		chart := asciigraph.Plot(m.history, asciigraph.Height(4), asciigraph.Width(24), asciigraph.Caption("frontier"))
		s.WriteString("\n" + dimStyle.Render(chart) + "\n")
	}

	s.WriteString("\n" + labelStyle.Render("Mode") + valueStyle.Render(m.mode.String()) + "\n")
	s.WriteString(labelStyle.Render("Delay") + valueStyle.Render(fmt.Sprintf("%dms", speedSteps[m.speedIdx])) + "\n")
	s.WriteString(dimStyle.Render("\nSP:run/pause R:reset C:clear\n1-8:algo W/S/T:draw +/-:speed\nTAB:theme ?:help Q:quit"))
	return s.String()
}

const helpOverlay = `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Start / pause the run    ║
║  R        - Reset search overlay     ║
║  C        - Clear the whole board    ║
║  1..8     - Select algorithm         ║
║  W        - Draw walls (click/drag)  ║
║  S        - Place start (click)      ║
║  T        - Place target (click)     ║
║  + / -    - Faster / slower steps    ║
║  Tab      - Cycle themes             ║
║  ?        - Toggle this help         ║
║  Q        - Quit                     ║
╚══════════════════════════════════════╝
`

// Run launches the interactive board and blocks until the user quits.
func Run(ctrl *run.Controller, cfg *config.Config) error {
	p := tea.NewProgram(NewModel(ctrl, cfg), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
