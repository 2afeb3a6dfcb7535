package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/NumanAsghar901/AI-Path-Finder/internal/config"
	"github.com/NumanAsghar901/AI-Path-Finder/internal/grid"
	"github.com/NumanAsghar901/AI-Path-Finder/internal/run"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Rows, cfg.Cols = 6, 6
	g, err := cfg.BuildGrid()
	if err != nil {
		t.Fatalf("BuildGrid: %v", err)
	}
	return NewModel(run.NewController(g), cfg)
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestCellAt(t *testing.T) {
	m := newTestModel(t)

	c, ok := m.cellAt(0, gridTop)
	if !ok || c != (grid.Coord{Row: 0, Col: 0}) {
		t.Fatalf("origin mapped to %v, ok=%v", c, ok)
	}
	c, ok = m.cellAt(7, gridTop+2)
	if !ok || c != (grid.Coord{Row: 2, Col: 3}) {
		t.Fatalf("got %v, ok=%v", c, ok)
	}
	if _, ok := m.cellAt(0, 0); ok {
		t.Fatal("header row should not map to a cell")
	}
	if _, ok := m.cellAt(99, gridTop); ok {
		t.Fatal("column past the board should not map to a cell")
	}
}

func TestAlgorithmKeys(t *testing.T) {
	m := newTestModel(t)
	algos := m.ctrl.Algorithms()

	m = update(t, m, key("2"))
	if got := m.ctrl.Algorithm(); got != algos[1] {
		t.Fatalf("key 2 selected %q, want %q", got, algos[1])
	}
	m = update(t, m, key("9"))
	if got := m.ctrl.Algorithm(); got != algos[1] {
		t.Fatalf("out of range key changed algorithm to %q", got)
	}
}

func TestSpaceStartsThenPauses(t *testing.T) {
	m := newTestModel(t)

	m = update(t, m, key(" "))
	if m.ctrl.Phase() != run.PhaseRunning {
		t.Fatalf("phase after start = %v", m.ctrl.Phase())
	}
	m = update(t, m, key(" "))
	if m.ctrl.Phase() != run.PhasePaused {
		t.Fatalf("phase after pause = %v", m.ctrl.Phase())
	}
	m = update(t, m, key(" "))
	if m.ctrl.Phase() != run.PhaseRunning {
		t.Fatalf("phase after resume = %v", m.ctrl.Phase())
	}
}

func TestMouseTogglesWall(t *testing.T) {
	m := newTestModel(t)
	click := tea.MouseMsg{X: 6, Y: gridTop + 3, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}

	m = update(t, m, click)
	if got := m.ctrl.Grid().At(grid.Coord{Row: 3, Col: 3}); got != grid.RoleWall {
		t.Fatalf("cell after click = %v, want wall", got)
	}
	m = update(t, m, click)
	if got := m.ctrl.Grid().At(grid.Coord{Row: 3, Col: 3}); got != grid.RoleEmpty {
		t.Fatalf("cell after second click = %v, want empty", got)
	}
}

func TestMouseIgnoredWhileRunning(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, key(" "))

	click := tea.MouseMsg{X: 6, Y: gridTop + 3, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	m = update(t, m, click)
	if got := m.ctrl.Grid().At(grid.Coord{Row: 3, Col: 3}); got != grid.RoleEmpty {
		t.Fatalf("edit applied during run, cell = %v", got)
	}
}

func TestSpeedKeysClamp(t *testing.T) {
	m := newTestModel(t)
	for i := 0; i < 10; i++ {
		m = update(t, m, key("+"))
	}
	if m.speedIdx != len(speedSteps)-1 {
		t.Fatalf("speedIdx = %d after spamming +", m.speedIdx)
	}
	for i := 0; i < 10; i++ {
		m = update(t, m, key("-"))
	}
	if m.speedIdx != 0 {
		t.Fatalf("speedIdx = %d after spamming -", m.speedIdx)
	}
}

func TestThemeCycle(t *testing.T) {
	m := newTestModel(t)
	start := m.theme.Name
	for range Themes {
		m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	}
	if m.theme.Name != start {
		t.Fatalf("cycling through all themes ended on %q, want %q", m.theme.Name, start)
	}
}

func TestSparklineRecordsLiveFrontier(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, key(" "))

	for i := 0; i < 4; i++ {
		m = update(t, m, TickMsg(time.Time{}))
		if len(m.history) == 0 {
			t.Fatal("tick while running must record a frontier sample")
		}
		got := m.history[len(m.history)-1]
		want := float64(m.ctrl.FrontierSize())
		if got != want {
			t.Fatalf("tick %d recorded %v, want live frontier size %v", i+1, got, want)
		}
	}
}
