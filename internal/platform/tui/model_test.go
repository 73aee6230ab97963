package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/sol-defense/internal/core"
	"github.com/vovakirdan/sol-defense/internal/settings"
	"github.com/vovakirdan/sol-defense/internal/storage"
)

// scriptedGame finishes a match with a fixed score after a number of steps
// and records the input it saw.
type scriptedGame struct {
	steps      int
	finishAt   int
	score      int
	scrolling  bool
	exitOnBack bool
	state      core.GameState
	inputs     []core.InputFrame
}

func (g *scriptedGame) ID() string    { return "scripted" }
func (g *scriptedGame) Title() string { return "Scripted" }

func (g *scriptedGame) Reset(core.RuntimeConfig) {
	g.steps = 0
	g.state = core.GameState{}
}

func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	g.steps++
	g.inputs = append(g.inputs, in.Clone())
	if g.steps == g.finishAt {
		g.state.Score = g.score
		g.state.Level = 3
		g.state.GameOver = true
	}
	if in.Has(core.ActionToggleScroll) {
		g.scrolling = !g.scrolling
	}
	if g.exitOnBack && in.Has(core.ActionBack) {
		g.state.Exit = true
	}
	return core.StepResult{State: g.state}
}

func (g *scriptedGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawTextColored(0, 0, "SCORE", core.ColorYellow)
}

func (g *scriptedGame) State() core.GameState { return g.state }
func (g *scriptedGame) SetScrolling(on bool)  { g.scrolling = on }
func (g *scriptedGame) Scrolling() bool       { return g.scrolling }

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 60, Seed: 1}
}

func tickN(t *testing.T, m Model, n int) Model {
	t.Helper()
	for i := 0; i < n; i++ {
		next, _ := m.Update(TickMsg{})
		m = next.(Model)
	}
	return m
}

func press(t *testing.T, m Model, msg tea.KeyMsg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestModelSavesScoreOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	g := &scriptedGame{finishAt: 5, score: 1500}
	m := NewModel(g, store, nil, testRuntime(), "ada")
	m.Init()
	m = tickN(t, m, 20)

	scores, err := store.TopScores("scripted", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("saved %d scores, expected 1", len(scores))
	}
	if scores[0].Player != "ada" || scores[0].Score != 1500 || scores[0].Level != 3 {
		t.Errorf("saved %+v", scores[0])
	}
	if !m.State().GameOver {
		t.Error("State().GameOver = false after finish")
	}
}

func TestModelHeldInput(t *testing.T) {
	g := &scriptedGame{}
	m := NewModel(g, nil, nil, testRuntime(), "")
	m.Init()

	m = press(t, m, runeKey(' '))
	m = tickN(t, m, DefaultHoldTicks+2)

	held := 0
	for _, in := range g.inputs {
		if in.Has(core.ActionFire) {
			held++
		}
	}
	if held != DefaultHoldTicks {
		t.Errorf("fire held for %d ticks, expected %d", held, DefaultHoldTicks)
	}
}

func TestModelExitAndQuit(t *testing.T) {
	g := &scriptedGame{exitOnBack: true}
	m := NewModel(g, nil, nil, testRuntime(), "")
	m.Init()

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	next, cmd := m.Update(TickMsg{})
	m = next.(Model)
	if !m.Done() || cmd == nil {
		t.Error("game exit should end the model")
	}
	if m.View() != "" {
		t.Error("View() should be empty after exit")
	}

	m2 := NewModel(&scriptedGame{}, nil, nil, testRuntime(), "")
	m2 = press(t, m2, tea.KeyMsg{Type: tea.KeyCtrlC})
	if !m2.IsQuitting() {
		t.Error("ctrl+c should quit")
	}
}

func TestModelPersistsScrolling(t *testing.T) {
	prefs := settings.NewManager(nil)
	g := &scriptedGame{scrolling: true}
	m := NewModel(g, nil, prefs, testRuntime(), "")
	m.Init()

	m = press(t, m, tea.KeyMsg{Type: tea.KeyF9})
	tickN(t, m, 2)

	if prefs.Get().Scrolling {
		t.Error("scroll toggle not recorded in preferences")
	}
}

func TestModelViewAndResize(t *testing.T) {
	m := NewModel(&scriptedGame{}, nil, nil, testRuntime(), "")
	m.Init()

	next, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	m = next.(Model)
	if m.screen.Width() != 60 || m.screen.Height() != 19 {
		t.Errorf("screen = %dx%d, expected 60x19", m.screen.Width(), m.screen.Height())
	}

	view := m.View()
	if !strings.Contains(view, "SCORE") {
		t.Error("View() missing game output")
	}
	if !strings.Contains(view, "fire") {
		t.Error("View() missing key help")
	}
}
