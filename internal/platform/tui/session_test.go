package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/sol-defense/internal/core"
	_ "github.com/vovakirdan/sol-defense/internal/games/soldefense"
)

func update(t *testing.T, m SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(SessionModel)
}

func TestMenuListsVariants(t *testing.T) {
	m := NewMenuModel(nil, testRuntime())
	if len(m.items) != 2 {
		t.Fatalf("menu has %d items, expected 2", len(m.items))
	}
	view := m.View()
	for _, want := range []string{"Sol Defense", "Sol Defense (Classic)"} {
		if !strings.Contains(view, want) {
			t.Errorf("menu view missing %q", want)
		}
	}
}

func TestSessionFlow(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}
	m := NewSessionModel(nil, cfg, "ada")

	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.scoreboard == nil {
		t.Fatal("tab should open the scoreboard")
	}
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.scoreboard != nil {
		t.Fatal("esc should return to the menu")
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.gameModel == nil {
		t.Fatal("enter should start a game")
	}
	m = update(t, m, TickMsg{})
	if !strings.Contains(m.View(), "fire") {
		t.Error("game view missing key help")
	}

	// Esc on the title screen leaves the game.
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m = update(t, m, TickMsg{})
	if m.gameModel != nil {
		t.Fatal("exiting the game should return to the menu")
	}
	if m.quitting {
		t.Error("leaving a game should not end the session")
	}

	m = update(t, m, runeKey('q'))
	if !m.quitting {
		t.Error("q in the menu should end the session")
	}
}
