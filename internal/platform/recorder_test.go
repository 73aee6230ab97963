package platform

import (
	"path/filepath"
	"testing"

	"github.com/vovakirdan/sol-defense/internal/core"
	"github.com/vovakirdan/sol-defense/internal/settings"
	"github.com/vovakirdan/sol-defense/internal/storage"
)

type stubGame struct {
	scrolling bool
}

func (g *stubGame) ID() string                           { return "stub" }
func (g *stubGame) Title() string                        { return "Stub" }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }
func (g *stubGame) SetScrolling(on bool)                 { g.scrolling = on }
func (g *stubGame) Scrolling() bool                      { return g.scrolling }

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestRecorderSavesOncePerMatch(t *testing.T) {
	store := openStore(t)
	r := NewRecorder(&stubGame{}, store, nil, "ada")

	states := []core.GameState{
		{Score: 100, Level: 1},
		{Score: 900, Level: 2, GameOver: true},
		{Score: 900, Level: 2, GameOver: true},
		{Score: 0, Level: 1},
		{Score: 400, Level: 1, GameOver: true},
	}
	for _, st := range states {
		r.Observe(st)
	}

	scores, err := store.AllScores("stub")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 2 {
		t.Fatalf("saved %d scores, expected 2", len(scores))
	}
	if scores[0].Score != 900 || scores[0].Level != 2 || scores[0].Player != "ada" {
		t.Errorf("best entry = %+v", scores[0])
	}
	if !r.Saved() {
		t.Error("Saved() = false after a finished match")
	}
}

func TestRecorderSkipsZeroScores(t *testing.T) {
	store := openStore(t)
	r := NewRecorder(&stubGame{}, store, nil, "")
	r.Observe(core.GameState{GameOver: true})

	if high, _ := store.HighScore("stub"); high != 0 {
		t.Errorf("HighScore() = %d, expected nothing saved", high)
	}
	if !r.Saved() {
		t.Error("a zero score still counts as handled")
	}
}

func TestRecorderPersistsScrolling(t *testing.T) {
	prefs := settings.NewManager(nil)
	g := &stubGame{scrolling: true}
	r := NewRecorder(g, nil, prefs, "")

	g.scrolling = false
	r.Observe(core.GameState{})
	if prefs.Get().Scrolling {
		t.Error("scroll toggle not persisted")
	}
}

func TestRecorderWithoutStorage(t *testing.T) {
	r := NewRecorder(&stubGame{}, nil, nil, "")
	r.Observe(core.GameState{Score: 50, GameOver: true})
	if !r.Saved() {
		t.Error("Saved() = false without storage")
	}
}
