package soldefense

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/sol-defense/internal/core"
	"github.com/vovakirdan/sol-defense/internal/registry"
)

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	g := New()
	cfg := core.DefaultConfig()
	cfg.Seed = seed
	g.Reset(cfg)
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// startMatch presses fire on the intro and steps into the match.
func startMatch(t *testing.T, g *Game) {
	t.Helper()
	g.Step(frame(core.ActionFire))
	g.Step(frame())
	if g.Scene() != SceneIngame {
		t.Fatalf("Scene() = %v, expected ingame", g.Scene())
	}
}

func TestGameRegistered(t *testing.T) {
	for _, v := range []Variant{VariantStandard, VariantClassic} {
		if !registry.Exists(v.ID) {
			t.Errorf("%s not registered", v.ID)
			continue
		}
		g, err := registry.Create(v.ID)
		if err != nil {
			t.Fatalf("Create(%q) error = %v", v.ID, err)
		}
		if g.ID() != v.ID || g.Title() != v.Title {
			t.Errorf("ID() = %q Title() = %q", g.ID(), g.Title())
		}
	}
}

func TestGameClassicRules(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	g := NewVariant(VariantClassic)
	g.Reset(core.DefaultConfig())

	cfg := g.Config()
	if cfg.Difficulty.SpeedCurve != "linear" || cfg.Boss.ScaleHover || cfg.Boss.ScalePoints {
		t.Errorf("classic config = %+v %+v", cfg.Difficulty, cfg.Boss)
	}
}

func TestGameOptions(t *testing.T) {
	t.Cleanup(func() {
		_ = SetConfigPath("")
		_ = SetDifficultyPreset("")
	})
	dir := t.TempDir()
	broken := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(broken, []byte("match: [\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	valid := filepath.Join(dir, "valid.yaml")
	if err := os.WriteFile(valid, []byte("match:\n  lives: 7\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		path    string
		preset  string
		wantErr bool
		lives   int
	}{
		{"defaults", "", "", false, 3},
		{"missing file", filepath.Join(dir, "typo.yaml"), "", true, 3},
		{"broken file", broken, "", true, 3},
		{"unknown preset", "", "brutal", true, 3},
		{"custom file", valid, "", false, 7},
		{"hard preset", "", "hard", false, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_ = SetConfigPath("")
			_ = SetDifficultyPreset("")

			err := SetConfigPath(tt.path)
			if err == nil {
				err = SetDifficultyPreset(tt.preset)
			}
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}

			g := newTestGame(t, 1)
			if lives := g.Config().Match.Lives; lives != tt.lives {
				t.Errorf("Match.Lives = %d, expected %d", lives, tt.lives)
			}
		})
	}
}

func TestGameStartsInIntro(t *testing.T) {
	g := newTestGame(t, 1)
	if g.Scene() != SceneIntro {
		t.Fatalf("Scene() = %v, expected intro", g.Scene())
	}

	// Scroll toggling does not start a match.
	g.Step(frame(core.ActionToggleScroll))
	g.Step(frame())
	if g.Scene() != SceneIntro {
		t.Errorf("toggle started a match")
	}
	if g.Scrolling() {
		t.Error("Scrolling() should be off after the toggle")
	}

	startMatch(t, g)
	if g.Match().Starfield().Scrolling() {
		t.Error("the match starfield should inherit the scroll setting")
	}
}

func TestGameFixedStepClock(t *testing.T) {
	g := newTestGame(t, 1)
	for i := 0; i < 60; i++ {
		g.Step(frame())
	}
	if g.Now() != 1000 {
		t.Errorf("Now() = %d after 60 steps, expected 1000", g.Now())
	}
}

func TestGamePause(t *testing.T) {
	g := newTestGame(t, 1)
	startMatch(t, g)

	g.Step(frame(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("pause not engaged")
	}
	now := g.Now()
	for i := 0; i < 10; i++ {
		g.Step(frame())
	}
	if g.Now() != now {
		t.Errorf("clock moved while paused")
	}

	g.Step(frame(core.ActionPause))
	g.Step(frame())
	if g.State().Paused || g.Now() == now {
		t.Error("resume did not restart the clock")
	}
}

func TestGameBackAndExit(t *testing.T) {
	g := newTestGame(t, 1)
	startMatch(t, g)

	g.Match().score = 140
	g.Step(frame(core.ActionBack))
	g.Step(frame())
	if g.Scene() != SceneIntro {
		t.Fatalf("Scene() = %v after back, expected intro", g.Scene())
	}
	st := g.State()
	if !st.GameOver || st.Score != 140 || st.Level != 1 {
		t.Errorf("State() = %+v, expected the abandoned match result", st)
	}

	g.Step(frame(core.ActionBack))
	if !g.State().Exit {
		t.Error("back on the intro should ask to exit")
	}
}

func TestGameOverReturnsToIntro(t *testing.T) {
	g := newTestGame(t, 1)
	startMatch(t, g)

	m := g.Match()
	m.lives = 1
	m.PlayerDestroyed()
	for i := 0; i < 400 && g.Scene() == SceneIngame; i++ {
		g.Step(frame())
	}
	if g.Scene() != SceneIntro {
		t.Fatal("game over did not return to the intro")
	}
	if !g.State().GameOver {
		t.Error("State().GameOver should be set")
	}

	startMatch(t, g)
	if g.State().GameOver {
		t.Error("a new match should clear GameOver")
	}
}

func TestGameQuit(t *testing.T) {
	g := newTestGame(t, 1)
	g.Step(frame(core.ActionQuit))
	if !g.State().Exit {
		t.Error("quit should ask to exit")
	}
}

func TestGameHeldInputIsEdgeTriggeredForScenes(t *testing.T) {
	g := newTestGame(t, 1)
	startMatch(t, g)

	// Holding back across frames leaves only once.
	g.Step(frame(core.ActionBack))
	g.Step(frame(core.ActionBack))
	g.Step(frame(core.ActionBack))
	if g.State().Exit {
		t.Error("held back should not also exit from the intro")
	}
}

func TestGameDebugHotkeys(t *testing.T) {
	g := newTestGame(t, 1)
	startMatch(t, g)

	g.Step(frame(core.ActionSpawnWalker))
	if g.Match().Boss().Active() {
		t.Fatal("hotkeys must be off by default")
	}

	SetDebugHotkeys(true)
	defer SetDebugHotkeys(false)
	g.Step(frame())
	g.Step(frame(core.ActionSpawnWalker))
	if b := g.Match().Boss(); !b.Active() || b.Type != BossWalker {
		t.Errorf("boss = %v %v, expected a walker", b.State, b.Type)
	}
}

// script is a repeatable input sequence for determinism checks.
func script(i int) core.InputFrame {
	switch {
	case i < 2:
		return frame(core.ActionFire)
	case i%300 == 150:
		return frame(core.ActionShield)
	case i%97 < 40:
		return frame(core.ActionLeft, core.ActionFire)
	case i%97 < 80:
		return frame(core.ActionRight)
	default:
		return frame(core.ActionFire)
	}
}

func run(t *testing.T, seed int64, steps int) uint64 {
	g := newTestGame(t, seed)
	for i := 0; i < steps; i++ {
		g.Step(script(i))
	}
	return g.Snapshot().Hash()
}

func TestGameDeterminism(t *testing.T) {
	a := run(t, 12345, 3000)
	b := run(t, 12345, 3000)
	if a != b {
		t.Errorf("same seed and input gave hashes %x and %x", a, b)
	}

	if c := run(t, 54321, 3000); c == a {
		t.Errorf("different seeds gave the same hash %x", c)
	}
}

func TestSnapshotOutsideMatch(t *testing.T) {
	g := newTestGame(t, 1)
	s := g.Snapshot()
	if s.Scene != SceneIntro || len(s.Enemies) != 0 {
		t.Errorf("intro snapshot = %+v", s)
	}
}
