package soldefense

import (
	"testing"

	"github.com/vovakirdan/sol-defense/internal/core"
)

func newTestBoss() (*Boss, *[]BossState) {
	b := NewBoss(testConfig().Boss)
	var history []BossState
	b.OnStateChange = func(_, to BossState) { history = append(history, to) }
	return b, &history
}

// runBoss updates b in 256 ms steps until it leaves or n steps pass.
func runBoss(b *Boss, w *fakeWorld, n int) {
	for i := 0; i < n && b.Active(); i++ {
		w.now += 256
		b.Update(w, 256)
	}
}

func TestBossSpawn(t *testing.T) {
	w := newFakeWorld()
	b, _ := newTestBoss()
	b.Spawn(w, BossSaucer)

	if b.State != BossEntering || b.Type != BossSaucer || !b.Active() {
		t.Fatalf("after Spawn() state = %v type = %v", b.State, b.Type)
	}
	if b.X != 1920 || b.Y != 60 {
		t.Errorf("spawned at (%v, %v), expected (1920, 60)", b.X, b.Y)
	}
	if b.W != 128 || b.H != 95 || b.Points() != 500 {
		t.Errorf("saucer stats = %dx%d %d points", b.W, b.H, b.Points())
	}
	if w.played(core.CueBossSpawn) != 1 {
		t.Error("Spawn() should play the spawn cue")
	}

	b.Spawn(w, BossWalker)
	if b.Type != BossSaucer || w.played(core.CueBossSpawn) != 1 {
		t.Error("Spawn() while active should do nothing")
	}
}

func TestBossRandomSpawn(t *testing.T) {
	seen := map[BossType]bool{}
	w := newFakeWorld()
	for i := 0; i < 60; i++ {
		b := NewBoss(testConfig().Boss)
		b.Spawn(w, BossRandom)
		if b.Type < BossSaucer || b.Type > BossWalker {
			t.Fatalf("random spawn picked %v", b.Type)
		}
		seen[b.Type] = true
	}
	if len(seen) != 3 {
		t.Errorf("random spawn covered %d types in 60 draws", len(seen))
	}
}

func TestBossLifecycle(t *testing.T) {
	w := newFakeWorld()
	b, history := newTestBoss()
	b.Spawn(w, BossSaucer)

	for b.State == BossEntering {
		w.now += 256
		b.Update(w, 256)
	}
	if b.State != BossHover || b.X != float64(1920-128)/2 {
		t.Fatalf("state = %v at x = %v, expected hover at center", b.State, b.X)
	}

	hoverAt := w.now
	for b.State == BossHover {
		w.now += 256
		b.Update(w, 256)
	}
	if w.now-hoverAt <= 3000 {
		t.Errorf("hovered %d ms, expected more than 3000", w.now-hoverAt)
	}

	runBoss(b, w, 1000)
	if b.Active() || b.X >= -128 {
		t.Errorf("boss still active at x = %v", b.X)
	}
	if w.bossLeft != 1 {
		t.Errorf("OnBossLeave fired %d times, expected 1", w.bossLeft)
	}

	expected := []BossState{BossEntering, BossHover, BossLeaving, BossAbsent}
	if len(*history) != len(expected) {
		t.Fatalf("history = %v, expected %v", *history, expected)
	}
	for i := range expected {
		if (*history)[i] != expected[i] {
			t.Fatalf("history = %v, expected %v", *history, expected)
		}
	}
}

func TestBossDespawn(t *testing.T) {
	for _, from := range []BossState{BossEntering, BossHover, BossLeaving} {
		t.Run(from.String(), func(t *testing.T) {
			w := newFakeWorld()
			b, history := newTestBoss()
			b.Spawn(w, BossSpider)
			for b.State != from {
				w.now += 256
				b.Update(w, 256)
			}

			b.Despawn()
			b.Despawn()
			if b.Active() || b.Alive {
				t.Error("Despawn() should leave the slot empty")
			}
			h := *history
			if h[len(h)-1] != BossAbsent || h[len(h)-2] != from {
				t.Errorf("history = %v, expected a jump from %v to absent", h, from)
			}
			if w.bossLeft != 0 {
				t.Error("Despawn() is not a leave")
			}
		})
	}
}

func TestBossAbilities(t *testing.T) {
	tests := []struct {
		typ       BossType
		nullifies bool
		aims      bool
		cue       core.Cue
	}{
		{BossSaucer, false, false, -1},
		{BossSpider, true, false, core.CueBossNullify},
		{BossWalker, false, true, core.CueBossEnhance},
	}
	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			w := newFakeWorld()
			b, _ := newTestBoss()
			b.Spawn(w, tt.typ)

			for b.State == BossEntering {
				if b.NullifiesShield() || b.AimsEnemyFire() {
					t.Fatal("abilities must be off while entering")
				}
				w.now += 256
				b.Update(w, 256)
			}
			if b.NullifiesShield() != tt.nullifies || b.AimsEnemyFire() != tt.aims {
				t.Errorf("hover abilities = (%v, %v), expected (%v, %v)",
					b.NullifiesShield(), b.AimsEnemyFire(), tt.nullifies, tt.aims)
			}
			if tt.cue >= 0 && w.played(tt.cue) != 1 {
				t.Errorf("%v cue played %d times, expected 1", tt.cue, w.played(tt.cue))
			}

			for b.State == BossHover {
				w.now += 256
				b.Update(w, 256)
			}
			if b.NullifiesShield() || b.AimsEnemyFire() {
				t.Error("abilities must be off while leaving")
			}
		})
	}
}

func TestBossDifficultyScaling(t *testing.T) {
	w := newFakeWorld()
	w.difficulty = 2

	b := NewBoss(testConfig().Boss)
	b.Spawn(w, BossWalker)
	if b.speed != -80 || b.Points() != 2000 || b.hoverMs != 10000 {
		t.Errorf("scaled walker speed %v points %d hover %d", b.speed, b.Points(), b.hoverMs)
	}

	cfg := testConfig().Boss
	cfg.ScaleHover, cfg.ScalePoints = false, false
	b = NewBoss(cfg)
	b.Spawn(w, BossWalker)
	if b.speed != -80 || b.Points() != 1000 || b.hoverMs != 5000 {
		t.Errorf("classic walker speed %v points %d hover %d", b.speed, b.Points(), b.hoverMs)
	}
}
