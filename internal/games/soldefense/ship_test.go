package soldefense

import (
	"testing"

	"github.com/vovakirdan/sol-defense/internal/core"
)

func newTestShip() *Ship {
	cfg := testConfig()
	return NewShip(cfg.Player, cfg.Projectile, 1920, 1080)
}

// stepShip runs n 16 ms updates with the given controls.
func stepShip(s *Ship, w *fakeWorld, c Controls, n int) {
	s.SetControls(c)
	for i := 0; i < n; i++ {
		w.now += 16
		s.Update(w, 16)
	}
}

func TestShipSpawnAndRespawn(t *testing.T) {
	s := newTestShip()
	if s.X != 899 || s.Y != 902 {
		t.Fatalf("spawned at (%v, %v), expected (899, 902)", s.X, s.Y)
	}

	w := newFakeWorld()
	stepShip(s, w, Controls{Left: true, Up: true}, 10)
	s.State = ShipShielded
	s.Alive = false

	s.Respawn()
	if x, y := s.SpawnPosition(); s.X != x || s.Y != y {
		t.Errorf("Respawn() at (%v, %v), expected (%v, %v)", s.X, s.Y, x, y)
	}
	if !s.Alive || s.State != ShipNormal {
		t.Errorf("Respawn() Alive = %v State = %v", s.Alive, s.State)
	}
}

func TestShipMovement(t *testing.T) {
	tests := []struct {
		name   string
		c      Controls
		dx, dy float64
	}{
		{"left", Controls{Left: true}, -4, 0},
		{"right", Controls{Right: true}, 4, 0},
		{"left wins", Controls{Left: true, Right: true}, -4, 0},
		{"up wins", Controls{Up: true, Down: true}, 0, -4},
		{"diagonal", Controls{Right: true, Up: true}, 4, -4},
		{"idle", Controls{}, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestShip()
			x0, y0 := s.X, s.Y
			stepShip(s, newFakeWorld(), tt.c, 1)
			if s.X-x0 != tt.dx || s.Y-y0 != tt.dy {
				t.Errorf("moved (%v, %v), expected (%v, %v)", s.X-x0, s.Y-y0, tt.dx, tt.dy)
			}
		})
	}
}

func TestShipClamp(t *testing.T) {
	w := newFakeWorld()
	s := newTestShip()

	stepShip(s, w, Controls{Left: true, Up: true}, 1000)
	if s.X != 0 || s.Y != 700 {
		t.Errorf("top-left clamp = (%v, %v), expected (0, 700)", s.X, s.Y)
	}
	stepShip(s, w, Controls{Right: true, Down: true}, 1000)
	if s.X != 1920-122 || s.Y != 1080-98 {
		t.Errorf("bottom-right clamp = (%v, %v)", s.X, s.Y)
	}
}

func TestShipFireCooldown(t *testing.T) {
	w := newFakeWorld()
	s := newTestShip()

	stepShip(s, w, Controls{Fire: true}, 1)
	if len(w.projectiles) != 1 {
		t.Fatalf("first shot: %d projectiles, expected 1", len(w.projectiles))
	}
	p := w.projectiles[0]
	if p.Owner != OwnerPlayer || p.X != 899+61-10.5 || p.Y != 902-40 {
		t.Errorf("shot %+v spawned at (%v, %v)", p.Owner, p.X, p.Y)
	}

	// Held fire for about a second: one shot now, one after 500 ms.
	stepShip(s, w, Controls{Fire: true}, 60)
	if len(w.projectiles) != 2 {
		t.Errorf("%d projectiles after 976 ms held, expected 2", len(w.projectiles))
	}
	if w.played(core.CuePlayerShot) != len(w.projectiles) {
		t.Errorf("shot cue played %d times", w.played(core.CuePlayerShot))
	}
}

func TestShipShield(t *testing.T) {
	w := newFakeWorld()
	s := newTestShip()

	stepShip(s, w, Controls{Shield: true}, 1)
	if !s.Shielded() || s.CanMove() {
		t.Fatalf("Shielded() = %v CanMove() = %v", s.Shielded(), s.CanMove())
	}
	if w.played(core.CueShieldUp) != 1 {
		t.Error("raising the shield should play its cue")
	}

	// Input is ignored while shielded.
	x := s.X
	stepShip(s, w, Controls{Left: true, Fire: true, Shield: true}, 10)
	if s.X != x || len(w.projectiles) != 0 || w.played(core.CueShieldUp) != 1 {
		t.Error("shielded ship accepted input")
	}

	s.OnCollision()
	if !s.Alive {
		t.Error("shielded ship died")
	}

	stepShip(s, w, Controls{}, 100)
	if s.Shielded() {
		t.Error("shield did not expire")
	}
	s.OnCollision()
	if s.Alive {
		t.Error("unshielded ship survived a hit")
	}
}

func TestShipShieldDuration(t *testing.T) {
	w := newFakeWorld()
	s := newTestShip()
	stepShip(s, w, Controls{Shield: true}, 1)
	start := w.now

	s.SetControls(Controls{})
	for s.Shielded() {
		w.now += 16
		s.Update(w, 16)
	}
	if d := w.now - start; d <= 1500 || d > 1516 {
		t.Errorf("shield lasted %d ms, expected just over 1500", d)
	}
}

func TestShipShieldNullified(t *testing.T) {
	w := newFakeWorld()
	w.nullified = true
	s := newTestShip()

	stepShip(s, w, Controls{Shield: true}, 5)
	if s.Shielded() {
		t.Fatal("shield engaged while nullified")
	}
	if w.played(core.CueShieldNullified) != 1 || w.played(core.CueShieldUp) != 0 {
		t.Errorf("cues = %v, expected a single nullified cue", w.cues)
	}

	stepShip(s, w, Controls{}, 1)
	stepShip(s, w, Controls{Shield: true}, 1)
	if w.played(core.CueShieldNullified) != 2 {
		t.Errorf("nullified cue played %d times after a second press, expected 2", w.played(core.CueShieldNullified))
	}

	s.OnCollision()
	if s.Alive {
		t.Error("ship without a shield should die")
	}
}

func TestShipDeadIgnoresInput(t *testing.T) {
	w := newFakeWorld()
	s := newTestShip()
	s.Alive = false
	x := s.X

	stepShip(s, w, Controls{Left: true, Fire: true, Shield: true}, 5)
	if s.X != x || len(w.projectiles) != 0 || s.Shielded() {
		t.Error("dead ship reacted to input")
	}
}
