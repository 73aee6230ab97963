package soldefense

import (
	"github.com/vovakirdan/sol-defense/internal/config"
)

// Movement is the formation's current motion.
type Movement int

const (
	MoveHorizontal Movement = iota
	MoveVertical
	MoveReturnHome
)

func (m Movement) String() string {
	switch m {
	case MoveHorizontal:
		return "horizontal"
	case MoveVertical:
		return "vertical"
	default:
		return "return-home"
	}
}

// Formation owns the enemy wave and moves it as one body.
type Formation struct {
	cfg        config.SolDefenseFormation
	shots      config.SolDefenseProjectile
	difficulty *config.DifficultyManager

	enemies *Arena[Enemy]
	total   int
	live    int

	dirX, dirY int
	prevDirX   int
	descent    float64 // distance still to cover in the vertical phase, <= 0
	returning  bool
	home       bool

	front []Handle // nearest enemy to the player, per column
	speed float64
}

// NewFormation returns an empty formation.
func NewFormation(cfg config.SolDefenseFormation, shots config.SolDefenseProjectile, dm *config.DifficultyManager) *Formation {
	return &Formation{
		cfg:        cfg,
		shots:      shots,
		difficulty: dm,
		enemies:    NewArena[Enemy](cfg.Rows * cfg.Columns),
		speed:      1,
	}
}

// Spawn replaces the current wave with a full grid, row by row.
func (f *Formation) Spawn(w World) {
	f.enemies.Clear()
	now := w.Now()
	for row := 0; row < f.cfg.Rows; row++ {
		for col := 0; col < f.cfg.Columns; col++ {
			f.enemies.Insert(newEnemy(f.cfg, GridSpot{Row: row, Column: col}, now, w.Rand()))
		}
	}
	f.total = f.enemies.Len()
	f.live = f.total

	f.dirX, f.dirY, f.prevDirX = 1, 0, 1
	f.descent = 0
	f.returning = false
	f.home = false

	f.front = make([]Handle, f.cfg.Columns)
	for i := range f.front {
		f.front[i] = NilHandle
	}
	f.recomputeSpeed(w)
}

// Destroy removes every enemy without reporting deaths.
func (f *Formation) Destroy() {
	f.enemies.Clear()
	f.live = 0
	for i := range f.front {
		f.front[i] = NilHandle
	}
}

// Update moves every enemy, resolves ship contact and steers the group.
func (f *Formation) Update(w World, ship *Ship, elapsed uint32) {
	phase := w.Phase()
	if phase == PhasePlaying {
		f.returning = false
		f.home = false
		f.updateFrontLine(ship)
	} else if phase == PhaseDeathCooldown && !f.home {
		f.returning = true
	}

	for h := f.enemies.First(); h != NilHandle; {
		e := f.enemies.Get(h)
		e.canAttack = f.front[e.Spot.Column] == h
		e.update(w, f, elapsed)

		if ship.Alive && ship.CollidesWith(&e.Entity) {
			if ship.Shielded() {
				cx, cy := e.Center()
				h = f.Kill(h, w)
				w.EnemyDestroyed(cx, cy)
				continue
			}
			w.PlayerDestroyed()
		}
		h = f.enemies.Next(h)
	}

	if phase == PhaseDeathCooldown {
		f.checkHome(w)
		return
	}
	if f.live > 0 {
		f.steer(w, elapsed)
	}
}

func (f *Formation) updateFrontLine(ship *Ship) {
	for i := range f.front {
		f.front[i] = NilHandle
	}
	best := make([]float64, len(f.front))

	_, shipY := ship.Center()
	for h, e := range f.enemies.All() {
		_, ey := e.Center()
		dist := shipY - ey
		col := e.Spot.Column
		if f.front[col] == NilHandle || dist < best[col] {
			f.front[col] = h
			best[col] = dist
		}
	}
}

func (f *Formation) checkHome(w World) {
	if f.home {
		return
	}
	for _, e := range f.enemies.All() {
		if !e.AtHome() {
			return
		}
	}
	f.home = true
	f.returning = false
	if f.dirY != 0 {
		f.dirX, f.dirY = -f.prevDirX, 0
		f.descent = 0
	}
	w.OnFormationHome()
}

// steer turns the formation at the screen edges.
func (f *Formation) steer(w World, elapsed uint32) {
	width, _ := w.Bounds()

	if f.dirX != 0 {
		left, right, bottom := f.edges()
		margin := float64(f.cfg.EdgeMargin)
		atLeft := f.dirX < 0 && left.X <= margin
		atRight := f.dirX > 0 && right.X+float64(right.W) >= float64(width)-margin
		if !atLeft && !atRight {
			return
		}

		f.prevDirX = f.dirX
		if bottom.Y >= float64(f.cfg.LimitY) {
			f.dirX = -f.dirX
			return
		}
		f.dirX, f.dirY = 0, 1
		f.descent = -f.cfg.Descent
		return
	}

	if f.dirY != 0 {
		f.descent += scaleSpeed(elapsed, f.cfg.SpeedY) * float64(f.dirY)
		if f.descent > 0 {
			f.dirX, f.dirY = -f.prevDirX, 0
		}
	}
}

// edges returns the enemies in the leftmost and rightmost columns and in the
// bottom row, by grid position.
func (f *Formation) edges() (left, right, bottom *Enemy) {
	for _, e := range f.enemies.All() {
		if left == nil || e.Spot.Column < left.Spot.Column {
			left = e
		}
		if right == nil || e.Spot.Column > right.Spot.Column {
			right = e
		}
		if bottom == nil || e.Spot.Row > bottom.Spot.Row {
			bottom = e
		}
	}
	return left, right, bottom
}

// Kill removes the enemy at h, books its death and returns the next enemy
// in iteration order. Killing a handle that is not live does nothing.
func (f *Formation) Kill(h Handle, w World) Handle {
	e := f.enemies.Get(h)
	if e == nil {
		return NilHandle
	}
	if col := e.Spot.Column; col < len(f.front) && f.front[col] == h {
		f.front[col] = NilHandle
	}
	next := f.enemies.Remove(h)
	f.onEnemyDeath(w)
	return next
}

func (f *Formation) onEnemyDeath(w World) {
	if f.live == 0 {
		return
	}
	f.live--
	if f.live == 0 {
		w.OnAllEnemiesDead()
	}
	f.recomputeSpeed(w)
}

func (f *Formation) recomputeSpeed(w World) {
	f.speed = f.difficulty.FormationSpeed(f.live, f.total) * w.Difficulty()
}

// Live returns the number of enemies still alive.
func (f *Formation) Live() int { return f.live }

// Total returns the size of the current wave.
func (f *Formation) Total() int { return f.total }

// SpeedMultiplier returns the current horizontal speed factor.
func (f *Formation) SpeedMultiplier() float64 { return f.speed }

// Direction returns the horizontal and vertical direction components.
func (f *Formation) Direction() (int, int) { return f.dirX, f.dirY }

// Movement reports the current motion.
func (f *Formation) Movement() Movement {
	switch {
	case f.returning:
		return MoveReturnHome
	case f.dirY != 0:
		return MoveVertical
	default:
		return MoveHorizontal
	}
}

// FrontLine returns the enemy allowed to fire in column col.
func (f *Formation) FrontLine(col int) (Handle, bool) {
	if col < 0 || col >= len(f.front) || f.front[col] == NilHandle {
		return NilHandle, false
	}
	return f.front[col], true
}

// Enemies exposes the wave for iteration and lookups.
func (f *Formation) Enemies() *Arena[Enemy] { return f.enemies }

// Draw renders every enemy.
func (f *Formation) Draw(c Canvas) {
	for _, e := range f.enemies.All() {
		e.Draw(c)
	}
}
