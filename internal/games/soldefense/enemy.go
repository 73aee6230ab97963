package soldefense

import (
	"github.com/vovakirdan/sol-defense/internal/config"
	"github.com/vovakirdan/sol-defense/internal/core"
)

var enemyClips = []Clip{
	{X: 0, Y: 0, Frames: 15, FrameMs: 100, Mode: PlayLoop},
	{X: 0, Y: 70, Frames: 6, FrameMs: 100, Mode: PlayBoomerang},
}

const (
	clipEnemyIdle       = 0
	clipEnemyPropulsion = 1
)

// GridSpot is an enemy's fixed cell in the formation.
type GridSpot struct {
	Row, Column int
}

// Enemy is one member of the formation.
type Enemy struct {
	Entity
	Spot  GridSpot
	HomeX float64
	HomeY float64

	canAttack  bool
	cooldown   uint32
	lastAttack uint32
	anim       Animator
}

func newEnemy(cfg config.SolDefenseFormation, spot GridSpot, now uint32, rng *core.RNG) Enemy {
	x := float64(cfg.OriginX + cfg.EnemySize*spot.Column)
	y := float64(cfg.OriginY + cfg.EnemySize*spot.Row)
	e := Enemy{
		Entity:     Entity{X: x, Y: y, W: cfg.EnemySize, H: cfg.EnemySize, Alive: true, Kind: KindEnemy},
		Spot:       spot,
		HomeX:      x,
		HomeY:      y,
		lastAttack: now,
		anim:       NewAnimator(enemyClips, cfg.EnemySize, cfg.EnemySize),
	}
	e.rollCooldown(cfg, rng)
	e.anim.Request(clipEnemyIdle)
	return e
}

// CanAttack reports whether the formation picked this enemy to fire.
func (e *Enemy) CanAttack() bool { return e.canAttack }

// AtHome reports whether the enemy is back at its spawn height.
func (e *Enemy) AtHome() bool { return e.Y <= e.HomeY }

func (e *Enemy) rollCooldown(cfg config.SolDefenseFormation, rng *core.RNG) {
	e.cooldown = uint32(rng.Range(cfg.FireCooldownMinMs, cfg.FireCooldownMaxMs)) //#nosec G115 -- config bounds are small and positive
}

func (e *Enemy) update(w World, f *Formation, elapsed uint32) {
	now := w.Now()

	switch w.Phase() {
	case PhasePlaying:
		e.anim.Request(clipEnemyIdle)
		e.X += scaleSpeed(elapsed, f.cfg.SpeedX*f.speed) * float64(f.dirX)
		e.Y += scaleSpeed(elapsed, f.cfg.SpeedY) * float64(f.dirY)

		if e.canAttack && now-e.lastAttack > e.cooldown {
			e.fire(w, f)
			e.rollCooldown(f.cfg, w.Rand())
			e.lastAttack = now
		}
	default:
		e.anim.Request(clipEnemyPropulsion)
		e.Y -= scaleSpeed(elapsed, f.cfg.ReturnSpeed)
		if e.Y < e.HomeY {
			e.Y = e.HomeY
		}
		// No stored-up shot once play resumes.
		e.lastAttack = now
	}

	e.anim.Update(now)
}

func (e *Enemy) fire(w World, f *Formation) {
	kind := ProjectileRegular
	if w.EnemiesAimAtPlayer() {
		kind = ProjectileDiagonal
	}
	x := e.X + float64(e.W)/2 - float64(f.shots.EnemyWidth)/2
	y := e.Y + float64(f.shots.EnemyHeight)
	px, py := w.PlayerPosition()
	w.SpawnProjectile(newEnemyProjectile(f.shots, kind, x, y, px, py))
	w.Play(core.CueEnemyShot, 1)
}

// Draw renders the enemy. Rows share a color band in glyph frontends.
func (e *Enemy) Draw(c Canvas) {
	drawAnimated(c, SheetEnemies, TagEnemy, e.Spot.Row, &e.anim, &e.Entity, 0)
}
