package soldefense

import (
	"math"

	"github.com/vovakirdan/sol-defense/internal/config"
)

// Owner says who fired a projectile.
type Owner int

const (
	OwnerPlayer Owner = iota
	OwnerEnemy
)

// ProjectileKind selects the flight path.
type ProjectileKind int

const (
	ProjectileRegular  ProjectileKind = iota // straight along its axis
	ProjectileDiagonal                       // aimed at the player once, at spawn
)

var projectileClips = []Clip{
	{X: 0, Y: 0, Frames: 4, FrameMs: 50, Mode: PlayLoop},
	{X: 0, Y: 185, Frames: 16, FrameMs: 50, Mode: PlayLoop},
}

const (
	clipPlayerShot = 0
	clipEnemyShot  = 1
)

// Projectile is a shot in flight.
type Projectile struct {
	Entity
	Owner  Owner
	Kind   ProjectileKind
	VX, VY float64
	Angle  float64
	anim   Animator
}

func newPlayerProjectile(cfg config.SolDefenseProjectile, x, y float64) Projectile {
	p := Projectile{
		Entity: Entity{X: x, Y: y, W: cfg.PlayerWidth, H: cfg.PlayerHeight, Alive: true, Kind: KindProjectile},
		Owner:  OwnerPlayer,
		Kind:   ProjectileRegular,
		VY:     cfg.PlayerSpeed,
		anim:   NewAnimator(projectileClips, cfg.PlayerWidth, cfg.PlayerHeight),
	}
	p.anim.Request(clipPlayerShot)
	return p
}

// newEnemyProjectile creates an enemy shot at (x, y). A diagonal shot fixes
// its heading toward (targetX, targetY) here and never changes it.
func newEnemyProjectile(cfg config.SolDefenseProjectile, kind ProjectileKind, x, y, targetX, targetY float64) Projectile {
	p := Projectile{
		Entity: Entity{X: x, Y: y, W: cfg.EnemyWidth, H: cfg.EnemyHeight, Alive: true, Kind: KindProjectile},
		Owner:  OwnerEnemy,
		Kind:   kind,
		VY:     cfg.EnemySpeed,
		anim:   NewAnimator(projectileClips, cfg.EnemyWidth, cfg.EnemyHeight),
	}
	if kind == ProjectileDiagonal {
		angle := math.Atan2(targetY-y, targetX-x)
		p.VX = math.Cos(angle) * cfg.EnemySpeed
		p.VY = math.Sin(angle) * cfg.EnemySpeed
		p.Angle = -angle * 180 / math.Pi
	}
	p.anim.Request(clipEnemyShot)
	return p
}

// Update moves the shot and retires it once it leaves the playfield.
func (p *Projectile) Update(now, elapsed uint32, width, height int) {
	p.anim.Update(now)
	p.X += scaleSpeed(elapsed, p.VX)
	p.Y += scaleSpeed(elapsed, p.VY)

	if p.Y < 0 || p.Y > float64(height) || p.X < 0 || p.X > float64(width) {
		p.Alive = false
	}
}

// OnCollision consumes the shot; projectiles never pierce.
func (p *Projectile) OnCollision() {
	p.Alive = false
}

// Draw renders the shot.
func (p *Projectile) Draw(c Canvas) {
	tag := TagPlayerShot
	if p.Owner == OwnerEnemy {
		tag = TagEnemyShot
	}
	drawAnimated(c, SheetGame, tag, int(p.Kind), &p.anim, &p.Entity, p.Angle)
}
