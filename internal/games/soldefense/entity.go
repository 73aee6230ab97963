package soldefense

import "github.com/vovakirdan/sol-defense/internal/core"

// Kind tags the role of an actor.
type Kind int

const (
	KindPlayerShip Kind = iota
	KindEnemy
	KindProjectile
	KindBoss
	KindExplosion
)

func (k Kind) String() string {
	switch k {
	case KindPlayerShip:
		return "ship"
	case KindEnemy:
		return "enemy"
	case KindProjectile:
		return "projectile"
	case KindBoss:
		return "boss"
	case KindExplosion:
		return "explosion"
	default:
		return "unknown"
	}
}

// speedScale is the time base of every speed value: pixels per 256 ms.
const speedScale = 256.0

// scaleSpeed converts a speed into the distance covered in elapsed ms.
func scaleSpeed(elapsed uint32, speed float64) float64 {
	return float64(elapsed) / speedScale * speed
}

// Entity is the positional core shared by every actor.
type Entity struct {
	X, Y          float64
	W, H          int
	ColliderScale float64
	Alive         bool
	Kind          Kind
}

// Bounds returns the sprite rectangle.
func (e *Entity) Bounds() core.Rect {
	return core.NewRect(int(e.X), int(e.Y), e.W, e.H)
}

// Collider returns the collision rectangle: the bounds scaled around their
// center by ColliderScale (unset means 1).
func (e *Entity) Collider() core.Rect {
	scale := e.ColliderScale
	if scale == 0 {
		scale = 1
	}
	return e.Bounds().Scaled(scale)
}

// Center returns the midpoint of the sprite.
func (e *Entity) Center() (float64, float64) {
	return e.X + float64(e.W)/2, e.Y + float64(e.H)/2
}

// CollidesWith reports whether the colliders of e and o overlap.
func (e *Entity) CollidesWith(o *Entity) bool {
	return e.Collider().Intersects(o.Collider())
}

// SetPosition moves the top-left corner to (x, y).
func (e *Entity) SetPosition(x, y float64) {
	e.X, e.Y = x, y
}
