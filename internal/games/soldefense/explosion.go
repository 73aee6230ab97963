package soldefense

import "github.com/vovakirdan/sol-defense/internal/config"

var explosionClips = []Clip{
	{X: 0, Y: 773, Frames: 31, FrameMs: 5, Mode: PlayOnce},
	{X: 0, Y: 773, Frames: 31, FrameMs: 42, Mode: PlayOnce},
}

const (
	clipExplosionSmall = 0
	clipExplosionBig   = 1
)

// Explosion is a purely visual actor that expires after its lifetime.
type Explosion struct {
	Entity
	Big      bool
	born     uint32
	lifetime uint32
	anim     Animator
}

// newExplosion centers an explosion on (cx, cy). Big explosions are used for
// the ship and bosses and last longer.
func newExplosion(cfg config.SolDefenseExplosion, big bool, cx, cy float64, now uint32) Explosion {
	e := Explosion{
		Entity: Entity{
			X:     cx - float64(cfg.Width)/2,
			Y:     cy - float64(cfg.Height)/2,
			W:     cfg.Width,
			H:     cfg.Height,
			Alive: true,
			Kind:  KindExplosion,
		},
		Big:      big,
		born:     now,
		lifetime: cfg.SmallMs,
		anim:     NewAnimator(explosionClips, cfg.Width, cfg.Height),
	}
	clip := clipExplosionSmall
	if big {
		clip = clipExplosionBig
		e.lifetime = cfg.BigMs
	}
	e.anim.Request(clip)
	e.anim.Update(now)
	return e
}

// Update advances the animation and expires the explosion.
func (e *Explosion) Update(now uint32) {
	e.anim.Update(now)
	if now-e.born > e.lifetime {
		e.Alive = false
	}
}

// Draw renders the explosion.
func (e *Explosion) Draw(c Canvas) {
	variant := 0
	if e.Big {
		variant = 1
	}
	drawAnimated(c, SheetGame, TagExplosion, variant, &e.anim, &e.Entity, 0)
}
