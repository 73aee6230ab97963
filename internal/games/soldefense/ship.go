package soldefense

import (
	"github.com/vovakirdan/sol-defense/internal/config"
	"github.com/vovakirdan/sol-defense/internal/core"
)

// Controls is the per-frame input snapshot for the ship.
type Controls struct {
	Up, Down, Left, Right bool
	Fire, Shield          bool
}

// ShipState is the ship's shield mode.
type ShipState int

const (
	ShipNormal ShipState = iota
	ShipShielded
)

func (s ShipState) String() string {
	if s == ShipShielded {
		return "shielded"
	}
	return "normal"
}

var (
	shipClips   = []Clip{{X: 0, Y: 0, Frames: 19, FrameMs: 50, Mode: PlayLoop}}
	shieldClips = []Clip{{X: 0, Y: 297, Frames: 4, FrameMs: 100, Mode: PlayLoop}}
)

// Ship is the player's ship.
type Ship struct {
	Entity
	State ShipState

	cfg    config.SolDefensePlayer
	shots  config.SolDefenseProjectile
	spawnX float64
	spawnY float64

	controls    Controls
	prevShield  bool
	fired       bool
	lastShot    uint32
	shieldStart uint32

	anim   Animator
	shield Animator
}

// NewShip places a ship at its spawn point on a width x height field.
func NewShip(cfg config.SolDefensePlayer, shots config.SolDefenseProjectile, width, height int) *Ship {
	s := &Ship{
		cfg:    cfg,
		shots:  shots,
		spawnX: float64(width-cfg.Width) / 2,
		spawnY: float64(height - cfg.Height - cfg.SpawnOffsetY),
		anim:   NewAnimator(shipClips, cfg.Width, cfg.Height),
		shield: NewAnimator(shieldClips, cfg.ShieldSize, cfg.ShieldSize),
	}
	s.Entity = Entity{W: cfg.Width, H: cfg.Height, ColliderScale: cfg.ColliderScale, Kind: KindPlayerShip}
	s.anim.Request(0)
	s.shield.Request(0)
	s.Respawn()
	return s
}

// SpawnPosition returns the fixed respawn point.
func (s *Ship) SpawnPosition() (float64, float64) { return s.spawnX, s.spawnY }

// Respawn puts a live, unshielded ship back at its spawn point.
func (s *Ship) Respawn() {
	s.X, s.Y = s.spawnX, s.spawnY
	s.Alive = true
	s.State = ShipNormal
}

// SetControls stores the input for the next Update.
func (s *Ship) SetControls(c Controls) { s.controls = c }

// Shielded reports whether the shield is up.
func (s *Ship) Shielded() bool { return s.State == ShipShielded }

// CanMove reports whether input is accepted: the ship must be alive and
// not shielded.
func (s *Ship) CanMove() bool { return s.Alive && s.State == ShipNormal }

// Update applies input, fires and expires the shield.
func (s *Ship) Update(w World, elapsed uint32) {
	now := w.Now()
	s.anim.Update(now)
	s.shield.Update(now)

	if s.State == ShipShielded && now-s.shieldStart > s.cfg.ShieldMs {
		s.State = ShipNormal
	}

	shieldEdge := s.controls.Shield && !s.prevShield
	s.prevShield = s.controls.Shield

	if !s.CanMove() {
		return
	}
	s.move(w, elapsed)

	if s.controls.Fire && (!s.fired || now-s.lastShot > s.cfg.FireCooldownMs) {
		x := s.X + float64(s.W)/2 - float64(s.shots.PlayerWidth)/2
		y := s.Y - float64(s.shots.PlayerHeight)
		w.SpawnProjectile(newPlayerProjectile(s.shots, x, y))
		w.Play(core.CuePlayerShot, 1)
		s.fired = true
		s.lastShot = now
	}

	if s.controls.Shield {
		if w.ShieldNullified() {
			if shieldEdge {
				w.Play(core.CueShieldNullified, s.cfg.NullifiedVolume)
			}
			return
		}
		s.State = ShipShielded
		s.shieldStart = now
		w.Play(core.CueShieldUp, 1)
	}
}

func (s *Ship) move(w World, elapsed uint32) {
	width, height := w.Bounds()
	step := float64(int(scaleSpeed(elapsed, s.cfg.Speed)))

	switch {
	case s.controls.Left:
		s.X -= step
	case s.controls.Right:
		s.X += step
	}
	switch {
	case s.controls.Up:
		s.Y -= step
	case s.controls.Down:
		s.Y += step
	}

	s.X = core.ClampF(s.X, 0, float64(width-s.W))
	s.Y = core.ClampF(s.Y, float64(s.cfg.MoveLimitY), float64(height-s.H))
}

// OnCollision kills the ship unless the shield is up.
func (s *Ship) OnCollision() {
	if s.State == ShipShielded {
		return
	}
	s.Alive = false
}

// Draw renders the ship and, when raised, the shield around it.
func (s *Ship) Draw(c Canvas) {
	if !s.Alive {
		return
	}
	drawAnimated(c, SheetGame, TagShip, 0, &s.anim, &s.Entity, 0)
	if s.State != ShipShielded {
		return
	}
	src, ok := s.shield.Source()
	if !ok {
		return
	}
	cx, cy := s.Center()
	size := s.cfg.ShieldSize
	c.DrawSprite(Sprite{
		Sheet: SheetGame,
		Tag:   TagShield,
		Frame: s.shield.Frame(),
		Src:   src,
		Dst:   core.NewRect(int(cx)-size/2, int(cy)-size/2, size, size),
	})
}
