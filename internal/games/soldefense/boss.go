package soldefense

import (
	"fmt"

	"github.com/vovakirdan/sol-defense/internal/config"
	"github.com/vovakirdan/sol-defense/internal/core"
)

// BossType selects one of the three bosses.
type BossType int

const (
	BossSaucer BossType = iota
	BossSpider
	BossWalker

	// BossRandom asks Spawn to pick a type uniformly.
	BossRandom BossType = -1
)

var bossTypes = []BossType{BossSaucer, BossSpider, BossWalker}

func (t BossType) String() string {
	switch t {
	case BossSaucer:
		return "saucer"
	case BossSpider:
		return "spider"
	case BossWalker:
		return "walker"
	case BossRandom:
		return "random"
	default:
		return fmt.Sprintf("BossType(%d)", int(t))
	}
}

// BossState is the boss life cycle.
type BossState int

const (
	BossAbsent BossState = iota
	BossEntering
	BossHover
	BossLeaving
)

func (s BossState) String() string {
	switch s {
	case BossEntering:
		return "entering"
	case BossHover:
		return "hover"
	case BossLeaving:
		return "leaving"
	default:
		return "absent"
	}
}

var bossClips = []Clip{
	{X: 0, Y: 406, Frames: 23, FrameMs: 100, Mode: PlayLoop},
	{X: 0, Y: 501, Frames: 30, FrameMs: 75, Mode: PlayLoop},
	{X: 0, Y: 596, Frames: 25, FrameMs: 150, Mode: PlayLoop},
}

// Boss is the single boss slot. The zero value is not usable; see NewBoss.
type Boss struct {
	Entity
	Type  BossType
	State BossState

	cfg        config.SolDefenseBoss
	speed      float64
	hoverMs    uint32
	points     int
	hoverStart uint32
	anim       Animator

	// OnStateChange, when set, observes every transition.
	OnStateChange func(from, to BossState)
}

// NewBoss returns an absent boss.
func NewBoss(cfg config.SolDefenseBoss) *Boss {
	return &Boss{cfg: cfg, Entity: Entity{Kind: KindBoss}}
}

func (b *Boss) stats(t BossType) config.SolDefenseBossType {
	switch t {
	case BossSpider:
		return b.cfg.Spider
	case BossWalker:
		return b.cfg.Walker
	default:
		return b.cfg.Saucer
	}
}

func (b *Boss) setState(s BossState) {
	if b.State == s {
		return
	}
	from := b.State
	b.State = s
	if b.OnStateChange != nil {
		b.OnStateChange(from, s)
	}
}

// Active reports whether a boss occupies the slot.
func (b *Boss) Active() bool { return b.State != BossAbsent }

// Points returns the scaled reward of the current boss.
func (b *Boss) Points() int { return b.points }

// Spawn brings a boss in from the right edge. It does nothing while a boss
// is already active.
func (b *Boss) Spawn(w World, t BossType) {
	if b.Active() {
		return
	}
	if t == BossRandom {
		t = bossTypes[w.Rand().Intn(len(bossTypes))]
	}
	if t < BossSaucer || t > BossWalker {
		panic(fmt.Sprintf("soldefense: invalid boss type %d", int(t)))
	}

	st := b.stats(t)
	mult := w.Difficulty()
	width, _ := w.Bounds()

	b.Type = t
	b.W, b.H = st.Width, st.Height
	b.X = float64(width)
	b.Y = float64(b.cfg.BandTop+b.cfg.BandBottom-st.Height) / 2
	b.Alive = true

	b.speed = st.Speed * mult
	b.hoverMs = st.HoverMs
	if b.cfg.ScaleHover {
		b.hoverMs = uint32(float64(st.HoverMs) * mult)
	}
	b.points = st.Points
	if b.cfg.ScalePoints {
		b.points = int(float64(st.Points) * mult)
	}

	b.anim = NewAnimator(bossClips, st.Width, st.Height)
	b.anim.Request(int(t))
	b.setState(BossEntering)
	w.Play(core.CueBossSpawn, 1)
}

// Update moves the boss through entering, hover and leaving.
func (b *Boss) Update(w World, elapsed uint32) {
	if !b.Active() {
		return
	}
	now := w.Now()
	b.anim.Update(now)

	switch b.State {
	case BossEntering:
		b.X += scaleSpeed(elapsed, b.speed)
		width, _ := w.Bounds()
		if center := float64(width-b.W) / 2; b.X <= center {
			b.X = center
			b.hoverStart = now
			b.setState(BossHover)
			switch b.Type {
			case BossSpider:
				w.Play(core.CueBossNullify, 1)
			case BossWalker:
				w.Play(core.CueBossEnhance, 1)
			}
		}
	case BossHover:
		if now-b.hoverStart > b.hoverMs {
			b.setState(BossLeaving)
		}
	case BossLeaving:
		b.X += scaleSpeed(elapsed, b.speed)
		if b.X < -float64(b.W) {
			b.Alive = false
			b.setState(BossAbsent)
			w.OnBossLeave()
		}
	}
}

// Despawn removes the boss at once, whatever it was doing.
func (b *Boss) Despawn() {
	if !b.Active() {
		return
	}
	b.Alive = false
	b.setState(BossAbsent)
}

// NullifiesShield reports whether a hovering spider blocks the shield.
func (b *Boss) NullifiesShield() bool {
	return b.State == BossHover && b.Type == BossSpider
}

// AimsEnemyFire reports whether a hovering walker makes enemies aim.
func (b *Boss) AimsEnemyFire() bool {
	return b.State == BossHover && b.Type == BossWalker
}

// Draw renders the boss when present.
func (b *Boss) Draw(c Canvas) {
	if !b.Active() {
		return
	}
	drawAnimated(c, SheetEnemies, TagBoss, int(b.Type), &b.anim, &b.Entity, 0)
}
