package soldefense

import (
	"github.com/vovakirdan/sol-defense/internal/config"
	"github.com/vovakirdan/sol-defense/internal/core"
)

// StarColor is the tint of a star.
type StarColor int

const (
	StarBlue StarColor = iota
	StarRed
)

// StarDistance is the parallax layer of a star.
type StarDistance int

const (
	StarFar StarDistance = iota
	StarMedium
	StarClose
)

var starSizes = [...]int{12, 25, 50}

// WarpState drives the speed-up effect played after a player death.
type WarpState int

const (
	WarpIdle WarpState = iota
	WarpIncreasing
	WarpDecreasing
)

func (s WarpState) String() string {
	switch s {
	case WarpIncreasing:
		return "increasing"
	case WarpDecreasing:
		return "decreasing"
	default:
		return "idle"
	}
}

// Star is one background particle.
type Star struct {
	X, Y     float64
	Color    StarColor
	Distance StarDistance
}

func (s Star) size() int { return starSizes[s.Distance] }

// Starfield is the scrolling parallax background.
type Starfield struct {
	cfg   config.SolDefenseStarfield
	rng   *core.RNG
	stars *Arena[Star]

	width, height int
	scrolling     bool

	warp     WarpState
	mult     float64
	lastStep uint32
}

// NewStarfield fills two screen-sized sections, one on screen and one
// queued above it.
func NewStarfield(cfg config.SolDefenseStarfield, rng *core.RNG, width, height int) *Starfield {
	sf := &Starfield{
		cfg:       cfg,
		rng:       rng,
		stars:     NewArena[Star](cfg.Sections * cfg.StarsPerSection),
		width:     width,
		height:    height,
		scrolling: true,
		mult:      1,
	}
	for section := 0; section < cfg.Sections; section++ {
		top := -section * height
		for i := 0; i < cfg.StarsPerSection; i++ {
			sf.stars.Insert(sf.newStar(top))
		}
	}
	return sf
}

func (sf *Starfield) newStar(top int) Star {
	return Star{
		X:        float64(sf.rng.Intn(sf.width)),
		Y:        float64(top + sf.rng.Intn(sf.height)),
		Color:    StarColor(sf.rng.Intn(2)),
		Distance: StarDistance(sf.rng.Intn(len(starSizes))),
	}
}

func (sf *Starfield) speed(s Star) float64 {
	speeds := sf.cfg.BlueSpeeds
	if s.Color == StarRed {
		speeds = sf.cfg.RedSpeeds
	}
	return speeds[s.Distance]
}

// SetScrolling turns star movement on or off. The warp animation keeps
// running either way.
func (sf *Starfield) SetScrolling(on bool) { sf.scrolling = on }

// Scrolling reports whether stars move.
func (sf *Starfield) Scrolling() bool { return sf.scrolling }

// StartAnimation begins the warp speed-up at multiplier 1.
func (sf *Starfield) StartAnimation(now uint32) {
	sf.warp = WarpIncreasing
	sf.mult = 1
	sf.lastStep = now
}

// Animating reports whether the warp effect is still running.
func (sf *Starfield) Animating() bool { return sf.warp != WarpIdle }

// Multiplier returns the current warp speed factor.
func (sf *Starfield) Multiplier() float64 { return sf.mult }

// Warp returns the warp state.
func (sf *Starfield) Warp() WarpState { return sf.warp }

// Len returns the number of stars.
func (sf *Starfield) Len() int { return sf.stars.Len() }

// Update advances the warp effect and scrolls the stars.
func (sf *Starfield) Update(now, elapsed uint32) {
	sf.updateWarp(now)
	if !sf.scrolling {
		return
	}

	gone := 0
	for h := sf.stars.First(); h != NilHandle; {
		s := sf.stars.Get(h)
		s.Y += float64(int(scaleSpeed(elapsed, sf.speed(*s)) * sf.mult))
		if s.Y > float64(sf.height+s.size()/2) {
			h = sf.stars.Remove(h)
			gone++
			continue
		}
		h = sf.stars.Next(h)
	}
	for ; gone > 0; gone-- {
		sf.stars.Insert(sf.newStar(-sf.height))
	}
}

func (sf *Starfield) updateWarp(now uint32) {
	if sf.warp == WarpIdle {
		return
	}
	if float64(now-sf.lastStep) <= sf.cfg.WarpStepMs/sf.mult {
		return
	}
	sf.lastStep = now

	switch sf.warp {
	case WarpIncreasing:
		sf.mult += sf.cfg.WarpStep
		if sf.mult > sf.cfg.WarpMax {
			sf.mult = sf.cfg.WarpMax
			sf.warp = WarpDecreasing
		}
	case WarpDecreasing:
		sf.mult -= sf.cfg.WarpStep
		if sf.mult < 1 {
			sf.mult = 1
			sf.warp = WarpIdle
		}
	}
}

// Draw renders every star.
func (sf *Starfield) Draw(c Canvas) {
	for _, s := range sf.stars.All() {
		size := s.size()
		c.DrawSprite(Sprite{
			Sheet:   SheetStarfield,
			Tag:     TagStar,
			Variant: int(s.Color)*len(starSizes) + int(s.Distance),
			Src:     core.NewRect(int(s.Distance)*50, int(s.Color)*50, size, size),
			Dst:     core.NewRect(int(s.X)-size/2, int(s.Y)-size/2, size, size),
		})
	}
}
