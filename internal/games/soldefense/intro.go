package soldefense

import (
	"github.com/vovakirdan/sol-defense/internal/config"
	"github.com/vovakirdan/sol-defense/internal/core"
)

// IntroStage is the title screen animation step.
type IntroStage int

const (
	IntroLaser IntroStage = iota
	IntroTitle
	IntroIdle
)

func (s IntroStage) String() string {
	switch s {
	case IntroLaser:
		return "laser"
	case IntroTitle:
		return "title"
	default:
		return "idle"
	}
}

const (
	labelHitKey       = "HIT A KEY TO START!"
	labelToggleScroll = "<F9> TOGGLE BACKGROUND SCROLLING"

	titleWidth  = 725
	titleHeight = 458
	titleY      = 60
)

// Intro is the title screen: a laser sweep reveals the title, then the
// prompt blinks until a key is hit.
type Intro struct {
	cfg           config.SolDefenseIntro
	width, height int

	stage      IntroStage
	laserY     float64
	nebulaY    float64
	blinkOn    bool
	lastSwitch uint32
}

// NewIntro returns an intro at the start of the laser sweep.
func NewIntro(cfg config.SolDefenseIntro, width, height int) *Intro {
	in := &Intro{cfg: cfg, width: width, height: height}
	in.Reset(0)
	return in
}

// Reset restarts the animation.
func (in *Intro) Reset(now uint32) {
	in.stage = IntroLaser
	in.laserY = float64(in.height)
	in.nebulaY = float64(2 * in.height)
	in.blinkOn = false
	in.lastSwitch = now
}

// Stage returns the animation step.
func (in *Intro) Stage() IntroStage { return in.stage }

// Update scrolls the nebula and advances the sweep.
func (in *Intro) Update(now, elapsed uint32, scrolling bool) {
	if scrolling {
		in.nebulaY += scaleSpeed(elapsed, in.cfg.BackgroundSpeed)
		if in.nebulaY <= 0 {
			in.nebulaY = float64(2 * in.height)
		}
	}

	switch in.stage {
	case IntroLaser:
		in.laserY += scaleSpeed(elapsed, in.cfg.LaserSpeed)
		if in.laserY <= -float64(in.cfg.LaserHeight) {
			in.stage = IntroTitle
		}
	case IntroTitle:
		in.lastSwitch = now
		in.stage = IntroIdle
	case IntroIdle:
		if now-in.lastSwitch > in.cfg.BlinkMs {
			in.blinkOn = !in.blinkOn
			in.lastSwitch = now
		}
	}
}

// Draw renders the intro.
func (in *Intro) Draw(c Canvas) {
	c.DrawSprite(Sprite{
		Sheet: SheetIntro,
		Tag:   TagNebula,
		Src:   core.NewRect(in.height, int(in.nebulaY), in.width, in.height),
		Dst:   core.NewRect(0, 0, in.width, in.height),
	})
	if in.stage == IntroLaser {
		lw, lh := in.cfg.LaserWidth, in.cfg.LaserHeight
		c.DrawSprite(Sprite{
			Sheet: SheetIntro,
			Tag:   TagLaser,
			Src:   core.NewRect(0, 0, lw, lh),
			Dst:   core.NewRect((in.width-lw)/2, int(in.laserY), lw, lh),
		})
		return
	}

	c.DrawSprite(Sprite{
		Sheet: SheetIntro,
		Tag:   TagTitle,
		Src:   core.NewRect(in.cfg.LaserWidth, 0, titleWidth, titleHeight),
		Dst:   core.NewRect((in.width-titleWidth)/2, titleY, titleWidth, titleHeight),
	})
	if in.stage != IntroIdle {
		return
	}

	prompt := core.ColorYellow
	if in.blinkOn {
		prompt = core.ColorRed
	}
	c.DrawText(0, in.height*2/3, labelHitKey, TextStyle{Color: prompt, Centered: true})
	c.DrawText(0, in.height*2/3+80, labelToggleScroll, TextStyle{Color: core.ColorCyan, Centered: true})
}
