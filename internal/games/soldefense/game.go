// Package soldefense implements Sol Defense, a fixed-screen shooter: the
// player's ship holds the bottom of the screen against a sweeping enemy
// formation and the bosses that cross above it.
//
// The simulation is deterministic. It runs on a fixed-step clock, draws
// through the Canvas interface and never touches a device directly.
package soldefense

import (
	"fmt"

	"github.com/vovakirdan/sol-defense/internal/config"
	"github.com/vovakirdan/sol-defense/internal/core"
	"github.com/vovakirdan/sol-defense/internal/registry"
)

// Scene is the active top-level screen.
type Scene int

const (
	SceneNone Scene = iota
	SceneIntro
	SceneIngame
)

func (s Scene) String() string {
	switch s {
	case SceneIntro:
		return "intro"
	case SceneIngame:
		return "ingame"
	default:
		return "none"
	}
}

// Variant selects the rule set a registry entry plays with.
type Variant struct {
	ID      string
	Title   string
	Classic bool // linear speed curve, only boss speed scales with level
}

var (
	VariantStandard = Variant{ID: "soldefense", Title: "Sol Defense"}
	VariantClassic  = Variant{ID: "soldefense_classic", Title: "Sol Defense (Classic)", Classic: true}
)

var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	debugHotkeys     bool
)

// SetConfigPath sets the custom config path for loading. The file is read
// once here so a missing or invalid file fails before a game starts.
func SetConfigPath(path string) error {
	if path != "" {
		if _, err := config.LoadSolDefense(path); err != nil {
			return err
		}
	}
	configPath = path
	return nil
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) error {
	p, err := config.ParsePreset(preset)
	if err != nil {
		return err
	}
	difficultyPreset = p
	return nil
}

// SetDebugHotkeys enables the boss spawn keys.
func SetDebugHotkeys(on bool) {
	debugHotkeys = on
}

// Game switches between the intro and a match and adapts both to the
// registry's fixed-step interface.
type Game struct {
	variant Variant
	runtime core.RuntimeConfig
	cfg     config.SolDefenseConfig

	clock  *core.ManualClock
	rng    *core.RNG
	sounds core.SoundPlayer
	tick   uint64

	scene     Scene
	requested Scene

	intro *Intro
	match *Match

	prev      core.InputFrame
	scrolling bool
	paused    bool
	exit      bool

	// Result of the last finished match.
	finalScore int
	finalLevel int
	gameOver   bool
}

// New creates a standard Sol Defense instance.
func New() *Game {
	return NewVariant(VariantStandard)
}

// NewVariant creates an instance playing by v's rules.
func NewVariant(v Variant) *Game {
	return &Game{
		variant:   v,
		sounds:    core.NopSound{},
		scrolling: true,
		prev:      core.NewInputFrame(),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return g.variant.ID }

// Title returns the display name for this game.
func (g *Game) Title() string { return g.variant.Title }

// SetSoundPlayer routes cues to p. Nil silences the game.
func (g *Game) SetSoundPlayer(p core.SoundPlayer) {
	if p == nil {
		p = core.NopSound{}
	}
	g.sounds = p
	if g.match != nil {
		g.match.sounds = p
	}
}

// SetScrolling turns background scrolling on or off.
func (g *Game) SetScrolling(on bool) {
	g.scrolling = on
	if g.match != nil {
		g.match.starfield.SetScrolling(on)
	}
}

// Scrolling reports whether the background scrolls.
func (g *Game) Scrolling() bool { return g.scrolling }

// Scene returns the active scene.
func (g *Game) Scene() Scene { return g.scene }

// Match returns the match, nil before Reset.
func (g *Game) Match() *Match { return g.match }

// Intro returns the title screen, nil before Reset.
func (g *Game) Intro() *Intro { return g.intro }

// Now returns the simulation clock.
func (g *Game) Now() uint32 {
	if g.clock == nil {
		return 0
	}
	return g.clock.Ticks()
}

// Reset loads the config and returns to the intro.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadSolDefense(configPath)
	if err != nil {
		logger.Warn("using default config", "err", err)
		cfg = config.DefaultSolDefenseConfig()
	}
	if difficultyPreset != "" {
		config.ApplySolDefensePreset(&cfg, difficultyPreset)
	}
	if g.variant.Classic {
		config.ApplyClassicRules(&cfg)
	}
	g.cfg = cfg

	g.clock = core.NewManualClock(0)
	g.rng = core.NewRNG(runtime.Seed)
	g.tick = 0

	g.intro = NewIntro(cfg.Intro, cfg.World.Width, cfg.World.Height)
	g.match = NewMatch(cfg, g.clock, g.rng, g.sounds)
	g.match.starfield.SetScrolling(g.scrolling)

	g.prev = core.NewInputFrame()
	g.paused = false
	g.exit = false
	g.finalScore, g.finalLevel, g.gameOver = 0, 0, false

	g.sounds.Stop(core.CueGameMusic)
	g.scene, g.requested = SceneNone, SceneNone
	g.enter(SceneIntro)
}

func (g *Game) requestScene(s Scene) {
	if s == g.scene {
		panic(fmt.Sprintf("soldefense: scene %s requested while already active", s))
	}
	g.requested = s
}

func (g *Game) enter(s Scene) {
	logger.Debug("scene", "from", g.scene, "to", s)
	g.scene = s
	now := g.clock.Ticks()

	switch s {
	case SceneIntro:
		g.sounds.Stop(core.CueGameMusic)
		g.intro.Reset(now)
		g.sounds.Loop(core.CueMenuMusic, g.cfg.Intro.MusicVolume)
	case SceneIngame:
		g.sounds.Stop(core.CueMenuMusic)
		g.gameOver = false
		g.match.Start()
	}
}

// Step advances the simulation by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	pressed := g.pressed(in)
	g.prev = in.Clone()

	if pressed.Has(core.ActionQuit) {
		g.exit = true
		return core.StepResult{State: g.State()}
	}
	if pressed.Has(core.ActionPause) && g.scene == SceneIngame {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	elapsed := g.runtime.FrameMillis(g.tick)
	g.tick++
	g.clock.Advance(elapsed)

	if g.requested != SceneNone {
		s := g.requested
		g.requested = SceneNone
		g.enter(s)
	}

	if pressed.Has(core.ActionToggleScroll) {
		g.SetScrolling(!g.scrolling)
	}

	switch g.scene {
	case SceneIntro:
		g.stepIntro(pressed, elapsed)
	case SceneIngame:
		g.stepIngame(in, pressed, elapsed)
	}
	return core.StepResult{State: g.State()}
}

// pressed returns the actions that went down this tick.
func (g *Game) pressed(in core.InputFrame) core.InputFrame {
	out := core.NewInputFrame()
	for a, on := range in.Actions {
		if on && !g.prev.Has(a) {
			out.Set(a)
		}
	}
	return out
}

func (g *Game) stepIntro(pressed core.InputFrame, elapsed uint32) {
	if pressed.Has(core.ActionBack) {
		g.exit = true
		return
	}
	g.intro.Update(g.clock.Ticks(), elapsed, g.scrolling)

	if pressed.Any(core.ActionBack, core.ActionToggleScroll, core.ActionPause, core.ActionQuit,
		core.ActionSpawnSaucer, core.ActionSpawnSpider, core.ActionSpawnWalker) {
		g.requestScene(SceneIngame)
	}
}

func (g *Game) stepIngame(in, pressed core.InputFrame, elapsed uint32) {
	if pressed.Has(core.ActionBack) {
		g.finish()
		return
	}

	if debugHotkeys {
		switch {
		case pressed.Has(core.ActionSpawnSaucer):
			g.match.SpawnBoss(BossSaucer)
		case pressed.Has(core.ActionSpawnSpider):
			g.match.SpawnBoss(BossSpider)
		case pressed.Has(core.ActionSpawnWalker):
			g.match.SpawnBoss(BossWalker)
		}
	}

	g.match.Update(elapsed, Controls{
		Up:     in.Has(core.ActionUp),
		Down:   in.Has(core.ActionDown),
		Left:   in.Has(core.ActionLeft),
		Right:  in.Has(core.ActionRight),
		Fire:   in.Has(core.ActionFire),
		Shield: in.Has(core.ActionShield),
	})

	if g.match.Finished() {
		g.finish()
	}
}

// finish records the match result and heads back to the intro.
func (g *Game) finish() {
	g.finalScore = g.match.Score()
	g.finalLevel = g.match.Level()
	g.gameOver = true
	g.requestScene(SceneIntro)
}

// Render draws the active scene into dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.intro == nil {
		return
	}
	c := NewScreenCanvas(dst, g.cfg.World.Width, g.cfg.World.Height)
	g.Draw(c)
}

// Draw renders the active scene onto any canvas.
func (g *Game) Draw(c Canvas) {
	switch g.scene {
	case SceneIntro:
		g.intro.Draw(c)
	case SceneIngame:
		g.match.Draw(c)
		if g.paused {
			c.DrawText(0, g.cfg.World.Height/2+120, "PAUSED", TextStyle{Color: core.ColorWhite, Centered: true})
		}
	}
}

// State returns the current game state. While a match runs it reports the
// live score; afterwards the final result with GameOver set.
func (g *Game) State() core.GameState {
	st := core.GameState{
		Score:    g.finalScore,
		Level:    g.finalLevel,
		GameOver: g.gameOver,
		Paused:   g.paused,
		Exit:     g.exit,
	}
	if g.scene == SceneIngame && g.match != nil && !g.gameOver {
		st.Score = g.match.Score()
		st.Level = g.match.Level()
	}
	return st
}

// Config returns the effective configuration.
func (g *Game) Config() config.SolDefenseConfig { return g.cfg }

func init() {
	registry.Register(VariantStandard.ID, func() registry.Game {
		return NewVariant(VariantStandard)
	})
	registry.Register(VariantClassic.ID, func() registry.Game {
		return NewVariant(VariantClassic)
	})
}
