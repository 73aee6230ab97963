package gfx

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/sol-defense/internal/core"
	"github.com/vovakirdan/sol-defense/internal/games/soldefense"
	"github.com/vovakirdan/sol-defense/internal/platform"
	"github.com/vovakirdan/sol-defense/internal/settings"
	"github.com/vovakirdan/sol-defense/internal/storage"
)

const (
	windowWidth  = 960
	windowHeight = 540
)

// keyBindings maps physical keys to actions. Several keys may share one.
var keyBindings = []struct {
	key    ebiten.Key
	action core.Action
}{
	{ebiten.KeyArrowUp, core.ActionUp},
	{ebiten.KeyW, core.ActionUp},
	{ebiten.KeyArrowDown, core.ActionDown},
	{ebiten.KeyS, core.ActionDown},
	{ebiten.KeyArrowLeft, core.ActionLeft},
	{ebiten.KeyA, core.ActionLeft},
	{ebiten.KeyArrowRight, core.ActionRight},
	{ebiten.KeyD, core.ActionRight},
	{ebiten.KeySpace, core.ActionFire},
	{ebiten.KeyJ, core.ActionFire},
	{ebiten.KeyX, core.ActionShield},
	{ebiten.KeyK, core.ActionShield},
	{ebiten.KeyF9, core.ActionToggleScroll},
	{ebiten.KeyEnter, core.ActionConfirm},
	{ebiten.KeyEscape, core.ActionBack},
	{ebiten.KeyP, core.ActionPause},
	{ebiten.KeyQ, core.ActionQuit},
	{ebiten.KeyB, core.ActionSpawnSaucer},
	{ebiten.KeyN, core.ActionSpawnSpider},
	{ebiten.KeyM, core.ActionSpawnWalker},
}

// App adapts a Sol Defense game to ebiten.Game.
type App struct {
	game     *soldefense.Game
	recorder *platform.Recorder
	canvas   *Canvas
	config   core.RuntimeConfig
	worldW   int
	worldH   int
}

// NewApp resets game and prepares it for the window. store and prefs may
// be nil.
func NewApp(game *soldefense.Game, store *storage.Store, prefs *settings.Manager, cfg core.RuntimeConfig, player string) (*App, error) {
	faces, err := LoadFaces()
	if err != nil {
		return nil, err
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	game.Reset(cfg)
	world := game.Config().World

	return &App{
		game:     game,
		recorder: platform.NewRecorder(game, store, prefs, player),
		canvas:   NewCanvas(faces, world.Width),
		config:   cfg,
		worldW:   world.Width,
		worldH:   world.Height,
	}, nil
}

func readInput() core.InputFrame {
	frame := core.NewInputFrame()
	for _, kb := range keyBindings {
		if ebiten.IsKeyPressed(kb.key) {
			frame.Set(kb.action)
		}
	}
	return frame
}

// Update advances the game by one tick.
func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	st := a.game.Step(readInput()).State
	a.recorder.Observe(st)

	if st.Exit {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the active scene.
func (a *App) Draw(screen *ebiten.Image) {
	a.canvas.Begin(screen)
	a.game.Draw(a.canvas)
}

// Layout keeps the logical playfield regardless of window size.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.worldW, a.worldH
}

// Run opens the window and blocks until the game exits or the window is
// closed.
func Run(game *soldefense.Game, store *storage.Store, prefs *settings.Manager, cfg core.RuntimeConfig, player string) error {
	app, err := NewApp(game, store, prefs, cfg, player)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(app.config.TickRate)

	log.Debug("opening window", "game", game.ID(), "tps", app.config.TickRate)
	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}
