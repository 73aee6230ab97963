package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sol-defense/internal/audio"
	"github.com/vovakirdan/sol-defense/internal/core"
	"github.com/vovakirdan/sol-defense/internal/games/soldefense"
	"github.com/vovakirdan/sol-defense/internal/platform/gfx"
	"github.com/vovakirdan/sol-defense/internal/platform/tui"
	"github.com/vovakirdan/sol-defense/internal/registry"
	"github.com/vovakirdan/sol-defense/internal/settings"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal. The variant defaults to soldefense.

Controls:
  Arrows/WASD  - Fly
  Space/J      - Fire
  X/K          - Shield
  F9           - Toggle background scrolling
  P            - Pause
  Esc          - Back to the title screen
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - 5 lives, difficulty grows 0.15 per level
  normal - The config as loaded
  hard   - 2 lives, start at level 2, difficulty grows 0.35 per level
  fixed  - Level multiplier stays at 1.0; the formation still speeds up
           as its ranks thin

Examples:
  soldefense play
  soldefense play soldefense_classic
  soldefense play --difficulty hard --seed 42
  soldefense play --config ./my-soldefense.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

var windowCmd = &cobra.Command{
	Use:   "window [variant]",
	Short: "Play in a desktop window",
	Long: `Start a game in a desktop window. The playfield keeps its 16:9 layout
at any window size. F11 toggles fullscreen.

Examples:
  soldefense window
  soldefense window soldefense_classic --fps 30`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWindow,
}

// newGame creates the variant and wires sound and the saved scroll
// preference into it.
func newGame(id string, prefs *settings.Manager) (registry.Game, core.SoundPlayer, error) {
	if err := applyGameOptions(); err != nil {
		return nil, nil, err
	}

	game, err := registry.Create(id)
	if err != nil {
		return nil, nil, err
	}

	p := prefs.Get()
	sounds := audio.Open(p.SoundEnabled, p.MasterVolume)
	registry.Configure(game, sounds, p.Scrolling)
	return game, sounds, nil
}

func closeSounds(s core.SoundPlayer) {
	if p, ok := s.(*audio.Player); ok {
		p.Close()
	}
}

func runPlay(_ *cobra.Command, args []string) error {
	id, err := variantArg(args)
	if err != nil {
		return err
	}

	prefs := settings.Open()
	game, sounds, err := newGame(id, prefs)
	if err != nil {
		return err
	}
	defer closeSounds(sounds)

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := terminalConfig()
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	if err := tui.Run(game, store, prefs, cfg, pilotName()); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}

func runWindow(_ *cobra.Command, args []string) error {
	id, err := variantArg(args)
	if err != nil {
		return err
	}

	prefs := settings.Open()
	game, sounds, err := newGame(id, prefs)
	if err != nil {
		return err
	}
	defer closeSounds(sounds)

	sd, ok := game.(*soldefense.Game)
	if !ok {
		return fmt.Errorf("variant %q cannot run in a window", id)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := core.RuntimeConfig{TickRate: flagFPS, Seed: flagSeed}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return gfx.Run(sd, store, prefs, cfg, pilotName())
}
