package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/sol-defense/internal/platform/tui"
	"github.com/vovakirdan/sol-defense/internal/settings"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a variant interactively",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to launch a variant.
When a game ends you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Launch variant
  Tab          - Scoreboard
  Q/Esc        - Quit

Examples:
  soldefense menu
  soldefense menu --fps 30
  soldefense menu --db ./scores.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	if err := applyGameOptions(); err != nil {
		return err
	}
	store := openStore()
	if store != nil {
		defer store.Close()
	}
	prefs := settings.Open()
	cfg := terminalConfig()

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			return fmt.Errorf("menu: %w", err)
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return fmt.Errorf("scoreboard: %w", err)
			}
			if goBack {
				continue
			}
			return nil
		}

		game, sounds, err := newGame(menuResult.GameID, prefs)
		if err != nil {
			log.Error("could not create game", "variant", menuResult.GameID, "err", err)
			continue
		}

		cfg.Seed = flagSeed
		if cfg.Seed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		err = tui.Run(game, store, prefs, cfg, pilotName())
		closeSounds(sounds)
		if err != nil {
			return fmt.Errorf("run game: %w", err)
		}
	}
}
