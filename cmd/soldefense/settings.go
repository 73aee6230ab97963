package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sol-defense/internal/settings"
)

var (
	flagSound     bool
	flagVolume    float64
	flagScrolling bool
	flagReset     bool
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change saved preferences",
	Long: `Without flags, prints the saved preferences. Any flag given is stored
and used by later games.

Examples:
  soldefense settings
  soldefense settings --sound=false
  soldefense settings --volume 0.5 --scrolling=false
  soldefense settings --reset`,
	Args: cobra.NoArgs,
	RunE: runSettings,
}

func init() {
	settingsCmd.Flags().BoolVar(&flagSound, "sound", true, "Enable sound")
	settingsCmd.Flags().Float64Var(&flagVolume, "volume", 0.8, "Master volume (0 to 1)")
	settingsCmd.Flags().BoolVar(&flagScrolling, "scrolling", true, "Scroll the background starfield")
	settingsCmd.Flags().BoolVar(&flagReset, "reset", false, "Restore the defaults")
}

func runSettings(cmd *cobra.Command, _ []string) error {
	m := settings.Open()
	if !m.Persistent() {
		return fmt.Errorf("preferences storage is unavailable")
	}

	flags := cmd.Flags()
	changed := false
	switch {
	case flagReset:
		if err := m.Reset(); err != nil {
			return fmt.Errorf("reset preferences: %w", err)
		}
	default:
		if flags.Changed("sound") {
			m.SetSoundEnabled(flagSound)
			changed = true
		}
		if flags.Changed("volume") {
			m.SetMasterVolume(flagVolume)
			changed = true
		}
		if flags.Changed("scrolling") {
			m.SetScrolling(flagScrolling)
			changed = true
		}
	}
	if changed {
		if err := m.Save(); err != nil {
			return fmt.Errorf("save preferences: %w", err)
		}
	}

	p := m.Get()
	fmt.Printf("sound:      %t\n", p.SoundEnabled)
	fmt.Printf("volume:     %.2f\n", p.MasterVolume)
	fmt.Printf("scrolling:  %t\n", p.Scrolling)
	return nil
}
