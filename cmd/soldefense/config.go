package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sol-defense/internal/config"
)

var flagConfigClassic bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game config",
	Long: `Print the game config as YAML after applying --config and --difficulty.
Save the output to ~/.arcade/configs/soldefense.yaml and edit it to tune
the game.

Examples:
  soldefense config > ~/.arcade/configs/soldefense.yaml
  soldefense config --difficulty hard --classic`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigClassic, "classic", false, "Apply the classic variant's rules")
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.LoadSolDefense(flagConfig)
	if err != nil {
		return err
	}
	if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return err
		}
		config.ApplySolDefensePreset(&cfg, preset)
	}
	if flagConfigClassic {
		config.ApplyClassicRules(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
