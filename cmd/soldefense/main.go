// soldefense is a fixed-screen arcade shooter for the terminal and the
// desktop.
//
// Usage:
//
//	soldefense play [variant]     - Play in the terminal
//	soldefense window [variant]   - Play in a desktop window
//	soldefense menu               - Pick a variant interactively
//	soldefense serve              - Start SSH server for remote play
//	soldefense scores [variant]   - Show high scores
//	soldefense list               - List variants
//	soldefense config             - Print the effective game config
//	soldefense settings           - Show or change saved preferences
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.arcade/soldefense.db)
//	--config <path>       - Load a custom game config YAML
//	--difficulty <name>   - Difficulty preset: easy, normal, hard, fixed
//	--debug               - Verbose logging and boss spawn keys
//	--name <pilot>        - Name recorded with your scores
//	--log-level <level>   - debug, info, warn or error (default: warn)
//	--log-file <path>     - Write logs to a file instead of stderr
package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/sol-defense/internal/core"
	"github.com/vovakirdan/sol-defense/internal/games/soldefense"
	"github.com/vovakirdan/sol-defense/internal/registry"
	"github.com/vovakirdan/sol-defense/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagDebug      bool
	flagName       string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "soldefense",
	Short: "Sol Defense - hold the line against the invading fleet",
	Long: `Sol Defense is a fixed-screen arcade shooter. Fly your ship, raise the
shield, and clear wave after wave before the formation reaches you.

Available commands:
  play      - Play in the terminal
  window    - Play in a desktop window
  menu      - Interactive variant picker
  serve     - Start SSH server for remote play
  scores    - View high scores
  list      - Show all variants
  config    - Print the effective game config
  settings  - Show or change saved preferences

Examples:
  soldefense play
  soldefense play soldefense_classic --difficulty hard
  soldefense window
  soldefense serve --ssh :2222
  soldefense scores`,
	PersistentPreRunE: setupLogging,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Verbose logging and boss spawn keys (b, n, m)")
	rootCmd.PersistentFlags().StringVar(&flagName, "name", "", "Pilot name recorded with scores (default: login name)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(settingsCmd)
}

// setupLogging configures the default logger. The terminal frontends own
// the screen, so --log-file is the way to watch logs while playing.
func setupLogging(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	if flagDebug {
		level = log.DebugLevel
	}
	log.SetLevel(level)

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		log.SetOutput(f)
		log.SetReportTimestamp(true)
	}

	soldefense.SetLogger(log.Default().WithPrefix("soldefense"))
	return nil
}

// applyGameOptions hands the global flags to the game package. It must run
// before a game is created.
func applyGameOptions() error {
	if err := soldefense.SetConfigPath(flagConfig); err != nil {
		return fmt.Errorf("invalid --config: %w", err)
	}
	if err := soldefense.SetDifficultyPreset(flagDifficulty); err != nil {
		return fmt.Errorf("invalid --difficulty: %w", err)
	}
	soldefense.SetDebugHotkeys(flagDebug)
	return nil
}

// variantArg returns the variant named in args, defaulting to the standard
// rules.
func variantArg(args []string) (string, error) {
	id := soldefense.VariantStandard.ID
	if len(args) > 0 {
		id = args[0]
	}
	if !registry.Exists(id) {
		return "", fmt.Errorf("unknown variant %q; run 'soldefense list' to see available variants", id)
	}
	return id, nil
}

// terminalConfig sizes the runtime config to the current terminal.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the score database. Failure is not fatal: the game
// still runs without a leaderboard.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Warn("could not open scores database", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

func pilotName() string {
	if flagName != "" {
		return flagName
	}
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return storage.AnonymousPlayer
}
