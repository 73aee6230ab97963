package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sol-defense/internal/platform/tui"
	"github.com/vovakirdan/sol-defense/internal/registry"
	"github.com/vovakirdan/sol-defense/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show high scores",
	Long: `Without arguments, opens the interactive scoreboard. With a variant,
prints its top scores.

Examples:
  soldefense scores
  soldefense scores soldefense --limit 20
  soldefense scores soldefense_classic --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to print")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every score of the variant")
}

func runScores(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("open scores database: %w", err)
	}
	defer store.Close()

	if len(args) == 0 && !flagScoresClear {
		cfg := terminalConfig()
		_, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
		return err
	}

	gameID, err := variantArg(args)
	if err != nil {
		return err
	}

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			return fmt.Errorf("clear scores: %w", err)
		}
		fmt.Printf("Scores for %s cleared.\n", gameID)
		return nil
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieve scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'soldefense play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-16s  %-10s  %-5s  %s\n", "Rank", "Pilot", "Score", "Level", "Date")
	fmt.Printf("  %-4s  %-16s  %-10s  %-5s  %s\n", "----", "-----", "-----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-16s  %-10d  %-5d  %s\n", i+1, entry.Player, entry.Score, entry.Level, dateStr)
	}

	stats, err := store.GetGameStats(gameID)
	if err == nil {
		fmt.Println()
		fmt.Printf("Best: %d (level %d) over %d games\n", stats.HighScore, stats.BestLevel, stats.GamesCount)
	}
	return nil
}
