package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/storage"
)

const scoresGameID = "breakout"

var (
	flagScoresLimit int
	flagClearScores bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top scores, lifetime stats and the most recent runs.

Examples:
  breakout scores
  breakout scores --limit 20
  breakout scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of entries to show")
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete all scores and runs")
}

func runScores(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if flagClearScores {
		if err := store.ClearScores(scoresGameID); err != nil {
			return fmt.Errorf("clearing scores: %w", err)
		}
		fmt.Fprintln(out, "Scores cleared.")
		return nil
	}

	scores, err := store.TopScores(scoresGameID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Fprintln(out, "High Scores - Breakout")
	fmt.Fprintln(out)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'breakout play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Fprintf(out, "  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Fprintf(out, "  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(scoresGameID)
	if err == nil {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Games: %d  Best: %d  Average: %.0f  Best level: %d  Bricks: %d  Play time: %s\n",
			stats.GamesCount, stats.HighScore, stats.AvgScore, stats.BestLevel, stats.TotalBricks,
			stats.PlayTime.Round(1e9))
	}

	runs, err := store.RecentRuns(scoresGameID, min(flagScoresLimit, 5))
	if err != nil || len(runs) == 0 {
		return nil
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Recent runs")
	fmt.Fprintf(out, "  %-12s  %-8s  %-5s  %-8s  %s\n", "Player", "Score", "Level", "Time", "Date")
	fmt.Fprintf(out, "  %s\n", strings.Repeat("-", 54))
	for _, r := range runs {
		player := r.Player
		if player == "" {
			player = "-"
		}
		fmt.Fprintf(out, "  %-12s  %-8d  %-5d  %-8s  %s\n",
			player, r.Score, r.Level, r.Duration.Round(1e9), r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
