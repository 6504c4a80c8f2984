package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the title menu",
	Long: `Start Breakout in interactive menu mode.

Pick Play to choose difficulty and brick pattern, or High Scores to
see the leaderboard. Leaving a game returns to the menu.

Controls:
  Up/Down/j/k   - Navigate menu
  Left/Right    - Change a setting
  Enter/Space   - Select
  Tab           - High scores
  Q             - Quit

Examples:
  breakout menu
  breakout menu --fps 30
  breakout menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects")
}

func runMenu(_ *cobra.Command, _ []string) error {
	svc := openServices()
	defer closeServices(svc)

	cfg := runtimeConfig()
	defaults := breakout.Options{Difficulty: flagDifficulty}

	for {
		menuResult, err := tui.RunMenu(svc, cfg)
		if err != nil {
			return err
		}
		cfg = menuResult.Config

		switch menuResult.Choice {
		case tui.MenuChoiceScores:
			goBack, sbErr := tui.RunScoreboard(svc, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if !goBack {
				return nil
			}
			continue

		case tui.MenuChoicePlay:
			selection, quit, setupErr := tui.RunSetup(cfg, defaults)
			if setupErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", setupErr)
				continue
			}
			if quit {
				return nil
			}
			if selection == nil {
				continue
			}
			defaults = *selection

			// New seed for each game unless one was given
			if flagSeed == 0 {
				cfg.Seed = time.Now().UnixNano()
			}

			backToMenu, runErr := tui.Run(breakout.NewWithOptions(*selection), cfg, svc)
			if runErr != nil {
				fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
			}
			if !backToMenu {
				return nil
			}

		default:
			return nil
		}
	}
}
