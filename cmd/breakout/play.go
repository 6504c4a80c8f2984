package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
)

var flagPattern string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of Breakout right away.

Controls:
  Left/Right, A/D, H/L  - Move the paddle
  Mouse                 - Paddle follows the pointer
  P                     - Pause
  R                     - Start over
  M                     - Toggle sound
  Ctrl+S                - Save a screenshot
  Esc/B                 - Leave (when paused or after game over)
  Q/Ctrl+C              - Quit

After the last life is lost the game restarts by itself.

Difficulty options:
  easy   - More lives, wider paddle, slower ball
  normal - Default settings
  hard   - Fewer lives, narrower paddle, faster ball

Examples:
  breakout play
  breakout play --difficulty easy
  breakout play --pattern fortress --sound
  breakout play --config ./my-breakout.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPattern, "pattern", "", "Brick pattern ID (see 'breakout patterns')")
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects")
}

func runPlay(_ *cobra.Command, _ []string) error {
	if flagPattern != "" {
		if _, ok := breakout.PatternByID(flagPattern); !ok {
			return fmt.Errorf("unknown pattern %q, run 'breakout patterns' to list them", flagPattern)
		}
	}

	svc := openServices()
	defer closeServices(svc)

	game := breakout.NewWithOptions(breakout.Options{Pattern: flagPattern})
	appLogger.Info("play", "pattern", flagPattern, "difficulty", flagDifficulty)

	if _, err := tui.Run(game, runtimeConfig(), svc); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
