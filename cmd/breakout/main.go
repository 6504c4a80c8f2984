// breakout plays Breakout in the terminal.
//
// Usage:
//
//	breakout play            - Play a game right away
//	breakout menu            - Title menu with setup and high scores
//	breakout serve           - Start SSH server for remote play
//	breakout scores          - Show high scores and recent runs
//	breakout patterns        - List built-in brick patterns
//	breakout config          - Print the default config
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.breakout/scores.db)
//	--config <path>       - Load a custom config YAML
//	--difficulty <name>   - easy, normal or hard
//	--log-file <path>     - Write logs to a file
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakout",
	Short: "Breakout in your terminal",
	Long: `Breakout is the brick breaking classic, played in the terminal
with the keyboard or the mouse.

Available commands:
  play      - Start a game directly
  menu      - Title menu with game setup and high scores
  serve     - Start SSH server for remote play
  scores    - View high scores and recent runs
  patterns  - List built-in brick patterns
  config    - Print the default configuration

Examples:
  breakout play
  breakout play --difficulty hard --pattern pyramid
  breakout menu
  breakout serve --ssh :2222
  breakout config > ~/.breakout/configs/breakout.yaml`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		logger, err := setupLogger(flagLogFile, flagLogLevel)
		if err != nil {
			return err
		}
		breakout.SetLogger(logger)
		breakout.SetConfigPath(flagConfig)
		breakout.SetDifficultyPreset(flagDifficulty)
		appLogger = logger
		return nil
	},
	PersistentPostRun: func(*cobra.Command, []string) {
		closeLogger()
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.breakout/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: no logs)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(patternsCmd)
	rootCmd.AddCommand(configCmd)
}
