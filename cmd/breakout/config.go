package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/config"
)

var flagConfigCheck bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in configuration as YAML, ready to be edited.

Settings are read from the first file found in:
  --config <path>
  ~/.breakout/configs/breakout.yaml
  ./configs/breakout.yaml

Any value can also be set from the environment, e.g.
  BREAKOUT_GAMEPLAY_LIVES=5 BREAKOUT_BALL_BASE_SPEED=300 breakout play

Examples:
  breakout config > ~/.breakout/configs/breakout.yaml
  breakout config --check --config ./my-breakout.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigCheck, "check", false, "Load and validate the effective config instead of printing defaults")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	if !flagConfigCheck {
		_, err := out.Write(config.GetDefaultYAML("breakout"))
		return err
	}

	cfg, err := config.LoadBreakout(flagConfig)
	if err != nil {
		return err
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	config.ApplyBreakoutPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return err
	}

	fmt.Fprintf(out, "config OK: %d lives, %dx%d bricks (%s), ball speed %.0f, difficulty %s\n",
		cfg.Gameplay.Lives, cfg.Bricks.Rows, cfg.Bricks.Cols, cfg.Bricks.Pattern, cfg.Ball.BaseSpeed, preset)
	return nil
}
