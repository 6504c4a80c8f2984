package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "List built-in brick patterns",
	Long:  `Shows the built-in brick patterns that --pattern and the setup screen accept.`,
	Args:  cobra.NoArgs,
	Run:   runPatterns,
}

func runPatterns(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()
	patterns := breakout.BuiltinPatterns()

	maxIDLen := 2 // "ID" header
	for _, p := range patterns {
		maxIDLen = max(maxIDLen, len(p.ID))
	}

	fmt.Fprintln(out, "Brick patterns:")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %-*s  %-14s  %s\n", maxIDLen, "ID", "Name", "Bricks")
	fmt.Fprintf(out, "  %-*s  %-14s  %s\n", maxIDLen, "--", "----", "------")

	for _, p := range patterns {
		fmt.Fprintf(out, "  %-*s  %-14s  %s\n", maxIDLen, p.ID, p.Name, brickCount(p.Mask))
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'breakout play --pattern <id>' to use one.")
}

// brickCount describes how many bricks a mask holds; empty means a full grid.
func brickCount(mask []string) string {
	if len(mask) == 0 {
		return "full grid"
	}
	n := 0
	for _, row := range mask {
		n += strings.Count(row, "#")
	}
	return fmt.Sprintf("%d", n)
}
