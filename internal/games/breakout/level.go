// Package breakout implements the Breakout host: the ball physics and
// rendering layer that drives the gameplay controller.
package breakout

import (
	"fmt"
	"strings"
)

// Pattern is a named brick arrangement for the default 4x10 grid.
type Pattern struct {
	ID   string
	Name string
	Mask []string // Empty means every slot holds a brick
}

// BuiltinPatterns returns all built-in brick patterns.
func BuiltinPatterns() []Pattern {
	return []Pattern{
		{ID: "classic", Name: "Classic"},
		{ID: "pyramid", Name: "Pyramid", Mask: []string{
			"....##....",
			"...####...",
			"..######..",
			".########.",
		}},
		{ID: "checker", Name: "Checkerboard", Mask: []string{
			"#.#.#.#.#.",
			".#.#.#.#.#",
			"#.#.#.#.#.",
			".#.#.#.#.#",
		}},
		{ID: "fortress", Name: "Fortress", Mask: []string{
			"##########",
			"#........#",
			"#.######.#",
			"##########",
		}},
		{ID: "striped", Name: "Striped", Mask: []string{
			"##########",
			"..........",
			"##########",
			"..........",
		}},
	}
}

// PatternByID returns a built-in pattern by its ID.
func PatternByID(id string) (Pattern, bool) {
	for _, p := range BuiltinPatterns() {
		if p.ID == id {
			return p, true
		}
	}
	return Pattern{}, false
}

// ParseMask validates an ASCII brick mask.
// Characters:
//
//	'#' = brick
//	'.' or ' ' = empty slot
func ParseMask(lines []string) ([]string, error) {
	bricks := 0
	for row, line := range lines {
		for col, ch := range line {
			switch ch {
			case '#':
				bricks++
			case '.', ' ':
			default:
				return nil, fmt.Errorf("breakout: invalid mask character %q at row %d col %d", ch, row, col)
			}
		}
	}
	if len(lines) > 0 && bricks == 0 {
		return nil, fmt.Errorf("breakout: mask %q has no bricks", strings.Join(lines, "/"))
	}
	return lines, nil
}
