package breakout

import (
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/gameplay"
)

func TestParseMask(t *testing.T) {
	tests := []struct {
		name    string
		lines   []string
		wantErr bool
	}{
		{"full", []string{"##########"}, false},
		{"gaps", []string{"#. #"}, false},
		{"empty mask", nil, false},
		{"bad char", []string{"#x#"}, true},
		{"no bricks", []string{"....", "    "}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseMask(tc.lines)
			if (err != nil) != tc.wantErr {
				t.Errorf("ParseMask() err = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestBuiltinPatterns(t *testing.T) {
	want := map[string]int{
		"classic":  40,
		"pyramid":  20,
		"checker":  20,
		"fortress": 30,
		"striped":  20,
	}

	for _, p := range BuiltinPatterns() {
		if _, err := ParseMask(p.Mask); err != nil {
			t.Errorf("pattern %s: %v", p.ID, err)
		}

		layout := gameplay.DefaultBrickLayout()
		layout.Mask = p.Mask
		got := gameplay.NewBrickField(layout).Len()
		if got != want[p.ID] {
			t.Errorf("pattern %s has %d bricks, expected %d", p.ID, got, want[p.ID])
		}
	}
}

func TestResolveMask(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	layout := cfg.Layout()
	bricks := cfg.Bricks

	bricks.Pattern = "pyramid"
	if _, id := resolveMask(layout, bricks); id != "pyramid" {
		t.Errorf("pattern = %q, expected pyramid", id)
	}

	bricks.Pattern = "nope"
	if mask, id := resolveMask(layout, bricks); id != "classic" || mask != nil {
		t.Errorf("unknown pattern resolved to %q", id)
	}

	bricks.Mask = []string{"#.#"}
	if _, id := resolveMask(layout, bricks); id != "custom" {
		t.Errorf("explicit mask resolved to %q", id)
	}

	bricks.Mask = []string{"#?#"}
	bricks.Pattern = "striped"
	if _, id := resolveMask(layout, bricks); id != "striped" {
		t.Errorf("invalid mask should fall back to the pattern, got %q", id)
	}
}

func TestResolveMaskMustFitGrid(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	layout := cfg.Layout()

	tests := []struct {
		name    string
		pattern string
		mask    []string
		rows    int
		want    string
	}{
		{"bricks below the grid", "classic", []string{"..........", "..........", "..........", "..........", "#"}, 4, "classic"},
		{"bricks right of the grid", "pyramid", []string{"..........#"}, 4, "pyramid"},
		{"pattern taller than the grid", "pyramid", nil, 2, "classic"},
		{"fitting mask", "classic", []string{"#........."}, 4, "custom"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l := layout
			l.Rows = tc.rows
			bricks := cfg.Bricks
			bricks.Pattern = tc.pattern
			bricks.Mask = tc.mask

			mask, id := resolveMask(l, bricks)
			if id != tc.want {
				t.Errorf("resolveMask() = %q, expected %q", id, tc.want)
			}
			l.Mask = mask
			if n := gameplay.NewBrickField(l).Len(); n == 0 {
				t.Errorf("resolved layout has no bricks")
			}
		})
	}
}
