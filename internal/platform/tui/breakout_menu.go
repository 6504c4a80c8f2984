package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/gameplay"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

// Rows of the setup screen.
const (
	setupRowDifficulty = iota
	setupRowPattern
	setupRowStart
	setupRowCount
)

// SetupModel lets the player pick difficulty and brick pattern before a game.
type SetupModel struct {
	cursor     int
	difficulty int
	pattern    int

	presets  []config.DifficultyPreset
	patterns []breakout.Pattern

	width     int
	height    int
	keyMapper *KeyMapper

	chosen   bool
	back     bool
	quitting bool
}

// NewSetupModel creates the setup screen with defaults preselected.
func NewSetupModel(width, height int, defaults breakout.Options) SetupModel {
	m := SetupModel{
		cursor:    setupRowStart,
		presets:   config.Presets(),
		patterns:  breakout.BuiltinPatterns(),
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}

	m.difficulty = 1 // normal
	for i, p := range m.presets {
		if string(p) == defaults.Difficulty {
			m.difficulty = i
		}
	}
	for i, p := range m.patterns {
		if p.ID == defaults.Pattern {
			m.pattern = i
		}
	}
	return m
}

// Init initializes the model.
func (m SetupModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m SetupModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < setupRowCount-1 {
			m.cursor++
		}
	case MenuActionLeft:
		m.cycle(-1)
	case MenuActionRight:
		m.cycle(1)
	case MenuActionSelect:
		if m.cursor == setupRowStart {
			m.chosen = true
			return m, tea.Quit
		}
		m.cycle(1)
	}
	return m, nil
}

// cycle steps the option on the current row, wrapping around.
func (m *SetupModel) cycle(delta int) {
	switch m.cursor {
	case setupRowDifficulty:
		m.difficulty = wrap(m.difficulty+delta, len(m.presets))
	case setupRowPattern:
		m.pattern = wrap(m.pattern+delta, len(m.patterns))
	}
}

func wrap(i, n int) int {
	if n == 0 {
		return 0
	}
	return ((i % n) + n) % n
}

// View renders the setup screen.
func (m SetupModel) View() string {
	if m.quitting || m.back || m.chosen {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerStyled(titleStyle.Render("NEW GAME"), m.width))
	b.WriteString("\n\n")

	rows := []string{
		fmt.Sprintf("Difficulty  < %-8s >", titleCase(string(m.presets[m.difficulty]))),
		fmt.Sprintf("Bricks      < %-12s >", m.patterns[m.pattern].Name),
		"Start",
	}
	for i, row := range rows {
		line := "  " + row
		if i == m.cursor {
			line = cursorStyle.Render("> " + row)
		}
		b.WriteString(centerStyled(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.preview())

	b.WriteString("\n")
	hint := "Up/Down: Move  |  Left/Right: Change  |  Enter: Start  |  Esc: Back"
	b.WriteString(centerStyled(hintStyle.Render(hint), m.width))

	return b.String()
}

// preview draws the selected brick pattern in miniature.
func (m SetupModel) preview() string {
	mask := m.patterns[m.pattern].Mask
	if len(mask) == 0 {
		layout := gameplay.DefaultBrickLayout()
		for range layout.Rows {
			mask = append(mask, strings.Repeat("#", layout.Cols))
		}
	}

	var b strings.Builder
	for _, row := range mask {
		line := strings.NewReplacer("#", "▆▆", ".", "  ").Replace(row)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}
	return b.String()
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Selected returns the chosen options, or nil if the player did not start.
func (m SetupModel) Selected() *breakout.Options {
	if !m.chosen {
		return nil
	}
	return &breakout.Options{
		Difficulty: string(m.presets[m.difficulty]),
		Pattern:    m.patterns[m.pattern].ID,
	}
}

// IsQuitting returns true if user wants to quit.
func (m SetupModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m SetupModel) WantsBack() bool {
	return m.back
}

// RunSetup runs the setup screen. A nil selection means back or quit.
func RunSetup(cfg core.RuntimeConfig, defaults breakout.Options) (*breakout.Options, bool, error) {
	p := tea.NewProgram(
		NewSetupModel(cfg.ScreenW, cfg.ScreenH, defaults),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, false, err
	}

	m, ok := finalModel.(SetupModel)
	if !ok {
		return nil, true, nil
	}
	return m.Selected(), m.IsQuitting(), nil
}
