package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

// scriptedGame replays fixed states and records the input it receives.
type scriptedGame struct {
	state   core.GameState
	events  []core.Event
	inputs  []core.InputFrame
	resets  int
	resized [2]int
}

func (g *scriptedGame) ID() string               { return "breakout" }
func (g *scriptedGame) Title() string            { return "Breakout" }
func (g *scriptedGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *scriptedGame) Render(dst *core.Screen)  { dst.DrawText(0, 0, "frame") }
func (g *scriptedGame) State() core.GameState    { return g.state }
func (g *scriptedGame) Resize(w, h int)          { g.resized = [2]int{w, h} }

func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	frame := core.NewInputFrame()
	for a := range in.Actions {
		frame.Set(a)
	}
	frame.Pointer, frame.HasPointer = in.Pointer, in.HasPointer
	g.inputs = append(g.inputs, frame)

	res := core.StepResult{State: g.state, Events: g.events}
	g.events = nil
	return res
}

func (g *scriptedGame) lastInput() core.InputFrame {
	return g.inputs[len(g.inputs)-1]
}

func newTestModel(t *testing.T, g *scriptedGame, store *storage.Store) GameModel {
	t.Helper()
	m := NewGameModel(g, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}, Services{
		Store:  store,
		Player: "tester",
	})
	m.Init()
	return m
}

func update(t *testing.T, m GameModel, msg tea.Msg) GameModel {
	t.Helper()
	next, _ := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return gm
}

func TestGameModelInitResets(t *testing.T) {
	g := &scriptedGame{}
	newTestModel(t, g, nil)
	if g.resets != 1 {
		t.Errorf("resets = %d, expected 1", g.resets)
	}
}

func TestDirectionKeyIsHeld(t *testing.T) {
	g := &scriptedGame{}
	m := newTestModel(t, g, nil)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	hold := keyHoldTicks(60)
	for range hold {
		m = update(t, m, TickMsg{})
		if !g.lastInput().Has(core.ActionLeft) {
			t.Fatalf("tick %d: expected ActionLeft held", len(g.inputs))
		}
	}

	m = update(t, m, TickMsg{})
	if g.lastInput().Has(core.ActionLeft) {
		t.Error("ActionLeft should be released after the hold window")
	}

	// Opposite direction replaces the held one
	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	update(t, m, TickMsg{})
	in := g.lastInput()
	if in.Has(core.ActionLeft) || !in.Has(core.ActionRight) {
		t.Errorf("expected only ActionRight, got %v", in.Actions)
	}
}

func TestOneShotActionsLastOneTick(t *testing.T) {
	g := &scriptedGame{}
	m := newTestModel(t, g, nil)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}})
	m = update(t, m, TickMsg{})
	if !g.lastInput().Has(core.ActionPause) {
		t.Error("expected ActionPause on the next tick")
	}
	update(t, m, TickMsg{})
	if g.lastInput().Has(core.ActionPause) {
		t.Error("ActionPause should be cleared after one tick")
	}
}

func TestMouseMotionSetsPointer(t *testing.T) {
	g := &scriptedGame{}
	m := newTestModel(t, g, nil)

	m = update(t, m, tea.MouseMsg{X: 42, Y: 10, Action: tea.MouseActionMotion})
	m = update(t, m, TickMsg{})
	in := g.lastInput()
	if !in.HasPointer || in.Pointer != 42 {
		t.Errorf("pointer = (%d, %v), expected (42, true)", in.Pointer, in.HasPointer)
	}

	// The pointer stays put until the mouse moves or a key is pressed
	m = update(t, m, TickMsg{})
	if !g.lastInput().HasPointer {
		t.Error("pointer should persist across ticks")
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	update(t, m, TickMsg{})
	if g.lastInput().HasPointer {
		t.Error("keyboard input should release the pointer")
	}
}

func TestQuitAndBack(t *testing.T) {
	g := &scriptedGame{}
	m := newTestModel(t, g, nil)

	// Back is ignored while playing
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Error("back should be ignored during play")
	}

	g.state.GameOver = true
	m = update(t, m, TickMsg{})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("back should work after game over")
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if !next.(GameModel).IsQuitting() || cmd == nil {
		t.Error("ctrl+c should quit")
	}
}

func TestRunRecordedOncePerGameOver(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	g := &scriptedGame{state: core.GameState{Score: 120, Level: 2, Lives: 3, BricksDestroyed: 12}}
	m := newTestModel(t, g, store)

	for range 60 {
		m = update(t, m, TickMsg{})
	}

	g.state.Lives = 0
	g.state.GameOver = true
	g.events = []core.Event{core.EventLifeLost, core.EventGameOver}
	for range 10 {
		m = update(t, m, TickMsg{})
	}

	runs, err := store.RecentRuns("breakout", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	r := runs[0]
	if r.Score != 120 || r.Level != 2 || r.BricksDestroyed != 12 || r.Player != "tester" {
		t.Errorf("run = %+v", r)
	}
	if r.Duration.Seconds() != 1 {
		t.Errorf("duration = %v, expected 1s of play", r.Duration)
	}

	// The automatic restart starts a new playthrough
	g.state = core.GameState{Score: 0, Level: 1, Lives: 3}
	g.events = []core.Event{core.EventRestart}
	m = update(t, m, TickMsg{})

	g.state = core.GameState{Score: 30, Level: 1, GameOver: true}
	update(t, m, TickMsg{})

	scores, _ := store.TopScores("breakout", 10)
	if len(scores) != 2 {
		t.Errorf("expected 2 scores after second game over, got %d", len(scores))
	}
}

func TestZeroScoreNotRecorded(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	g := &scriptedGame{state: core.GameState{GameOver: true}}
	m := newTestModel(t, g, store)
	update(t, m, TickMsg{})

	if high, _ := store.HighScore("breakout"); high != 0 {
		t.Errorf("high score = %d, expected nothing recorded", high)
	}
}

func TestResizeUsesGameResize(t *testing.T) {
	g := &scriptedGame{}
	m := newTestModel(t, g, nil)

	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if g.resized != [2]int{120, 40} {
		t.Errorf("resized = %v, expected [120 40]", g.resized)
	}
	if g.resets != 1 {
		t.Errorf("resize should not reset, resets = %d", g.resets)
	}
	if !strings.HasPrefix(m.View(), "frame") {
		t.Errorf("view should start with the rendered frame, got %q", m.View()[:20])
	}
}

func TestMuteToggleFlashesStatus(t *testing.T) {
	g := &scriptedGame{}
	m := newTestModel(t, g, nil)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'m'}})
	if !strings.Contains(m.View(), "Sound") {
		t.Error("expected a sound status line")
	}
	for range statusTicks {
		m = update(t, m, TickMsg{})
	}
	if strings.Contains(m.View(), "Sound") {
		t.Error("status line should expire")
	}
}
