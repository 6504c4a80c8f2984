package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m SessionModel, msgs ...tea.Msg) SessionModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		sm, ok := next.(SessionModel)
		if !ok {
			t.Fatalf("Update returned %T", next)
		}
		m = sm
	}
	return m
}

func newTestSession(t *testing.T) SessionModel {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	cfg := core.RuntimeConfig{ScreenW: 100, ScreenH: 30, TickRate: 60, Seed: 7}
	return NewSessionModel(Services{Store: store, Player: "guest"}, cfg, "test-session")
}

func TestSessionMenuToGame(t *testing.T) {
	m := newTestSession(t)
	if !strings.Contains(m.View(), "B R E A K O U T") {
		t.Fatal("session should open on the title menu")
	}

	m = send(t, m, keyMsg("enter"))
	if m.screen != screenSetup {
		t.Fatalf("screen = %v, expected setup", m.screen)
	}

	m = send(t, m, keyMsg("enter"))
	if m.screen != screenGame {
		t.Fatalf("screen = %v, expected game", m.screen)
	}

	m = send(t, m, TickMsg{})
	if !strings.Contains(m.View(), "Score: 0") {
		t.Error("game view should show the HUD")
	}

	// Pause, then back to the menu
	m = send(t, m, keyMsg("p"), TickMsg{}, keyMsg("esc"))
	if m.screen != screenMenu {
		t.Errorf("screen = %v, expected menu after back", m.screen)
	}
}

func TestSessionSetupBack(t *testing.T) {
	m := newTestSession(t)
	m = send(t, m, keyMsg("enter"), keyMsg("esc"))
	if m.screen != screenMenu {
		t.Errorf("screen = %v, expected menu", m.screen)
	}
}

func TestSessionScores(t *testing.T) {
	m := newTestSession(t)
	m = send(t, m, keyMsg("tab"))
	if m.screen != screenScores {
		t.Fatalf("screen = %v, expected scores", m.screen)
	}
	if !strings.Contains(m.View(), "HIGH SCORES") {
		t.Error("scores view should show the title")
	}

	m = send(t, m, keyMsg("esc"))
	if m.screen != screenMenu {
		t.Errorf("screen = %v, expected menu", m.screen)
	}
}

func TestSessionQuit(t *testing.T) {
	m := newTestSession(t)
	next, cmd := m.Update(keyMsg("q"))
	sm := next.(SessionModel)
	if !sm.quitting || cmd == nil {
		t.Error("q should quit the session")
	}
	if sm.View() != "" {
		t.Error("quitting session should render nothing")
	}
}

func TestSetupSelection(t *testing.T) {
	m := NewSetupModel(80, 24, breakout.Options{Difficulty: "hard", Pattern: "checker"})

	sel := func(m SetupModel) (string, string) {
		next, _ := m.Update(keyMsg("enter"))
		s := next.(SetupModel).Selected()
		if s == nil {
			t.Fatal("expected a selection")
		}
		return s.Difficulty, s.Pattern
	}

	if d, p := sel(m); d != "hard" || p != "checker" {
		t.Errorf("defaults = %s/%s, expected hard/checker", d, p)
	}

	// Move to difficulty and wrap past the last preset
	next, _ := m.Update(keyMsg("up"))
	next, _ = next.Update(keyMsg("up"))
	next, _ = next.Update(keyMsg("right"))
	next, _ = next.Update(keyMsg("down"))
	next, _ = next.Update(keyMsg("down"))
	if d, _ := sel(next.(SetupModel)); d != "easy" {
		t.Errorf("difficulty = %s, expected wrap to easy", d)
	}

	if !strings.Contains(m.View(), "Checkerboard") {
		t.Error("view should name the selected pattern")
	}
}

func TestScoreboardSwitchView(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveScore("breakout", 1400)                                                    //nolint:errcheck // test setup
	store.SaveRun(storage.Run{GameID: "breakout", Player: "ann", Score: 1400, Level: 2}) //nolint:errcheck // test setup

	m := NewScoreboardModel(Services{Store: store}, 100, 30)
	view := m.View()
	if !strings.Contains(view, "1400") || !strings.Contains(view, "Stats") {
		t.Errorf("top scores view missing data:\n%s", view)
	}

	next, _ := m.Update(keyMsg("tab"))
	view = next.View()
	if !strings.Contains(view, "RECENT RUNS") || !strings.Contains(view, "ann") {
		t.Errorf("recent runs view missing data:\n%s", view)
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		secs int
		want string
	}{
		{0, "0:00"},
		{65, "1:05"},
		{3725, "1:02:05"},
	}
	for _, tc := range tests {
		if got := formatDuration(time.Duration(tc.secs) * time.Second); got != tc.want {
			t.Errorf("formatDuration(%ds) = %q, expected %q", tc.secs, got, tc.want)
		}
	}
}
