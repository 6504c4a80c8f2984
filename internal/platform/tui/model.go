package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/audio"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

// Services are the shared dependencies of every screen. All are optional.
type Services struct {
	Store  *storage.Store
	Sounds *audio.SoundManager
	Logger *log.Logger
	Player string // recorded with each run
}

func (s Services) logger() *log.Logger {
	if s.Logger == nil {
		return log.New(io.Discard)
	}
	return s.Logger
}

// statusTicks is how long a status line stays on screen.
const statusTicks = 90

// resizer is implemented by games that can change screen size mid-session.
type resizer interface {
	Resize(w, h int)
}

// GameModel is the Bubble Tea model that drives one game.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	svc        Services
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper

	// Terminals report key presses but not releases, so a direction key
	// keeps the paddle moving for a few ticks.
	held      core.Action
	heldTicks int

	playTicks int
	recorded  bool // whether the current game over has been saved

	status      string
	statusTicks int

	quitting   bool
	backToMenu bool
}

// NewGameModel creates a model for game. The game is reset in Init.
func NewGameModel(game registry.Game, cfg core.RuntimeConfig, svc Services) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		svc:        svc,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// Init resets the game and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionMotion || msg.Action == tea.MouseActionPress {
			m.inputFrame.SetPointer(msg.X)
			m.heldTicks = 0
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case "m":
		if m.svc.Sounds.ToggleMute() {
			m.flash("Sound off")
		} else {
			m.flash("Sound on")
		}
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionBack:
		if m.gameState.GameOver || m.gameState.Paused {
			m.backToMenu = true
			return m, tea.Quit
		}
		return m, nil
	case core.ActionLeft, core.ActionRight:
		m.held = action
		m.heldTicks = keyHoldTicks(m.config.TickRate)
		m.inputFrame.HasPointer = false
		return m, nil
	}

	m.inputFrame.Set(action)
	return m, nil
}

// keyHoldTicks is how many ticks a single direction key press lasts.
func keyHoldTicks(tickRate int) int {
	return max(1, tickRate/8)
}

// handleResize processes window resize events.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick advances the simulation one step.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.heldTicks > 0 {
		m.inputFrame.Set(m.held)
		m.heldTicks--
	}

	wasOver := m.gameState.GameOver
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.svc.Sounds.HandleEvents(result.Events)

	for _, e := range result.Events {
		if e == core.EventRestart {
			m.playTicks = 0
			m.recorded = false
		}
	}
	if wasOver && !m.gameState.GameOver {
		m.recorded = false
	}

	if !m.gameState.GameOver && !m.gameState.Paused {
		m.playTicks++
	}
	if m.gameState.GameOver && !m.recorded {
		m.recordRun()
		m.recorded = true
	}

	if m.statusTicks > 0 {
		m.statusTicks--
	}

	// The pointer position persists between frames; actions do not
	pointer, hasPointer := m.inputFrame.Pointer, m.inputFrame.HasPointer
	m.inputFrame.Clear()
	if hasPointer {
		m.inputFrame.SetPointer(pointer)
	}

	return m, tickCmd(m.config.TickRate)
}

// recordRun stores the finished game. Empty games are not recorded.
func (m *GameModel) recordRun() {
	st := m.gameState
	if m.svc.Store == nil || st.Score <= 0 {
		return
	}

	logger := m.svc.logger()
	if _, err := m.svc.Store.SaveScore(m.game.ID(), st.Score); err != nil {
		logger.Warn("score not saved", "err", err)
	}

	id, err := m.svc.Store.SaveRun(storage.Run{
		GameID:          m.game.ID(),
		Player:          m.svc.Player,
		Score:           st.Score,
		Level:           st.Level,
		BricksDestroyed: st.BricksDestroyed,
		Duration:        m.playTime(),
	})
	if err != nil {
		logger.Warn("run not saved", "err", err)
		return
	}
	logger.Info("run recorded", "id", id, "score", st.Score, "level", st.Level, "player", m.svc.Player)
}

// playTime converts played ticks to wall time at the nominal tick rate.
func (m GameModel) playTime() time.Duration {
	return time.Duration(m.playTicks) * time.Second / time.Duration(m.config.TickRate)
}

func (m *GameModel) flash(msg string) {
	m.status = msg
	m.statusTicks = statusTicks
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.flash("Screenshot failed")
		return
	}
	dir := filepath.Join(home, ".breakout", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.flash("Screenshot failed")
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.svc.logger().Warn("screenshot not saved", "err", err)
		m.flash("Screenshot failed")
		return
	}
	m.flash("Screenshot saved")
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	if m.statusTicks > 0 {
		m.screen.DrawTextColored(1, m.screen.Height()-1, m.status, core.ColorGray)
	}

	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays game in the terminal until the player quits or goes back.
// It returns true when the player asked for the menu.
func Run(game registry.Game, cfg core.RuntimeConfig, svc Services) (backToMenu bool, err error) {
	model := NewGameModel(game, cfg, svc)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(GameModel)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
