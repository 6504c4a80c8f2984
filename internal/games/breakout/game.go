package breakout

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/gameplay"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset = config.DifficultyNormal

// logger receives gameplay logs; silent unless the CLI sets one.
var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names fall back to normal.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		logger.Warn("unknown difficulty, using normal", "preset", preset)
		p = config.DifficultyNormal
	}
	difficultyPreset = p
}

// SetLogger sets the logger used by new games.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Options selects per-game settings that override the loaded config.
type Options struct {
	Difficulty string // easy, normal or hard; empty keeps the CLI preset
	Pattern    string // built-in brick pattern ID; empty keeps the config's
}

// Game implements Breakout on top of the gameplay controller.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.BreakoutConfig
	pattern string

	difficulty      config.DifficultyPreset
	patternOverride string

	field *gameplay.BrickField
	world *World
	ctrl  *gameplay.Controller
	rng   *gameplay.SimpleRNG

	tick            uint64
	userPaused      bool
	bricksDestroyed int
	events          []core.Event

	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a new Breakout game instance using the CLI settings.
func New() *Game {
	return &Game{difficulty: difficultyPreset}
}

// NewWithOptions creates a game whose difficulty and pattern are chosen
// by the player rather than the CLI.
func NewWithOptions(opts Options) *Game {
	g := New()
	if opts.Difficulty != "" {
		if p, err := config.ParsePreset(opts.Difficulty); err == nil {
			g.difficulty = p
		} else {
			logger.Warn("unknown difficulty, using default", "preset", opts.Difficulty)
		}
	}
	if opts.Pattern != "" {
		if _, ok := PatternByID(opts.Pattern); ok {
			g.patternOverride = opts.Pattern
		} else {
			logger.Warn("unknown brick pattern ignored", "pattern", opts.Pattern)
		}
	}
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "breakout"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Breakout"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = 60
	}
	g.runtime = runtime
	g.cfg = loadConfig(g.difficulty)
	if g.patternOverride != "" {
		g.cfg.Bricks.Pattern = g.patternOverride
		g.cfg.Bricks.Mask = nil
	}

	g.minScreenW = 30
	g.minScreenH = 15
	g.checkScreen()

	layout := g.cfg.Layout()
	layout.Mask, g.pattern = resolveMask(layout, g.cfg.Bricks)

	g.field = gameplay.NewBrickField(layout)
	g.world = NewWorld(g.cfg, g.field)
	g.rng = gameplay.NewSimpleRNG(runtime.Seed)
	g.ctrl = gameplay.NewController(
		g.cfg.Rules(),
		g.field,
		gameplay.Trace(g.world, logger),
		g.rng,
		logger,
	)

	g.tick = 0
	g.userPaused = false
	g.bricksDestroyed = 0
	g.events = g.events[:0]

	logger.Info("new game", "bricks", g.field.Len(), "pattern", g.pattern,
		"difficulty", g.difficulty, "seed", runtime.Seed)

	g.ctrl.Start()
}

// Resize adapts to a new terminal size without restarting the session.
// The world has fixed dimensions; only the projection onto the screen changes.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.checkScreen()
}

func (g *Game) checkScreen() {
	g.screenTooSmall = g.runtime.ScreenW < g.minScreenW || g.runtime.ScreenH < g.minScreenH
}

// loadConfig loads, adjusts and validates the config, falling back to defaults.
func loadConfig(preset config.DifficultyPreset) config.BreakoutConfig {
	cfg, err := config.LoadBreakout(configPath)
	if err != nil {
		logger.Warn("config not loaded, using defaults", "err", err)
		cfg = config.DefaultBreakoutConfig()
	}

	config.ApplyBreakoutPreset(&cfg, preset)

	if err := cfg.Validate(); err != nil {
		logger.Warn("config rejected, using defaults", "err", err)
		cfg = config.DefaultBreakoutConfig()
		config.ApplyBreakoutPreset(&cfg, preset)
	}
	return cfg
}

// resolveMask picks the brick mask: an explicit mask, else the named pattern,
// else the full grid. A mask that does not fit the grid is skipped.
func resolveMask(layout gameplay.BrickLayout, b config.BricksConfig) ([]string, string) {
	fits := func(mask []string) error {
		l := layout
		l.Mask = mask
		return l.Check()
	}

	if len(b.Mask) > 0 {
		mask, err := ParseMask(b.Mask)
		if err == nil {
			err = fits(mask)
		}
		if err == nil {
			return mask, "custom"
		}
		logger.Warn("brick mask ignored", "err", err)
	}

	p, ok := PatternByID(b.Pattern)
	if !ok {
		if b.Pattern != "" {
			logger.Warn("unknown brick pattern, using classic", "pattern", b.Pattern)
		}
		p, _ = PatternByID("classic")
	}
	if err := fits(p.Mask); err != nil {
		logger.Warn("brick pattern does not fit the grid, using classic", "pattern", p.ID, "err", err)
		p, _ = PatternByID("classic")
	}
	return p.Mask, p.ID
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = g.events[:0]

	if g.screenTooSmall {
		return g.result()
	}

	// Handle restart
	if in.Has(core.ActionRestart) {
		g.Reset(g.runtime)
		g.events = append(g.events, core.EventRestart)
		return g.result()
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) && g.ctrl.Session().State != gameplay.StateGameOver {
		g.userPaused = !g.userPaused
	}
	if g.userPaused {
		return g.result()
	}

	g.tick++
	dt := time.Second / time.Duration(g.runtime.TickRate)

	if !g.world.physicsPaused {
		g.updatePaddle(in, dt.Seconds())
		g.updateBall(dt.Seconds())
	}

	// Timers keep running while physics is paused so the restart can fire
	for _, token := range g.world.timers.Advance(dt) {
		g.observe(func() { g.ctrl.OnTimerFired(token) })
	}

	return g.result()
}

// updatePaddle moves the paddle from keys or the mouse pointer.
func (g *Game) updatePaddle(in core.InputFrame, dt float64) {
	if in.HasPointer {
		g.world.SetPaddleX(g.pointerToWorld(in.Pointer))
		return
	}
	step := g.world.paddleSpeed * dt
	if in.Has(core.ActionLeft) {
		g.world.MovePaddle(-step)
	}
	if in.Has(core.ActionRight) {
		g.world.MovePaddle(step)
	}
}

// pointerToWorld converts a screen column to a world x coordinate.
func (g *Game) pointerToWorld(col int) float64 {
	return (float64(col) + 0.5) * g.world.Width / float64(g.runtime.ScreenW)
}

// updateBall integrates the ball and reports contacts to the controller.
func (g *Game) updateBall(dt float64) {
	ball := &g.world.ball
	steps := substeps(ball, dt)
	h := dt / float64(steps)

	for range steps {
		ball.X += ball.VX * h
		ball.Y += ball.VY * h

		if bounceWalls(ball, g.world.Width) != SideNone {
			g.events = append(g.events, core.EventWallHit)
		}

		if hitPaddle(ball, &g.world.paddle) {
			ball.VX = g.ctrl.OnBallHitsPaddle(ball.X, g.world.paddle.X)
			g.events = append(g.events, core.EventPaddleHit)
		}

		// A parked ball must stay where the serve put it
		if g.ctrl.Session().State == gameplay.StateInPlay && g.collideBricks() {
			// The level was cleared and the ball parked for the next serve
			return
		}

		if g.world.BallOut() {
			g.observe(g.ctrl.OnBallLeavesPlayArea)
			return
		}
	}
}

// collideBricks resolves contacts with every enabled brick.
// It returns true when a hit ended the rally.
func (g *Game) collideBricks() bool {
	ball := &g.world.ball
	for i := range g.world.bricks {
		body := &g.world.bricks[i]
		if !body.enabled || !hitBrick(ball, body.box) {
			continue
		}

		id := gameplay.BrickID(i)
		var counted bool
		g.observe(func() {
			var err error
			counted, err = g.ctrl.OnBallHitsBrick(id)
			if err != nil {
				logger.Error("brick hit failed", "brick", id, "err", err)
			}
		})
		if counted {
			g.bricksDestroyed++
			g.events = append(g.events, core.EventBrickHit)
		}
		if g.ctrl.Session().State != gameplay.StateInPlay {
			return true
		}
	}
	return false
}

// observe runs a controller call and turns session changes into events.
func (g *Game) observe(call func()) {
	before := g.ctrl.Session()
	call()
	after := g.ctrl.Session()

	if after.Lives < before.Lives {
		g.events = append(g.events, core.EventLifeLost)
	}
	if after.Level > before.Level {
		g.events = append(g.events, core.EventLevelUp)
	}
	if after.State == gameplay.StateGameOver && before.State != gameplay.StateGameOver {
		g.events = append(g.events, core.EventGameOver)
		snap := g.Snapshot()
		logger.Debug("final state", "tick", snap.Tick, "bricks_left", snap.AliveBricks(),
			"hash", fmt.Sprintf("%016x", snap.Hash()))
	}
	if before.State == gameplay.StateGameOver && after.State != gameplay.StateGameOver {
		g.bricksDestroyed = 0
		g.events = append(g.events, core.EventRestart)
	}
}

func (g *Game) result() core.StepResult {
	events := make([]core.Event, len(g.events))
	copy(events, g.events)
	return core.StepResult{State: g.State(), Events: events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.ctrl == nil {
		return core.GameState{}
	}
	s := g.ctrl.Session()
	return core.GameState{
		Score:           s.Score,
		Level:           s.Level,
		Lives:           s.Lives,
		BricksDestroyed: g.bricksDestroyed,
		GameOver:        s.State == gameplay.StateGameOver,
		Paused:          g.userPaused,
	}
}

// Session returns the controller's session counters.
func (g *Game) Session() gameplay.GameSession {
	return g.ctrl.Session()
}

// Pattern returns the ID of the brick pattern in play, or "custom".
func (g *Game) Pattern() string {
	return g.pattern
}

// Difficulty returns the difficulty preset in use.
func (g *Game) Difficulty() config.DifficultyPreset {
	return g.difficulty
}

// World returns the physics world, for inspection in tests and tools.
func (g *Game) World() *World {
	return g.world
}

// Register the game with the registry
func init() {
	registry.Register("breakout", func() registry.Game {
		return New()
	})
}
