package breakout

import (
	"time"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/gameplay"
)

// World owns the bodies, labels and timers the controller steers.
// It implements gameplay.Collaborator.
type World struct {
	Width, Height float64

	ball   Ball
	paddle Paddle
	bricks []brickBody

	paddleHome  float64
	paddleMinX  float64
	paddleMaxX  float64
	paddleSpeed float64

	labels        map[gameplay.Label]string
	physicsPaused bool
	timers        *gameplay.Scheduler
	restarts      int
}

var _ gameplay.Collaborator = (*World)(nil)

// NewWorld builds the bodies from config and the brick field geometry.
func NewWorld(cfg config.BreakoutConfig, field *gameplay.BrickField) *World {
	w := &World{
		Width:  cfg.World.Width,
		Height: cfg.World.Height,
		ball: Ball{
			X:    cfg.Ball.StartX,
			Y:    cfg.Ball.StartY,
			Size: cfg.Ball.Size,
		},
		paddle: Paddle{
			X: cfg.World.Width / 2,
			Y: cfg.Paddle.Y,
			W: cfg.Paddle.Width,
			H: cfg.Paddle.Height,
		},
		paddleHome:  cfg.World.Width / 2,
		paddleMinX:  cfg.Paddle.MinX,
		paddleMaxX:  cfg.Paddle.MaxX,
		paddleSpeed: cfg.Paddle.Speed,
		labels:      make(map[gameplay.Label]string),
		timers:      gameplay.NewScheduler(),
	}

	for _, b := range field.Bricks() {
		w.bricks = append(w.bricks, brickBody{
			box:     core.NewBox(b.X+b.W/2, b.Y+b.H/2, b.W, b.H),
			enabled: b.Alive,
		})
	}
	return w
}

func (w *World) SetBallVelocity(vx, vy float64) {
	w.ball.VX, w.ball.VY = vx, vy
}

func (w *World) SetBallPosition(x, y float64) {
	w.ball.X, w.ball.Y = x, y
}

func (w *World) SetBrickCollider(id gameplay.BrickID, enabled bool) {
	if id < 0 || int(id) >= len(w.bricks) {
		return
	}
	w.bricks[id].enabled = enabled
}

func (w *World) SetText(label gameplay.Label, text string) {
	w.labels[label] = text
}

func (w *World) SetPhysicsPaused(paused bool) {
	w.physicsPaused = paused
}

// RestartScene puts the paddle back in the middle and drops pending timers.
func (w *World) RestartScene() {
	w.restarts++
	w.paddle.X = w.paddleHome
	w.timers.Clear()
}

func (w *World) Schedule(delay time.Duration, token gameplay.Token) {
	w.timers.Schedule(delay, token)
}

func (w *World) Cancel(token gameplay.Token) {
	w.timers.Cancel(token)
}

// Label returns the current text of a HUD label.
func (w *World) Label(l gameplay.Label) string {
	return w.labels[l]
}

// PhysicsPaused reports whether bodies are frozen.
func (w *World) PhysicsPaused() bool {
	return w.physicsPaused
}

// Ball returns a copy of the ball body.
func (w *World) Ball() Ball {
	return w.ball
}

// Paddle returns a copy of the paddle body.
func (w *World) Paddle() Paddle {
	return w.paddle
}

// BrickEnabled reports whether the brick still collides.
func (w *World) BrickEnabled(id gameplay.BrickID) bool {
	if id < 0 || int(id) >= len(w.bricks) {
		return false
	}
	return w.bricks[id].enabled
}

// Restarts returns how many times the scene was restarted.
func (w *World) Restarts() int {
	return w.restarts
}

// Timers exposes the scheduler that delivers delayed actions.
func (w *World) Timers() *gameplay.Scheduler {
	return w.timers
}

// MovePaddle shifts the paddle by dx, clamped to its track.
func (w *World) MovePaddle(dx float64) {
	w.SetPaddleX(w.paddle.X + dx)
}

// SetPaddleX places the paddle center at x, clamped to its track.
func (w *World) SetPaddleX(x float64) {
	w.paddle.X = core.ClampF(x, w.paddleMinX, w.paddleMaxX)
}

// BallOut reports whether the ball passed the open bottom bound.
func (w *World) BallOut() bool {
	return w.ball.Y > w.Height
}
