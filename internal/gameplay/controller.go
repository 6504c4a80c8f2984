package gameplay

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// Controller owns the game session and applies the rules to events
// reported by the host. All methods must be called from a single goroutine.
type Controller struct {
	rules   Rules
	session GameSession
	field   *BrickField
	out     Collaborator
	rng     RNG
	logger  *log.Logger

	lastToken      Token
	pendingServe   Token
	pendingRestart Token
}

// NewController creates a controller for a fresh session.
// Call Start to publish the initial state and schedule the first serve.
func NewController(rules Rules, field *BrickField, out Collaborator, rng RNG, logger *log.Logger) *Controller {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if rng == nil {
		rng = NewSimpleRNG(1)
	}

	return &Controller{
		rules: rules,
		session: GameSession{
			Score: 0,
			Level: 1,
			Lives: rules.Lives,
			State: StateServing,
		},
		field:  field,
		out:    out,
		rng:    rng,
		logger: logger,
	}
}

// Start publishes every label and schedules the opening serve.
func (c *Controller) Start() {
	c.publishAll()
	c.ResetBall(false)
}

// Session returns a copy of the current session counters.
func (c *Controller) Session() GameSession {
	return c.session
}

// Field returns the brick field owned by the session.
func (c *Controller) Field() *BrickField {
	return c.field
}

// Rules returns the rule set in use.
func (c *Controller) Rules() Rules {
	return c.rules
}

// OnBallLeavesPlayArea handles the ball passing the bottom bound.
// Only a ball in play can be lost.
func (c *Controller) OnBallLeavesPlayArea() {
	if c.session.State != StateInPlay {
		return
	}
	c.LoseLife()
}

// OnBallHitsPaddle returns the horizontal velocity the ball leaves the paddle with.
// The further from the paddle center, the harder the spin; a dead-center hit
// gets a small random push so the ball never stalls vertically.
func (c *Controller) OnBallHitsPaddle(ballX, paddleX float64) float64 {
	switch {
	case ballX < paddleX:
		return -c.rules.SpinFactor * (paddleX - ballX)
	case ballX > paddleX:
		return c.rules.SpinFactor * (ballX - paddleX)
	default:
		lo, hi := c.rules.CenterSpinLo, c.rules.CenterSpinHi
		return lo + c.rng.Float64()*(hi-lo)
	}
}

// OnBallHitsBrick destroys a brick. It returns true when the hit counted.
// Hits outside of play and repeated hits on a dead brick are ignored.
func (c *Controller) OnBallHitsBrick(id BrickID) (bool, error) {
	if c.session.State != StateInPlay {
		c.logger.Debug("brick hit ignored", "brick", id, "state", c.session.State)
		return false, nil
	}

	killed, err := c.field.MarkDead(id)
	if err != nil {
		if errors.Is(err, ErrUnknownBrick) {
			c.logger.Warn("brick hit rejected", "brick", id, "err", err)
		}
		return false, err
	}
	if !killed {
		return false, nil
	}

	c.out.SetBrickCollider(id, false)
	c.session.Score += c.rules.BrickPoints
	c.publishScore()

	if c.field.AliveCount() == 0 {
		c.LevelUp()
	}
	return true, nil
}

// LoseLife takes a life away and either re-serves or ends the game.
func (c *Controller) LoseLife() {
	if c.session.State == StateGameOver {
		return
	}

	c.session.Lives--
	if c.session.Lives < 0 {
		c.session.Lives = 0
	}
	c.publishLives()

	if c.session.Lives == 0 {
		c.GameOver()
		return
	}
	c.ResetBall(false)
}

// LevelUp advances to the next level, awards the clear bonus and rebuilds the field.
func (c *Controller) LevelUp() {
	c.session.Level++
	c.session.Score += c.rules.LevelBonus
	c.publishLevel()
	c.publishScore()

	c.field.Reset()
	c.enableAllBricks()

	c.logger.Info("level cleared", "level", c.session.Level, "score", c.session.Score)
	c.ResetBall(false)
}

// ResetBall parks the ball at the start position. Unless immediate, the
// serve happens after the serve delay; any serve already pending is superseded.
func (c *Controller) ResetBall(immediate bool) {
	c.session.BallInPlay = false
	c.session.State = StateServing
	c.out.SetBallPosition(c.rules.BallStartX, c.rules.BallStartY)
	c.out.SetBallVelocity(0, 0)

	c.cancelServe()
	if immediate {
		c.launch()
		return
	}
	c.pendingServe = c.nextToken()
	c.out.Schedule(c.rules.ServeDelay, c.pendingServe)
}

// GameOver freezes play, shows the terminal message and schedules a full restart.
func (c *Controller) GameOver() {
	c.session.State = StateGameOver
	c.session.BallInPlay = false
	c.cancelServe()

	c.out.SetPhysicsPaused(true)
	c.out.SetText(LabelMessage, "GAME OVER")

	c.logger.Info("game over", "score", c.session.Score, "level", c.session.Level)

	if c.pendingRestart != 0 {
		c.out.Cancel(c.pendingRestart)
	}
	c.pendingRestart = c.nextToken()
	c.out.Schedule(c.rules.RestartDelay, c.pendingRestart)
}

// OnTimerFired applies the delayed action bound to token.
// Tokens that were cancelled or superseded are stale and ignored.
func (c *Controller) OnTimerFired(token Token) bool {
	switch {
	case token == 0:
		return false
	case token == c.pendingServe:
		c.pendingServe = 0
		if c.session.State != StateServing {
			return false
		}
		c.launch()
		return true
	case token == c.pendingRestart:
		c.pendingRestart = 0
		c.restart()
		return true
	default:
		c.logger.Debug("stale timer ignored", "token", token)
		return false
	}
}

// PendingServe returns the token of the scheduled serve, or 0.
func (c *Controller) PendingServe() Token {
	return c.pendingServe
}

// PendingRestart returns the token of the scheduled restart, or 0.
func (c *Controller) PendingRestart() Token {
	return c.pendingRestart
}

// launch sends the ball off in a random horizontal direction.
func (c *Controller) launch() {
	vx := c.rules.ServeSpeedX
	if c.rng.Float64() < 0.5 {
		vx = -vx
	}
	vy := -c.rules.ServeSpeed(c.session.Level)

	c.out.SetBallVelocity(vx, vy)
	c.session.BallInPlay = true
	c.session.State = StateInPlay
}

// restart wipes the session back to its opening state.
func (c *Controller) restart() {
	c.session = GameSession{
		Score: 0,
		Level: 1,
		Lives: c.rules.Lives,
		State: StateServing,
	}
	c.field.Reset()

	c.out.RestartScene()
	c.out.SetPhysicsPaused(false)
	c.out.SetText(LabelMessage, "")
	c.enableAllBricks()
	c.publishAll()

	c.logger.Info("session restarted")
	c.ResetBall(false)
}

func (c *Controller) cancelServe() {
	if c.pendingServe == 0 {
		return
	}
	c.out.Cancel(c.pendingServe)
	c.pendingServe = 0
}

func (c *Controller) nextToken() Token {
	c.lastToken++
	return c.lastToken
}

func (c *Controller) enableAllBricks() {
	for _, b := range c.field.bricks {
		c.out.SetBrickCollider(b.ID, true)
	}
}

func (c *Controller) publishAll() {
	c.publishScore()
	c.publishLevel()
	c.publishLives()
}

func (c *Controller) publishScore() {
	c.out.SetText(LabelScore, fmt.Sprintf("Score: %d", c.session.Score))
}

func (c *Controller) publishLevel() {
	c.out.SetText(LabelLevel, fmt.Sprintf("Level: %d", c.session.Level))
}

func (c *Controller) publishLives() {
	c.out.SetText(LabelLives, fmt.Sprintf("Lives: %d", c.session.Lives))
}
