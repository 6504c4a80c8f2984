package gameplay

import (
	"time"

	"github.com/charmbracelet/log"
)

// Label names a text element the host displays.
type Label int

const (
	LabelScore Label = iota
	LabelLevel
	LabelLives
	LabelMessage // Centered overlay; empty text hides it
)

// String returns a human-readable name for the label.
func (l Label) String() string {
	switch l {
	case LabelScore:
		return "score"
	case LabelLevel:
		return "level"
	case LabelLives:
		return "lives"
	case LabelMessage:
		return "message"
	default:
		return "unknown"
	}
}

// Token identifies a scheduled delayed action.
// Zero is never issued and means "nothing pending".
type Token uint64

// Collaborator executes the directives emitted by the controller.
// It is implemented by whatever owns physics, rendering and timers.
type Collaborator interface {
	SetBallVelocity(vx, vy float64)
	SetBallPosition(x, y float64)
	SetBrickCollider(id BrickID, enabled bool)
	SetText(label Label, text string)
	SetPhysicsPaused(paused bool)
	RestartScene()

	// Schedule asks the host to call Controller.OnTimerFired(token) after delay.
	Schedule(delay time.Duration, token Token)
	// Cancel drops a scheduled token. Unknown tokens are ignored.
	Cancel(token Token)
}

// tracer forwards directives and logs each one.
type tracer struct {
	next   Collaborator
	logger *log.Logger
}

// Trace wraps a collaborator so that every directive is logged at debug level.
func Trace(next Collaborator, logger *log.Logger) Collaborator {
	if logger == nil {
		return next
	}
	return &tracer{next: next, logger: logger}
}

func (t *tracer) SetBallVelocity(vx, vy float64) {
	t.logger.Debug("directive", "op", "set_velocity", "vx", vx, "vy", vy)
	t.next.SetBallVelocity(vx, vy)
}

func (t *tracer) SetBallPosition(x, y float64) {
	t.logger.Debug("directive", "op", "set_position", "x", x, "y", y)
	t.next.SetBallPosition(x, y)
}

func (t *tracer) SetBrickCollider(id BrickID, enabled bool) {
	t.logger.Debug("directive", "op", "brick_collider", "brick", id, "enabled", enabled)
	t.next.SetBrickCollider(id, enabled)
}

func (t *tracer) SetText(label Label, text string) {
	t.logger.Debug("directive", "op", "set_text", "label", label, "text", text)
	t.next.SetText(label, text)
}

func (t *tracer) SetPhysicsPaused(paused bool) {
	t.logger.Debug("directive", "op", "physics_paused", "paused", paused)
	t.next.SetPhysicsPaused(paused)
}

func (t *tracer) RestartScene() {
	t.logger.Debug("directive", "op", "restart_scene")
	t.next.RestartScene()
}

func (t *tracer) Schedule(delay time.Duration, token Token) {
	t.logger.Debug("directive", "op", "schedule", "delay", delay, "token", token)
	t.next.Schedule(delay, token)
}

func (t *tracer) Cancel(token Token) {
	t.logger.Debug("directive", "op", "cancel", "token", token)
	t.next.Cancel(token)
}
