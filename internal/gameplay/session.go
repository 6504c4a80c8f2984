// Package gameplay implements the rules of the brick breaker: scoring, lives,
// level progression and the serve/play/game-over state machine.
//
// The package knows nothing about rendering, input devices or how
// collisions are detected. The host reports events (ball hit paddle, ball
// hit brick, ball left the play area, timer fired) and the controller
// answers with directives on an injected Collaborator.
package gameplay

import "time"

// State is the phase of the gameplay state machine.
type State int

const (
	StateServing  State = iota // Ball resting at center, waiting for the serve timer
	StateInPlay                // Ball moving
	StateGameOver              // No lives left, waiting for the restart timer
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateServing:
		return "serving"
	case StateInPlay:
		return "in_play"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// GameSession is the authoritative counter state of one playthrough.
type GameSession struct {
	Score      int
	Level      int
	Lives      int
	BallInPlay bool
	State      State
}

// Rules holds the numeric policy of the game.
type Rules struct {
	WorldWidth  float64
	WorldHeight float64
	BallStartX  float64
	BallStartY  float64

	BaseSpeed    float64 // Vertical serve speed at level 1
	SpeedStep    float64 // Added per level above 1
	MaxSpeed     float64 // 0 = uncapped
	ServeSpeedX  float64 // Magnitude of the horizontal serve velocity
	SpinFactor   float64 // Paddle spin multiplier per unit of offset
	CenterSpinLo float64 // Dead-center spin range [lo, hi)
	CenterSpinHi float64

	Lives        int
	BrickPoints  int
	LevelBonus   int
	ServeDelay   time.Duration
	RestartDelay time.Duration
}

// DefaultRules returns the classic rule set.
func DefaultRules() Rules {
	return Rules{
		WorldWidth:   800,
		WorldHeight:  600,
		BallStartX:   400,
		BallStartY:   300,
		BaseSpeed:    350,
		SpeedStep:    35,
		ServeSpeedX:  150,
		SpinFactor:   10,
		CenterSpinLo: 2,
		CenterSpinHi: 10,
		Lives:        3,
		BrickPoints:  10,
		LevelBonus:   1000,
		ServeDelay:   1000 * time.Millisecond,
		RestartDelay: 2000 * time.Millisecond,
	}
}

// ServeSpeed returns the vertical serve speed for a level.
func (r Rules) ServeSpeed(level int) float64 {
	if level < 1 {
		level = 1
	}
	speed := r.BaseSpeed + r.SpeedStep*float64(level-1)
	if r.MaxSpeed > 0 && speed > r.MaxSpeed {
		speed = r.MaxSpeed
	}
	return speed
}
