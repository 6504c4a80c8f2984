package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score           int
	Level           int
	Lives           int
	BricksDestroyed int  // Since the current playthrough started
	GameOver        bool // Whether the game has ended
	Paused          bool // Whether the player paused the game
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState

	// Events lists what happened during the tick, in order.
	Events []Event
}

// Event is a notable gameplay moment the platform may react to (sound, logs).
type Event int

const (
	EventPaddleHit Event = iota + 1
	EventBrickHit
	EventWallHit
	EventLifeLost
	EventLevelUp
	EventGameOver
	EventRestart
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventPaddleHit:
		return "paddle_hit"
	case EventBrickHit:
		return "brick_hit"
	case EventWallHit:
		return "wall_hit"
	case EventLifeLost:
		return "life_lost"
	case EventLevelUp:
		return "level_up"
	case EventGameOver:
		return "game_over"
	case EventRestart:
		return "restart"
	default:
		return "unknown"
	}
}
