package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the built-in Breakout configuration.
// It matches defaults/breakout.yaml and is used when the embedded file cannot be parsed.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		World: WorldConfig{
			Width:  800,
			Height: 600,
		},
		Paddle: PaddleConfig{
			Width:  100,
			Height: 20,
			Y:      550,
			MinX:   50,
			MaxX:   750,
			Speed:  600,
		},
		Ball: BallConfig{
			Size:        20,
			StartX:      400,
			StartY:      300,
			BaseSpeed:   350,
			SpeedStep:   35,
			MaxSpeed:    0,
			ServeSpeedX: 150,
		},
		Bricks: BricksConfig{
			Rows:    4,
			Cols:    10,
			Width:   64,
			Height:  32,
			Padding: 10,
			OffsetX: 60,
			OffsetY: 100,
			Pattern: "classic",
		},
		Gameplay: GameplayConfig{
			Lives:         3,
			BrickPoints:   10,
			LevelBonus:    1000,
			ServeDelay:    time.Second,
			RestartDelay:  2 * time.Second,
			SpinFactor:    10,
			CenterSpinMin: 2,
			CenterSpinMax: 10,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "breakout":
		return defaultBreakoutYAML
	default:
		return nil
	}
}
