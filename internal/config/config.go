// Package config provides YAML-based game configuration loading,
// environment overrides and difficulty presets for Breakout.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-breakout/internal/gameplay"
)

// BreakoutConfig contains all configuration for the Breakout game.
// YAML keys come from the yaml tags; env tags are relative to the BREAKOUT_ prefix.
type BreakoutConfig struct {
	World    WorldConfig    `yaml:"world" envPrefix:"WORLD_"`
	Paddle   PaddleConfig   `yaml:"paddle" envPrefix:"PADDLE_"`
	Ball     BallConfig     `yaml:"ball" envPrefix:"BALL_"`
	Bricks   BricksConfig   `yaml:"bricks" envPrefix:"BRICKS_"`
	Gameplay GameplayConfig `yaml:"gameplay" envPrefix:"GAMEPLAY_"`
}

// WorldConfig defines the play area in world units.
type WorldConfig struct {
	Width  float64 `yaml:"width" env:"WIDTH"`
	Height float64 `yaml:"height" env:"HEIGHT"`
}

// PaddleConfig defines the paddle body and its movement limits.
type PaddleConfig struct {
	Width  float64 `yaml:"width" env:"WIDTH"`
	Height float64 `yaml:"height" env:"HEIGHT"`
	Y      float64 `yaml:"y" env:"Y"`
	MinX   float64 `yaml:"min_x" env:"MIN_X"`
	MaxX   float64 `yaml:"max_x" env:"MAX_X"`
	Speed  float64 `yaml:"speed" env:"SPEED"` // Units per second
}

// BallConfig defines the ball body and serve speeds.
type BallConfig struct {
	Size        float64 `yaml:"size" env:"SIZE"`
	StartX      float64 `yaml:"start_x" env:"START_X"`
	StartY      float64 `yaml:"start_y" env:"START_Y"`
	BaseSpeed   float64 `yaml:"base_speed" env:"BASE_SPEED"`
	SpeedStep   float64 `yaml:"speed_step" env:"SPEED_STEP"`
	MaxSpeed    float64 `yaml:"max_speed" env:"MAX_SPEED"`
	ServeSpeedX float64 `yaml:"serve_speed_x" env:"SERVE_SPEED_X"`
}

// BricksConfig defines the brick grid.
type BricksConfig struct {
	Rows    int     `yaml:"rows" env:"ROWS"`
	Cols    int     `yaml:"cols" env:"COLS"`
	Width   float64 `yaml:"width" env:"WIDTH"`
	Height  float64 `yaml:"height" env:"HEIGHT"`
	Padding float64 `yaml:"padding" env:"PADDING"`
	OffsetX float64 `yaml:"offset_x" env:"OFFSET_X"`
	OffsetY float64 `yaml:"offset_y" env:"OFFSET_Y"`

	// Pattern names a built-in brick pattern. Mask, when set, wins.
	Pattern string   `yaml:"pattern" env:"PATTERN"`
	Mask    []string `yaml:"mask"`
}

// GameplayConfig defines scoring, lives and timing.
type GameplayConfig struct {
	Lives         int           `yaml:"lives" env:"LIVES"`
	BrickPoints   int           `yaml:"brick_points" env:"BRICK_POINTS"`
	LevelBonus    int           `yaml:"level_bonus" env:"LEVEL_BONUS"`
	ServeDelay    time.Duration `yaml:"serve_delay" env:"SERVE_DELAY"`
	RestartDelay  time.Duration `yaml:"restart_delay" env:"RESTART_DELAY"`
	SpinFactor    float64       `yaml:"spin_factor" env:"SPIN_FACTOR"`
	CenterSpinMin float64       `yaml:"center_spin_min" env:"CENTER_SPIN_MIN"`
	CenterSpinMax float64       `yaml:"center_spin_max" env:"CENTER_SPIN_MAX"`
}

// Validate reports every setting that would make the game unplayable.
func (c BreakoutConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.World.Width > 0 && c.World.Height > 0, "world size must be positive, got %vx%v", c.World.Width, c.World.Height)
	check(c.Paddle.Width > 0 && c.Paddle.Height > 0, "paddle size must be positive")
	check(c.Paddle.MinX <= c.Paddle.MaxX, "paddle min_x %v exceeds max_x %v", c.Paddle.MinX, c.Paddle.MaxX)
	check(c.Ball.Size > 0, "ball size must be positive, got %v", c.Ball.Size)
	check(c.Ball.BaseSpeed > 0, "ball base_speed must be positive, got %v", c.Ball.BaseSpeed)
	check(c.Ball.SpeedStep >= 0, "ball speed_step must not be negative")
	check(c.Bricks.Rows > 0 && c.Bricks.Cols > 0, "brick grid must be at least 1x1, got %dx%d", c.Bricks.Rows, c.Bricks.Cols)
	check(c.Bricks.Width > 0 && c.Bricks.Height > 0, "brick size must be positive")
	check(c.Gameplay.Lives > 0, "lives must be positive, got %d", c.Gameplay.Lives)
	check(c.Gameplay.BrickPoints >= 0 && c.Gameplay.LevelBonus >= 0, "points must not be negative")
	check(c.Gameplay.ServeDelay >= 0 && c.Gameplay.RestartDelay >= 0, "delays must not be negative")
	check(c.Gameplay.CenterSpinMin <= c.Gameplay.CenterSpinMax, "center spin range is inverted")

	if len(errs) == 0 {
		errs = append(errs, c.checkGeometry()...)
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("config: invalid breakout config: %w", errors.Join(errs...))
}

// checkGeometry checks the placement of bodies once their sizes are known to be sane.
func (c BreakoutConfig) checkGeometry() []error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	half := c.Ball.Size / 2
	check(c.Ball.StartX-half >= 0 && c.Ball.StartX+half <= c.World.Width &&
		c.Ball.StartY-half >= 0 && c.Ball.StartY+half <= c.World.Height,
		"ball start (%v,%v) is outside the world", c.Ball.StartX, c.Ball.StartY)

	gridLeft := c.Bricks.OffsetX
	gridTop := c.Bricks.OffsetY
	gridRight := gridLeft + float64(c.Bricks.Cols)*(c.Bricks.Width+c.Bricks.Padding) - c.Bricks.Padding
	gridBottom := gridTop + float64(c.Bricks.Rows)*(c.Bricks.Height+c.Bricks.Padding) - c.Bricks.Padding

	overlaps := c.Ball.StartX+half > gridLeft && c.Ball.StartX-half < gridRight &&
		c.Ball.StartY+half > gridTop && c.Ball.StartY-half < gridBottom
	check(!overlaps, "ball start (%v,%v) lies inside the brick grid", c.Ball.StartX, c.Ball.StartY)

	check(c.Paddle.Y-c.Paddle.Height/2 > gridBottom,
		"paddle y %v must be below the last brick row (%v)", c.Paddle.Y, gridBottom)
	check(c.Paddle.Y+c.Paddle.Height/2 <= c.World.Height,
		"paddle y %v is outside the world", c.Paddle.Y)
	return errs
}

// Rules converts the config into the gameplay rule set.
func (c BreakoutConfig) Rules() gameplay.Rules {
	return gameplay.Rules{
		WorldWidth:   c.World.Width,
		WorldHeight:  c.World.Height,
		BallStartX:   c.Ball.StartX,
		BallStartY:   c.Ball.StartY,
		BaseSpeed:    c.Ball.BaseSpeed,
		SpeedStep:    c.Ball.SpeedStep,
		MaxSpeed:     c.Ball.MaxSpeed,
		ServeSpeedX:  c.Ball.ServeSpeedX,
		SpinFactor:   c.Gameplay.SpinFactor,
		CenterSpinLo: c.Gameplay.CenterSpinMin,
		CenterSpinHi: c.Gameplay.CenterSpinMax,
		Lives:        c.Gameplay.Lives,
		BrickPoints:  c.Gameplay.BrickPoints,
		LevelBonus:   c.Gameplay.LevelBonus,
		ServeDelay:   c.Gameplay.ServeDelay,
		RestartDelay: c.Gameplay.RestartDelay,
	}
}

// Layout converts the brick section into a grid layout.
// The named pattern is resolved by the game, not here.
func (c BreakoutConfig) Layout() gameplay.BrickLayout {
	return gameplay.BrickLayout{
		Rows:    c.Bricks.Rows,
		Cols:    c.Bricks.Cols,
		Width:   c.Bricks.Width,
		Height:  c.Bricks.Height,
		Padding: c.Bricks.Padding,
		OffsetX: c.Bricks.OffsetX,
		OffsetY: c.Bricks.OffsetY,
		Mask:    c.Bricks.Mask,
	}
}
