package breakout

import (
	"math"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Ball is the moving body. Position is the center, velocity is in units per second.
type Ball struct {
	X, Y   float64
	VX, VY float64
	Size   float64
}

// Box returns the ball's bounding box.
func (b *Ball) Box() core.Box {
	return core.NewBox(b.X, b.Y, b.Size, b.Size)
}

// Paddle is the immovable player body, positioned by its center.
type Paddle struct {
	X, Y float64
	W, H float64
}

// Box returns the paddle's bounding box.
func (p *Paddle) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.W, p.H)
}

// brickBody is the static collider of one brick.
type brickBody struct {
	box     core.Box
	enabled bool
}

// Side represents which side of the world the ball touched.
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
	SideTop
)

// bounceWalls keeps the ball inside the left, top and right bounds.
// The bottom is open.
func bounceWalls(b *Ball, width float64) Side {
	half := b.Size / 2

	switch {
	case b.X-half < 0:
		b.X = half
		b.VX = math.Abs(b.VX)
		return SideLeft
	case b.X+half > width:
		b.X = width - half
		b.VX = -math.Abs(b.VX)
		return SideRight
	case b.Y-half < 0:
		b.Y = half
		b.VY = math.Abs(b.VY)
		return SideTop
	}
	return SideNone
}

// hitPaddle separates a falling ball from the paddle and sends it back up.
// It reports whether contact happened; the horizontal speed is left to the caller.
func hitPaddle(b *Ball, p *Paddle) bool {
	if b.VY <= 0 {
		return false
	}
	if !b.Box().Intersects(p.Box()) {
		return false
	}
	b.Y = p.Box().Top() - b.Size/2
	b.VY = -math.Abs(b.VY)
	return true
}

// hitBrick separates the ball from a brick along the axis of least penetration
// and reflects the matching velocity component.
func hitBrick(b *Ball, brick core.Box) bool {
	dx, dy, ok := b.Box().Overlap(brick)
	if !ok {
		return false
	}

	if dx < dy {
		if b.X < brick.CX {
			b.X -= dx
			b.VX = -math.Abs(b.VX)
		} else {
			b.X += dx
			b.VX = math.Abs(b.VX)
		}
		return true
	}

	if b.Y < brick.CY {
		b.Y -= dy
		b.VY = -math.Abs(b.VY)
	} else {
		b.Y += dy
		b.VY = math.Abs(b.VY)
	}
	return true
}

// substeps splits a tick so the ball never moves more than half its size at once.
func substeps(b *Ball, dt float64) int {
	travel := math.Max(math.Abs(b.VX), math.Abs(b.VY)) * dt
	limit := b.Size / 2
	if limit <= 0 || travel <= limit {
		return 1
	}
	return int(math.Ceil(travel / limit))
}
