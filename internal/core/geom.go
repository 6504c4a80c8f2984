// Package core holds the types shared by games and the terminal platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect represents an axis-aligned cell rectangle on a Screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Box is an axis-aligned bounding box in world units, positioned by its center.
type Box struct {
	CX, CY float64 // Center
	HW, HH float64 // Half extents
}

// NewBox creates a box centered at (cx, cy) with full width w and height h.
func NewBox(cx, cy, w, h float64) Box {
	return Box{CX: cx, CY: cy, HW: w / 2, HH: h / 2}
}

// Left returns the x-coordinate of the left edge.
func (b Box) Left() float64 { return b.CX - b.HW }

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 { return b.CX + b.HW }

// Top returns the y-coordinate of the top edge.
func (b Box) Top() float64 { return b.CY - b.HH }

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 { return b.CY + b.HH }

// Overlap returns how far two boxes penetrate on each axis.
// Touching edges do not count as overlap.
func (b Box) Overlap(other Box) (dx, dy float64, ok bool) {
	dx = b.HW + other.HW - absF(b.CX-other.CX)
	dy = b.HH + other.HH - absF(b.CY-other.CY)
	if dx <= 0 || dy <= 0 {
		return 0, 0, false
	}
	return dx, dy, true
}

// Intersects returns true if the two boxes overlap.
func (b Box) Intersects(other Box) bool {
	_, _, ok := b.Overlap(other)
	return ok
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

func absF(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
