package gameplay

import (
	"errors"
	"fmt"
)

// ErrUnknownBrick is returned when a hit references a brick that is not in the field.
var ErrUnknownBrick = errors.New("gameplay: unknown brick")

// ErrEmptyField is returned for a layout that places no brick on its grid.
var ErrEmptyField = errors.New("gameplay: brick layout has no bricks")

// BrickID identifies a brick within a field. IDs are stable for the field's lifetime.
type BrickID int

// Brick is a single destructible brick with a fixed grid slot and world rectangle.
type Brick struct {
	ID    BrickID
	Row   int
	Col   int
	X, Y  float64 // Top-left corner in world units
	W, H  float64
	Alive bool
}

// CenterX returns the horizontal center of the brick.
func (b Brick) CenterX() float64 {
	return b.X + b.W/2
}

// BrickLayout describes the brick grid of a level.
type BrickLayout struct {
	Rows    int
	Cols    int
	Width   float64
	Height  float64
	Padding float64
	OffsetX float64
	OffsetY float64

	// Mask optionally restricts which grid slots hold a brick.
	// '#' (or any non '.' / ' ') marks a brick. Rows beyond the mask are full.
	Mask []string
}

// DefaultBrickLayout returns the classic 4x10 grid.
func DefaultBrickLayout() BrickLayout {
	return BrickLayout{
		Rows:    4,
		Cols:    10,
		Width:   64,
		Height:  32,
		Padding: 10,
		OffsetX: 60,
		OffsetY: 100,
	}
}

// hasBrick reports whether the mask places a brick at (row, col).
func (l BrickLayout) hasBrick(row, col int) bool {
	if row >= len(l.Mask) {
		return true
	}
	line := l.Mask[row]
	if col >= len(line) {
		return false
	}
	return line[col] != '.' && line[col] != ' '
}

// Check reports whether the mask fits the grid and places at least one brick.
// A field without bricks could never be cleared.
func (l BrickLayout) Check() error {
	if len(l.Mask) > l.Rows {
		return fmt.Errorf("gameplay: mask has %d rows, grid has %d", len(l.Mask), l.Rows)
	}
	for row, line := range l.Mask {
		if len(line) > l.Cols {
			return fmt.Errorf("gameplay: mask row %d is %d wide, grid has %d columns", row, len(line), l.Cols)
		}
	}
	for r := range l.Rows {
		for c := range l.Cols {
			if l.hasBrick(r, c) {
				return nil
			}
		}
	}
	return ErrEmptyField
}

// BrickField tracks the alive/dead status of every brick in the current level.
type BrickField struct {
	bricks []Brick
	alive  int
}

// NewBrickField builds a field from the layout with every brick alive.
func NewBrickField(layout BrickLayout) *BrickField {
	f := &BrickField{
		bricks: make([]Brick, 0, layout.Rows*layout.Cols),
	}

	for r := range layout.Rows {
		for c := range layout.Cols {
			if !layout.hasBrick(r, c) {
				continue
			}
			f.bricks = append(f.bricks, Brick{
				ID:    BrickID(len(f.bricks)),
				Row:   r,
				Col:   c,
				X:     float64(c)*(layout.Width+layout.Padding) + layout.OffsetX,
				Y:     float64(r)*(layout.Height+layout.Padding) + layout.OffsetY,
				W:     layout.Width,
				H:     layout.Height,
				Alive: true,
			})
		}
	}
	f.alive = len(f.bricks)

	return f
}

// Reset marks every brick alive again.
func (f *BrickField) Reset() {
	for i := range f.bricks {
		f.bricks[i].Alive = true
	}
	f.alive = len(f.bricks)
}

// MarkDead kills a brick. It returns true only when the brick was alive,
// so repeated hits on the same brick are reported once.
func (f *BrickField) MarkDead(id BrickID) (bool, error) {
	if id < 0 || int(id) >= len(f.bricks) {
		return false, fmt.Errorf("%w: %d", ErrUnknownBrick, id)
	}

	b := &f.bricks[id]
	if !b.Alive {
		return false, nil
	}
	b.Alive = false
	f.alive--
	return true, nil
}

// AliveCount returns the number of bricks still standing.
func (f *BrickField) AliveCount() int {
	return f.alive
}

// Len returns the total number of bricks in the field.
func (f *BrickField) Len() int {
	return len(f.bricks)
}

// Brick returns the brick with the given id.
func (f *BrickField) Brick(id BrickID) (Brick, bool) {
	if id < 0 || int(id) >= len(f.bricks) {
		return Brick{}, false
	}
	return f.bricks[id], true
}

// Bricks returns a copy of all bricks in grid order.
func (f *BrickField) Bricks() []Brick {
	out := make([]Brick, len(f.bricks))
	copy(out, f.bricks)
	return out
}
