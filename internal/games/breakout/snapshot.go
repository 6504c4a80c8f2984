package breakout

import (
	"math"
)

// Snapshot contains the observable game state for determinism checks.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick       uint64
	Score      int
	Level      int
	Lives      int
	State      string
	UserPaused bool

	BallX, BallY   float64
	BallVX, BallVY float64
	PaddleX        float64

	PhysicsPaused bool
	PendingTimers int

	// One entry per brick in id order: 1 alive, 0 destroyed
	BrickData []int

	RNGState uint64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	s := g.ctrl.Session()

	bricks := g.field.Bricks()
	brickData := make([]int, len(bricks))
	for i, b := range bricks {
		if b.Alive {
			brickData[i] = 1
		}
	}

	return Snapshot{
		Tick:       g.tick,
		Score:      s.Score,
		Level:      s.Level,
		Lives:      s.Lives,
		State:      s.State.String(),
		UserPaused: g.userPaused,

		BallX:   g.world.ball.X,
		BallY:   g.world.ball.Y,
		BallVX:  g.world.ball.VX,
		BallVY:  g.world.ball.VY,
		PaddleX: g.world.paddle.X,

		PhysicsPaused: g.world.physicsPaused,
		PendingTimers: g.world.timers.Pending(),

		BrickData: brickData,
		RNGState:  g.rng.State(),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PendingTimers) //#nosec G115 -- hash computation
	h = h*31 + hashString(snap.State)
	h = h*31 + boolBit(snap.UserPaused)
	h = h*31 + boolBit(snap.PhysicsPaused)

	for _, f := range []float64{snap.BallX, snap.BallY, snap.BallVX, snap.BallVY, snap.PaddleX} {
		h = h*31 + math.Float64bits(f)
	}

	for _, v := range snap.BrickData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	h = h*31 + snap.RNGState

	return h
}

// AliveBricks counts the alive entries of the snapshot.
func (snap *Snapshot) AliveBricks() int {
	n := 0
	for _, v := range snap.BrickData {
		n += v
	}
	return n
}

func hashString(s string) uint64 {
	var h uint64
	for i := range len(s) {
		h = h*31 + uint64(s[i])
	}
	return h
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
