package breakout

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/gameplay"
)

// Visual characters for rendering
const (
	PaddleChar  = '▀'
	BallChar    = '●'
	BrickChar   = '█'
	BorderHoriz = '─'
)

// BrickColors colors bricks by row (cycling through).
var BrickColors = []core.Color{
	core.ColorRed,
	core.ColorOrange,
	core.ColorYellow,
	core.ColorGreen,
	core.ColorCyan,
	core.ColorBlue,
	core.ColorMagenta,
}

// hudRows is the number of rows above the play area.
const hudRows = 2

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	// Check for screen too small
	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	v := newViewport(g.world, dst)

	g.renderHUD(dst)
	g.renderBricks(dst, v)
	g.renderPaddle(dst, v)
	g.renderBall(dst, v)
	g.renderOverlay(dst)
}

// viewport maps world units to screen cells below the HUD.
type viewport struct {
	sx, sy float64
	top    int
}

func newViewport(w *World, dst *core.Screen) viewport {
	return viewport{
		sx:  float64(dst.Width()) / w.Width,
		sy:  float64(dst.Height()-hudRows) / w.Height,
		top: hudRows,
	}
}

func (v viewport) col(x float64) int {
	return int(math.Floor(x * v.sx))
}

func (v viewport) row(y float64) int {
	return v.top + int(math.Floor(y*v.sy))
}

// span returns the cells covered by [from, to), at least one.
func span(from, to int) int {
	if to <= from {
		return 1
	}
	return to - from
}

// renderHUD draws the score, lives, and level labels.
func (g *Game) renderHUD(dst *core.Screen) {
	score := g.world.Label(gameplay.LabelScore)
	lives := g.world.Label(gameplay.LabelLives)
	level := g.world.Label(gameplay.LabelLevel)

	dst.DrawTextColored(1, 0, score, core.ColorYellow)
	dst.DrawTextColored((dst.Width()-len(lives))/2, 0, lives, core.ColorRed)
	dst.DrawTextColored(dst.Width()-len(level)-1, 0, level, core.ColorCyan)

	for x := range dst.Width() {
		dst.SetColored(x, 1, BorderHoriz, core.ColorGray)
	}
}

// renderBricks draws every brick that still collides.
func (g *Game) renderBricks(dst *core.Screen, v viewport) {
	for _, b := range g.field.Bricks() {
		if !b.Alive {
			continue
		}
		x0, x1 := v.col(b.X), v.col(b.X+b.W)
		y0, y1 := v.row(b.Y), v.row(b.Y+b.H)
		color := BrickColors[b.Row%len(BrickColors)]

		// Leave the last column free so neighbours stay apart
		w := span(x0, x1)
		if w > 1 {
			w--
		}
		dst.DrawRect(core.NewRect(x0, y0, w, span(y0, y1)), BrickChar, color)
	}
}

// renderPaddle draws the player's paddle.
func (g *Game) renderPaddle(dst *core.Screen, v viewport) {
	p := g.world.paddle
	x0, x1 := v.col(p.X-p.W/2), v.col(p.X+p.W/2)
	y := v.row(p.Y)
	for x := x0; x < x0+span(x0, x1); x++ {
		dst.SetColored(x, y, PaddleChar, core.ColorWhite)
	}
}

// renderBall draws the ball.
func (g *Game) renderBall(dst *core.Screen, v viewport) {
	b := g.world.ball
	if b.Y > g.world.Height {
		return
	}
	dst.SetColored(v.col(b.X), v.row(b.Y), BallChar, core.ColorWhite)
}

// renderOverlay draws game state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	if msg := g.world.Label(gameplay.LabelMessage); msg != "" {
		subtitle := fmt.Sprintf("Score: %d  |  Restarting...", g.ctrl.Session().Score)
		drawCenteredBox(dst, msg, subtitle)
		return
	}

	if g.userPaused {
		drawCenteredBox(dst, "PAUSED", "Press P to resume")
		return
	}

	if g.ctrl.Session().State == gameplay.StateServing {
		dst.DrawTextCentered(dst.Height()-1, "Get ready...")
	}
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)

	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorRed)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
