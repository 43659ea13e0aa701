package loop

import (
	"github.com/tomz197/pong/internal/core"
	"github.com/tomz197/pong/internal/draw"
)

// The canvas runs at 2x vertical resolution, so game y coordinates are
// doubled into logical sub-pixel space. X maps 1:1.
const subPixelsPerUnit = 2.0

// Main paddle x extents, matching the engine's collision convention.
const (
	leftPaddleLeft  = 1.0
	leftPaddleRight = 3.0
)

// RenderArena draws the whole game state onto the canvas: net, paddles
// with their elliptical caps, balls, obstacles and black holes.
func RenderArena(st *core.State, canvas *draw.Canvas) {
	renderNet(st, canvas)

	renderPaddle(canvas, leftPaddleLeft, leftPaddleRight, st.LeftY, st.PaddleH)
	renderPaddle(canvas, st.GW-leftPaddleRight, st.GW-leftPaddleLeft, st.RightY, st.PaddleH)

	if st.Mode == core.ModeThreeEnemies {
		renderSecondaryPaddles(st, canvas)
	}

	for i := range st.Obstacles {
		o := &st.Obstacles[i]
		canvas.FillRect(o.X-o.W/2, (o.Y-o.H/2)*subPixelsPerUnit, o.W, o.H*subPixelsPerUnit)
	}

	for i := range st.BlackHoles {
		h := &st.BlackHoles[i]
		canvas.DrawEllipseOutline(h.X, h.Y*subPixelsPerUnit, h.Radius, h.Radius*subPixelsPerUnit)
	}

	for i := range st.Balls {
		b := &st.Balls[i]
		canvas.FillEllipse(b.X, b.Y*subPixelsPerUnit, 0.6, 0.6*subPixelsPerUnit)
	}
}

// renderNet draws the dashed center line: short vertical segments with
// half-unit gaps between them.
func renderNet(st *core.State, canvas *draw.Canvas) {
	cx := st.GW / 2
	for y := 0.0; y < st.GH; y += 1.5 {
		canvas.DrawLine(
			draw.Point{X: cx, Y: y * subPixelsPerUnit},
			draw.Point{X: cx, Y: (y + 1.0) * subPixelsPerUnit},
		)
	}
}

// renderPaddle draws a vertical paddle: flat rectangle plus the two
// elliptical end caps the collision model uses, so what the player sees
// is what the ball hits.
func renderPaddle(canvas *draw.Canvas, left, right, top, height float64) {
	canvas.FillRect(left, top*subPixelsPerUnit, right-left, height*subPixelsPerUnit)

	halfW := (right - left) / 2
	halfH := height / 2
	midY := (top + halfH) * subPixelsPerUnit
	canvas.FillEllipse(left, midY, halfW, halfH*subPixelsPerUnit)
	canvas.FillEllipse(right, midY, halfW, halfH*subPixelsPerUnit)
}

// renderSecondaryPaddles draws the horizontal paddles guarding the top
// and bottom walls in three-enemies mode.
func renderSecondaryPaddles(st *core.State, canvas *draw.Canvas) {
	halfW := st.PaddleW / 2
	canvas.FillRect(st.TopX-halfW, 0, st.PaddleW, subPixelsPerUnit)
	canvas.FillRect(st.BottomX-halfW, (st.GH-1)*subPixelsPerUnit, st.PaddleW, subPixelsPerUnit)
}
